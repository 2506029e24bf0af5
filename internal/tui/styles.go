// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import "github.com/charmbracelet/lipgloss"

var (
	appStyle        = lipgloss.NewStyle().Padding(1, 2)
	titleStyle      = lipgloss.NewStyle().Bold(true)
	helpStyle       = lipgloss.NewStyle().Faint(true)
	errorStyle      = lipgloss.NewStyle().Bold(true)
	overlayBoxStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(1, 2)

	barStyle      = lipgloss.NewStyle().Border(lipgloss.NormalBorder(), false, false, true, false)
	gaugeStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("204"))
	gadgetStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("110"))
	selectedStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212"))

	bubbleStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	imageStyle  = lipgloss.NewStyle().Italic(true).Foreground(lipgloss.Color("110"))
	playerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("86"))
	storyStyle  = lipgloss.NewStyle().Italic(true)
	resultStyle = lipgloss.NewStyle().Faint(true).PaddingLeft(2)
	systemStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("203"))
)
