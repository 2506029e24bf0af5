// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/go-parkour-client/internal/turn"
	"github.com/MKhiriev/go-parkour-client/models"
)

const (
	iconFilled = "●"
	iconEmpty  = "○"
)

// resourceBarModel mirrors the last snapshot synced into it. Before the
// first sync it shows the baseline values.
type resourceBarModel struct {
	bar turn.Bar
}

func newResourceBarModel() resourceBarModel {
	bar, _ := turn.NewBar(&models.GameState{})
	return resourceBarModel{bar: bar}
}

// sync replaces the bar from state. An absent state is a no-op.
func (m *resourceBarModel) sync(state *models.GameState) {
	if bar, ok := turn.NewBar(state); ok {
		m.bar = bar
	}
}

func (m resourceBarModel) View() string {
	parts := make([]string, 0, 5)
	for _, g := range m.bar.Gauges() {
		parts = append(parts, fmt.Sprintf("%s %s %s", g.Label, gaugeStyle.Render(g.Icons(iconFilled, iconEmpty)), g.Ratio()))
	}
	parts = append(parts, "가젯: "+gadgetStyle.Render(m.bar.GadgetList()))
	if m.bar.Turn > 0 {
		parts = append(parts, fmt.Sprintf("턴 %d", m.bar.Turn))
	}
	return barStyle.Render(strings.Join(parts, "   "))
}
