// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

type errorOverlayModel struct {
	message string
	detail  string
}

func (m errorOverlayModel) View() string {
	content := errorStyle.Render("오류") + "\n\n" + m.message
	if m.detail != "" && m.detail != m.message {
		content += "\n" + helpStyle.Render(m.detail)
	}
	content += "\n\n" + helpStyle.Render("enter / esc 닫기")
	return overlayBoxStyle.Render(content)
}
