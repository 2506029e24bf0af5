// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/go-parkour-client/internal/app"
	"github.com/MKhiriev/go-parkour-client/models"
)

const historyTimeLayout = "2006-01-02 15:04"

// historyModel lists recent runs from the local journal.
type historyModel struct {
	items   []models.SessionRecord
	idx     int
	loading bool
	err     string
}

func (m historyModel) current() (models.SessionRecord, bool) {
	if len(m.items) == 0 || m.idx < 0 || m.idx >= len(m.items) {
		return models.SessionRecord{}, false
	}
	return m.items[m.idx], true
}

func (m *historyModel) move(delta int) {
	m.idx += delta
	if m.idx >= len(m.items) {
		m.idx = len(m.items) - 1
	}
	if m.idx < 0 {
		m.idx = 0
	}
}

func (m historyModel) View() string {
	var b strings.Builder

	switch {
	case m.loading:
		b.WriteString("불러오는 중...")
	case m.err != "":
		b.WriteString(m.err)
	case len(m.items) == 0:
		b.WriteString(app.MsgHistoryEmpty)
	default:
		for i, rec := range m.items {
			line := fmt.Sprintf("%s  턴 %-3d %s", rec.StartedAt.Local().Format(historyTimeLayout), rec.Turns, fitText(historyEnding(rec), 40))
			if i == m.idx {
				b.WriteString(selectedStyle.Render("> " + line))
			} else {
				b.WriteString("  " + line)
			}
			b.WriteString("\n")
		}
	}

	return renderPage("플레이 기록", b.String(), "↑/↓: 이동   ctrl+y: 대화 복사   esc: 뒤로")
}

func historyEnding(rec models.SessionRecord) string {
	if !rec.Finished() {
		return app.MsgRunInProgress
	}
	if rec.GameOverReason == "" {
		return "-"
	}
	return rec.GameOverReason
}
