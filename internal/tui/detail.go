// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"fmt"
	"sort"
	"strings"

	"github.com/MKhiriev/go-parkour-client/internal/turn"
)

// renderDetails is the tab popup: gauges, held gadgets with counts and the
// current encounter's title.
func renderDetails(s turn.Session, bar turn.Bar) string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("상세 정보"))
	b.WriteString("\n\n")
	for _, g := range bar.Gauges() {
		fmt.Fprintf(&b, "%-4s %s  %s\n", g.Label, g.Icons(iconFilled, iconEmpty), g.Ratio())
	}

	b.WriteString("\n가젯\n")
	if s.State == nil || len(s.State.Gadgets) == 0 {
		b.WriteString("  " + turn.NoGadgetsPlaceholder + "\n")
	} else {
		names := make([]string, 0, len(s.State.Gadgets))
		for name := range s.State.Gadgets {
			names = append(names, name)
		}
		sort.Strings(names)
		for _, name := range names {
			fmt.Fprintf(&b, "  %s x%d\n", name, s.State.Gadgets[name])
		}
	}

	if s.State != nil {
		fmt.Fprintf(&b, "\n턴 %d", s.State.Turn)
		if s.State.Level > 0 {
			fmt.Fprintf(&b, "   레벨 %d", s.State.Level)
		}
		b.WriteString("\n")
	}

	if enc := s.CurrentEncounter; enc != nil && enc.Name != "" {
		b.WriteString("\n현재 장면: " + enc.Name + "\n")
	}

	b.WriteString("\n" + helpStyle.Render("tab / esc 닫기"))
	return overlayBoxStyle.Render(b.String())
}
