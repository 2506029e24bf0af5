// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package turn

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/go-parkour-client/models"
)

// User-facing texts.
const (
	DefaultGameOverReason = "알 수 없는 이유로 게임이 종료되었습니다."
	StartFailedNotice     = "게임을 시작할 수 없습니다. 잠시 후 다시 시도해주세요."
	ChoiceFailedNotice    = "서버와 통신 중 오류가 발생했습니다. 다시 시도해주세요."
	NoGadgetsPlaceholder  = "없음"

	resourceLinePrefix = "자원 변화: "
	gadgetLinePrefix   = "가젯 변화: "
)

// FormatResult renders a choice result as at most two lines: non-zero
// resource deltas, then gadget changes. Gadget entries with an unknown action
// are dropped. An empty string means there is nothing to show.
func FormatResult(r *models.ChoiceResult) string {
	if r == nil {
		return ""
	}

	lines := make([]string, 0, 2)

	if r.Resources != nil {
		deltas := []struct {
			name  string
			value int
		}{
			{models.ResourceHealth, r.Resources.Health},
			{models.ResourceMental, r.Resources.Mental},
			{models.ResourceMoney, r.Resources.Money},
		}

		parts := make([]string, 0, len(deltas))
		for _, d := range deltas {
			if d.value == 0 {
				continue
			}
			parts = append(parts, fmt.Sprintf("%s: %s", d.name, signed(d.value)))
		}
		if len(parts) > 0 {
			lines = append(lines, resourceLinePrefix+strings.Join(parts, ", "))
		}
	}

	parts := make([]string, 0, len(r.Gadgets))
	for _, g := range r.Gadgets {
		switch g.Action {
		case models.GadgetAcquire:
			parts = append(parts, fmt.Sprintf("%s 획득 (+%d)", g.ID, g.Count()))
		case models.GadgetLose:
			parts = append(parts, fmt.Sprintf("%s 손실 (-%d)", g.ID, g.Count()))
		}
	}
	if len(parts) > 0 {
		lines = append(lines, gadgetLinePrefix+strings.Join(parts, ", "))
	}

	return strings.Join(lines, "\n")
}

func signed(v int) string {
	if v > 0 {
		return fmt.Sprintf("+%d", v)
	}
	return fmt.Sprintf("%d", v)
}
