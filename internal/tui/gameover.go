// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import "fmt"

func renderGameOver(reason string, turns int) string {
	body := reason
	if turns > 0 {
		body += fmt.Sprintf("\n\n진행한 턴: %d", turns)
	}
	return renderPage("GAME OVER", body, "enter: 처음으로   ctrl+y: 대화 복사   q: 종료")
}
