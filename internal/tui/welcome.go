// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import "github.com/MKhiriev/go-parkour-client/internal/app"

func renderWelcome(starting bool, spinnerView string) string {
	body := "2033년, 무너진 서울의 옥상을 달리는 파쿠르 러너의 이야기.\n" +
		"장면마다 당신의 행동을 자유롭게 입력하세요.\n"
	if starting {
		body += "\n" + spinnerView + " " + app.MsgStarting
	}
	return renderPage("서울 2033: 파쿠르", body, "enter: 게임 시작   h: 플레이 기록   v: 프로그램 정보   q: 종료")
}
