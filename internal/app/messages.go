// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains user-facing message strings shared by the terminal
// UI views. Turn-protocol notices live in package turn next to the reducer
// that produces them.
package app

const (
	// MsgServerUnavailable replaces connection failures and timeouts.
	MsgServerUnavailable = "게임 서버에 연결할 수 없습니다. 네트워크 상태를 확인해주세요."

	// MsgSessionExpired is shown when the server no longer knows the session.
	MsgSessionExpired = "게임 세션이 만료되었습니다. 처음부터 다시 시작해주세요."

	// MsgProtocol is shown when the server answered with something unusable.
	MsgProtocol = "서버 응답을 처리할 수 없습니다."

	// MsgConfirmRestart asks before abandoning a live run.
	MsgConfirmRestart = "진행 중인 게임을 포기하고 처음 화면으로 돌아갈까요?"

	MsgCopied        = "대화 내용을 클립보드에 복사했습니다."
	MsgCopyFailed    = "클립보드에 복사할 수 없습니다."
	MsgNothingToCopy = "복사할 대화 내용이 없습니다."

	// MsgHistoryFailed is shown when the local play-log cannot be read.
	MsgHistoryFailed = "플레이 기록을 불러올 수 없습니다."
	MsgHistoryEmpty  = "아직 플레이 기록이 없습니다."

	// MsgRunInProgress labels a journaled run without an ending.
	MsgRunInProgress = "끝나지 않은 게임"

	MsgStarting  = "게임 서버에 접속하는 중..."
	MsgWaiting   = "응답을 기다리는 중..."
	MsgRefreshed = "상태를 새로 고쳤습니다."
)
