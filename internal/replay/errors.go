// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package replay

import "errors"

var (
	// ErrEmptyScenario is returned when a scenario has no steps to play.
	ErrEmptyScenario = errors.New("scenario has no steps")
	// ErrNoStartSession is returned when the start response of a scenario
	// neither reports an error nor carries an encounter.
	ErrNoStartSession = errors.New("scenario start has no encounter")
)

// Messages the player reports inside a 200 body, worded as the game server
// words them.
const (
	MsgUnknownSession = "세션이 존재하지 않습니다."
	MsgGameOver       = "게임이 종료되었습니다."
	MsgEmptyInput     = "입력을 입력해주세요."
	MsgNoChoices      = "사용 가능한 선택지가 없습니다."
)
