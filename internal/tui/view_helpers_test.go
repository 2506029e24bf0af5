// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"testing"

	"github.com/MKhiriev/go-parkour-client/internal/turn"
	"github.com/MKhiriev/go-parkour-client/models"
	"github.com/stretchr/testify/assert"
)

func TestFitText(t *testing.T) {
	assert.Equal(t, "abc", fitText("abc", 5))
	assert.Equal(t, "ab...", fitText("abcdefgh", 5))
	assert.Equal(t, "체력이...", fitText("체력이 0이 되었습니다", 6))
	assert.Equal(t, "ab", fitText("abcdef", 2))
	assert.Equal(t, "abc", fitText("abc", 0))
}

func TestRenderPage(t *testing.T) {
	page := renderPage("제목", "", "esc: 뒤로")

	assert.Contains(t, page, "제목")
	assert.Contains(t, page, "  -\n")
	assert.Contains(t, page, "esc: 뒤로")
	assert.Contains(t, page, "ctrl+c: 종료")
}

func TestResourceBar(t *testing.T) {
	bar := newResourceBarModel()
	assert.Contains(t, bar.View(), "체력 ●●● 3/3")
	assert.Contains(t, bar.View(), "돈 ○○○ 0/3")
	assert.Contains(t, bar.View(), turn.NoGadgetsPlaceholder)

	bar.sync(nil)
	assert.Contains(t, bar.View(), "체력 ●●● 3/3", "absent state is a no-op")

	h, mental, money := -1, 5, 2
	bar.sync(&models.GameState{
		Resources: models.Resources{Health: &h, Mental: &mental, Money: &money},
		Gadgets:   map[string]int{"우산": 1, "근력": 2},
		Turn:      3,
	})
	view := bar.View()
	assert.Contains(t, view, "체력 ○○○ 0/3")
	assert.Contains(t, view, "멘탈 ●●● 3/3")
	assert.Contains(t, view, "돈 ●●○ 2/3")
	assert.Contains(t, view, "근력, 우산")
	assert.Contains(t, view, "턴 3")
}

func TestHistoryEnding(t *testing.T) {
	assert.Equal(t, "끝나지 않은 게임", historyEnding(models.SessionRecord{}))
}
