// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"testing"
	"time"

	"github.com/MKhiriev/go-parkour-client/internal/turn"
	"github.com/MKhiriev/go-parkour-client/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func plan(texts ...string) []turn.Scheduled {
	out := make([]turn.Scheduled, 0, len(texts))
	for i, text := range texts {
		out = append(out, turn.Scheduled{
			Index: i,
			Delay: time.Duration(i) * time.Hour,
			Entry: turn.Entry{Kind: models.EntryBubble, Text: text},
		})
	}
	return out
}

func TestTranscript_RevealInOrder(t *testing.T) {
	tr := newTranscriptModel()
	require.NotNil(t, tr.schedule(plan("a", "b", "c")))

	shown := tr.reveal(revealMsg{gen: tr.gen, batch: 1, pos: 0})
	assert.Len(t, shown, 1)
	shown = tr.reveal(revealMsg{gen: tr.gen, batch: 1, pos: 2})
	assert.Len(t, shown, 2)

	assert.Equal(t, []string{"a", "b", "c"}, entryTexts(tr))
	assert.False(t, tr.revealing())
}

func TestTranscript_CancelDropsPendingKeepsLines(t *testing.T) {
	tr := newTranscriptModel()
	tr.append(turn.Entry{Kind: models.EntryPlayer, Text: "p"})
	tr.schedule(plan("a", "b"))
	oldGen := tr.gen

	tr.cancel()

	assert.Nil(t, tr.reveal(revealMsg{gen: oldGen, batch: 1, pos: 1}))
	assert.Equal(t, []string{"p"}, entryTexts(tr))
	assert.False(t, tr.revealing())
}

func TestTranscript_ResetClearsEverything(t *testing.T) {
	tr := newTranscriptModel()
	tr.append(turn.Entry{Text: "x"})
	tr.schedule(plan("a"))

	tr.reset()

	assert.Empty(t, tr.entries())
	assert.False(t, tr.revealing())
}

func TestTranscript_EmptyPlanSchedulesNothing(t *testing.T) {
	tr := newTranscriptModel()
	assert.Nil(t, tr.schedule(nil))
	assert.False(t, tr.revealing())
}

func TestTranscript_UnknownBatchIgnored(t *testing.T) {
	tr := newTranscriptModel()
	assert.Nil(t, tr.reveal(revealMsg{gen: tr.gen, batch: 42, pos: 0}))
}

func TestTranscript_GroupsAreSeparated(t *testing.T) {
	tr := newTranscriptModel()
	tr.append(turn.Entry{Kind: models.EntryStory, Text: "one"})
	tr.append(turn.Entry{Kind: models.EntryStory, Text: "two"})

	assert.Contains(t, tr.View(), "one")
	assert.Contains(t, tr.View(), "two")
	assert.NotEqual(t, tr.lines[0].group, tr.lines[1].group)
}

func TestRenderEntry(t *testing.T) {
	tests := []struct {
		name  string
		entry turn.Entry
		want  string
	}{
		{"player", turn.Entry{Kind: models.EntryPlayer, Text: "점프"}, "> 점프"},
		{"system", turn.Entry{Kind: models.EntrySystem, Text: "오류"}, "[!] 오류"},
		{"image with alt", turn.Entry{Kind: models.EntryImage, Text: "/img/a.png", Alt: "옥상"}, "[옥상] /img/a.png"},
		{"image without alt", turn.Entry{Kind: models.EntryImage, Text: "/img/a.png"}, "[이미지] /img/a.png"},
		{"bubble", turn.Entry{Kind: models.EntryBubble, Text: "안녕"}, "안녕"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Contains(t, renderEntry(tt.entry, 80), tt.want)
		})
	}
}

func entryTexts(tr transcriptModel) []string {
	var out []string
	for _, e := range tr.entries() {
		out = append(out, e.Text)
	}
	return out
}
