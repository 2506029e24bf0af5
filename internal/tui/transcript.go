// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"strings"
	"time"

	"github.com/MKhiriev/go-parkour-client/internal/turn"
	"github.com/MKhiriev/go-parkour-client/models"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	defaultWidth  = 80
	defaultHeight = 24
)

type transcriptLine struct {
	entry turn.Entry
	group int
}

// revealBatch is one scheduled group of encounter items. next is the
// position in plan of the first item not shown yet.
type revealBatch struct {
	plan  []turn.Scheduled
	next  int
	group int
}

// transcriptModel is the chat region. Every reveal batch is tagged with the
// current generation; reset and cancel bump it so ticks of older batches are
// dropped on arrival.
type transcriptModel struct {
	viewport viewport.Model
	lines    []transcriptLine

	gen       int
	nextGroup int
	nextBatch int
	pending   map[int]*revealBatch
}

func newTranscriptModel() transcriptModel {
	return transcriptModel{
		viewport: viewport.New(defaultWidth, defaultHeight-8),
		pending:  make(map[int]*revealBatch),
	}
}

// reset clears the transcript and cancels pending reveals.
func (t *transcriptModel) reset() {
	t.cancel()
	t.lines = nil
	t.render()
}

// cancel drops pending reveals and keeps the lines already shown.
func (t *transcriptModel) cancel() {
	t.gen++
	t.pending = make(map[int]*revealBatch)
}

// append adds entries as one group and scrolls to the bottom.
func (t *transcriptModel) append(entries ...turn.Entry) {
	if len(entries) == 0 {
		return
	}
	group := t.newGroup()
	for _, e := range entries {
		t.lines = append(t.lines, transcriptLine{entry: e, group: group})
	}
	t.render()
}

func (t *transcriptModel) newGroup() int {
	t.nextGroup++
	return t.nextGroup
}

// schedule registers plan as a new batch and returns one timer per item.
// Timers start now, so item i fires at its fixed offset from this call.
func (t *transcriptModel) schedule(plan []turn.Scheduled) tea.Cmd {
	if len(plan) == 0 {
		return nil
	}

	t.nextBatch++
	id := t.nextBatch
	t.pending[id] = &revealBatch{plan: plan, group: t.newGroup()}

	gen := t.gen
	cmds := make([]tea.Cmd, 0, len(plan))
	for pos, item := range plan {
		msg := revealMsg{gen: gen, batch: id, pos: pos}
		cmds = append(cmds, tea.Tick(item.Delay, func(time.Time) tea.Msg { return msg }))
	}
	return tea.Batch(cmds...)
}

// reveal shows every item of the batch up to msg.pos that is not shown yet,
// so items keep their order even when timers fire together. It returns the
// entries it appended.
func (t *transcriptModel) reveal(msg revealMsg) []turn.Entry {
	if msg.gen != t.gen {
		return nil
	}
	b, ok := t.pending[msg.batch]
	if !ok {
		return nil
	}

	var shown []turn.Entry
	for b.next <= msg.pos && b.next < len(b.plan) {
		e := b.plan[b.next].Entry
		t.lines = append(t.lines, transcriptLine{entry: e, group: b.group})
		shown = append(shown, e)
		b.next++
	}
	if b.next >= len(b.plan) {
		delete(t.pending, msg.batch)
	}
	if len(shown) > 0 {
		t.render()
	}
	return shown
}

func (t *transcriptModel) revealing() bool {
	return len(t.pending) > 0
}

func (t *transcriptModel) entries() []turn.Entry {
	out := make([]turn.Entry, 0, len(t.lines))
	for _, l := range t.lines {
		out = append(out, l.entry)
	}
	return out
}

func (t *transcriptModel) setSize(width, height int) {
	t.viewport.Width = width
	t.viewport.Height = height
	t.render()
}

func (t *transcriptModel) render() {
	width := t.viewport.Width
	if width <= 0 {
		width = defaultWidth
	}

	var b strings.Builder
	for i, l := range t.lines {
		if i > 0 {
			b.WriteString("\n")
			if l.group != t.lines[i-1].group {
				b.WriteString("\n")
			}
		}
		b.WriteString(renderEntry(l.entry, width))
	}

	t.viewport.SetContent(b.String())
	t.viewport.GotoBottom()
}

func (t transcriptModel) View() string {
	return t.viewport.View()
}

func renderEntry(e turn.Entry, width int) string {
	inner := width - 4
	if inner < 10 {
		inner = 10
	}

	switch e.Kind {
	case models.EntryPlayer:
		return playerStyle.Width(inner).Render("> " + e.Text)
	case models.EntryStory:
		return storyStyle.Width(inner).Render(e.Text)
	case models.EntryResult:
		return resultStyle.Width(inner).Render(e.Text)
	case models.EntrySystem:
		return systemStyle.Width(inner).Render("[!] " + e.Text)
	case models.EntryImage:
		return imageStyle.Width(inner).Render("[" + imageAlt(e.Alt) + "] " + e.Text)
	default:
		return bubbleStyle.Width(inner).Render(e.Text)
	}
}

func imageAlt(alt string) string {
	if alt == "" {
		return "이미지"
	}
	return alt
}
