// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-parkour-client/internal/app"
	"github.com/MKhiriev/go-parkour-client/internal/service"
	"github.com/MKhiriev/go-parkour-client/internal/turn"
	"github.com/MKhiriev/go-parkour-client/internal/utils"
	"github.com/MKhiriev/go-parkour-client/models"
	tea "github.com/charmbracelet/bubbletea"
)

// startSession issues the start request. The starting flag is raised before
// the command is returned, so a second trigger in the same frame is a no-op.
func (m appModel) startSession() (tea.Model, tea.Cmd) {
	if m.phase != turn.PhaseWelcome || m.starting {
		return m, nil
	}

	m.starting = true
	m.transcript.reset()
	return m, tea.Batch(m.cmdStart(), m.spinner.Tick)
}

func (m appModel) handleStartDone(msg startDoneMsg) (tea.Model, tea.Cmd) {
	if !m.starting || m.phase != turn.PhaseWelcome {
		return m, nil
	}
	m.starting = false

	var out turn.Outcome
	if msg.err != nil {
		m.logger.Err(msg.err).Str("func", "appModel.handleStartDone").Msg("start request failed")
		m.session, out = turn.StartFailed()
		m.showErrorf(out.Notice, humanizeError(msg.err))
		return m, nil
	}

	m.session, out = turn.ApplyStart(msg.resp)
	if out.Notice != "" {
		m.showErrorf(out.Notice, "")
		return m, nil
	}

	m.phase = turn.PhasePlaying
	m.resolved = 0
	m.bar = newResourceBarModel()

	journal, sessionID := m.journal, m.session.ID
	m.enqueue("begin run", func(ctx context.Context) error {
		return journal.BeginRun(ctx, sessionID)
	})

	cmd := m.applyOutcome(out)
	return m, cmd
}

func (m appModel) submitChoice() (tea.Model, tea.Cmd) {
	if m.choosing || m.refreshing || !m.session.Live() {
		return m, nil
	}

	input, ok := turn.NormalizeInput(m.input.Value())
	if !ok {
		return m, nil
	}

	sessionID := m.session.ID
	m.appendEntries(turn.Entry{Kind: models.EntryPlayer, Text: input})
	m.input.Reset()
	m.input.Blur()
	m.choosing = true

	return m, tea.Batch(m.cmdChoose(sessionID, input), m.spinner.Tick)
}

func (m appModel) handleChoiceDone(msg choiceDoneMsg) (tea.Model, tea.Cmd) {
	var (
		next turn.Session
		out  turn.Outcome
	)
	if msg.err != nil {
		next, out = turn.ChoiceFailed(m.session, msg.sessionID)
	} else {
		next, out = turn.ApplyChoice(m.session, msg.sessionID, msg.resp)
	}

	if out.Discarded || m.phase != turn.PhasePlaying {
		m.logger.Debug().
			Str("func", "appModel.handleChoiceDone").
			Str("session_id", msg.sessionID).
			Msg("stale choice response discarded")
		return m, nil
	}
	if msg.err != nil {
		m.logger.Err(msg.err).
			Str("func", "appModel.handleChoiceDone").
			Str("session_id", msg.sessionID).
			Msg("choice request failed")
	}

	m.session = next
	m.choosing = false

	if msg.err == nil && msg.resp.Error == "" {
		m.resolved++
		journal, sessionID, turns := m.journal, m.session.ID, m.turnCount()
		m.enqueue("update turns", func(ctx context.Context) error {
			return journal.UpdateTurns(ctx, sessionID, turns)
		})
	}

	cmd := m.applyOutcome(out)
	return m, cmd
}

func (m appModel) refreshState() (tea.Model, tea.Cmd) {
	if m.choosing || m.refreshing || !m.session.Live() {
		return m, nil
	}

	m.refreshing = true
	return m, tea.Batch(m.cmdRefresh(m.session.ID), m.spinner.Tick)
}

func (m appModel) handleStateDone(msg stateDoneMsg) (tea.Model, tea.Cmd) {
	var (
		next turn.Session
		out  turn.Outcome
	)
	if msg.err != nil {
		next, out = turn.ChoiceFailed(m.session, msg.sessionID)
	} else {
		next, out = turn.ApplyState(m.session, msg.sessionID, msg.resp)
	}

	if out.Discarded || m.phase != turn.PhasePlaying {
		m.logger.Debug().
			Str("func", "appModel.handleStateDone").
			Str("session_id", msg.sessionID).
			Msg("stale state response discarded")
		return m, nil
	}
	if msg.err != nil {
		m.logger.Err(msg.err).
			Str("func", "appModel.handleStateDone").
			Str("session_id", msg.sessionID).
			Msg("state request failed")
	}

	m.session = next
	m.refreshing = false

	cmd := m.applyOutcome(out)
	if msg.err == nil && msg.resp.Error == "" && !out.GameOver {
		m.status = app.MsgRefreshed
		cmd = tea.Batch(cmd, cmdClearStatus())
	}
	return m, cmd
}

// applyOutcome renders a reducer outcome in field order: entries, state,
// then either the game-over switch or the reveal of the next encounter.
func (m *appModel) applyOutcome(out turn.Outcome) tea.Cmd {
	m.appendEntries(out.Entries...)
	m.bar.sync(out.State)

	if out.GameOver {
		m.endGame(out.GameOverReason)
		return nil
	}

	var cmd tea.Cmd
	if len(out.Reveal) > 0 {
		cmd = m.transcript.schedule(turn.PlanReveal(out.Reveal, m.revealStep))
	}
	if out.InputEnabled {
		cmd = tea.Batch(cmd, m.input.Focus())
	}
	return cmd
}

func (m *appModel) endGame(reason string) {
	m.phase = turn.PhaseGameOver
	m.gameOverReason = reason
	m.transcript.cancel()
	m.input.Blur()
	m.showDetails = false

	journal, sessionID, turns := m.journal, m.session.ID, m.turnCount()
	m.enqueue("finish run", func(ctx context.Context) error {
		return journal.FinishRun(ctx, sessionID, turns, reason)
	})
}

// restart drops the live session and returns to the welcome view. Responses
// still in flight for the old session are discarded when they arrive.
func (m appModel) restart() (tea.Model, tea.Cmd) {
	m.transcript.reset()
	m.session = turn.Session{}
	m.phase = turn.PhaseWelcome
	m.starting = false
	m.choosing = false
	m.refreshing = false
	m.resolved = 0
	m.gameOverReason = ""
	m.status = ""
	m.showDetails = false
	m.bar = newResourceBarModel()
	m.input.Reset()
	m.input.Blur()
	return m, nil
}

func (m *appModel) appendEntries(entries ...turn.Entry) {
	m.transcript.append(entries...)
	m.record(entries...)
}

// record journals displayed lines of the live session.
func (m *appModel) record(entries ...turn.Entry) {
	if len(entries) == 0 || !m.session.Live() {
		return
	}

	journal, sessionID := m.journal, m.session.ID
	rows := append([]turn.Entry(nil), entries...)
	m.enqueue("record transcript", func(ctx context.Context) error {
		return journal.Record(ctx, sessionID, rows...)
	})
}

func (m *appModel) enqueue(name string, task func(ctx context.Context) error) {
	if m.queue == nil {
		return
	}
	m.queue.Enqueue(name, task)
}

func (m appModel) copyTranscript() (tea.Model, tea.Cmd) {
	entries := m.transcript.entries()
	if len(entries) == 0 {
		m.status = app.MsgNothingToCopy
		return m, cmdClearStatus()
	}

	rows := make([]models.TranscriptEntry, 0, len(entries))
	for _, e := range entries {
		rows = append(rows, models.TranscriptEntry{Kind: e.Kind, Content: e.Text, Alt: e.Alt})
	}
	return m, m.cmdCopy(service.FormatTranscript(rows))
}

func (m appModel) cmdStart() tea.Cmd {
	ctx := m.ctx
	svc := m.turns
	return func() tea.Msg {
		resp, err := svc.Start(ctx)
		return startDoneMsg{resp: resp, err: err}
	}
}

func (m appModel) cmdChoose(sessionID, input string) tea.Cmd {
	ctx := utils.WithSessionID(m.ctx, sessionID)
	svc := m.turns
	return func() tea.Msg {
		resp, err := svc.Choose(ctx, sessionID, input)
		return choiceDoneMsg{sessionID: sessionID, resp: resp, err: err}
	}
}

func (m appModel) cmdRefresh(sessionID string) tea.Cmd {
	ctx := utils.WithSessionID(m.ctx, sessionID)
	svc := m.turns
	return func() tea.Msg {
		resp, err := svc.Refresh(ctx, sessionID)
		return stateDoneMsg{sessionID: sessionID, resp: resp, err: err}
	}
}

func (m appModel) cmdLoadHistory() tea.Cmd {
	ctx := m.ctx
	svc := m.journal
	return func() tea.Msg {
		sessions, err := svc.Recent(ctx)
		return historyLoadedMsg{sessions: sessions, err: err}
	}
}

func (m appModel) cmdCopy(text string) tea.Cmd {
	copyText := m.copyText
	return func() tea.Msg {
		if err := copyText(text); err != nil {
			return copiedMsg{err: fmt.Errorf("copy to clipboard: %w", err)}
		}
		return copiedMsg{}
	}
}

func (m appModel) cmdExport(sessionID string) tea.Cmd {
	ctx := m.ctx
	svc := m.journal
	copyText := m.copyText
	return func() tea.Msg {
		text, err := svc.ExportText(ctx, sessionID)
		if err != nil {
			return copiedMsg{err: err}
		}
		if text == "" {
			return copiedMsg{err: errNothingToCopy}
		}
		if err = copyText(text); err != nil {
			return copiedMsg{err: fmt.Errorf("copy to clipboard: %w", err)}
		}
		return copiedMsg{}
	}
}
