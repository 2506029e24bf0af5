// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/MKhiriev/go-parkour-client/internal/app"
	"github.com/MKhiriev/go-parkour-client/internal/config"
	"github.com/MKhiriev/go-parkour-client/internal/logger"
	"github.com/MKhiriev/go-parkour-client/internal/service"
	"github.com/MKhiriev/go-parkour-client/internal/turn"
	"github.com/MKhiriev/go-parkour-client/internal/workers"
	"github.com/MKhiriev/go-parkour-client/models"
	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// journalQueue accepts journal writes that must run in order off the UI
// loop.
type journalQueue interface {
	Enqueue(name string, task workers.Task) bool
}

// appModel is the whole client UI: the welcome, playing and game-over
// phases plus the overlays drawn on top of them.
//
// The model owns the live turn.Session as a value and replaces it with what
// the reducers in package turn return.
type appModel struct {
	ctx        context.Context
	turns      service.TurnService
	journal    service.JournalService
	queue      journalQueue
	logger     *logger.Logger
	buildInfo  models.AppBuildInfo
	revealStep time.Duration
	copyText   func(string) error

	phase    turn.Phase
	session  turn.Session
	resolved int

	starting   bool
	choosing   bool
	refreshing bool

	transcript     transcriptModel
	bar            resourceBarModel
	input          textinput.Model
	spinner        spinner.Model
	gameOverReason string
	status         string

	showError     bool
	errorOverlay  errorOverlayModel
	showConfirm   bool
	confirm       confirmModel
	showDetails   bool
	showHistory   bool
	history       historyModel
	showBuildInfo bool

	width  int
	height int
}

func newAppModel(
	ctx context.Context,
	services *service.ClientServices,
	queue journalQueue,
	cfg config.ClientUI,
	buildInfo models.AppBuildInfo,
	logger *logger.Logger,
) appModel {
	ti := textinput.New()
	ti.Prompt = "› "
	ti.Placeholder = "행동이나 선택을 입력하세요"
	ti.CharLimit = 500
	ti.Cursor.SetMode(cursor.CursorStatic)

	s := spinner.New()
	s.Spinner = spinner.MiniDot

	m := appModel{
		ctx:        ctx,
		turns:      services.TurnService,
		journal:    services.JournalService,
		queue:      queue,
		logger:     logger,
		buildInfo:  buildInfo,
		revealStep: cfg.RevealStep,
		copyText:   clipboard.WriteAll,
		phase:      turn.PhaseWelcome,
		transcript: newTranscriptModel(),
		bar:        newResourceBarModel(),
		input:      ti,
		spinner:    s,
	}
	m.resize(defaultWidth, defaultHeight)
	return m
}

func (m appModel) Init() tea.Cmd {
	return nil
}

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return m, nil
	case tea.KeyMsg:
		return m.updateKey(msg)
	case startDoneMsg:
		return m.handleStartDone(msg)
	case choiceDoneMsg:
		return m.handleChoiceDone(msg)
	case stateDoneMsg:
		return m.handleStateDone(msg)
	case revealMsg:
		m.record(m.transcript.reveal(msg)...)
		return m, nil
	case historyLoadedMsg:
		m.history.loading = false
		if msg.err != nil {
			m.logger.Err(msg.err).Str("func", "appModel.Update").Msg("load history failed")
			m.history.err = app.MsgHistoryFailed
			return m, nil
		}
		m.history.items = msg.sessions
		m.history.idx = 0
		return m, nil
	case copiedMsg:
		if errors.Is(msg.err, errNothingToCopy) {
			m.status = app.MsgNothingToCopy
			return m, cmdClearStatus()
		}
		if msg.err != nil {
			m.logger.Err(msg.err).Str("func", "appModel.Update").Msg("copy to clipboard failed")
			m.showErrorf(app.MsgCopyFailed, humanizeError(msg.err))
			return m, nil
		}
		m.status = app.MsgCopied
		return m, cmdClearStatus()
	case clearStatusMsg:
		m.status = ""
		return m, nil
	case spinner.TickMsg:
		if !m.busy() {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	if m.phase == turn.PhasePlaying {
		var cmd tea.Cmd
		m.transcript.viewport, cmd = m.transcript.viewport.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m appModel) updateKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, keys.forceQuit) {
		return m, tea.Quit
	}

	if m.showError {
		if key.Matches(msg, keys.enter) || key.Matches(msg, keys.esc) {
			m.showError = false
			m.errorOverlay = errorOverlayModel{}
		}
		return m, nil
	}
	if m.showConfirm {
		if key.Matches(msg, keys.yes) {
			m.showConfirm = false
			return m.restart()
		}
		if key.Matches(msg, keys.no) || key.Matches(msg, keys.esc) {
			m.showConfirm = false
		}
		return m, nil
	}
	if m.showBuildInfo {
		if key.Matches(msg, keys.esc) || key.Matches(msg, keys.info) {
			m.showBuildInfo = false
		}
		return m, nil
	}
	if m.showHistory {
		return m.updateHistory(msg)
	}
	if m.showDetails {
		if key.Matches(msg, keys.esc) || key.Matches(msg, keys.tab) {
			m.showDetails = false
		}
		return m, nil
	}

	switch m.phase {
	case turn.PhaseWelcome:
		return m.updateWelcome(msg)
	case turn.PhasePlaying:
		return m.updatePlaying(msg)
	case turn.PhaseGameOver:
		return m.updateGameOver(msg)
	}
	return m, nil
}

func (m appModel) updateWelcome(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.enter):
		return m.startSession()
	case m.starting:
		return m, nil
	case key.Matches(msg, keys.history):
		m.showHistory = true
		m.history = historyModel{loading: true}
		return m, m.cmdLoadHistory()
	case key.Matches(msg, keys.info):
		m.showBuildInfo = true
	case key.Matches(msg, keys.quit):
		return m, tea.Quit
	}
	return m, nil
}

func (m appModel) updatePlaying(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.enter):
		return m.submitChoice()
	case key.Matches(msg, keys.tab):
		m.showDetails = true
		return m, nil
	case key.Matches(msg, keys.refresh):
		return m.refreshState()
	case key.Matches(msg, keys.restart):
		m.showConfirm = true
		m.confirm.message = app.MsgConfirmRestart
		return m, nil
	case key.Matches(msg, keys.copy):
		return m.copyTranscript()
	case key.Matches(msg, keys.pageUp), key.Matches(msg, keys.pageDown):
		var cmd tea.Cmd
		m.transcript.viewport, cmd = m.transcript.viewport.Update(msg)
		return m, cmd
	}

	if m.choosing {
		return m, nil
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m appModel) updateGameOver(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.enter), key.Matches(msg, keys.restart):
		return m.restart()
	case key.Matches(msg, keys.copy):
		return m.copyTranscript()
	case key.Matches(msg, keys.quit):
		return m, tea.Quit
	}
	return m, nil
}

func (m appModel) updateHistory(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.esc), key.Matches(msg, keys.history):
		m.showHistory = false
	case key.Matches(msg, keys.up):
		m.history.move(-1)
	case key.Matches(msg, keys.down):
		m.history.move(1)
	case key.Matches(msg, keys.copy):
		rec, ok := m.history.current()
		if !ok {
			return m, nil
		}
		return m, m.cmdExport(rec.SessionID)
	}
	return m, nil
}

func (m appModel) View() string {
	var body string
	switch {
	case m.showBuildInfo:
		body = renderBuildInfoWindow(m.buildInfo)
	case m.showHistory:
		body = m.history.View()
	case m.phase == turn.PhasePlaying:
		body = m.playingView()
	case m.phase == turn.PhaseGameOver:
		body = renderGameOver(m.gameOverReason, m.turnCount())
	default:
		body = renderWelcome(m.starting, m.spinner.View())
	}

	if m.status != "" && m.phase != turn.PhasePlaying {
		body += "\n\n" + helpStyle.Render(m.status)
	}
	if m.showDetails {
		body += "\n\n" + renderDetails(m.session, m.bar.bar)
	}
	if m.showConfirm {
		body += "\n\n" + m.confirm.View()
	}
	if m.showError {
		body += "\n\n" + m.errorOverlay.View()
	}

	return appStyle.Render(body)
}

func (m appModel) playingView() string {
	var b strings.Builder

	b.WriteString(m.bar.View())
	b.WriteString("\n")
	b.WriteString(m.transcript.View())
	b.WriteString("\n\n")
	b.WriteString(m.input.View())
	b.WriteString("\n")

	help := "enter: 보내기  tab: 상세  ctrl+s: 새로고침  ctrl+y: 복사  ctrl+r: 처음으로  pgup/pgdn: 스크롤"
	switch {
	case m.busy():
		help = m.spinner.View() + " " + app.MsgWaiting
	case m.status != "":
		help = m.status
	}
	b.WriteString(helpStyle.Render(help))

	return b.String()
}

func (m *appModel) resize(width, height int) {
	m.width, m.height = width, height

	// bar, input, help line, blank lines and padding
	vh := height - 9
	if vh < 3 {
		vh = 3
	}
	m.transcript.setSize(width-4, vh)
	m.input.Width = width - 8
}

func (m *appModel) showErrorf(message, detail string) {
	m.showError = true
	m.errorOverlay = errorOverlayModel{message: message, detail: detail}
}

func (m appModel) busy() bool {
	return m.starting || m.choosing || m.refreshing
}

// turnCount prefers the server's counter and falls back to the number of
// choices resolved in this run.
func (m appModel) turnCount() int {
	if m.session.State != nil && m.session.State.Turn > 0 {
		return m.session.State.Turn
	}
	return m.resolved
}

func cmdClearStatus() tea.Cmd {
	return tea.Tick(2*time.Second, func(time.Time) tea.Msg {
		return clearStatusMsg{}
	})
}
