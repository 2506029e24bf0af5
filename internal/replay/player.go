// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package replay

import (
	"context"
	"strings"
	"sync"

	"github.com/MKhiriev/go-parkour-client/internal/logger"
	"github.com/MKhiriev/go-parkour-client/models"
)

// run is the replay position of one session.
type run struct {
	next      int
	encounter *models.Encounter
	state     *models.GameState
	gameOver  bool
	reason    string
}

// Player serves a [Scenario] to concurrent sessions. It is safe for
// concurrent use.
type Player struct {
	scenario Scenario
	ids      IDGenerator
	logger   *logger.Logger

	mu       sync.Mutex
	sessions map[string]*run
}

// NewPlayer constructs a Player for scenario.
func NewPlayer(scenario Scenario, ids IDGenerator, log *logger.Logger) *Player {
	return &Player{
		scenario: scenario,
		ids:      ids,
		logger:   log,
		sessions: make(map[string]*run),
	}
}

// Start implements [Replayer]. A scenario whose start is a recorded error
// serves that error and opens no session.
func (p *Player) Start(ctx context.Context) models.StartResponse {
	resp := p.scenario.Start
	if resp.Error != "" {
		return resp
	}

	id := p.ids.Generate()
	resp.SessionID = id

	p.mu.Lock()
	p.sessions[id] = &run{encounter: resp.Encounter, state: resp.State}
	total := len(p.sessions)
	p.mu.Unlock()

	logger.FromContextOr(ctx, p.logger).Info().Str("session_id", id).Int("sessions", total).Msg("replay session started")
	return resp
}

// Choose implements [Replayer]. Every non-empty input consumes one step,
// recorded error steps included.
func (p *Player) Choose(ctx context.Context, sessionID, input string) models.ChoiceResponse {
	p.mu.Lock()
	defer p.mu.Unlock()

	r, ok := p.sessions[sessionID]
	switch {
	case !ok:
		return models.ChoiceResponse{Error: MsgUnknownSession}
	case r.gameOver:
		return models.ChoiceResponse{Error: MsgGameOver}
	case strings.TrimSpace(input) == "":
		return models.ChoiceResponse{Error: MsgEmptyInput}
	case r.next >= len(p.scenario.Steps):
		return models.ChoiceResponse{Error: MsgNoChoices}
	}

	step := p.scenario.Steps[r.next]
	r.next++

	if step.Error == "" {
		if step.State != nil {
			r.state = step.State
		}
		if step.GameOver {
			r.gameOver = true
			r.reason = step.GameOverReason
		} else if step.NextEncounter != nil {
			r.encounter = step.NextEncounter
		}
	}

	logger.FromContextOr(ctx, p.logger).Debug().
		Str("session_id", sessionID).
		Int("step", r.next).
		Bool("game_over", r.gameOver).
		Msg("replay step served")

	return step
}

// State implements [Replayer].
func (p *Player) State(_ context.Context, sessionID string) models.StateResponse {
	p.mu.Lock()
	defer p.mu.Unlock()

	r, ok := p.sessions[sessionID]
	if !ok {
		return models.StateResponse{Error: MsgUnknownSession}
	}

	return models.StateResponse{
		State:          r.state,
		Encounter:      r.encounter,
		GameOver:       r.gameOver,
		GameOverReason: r.reason,
	}
}
