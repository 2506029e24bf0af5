// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package replay

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/MKhiriev/go-parkour-client/internal/logger"
	"github.com/MKhiriev/go-parkour-client/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type seqIDs struct{ n atomic.Int64 }

func (s *seqIDs) Generate() string {
	return fmt.Sprintf("s-%d", s.n.Add(1))
}

func intPtr(v int) *int { return &v }

func testScenario() Scenario {
	return Scenario{
		Start: models.StartResponse{
			Encounter: &models.Encounter{ID: "rooftop"},
			State:     &models.GameState{Resources: models.Resources{Health: intPtr(3)}},
			Messages:  []models.MessageItem{{Type: models.MessageText, Content: "옥상"}},
		},
		Steps: []models.ChoiceResponse{
			{
				ChoiceMapped:  &models.ChoiceMapped{Story: "점프"},
				State:         &models.GameState{Turn: 1},
				NextEncounter: &models.Encounter{ID: "alley"},
			},
			{Error: "선택지를 찾을 수 없습니다. 다시 입력해주세요."},
			{
				State:          &models.GameState{Turn: 2},
				GameOver:       true,
				GameOverReason: "체력이 0이 되어 사망했습니다.",
			},
		},
	}
}

func newTestPlayer() *Player {
	return NewPlayer(testScenario(), &seqIDs{}, logger.Nop())
}

func TestPlayer_Start(t *testing.T) {
	p := newTestPlayer()

	first := p.Start(context.Background())
	second := p.Start(context.Background())

	assert.Equal(t, "s-1", first.SessionID)
	assert.Equal(t, "s-2", second.SessionID)
	assert.Equal(t, "rooftop", first.Encounter.ID)
	assert.Empty(t, p.scenario.Start.SessionID, "recording is not modified")
}

func TestPlayer_StartRecordedError(t *testing.T) {
	p := NewPlayer(Scenario{Start: models.StartResponse{Error: "인카운터 파일을 찾을 수 없습니다"}}, &seqIDs{}, logger.Nop())

	resp := p.Start(context.Background())

	assert.Equal(t, "인카운터 파일을 찾을 수 없습니다", resp.Error)
	assert.Empty(t, resp.SessionID)
	assert.Empty(t, p.sessions)
}

func TestPlayer_FullRun(t *testing.T) {
	ctx := context.Background()
	p := newTestPlayer()
	id := p.Start(ctx).SessionID

	step := p.Choose(ctx, id, "뛴다")
	assert.Equal(t, "점프", step.ChoiceMapped.Narrative())
	state := p.State(ctx, id)
	assert.Equal(t, "alley", state.Encounter.ID)
	assert.Equal(t, 1, state.State.Turn)

	step = p.Choose(ctx, id, "날아간다")
	assert.NotEmpty(t, step.Error)
	state = p.State(ctx, id)
	assert.Equal(t, 1, state.State.Turn, "recorded error leaves the snapshot alone")

	step = p.Choose(ctx, id, "건넌다")
	assert.True(t, step.GameOver)
	state = p.State(ctx, id)
	assert.True(t, state.GameOver)
	assert.Equal(t, "체력이 0이 되어 사망했습니다.", state.GameOverReason)
	assert.Equal(t, "alley", state.Encounter.ID, "game over keeps the last encounter")

	assert.Equal(t, MsgGameOver, p.Choose(ctx, id, "다시").Error)
}

func TestPlayer_ChooseErrors(t *testing.T) {
	ctx := context.Background()
	p := newTestPlayer()
	id := p.Start(ctx).SessionID

	assert.Equal(t, MsgUnknownSession, p.Choose(ctx, "missing", "x").Error)
	assert.Equal(t, MsgEmptyInput, p.Choose(ctx, id, "   ").Error)
	assert.Equal(t, 0, p.sessions[id].next, "rejected input consumes no step")
}

func TestPlayer_RunsOutOfSteps(t *testing.T) {
	ctx := context.Background()
	p := NewPlayer(Scenario{
		Start: models.StartResponse{Encounter: &models.Encounter{ID: "e"}},
		Steps: []models.ChoiceResponse{{NextEncounter: &models.Encounter{ID: "f"}}},
	}, &seqIDs{}, logger.Nop())
	id := p.Start(ctx).SessionID

	p.Choose(ctx, id, "x")

	assert.Equal(t, MsgNoChoices, p.Choose(ctx, id, "y").Error)
}

func TestPlayer_StateUnknownSession(t *testing.T) {
	assert.Equal(t, MsgUnknownSession, newTestPlayer().State(context.Background(), "nope").Error)
}

func TestPlayer_SessionsAreIndependent(t *testing.T) {
	ctx := context.Background()
	p := newTestPlayer()
	a := p.Start(ctx).SessionID
	b := p.Start(ctx).SessionID

	p.Choose(ctx, a, "x")

	assert.Equal(t, "alley", p.State(ctx, a).Encounter.ID)
	assert.Equal(t, "rooftop", p.State(ctx, b).Encounter.ID)
}

func TestPlayer_ConcurrentSessions(t *testing.T) {
	ctx := context.Background()
	p := newTestPlayer()

	var wg sync.WaitGroup
	for range 20 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			id := p.Start(ctx).SessionID
			p.Choose(ctx, id, "x")
			p.State(ctx, id)
		}()
	}
	wg.Wait()

	require.Len(t, p.sessions, 20)
	for _, r := range p.sessions {
		assert.Equal(t, 1, r.next)
	}
}
