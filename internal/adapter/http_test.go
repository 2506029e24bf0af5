// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/MKhiriev/go-parkour-client/internal/config"
	"github.com/MKhiriev/go-parkour-client/internal/logger"
	"github.com/MKhiriev/go-parkour-client/internal/utils"
	"github.com/MKhiriev/go-parkour-client/models"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestAdapter(t *testing.T, serverURL string) *httpGameServerAdapter {
	t.Helper()
	adapterCfg := config.ClientAdapter{HTTPAddress: serverURL, RequestTimeout: 2 * time.Second}

	a, err := NewHTTPGameServerAdapter(adapterCfg, logger.Nop())
	require.NoError(t, err)
	return a.(*httpGameServerAdapter)
}

// newGameServer routes the three game endpoints to the given handlers.
// A nil handler leaves the route unregistered.
func newGameServer(t *testing.T, start, choice, state http.HandlerFunc) *httptest.Server {
	t.Helper()
	r := chi.NewRouter()
	r.Route("/api/game", func(r chi.Router) {
		if start != nil {
			r.Post("/start", start)
		}
		if choice != nil {
			r.Post("/{session_id}/choice", choice)
		}
		if state != nil {
			r.Get("/{session_id}/state", state)
		}
	})

	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)
	return srv
}

func intPtr(v int) *int { return &v }

// ── NewHTTPGameServerAdapter ─────────────────────────────────────────────────

func TestNewHTTPGameServerAdapter_InvalidAddress(t *testing.T) {
	a, err := NewHTTPGameServerAdapter(config.ClientAdapter{HTTPAddress: ""}, logger.Nop())

	assert.Nil(t, a)
	assert.Error(t, err)
}

// ── StartSession ─────────────────────────────────────────────────────────────

func TestStartSession_Success(t *testing.T) {
	srv := newGameServer(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = utils.WriteJSON(w, map[string]any{
			"session_id": "abc",
			"encounter": map[string]any{
				"id":   "rooftop",
				"name": "옥상",
				"choices": []map[string]any{
					{"id": "jump", "text": "뛰어넘는다"},
				},
			},
			"state": map[string]any{
				"resources": map[string]any{"health": 3, "mental": 3, "money": 0},
				"gadgets":   map[string]int{"근력": 1},
				"flags":     []string{},
			},
			"messages": []map[string]any{
				{"type": "text", "content": "당신은 옥상에 서 있다."},
				{"type": "image", "url": "/static/img/rooftop.png", "alt": "옥상"},
			},
		}, http.StatusOK)
	}, nil, nil)

	a := newTestAdapter(t, srv.URL)
	got, err := a.StartSession(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "abc", got.SessionID)
	require.NotNil(t, got.Encounter)
	assert.Equal(t, "rooftop", got.Encounter.ID)
	require.NotNil(t, got.State)
	assert.Equal(t, 3, *got.State.Resources.Health)
	assert.Equal(t, map[string]int{"근력": 1}, got.State.Gadgets)
	require.Len(t, got.Messages, 2)
	assert.True(t, got.Messages[1].IsImage())
	assert.Equal(t, "옥상", got.Messages[1].Alt)
}

func TestStartSession_ServerReportedError(t *testing.T) {
	srv := newGameServer(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = utils.WriteJSON(w, map[string]string{"error": "인카운터 파일을 찾을 수 없습니다"}, http.StatusOK)
	}, nil, nil)

	got, err := newTestAdapter(t, srv.URL).StartSession(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "인카운터 파일을 찾을 수 없습니다", got.Error)
	assert.Empty(t, got.SessionID)
}

func TestStartSession_EmptySessionIDIsMalformed(t *testing.T) {
	srv := newGameServer(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = utils.WriteJSON(w, map[string]any{"session_id": "  "}, http.StatusOK)
	}, nil, nil)

	_, err := newTestAdapter(t, srv.URL).StartSession(context.Background())

	assert.ErrorIs(t, err, ErrMalformedResponse)
	assert.ErrorIs(t, err, ErrEmptySessionID)
}

func TestStartSession_InvalidJSON(t *testing.T) {
	srv := newGameServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"session_id":`))
	}, nil, nil)

	_, err := newTestAdapter(t, srv.URL).StartSession(context.Background())

	assert.ErrorIs(t, err, ErrMalformedResponse)
}

func TestStartSession_StatusMapping(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		wantErr error
	}{
		{"bad request", http.StatusBadRequest, ErrBadRequest},
		{"unprocessable", http.StatusUnprocessableEntity, ErrBadRequest},
		{"not found", http.StatusNotFound, ErrNotFound},
		{"internal", http.StatusInternalServerError, ErrInternalServerError},
		{"bad gateway", http.StatusBadGateway, ErrBadGateway},
		{"unavailable", http.StatusServiceUnavailable, ErrBadGateway},
		{"teapot", http.StatusTeapot, ErrUnexpectedStatus},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := newGameServer(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
			}, nil, nil)

			_, err := newTestAdapter(t, srv.URL).StartSession(context.Background())

			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestStartSession_Unreachable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	_, err := newTestAdapter(t, url).StartSession(context.Background())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "start request")
}

func TestStartSession_ContextCancelled(t *testing.T) {
	srv := newGameServer(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = utils.WriteJSON(w, map[string]any{"session_id": "abc"}, http.StatusOK)
	}, nil, nil)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := newTestAdapter(t, srv.URL).StartSession(ctx)

	assert.ErrorIs(t, err, context.Canceled)
}

// ── SubmitChoice ─────────────────────────────────────────────────────────────

func TestSubmitChoice_Success(t *testing.T) {
	var gotSession string
	var gotBody models.ChoiceRequest

	srv := newGameServer(t, nil, func(w http.ResponseWriter, r *http.Request) {
		gotSession = chi.URLParam(r, "session_id")
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))

		_, _ = utils.WriteJSON(w, map[string]any{
			"choice_mapped": map[string]any{"id": "jump", "story": "당신은 벽을 타고 올랐다."},
			"result": map[string]any{
				"resources": map[string]int{"health": -1},
				"gadgets":   []map[string]any{{"id": "우산", "action": "acquire"}},
				"flags":     map[string]bool{"met_guard": true},
			},
			"state":          map[string]any{"resources": map[string]int{"health": 2}},
			"game_over":      false,
			"next_encounter": map[string]any{"id": "alley", "messages": []map[string]string{{"type": "text", "content": "골목"}}},
		}, http.StatusOK)
	}, nil)

	got, err := newTestAdapter(t, srv.URL).SubmitChoice(context.Background(), "abc", "벽을 넘는다")

	require.NoError(t, err)
	assert.Equal(t, "abc", gotSession)
	assert.Equal(t, "벽을 넘는다", gotBody.Input)

	assert.Equal(t, "당신은 벽을 타고 올랐다.", got.ChoiceMapped.Narrative())
	require.NotNil(t, got.Result)
	assert.Equal(t, -1, got.Result.Resources.Health)
	require.Len(t, got.Result.Gadgets, 1)
	assert.Nil(t, got.Result.Gadgets[0].Amount)
	assert.Equal(t, 1, got.Result.Gadgets[0].Count())
	assert.JSONEq(t, `{"met_guard":true}`, string(got.Result.Flags))
	assert.False(t, got.GameOver)
	require.NotNil(t, got.NextEncounter)
	assert.Equal(t, "alley", got.NextEncounter.ID)
}

func TestSubmitChoice_GameOver(t *testing.T) {
	srv := newGameServer(t, nil, func(w http.ResponseWriter, r *http.Request) {
		_, _ = utils.WriteJSON(w, map[string]any{
			"game_over":         true,
			"game_over_reason":  "체력이 0이 되어 사망했습니다.",
			"game_over_message": "게임 오버",
			"result":            map[string]any{"gadgets": []map[string]any{{"id": "근력", "action": "lose", "amount": 2}}},
		}, http.StatusOK)
	}, nil)

	got, err := newTestAdapter(t, srv.URL).SubmitChoice(context.Background(), "abc", "x")

	require.NoError(t, err)
	assert.True(t, got.GameOver)
	assert.Equal(t, "체력이 0이 되어 사망했습니다.", got.GameOverReason)
	assert.Equal(t, intPtr(2), got.Result.Gadgets[0].Amount)
	assert.Nil(t, got.NextEncounter)
}

func TestSubmitChoice_ServerReportedError(t *testing.T) {
	srv := newGameServer(t, nil, func(w http.ResponseWriter, r *http.Request) {
		_, _ = utils.WriteJSON(w, map[string]string{"error": "선택지를 찾을 수 없습니다. 다시 입력해주세요."}, http.StatusOK)
	}, nil)

	got, err := newTestAdapter(t, srv.URL).SubmitChoice(context.Background(), "abc", "날아간다")

	require.NoError(t, err)
	assert.Equal(t, "선택지를 찾을 수 없습니다. 다시 입력해주세요.", got.Error)
}

func TestSubmitChoice_EscapesSessionID(t *testing.T) {
	var gotSession string
	srv := newGameServer(t, nil, func(w http.ResponseWriter, r *http.Request) {
		gotSession = chi.URLParam(r, "session_id")
		_, _ = utils.WriteJSON(w, map[string]any{}, http.StatusOK)
	}, nil)

	_, err := newTestAdapter(t, srv.URL).SubmitChoice(context.Background(), "a/b", "x")

	require.NoError(t, err)
	assert.Equal(t, "a%2Fb", gotSession)
}

func TestSubmitChoice_EmptySessionID(t *testing.T) {
	a := newTestAdapter(t, "localhost:1")

	_, err := a.SubmitChoice(context.Background(), "", "x")

	assert.ErrorIs(t, err, ErrEmptySessionID)
}

func TestSubmitChoice_NotFound(t *testing.T) {
	srv := newGameServer(t, nil, nil, nil)

	_, err := newTestAdapter(t, srv.URL).SubmitChoice(context.Background(), "abc", "x")

	assert.ErrorIs(t, err, ErrNotFound)
}

// ── GetState ─────────────────────────────────────────────────────────────────

func TestGetState_Success(t *testing.T) {
	srv := newGameServer(t, nil, nil, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "abc", chi.URLParam(r, "session_id"))
		_, _ = utils.WriteJSON(w, map[string]any{
			"state":     map[string]any{"resources": map[string]int{"health": 1, "mental": 2, "money": 3}, "turn": 4},
			"encounter": map[string]any{"id": "alley"},
			"game_over": false,
		}, http.StatusOK)
	})

	got, err := newTestAdapter(t, srv.URL).GetState(context.Background(), "abc")

	require.NoError(t, err)
	require.NotNil(t, got.State)
	assert.Equal(t, 4, got.State.Turn)
	assert.Equal(t, 3, *got.State.Resources.Money)
	assert.Equal(t, "alley", got.Encounter.ID)
}

func TestGetState_UnknownSession(t *testing.T) {
	srv := newGameServer(t, nil, nil, func(w http.ResponseWriter, r *http.Request) {
		_, _ = utils.WriteJSON(w, map[string]string{"error": "세션이 존재하지 않습니다."}, http.StatusOK)
	})

	got, err := newTestAdapter(t, srv.URL).GetState(context.Background(), "gone")

	require.NoError(t, err)
	assert.Equal(t, "세션이 존재하지 않습니다.", got.Error)
}

func TestGetState_InternalError(t *testing.T) {
	srv := newGameServer(t, nil, nil, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	})

	_, err := newTestAdapter(t, srv.URL).GetState(context.Background(), "abc")

	require.ErrorIs(t, err, ErrInternalServerError)
	assert.Contains(t, err.Error(), "boom")
}
