// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "encoding/json"

// StartResponse is the body of POST /api/game/start.
// Either Error is set, or the remaining fields describe the new session.
type StartResponse struct {
	// Error is a server-reported, user-facing failure message.
	Error string `json:"error,omitempty"`

	// SessionID is the opaque token used in all further requests.
	SessionID string `json:"session_id"`

	// Encounter is the first encounter of the run.
	Encounter *Encounter `json:"encounter,omitempty"`

	// State is the initial game-state snapshot.
	State *GameState `json:"state,omitempty"`

	// Messages are the encounter's items to reveal, including the input hint
	// bubble appended by the server.
	Messages []MessageItem `json:"messages,omitempty"`
}

// ChoiceRequest is the body of POST /api/game/{session_id}/choice.
type ChoiceRequest struct {
	Input string `json:"input"`
}

// ChoiceMapped describes the scripted choice the server mapped the player's
// free text to.
type ChoiceMapped struct {
	ID          string `json:"id,omitempty"`
	Text        string `json:"text,omitempty"`
	Description string `json:"description,omitempty"`
	Story       string `json:"story,omitempty"`
	Explanation string `json:"explanation,omitempty"`
}

// Narrative returns the story text, falling back to the explanation.
func (c *ChoiceMapped) Narrative() string {
	if c == nil {
		return ""
	}
	if c.Story != "" {
		return c.Story
	}
	return c.Explanation
}

// ResourceDelta holds per-resource changes caused by a choice.
type ResourceDelta struct {
	Health int `json:"health,omitempty"`
	Mental int `json:"mental,omitempty"`
	Money  int `json:"money,omitempty"`
}

// GadgetAction is the kind of inventory change.
type GadgetAction string

const (
	GadgetAcquire GadgetAction = "acquire"
	GadgetLose    GadgetAction = "lose"
)

// GadgetChange is one inventory change caused by a choice.
type GadgetChange struct {
	ID     string       `json:"id"`
	Action GadgetAction `json:"action"`
	// Amount defaults to 1 when the server omits it.
	Amount *int `json:"amount,omitempty"`
}

// Count returns Amount or 1 when it is missing.
func (g GadgetChange) Count() int {
	if g.Amount == nil {
		return 1
	}
	return *g.Amount
}

// ChoiceResult is the presentational outcome of a resolved choice.
type ChoiceResult struct {
	Resources *ResourceDelta  `json:"resources,omitempty"`
	Gadgets   []GadgetChange  `json:"gadgets,omitempty"`
	Flags     json.RawMessage `json:"flags,omitempty"`
}

// ChoiceResponse is the body of POST /api/game/{session_id}/choice.
type ChoiceResponse struct {
	Error           string        `json:"error,omitempty"`
	ChoiceMapped    *ChoiceMapped `json:"choice_mapped,omitempty"`
	Result          *ChoiceResult `json:"result,omitempty"`
	State           *GameState    `json:"state,omitempty"`
	GameOver        bool          `json:"game_over,omitempty"`
	GameOverReason  string        `json:"game_over_reason,omitempty"`
	GameOverMessage string        `json:"game_over_message,omitempty"`
	NextEncounter   *Encounter    `json:"next_encounter,omitempty"`
	Messages        []MessageItem `json:"messages,omitempty"`
}

// StateResponse is the body of GET /api/game/{session_id}/state.
type StateResponse struct {
	Error          string     `json:"error,omitempty"`
	State          *GameState `json:"state,omitempty"`
	Encounter      *Encounter `json:"encounter,omitempty"`
	GameOver       bool       `json:"game_over,omitempty"`
	GameOverReason string     `json:"game_over_reason,omitempty"`
}
