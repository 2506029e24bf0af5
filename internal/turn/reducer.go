// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package turn

import (
	"github.com/MKhiriev/go-parkour-client/models"
)

// Entry is one chat line the rendering layer appends right away.
type Entry struct {
	Kind models.EntryKind
	Text string
	Alt  string
}

// Outcome tells the rendering layer what a response means for the screen.
// Fields are applied in declaration order: Entries, State, then either
// GameOver or Reveal.
type Outcome struct {
	// Discarded is set when the response belongs to a session that is no
	// longer live. Nothing else in the Outcome is meaningful then.
	Discarded bool

	// Notice is a modal message. Used only by the start flow.
	Notice string

	// Entries are story/result/system lines, in display order.
	Entries []Entry

	// State, when non-nil, is synced into the resource display.
	State *models.GameState

	// GameOver switches to the game-over view with GameOverReason.
	GameOver       bool
	GameOverReason string

	// Reveal lists encounter items to sequence-render.
	Reveal []models.MessageItem

	// InputEnabled re-enables the choice input and send control.
	InputEnabled bool
}

// ApplyStart folds a start response into a fresh Session.
// A server-reported error leaves the session absent and yields a Notice.
func ApplyStart(resp models.StartResponse) (Session, Outcome) {
	if resp.Error != "" {
		return Session{}, Outcome{Notice: resp.Error}
	}

	next := Session{
		ID:               resp.SessionID,
		CurrentEncounter: resp.Encounter,
		State:            resp.State,
	}

	reveal := resp.Messages
	if len(reveal) == 0 && resp.Encounter != nil {
		reveal = resp.Encounter.Messages
	}

	return next, Outcome{
		State:        resp.State,
		Reveal:       reveal,
		InputEnabled: true,
	}
}

// StartFailed is the outcome of a start request that never produced a
// readable response. The session stays absent.
func StartFailed() (Session, Outcome) {
	return Session{}, Outcome{Notice: StartFailedNotice}
}

// ApplyChoice folds a choice response into s. sentFor is the session ID
// captured when the request was issued; a mismatch discards the response.
func ApplyChoice(s Session, sentFor string, resp models.ChoiceResponse) (Session, Outcome) {
	if !s.Owns(sentFor) {
		return s, Outcome{Discarded: true}
	}

	if resp.Error != "" {
		return s, Outcome{
			Entries:      []Entry{{Kind: models.EntrySystem, Text: resp.Error}},
			InputEnabled: true,
		}
	}

	var out Outcome

	if story := resp.ChoiceMapped.Narrative(); story != "" {
		out.Entries = append(out.Entries, Entry{Kind: models.EntryStory, Text: story})
	}
	if text := FormatResult(resp.Result); text != "" {
		out.Entries = append(out.Entries, Entry{Kind: models.EntryResult, Text: text})
	}

	next := s
	if resp.State != nil {
		next.State = resp.State
		out.State = resp.State
	}

	if resp.GameOver {
		out.GameOver = true
		out.GameOverReason = gameOverReason(resp.GameOverReason)
		return next, out
	}

	if resp.NextEncounter != nil {
		next.CurrentEncounter = resp.NextEncounter
		out.Reveal = resp.NextEncounter.Messages
		if len(out.Reveal) == 0 {
			out.Reveal = resp.Messages
		}
	}

	out.InputEnabled = true
	return next, out
}

// ChoiceFailed is the outcome of a choice request that failed in transport
// or returned an unreadable body. Session is left as it was.
func ChoiceFailed(s Session, sentFor string) (Session, Outcome) {
	if !s.Owns(sentFor) {
		return s, Outcome{Discarded: true}
	}
	return s, Outcome{
		Entries:      []Entry{{Kind: models.EntrySystem, Text: ChoiceFailedNotice}},
		InputEnabled: true,
	}
}

// ApplyState folds a state-refresh response into s.
func ApplyState(s Session, sentFor string, resp models.StateResponse) (Session, Outcome) {
	if !s.Owns(sentFor) {
		return s, Outcome{Discarded: true}
	}

	if resp.Error != "" {
		return s, Outcome{
			Entries:      []Entry{{Kind: models.EntrySystem, Text: resp.Error}},
			InputEnabled: true,
		}
	}

	next := s
	var out Outcome
	if resp.State != nil {
		next.State = resp.State
		out.State = resp.State
	}
	if resp.Encounter != nil {
		next.CurrentEncounter = resp.Encounter
	}

	if resp.GameOver {
		out.GameOver = true
		out.GameOverReason = gameOverReason(resp.GameOverReason)
		return next, out
	}

	out.InputEnabled = true
	return next, out
}

func gameOverReason(reason string) string {
	if reason == "" {
		return DefaultGameOverReason
	}
	return reason
}
