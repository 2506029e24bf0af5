// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// EntryKind classifies a transcript entry for styling and export.
type EntryKind string

const (
	EntryPlayer EntryKind = "player"
	EntryStory  EntryKind = "story"
	EntryResult EntryKind = "result"
	EntrySystem EntryKind = "system"
	EntryBubble EntryKind = "bubble"
	EntryImage  EntryKind = "image"
)

// TranscriptEntry is one rendered chat line, as kept in the local play-log.
type TranscriptEntry struct {
	// ID is a client-generated UUID.
	ID string `json:"id"`

	// SessionID links the entry to its run.
	SessionID string `json:"session_id"`

	// Seq orders entries inside a session.
	Seq int64 `json:"seq"`

	Kind EntryKind `json:"kind"`

	// Content is the text of a bubble, or the URL of an image.
	Content string `json:"content"`

	// Alt is the image alt text. Empty for text entries.
	Alt string `json:"alt,omitempty"`

	CreatedAt time.Time `json:"created_at"`
}

// SessionRecord summarises one played run in the local play-log.
type SessionRecord struct {
	SessionID      string     `json:"session_id"`
	StartedAt      time.Time  `json:"started_at"`
	FinishedAt     *time.Time `json:"finished_at,omitempty"`
	Turns          int        `json:"turns"`
	GameOverReason string     `json:"game_over_reason,omitempty"`
}

// Finished reports whether the run reached a game-over.
func (s SessionRecord) Finished() bool {
	return s.FinishedAt != nil
}
