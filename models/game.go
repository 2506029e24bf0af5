// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Resource names as they appear on the wire.
const (
	ResourceHealth = "health"
	ResourceMental = "mental"
	ResourceMoney  = "money"
)

// Resources is the server's snapshot of the three bounded player stats.
// Fields are pointers so that a missing value can be told apart from zero;
// display code substitutes a per-resource baseline for nil.
type Resources struct {
	Health *int `json:"health,omitempty"`
	Mental *int `json:"mental,omitempty"`
	Money  *int `json:"money,omitempty"`
}

// GameState is the latest game-state snapshot returned by the server.
// The client never mutates it; every response replaces it wholesale.
type GameState struct {
	// Resources holds health, mental and money.
	Resources Resources `json:"resources"`

	// Gadgets maps gadget name to the number held.
	Gadgets map[string]int `json:"gadgets"`

	// Flags lists story flags raised so far. Not rendered.
	Flags []string `json:"flags,omitempty"`

	// Turn is the number of resolved choices.
	Turn int `json:"turn,omitempty"`

	// Level is the current difficulty level.
	Level int `json:"level,omitempty"`
}

// MessageType distinguishes image items from text bubbles. Anything that is
// not [MessageImage] is treated as text.
type MessageType string

const (
	MessageText  MessageType = "text"
	MessageImage MessageType = "image"
)

// MessageItem is one element of an encounter's ordered message list.
type MessageItem struct {
	Type    MessageType `json:"type"`
	Content string      `json:"content,omitempty"`
	URL     string      `json:"url,omitempty"`
	Alt     string      `json:"alt,omitempty"`
}

// IsImage reports whether the item renders as an image node.
func (m MessageItem) IsImage() bool {
	return m.Type == MessageImage
}

// Choice is a scripted option attached to an encounter. The client does not
// offer choices directly, the player types free text and the server maps it.
type Choice struct {
	ID          string `json:"id"`
	Text        string `json:"text"`
	Description string `json:"description,omitempty"`
	Story       string `json:"story,omitempty"`
}

// Encounter is a server-defined beat of the narrative.
type Encounter struct {
	ID          string        `json:"id,omitempty"`
	Name        string        `json:"name,omitempty"`
	Description string        `json:"description,omitempty"`
	Messages    []MessageItem `json:"messages,omitempty"`
	Choices     []Choice      `json:"choices,omitempty"`
}
