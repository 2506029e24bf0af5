// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package turn

import (
	"fmt"
	"sort"
	"strings"

	"github.com/MKhiriev/go-parkour-client/models"
)

// ResourceMax is the display cap of every resource.
const ResourceMax = 3

// Baselines used when the server omits a resource.
const (
	defaultHealth = 3
	defaultMental = 3
	defaultMoney  = 0
)

// Gauge is one resource ready for display.
type Gauge struct {
	// Name is the wire name ("health", "mental", "money").
	Name string
	// Label is the on-screen name.
	Label string
	// Value is clamped to [0, ResourceMax].
	Value int
}

// Icons renders Value filled icons followed by the remaining empty ones.
func (g Gauge) Icons(filled, empty string) string {
	return strings.Repeat(filled, g.Value) + strings.Repeat(empty, ResourceMax-g.Value)
}

// Ratio renders "N/3".
func (g Gauge) Ratio() string {
	return fmt.Sprintf("%d/%d", g.Value, ResourceMax)
}

// Bar is the resource/gadget display model derived from a snapshot.
type Bar struct {
	Health Gauge
	Mental Gauge
	Money  Gauge

	// Gadgets are held gadget names, sorted. Counts are not shown.
	Gadgets []string

	// Turn is the server's turn counter.
	Turn int
}

// NewBar builds the display model from state. ok is false when state is nil,
// in which case the caller keeps whatever it showed before.
func NewBar(state *models.GameState) (bar Bar, ok bool) {
	if state == nil {
		return Bar{}, false
	}

	bar = Bar{
		Health: Gauge{Name: models.ResourceHealth, Label: "체력", Value: resourceValue(state.Resources.Health, defaultHealth)},
		Mental: Gauge{Name: models.ResourceMental, Label: "멘탈", Value: resourceValue(state.Resources.Mental, defaultMental)},
		Money:  Gauge{Name: models.ResourceMoney, Label: "돈", Value: resourceValue(state.Resources.Money, defaultMoney)},
		Turn:   state.Turn,
	}

	bar.Gadgets = make([]string, 0, len(state.Gadgets))
	for name := range state.Gadgets {
		bar.Gadgets = append(bar.Gadgets, name)
	}
	sort.Strings(bar.Gadgets)

	return bar, true
}

// Gauges returns the three gauges in display order.
func (b Bar) Gauges() []Gauge {
	return []Gauge{b.Health, b.Mental, b.Money}
}

// GadgetList joins gadget names with ", " or returns the placeholder.
func (b Bar) GadgetList() string {
	if len(b.Gadgets) == 0 {
		return NoGadgetsPlaceholder
	}
	return strings.Join(b.Gadgets, ", ")
}

func resourceValue(v *int, fallback int) int {
	value := fallback
	if v != nil {
		value = *v
	}
	return clamp(value, 0, ResourceMax)
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
