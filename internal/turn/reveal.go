// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package turn

import (
	"strings"
	"time"

	"github.com/MKhiriev/go-parkour-client/models"
)

// DefaultRevealStep is the stagger between consecutive encounter items.
const DefaultRevealStep = 500 * time.Millisecond

// Scheduled is one encounter item with its reveal offset.
type Scheduled struct {
	// Index is the item's position in the original list.
	Index int
	// Delay is Index*step, measured from the moment the plan is made.
	Delay time.Duration
	Entry Entry
}

// PlanReveal turns encounter items into a fixed-offset reveal schedule.
// Offsets are computed from the call, not chained: item i shows at i*step.
// Images without URL and blank text items are dropped but still use up their
// index, so the remaining items keep their original offsets.
func PlanReveal(items []models.MessageItem, step time.Duration) []Scheduled {
	if len(items) == 0 {
		return nil
	}
	if step < 0 {
		step = 0
	}

	plan := make([]Scheduled, 0, len(items))
	for i, item := range items {
		entry, ok := revealEntry(item)
		if !ok {
			continue
		}
		plan = append(plan, Scheduled{
			Index: i,
			Delay: time.Duration(i) * step,
			Entry: entry,
		})
	}
	return plan
}

func revealEntry(item models.MessageItem) (Entry, bool) {
	if item.IsImage() {
		if item.URL == "" {
			return Entry{}, false
		}
		return Entry{Kind: models.EntryImage, Text: item.URL, Alt: item.Alt}, true
	}

	text := strings.TrimSpace(item.Content)
	if text == "" {
		return Entry{}, false
	}
	return Entry{Kind: models.EntryBubble, Text: text}, true
}
