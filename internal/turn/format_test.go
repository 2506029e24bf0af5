// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package turn

import (
	"testing"
	"time"

	"github.com/MKhiriev/go-parkour-client/models"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatResult(t *testing.T) {
	tests := []struct {
		name   string
		result *models.ChoiceResult
		want   string
	}{
		{
			name:   "nil result",
			result: nil,
			want:   "",
		},
		{
			name:   "zero deltas are suppressed",
			result: &models.ChoiceResult{Resources: &models.ResourceDelta{Health: -1, Money: 0}},
			want:   "자원 변화: health: -1",
		},
		{
			name:   "positive deltas get explicit plus",
			result: &models.ChoiceResult{Resources: &models.ResourceDelta{Mental: 1, Money: 2}},
			want:   "자원 변화: mental: +1, money: +2",
		},
		{
			name: "gadget changes, unknown action dropped, default amount",
			result: &models.ChoiceResult{Gadgets: []models.GadgetChange{
				{ID: "우산", Action: models.GadgetAcquire, Amount: intPtr(2)},
				{ID: "지도", Action: "trade", Amount: intPtr(1)},
				{ID: "근력", Action: models.GadgetLose},
			}},
			want: "가젯 변화: 우산 획득 (+2), 근력 손실 (-1)",
		},
		{
			name: "both lines",
			result: &models.ChoiceResult{
				Resources: &models.ResourceDelta{Health: 1},
				Gadgets:   []models.GadgetChange{{ID: "우산", Action: models.GadgetLose, Amount: intPtr(1)}},
			},
			want: "자원 변화: health: +1\n가젯 변화: 우산 손실 (-1)",
		},
		{
			name: "everything empty",
			result: &models.ChoiceResult{
				Resources: &models.ResourceDelta{},
				Gadgets:   []models.GadgetChange{{ID: "x", Action: "unknown"}},
			},
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatResult(tt.result))
		})
	}
}

func TestFormatResult_OmitsMoneyWhenZero(t *testing.T) {
	got := FormatResult(&models.ChoiceResult{Resources: &models.ResourceDelta{Health: -1, Money: 0}})

	assert.Contains(t, got, "health: -1")
	assert.NotContains(t, got, "money")
}

// ── NewBar ───────────────────────────────────────────────────────────────────

func TestNewBar_Clamps(t *testing.T) {
	bar, ok := NewBar(&models.GameState{
		Resources: models.Resources{Health: intPtr(-1), Mental: intPtr(5), Money: intPtr(2)},
	})
	require.True(t, ok)

	assert.Equal(t, "0/3", bar.Health.Ratio())
	assert.Equal(t, "3/3", bar.Mental.Ratio())
	assert.Equal(t, "2/3", bar.Money.Ratio())
	assert.Equal(t, "○○○", bar.Health.Icons("●", "○"))
	assert.Equal(t, "●●○", bar.Money.Icons("●", "○"))
}

func TestNewBar_Defaults(t *testing.T) {
	bar, ok := NewBar(&models.GameState{})
	require.True(t, ok)

	assert.Equal(t, 3, bar.Health.Value)
	assert.Equal(t, 3, bar.Mental.Value)
	assert.Equal(t, 0, bar.Money.Value)
	assert.Equal(t, NoGadgetsPlaceholder, bar.GadgetList())
}

func TestNewBar_NilState(t *testing.T) {
	_, ok := NewBar(nil)
	assert.False(t, ok)
}

func TestNewBar_GadgetNamesOnly(t *testing.T) {
	bar, ok := NewBar(&models.GameState{Gadgets: map[string]int{"날렵함": 2, "근력": 1}})
	require.True(t, ok)

	assert.Equal(t, "근력, 날렵함", bar.GadgetList())
	assert.NotContains(t, bar.GadgetList(), "2")
}

func TestBar_GaugesOrder(t *testing.T) {
	bar, _ := NewBar(&models.GameState{})
	names := make([]string, 0, 3)
	for _, g := range bar.Gauges() {
		names = append(names, g.Name)
	}
	assert.Equal(t, []string{"health", "mental", "money"}, names)
}

// ── PlanReveal ───────────────────────────────────────────────────────────────

func TestPlanReveal_SkipsEmptyImageKeepsOffsets(t *testing.T) {
	items := []models.MessageItem{
		{Type: models.MessageText, Content: " 첫 번째 "},
		{Type: models.MessageImage, URL: ""},
		{Type: models.MessageText, Content: "세 번째"},
	}

	plan := PlanReveal(items, 500*time.Millisecond)

	want := []Scheduled{
		{Index: 0, Delay: 0, Entry: Entry{Kind: models.EntryBubble, Text: "첫 번째"}},
		{Index: 2, Delay: 1000 * time.Millisecond, Entry: Entry{Kind: models.EntryBubble, Text: "세 번째"}},
	}
	if diff := cmp.Diff(want, plan); diff != "" {
		t.Errorf("plan mismatch (-want +got):\n%s", diff)
	}
}

func TestPlanReveal_ImageWithAlt(t *testing.T) {
	plan := PlanReveal([]models.MessageItem{
		{Type: models.MessageImage, URL: "/static/img/rooftop.png", Alt: "옥상"},
	}, DefaultRevealStep)

	require.Len(t, plan, 1)
	assert.Equal(t, Entry{Kind: models.EntryImage, Text: "/static/img/rooftop.png", Alt: "옥상"}, plan[0].Entry)
}

func TestPlanReveal_UnknownTypeIsText(t *testing.T) {
	plan := PlanReveal([]models.MessageItem{{Type: "narration", Content: "안개"}}, DefaultRevealStep)

	require.Len(t, plan, 1)
	assert.Equal(t, models.EntryBubble, plan[0].Entry.Kind)
}

func TestPlanReveal_Empty(t *testing.T) {
	assert.Nil(t, PlanReveal(nil, DefaultRevealStep))
	assert.Empty(t, PlanReveal([]models.MessageItem{{Content: "   "}}, DefaultRevealStep))
}

func TestPlanReveal_FixedOffsetsNotCumulative(t *testing.T) {
	items := make([]models.MessageItem, 5)
	for i := range items {
		items[i] = models.MessageItem{Content: "x"}
	}

	plan := PlanReveal(items, 500*time.Millisecond)

	require.Len(t, plan, 5)
	assert.Equal(t, 2000*time.Millisecond, plan[4].Delay)
}
