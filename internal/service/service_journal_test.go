// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/MKhiriev/go-parkour-client/internal/logger"
	"github.com/MKhiriev/go-parkour-client/internal/mock"
	"github.com/MKhiriev/go-parkour-client/internal/store"
	"github.com/MKhiriev/go-parkour-client/internal/turn"
	"github.com/MKhiriev/go-parkour-client/models"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var fixedNow = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

type seqIDs struct{ n int }

func (g *seqIDs) Generate() string {
	g.n++
	return fmt.Sprintf("id-%d", g.n)
}

func newTestJournalService(t *testing.T) (*mock.MockJournalRepository, *journalService) {
	t.Helper()
	ctrl := gomock.NewController(t)
	repo := mock.NewMockJournalRepository(ctrl)
	return repo, &journalService{
		repo:         repo,
		ids:          &seqIDs{},
		historyLimit: 5,
		now:          func() time.Time { return fixedNow },
		logger:       logger.Nop(),
	}
}

func TestJournalService_BeginRun(t *testing.T) {
	repo, svc := newTestJournalService(t)
	repo.EXPECT().
		CreateSession(gomock.Any(), models.SessionRecord{SessionID: "s-1", StartedAt: fixedNow}).
		Return(nil)

	require.NoError(t, svc.BeginRun(context.Background(), "s-1"))
}

func TestJournalService_BeginRun_Errors(t *testing.T) {
	repo, svc := newTestJournalService(t)

	assert.ErrorIs(t, svc.BeginRun(context.Background(), ""), ErrNoSession)

	repo.EXPECT().CreateSession(gomock.Any(), gomock.Any()).Return(store.ErrSessionAlreadyExists)
	assert.ErrorIs(t, svc.BeginRun(context.Background(), "s-1"), store.ErrSessionAlreadyExists)
}

func TestJournalService_Record(t *testing.T) {
	repo, svc := newTestJournalService(t)

	var got []models.TranscriptEntry
	repo.EXPECT().
		AppendEntries(gomock.Any(), "s-1", gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, entries ...models.TranscriptEntry) error {
			got = entries
			return nil
		})

	err := svc.Record(context.Background(), "s-1",
		turn.Entry{Kind: models.EntryPlayer, Text: "점프"},
		turn.Entry{Kind: models.EntryImage, Text: "/img/a.png", Alt: "옥상"},
	)
	require.NoError(t, err)

	want := []models.TranscriptEntry{
		{ID: "id-1", SessionID: "s-1", Kind: models.EntryPlayer, Content: "점프", CreatedAt: fixedNow},
		{ID: "id-2", SessionID: "s-1", Kind: models.EntryImage, Content: "/img/a.png", Alt: "옥상", CreatedAt: fixedNow},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("entries mismatch (-want +got):\n%s", diff)
	}
}

func TestJournalService_Record_NothingToWrite(t *testing.T) {
	_, svc := newTestJournalService(t)

	assert.NoError(t, svc.Record(context.Background(), "s-1"))
	assert.ErrorIs(t, svc.Record(context.Background(), "", turn.Entry{Text: "x"}), ErrNoSession)
}

func TestJournalService_UpdateTurnsAndFinish(t *testing.T) {
	repo, svc := newTestJournalService(t)
	gomock.InOrder(
		repo.EXPECT().UpdateTurns(gomock.Any(), "s-1", 2).Return(nil),
		repo.EXPECT().FinishSession(gomock.Any(), "s-1", fixedNow, 3, "사망").Return(nil),
	)

	require.NoError(t, svc.UpdateTurns(context.Background(), "s-1", 2))
	require.NoError(t, svc.FinishRun(context.Background(), "s-1", 3, "사망"))
}

func TestJournalService_FinishRun_NotFound(t *testing.T) {
	repo, svc := newTestJournalService(t)
	repo.EXPECT().FinishSession(gomock.Any(), "s-1", fixedNow, 0, "r").Return(store.ErrSessionNotFound)

	assert.ErrorIs(t, svc.FinishRun(context.Background(), "s-1", 0, "r"), store.ErrSessionNotFound)
}

func TestJournalService_RecentUsesHistoryLimit(t *testing.T) {
	repo, svc := newTestJournalService(t)
	want := []models.SessionRecord{{SessionID: "s-2"}, {SessionID: "s-1"}}
	repo.EXPECT().ListSessions(gomock.Any(), 5).Return(want, nil)

	got, err := svc.Recent(context.Background())

	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestJournalService_ExportText(t *testing.T) {
	repo, svc := newTestJournalService(t)
	repo.EXPECT().GetTranscript(gomock.Any(), "s-1").Return([]models.TranscriptEntry{
		{Kind: models.EntryBubble, Content: "벽이 보인다"},
		{Kind: models.EntryPlayer, Content: "넘는다"},
	}, nil)

	got, err := svc.ExportText(context.Background(), "s-1")

	require.NoError(t, err)
	assert.Equal(t, "벽이 보인다\n> 넘는다\n", got)
}

func TestJournalService_PruneOlderThan(t *testing.T) {
	repo, svc := newTestJournalService(t)
	repo.EXPECT().PruneBefore(gomock.Any(), fixedNow.Add(-48*time.Hour)).Return(int64(4), nil)

	n, err := svc.PruneOlderThan(context.Background(), 48*time.Hour)

	require.NoError(t, err)
	assert.Equal(t, int64(4), n)
}

func TestJournalService_PruneOlderThan_Error(t *testing.T) {
	repo, svc := newTestJournalService(t)
	repo.EXPECT().PruneBefore(gomock.Any(), gomock.Any()).Return(int64(0), store.ErrExecutingQuery)

	_, err := svc.PruneOlderThan(context.Background(), time.Hour)

	assert.ErrorIs(t, err, store.ErrExecutingQuery)
}

func TestFormatTranscript(t *testing.T) {
	entries := []models.TranscriptEntry{
		{Kind: models.EntryBubble, Content: "어두운 골목"},
		{Kind: models.EntryImage, Content: "/img/alley.png", Alt: "골목"},
		{Kind: models.EntryImage, Content: "/img/x.png"},
		{Kind: models.EntryPlayer, Content: "달린다"},
		{Kind: models.EntryStory, Content: "당신은 달렸다."},
		{Kind: models.EntryResult, Content: "자원 변화: health: -1"},
		{Kind: models.EntrySystem, Content: "연결 실패"},
	}

	want := "어두운 골목\n" +
		"[골목] /img/alley.png\n" +
		"[이미지] /img/x.png\n" +
		"> 달린다\n" +
		"당신은 달렸다.\n" +
		"자원 변화: health: -1\n" +
		"[!] 연결 실패\n"

	assert.Equal(t, want, FormatTranscript(entries))
	assert.Empty(t, FormatTranscript(nil))
}
