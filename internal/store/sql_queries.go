// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-parkour-client/models"
)

const (
	sessionsTable = "sessions"
	entriesTable  = "transcript_entries"
)

var (
	sessionColumns = []string{"session_id", "started_at", "finished_at", "turns", "game_over_reason"}
	entryColumns   = []string{"id", "session_id", "seq", "kind", "content", "alt", "created_at"}
)

// builder emits sqlite "?" placeholders.
var builder = sq.StatementBuilder.PlaceholderFormat(sq.Question)

func buildCreateSessionQuery(rec models.SessionRecord) (string, []any, error) {
	return builder.
		Insert(sessionsTable).
		Columns("session_id", "started_at", "turns").
		Values(rec.SessionID, rec.StartedAt.UTC(), rec.Turns).
		ToSql()
}

func buildMaxSeqQuery(sessionID string) (string, []any, error) {
	return builder.
		Select("COALESCE(MAX(seq), 0)").
		From(entriesTable).
		Where(sq.Eq{"session_id": sessionID}).
		ToSql()
}

// buildInsertEntriesQuery inserts entries as one multi-row statement with
// seq numbers starting right after lastSeq.
func buildInsertEntriesQuery(sessionID string, lastSeq int64, entries []models.TranscriptEntry) (string, []any, error) {
	insert := builder.Insert(entriesTable).Columns(entryColumns...)
	for i, e := range entries {
		insert = insert.Values(e.ID, sessionID, lastSeq+int64(i)+1, string(e.Kind), e.Content, e.Alt, e.CreatedAt.UTC())
	}
	return insert.ToSql()
}

func buildUpdateTurnsQuery(sessionID string, turns int) (string, []any, error) {
	return builder.
		Update(sessionsTable).
		Set("turns", turns).
		Where(sq.Eq{"session_id": sessionID}).
		ToSql()
}

func buildFinishSessionQuery(sessionID string, finishedAt time.Time, turns int, reason string) (string, []any, error) {
	return builder.
		Update(sessionsTable).
		Set("finished_at", finishedAt.UTC()).
		Set("turns", turns).
		Set("game_over_reason", reason).
		Where(sq.Eq{"session_id": sessionID}).
		ToSql()
}

func buildListSessionsQuery(limit int) (string, []any, error) {
	q := builder.
		Select(sessionColumns...).
		From(sessionsTable).
		OrderBy("started_at DESC")
	if limit > 0 {
		q = q.Limit(uint64(limit))
	}
	return q.ToSql()
}

func buildGetTranscriptQuery(sessionID string) (string, []any, error) {
	return builder.
		Select(entryColumns...).
		From(entriesTable).
		Where(sq.Eq{"session_id": sessionID}).
		OrderBy("seq ASC").
		ToSql()
}

func buildPruneEntriesQuery(cutoff time.Time) (string, []any, error) {
	return builder.
		Delete(entriesTable).
		Where(sq.Expr("session_id IN (SELECT session_id FROM "+sessionsTable+" WHERE started_at < ?)", cutoff.UTC())).
		ToSql()
}

func buildPruneSessionsQuery(cutoff time.Time) (string, []any, error) {
	return builder.
		Delete(sessionsTable).
		Where(sq.Lt{"started_at": cutoff.UTC()}).
		ToSql()
}
