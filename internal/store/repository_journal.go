// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/MKhiriev/go-parkour-client/internal/logger"
	"github.com/MKhiriev/go-parkour-client/models"
)

type journalRepository struct {
	db     *DB
	logger *logger.Logger
}

func NewJournalRepository(db *DB, logger *logger.Logger) JournalRepository {
	return &journalRepository{
		db:     db,
		logger: logger,
	}
}

func (r *journalRepository) CreateSession(ctx context.Context, rec models.SessionRecord) error {
	query, args, err := buildCreateSessionQuery(rec)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	err = r.db.withRetry(ctx, "journalRepository.CreateSession", func() error {
		_, execErr := r.db.ExecContext(ctx, query, args...)
		return execErr
	})
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: %s", ErrSessionAlreadyExists, rec.SessionID)
		}
		r.logger.Err(err).
			Str("func", "journalRepository.CreateSession").
			Str("session_id", rec.SessionID).
			Msg("failed to insert session")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return nil
}

func (r *journalRepository) AppendEntries(ctx context.Context, sessionID string, entries ...models.TranscriptEntry) error {
	if len(entries) == 0 {
		return nil
	}

	return r.db.withRetry(ctx, "journalRepository.AppendEntries", func() error {
		return r.appendEntries(ctx, sessionID, entries)
	})
}

func (r *journalRepository) appendEntries(ctx context.Context, sessionID string, entries []models.TranscriptEntry) error {
	log := r.logger.With().
		Str("func", "journalRepository.AppendEntries").
		Str("session_id", sessionID).
		Logger()

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Msg("failed to begin transaction")
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	maxSeqQuery, args, err := buildMaxSeqQuery(sessionID)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var lastSeq int64
	if err = tx.QueryRowContext(ctx, maxSeqQuery, args...).Scan(&lastSeq); err != nil {
		log.Err(err).Msg("failed to read last seq")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	insertQuery, args, err := buildInsertEntriesQuery(sessionID, lastSeq, entries)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = tx.ExecContext(ctx, insertQuery, args...); err != nil {
		log.Err(err).Int("count", len(entries)).Msg("failed to insert transcript entries")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	if err = tx.Commit(); err != nil {
		log.Err(err).Msg("failed to commit transaction")
		return fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	return nil
}

func (r *journalRepository) UpdateTurns(ctx context.Context, sessionID string, turns int) error {
	query, args, err := buildUpdateTurnsQuery(sessionID, turns)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.execOne(ctx, "journalRepository.UpdateTurns", sessionID, query, args)
}

func (r *journalRepository) FinishSession(ctx context.Context, sessionID string, finishedAt time.Time, turns int, reason string) error {
	query, args, err := buildFinishSessionQuery(sessionID, finishedAt, turns, reason)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.execOne(ctx, "journalRepository.FinishSession", sessionID, query, args)
}

// execOne runs an UPDATE that must touch exactly the row of sessionID.
func (r *journalRepository) execOne(ctx context.Context, op, sessionID, query string, args []any) error {
	var affected int64
	err := r.db.withRetry(ctx, op, func() error {
		res, execErr := r.db.ExecContext(ctx, query, args...)
		if execErr != nil {
			return execErr
		}
		affected, execErr = res.RowsAffected()
		return execErr
	})
	if err != nil {
		r.logger.Err(err).Str("func", op).Str("session_id", sessionID).Msg("failed to update session")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	if affected == 0 {
		return fmt.Errorf("%w: %s", ErrSessionNotFound, sessionID)
	}

	return nil
}

func (r *journalRepository) ListSessions(ctx context.Context, limit int) ([]models.SessionRecord, error) {
	query, args, err := buildListSessionsQuery(limit)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		r.logger.Err(err).Str("func", "journalRepository.ListSessions").Msg("failed to query sessions")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	sessions := make([]models.SessionRecord, 0)
	for rows.Next() {
		var rec models.SessionRecord
		var finishedAt sql.NullTime

		if err = rows.Scan(&rec.SessionID, &rec.StartedAt, &finishedAt, &rec.Turns, &rec.GameOverReason); err != nil {
			r.logger.Err(err).Str("func", "journalRepository.ListSessions").Msg("failed to scan session row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		if finishedAt.Valid {
			t := finishedAt.Time
			rec.FinishedAt = &t
		}

		sessions = append(sessions, rec)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return sessions, nil
}

func (r *journalRepository) GetTranscript(ctx context.Context, sessionID string) ([]models.TranscriptEntry, error) {
	query, args, err := buildGetTranscriptQuery(sessionID)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		r.logger.Err(err).
			Str("func", "journalRepository.GetTranscript").
			Str("session_id", sessionID).
			Msg("failed to query transcript")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	entries := make([]models.TranscriptEntry, 0)
	for rows.Next() {
		var e models.TranscriptEntry
		var kind string

		if err = rows.Scan(&e.ID, &e.SessionID, &e.Seq, &kind, &e.Content, &e.Alt, &e.CreatedAt); err != nil {
			r.logger.Err(err).Str("func", "journalRepository.GetTranscript").Msg("failed to scan transcript row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		e.Kind = models.EntryKind(kind)

		entries = append(entries, e)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return entries, nil
}

func (r *journalRepository) PruneBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	entriesQuery, entriesArgs, err := buildPruneEntriesQuery(cutoff)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	sessionsQuery, sessionsArgs, err := buildPruneSessionsQuery(cutoff)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var deleted int64
	err = r.db.withRetry(ctx, "journalRepository.PruneBefore", func() error {
		tx, txErr := r.db.BeginTx(ctx, nil)
		if txErr != nil {
			return fmt.Errorf("%w: %w", ErrBeginningTransaction, txErr)
		}
		defer tx.Rollback()

		if _, txErr = tx.ExecContext(ctx, entriesQuery, entriesArgs...); txErr != nil {
			return fmt.Errorf("%w: %w", ErrExecutingQuery, txErr)
		}

		res, txErr := tx.ExecContext(ctx, sessionsQuery, sessionsArgs...)
		if txErr != nil {
			return fmt.Errorf("%w: %w", ErrExecutingQuery, txErr)
		}
		if deleted, txErr = res.RowsAffected(); txErr != nil {
			return fmt.Errorf("%w: %w", ErrExecutingQuery, txErr)
		}

		if txErr = tx.Commit(); txErr != nil {
			return fmt.Errorf("%w: %w", ErrCommitingTransaction, txErr)
		}
		return nil
	})
	if err != nil {
		r.logger.Err(err).
			Str("func", "journalRepository.PruneBefore").
			Time("cutoff", cutoff).
			Msg("failed to prune journal")
		return 0, err
	}

	return deleted, nil
}
