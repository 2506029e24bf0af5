// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-parkour-client/internal/logger"
	"github.com/MKhiriev/go-parkour-client/internal/store"
	"github.com/MKhiriev/go-parkour-client/internal/turn"
	"github.com/MKhiriev/go-parkour-client/internal/utils"
	"github.com/MKhiriev/go-parkour-client/models"
)

// idGenerator yields unique transcript entry ids.
type idGenerator interface {
	Generate() string
}

type journalService struct {
	repo         store.JournalRepository
	ids          idGenerator
	historyLimit int
	now          func() time.Time

	logger *logger.Logger
}

func NewJournalService(repo store.JournalRepository, historyLimit int, logger *logger.Logger) JournalService {
	return &journalService{
		repo:         repo,
		ids:          utils.NewUUIDGenerator(),
		historyLimit: historyLimit,
		now:          time.Now,
		logger:       logger,
	}
}

func (s *journalService) BeginRun(ctx context.Context, sessionID string) error {
	if sessionID == "" {
		return ErrNoSession
	}

	err := s.repo.CreateSession(ctx, models.SessionRecord{SessionID: sessionID, StartedAt: s.now()})
	if err != nil {
		return fmt.Errorf("begin run: %w", err)
	}

	return nil
}

func (s *journalService) Record(ctx context.Context, sessionID string, entries ...turn.Entry) error {
	if sessionID == "" {
		return ErrNoSession
	}
	if len(entries) == 0 {
		return nil
	}

	now := s.now()
	rows := make([]models.TranscriptEntry, 0, len(entries))
	for _, e := range entries {
		rows = append(rows, models.TranscriptEntry{
			ID:        s.ids.Generate(),
			SessionID: sessionID,
			Kind:      e.Kind,
			Content:   e.Text,
			Alt:       e.Alt,
			CreatedAt: now,
		})
	}

	if err := s.repo.AppendEntries(ctx, sessionID, rows...); err != nil {
		return fmt.Errorf("record transcript: %w", err)
	}

	return nil
}

func (s *journalService) UpdateTurns(ctx context.Context, sessionID string, turns int) error {
	if sessionID == "" {
		return ErrNoSession
	}

	if err := s.repo.UpdateTurns(ctx, sessionID, turns); err != nil {
		return fmt.Errorf("update turns: %w", err)
	}

	return nil
}

func (s *journalService) FinishRun(ctx context.Context, sessionID string, turns int, reason string) error {
	if sessionID == "" {
		return ErrNoSession
	}

	if err := s.repo.FinishSession(ctx, sessionID, s.now(), turns, reason); err != nil {
		return fmt.Errorf("finish run: %w", err)
	}

	s.logger.Info().
		Str("func", "journalService.FinishRun").
		Str("session_id", sessionID).
		Int("turns", turns).
		Msg("run journaled as finished")
	return nil
}

func (s *journalService) Recent(ctx context.Context) ([]models.SessionRecord, error) {
	sessions, err := s.repo.ListSessions(ctx, s.historyLimit)
	if err != nil {
		return nil, fmt.Errorf("list runs: %w", err)
	}
	return sessions, nil
}

func (s *journalService) Transcript(ctx context.Context, sessionID string) ([]models.TranscriptEntry, error) {
	if sessionID == "" {
		return nil, ErrNoSession
	}

	entries, err := s.repo.GetTranscript(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("load transcript: %w", err)
	}
	return entries, nil
}

func (s *journalService) ExportText(ctx context.Context, sessionID string) (string, error) {
	entries, err := s.Transcript(ctx, sessionID)
	if err != nil {
		return "", err
	}
	return FormatTranscript(entries), nil
}

func (s *journalService) PruneOlderThan(ctx context.Context, age time.Duration) (int64, error) {
	cutoff := s.now().Add(-age)

	deleted, err := s.repo.PruneBefore(ctx, cutoff)
	if err != nil {
		return 0, fmt.Errorf("prune journal: %w", err)
	}

	if deleted > 0 {
		s.logger.Info().
			Str("func", "journalService.PruneOlderThan").
			Int64("deleted", deleted).
			Time("cutoff", cutoff).
			Msg("pruned old runs")
	}
	return deleted, nil
}

// FormatTranscript renders entries as plain text, one line per entry.
// Player lines are prefixed with "> ", images show their alt text and URL.
func FormatTranscript(entries []models.TranscriptEntry) string {
	var b strings.Builder
	for _, e := range entries {
		switch e.Kind {
		case models.EntryPlayer:
			b.WriteString("> ")
			b.WriteString(e.Content)
		case models.EntrySystem:
			b.WriteString("[!] ")
			b.WriteString(e.Content)
		case models.EntryImage:
			alt := e.Alt
			if alt == "" {
				alt = "이미지"
			}
			fmt.Fprintf(&b, "[%s] %s", alt, e.Content)
		default:
			b.WriteString(e.Content)
		}
		b.WriteByte('\n')
	}
	return b.String()
}
