// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"strings"
	"time"

	"github.com/MKhiriev/go-parkour-client/internal/adapter"
	"github.com/MKhiriev/go-parkour-client/internal/logger"
	"github.com/MKhiriev/go-parkour-client/models"
)

type turnService struct {
	adapter adapter.GameServerAdapter
	logger  *logger.Logger
}

func NewTurnService(gameAdapter adapter.GameServerAdapter, logger *logger.Logger) TurnService {
	return &turnService{adapter: gameAdapter, logger: logger}
}

func (s *turnService) Start(ctx context.Context) (models.StartResponse, error) {
	started := time.Now()

	resp, err := s.adapter.StartSession(ctx)
	if err != nil {
		s.logger.Err(err).
			Str("func", "turnService.Start").
			Dur("elapsed", time.Since(started)).
			Msg("start request failed")
		return models.StartResponse{}, mapAdapterError(err)
	}

	if resp.Error != "" {
		s.logger.Warn().
			Str("func", "turnService.Start").
			Str("server_error", resp.Error).
			Msg("server refused to start a session")
		return resp, nil
	}

	s.logger.Info().
		Str("func", "turnService.Start").
		Str("session_id", resp.SessionID).
		Int("messages", len(resp.Messages)).
		Msg("session started")
	return resp, nil
}

func (s *turnService) Choose(ctx context.Context, sessionID, input string) (models.ChoiceResponse, error) {
	if sessionID == "" {
		return models.ChoiceResponse{}, ErrNoSession
	}
	if strings.TrimSpace(input) == "" {
		return models.ChoiceResponse{}, ErrEmptyInput
	}

	log := s.logger.With().
		Str("func", "turnService.Choose").
		Str("session_id", sessionID).
		Logger()

	resp, err := s.adapter.SubmitChoice(ctx, sessionID, input)
	if err != nil {
		log.Err(err).Msg("choice request failed")
		return models.ChoiceResponse{}, mapAdapterError(err)
	}

	switch {
	case resp.Error != "":
		log.Warn().Str("server_error", resp.Error).Msg("server rejected the choice")
	case resp.GameOver:
		log.Info().Str("reason", resp.GameOverReason).Msg("game over")
	default:
		event := log.Debug()
		if resp.ChoiceMapped != nil {
			event = event.Str("choice_id", resp.ChoiceMapped.ID)
		}
		if resp.NextEncounter != nil {
			event = event.Str("next_encounter", resp.NextEncounter.ID)
		}
		event.Msg("choice resolved")
	}

	return resp, nil
}

func (s *turnService) Refresh(ctx context.Context, sessionID string) (models.StateResponse, error) {
	if sessionID == "" {
		return models.StateResponse{}, ErrNoSession
	}

	resp, err := s.adapter.GetState(ctx, sessionID)
	if err != nil {
		s.logger.Err(err).
			Str("func", "turnService.Refresh").
			Str("session_id", sessionID).
			Msg("state request failed")
		return models.StateResponse{}, mapAdapterError(err)
	}

	return resp, nil
}
