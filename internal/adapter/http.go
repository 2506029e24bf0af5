// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"

	"github.com/MKhiriev/go-parkour-client/internal/config"
	"github.com/MKhiriev/go-parkour-client/internal/logger"
	"github.com/MKhiriev/go-parkour-client/internal/utils"
	"github.com/MKhiriev/go-parkour-client/models"
	"github.com/go-resty/resty/v2"
)

const (
	startPath  = "/api/game/start"
	choicePath = "/api/game/%s/choice"
	statePath  = "/api/game/%s/state"
)

type httpGameServerAdapter struct {
	client *utils.HTTPClient
	logger *logger.Logger
}

// NewHTTPGameServerAdapter constructs the HTTP/REST implementation of
// [GameServerAdapter]. It normalises adapterCfg.HTTPAddress into a base URL
// and applies adapterCfg.RequestTimeout to every request.
//
// Returns an error if the address is empty or cannot be parsed as a URL.
func NewHTTPGameServerAdapter(adapterCfg config.ClientAdapter, log *logger.Logger) (GameServerAdapter, error) {
	client, err := utils.NewHTTPClient(adapterCfg.HTTPAddress, adapterCfg.RequestTimeout)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	a := &httpGameServerAdapter{client: client, logger: log}
	client.OnAfterResponse(a.logResponse)

	return a, nil
}

// StartSession implements [GameServerAdapter].
func (h *httpGameServerAdapter) StartSession(ctx context.Context) (models.StartResponse, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		Post(startPath)
	if err != nil {
		return models.StartResponse{}, fmt.Errorf("start request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.StartResponse{}, err
	}

	var start models.StartResponse
	if err = decode(resp, &start); err != nil {
		return models.StartResponse{}, err
	}

	if start.Error == "" && strings.TrimSpace(start.SessionID) == "" {
		return models.StartResponse{}, fmt.Errorf("%w: %w", ErrMalformedResponse, ErrEmptySessionID)
	}

	return start, nil
}

// SubmitChoice implements [GameServerAdapter].
func (h *httpGameServerAdapter) SubmitChoice(ctx context.Context, sessionID, input string) (models.ChoiceResponse, error) {
	if sessionID == "" {
		return models.ChoiceResponse{}, ErrEmptySessionID
	}

	resp, err := h.client.R().
		SetContext(utils.WithSessionID(ctx, sessionID)).
		SetHeader("Content-Type", "application/json").
		SetBody(models.ChoiceRequest{Input: input}).
		Post(fmt.Sprintf(choicePath, url.PathEscape(sessionID)))
	if err != nil {
		return models.ChoiceResponse{}, fmt.Errorf("choice request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.ChoiceResponse{}, err
	}

	var choice models.ChoiceResponse
	if err = decode(resp, &choice); err != nil {
		return models.ChoiceResponse{}, err
	}

	return choice, nil
}

// GetState implements [GameServerAdapter].
func (h *httpGameServerAdapter) GetState(ctx context.Context, sessionID string) (models.StateResponse, error) {
	if sessionID == "" {
		return models.StateResponse{}, ErrEmptySessionID
	}

	resp, err := h.client.R().
		SetContext(utils.WithSessionID(ctx, sessionID)).
		Get(fmt.Sprintf(statePath, url.PathEscape(sessionID)))
	if err != nil {
		return models.StateResponse{}, fmt.Errorf("state request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.StateResponse{}, err
	}

	var state models.StateResponse
	if err = decode(resp, &state); err != nil {
		return models.StateResponse{}, err
	}

	return state, nil
}

func decode(resp *resty.Response, v any) error {
	if err := json.Unmarshal(resp.Body(), v); err != nil {
		return fmt.Errorf("%w: %w", ErrMalformedResponse, err)
	}
	return nil
}

// logResponse records every round trip at debug level.
func (h *httpGameServerAdapter) logResponse(_ *resty.Client, resp *resty.Response) error {
	event := h.logger.Debug().
		Str("method", resp.Request.Method).
		Str("url", resp.Request.URL).
		Int("status", resp.StatusCode()).
		Dur("duration", resp.Time())

	if sessionID, ok := utils.GetSessionIDFromContext(resp.Request.Context()); ok {
		event = event.Str("session_id", sessionID)
	}

	event.Msg("game server response")
	return nil
}
