// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"errors"
	"strings"

	"github.com/MKhiriev/go-parkour-client/internal/app"
	"github.com/MKhiriev/go-parkour-client/internal/service"
)

var errNothingToCopy = errors.New("transcript is empty")

// humanizeError turns a service error into a line for the error overlay.
func humanizeError(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, service.ErrSessionExpired):
		return app.MsgSessionExpired
	case errors.Is(err, service.ErrProtocol):
		return app.MsgProtocol
	case errors.Is(err, service.ErrServerUnavailable), errors.Is(err, context.DeadlineExceeded):
		return app.MsgServerUnavailable
	}

	return humanizeServerUnavailableError(err)
}

func humanizeServerUnavailableError(err error) string {
	if err == nil {
		return ""
	}

	s := strings.ToLower(err.Error())
	if strings.Contains(s, "connection refused") ||
		strings.Contains(s, "dial tcp") ||
		strings.Contains(s, "no such host") ||
		strings.Contains(s, "network is unreachable") ||
		strings.Contains(s, "i/o timeout") ||
		strings.Contains(s, "context deadline exceeded") {
		return app.MsgServerUnavailable
	}

	return err.Error()
}
