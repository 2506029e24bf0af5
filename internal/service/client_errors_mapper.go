// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-parkour-client/internal/adapter"
)

// mapAdapterError translates the adapter's transport error into a service
// error. The original error stays in the chain for logging.
func mapAdapterError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return err

	case errors.Is(err, adapter.ErrNotFound):
		return fmt.Errorf("%w: %w", ErrSessionExpired, err)

	case errors.Is(err, adapter.ErrBadRequest),
		errors.Is(err, adapter.ErrMalformedResponse),
		errors.Is(err, adapter.ErrUnexpectedStatus):
		return fmt.Errorf("%w: %w", ErrProtocol, err)

	case errors.Is(err, adapter.ErrEmptySessionID):
		return fmt.Errorf("%w: %w", ErrNoSession, err)
	}

	// connection refused, timeouts, 5xx
	return fmt.Errorf("%w: %w", ErrServerUnavailable, err)
}
