// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import "errors"

var (
	ErrBadRequest          = errors.New("bad request")
	ErrNotFound            = errors.New("not found")
	ErrInternalServerError = errors.New("internal server error")
	ErrBadGateway          = errors.New("bad gateway")
	ErrUnexpectedStatus    = errors.New("unexpected status")

	// ErrMalformedResponse is returned when a 2xx body cannot be decoded or
	// lacks a field the client depends on.
	ErrMalformedResponse = errors.New("malformed server response")

	ErrEmptySessionID = errors.New("empty session id")
)
