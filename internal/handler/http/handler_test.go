// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/go-parkour-client/internal/logger"
	"github.com/MKhiriev/go-parkour-client/internal/mock"
	"github.com/MKhiriev/go-parkour-client/models"
	"go.uber.org/mock/gomock"
)

func newTestHandler(t *testing.T) (*Handler, *mock.MockReplayer) {
	t.Helper()
	ctrl := gomock.NewController(t)
	replayer := mock.NewMockReplayer(ctrl)
	return NewHandler(replayer, models.NewAppBuildInfo("1.2.3", "2026-10-01", "abc123"), logger.Nop()), replayer
}

func serve(t *testing.T, h http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
	}

	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	return rr
}
