// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import (
	"context"
	"io"
	"net/http"
	"testing"
	"time"

	"github.com/MKhiriev/go-parkour-client/internal/config"
	"github.com/MKhiriev/go-parkour-client/internal/handler"
	"github.com/MKhiriev/go-parkour-client/internal/logger"
	"github.com/MKhiriev/go-parkour-client/internal/mock"
	"github.com/MKhiriev/go-parkour-client/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/mock/gomock"
)

func newTestServer(t *testing.T, address string) *server {
	t.Helper()
	replayer := mock.NewMockReplayer(gomock.NewController(t))
	handlers, err := handler.NewHandlers(replayer, models.NewAppBuildInfo("9.9.9", "", ""), logger.Nop())
	require.NoError(t, err)

	srv, err := NewServer(handlers, config.ReplayServerConfig{Address: address, ShutdownTimeout: time.Second}, logger.Nop())
	require.NoError(t, err)
	return srv.(*server)
}

func TestNewServer_NoHandlers(t *testing.T) {
	srv, err := NewServer(nil, config.ReplayServerConfig{}, logger.Nop())

	assert.Nil(t, srv)
	assert.ErrorIs(t, err, errNoServersAreCreated)
}

func TestRunServer_ServesUntilContextEnds(t *testing.T) {
	ignore := goleak.IgnoreCurrent()
	defer goleak.VerifyNone(t, ignore)

	srv := newTestServer(t, "127.0.0.1:0")
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- srv.RunServer(ctx) }()

	var addr string
	select {
	case a := <-srv.addr:
		addr = a.String()
	case err := <-done:
		t.Fatalf("server stopped early: %v", err)
	}

	client := &http.Client{Transport: &http.Transport{DisableKeepAlives: true}}
	resp, err := client.Get("http://" + addr + "/version")
	require.NoError(t, err)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.NoError(t, resp.Body.Close())
	client.CloseIdleConnections()
	assert.Contains(t, string(body), "9.9.9")

	cancel()
	select {
	case err = <-done:
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("server did not stop")
	}
}

func TestRunServer_ListenError(t *testing.T) {
	srv := newTestServer(t, "256.0.0.1:bad")

	err := srv.RunServer(context.Background())

	assert.Error(t, err)
}
