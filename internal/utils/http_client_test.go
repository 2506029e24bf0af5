// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewHTTPClient_BaseURLAndTimeout(t *testing.T) {
	client, err := NewHTTPClient("localhost:8001", 3*time.Second)

	require.NoError(t, err)
	require.NotNil(t, client.Client)
	assert.Equal(t, "http://localhost:8001", client.BaseURL)
	assert.Equal(t, 3*time.Second, client.GetClient().Timeout)
}

func TestNewHTTPClient_Independence(t *testing.T) {
	c1, err := NewHTTPClient("a:1", 0)
	require.NoError(t, err)
	c2, err := NewHTTPClient("a:1", 0)
	require.NoError(t, err)

	assert.NotSame(t, c1.Client, c2.Client)
}

func TestNewHTTPClient_InvalidAddress(t *testing.T) {
	client, err := NewHTTPClient("   ", time.Second)

	assert.Nil(t, client)
	assert.Error(t, err)
}

func TestNormalizeBaseURL(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    string
		wantErr bool
	}{
		{name: "host and port", raw: "localhost:8001", want: "http://localhost:8001"},
		{name: "full url kept", raw: "https://game.example.com", want: "https://game.example.com"},
		{name: "trailing slash trimmed", raw: "http://127.0.0.1:8001/", want: "http://127.0.0.1:8001"},
		{name: "surrounding spaces", raw: "  localhost:8001 ", want: "http://localhost:8001"},
		{name: "empty", raw: "", wantErr: true},
		{name: "scheme without host", raw: "http://", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NormalizeBaseURL(tt.raw)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
