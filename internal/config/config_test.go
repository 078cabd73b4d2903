// SPDX-License-Identifier: MIT
package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	require.NoError(t, Validate(cfg))

	require.Len(t, cfg.Channels, 2)
	assert.Equal(t, "ruv.is", cfg.Channels[0].ID)
	assert.Equal(t, "RÚV", cfg.Channels[0].DisplayName)
	assert.Equal(t, "ruv2.is", cfg.Channels[1].ID)
	assert.Equal(t, "RÚV 2", cfg.Channels[1].DisplayName)
	assert.Equal(t, 30*time.Second, cfg.FetchTimeout)

	for _, ch := range cfg.Channels {
		assert.Contains(t, ch.BaseURL, "muninn.ruv.is")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Settings)
		wantErr string
	}{
		{
			name:    "no_channels",
			mutate:  func(s *Settings) { s.Channels = nil },
			wantErr: "no channels",
		},
		{
			name:    "empty_id",
			mutate:  func(s *Settings) { s.Channels[0].ID = "" },
			wantErr: "empty id",
		},
		{
			name:    "bad_scheme",
			mutate:  func(s *Settings) { s.Channels[1].BaseURL = "ftp://example.com/feed/" },
			wantErr: "scheme",
		},
		{
			name:    "empty_base_url",
			mutate:  func(s *Settings) { s.Channels[0].BaseURL = "" },
			wantErr: "scheme",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(&cfg)
			err := Validate(cfg)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
