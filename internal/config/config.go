// SPDX-License-Identifier: MIT

// Package config carries the compiled-in channel set. The configuration is
// an explicit value passed down the pipeline, never global state, so tests
// can substitute arbitrary channel sets.
package config

import (
	"fmt"
	"net/url"
	"time"
)

// ChannelSpec maps one upstream feed directory to one output channel.
type ChannelSpec struct {
	// BaseURL is the feed directory whose listing is scanned for the
	// latest schedule file.
	BaseURL string
	// ID is the output channel id, following the usual IPTV
	// epg_channel_id conventions.
	ID string
	// DisplayName is used unless the feed carries a service name.
	DisplayName string
}

// Settings is the full runtime configuration.
type Settings struct {
	Channels     []ChannelSpec
	FetchTimeout time.Duration
}

// Default returns the built-in RÚV channel set. There are no flags, files
// or environment variables; this is the whole configuration surface.
func Default() Settings {
	return Settings{
		Channels: []ChannelSpec{
			{
				BaseURL:     "https://muninn.ruv.is/files/xml/ruv/",
				ID:          "ruv.is",
				DisplayName: "RÚV",
			},
			{
				BaseURL:     "https://muninn.ruv.is/files/xml/ruv2/",
				ID:          "ruv2.is",
				DisplayName: "RÚV 2",
			},
		},
		FetchTimeout: 30 * time.Second,
	}
}

// Validate checks structural invariants of the settings.
func Validate(s Settings) error {
	if len(s.Channels) == 0 {
		return fmt.Errorf("config: no channels configured")
	}
	for i, ch := range s.Channels {
		if ch.ID == "" {
			return fmt.Errorf("config: channel %d: empty id", i)
		}
		u, err := url.Parse(ch.BaseURL)
		if err != nil {
			return fmt.Errorf("config: channel %q: base url: %w", ch.ID, err)
		}
		if u.Scheme != "http" && u.Scheme != "https" {
			return fmt.Errorf("config: channel %q: base url %q: scheme must be http or https", ch.ID, ch.BaseURL)
		}
	}
	return nil
}
