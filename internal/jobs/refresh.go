// SPDX-License-Identifier: MIT

// Package jobs drives the fetch/parse/reconcile/emit pipeline.
package jobs

import (
	"context"
	"fmt"
	"io"
	"sort"
	"time"

	xglog "github.com/ruvtv/ruv-xmltv/internal/log"

	"github.com/ruvtv/ruv-xmltv/internal/config"
	"github.com/ruvtv/ruv-xmltv/internal/epg"
	"github.com/ruvtv/ruv-xmltv/internal/metrics"
	"github.com/ruvtv/ruv-xmltv/internal/muninn"
)

// Status summarizes a completed refresh.
type Status struct {
	LastRun    time.Time `json:"last_run"`
	Channels   int       `json:"channels"`
	Programmes int       `json:"programmes"`
}

// ScheduleSource is the upstream capability the driver needs. *muninn.Client
// satisfies it; tests substitute fakes.
type ScheduleSource interface {
	ResolveLatest(ctx context.Context, base string) (string, error)
	Fetch(ctx context.Context, url string) (string, error)
}

// Refresh runs the whole pipeline: for each configured channel, resolve the
// latest schedule, fetch and parse it, merge and reconcile its events, then
// emit a single guide document to w. Channels are processed strictly in
// configuration order, one at a time; any failure aborts the run with no
// partial output.
func Refresh(ctx context.Context, cfg config.Settings, w io.Writer) (*Status, error) {
	if err := config.Validate(cfg); err != nil {
		return nil, err
	}

	cl := muninn.NewWithTimeout(cfg.FetchTimeout)
	return refreshWithClient(ctx, cfg, cl, w)
}

// refreshWithClient is separated for easier testing
func refreshWithClient(ctx context.Context, cfg config.Settings, cl ScheduleSource, w io.Writer) (*Status, error) {
	logger := xglog.WithComponentFromContext(ctx, "jobs")
	logger.Info().Str(xglog.FieldEvent, "refresh.start").Int("channels", len(cfg.Channels)).Msg("starting refresh")

	tv := epg.NewTV()
	total := 0

	for _, spec := range cfg.Channels {
		ch, programmes, err := buildChannel(ctx, cl, spec)
		if err != nil {
			return nil, err
		}
		tv.Channels = append(tv.Channels, ch)
		tv.Programmes = append(tv.Programmes, programmes...)
		total += len(programmes)

		metrics.SetProgrammesWritten(spec.ID, len(programmes))
		logger.Info().
			Str(xglog.FieldEvent, "channel.built").
			Str(xglog.FieldChannel, spec.ID).
			Int(xglog.FieldProgrammes, len(programmes)).
			Msg("channel schedule resolved")
	}

	if err := epg.WriteXMLTV(w, tv); err != nil {
		return nil, fmt.Errorf("emit guide: %w", err)
	}
	metrics.SetChannelsWritten(len(tv.Channels))

	status := &Status{LastRun: time.Now(), Channels: len(tv.Channels), Programmes: total}
	logger.Info().
		Str(xglog.FieldEvent, "refresh.success").
		Int("channels", status.Channels).
		Int(xglog.FieldProgrammes, status.Programmes).
		Msg("refresh completed")
	return status, nil
}

// buildChannel turns one channel spec into an output channel block plus its
// programme blocks.
func buildChannel(ctx context.Context, cl ScheduleSource, spec config.ChannelSpec) (epg.Channel, []epg.Programme, error) {
	logger := xglog.WithComponentFromContext(ctx, "jobs")

	latest, err := cl.ResolveLatest(ctx, spec.BaseURL)
	if err != nil {
		metrics.RecordFeedError("resolve")
		return epg.Channel{}, nil, fmt.Errorf("resolve schedule for %s: %w", spec.ID, err)
	}
	metrics.RecordScheduleResolved(spec.ID)
	logger.Debug().
		Str(xglog.FieldChannel, spec.ID).
		Str(xglog.FieldURL, latest).
		Msg("latest schedule located")

	body, err := cl.Fetch(ctx, latest)
	if err != nil {
		metrics.RecordFeedError("fetch")
		return epg.Channel{}, nil, fmt.Errorf("fetch schedule for %s: %w", spec.ID, err)
	}

	services, err := muninn.ParseSchedule(body)
	if err != nil {
		metrics.RecordFeedError("parse")
		return epg.Channel{}, nil, fmt.Errorf("parse schedule for %s: %w", spec.ID, err)
	}

	// The file usually contains exactly one service, but multiples are
	// merged under the one output channel. A service name, when present,
	// beats the configured display name; the last non-empty one wins.
	displayName := spec.DisplayName
	var events []muninn.Event
	for _, svc := range services {
		if svc.Name != "" {
			displayName = svc.Name
		}
		events = append(events, svc.Events...)
	}

	sort.SliceStable(events, func(i, j int) bool {
		return events[i].Start.Before(events[j].Start)
	})

	before := len(events)
	events = epg.Reconcile(events)
	if dropped := before - len(events); dropped > 0 {
		metrics.RecordEventsDropped(spec.ID, dropped)
		logger.Debug().
			Str(xglog.FieldChannel, spec.ID).
			Int("dropped", dropped).
			Msg("events dropped by overlap reconciliation")
	}

	ch := epg.Channel{ID: spec.ID, DisplayName: []string{displayName}}
	return ch, epg.ProgrammesFromEvents(events, spec.ID), nil
}
