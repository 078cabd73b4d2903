// SPDX-License-Identifier: MIT

// ruv-xmltv fetches the RÚV schedule feeds and writes an XMLTV guide
// document to stdout. It takes no arguments; the channel set is compiled in.
//
// Exit codes:
//   - 0: guide written
//   - 1: any upstream or emit failure (no partial output is produced)
package main

import (
	"context"
	"os"

	"github.com/ruvtv/ruv-xmltv/internal/config"
	"github.com/ruvtv/ruv-xmltv/internal/jobs"
	xglog "github.com/ruvtv/ruv-xmltv/internal/log"
	"github.com/ruvtv/ruv-xmltv/internal/version"
)

func main() {
	xglog.Configure(xglog.Config{Service: "ruv-xmltv", Output: os.Stderr})
	logger := xglog.WithComponent("main")
	logger.Debug().
		Str("version", version.Version).
		Str("commit", version.Commit).
		Msg("starting")

	cfg := config.Default()

	status, err := jobs.Refresh(context.Background(), cfg, os.Stdout)
	if err != nil {
		logger.Fatal().Err(err).Str(xglog.FieldEvent, "refresh.failed").Msg("guide generation failed")
	}

	logger.Info().
		Str(xglog.FieldEvent, "guide.written").
		Int("channels", status.Channels).
		Int(xglog.FieldProgrammes, status.Programmes).
		Msg("guide written to stdout")
}
