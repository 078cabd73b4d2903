// SPDX-License-Identifier: MIT
package epg

import (
	"time"

	"github.com/ruvtv/ruv-xmltv/internal/muninn"
)

// ProgrammesFromEvents converts reconciled feed events to XMLTV Programme
// format. Empty titles and descriptions produce no child element at all.
func ProgrammesFromEvents(events []muninn.Event, channelID string) []Programme {
	programmes := make([]Programme, 0, len(events))

	for _, event := range events {
		prog := Programme{
			Start:   FormatTime(event.Start),
			Stop:    FormatTime(event.Stop),
			Channel: channelID,
		}
		if event.Title != "" {
			prog.Title = &Title{Value: event.Title}
		}
		if event.Desc != "" {
			prog.Desc = event.Desc
		}
		programmes = append(programmes, prog)
	}

	return programmes
}

// FormatTime renders an XMLTV timestamp. Feed times are Iceland local,
// which is UTC year-round, so the offset is the fixed literal +0000.
func FormatTime(t time.Time) string {
	return t.Format("20060102150405") + " +0000"
}
