// SPDX-License-Identifier: MIT
package epg

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/ruvtv/ruv-xmltv/internal/muninn"
)

func at(hour, min int) time.Time {
	return time.Date(2026, 1, 14, hour, min, 0, 0, time.UTC)
}

func ev(title string, startH, startM, stopH, stopM int) muninn.Event {
	return muninn.Event{Title: title, Start: at(startH, startM), Stop: at(stopH, stopM)}
}

func TestReconcile(t *testing.T) {
	tests := []struct {
		name   string
		events []muninn.Event
		want   []muninn.Event
	}{
		{
			name:   "empty",
			events: nil,
			want:   nil,
		},
		{
			name:   "single_event_untouched",
			events: []muninn.Event{ev("A", 10, 0, 10, 30)},
			want:   []muninn.Event{ev("A", 10, 0, 10, 30)},
		},
		{
			name: "no_overlap_unchanged",
			events: []muninn.Event{
				ev("A", 10, 0, 10, 30),
				ev("B", 10, 30, 11, 0),
			},
			want: []muninn.Event{
				ev("A", 10, 0, 10, 30),
				ev("B", 10, 30, 11, 0),
			},
		},
		{
			name: "overlap_shortens_predecessor",
			events: []muninn.Event{
				ev("A", 10, 0, 10, 40),
				ev("B", 10, 30, 11, 0),
			},
			want: []muninn.Event{
				ev("A", 10, 0, 10, 30),
				ev("B", 10, 30, 11, 0),
			},
		},
		{
			name: "shortened_to_nothing_is_dropped",
			events: []muninn.Event{
				ev("A", 10, 0, 10, 40),
				ev("B", 10, 0, 10, 10),
			},
			want: []muninn.Event{
				ev("B", 10, 0, 10, 10),
			},
		},
		{
			// Only adjacent pairs are examined; a shortening is never
			// re-checked, so the middle event still ends where its own
			// successor begins even though the first was cut to zero.
			name: "triple_overlap_single_pass",
			events: []muninn.Event{
				ev("A", 10, 0, 11, 0),
				ev("B", 10, 0, 10, 20),
				ev("C", 10, 10, 10, 40),
			},
			want: []muninn.Event{
				ev("B", 10, 0, 10, 10),
				ev("C", 10, 10, 10, 40),
			},
		},
		{
			name: "gap_preserved",
			events: []muninn.Event{
				ev("A", 10, 0, 10, 20),
				ev("B", 11, 0, 11, 30),
			},
			want: []muninn.Event{
				ev("A", 10, 0, 10, 20),
				ev("B", 11, 0, 11, 30),
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var in []muninn.Event
			if tt.events != nil {
				in = make([]muninn.Event, len(tt.events))
				copy(in, tt.events)
			}

			got := Reconcile(in)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Reconcile mismatch (-want +got):\n%s", diff)
			}
			for _, e := range got {
				if !e.Stop.After(e.Start) {
					t.Errorf("event %q violates stop > start: %v / %v", e.Title, e.Start, e.Stop)
				}
			}
		})
	}
}
