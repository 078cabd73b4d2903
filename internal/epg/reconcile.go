// SPDX-License-Identifier: MIT
package epg

import "github.com/ruvtv/ruv-xmltv/internal/muninn"

// Reconcile eliminates overlaps in a start-sorted event sequence by
// shortening each event that runs into its successor, then dropping events
// left with no airtime. Start times are never moved.
//
// This is a single greedy pass over adjacent pairs only. A pair is not
// re-evaluated after a later shortening, so triple overlaps are not fully
// resolved; downstream consumers needing strict guarantees under such inputs
// must not rely on this. The pairwise semantics are intentional and must not
// be extended to a cascading multi-pass.
func Reconcile(events []muninn.Event) []muninn.Event {
	for i := 0; i+1 < len(events); i++ {
		if events[i].Stop.After(events[i+1].Start) {
			events[i].Stop = events[i+1].Start
		}
	}

	kept := events[:0]
	for _, e := range events {
		if e.Stop.After(e.Start) {
			kept = append(kept, e)
		}
	}
	return kept
}
