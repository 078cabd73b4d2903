// SPDX-License-Identifier: MIT

package muninn

import (
	"context"
	"regexp"
	"sort"
	"strconv"
	"strings"
)

// scheduleToken matches path-like tokens ending in .xml anywhere in a
// listing, regardless of the surrounding markup. The same scan works for
// HTML autoindex pages and object-storage XML listings (<Key>...</Key>).
var scheduleToken = regexp.MustCompile(`(?i)[\w./-]+\.xml`)

// snippetMax bounds the listing excerpt attached to ErrNoSchedule.
const snippetMax = 1200

// ResolveLatest fetches the directory listing at base and returns the
// absolute URL of the latest schedule file. "Latest" is the
// lexicographically last candidate, which assumes filenames embed a sortable
// date such as 2026-01-14.xml or 2026/01/14.xml. No date parsing is done.
func (c *Client) ResolveLatest(ctx context.Context, base string) (string, error) {
	listing, err := c.Fetch(ctx, base)
	if err != nil {
		return "", err
	}

	candidates := scheduleCandidates(listing)
	if len(candidates) == 0 {
		return "", &FeedError{
			Sentinel:  ErrNoSchedule,
			Operation: "resolve latest",
			URL:       base,
			Detail:    "listing starts with: " + snippet(listing),
		}
	}

	latest := candidates[len(candidates)-1]
	if strings.HasPrefix(latest, "http://") || strings.HasPrefix(latest, "https://") {
		return latest, nil
	}

	// Join relative paths like "2026/01/14.xml" to the base, which is
	// treated as a directory.
	return strings.TrimRight(base, "/") + "/" + strings.TrimLeft(latest, "/"), nil
}

// scheduleCandidates extracts schedule-file candidates from a raw listing:
// query strings stripped, deduplicated, sorted ascending, the DTD reference
// filtered out. This is the only place that knows how listings are matched;
// swapping the strategy for a new listing format stays local to this file.
func scheduleCandidates(listing string) []string {
	seen := make(map[string]struct{})
	for _, tok := range scheduleToken.FindAllString(listing, -1) {
		if i := strings.IndexByte(tok, '?'); i >= 0 {
			tok = tok[:i]
		}
		seen[tok] = struct{}{}
	}

	candidates := make([]string, 0, len(seen))
	for tok := range seen {
		if strings.HasSuffix(strings.ToLower(tok), "xmltv.dtd") {
			continue
		}
		candidates = append(candidates, tok)
	}
	sort.Strings(candidates)
	return candidates
}

// snippet renders the head of a listing with control characters escaped so
// the diagnostic stays a single printable line.
func snippet(listing string) string {
	if len(listing) > snippetMax {
		listing = listing[:snippetMax]
	}
	q := strconv.Quote(listing)
	return q[1 : len(q)-1]
}
