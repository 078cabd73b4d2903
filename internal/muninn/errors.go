// SPDX-License-Identifier: MIT

package muninn

import (
	"errors"
	"fmt"
)

var (
	// Sentinel errors for errors.Is checks at the boundary.
	ErrFetch          = errors.New("upstream: transport failure or bad status")
	ErrNoSchedule     = errors.New("upstream: no schedule files in listing")
	ErrUnexpectedRoot = errors.New("upstream: unexpected root element")
	ErrMalformedXML   = errors.New("upstream: malformed schedule document")
)

// FeedError is a rich error type that wraps the sentinel errors with context.
type FeedError struct {
	Sentinel  error
	Operation string
	URL       string
	Detail    string // diagnostic payload, e.g. a listing snippet or the offending tag name
	Err       error  // nested lower-level error (e.g. net.Error)
}

func (e *FeedError) Error() string {
	msg := fmt.Sprintf("muninn: %s: %v", e.Operation, e.Sentinel)
	if e.URL != "" {
		msg = fmt.Sprintf("%s (%s)", msg, e.URL)
	}
	if e.Detail != "" {
		msg = fmt.Sprintf("%s: %s", msg, e.Detail)
	}
	if e.Err != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.Err)
	}
	return msg
}

func (e *FeedError) Unwrap() error {
	return e.Sentinel
}
