// SPDX-License-Identifier: MIT

package muninn

import (
	"encoding/xml"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"
)

// Event is one scheduled programme occurrence. Times are naive feed-local
// instants stored as UTC; the feed's local time is defined to equal UTC
// year-round, so no zone conversion happens anywhere.
type Event struct {
	Start time.Time
	Stop  time.Time
	Title string
	Desc  string
}

// Service is a named broadcast stream within a schedule feed, usually one
// per feed. Event order follows document order.
type Service struct {
	ID     string
	Name   string
	Events []Event
}

const startTimeLayout = "2006-01-02 15:04:05"

// ParseSchedule parses the schedule/service/event dialect. The root element
// must be <schedule> (case-insensitive). Services are collected at any
// depth; events only as direct children of their service. Events missing a
// start time or duration are incomplete and skipped without error.
func ParseSchedule(xmlText string) ([]Service, error) {
	root, err := decodeTree(strings.NewReader(xmlText))
	if err != nil {
		return nil, &FeedError{Sentinel: ErrMalformedXML, Operation: "parse schedule", Err: err}
	}
	if !strings.EqualFold(root.name, "schedule") {
		return nil, &FeedError{
			Sentinel:  ErrUnexpectedRoot,
			Operation: "parse schedule",
			Detail:    fmt.Sprintf("expected <schedule>, got <%s>", root.name),
		}
	}

	var services []Service
	walk(root, func(n *node) {
		if n.name != "service" {
			return
		}
		svc := Service{
			ID:   n.attr("service-id", "service_id"),
			Name: n.attr("service-name", "service_name"),
		}
		for _, child := range n.children {
			if child.name != "event" {
				continue
			}
			ev, ok, err2 := eventFromNode(child)
			if err2 != nil {
				err = err2
				return
			}
			if ok {
				svc.Events = append(svc.Events, ev)
			}
		}
		services = append(services, svc)
	})
	if err != nil {
		return nil, err
	}
	return services, nil
}

func eventFromNode(n *node) (Event, bool, error) {
	startText := n.attr("start-time", "start_time")
	durText := n.attr("duration", "duration")
	if startText == "" || durText == "" {
		return Event{}, false, nil // incomplete, cannot be scheduled
	}

	start, err := parseStartTime(startText)
	if err != nil {
		return Event{}, false, fmt.Errorf("muninn: event start-time %q: %w", startText, err)
	}
	dur, err := parseDuration(durText)
	if err != nil {
		return Event{}, false, fmt.Errorf("muninn: event duration %q: %w", durText, err)
	}

	ev := Event{
		Start: start,
		Stop:  start.Add(dur),
		Title: n.childText("title"),
		Desc:  n.childText("description"),
	}
	return ev, true, nil
}

// parseStartTime accepts YYYY-MM-DD HH:MM:SS with either a space or a
// literal T between date and time.
func parseStartTime(s string) (time.Time, error) {
	s = strings.ReplaceAll(s, "T", " ")
	return time.ParseInLocation(startTimeLayout, s, time.UTC)
}

// parseDuration accepts HH:MM:SS where hours may exceed 23.
func parseDuration(s string) (time.Duration, error) {
	parts := strings.Split(strings.TrimSpace(s), ":")
	if len(parts) != 3 {
		return 0, fmt.Errorf("want HH:MM:SS, got %d fields", len(parts))
	}
	h, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, err
	}
	m, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, err
	}
	sec, err := strconv.Atoi(parts[2])
	if err != nil {
		return 0, err
	}
	return time.Duration(h)*time.Hour + time.Duration(m)*time.Minute + time.Duration(sec)*time.Second, nil
}

// node is a minimal element tree. encoding/xml struct tags cannot express
// "descendant at any depth" or attribute name variants, so the dialect is
// walked by hand.
type node struct {
	name     string
	attrs    []xml.Attr
	text     string
	children []*node
}

func (n *node) attr(names ...string) string {
	// Earlier names take priority over later ones.
	for _, want := range names {
		for _, a := range n.attrs {
			if a.Name.Local == want {
				return a.Value
			}
		}
	}
	return ""
}

// childText returns the trimmed text of the first direct child with the
// given name, or "" when absent.
func (n *node) childText(name string) string {
	for _, c := range n.children {
		if c.name == name {
			return strings.TrimSpace(c.text)
		}
	}
	return ""
}

func walk(n *node, fn func(*node)) {
	for _, c := range n.children {
		fn(c)
		walk(c, fn)
	}
}

func decodeTree(r io.Reader) (*node, error) {
	dec := xml.NewDecoder(r)
	dec.Strict = true
	// Disable entity expansion; the feed never needs it.
	dec.Entity = map[string]string{}

	root := &node{}
	stack := []*node{root}
	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		switch t := tok.(type) {
		case xml.StartElement:
			child := &node{name: t.Name.Local, attrs: t.Attr}
			parent := stack[len(stack)-1]
			parent.children = append(parent.children, child)
			stack = append(stack, child)
		case xml.EndElement:
			stack = stack[:len(stack)-1]
		case xml.CharData:
			cur := stack[len(stack)-1]
			cur.text += string(t)
		}
	}
	if len(root.children) == 0 {
		return nil, fmt.Errorf("document has no root element")
	}
	return root.children[0], nil
}
