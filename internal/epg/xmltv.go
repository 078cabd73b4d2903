// SPDX-License-Identifier: MIT

// Package epg shapes resolved channel schedules into an XMLTV guide
// document.
package epg

import (
	"encoding/xml"
	"fmt"
	"io"
)

// GeneratorInfo identifies this producer in the emitted document.
const GeneratorInfo = "ruv-xmltv (muninn)"

type TV struct {
	XMLName    xml.Name    `xml:"tv"`
	Generator  string      `xml:"generator-info-name,attr,omitempty"`
	Channels   []Channel   `xml:"channel"`
	Programmes []Programme `xml:"programme"`
}

type Channel struct {
	ID          string   `xml:"id,attr"`
	DisplayName []string `xml:"display-name"`
}

type Programme struct {
	Start   string `xml:"start,attr"`
	Stop    string `xml:"stop,attr"`
	Channel string `xml:"channel,attr"`
	Title   *Title `xml:"title,omitempty"`
	Desc    string `xml:"desc,omitempty"`
}

type Title struct {
	// Lang contains the language code for the title (optional).
	Lang string `xml:"lang,attr,omitempty"`
	// Value is the character data of the title element.
	Value string `xml:",chardata"`
}

func NewTV() *TV {
	return &TV{Generator: GeneratorInfo}
}

// WriteXMLTV serializes the guide document: xml declaration, DOCTYPE
// reference, then the indented tv element. encoding/xml handles entity
// escaping for all text and attribute values.
func WriteXMLTV(w io.Writer, tv *TV) error {
	out, err := xml.MarshalIndent(tv, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal xmltv: %w", err)
	}

	header := `<?xml version="1.0" encoding="utf-8"?>` + "\n" +
		`<!DOCTYPE tv SYSTEM "xmltv.dtd">` + "\n"

	if _, err := io.WriteString(w, header); err != nil {
		return fmt.Errorf("write xmltv: %w", err)
	}
	if _, err := w.Write(out); err != nil {
		return fmt.Errorf("write xmltv: %w", err)
	}
	if _, err := io.WriteString(w, "\n"); err != nil {
		return fmt.Errorf("write xmltv: %w", err)
	}
	return nil
}
