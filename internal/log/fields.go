// SPDX-License-Identifier: MIT

package log

// Canonical field name constants for structured logging.
const (
	// Process / pipeline fields
	FieldEvent     = "event"
	FieldComponent = "component"

	// Path / URL fields
	FieldBaseURL = "base_url"
	FieldURL     = "url"

	// Guide fields
	FieldChannel    = "channel"
	FieldProgrammes = "programmes"
)
