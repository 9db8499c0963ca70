// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "time"

// LogEntry is one distance expression recorded in the logbook.
type LogEntry struct {
	// ID is assigned by the logbook when the entry is added.
	ID int64 `json:"id" yaml:"id"`

	// Text is the expression as it was entered (e.g. "ran 4 kms and 2 miles").
	Text string `json:"text" yaml:"text"`

	// Normalized is the cleaned token string the total was computed from.
	Normalized string `json:"normalized" yaml:"normalized"`

	// Millimeters is the parsed total, unrounded.
	Millimeters Quantity `json:"millimeters" yaml:"millimeters"`

	// RecordedAt is when the distance was covered or noted.
	RecordedAt time.Time `json:"recorded_at" yaml:"recorded_at"`
}
