// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package logbook

import (
	"context"
	"fmt"
	"io"
	"time"

	"go.yaml.in/yaml/v3"
)

// ImportFile is the YAML document accepted by Import:
//
//	entries:
//	  - text: ran 4 kms and 2 miles
//	    at: 2026-03-01T07:30:00Z
//	  - text: 800m warm-up
type ImportFile struct {
	Entries []ImportRecord `yaml:"entries"`
}

// ImportRecord is one expression to add. A missing At means now.
type ImportRecord struct {
	Text string    `yaml:"text"`
	At   time.Time `yaml:"at,omitempty"`
}

// ImportSummary holds counts from an import run.
type ImportSummary struct {
	Added  int
	Failed int
}

// Total returns the number of records processed.
func (s ImportSummary) Total() int {
	return s.Added + s.Failed
}

// Import reads an ImportFile from r and adds each record, writing one
// progress line per record to w. Records without a distance are counted
// as failed and do not stop the run.
func (s *Store) Import(ctx context.Context, r io.Reader, w io.Writer) (ImportSummary, error) {
	var f ImportFile
	if err := yaml.NewDecoder(r).Decode(&f); err != nil && err != io.EOF {
		return ImportSummary{}, fmt.Errorf("parsing import file: %w", err)
	}

	var summary ImportSummary
	for _, rec := range f.Entries {
		select {
		case <-ctx.Done():
			return summary, ctx.Err()
		default:
		}

		entry, err := s.Add(ctx, rec.Text, rec.At)
		if err != nil {
			fmt.Fprintf(w, "failed  %q: %v\n", rec.Text, err)
			summary.Failed++
			continue
		}
		fmt.Fprintf(w, "added   #%d %q (%s mm)\n", entry.ID, entry.Text, entry.Millimeters)
		summary.Added++
	}

	fmt.Fprintf(w, "\nadded: %d, failed: %d\n", summary.Added, summary.Failed)
	return summary, nil
}
