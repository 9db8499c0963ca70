// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package logbook

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/chronic-distance/pkg/types"
)

// Export is the on-disk form of a logbook export.
type Export struct {
	Summary Summary          `json:"summary" yaml:"summary"`
	Entries []types.LogEntry `json:"entries" yaml:"entries"`
}

const exportLimit = 1_000_000

// ExportYAML writes the matching entries to <dir>/export.yaml and returns
// the path written.
func (s *Store) ExportYAML(ctx context.Context, opts QueryOptions) (string, error) {
	exp, err := s.export(ctx, opts)
	if err != nil {
		return "", err
	}

	path := filepath.Join(s.dir, "export.yaml")
	data, err := yaml.Marshal(exp)
	if err != nil {
		return "", fmt.Errorf("marshaling YAML: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("writing %s: %w", path, err)
	}
	return path, nil
}

// ExportJSON writes the matching entries to <dir>/export.json and returns
// the path written.
func (s *Store) ExportJSON(ctx context.Context, opts QueryOptions) (string, error) {
	exp, err := s.export(ctx, opts)
	if err != nil {
		return "", err
	}

	path := filepath.Join(s.dir, "export.json")
	data, err := json.MarshalIndent(exp, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshaling JSON: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("writing %s: %w", path, err)
	}
	return path, nil
}

func (s *Store) export(ctx context.Context, opts QueryOptions) (Export, error) {
	opts.MaxResults = exportLimit
	entries, err := s.List(ctx, opts)
	if err != nil {
		return Export{}, fmt.Errorf("querying for export: %w", err)
	}
	sum, err := s.Total(ctx, opts)
	if err != nil {
		return Export{}, fmt.Errorf("totalling for export: %w", err)
	}
	if entries == nil {
		entries = []types.LogEntry{}
	}
	return Export{Summary: sum, Entries: entries}, nil
}
