// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package logbook

import (
	"context"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/pdiddy/chronic-distance/pkg/types"
)

// QueryOptions filters logbook entries.
type QueryOptions struct {
	// Query is a full-text search over the entry text. Every word must match.
	// Words made only of punctuation match as plain substrings.
	Query string

	// Since and Until bound RecordedAt (inclusive). Zero means unbounded.
	Since time.Time
	Until time.Time

	// MaxResults limits the number of listed entries. Zero uses the store default.
	MaxResults int
}

// where builds the filter clause shared by List and Total.
func (q QueryOptions) where() (string, []any) {
	var (
		qb   strings.Builder
		args []any
	)
	qb.WriteString(` WHERE 1=1`)

	match, marks := queryTerms(q.Query)
	if match != "" {
		qb.WriteString(` AND e.id IN (SELECT docid FROM entries_fts WHERE entries_fts MATCH ?)`)
		args = append(args, match)
	}
	for _, m := range marks {
		qb.WriteString(` AND instr(e.text, ?) > 0`)
		args = append(args, m)
	}
	if !q.Since.IsZero() {
		qb.WriteString(` AND e.recorded_at >= ?`)
		args = append(args, q.Since.UTC().Format(timeLayout))
	}
	if !q.Until.IsZero() {
		qb.WriteString(` AND e.recorded_at <= ?`)
		args = append(args, q.Until.UTC().Format(timeLayout))
	}
	return qb.String(), args
}

// queryTerms splits a free-text query for the full-text index. Each word
// becomes a quoted phrase of the tokens the simple tokenizer sees in it, so
// FTS operators such as '*' and '"' are inert. Words with no tokens at all
// (the foot mark "'", a lone "-") are returned as marks and matched as
// substrings of the entry text instead.
func queryTerms(query string) (match string, marks []string) {
	var phrases []string
	for _, w := range strings.Fields(query) {
		tokens := strings.FieldsFunc(w, isTokenSeparator)
		if len(tokens) == 0 {
			marks = append(marks, w)
			continue
		}
		phrases = append(phrases, `"`+strings.Join(tokens, " ")+`"`)
	}
	return strings.Join(phrases, " "), marks
}

// isTokenSeparator mirrors the FTS4 simple tokenizer: ASCII letters and
// digits and every non-ASCII rune are token characters.
func isTokenSeparator(r rune) bool {
	if r >= utf8.RuneSelf {
		return false
	}
	return !('a' <= r && r <= 'z' || 'A' <= r && r <= 'Z' || '0' <= r && r <= '9')
}

// List returns matching entries, newest first.
func (s *Store) List(ctx context.Context, opts QueryOptions) ([]types.LogEntry, error) {
	maxResults := opts.MaxResults
	if maxResults <= 0 {
		maxResults = s.maxResults
	}

	where, args := opts.where()
	query := `SELECT e.id, e.text, e.normalized, e.millimeters, e.integral, e.recorded_at
		FROM entries e` + where + ` ORDER BY e.recorded_at DESC, e.id DESC LIMIT ?`
	args = append(args, maxResults)

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying logbook: %w", err)
	}
	defer rows.Close()

	var entries []types.LogEntry
	for rows.Next() {
		e, err := scanEntry(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning row: %w", err)
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// Summary is the aggregate of the entries selected by a query.
type Summary struct {
	Count int            `json:"count" yaml:"count"`
	Total types.Quantity `json:"total" yaml:"total"`
}

// Total sums the millimeters of every matching entry. MaxResults is ignored.
// The total is integral only if every summed entry is.
func (s *Store) Total(ctx context.Context, opts QueryOptions) (Summary, error) {
	where, args := opts.where()
	query := `SELECT COUNT(*), COALESCE(SUM(e.millimeters), 0), COALESCE(MIN(e.integral), 1)
		FROM entries e` + where

	var (
		sum      Summary
		integral bool
	)
	if err := s.db.QueryRowContext(ctx, query, args...).Scan(&sum.Count, &sum.Total.Value, &integral); err != nil {
		return Summary{}, fmt.Errorf("totalling logbook: %w", err)
	}
	sum.Total.Integral = integral
	return sum, nil
}
