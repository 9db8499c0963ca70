// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/pdiddy/chronic-distance/internal/logbook"
	"github.com/pdiddy/chronic-distance/pkg/distance"
	"github.com/pdiddy/chronic-distance/pkg/types"
)

var logbookCmd = &cobra.Command{
	Use:   "logbook",
	Short: "Record, list, and total distance expressions",
	Long: `Logbook keeps parsed distance expressions in a local SQLite database
with full-text search over the original text. Use subcommands to add
entries, list or total them, and import or export them.`,
}

// --- add subcommand ---

var logbookAddCmd = &cobra.Command{
	Use:   "add [text...]",
	Short: "Parse an expression and record it",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runLogbookAdd,
}

func runLogbookAdd(cmd *cobra.Command, args []string) error {
	at, err := timeFlag(cmd, "at")
	if err != nil {
		return err
	}

	store, cfg, err := openLogbook()
	if err != nil {
		return err
	}
	defer store.Close()

	entry, err := store.Add(context.Background(), strings.Join(args, " "), at)
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "added #%d: %s\n", entry.ID, render(entry.Millimeters, cfg))
	return nil
}

// --- list subcommand ---

var logbookListCmd = &cobra.Command{
	Use:   "list [query]",
	Short: "List entries, newest first",
	Long: `List shows logbook entries, newest first. A query restricts the list
to entries whose text contains every query word. --since and --until
bound the recorded time.`,
	RunE: runLogbookList,
}

func runLogbookList(cmd *cobra.Command, args []string) error {
	opts, err := queryOptsFromFlags(cmd, args)
	if err != nil {
		return err
	}

	store, cfg, err := openLogbook()
	if err != nil {
		return err
	}
	defer store.Close()

	entries, err := store.List(context.Background(), opts)
	if err != nil {
		return err
	}

	jsonOutput, _ := cmd.Flags().GetBool("json")
	return formatListOutput(cmd.OutOrStdout(), entries, cfg, jsonOutput)
}

func formatListOutput(w io.Writer, entries []types.LogEntry, cfg types.Config, jsonOutput bool) error {
	if jsonOutput {
		if entries == nil {
			entries = []types.LogEntry{}
		}
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(entries)
	}

	if len(entries) == 0 {
		fmt.Fprintln(w, "No entries found.")
		return nil
	}

	fmt.Fprintf(w, "%-5s  %-16s  %-20s  %s\n", "ID", "Recorded", "Distance", "Text")
	fmt.Fprintln(w, strings.Repeat("-", 80))

	for _, e := range entries {
		text := e.Text
		if len(text) > 40 {
			text = text[:37] + "..."
		}
		fmt.Fprintf(w, "%-5d  %-16s  %-20s  %s\n",
			e.ID, e.RecordedAt.Local().Format("2006-01-02 15:04"), render(e.Millimeters, cfg), text)
	}

	fmt.Fprintf(w, "\n%d entries\n", len(entries))
	return nil
}

// --- total subcommand ---

var logbookTotalCmd = &cobra.Command{
	Use:   "total [query]",
	Short: "Sum the distance of matching entries",
	RunE:  runLogbookTotal,
}

func runLogbookTotal(cmd *cobra.Command, args []string) error {
	opts, err := queryOptsFromFlags(cmd, args)
	if err != nil {
		return err
	}

	store, cfg, err := openLogbook()
	if err != nil {
		return err
	}
	defer store.Close()

	sum, err := store.Total(context.Background(), opts)
	if err != nil {
		return err
	}
	if sum.Count == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No entries found.")
		return nil
	}

	text, err := distance.Output(sum.Total.Value, cfg.OutputOptions())
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%s over %d entries\n", text, sum.Count)
	return nil
}

// --- remove subcommand ---

var logbookRemoveCmd = &cobra.Command{
	Use:   "remove <id>",
	Short: "Delete an entry",
	Args:  cobra.ExactArgs(1),
	RunE:  runLogbookRemove,
}

func runLogbookRemove(cmd *cobra.Command, args []string) error {
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return fmt.Errorf("invalid entry id %q: %w", args[0], err)
	}

	store, _, err := openLogbook()
	if err != nil {
		return err
	}
	defer store.Close()

	if err := store.Remove(context.Background(), id); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "removed #%d\n", id)
	return nil
}

// --- import subcommand ---

var logbookImportCmd = &cobra.Command{
	Use:   "import <file.yaml>",
	Short: "Add every expression listed in a YAML file",
	Long: `Import reads a YAML file of the form

  entries:
    - text: ran 4 kms and 2 miles
      at: 2026-03-01T07:30:00Z

and adds each entry. Entries without a distance are reported and skipped.`,
	Args: cobra.ExactArgs(1),
	RunE: runLogbookImport,
}

func runLogbookImport(cmd *cobra.Command, args []string) error {
	f, err := os.Open(args[0])
	if err != nil {
		return fmt.Errorf("opening import file: %w", err)
	}
	defer f.Close()

	store, _, err := openLogbook()
	if err != nil {
		return err
	}
	defer store.Close()

	summary, err := store.Import(context.Background(), f, cmd.OutOrStdout())
	if err != nil {
		return err
	}
	if summary.Failed > 0 {
		return fmt.Errorf("%d entr(ies) failed to import", summary.Failed)
	}
	return nil
}

// --- export subcommand ---

var logbookExportCmd = &cobra.Command{
	Use:   "export [query]",
	Short: "Export entries to YAML or JSON",
	Long: `Export writes matching entries and their total to export.yaml or
export.json in the logbook directory. Supports the same filters as list.`,
	RunE: runLogbookExport,
}

func runLogbookExport(cmd *cobra.Command, args []string) error {
	as, _ := cmd.Flags().GetString("as")

	opts, err := queryOptsFromFlags(cmd, args)
	if err != nil {
		return err
	}

	store, _, err := openLogbook()
	if err != nil {
		return err
	}
	defer store.Close()

	var path string
	switch as {
	case "yaml", "":
		path, err = store.ExportYAML(context.Background(), opts)
	case "json":
		path, err = store.ExportJSON(context.Background(), opts)
	default:
		return fmt.Errorf("unsupported export format %q: use yaml or json", as)
	}
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Exported to %s\n", path)
	return nil
}

// --- shared helpers ---

func openLogbook() (*logbook.Store, types.Config, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, cfg, err
	}
	store, err := logbook.NewStore(cfg.Logbook, nil)
	if err != nil {
		return nil, cfg, err
	}
	return store, cfg, nil
}

// render formats a total with the configured unit and style, falling back
// to millimeters when the configuration cannot be rendered.
func render(q types.Quantity, cfg types.Config) string {
	text, err := distance.Output(q.Value, cfg.OutputOptions())
	if err != nil || text == "" {
		return q.String() + " mm"
	}
	return text
}

func queryOptsFromFlags(cmd *cobra.Command, args []string) (logbook.QueryOptions, error) {
	since, err := timeFlag(cmd, "since")
	if err != nil {
		return logbook.QueryOptions{}, err
	}
	until, err := timeFlag(cmd, "until")
	if err != nil {
		return logbook.QueryOptions{}, err
	}
	limit, _ := cmd.Flags().GetInt("limit")

	return logbook.QueryOptions{
		Query:      strings.Join(args, " "),
		Since:      since,
		Until:      until,
		MaxResults: limit,
	}, nil
}

// timeFlag reads an RFC 3339 timestamp or a YYYY-MM-DD date (local
// midnight) from the named flag. An unset flag gives the zero time.
func timeFlag(cmd *cobra.Command, name string) (time.Time, error) {
	s, _ := cmd.Flags().GetString(name)
	if s == "" {
		return time.Time{}, nil
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	t, err := time.ParseInLocation(time.DateOnly, s, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid --%s %q: use RFC 3339 or YYYY-MM-DD", name, s)
	}
	return t, nil
}

func init() {
	// Shared flags on the parent command, inherited by subcommands.
	logbookCmd.PersistentFlags().String("logbook-dir", "logbook", "directory holding logbook.db and exports")
	logbookCmd.PersistentFlags().Int("max-results", 20, "default maximum number of listed entries")
	logbookCmd.PersistentFlags().String("unit", types.DefaultUnit, "unit to display distances in")

	// Add flags.
	logbookAddCmd.Flags().String("at", "", "when the distance was covered (RFC 3339 or YYYY-MM-DD, default now)")

	// Filter flags shared by list, total, and export.
	for _, c := range []*cobra.Command{logbookListCmd, logbookTotalCmd, logbookExportCmd} {
		c.Flags().String("since", "", "only entries recorded at or after this time")
		c.Flags().String("until", "", "only entries recorded at or before this time")
	}

	// List flags.
	logbookListCmd.Flags().Int("limit", 0, "maximum entries (0 = use default)")
	logbookListCmd.Flags().Bool("json", false, "output entries as JSON")

	// Total flags.
	logbookTotalCmd.Flags().String("format", string(types.FormatDefault), "rendering style: short, default, or long")

	// Export flags.
	// Not "format": that key is the display style.
	logbookExportCmd.Flags().String("as", "yaml", "export file format: yaml or json")

	// Wire subcommands.
	logbookCmd.AddCommand(logbookAddCmd)
	logbookCmd.AddCommand(logbookListCmd)
	logbookCmd.AddCommand(logbookTotalCmd)
	logbookCmd.AddCommand(logbookRemoveCmd)
	logbookCmd.AddCommand(logbookImportCmd)
	logbookCmd.AddCommand(logbookExportCmd)

	rootCmd.AddCommand(logbookCmd)
}
