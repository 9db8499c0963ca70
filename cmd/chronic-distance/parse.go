// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pdiddy/chronic-distance/pkg/distance"
	"github.com/pdiddy/chronic-distance/pkg/types"
)

var parseCmd = &cobra.Command{
	Use:   "parse [text...]",
	Short: "Parse a distance expression into millimeters",
	Long: `Parse reads a free-form distance expression and prints its total in
millimeters. Each number is paired with the unit that follows it, so
"4 kms and 2 miles" gives 7218688. Arguments are joined with spaces.

Text that holds no distance is an error.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runParse,
}

// parseResult is the JSON form of a parse.
type parseResult struct {
	Text        string         `json:"text"`
	Normalized  string         `json:"normalized"`
	Millimeters types.Quantity `json:"millimeters"`
}

func runParse(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	text := strings.Join(args, " ")
	engine := distance.NewEngine(nil)
	total, ok := engine.Parse(text, cfg.ParseOptions())
	if !ok {
		return fmt.Errorf("no distance found in %q", text)
	}

	jsonOutput, _ := cmd.Flags().GetBool("json")
	if jsonOutput {
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(parseResult{
			Text:        text,
			Normalized:  engine.Normalize(text),
			Millimeters: total,
		})
	}

	fmt.Fprintln(cmd.OutOrStdout(), total)
	return nil
}

func init() {
	parseCmd.Flags().Bool("round", false, "round the total to a whole millimeter")
	parseCmd.Flags().Bool("json", false, "output the result as JSON")

	rootCmd.AddCommand(parseCmd)
}
