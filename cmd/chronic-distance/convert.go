// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pdiddy/chronic-distance/pkg/distance"
	"github.com/pdiddy/chronic-distance/pkg/types"
)

var convertCmd = &cobra.Command{
	Use:   "convert [text...]",
	Short: "Parse a distance expression and render it in another unit",
	Long: `Convert parses a distance expression and renders the total in the
chosen unit and style, e.g. "4 kms and 2 miles" --unit kilometers
--format long gives "7.218688 kilometers".`,
	Args: cobra.MinimumNArgs(1),
	RunE: runConvert,
}

func runConvert(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	text := strings.Join(args, " ")
	out, err := distance.Convert(text, cfg.ParseOptions(), cfg.OutputOptions())
	if err != nil {
		return err
	}
	if out == "" {
		return fmt.Errorf("no distance found in %q", text)
	}

	fmt.Fprintln(cmd.OutOrStdout(), out)
	return nil
}

func init() {
	convertCmd.Flags().String("unit", types.DefaultUnit, "unit to render into")
	convertCmd.Flags().String("format", string(types.FormatDefault), "rendering style: short, default, or long")
	convertCmd.Flags().Bool("round", false, "round the total to a whole millimeter before rendering")

	rootCmd.AddCommand(convertCmd)
}
