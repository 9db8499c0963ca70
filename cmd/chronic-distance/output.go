// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pdiddy/chronic-distance/pkg/distance"
	"github.com/pdiddy/chronic-distance/pkg/types"
)

var outputCmd = &cobra.Command{
	Use:   "output <millimeters>",
	Short: "Render a millimeter value in a unit and style",
	Long: `Output renders a millimeter value in the chosen unit. The short style
prints "4mile", default prints "4 mile", and long prints "4 miles".

A zero value prints nothing.`,
	Args: cobra.ExactArgs(1),
	RunE: runOutput,
}

func runOutput(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	mm, err := types.ParseQuantity(args[0])
	if err != nil {
		return fmt.Errorf("reading millimeters: %w", err)
	}

	text, err := distance.Output(mm.Value, cfg.OutputOptions())
	if err != nil {
		return err
	}
	if text != "" {
		fmt.Fprintln(cmd.OutOrStdout(), text)
	}
	return nil
}

func init() {
	outputCmd.Flags().String("unit", types.DefaultUnit, "unit to render into")
	outputCmd.Flags().String("format", string(types.FormatDefault), "rendering style: short, default, or long")

	rootCmd.AddCommand(outputCmd)
}
