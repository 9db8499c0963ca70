// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pdiddy/chronic-distance/internal/units"
	"github.com/pdiddy/chronic-distance/pkg/distance"
	"github.com/pdiddy/chronic-distance/pkg/types"
)

var unitsCmd = &cobra.Command{
	Use:   "units",
	Short: "List the recognized units and their aliases",
	RunE:  runUnits,
}

// unitInfo is the JSON form of one catalog unit.
type unitInfo struct {
	Name       string         `json:"name"`
	Multiplier types.Quantity `json:"multiplier"`
	Short      []string       `json:"short"`
	Long       []string       `json:"long"`
	Other      []string       `json:"other,omitempty"`
}

func runUnits(cmd *cobra.Command, args []string) error {
	var infos []unitInfo
	for _, u := range distance.Units() {
		infos = append(infos, unitInfo{
			Name:       u.Name,
			Multiplier: u.Multiplier,
			Short:      u.Aliases[units.StyleShort],
			Long:       u.Aliases[units.StyleLong],
			Other:      u.Aliases[units.StyleOther],
		})
	}

	out := cmd.OutOrStdout()
	jsonOutput, _ := cmd.Flags().GetBool("json")
	if jsonOutput {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(infos)
	}

	fmt.Fprintf(out, "%-12s  %-10s  %-12s  %-14s  %s\n", "Unit", "mm", "Short", "Long", "Other")
	fmt.Fprintln(out, strings.Repeat("-", 72))
	for _, u := range infos {
		fmt.Fprintf(out, "%-12s  %-10s  %-12s  %-14s  %s\n",
			u.Name, u.Multiplier,
			strings.Join(u.Short, ", "),
			strings.Join(u.Long, ", "),
			strings.Join(u.Other, ", "))
	}
	return nil
}

func init() {
	unitsCmd.Flags().Bool("json", false, "output the catalog as JSON")

	rootCmd.AddCommand(unitsCmd)
}
