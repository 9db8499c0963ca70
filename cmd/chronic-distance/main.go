// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the chronic-distance CLI.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/chronic-distance/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

// configFlags maps viper keys to the flag names that can set them. A key is
// bound only when the running command defines the flag.
var configFlags = map[string]string{
	"round":               "round",
	"unit":                "unit",
	"format":              "format",
	"logbook.dir":         "logbook-dir",
	"logbook.max_results": "max-results",
}

// rootCmd is the base command for the chronic-distance CLI.
var rootCmd = &cobra.Command{
	Use:   "chronic-distance",
	Short: "Parse and format natural-language distances",
	Long: `chronic-distance reads free-form distance expressions such as
"4 kms and 2 miles" and turns them into millimeters, and renders
millimeters back into text in a chosen unit and style.

Parsed expressions can be kept in a local logbook for listing,
totalling, and export.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		for key, name := range configFlags {
			if f := cmd.Flags().Lookup(name); f != nil {
				if err := viper.BindPFlag(key, f); err != nil {
					return fmt.Errorf("binding flag %s: %w", name, err)
				}
			}
		}
		return nil
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./chronic-distance.yaml or ~/.config/chronic-distance/config.yaml)")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("chronic-distance")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "chronic-distance"))
		}
	}

	viper.SetDefault("round", false)
	viper.SetDefault("unit", types.DefaultUnit)
	viper.SetDefault("format", string(types.FormatDefault))
	viper.SetDefault("logbook.dir", "logbook")
	viper.SetDefault("logbook.max_results", 20)

	viper.SetEnvPrefix("CHRONIC_DISTANCE")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// loadConfig reads the merged flag, environment, and file settings.
func loadConfig() (types.Config, error) {
	var cfg types.Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return cfg, fmt.Errorf("reading configuration: %w", err)
	}
	return cfg, nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
