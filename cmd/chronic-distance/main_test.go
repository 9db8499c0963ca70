// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// execute runs the CLI with args against fresh flag and viper state.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	viper.Reset()
	resetFlags(rootCmd)

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func resetFlags(c *cobra.Command) {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	c.Flags().VisitAll(reset)
	c.PersistentFlags().VisitAll(reset)
	for _, sub := range c.Commands() {
		resetFlags(sub)
	}
}

func TestParseCommand(t *testing.T) {
	tests := []struct {
		args []string
		want string
	}{
		{[]string{"parse", "4", "kms", "and", "2", "miles"}, "7218688\n"},
		{[]string{"parse", "800m"}, "800000\n"},
		{[]string{"parse", "4 yards"}, "3657.6\n"},
		{[]string{"parse", "--round", "4 yards"}, "3658\n"},
	}

	for _, tt := range tests {
		t.Run(strings.Join(tt.args, " "), func(t *testing.T) {
			got, err := execute(t, tt.args...)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseCommandJSON(t *testing.T) {
	got, err := execute(t, "parse", "--json", "ran 4 kms")
	require.NoError(t, err)

	var res parseResult
	require.NoError(t, json.Unmarshal([]byte(got), &res))
	assert.Equal(t, "ran 4 kms", res.Text)
	assert.Equal(t, "4 kilometers", res.Normalized)
	assert.Equal(t, 4_000_000.0, res.Millimeters.Value)
}

func TestParseCommandNoDistance(t *testing.T) {
	_, err := execute(t, "parse", "gobblygoo")
	assert.ErrorContains(t, err, "no distance found")
}

func TestOutputCommand(t *testing.T) {
	got, err := execute(t, "output", "2000")
	require.NoError(t, err)
	assert.Equal(t, "2000 mm\n", got)

	got, err = execute(t, "output", "--unit", "miles", "--format", "long", "6437376")
	require.NoError(t, err)
	assert.Equal(t, "4 miles\n", got)

	got, err = execute(t, "output", "0")
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestOutputCommandErrors(t *testing.T) {
	_, err := execute(t, "output", "--unit", "furlongs", "1000")
	assert.ErrorContains(t, err, "furlongs")

	_, err = execute(t, "output", "--format", "tiny", "1000")
	assert.Error(t, err)

	_, err = execute(t, "output", "lots")
	assert.ErrorContains(t, err, "reading millimeters")
}

func TestConvertCommand(t *testing.T) {
	got, err := execute(t, "convert", "--unit", "kilometers", "--format", "long", "4 kms and 2 miles")
	require.NoError(t, err)
	assert.Equal(t, "7.218688 kilometers\n", got)
}

func TestConfigFromEnvironment(t *testing.T) {
	t.Setenv("CHRONIC_DISTANCE_UNIT", "meters")
	t.Setenv("CHRONIC_DISTANCE_FORMAT", "short")

	got, err := execute(t, "convert", "2 km")
	require.NoError(t, err)
	assert.Equal(t, "2000m\n", got)

	// Flags win over the environment.
	got, err = execute(t, "convert", "--unit", "kilometers", "2 km")
	require.NoError(t, err)
	assert.Equal(t, "2km\n", got)
}

func TestConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("unit: feet\nformat: long\n"), 0o644))

	got, err := execute(t, "--config", path, "convert", "8 feet")
	require.NoError(t, err)
	assert.Equal(t, "8 feet\n", got)
}

func TestUnitsCommand(t *testing.T) {
	got, err := execute(t, "units", "--json")
	require.NoError(t, err)

	var infos []unitInfo
	require.NoError(t, json.Unmarshal([]byte(got), &infos))
	require.Len(t, infos, 8)
	assert.Equal(t, "millimeters", infos[0].Name)
	assert.Equal(t, []string{"km"}, infos[3].Short)

	got, err = execute(t, "units")
	require.NoError(t, err)
	assert.Contains(t, got, "kilometers")
}

func TestLogbookCommands(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "logbook")

	got, err := execute(t, "logbook", "add", "--logbook-dir", dir, "--at", "2026-03-01", "run 5 km")
	require.NoError(t, err)
	assert.Equal(t, "added #1: 5000000 mm\n", got)

	_, err = execute(t, "logbook", "add", "--logbook-dir", dir, "--at", "2026-03-02", "run 3 km")
	require.NoError(t, err)
	_, err = execute(t, "logbook", "add", "--logbook-dir", dir, "--at", "2026-03-03", "walk 2 miles")
	require.NoError(t, err)

	_, err = execute(t, "logbook", "add", "--logbook-dir", dir, "nothing here")
	assert.Error(t, err)

	got, err = execute(t, "logbook", "total", "--logbook-dir", dir, "--unit", "kilometers", "run")
	require.NoError(t, err)
	assert.Equal(t, "8 km over 2 entries\n", got)

	got, err = execute(t, "logbook", "list", "--logbook-dir", dir, "--since", "2026-03-02")
	require.NoError(t, err)
	assert.Contains(t, got, "walk 2 miles")
	assert.Contains(t, got, "run 3 km")
	assert.NotContains(t, got, "run 5 km")
	assert.Contains(t, got, "2 entries")

	got, err = execute(t, "logbook", "remove", "--logbook-dir", dir, "1")
	require.NoError(t, err)
	assert.Equal(t, "removed #1\n", got)

	got, err = execute(t, "logbook", "list", "--logbook-dir", dir, "--json")
	require.NoError(t, err)
	assert.NotContains(t, got, "run 5 km")

	got, err = execute(t, "logbook", "export", "--logbook-dir", dir, "--as", "json")
	require.NoError(t, err)
	assert.Equal(t, "Exported to "+filepath.Join(dir, "export.json")+"\n", got)

	_, err = execute(t, "logbook", "export", "--logbook-dir", dir, "--as", "csv")
	assert.ErrorContains(t, err, "unsupported export format")
}

func TestLogbookExportLeavesDisplayStyle(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "logbook")

	_, err := execute(t, "logbook", "add", "--logbook-dir", dir, "2 km")
	require.NoError(t, err)

	_, err = execute(t, "logbook", "export", "--logbook-dir", dir, "--as", "json")
	require.NoError(t, err)
	assert.Equal(t, "default", viper.GetString("format"))

	cfg, err := loadConfig()
	require.NoError(t, err)
	assert.True(t, cfg.Format.Valid())
}

func TestLogbookImportCommand(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "logbook")
	file := filepath.Join(t.TempDir(), "import.yaml")
	require.NoError(t, os.WriteFile(file, []byte("entries:\n  - text: 1 km\n  - text: 2 miles\n"), 0o644))

	got, err := execute(t, "logbook", "import", "--logbook-dir", dir, file)
	require.NoError(t, err)
	assert.Contains(t, got, "added: 2, failed: 0")
}

func TestVersionCommand(t *testing.T) {
	got, err := execute(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "chronic-distance dev\n", got)
}
