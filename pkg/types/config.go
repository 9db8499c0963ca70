// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// FormatStyle selects how a distance is rendered: spacing, pluralization,
// and which alias set supplies the unit token.
type FormatStyle string

const (
	// FormatShort renders "4mile": no spacer, no pluralization, short aliases.
	FormatShort FormatStyle = "short"

	// FormatDefault renders "4 mile": a spacer, no pluralization, and the
	// short alias set.
	FormatDefault FormatStyle = "default"

	// FormatLong renders "4 miles": a spacer, pluralization, long aliases.
	FormatLong FormatStyle = "long"
)

// DefaultUnit is the unit Output renders into when none is given.
const DefaultUnit = "millimeters"

// Valid reports whether f names one of the three known styles.
func (f FormatStyle) Valid() bool {
	switch f {
	case FormatShort, FormatDefault, FormatLong:
		return true
	}
	return false
}

// ParseOptions controls how text is turned into a millimeter total.
type ParseOptions struct {
	// Round rounds the total to the nearest whole millimeter (default false).
	Round bool `json:"round" yaml:"round"`
}

// OutputOptions controls how a millimeter total is rendered.
type OutputOptions struct {
	// Unit is the canonical unit to render into (default "millimeters").
	Unit string `json:"unit" yaml:"unit"`

	// Format selects the rendering style (default "default").
	Format FormatStyle `json:"format" yaml:"format"`
}

// WithDefaults returns a copy of o with empty fields set to their defaults.
func (o OutputOptions) WithDefaults() OutputOptions {
	if o.Unit == "" {
		o.Unit = DefaultUnit
	}
	if o.Format == "" {
		o.Format = FormatDefault
	}
	return o
}

// LogbookConfig holds settings for the distance logbook.
type LogbookConfig struct {
	// Dir is the directory holding logbook.db and export files (default "logbook").
	Dir string `json:"dir" yaml:"dir" mapstructure:"dir"`

	// MaxResults is the default maximum number of listed entries (default 20).
	MaxResults int `json:"max_results" yaml:"max_results" mapstructure:"max_results"`
}

// Config groups every setting the CLI reads from flags, environment,
// and the config file.
type Config struct {
	Round   bool          `json:"round" yaml:"round" mapstructure:"round"`
	Unit    string        `json:"unit" yaml:"unit" mapstructure:"unit"`
	Format  FormatStyle   `json:"format" yaml:"format" mapstructure:"format"`
	Logbook LogbookConfig `json:"logbook" yaml:"logbook" mapstructure:"logbook"`
}

// ParseOptions extracts the parse settings from c.
func (c Config) ParseOptions() ParseOptions {
	return ParseOptions{Round: c.Round}
}

// OutputOptions extracts the output settings from c, with defaults applied.
func (c Config) OutputOptions() OutputOptions {
	return OutputOptions{Unit: c.Unit, Format: c.Format}.WithDefaults()
}
