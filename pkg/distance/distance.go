// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package distance parses natural-language distance expressions such as
// "4 kms and 2 miles" into millimeters and renders millimeters back into
// text in a chosen unit and style.
//
// Spelled-out numbers ("fifty") are not expanded here. Supply a
// normalize.Numerizer through NewEngine to handle them before parsing.
package distance

import (
	"github.com/pdiddy/chronic-distance/internal/format"
	"github.com/pdiddy/chronic-distance/internal/normalize"
	"github.com/pdiddy/chronic-distance/internal/quantity"
	"github.com/pdiddy/chronic-distance/internal/units"
	"github.com/pdiddy/chronic-distance/pkg/types"
)

// Errors returned by Output.
var (
	ErrUnknownUnit   = units.ErrUnknownUnit
	ErrUnknownFormat = format.ErrUnknownFormat
	ErrNotFinite     = format.ErrNotFinite
)

// Numerizer expands spelled-out numbers into numeric literals.
type Numerizer = normalize.Numerizer

// Engine parses and renders distances. It holds no mutable state and is
// safe for concurrent use.
type Engine struct {
	catalog    *units.Catalog
	normalizer *normalize.Normalizer
}

// NewEngine returns an Engine over the built-in unit catalog. A nil
// numerizer leaves text unchanged before normalization.
func NewEngine(n Numerizer) *Engine {
	c := units.Default()
	return &Engine{catalog: c, normalizer: normalize.New(c, n)}
}

var defaultEngine = NewEngine(nil)

// Parse returns the millimeter total of text, or false when nothing in
// text describes a distance. A zero total is reported as not found.
func Parse(text string, opts types.ParseOptions) (types.Quantity, bool) {
	return defaultEngine.Parse(text, opts)
}

// Output renders millimeters using the default engine. See Engine.Output.
func Output(millimeters float64, opts types.OutputOptions) (string, error) {
	return defaultEngine.Output(millimeters, opts)
}

// Convert parses text and renders the total using the default engine.
func Convert(text string, parse types.ParseOptions, out types.OutputOptions) (string, error) {
	return defaultEngine.Convert(text, parse, out)
}

// Normalize returns the cleaned token string Parse works from.
func (e *Engine) Normalize(text string) string {
	return e.normalizer.Normalize(text)
}

// Parse returns the millimeter total of text. Numbers are paired with the
// unit immediately after them; numbers with no unit are ignored. With
// opts.Round the total is rounded to a whole millimeter. A total of zero,
// whether from empty input or from "0 km", is reported as not found.
func (e *Engine) Parse(text string, opts types.ParseOptions) (types.Quantity, bool) {
	total := quantity.Sum(e.normalizer.Tokens(text), e.catalog)
	if opts.Round {
		total = total.Round()
	}
	if total.IsZero() {
		return types.Quantity{}, false
	}
	return total, true
}

// Output renders millimeters in opts.Unit (default "millimeters") using
// opts.Format (default "default"). It returns "" with a nil error when the
// quantity is zero. Unknown units and formats are errors.
func (e *Engine) Output(millimeters float64, opts types.OutputOptions) (string, error) {
	opts = opts.WithDefaults()
	return format.Format(e.catalog, millimeters, opts.Unit, opts.Format)
}

// Convert parses text and renders the total. It returns "" with a nil
// error when text holds no distance.
func (e *Engine) Convert(text string, parse types.ParseOptions, out types.OutputOptions) (string, error) {
	total, ok := e.Parse(text, parse)
	if !ok {
		return "", nil
	}
	return e.Output(total.Value, out)
}

// Units returns the canonical units in catalog order.
func (e *Engine) Units() []units.Unit {
	return e.catalog.Units()
}

// Units returns the canonical units of the built-in catalog.
func Units() []units.Unit {
	return defaultEngine.Units()
}
