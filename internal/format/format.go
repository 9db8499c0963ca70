// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package format renders a millimeter quantity as text in a target unit
// and style.
package format

import (
	"errors"
	"fmt"
	"math"

	"github.com/pdiddy/chronic-distance/internal/units"
	"github.com/pdiddy/chronic-distance/pkg/types"
)

var (
	// ErrUnknownFormat is returned for a style other than short, default, or long.
	ErrUnknownFormat = errors.New("unknown format")

	// ErrNotFinite is returned when asked to render NaN or an infinity.
	ErrNotFinite = errors.New("quantity is not finite")
)

// Spec holds the rendering rules of one FormatStyle.
type Spec struct {
	// Spacer separates the number from the unit label.
	Spacer string

	// Pluralize enables plural labels for quantities other than 1.
	Pluralize bool

	// Aliases is the alias group the unit label is drawn from.
	Aliases units.Style
}

// The default style spaces like long but labels like short.
var specs = map[types.FormatStyle]Spec{
	types.FormatShort:   {Spacer: "", Pluralize: false, Aliases: units.StyleShort},
	types.FormatDefault: {Spacer: " ", Pluralize: false, Aliases: units.StyleShort},
	types.FormatLong:    {Spacer: " ", Pluralize: true, Aliases: units.StyleLong},
}

// SpecFor returns the rendering rules for style.
func SpecFor(style types.FormatStyle) (Spec, error) {
	s, ok := specs[style]
	if !ok {
		return Spec{}, fmt.Errorf("%w %q: use short, default, or long", ErrUnknownFormat, style)
	}
	return s, nil
}

// Display converts millimeters into the unit with the given multiplier.
// Whole results are integral; others keep their fractional value.
func Display(millimeters float64, multiplier types.Quantity) types.Quantity {
	v := millimeters / multiplier.Value
	if v == math.Round(v) {
		return types.Quantity{Value: v, Integral: true}
	}
	return types.Float(v)
}

// Humanize composes "{quantity}{spacer}{label}". It returns "" for a zero
// quantity, which cannot be rendered.
func Humanize(q types.Quantity, alias string, unit units.Unit, spec Spec) string {
	if q.IsZero() {
		return ""
	}
	label := alias
	if spec.Pluralize && q.Value != 1 {
		label = unit.Pluralize(alias)
	}
	return q.String() + spec.Spacer + label
}

// Format renders millimeters in the named canonical unit and style. An
// empty string with a nil error means the quantity rounds to nothing
// displayable.
func Format(catalog *units.Catalog, millimeters float64, unit string, style types.FormatStyle) (string, error) {
	if math.IsNaN(millimeters) || math.IsInf(millimeters, 0) {
		return "", fmt.Errorf("%w: %v", ErrNotFinite, millimeters)
	}
	spec, err := SpecFor(style)
	if err != nil {
		return "", err
	}
	u, ok := catalog.Lookup(unit)
	if !ok {
		return "", fmt.Errorf("%w %q", units.ErrUnknownUnit, unit)
	}
	alias, ok := catalog.Alias(spec.Aliases, unit)
	if !ok {
		return "", fmt.Errorf("unit %q has no %s alias", unit, spec.Aliases)
	}
	return Humanize(Display(millimeters, u.Multiplier), alias, u, spec), nil
}
