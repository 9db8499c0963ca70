// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package normalize cleans free text into a sequence of numeric literals
// and canonical unit names. Everything else is discarded.
package normalize

import (
	"strings"

	"golang.org/x/text/width"

	"github.com/pdiddy/chronic-distance/internal/quantity"
	"github.com/pdiddy/chronic-distance/internal/units"
)

// Numerizer replaces spelled-out quantity words ("fifty") with numeric
// literals ("50") and leaves all other text unchanged.
type Numerizer interface {
	Numerize(text string) string
}

// NumerizerFunc adapts a plain function to the Numerizer interface.
type NumerizerFunc func(string) string

// Numerize calls f(text).
func (f NumerizerFunc) Numerize(text string) string {
	return f(text)
}

// Identity is a Numerizer that returns its input unchanged.
var Identity Numerizer = NumerizerFunc(func(s string) string { return s })

// Normalizer turns raw distance expressions into normalized token strings.
type Normalizer struct {
	catalog   *units.Catalog
	numerizer Numerizer
}

// New returns a Normalizer. A nil catalog selects units.Default and a nil
// numerizer selects Identity.
func New(catalog *units.Catalog, numerizer Numerizer) *Normalizer {
	if catalog == nil {
		catalog = units.Default()
	}
	if numerizer == nil {
		numerizer = Identity
	}
	return &Normalizer{catalog: catalog, numerizer: numerizer}
}

// Normalize returns the space-joined tokens of Tokens(text), e.g.
// "4m11.5cm" becomes "4 meters 11.5 centimeters". It returns "" when
// nothing in text is recognized.
func (n *Normalizer) Normalize(text string) string {
	return strings.Join(n.Tokens(text), " ")
}

// Tokens numerizes text, folds full-width characters to their ASCII forms,
// splits numeric literals away from adjacent words, and keeps only numeric
// literals and recognized unit aliases. Aliases are replaced by their
// canonical unit name; original order is preserved.
func (n *Normalizer) Tokens(text string) []string {
	text = width.Fold.String(n.numerizer.Numerize(text))
	text = quantity.Literal.ReplaceAllString(text, " $0 ")

	fields := strings.Fields(text)
	tokens := fields[:0]
	for _, f := range fields {
		if quantity.IsLiteral(f) {
			tokens = append(tokens, f)
			continue
		}
		if name, ok := n.catalog.Recognize(f); ok {
			tokens = append(tokens, name)
		}
	}
	return tokens
}
