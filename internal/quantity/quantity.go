// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package quantity turns a normalized token sequence into a millimeter
// total. Each numeric literal is paired with the token immediately to its
// right; a literal without a unit to its right contributes nothing.
package quantity

import (
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/pdiddy/chronic-distance/internal/units"
	"github.com/pdiddy/chronic-distance/pkg/types"
)

// literalPattern matches an unsigned decimal number such as "4", "11.5",
// or ".5".
const literalPattern = `[0-9]*\.?[0-9]+`

var (
	// Literal finds numeric literals inside arbitrary text.
	Literal = regexp.MustCompile(literalPattern)

	wholeLiteral = regexp.MustCompile(`^` + literalPattern + `$`)
)

// IsLiteral reports whether token is exactly one numeric literal.
func IsLiteral(token string) bool {
	return wholeLiteral.MatchString(token)
}

// ParseLiteral converts a numeric literal to a quantity. Literals with a
// non-zero fractional part are fractional; everything else, including
// "4.0", is integral. It returns false if token is not a literal.
func ParseLiteral(token string) (types.Quantity, bool) {
	if !IsLiteral(token) {
		return types.Quantity{}, false
	}
	if !strings.Contains(token, ".") {
		if n, err := strconv.ParseInt(token, 10, 64); err == nil {
			return types.Int(n), true
		}
	}
	f, err := strconv.ParseFloat(token, 64)
	if err != nil {
		return types.Quantity{}, false
	}
	if f != math.Trunc(f) || f >= math.MaxInt64 {
		return types.Float(f), true
	}
	return types.Int(int64(f)), true
}

// Sum walks tokens left to right and adds value × multiplier for every
// literal followed by a canonical unit name. The result is integral only
// if every contributing term is.
func Sum(tokens []string, catalog *units.Catalog) types.Quantity {
	total := types.Int(0)
	for i, tok := range tokens {
		value, ok := ParseLiteral(tok)
		if !ok || i+1 >= len(tokens) {
			continue
		}
		multiplier, err := catalog.Multiplier(tokens[i+1])
		if err != nil {
			continue
		}
		total = total.Add(value.Mul(multiplier))
	}
	return total
}
