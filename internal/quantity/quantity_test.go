// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package quantity

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/pdiddy/chronic-distance/internal/units"
	"github.com/pdiddy/chronic-distance/pkg/types"
)

func TestIsLiteral(t *testing.T) {
	for _, tok := range []string{"4", "11.5", ".5", "007", "1609344"} {
		assert.True(t, IsLiteral(tok), tok)
	}
	for _, tok := range []string{"", "4.", "1.2.3", "-4", "4km", "meters", "1e5"} {
		assert.False(t, IsLiteral(tok), tok)
	}
}

func TestParseLiteral(t *testing.T) {
	tests := []struct {
		token string
		want  types.Quantity
	}{
		{"4", types.Int(4)},
		{"4.0", types.Int(4)},
		{"11.5", types.Float(11.5)},
		{".5", types.Float(0.5)},
		{"0", types.Int(0)},
		{"99999999999999999999", types.Float(1e20)},
	}

	for _, tt := range tests {
		t.Run(tt.token, func(t *testing.T) {
			got, ok := ParseLiteral(tt.token)
			assert.True(t, ok)
			assert.Equal(t, tt.want, got)
		})
	}

	_, ok := ParseLiteral("km")
	assert.False(t, ok)
}

func TestSum(t *testing.T) {
	// Runtime operands, so the expectations use the same float64 arithmetic as Sum.
	inch, yard, meter := 25.4, 914.4, 1000.0

	tests := []struct {
		name   string
		tokens string
		want   types.Quantity
	}{
		{"single unit", "10 centimeters", types.Int(100)},
		{"mixed units", "2 kilometers and 10 centimeters", types.Int(2_000_100)},
		{"miles and centimeters", "2 miles and 10 centimeters", types.Int(3_218_788)},
		{"fractional multiplier", "4 yards", types.Float(4 * yard)},
		{"fractional literal", "3.5 miles", types.Float(3.5 * 1_609_344)},
		{"trailing bare number", "4 meters 7", types.Int(4_000)},
		{"bare number before number", "4 4 meters", types.Int(4_000)},
		{"unit without number", "meters", types.Int(0)},
		{"number before unknown word", "4 furlongs", types.Int(0)},
		{"empty", "", types.Int(0)},
		{"integral plus fractional", "1 meters 1 inches", types.Float(meter + inch)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Sum(strings.Fields(tt.tokens), units.Default())
			assert.Equal(t, tt.want, got)
		})
	}
}
