// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package normalize

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"drops connective words", "4 meters and 10 centimeters", "4 meters 10 centimeters"},
		{"collapses whitespace", "  4 meters and 11     centimeters", "4 meters 11 centimeters"},
		{"splits glued forms", "4m11.5cm", "4 meters 11.5 centimeters"},
		{"maps every style", "1mm 2 millimeter 3 mms", "1 millimeters 2 millimeters 3 millimeters"},
		{"quote aliases", `4" 3'`, "4 inches 3 feet"},
		{"keeps bare numbers", "those 4 kms and 2 also", "4 kilometers 2"},
		{"tabs and newlines", "4\tkm\n2\r\nmiles", "4 kilometers 2 miles"},
		{"case sensitive", "4 KM", "4"},
		{"nothing recognized", "gobblygoo", ""},
		{"empty", "", ""},
		{"leading dot literal", ".5 miles", ".5 miles"},
		{"full-width input", "４ｋｍ", "4 kilometers"},
	}

	n := New(nil, nil)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, n.Normalize(tt.input))
		})
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	n := New(nil, nil)
	for _, input := range []string{
		"4m11.5cm",
		"those four kms and 2 miles also",
		`4" and 3 ft`,
		"1k 5 ks 2 yds 1y",
		"",
	} {
		once := n.Normalize(input)
		assert.Equal(t, once, n.Normalize(once), "input %q", input)
	}
}

func TestNormalizeUsesNumerizer(t *testing.T) {
	words := strings.NewReplacer("fifty", "50", "four", "4")
	n := New(nil, NumerizerFunc(words.Replace))

	assert.Equal(t, "50 millimeters", n.Normalize("fifty millimeters"))
	assert.Equal(t, "4 kilometers 2 miles", n.Normalize("those four kms and 2 miles also"))
}

func TestTokens(t *testing.T) {
	n := New(nil, nil)
	assert.Equal(t, []string{"4", "meters", "11.5", "centimeters"}, n.Tokens("4m11.5cm"))
	assert.Empty(t, n.Tokens("nothing here"))
}
