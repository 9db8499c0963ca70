// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.yaml.in/yaml/v3"
)

func TestQuantityArithmetic(t *testing.T) {
	assert.Equal(t, Int(12), Int(3).Mul(Int(4)))
	assert.False(t, Int(4).Mul(Float(914.4)).Integral)
	assert.False(t, Int(1).Add(Float(0.5)).Integral)
	assert.Equal(t, Int(4), Float(3.5).Round())
	assert.Equal(t, "4", Int(4).String())
	assert.Equal(t, "3657.6", Float(3657.6).String())
}

func TestParseQuantity(t *testing.T) {
	tests := []struct {
		in   string
		want Quantity
	}{
		{"2000", Int(2000)},
		{" 42 ", Int(42)},
		{"2.5", Float(2.5)},
		{"1e3", Float(1000)},
		{"99999999999999991611392", Quantity{Value: 1e23, Integral: true}},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseQuantity(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	_, err := ParseQuantity("lots")
	assert.Error(t, err)
}

func TestQuantityInt64Saturates(t *testing.T) {
	assert.Equal(t, int64(4_000_000), Int(4_000_000).Int64())
	assert.Equal(t, int64(math.MaxInt64), Quantity{Value: 1e23, Integral: true}.Int64())
	assert.Equal(t, int64(math.MinInt64), Quantity{Value: -1e23, Integral: true}.Int64())
}

func TestQuantityYAMLRoundTrip(t *testing.T) {
	huge := Int(100_000_000_000_000_000).Mul(Int(1_000_000))

	tests := []struct {
		name string
		q    Quantity
		yaml string
	}{
		{"integral", Int(7_218_688), "7218688\n"},
		{"fractional", Float(3657.6), "3657.6\n"},
		{"integral beyond int64", huge, "!!int 99999999999999991611392\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := yaml.Marshal(tt.q)
			require.NoError(t, err)
			assert.Equal(t, tt.yaml, string(data))

			var got Quantity
			require.NoError(t, yaml.Unmarshal(data, &got))
			assert.Equal(t, tt.q, got)
		})
	}
}

func TestQuantityJSONRoundTrip(t *testing.T) {
	huge := Int(100_000_000_000_000_000).Mul(Int(1_000_000))

	data, err := json.Marshal(huge)
	require.NoError(t, err)
	assert.Equal(t, "99999999999999991611392", string(data))

	var got Quantity
	require.NoError(t, json.Unmarshal(data, &got))
	assert.Equal(t, huge, got)

	_, err = json.Marshal(Float(math.Inf(1)))
	assert.Error(t, err)
}
