// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines the shared data structures of chronic-distance:
// the Quantity value produced by parsing and the option and configuration
// structs consumed by the facade, the logbook, and the CLI.
package types

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"go.yaml.in/yaml/v3"
)

// Quantity is a numeric distance that remembers whether it was produced by
// integer arithmetic alone. Integer literals times integer multipliers stay
// integral; any fractional literal or multiplier makes the result fractional.
type Quantity struct {
	Value    float64
	Integral bool
}

// Int returns an integral quantity.
func Int(n int64) Quantity {
	return Quantity{Value: float64(n), Integral: true}
}

// Float returns a fractional quantity.
func Float(f float64) Quantity {
	return Quantity{Value: f}
}

// Add returns q + o. The sum is integral only if both operands are.
func (q Quantity) Add(o Quantity) Quantity {
	return Quantity{Value: q.Value + o.Value, Integral: q.Integral && o.Integral}
}

// Mul returns q × o. The product is integral only if both operands are.
func (q Quantity) Mul(o Quantity) Quantity {
	return Quantity{Value: q.Value * o.Value, Integral: q.Integral && o.Integral}
}

// Round rounds half away from zero and returns an integral quantity.
func (q Quantity) Round() Quantity {
	return Quantity{Value: math.Round(q.Value), Integral: true}
}

// IsZero reports whether the value is exactly zero.
func (q Quantity) IsZero() bool {
	return q.Value == 0
}

// Int64 returns the value truncated to an int64, saturating at the int64
// bounds.
func (q Quantity) Int64() int64 {
	switch {
	case q.Value >= math.MaxInt64:
		return math.MaxInt64
	case q.Value <= math.MinInt64:
		return math.MinInt64
	}
	return int64(q.Value)
}

// fitsInt64 reports whether the rounded value converts to int64 exactly.
func (q Quantity) fitsInt64() bool {
	return math.Abs(q.Value) < math.MaxInt64
}

// String renders integral quantities without a decimal point and fractional
// ones in their shortest decimal form.
func (q Quantity) String() string {
	if q.Integral {
		return strconv.FormatFloat(math.Round(q.Value), 'f', 0, 64)
	}
	return strconv.FormatFloat(q.Value, 'f', -1, 64)
}

// ParseQuantity reads a decimal number. Numbers written without a decimal
// point or exponent are integral, including those beyond the int64 range.
func ParseQuantity(s string) (Quantity, error) {
	s = strings.TrimSpace(s)
	integral := !strings.ContainsAny(s, ".eE")
	if integral {
		if n, err := strconv.ParseInt(s, 10, 64); err == nil {
			return Int(n), nil
		}
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return Quantity{}, fmt.Errorf("parsing quantity %q: %w", s, err)
	}
	if integral && !math.IsInf(f, 0) && !math.IsNaN(f) {
		return Quantity{Value: f, Integral: true}, nil
	}
	return Float(f), nil
}

// MarshalJSON encodes q as a bare JSON number.
func (q Quantity) MarshalJSON() ([]byte, error) {
	if math.IsInf(q.Value, 0) || math.IsNaN(q.Value) {
		return nil, fmt.Errorf("cannot encode %v as JSON", q.Value)
	}
	return []byte(q.String()), nil
}

// UnmarshalJSON decodes a JSON number.
func (q *Quantity) UnmarshalJSON(data []byte) error {
	v, err := ParseQuantity(string(data))
	if err != nil {
		return err
	}
	*q = v
	return nil
}

// MarshalYAML encodes q as a YAML int or float scalar. Integral values
// outside the int64 range are written as explicitly tagged !!int digits.
func (q Quantity) MarshalYAML() (any, error) {
	if !q.Integral {
		return q.Value, nil
	}
	if q.fitsInt64() {
		return int64(math.Round(q.Value)), nil
	}
	if math.IsInf(q.Value, 0) || math.IsNaN(q.Value) {
		return nil, fmt.Errorf("cannot encode %v as YAML int", q.Value)
	}
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!int", Value: q.String()}, nil
}

// UnmarshalYAML decodes a YAML numeric scalar.
func (q *Quantity) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		return fmt.Errorf("line %d: quantity must be a scalar", node.Line)
	}
	v, err := ParseQuantity(node.Value)
	if err != nil {
		return fmt.Errorf("line %d: %w", node.Line, err)
	}
	*q = v
	return nil
}
