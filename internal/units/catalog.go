// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package units holds the catalog of canonical distance units: their
// millimeter multipliers and the surface aliases that name them in each
// display style. The default catalog is built once from units.yaml when
// the package is initialized and is read-only afterwards.
package units

import (
	_ "embed"
	"errors"
	"fmt"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/chronic-distance/pkg/types"
)

// ErrUnknownUnit is returned when a name is not one of the canonical units.
var ErrUnknownUnit = errors.New("unknown unit")

// Style names one of the alias groups in the catalog.
type Style string

const (
	StyleShort Style = "short"
	StyleLong  Style = "long"
	StyleOther Style = "other"
)

// Styles lists the alias groups in merge order.
var Styles = []Style{StyleShort, StyleLong, StyleOther}

func (s Style) valid() bool {
	switch s {
	case StyleShort, StyleLong, StyleOther:
		return true
	}
	return false
}

// Unit is a canonical distance unit.
type Unit struct {
	// Name is the canonical name, e.g. "kilometers".
	Name string `json:"name" yaml:"name"`

	// Multiplier converts one unit into millimeters.
	Multiplier types.Quantity `json:"multiplier" yaml:"multiplier"`

	// Plural overrides the "s" suffix when the long alias is pluralized.
	Plural string `json:"plural,omitempty" yaml:"plural,omitempty"`

	// Aliases lists the surface tokens for this unit per style.
	Aliases map[Style][]string `json:"aliases" yaml:"aliases"`
}

// Pluralize returns the plural of alias: the irregular form when the unit
// has one, otherwise alias with an "s" appended.
func (u Unit) Pluralize(alias string) string {
	if u.Plural != "" {
		return u.Plural
	}
	return alias + "s"
}

type catalogFile struct {
	Units []Unit `yaml:"units"`
}

// Catalog is an immutable unit table with per-style alias lookups.
type Catalog struct {
	units     []Unit
	byName    map[string]int
	canonical map[Style]map[string]string // alias -> canonical name
	display   map[Style]map[string]string // canonical name -> alias
	recognize map[string]string           // merged alias -> canonical name
}

//go:embed units.yaml
var catalogYAML []byte

var defaultCatalog = MustLoad(catalogYAML)

// Default returns the built-in catalog.
func Default() *Catalog {
	return defaultCatalog
}

// MustLoad is like Load but panics on error.
func MustLoad(data []byte) *Catalog {
	c, err := Load(data)
	if err != nil {
		panic(fmt.Sprintf("units: %v", err))
	}
	return c
}

// Load parses a YAML catalog and checks its invariants: unit names are
// unique, multipliers are positive, no alias maps to two units (within a
// style or across styles), and every canonical name is recognized as itself.
func Load(data []byte) (*Catalog, error) {
	var f catalogFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parsing unit catalog: %w", err)
	}
	if len(f.Units) == 0 {
		return nil, fmt.Errorf("unit catalog is empty")
	}

	c := &Catalog{
		units:     f.Units,
		byName:    make(map[string]int, len(f.Units)),
		canonical: make(map[Style]map[string]string, len(Styles)),
		display:   make(map[Style]map[string]string, len(Styles)),
		recognize: make(map[string]string),
	}
	for _, s := range Styles {
		c.canonical[s] = make(map[string]string)
		c.display[s] = make(map[string]string)
	}

	for i, u := range f.Units {
		if u.Name == "" {
			return nil, fmt.Errorf("unit %d has no name", i)
		}
		if _, dup := c.byName[u.Name]; dup {
			return nil, fmt.Errorf("unit %q defined twice", u.Name)
		}
		if u.Multiplier.Value <= 0 {
			return nil, fmt.Errorf("unit %q: multiplier must be positive", u.Name)
		}
		c.byName[u.Name] = i

		for style, aliases := range u.Aliases {
			if !style.valid() {
				return nil, fmt.Errorf("unit %q: unknown alias style %q", u.Name, style)
			}
			for _, alias := range aliases {
				if prev, ok := c.canonical[style][alias]; ok && prev != u.Name {
					return nil, fmt.Errorf("%s alias %q maps to both %q and %q", style, alias, prev, u.Name)
				}
				c.canonical[style][alias] = u.Name
				if _, ok := c.display[style][u.Name]; !ok {
					c.display[style][u.Name] = alias
				}
			}
		}
	}

	for _, s := range Styles {
		for alias, name := range c.canonical[s] {
			if prev, ok := c.recognize[alias]; ok && prev != name {
				return nil, fmt.Errorf("alias %q maps to both %q and %q", alias, prev, name)
			}
			c.recognize[alias] = name
		}
	}

	for _, u := range c.units {
		if got := c.recognize[u.Name]; got != u.Name {
			return nil, fmt.Errorf("canonical name %q is not recognized as itself", u.Name)
		}
	}

	return c, nil
}

// Units returns the units in catalog order.
func (c *Catalog) Units() []Unit {
	out := make([]Unit, len(c.units))
	copy(out, c.units)
	return out
}

// Lookup returns the unit with the given canonical name.
func (c *Catalog) Lookup(name string) (Unit, bool) {
	i, ok := c.byName[name]
	if !ok {
		return Unit{}, false
	}
	return c.units[i], true
}

// Multiplier returns the millimeter multiplier for a canonical unit name.
func (c *Catalog) Multiplier(name string) (types.Quantity, error) {
	u, ok := c.Lookup(name)
	if !ok {
		return types.Quantity{}, fmt.Errorf("%w %q", ErrUnknownUnit, name)
	}
	return u.Multiplier, nil
}

// Alias returns the display alias of a canonical unit in the given style.
func (c *Catalog) Alias(style Style, name string) (string, bool) {
	alias, ok := c.display[style][name]
	return alias, ok
}

// Canonical returns the canonical name an alias maps to in the given style.
func (c *Catalog) Canonical(style Style, alias string) (string, bool) {
	name, ok := c.canonical[style][alias]
	return name, ok
}

// Recognize maps a token to a canonical name using every style's aliases.
// Matching is exact and case-sensitive.
func (c *Catalog) Recognize(token string) (string, bool) {
	name, ok := c.recognize[token]
	return name, ok
}
