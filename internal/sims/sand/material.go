// Package sand implements the falling-sand automaton: a grid of materials that
// fall and spread according to a density order.
package sand

import (
	"errors"
	"fmt"
	"strings"
)

// Material is the substance occupying a grid cell.
type Material uint8

const (
	Air Material = iota
	Sand
	Water

	materialCount
)

// ErrUnknownMaterial is returned when a material name cannot be parsed.
var ErrUnknownMaterial = errors.New("sand: unknown material")

var materialNames = [materialCount]string{
	Air:   "air",
	Sand:  "sand",
	Water: "water",
}

// Materials lists every material in declaration order.
func Materials() []Material {
	return []Material{Air, Sand, Water}
}

// Valid reports whether m is one of the declared materials.
func (m Material) Valid() bool { return m < materialCount }

func (m Material) String() string {
	if !m.Valid() {
		return fmt.Sprintf("material(%d)", uint8(m))
	}
	return materialNames[m]
}

// ParseMaterial resolves a case-insensitive material name.
func ParseMaterial(name string) (Material, error) {
	needle := strings.ToLower(strings.TrimSpace(name))
	for i, n := range materialNames {
		if n == needle {
			return Material(i), nil
		}
	}
	return Air, fmt.Errorf("%w %q", ErrUnknownMaterial, name)
}

// Density returns the rank used to decide displacement: Air < Water < Sand.
func (m Material) Density() int {
	switch m {
	case Water:
		return 1
	case Sand:
		return 2
	default:
		return 0
	}
}

// IsDisplaceableBy reports whether other may sink into a cell holding m.
func (m Material) IsDisplaceableBy(other Material) bool {
	return other.Density() > m.Density()
}
