// Package model defines the core domain entities for the pearl necklace.
package model

import (
	"cmp"
	"fmt"
)

const (
	// MinDiameter is the smallest pearl diameter in millimeters.
	MinDiameter = 5
	// MaxDiameter is the largest pearl diameter in millimeters.
	MaxDiameter = 25

	// FreshwaterRate is the price in kr per millimeter for freshwater pearls.
	FreshwaterRate = 50
	// SaltwaterRate is the price in kr per millimeter for saltwater pearls.
	SaltwaterRate = 100
)

// Pearl is a single necklace unit. Its price is derived from the diameter
// and source and is never stored.
type Pearl struct {
	diameter int
	Color    Color
	Shape    Shape
	Source   Source
}

// NewPearl creates a Pearl, clamping the diameter to [MinDiameter, MaxDiameter].
func NewPearl(diameter int, color Color, shape Shape, source Source) Pearl {
	p := Pearl{Color: color, Shape: shape, Source: source}
	p.SetDiameter(diameter)
	return p
}

// Diameter returns the pearl diameter in millimeters.
func (p Pearl) Diameter() int {
	return p.diameter
}

// SetDiameter stores d clamped to [MinDiameter, MaxDiameter].
func (p *Pearl) SetDiameter(d int) {
	switch {
	case d < MinDiameter:
		p.diameter = MinDiameter
	case d > MaxDiameter:
		p.diameter = MaxDiameter
	default:
		p.diameter = d
	}
}

// Price returns the pearl price in kr (50 kr/mm freshwater, 100 kr/mm saltwater).
func (p Pearl) Price() int {
	if p.Source == Freshwater {
		return p.diameter * FreshwaterRate
	}
	return p.diameter * SaltwaterRate
}

// Equal reports whether all four attributes match exactly.
func (p Pearl) Equal(other Pearl) bool {
	return p.diameter == other.diameter &&
		p.Color == other.Color &&
		p.Shape == other.Shape &&
		p.Source == other.Source
}

// Compare orders pearls by diameter, then color rank, then shape rank.
func (p Pearl) Compare(other Pearl) int {
	if c := cmp.Compare(p.diameter, other.diameter); c != 0 {
		return c
	}
	if c := cmp.Compare(p.Color.Rank(), other.Color.Rank()); c != 0 {
		return c
	}
	return cmp.Compare(p.Shape.Rank(), other.Shape.Rank())
}

func (p Pearl) String() string {
	return fmt.Sprintf("%s %s pearl sourced from %s is %dmm in diameter and costs %dkr",
		p.Color, p.Shape, p.Source, p.diameter, p.Price())
}
