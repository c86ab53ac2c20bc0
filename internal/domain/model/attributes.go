package model

import "fmt"

// Color is the pearl color. Declaration order defines sort rank.
type Color int

const (
	Black Color = iota
	White
	Pink
)

// Shape is the pearl shape. Declaration order defines sort rank.
type Shape int

const (
	Round Shape = iota
	Teardrop
)

// Source is the provenance of a pearl and determines its per-mm rate.
type Source int

const (
	Freshwater Source = iota
	Saltwater
)

var (
	colorNames  = []string{"Black", "White", "Pink"}
	shapeNames  = []string{"Round", "Teardrop"}
	sourceNames = []string{"Freshwater", "Saltwater"}
)

// Colors returns every color in declaration order.
func Colors() []Color { return []Color{Black, White, Pink} }

// Shapes returns every shape in declaration order.
func Shapes() []Shape { return []Shape{Round, Teardrop} }

// Sources returns every source in declaration order.
func Sources() []Source { return []Source{Freshwater, Saltwater} }

// Rank returns the declaration rank used for ordering.
func (c Color) Rank() int { return int(c) }

// IsValid reports whether c is a declared color.
func (c Color) IsValid() bool { return c >= Black && c <= Pink }

func (c Color) String() string {
	if !c.IsValid() {
		return fmt.Sprintf("Color(%d)", int(c))
	}
	return colorNames[c]
}

// Rank returns the declaration rank used for ordering.
func (s Shape) Rank() int { return int(s) }

// IsValid reports whether s is a declared shape.
func (s Shape) IsValid() bool { return s >= Round && s <= Teardrop }

func (s Shape) String() string {
	if !s.IsValid() {
		return fmt.Sprintf("Shape(%d)", int(s))
	}
	return shapeNames[s]
}

// Rank returns the declaration rank used for ordering.
func (s Source) Rank() int { return int(s) }

// IsValid reports whether s is a declared source.
func (s Source) IsValid() bool { return s >= Freshwater && s <= Saltwater }

func (s Source) String() string {
	if !s.IsValid() {
		return fmt.Sprintf("Source(%d)", int(s))
	}
	return sourceNames[s]
}

// ColorAt returns the color with declaration index i.
func ColorAt(i int) (Color, error) {
	c := Color(i)
	if !c.IsValid() {
		return 0, fmt.Errorf("%w: color index %d", ErrInvalidEnumIndex, i)
	}
	return c, nil
}

// ShapeAt returns the shape with declaration index i.
func ShapeAt(i int) (Shape, error) {
	s := Shape(i)
	if !s.IsValid() {
		return 0, fmt.Errorf("%w: shape index %d", ErrInvalidEnumIndex, i)
	}
	return s, nil
}

// SourceAt returns the source with declaration index i.
func SourceAt(i int) (Source, error) {
	s := Source(i)
	if !s.IsValid() {
		return 0, fmt.Errorf("%w: source index %d", ErrInvalidEnumIndex, i)
	}
	return s, nil
}
