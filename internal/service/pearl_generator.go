package service

import (
	"math/rand/v2"

	"github.com/guttosm/pearl-necklace/internal/domain/model"
	"github.com/guttosm/pearl-necklace/internal/metrics"
)

// diameterSpan is the number of distinct generated diameters. Generated
// pearls fall in [MinDiameter, MinDiameter+diameterSpan), so MaxDiameter
// itself is never drawn even though a Pearl may hold it.
const diameterSpan = model.MaxDiameter - model.MinDiameter

// RandomSource yields uniformly distributed integers in [0, n).
// *rand.Rand from math/rand/v2 satisfies it.
type RandomSource interface {
	IntN(n int) int
}

// NewSeededSource returns a reproducible PCG-backed source.
func NewSeededSource(seed uint64) RandomSource {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// NewRandomSource returns a source seeded from runtime entropy.
func NewRandomSource() RandomSource {
	return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
}

// PearlGenerator produces randomized pearls from an injected source.
type PearlGenerator struct {
	src RandomSource
}

// NewPearlGenerator creates a generator drawing from src.
func NewPearlGenerator(src RandomSource) *PearlGenerator {
	return &PearlGenerator{src: src}
}

// Generate draws a shape, color and source uniformly, in that order, then a
// diameter in [5, 25). It panics if the source returns an index outside a
// closed enumeration.
func (g *PearlGenerator) Generate() model.Pearl {
	shape := must(model.ShapeAt(g.src.IntN(len(model.Shapes()))))
	color := must(model.ColorAt(g.src.IntN(len(model.Colors()))))
	source := must(model.SourceAt(g.src.IntN(len(model.Sources()))))
	diameter := model.MinDiameter + g.src.IntN(diameterSpan)

	metrics.RecordPearlGenerated(shape.String(), source.String())

	return model.NewPearl(diameter, color, shape, source)
}

func must[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}
	return v
}
