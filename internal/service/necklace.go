// Package service implements pearl generation and necklace operations.
package service

import (
	"time"

	"github.com/guttosm/pearl-necklace/internal/domain/model"
	"github.com/guttosm/pearl-necklace/internal/metrics"
	"github.com/rs/zerolog/log"
)

// NecklaceBuilder defines the interface for necklace operations.
type NecklaceBuilder interface {
	Build() *model.Necklace
	BuildWithSize(size int) *model.Necklace
	Value(n *model.Necklace) int
	Search(n *model.Necklace, target model.Pearl) (int, model.Pearl, bool)
}

// Option configures a NecklaceService.
type Option func(*NecklaceService)

// NecklaceService builds necklaces from a PearlGenerator and records
// metrics for valuation and search.
type NecklaceService struct {
	generator *PearlGenerator
	size      int
}

// NewNecklaceService creates a new NecklaceService with the given options.
func NewNecklaceService(generator *PearlGenerator, opts ...Option) *NecklaceService {
	s := &NecklaceService{
		generator: generator,
		size:      model.DefaultNecklaceSize,
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// WithSize sets the number of pearls per built necklace. Non-positive sizes are ignored.
func WithSize(size int) Option {
	return func(s *NecklaceService) {
		if size > 0 {
			s.size = size
		}
	}
}

// Size returns the configured necklace size.
func (s *NecklaceService) Size() int {
	return s.size
}

// Build creates a necklace with the configured number of random pearls.
func (s *NecklaceService) Build() *model.Necklace {
	return s.BuildWithSize(s.size)
}

// BuildWithSize creates a necklace with size random pearls.
// A non-positive size yields an empty necklace.
func (s *NecklaceService) BuildWithSize(size int) *model.Necklace {
	start := time.Now()

	n := model.NewNecklace()
	for i := 0; i < size; i++ {
		n.Add(s.generator.Generate())
	}

	metrics.RecordNecklaceBuilt(time.Since(start))
	log.Debug().
		Str("necklace_id", n.ID().String()).
		Int("pearls", n.Len()).
		Msg("Necklace built")

	return n
}

// Value returns the necklace's total price and records it.
func (s *NecklaceService) Value(n *model.Necklace) int {
	total := n.TotalPrice()
	metrics.RecordNecklaceValue(total)
	return total
}

// Search looks up the first pearl matching target exactly.
func (s *NecklaceService) Search(n *model.Necklace, target model.Pearl) (int, model.Pearl, bool) {
	idx, p, ok := n.Find(target)
	metrics.RecordSearch(ok)
	log.Debug().
		Str("necklace_id", n.ID().String()).
		Str("target", target.String()).
		Bool("found", ok).
		Int("index", idx).
		Msg("Pearl search")
	return idx, p, ok
}
