// Package app provides service initialization.
package app

import (
	"github.com/guttosm/pearl-necklace/config"
	"github.com/guttosm/pearl-necklace/internal/service"
)

// ServiceComponents holds service-related components.
type ServiceComponents struct {
	Generator *service.PearlGenerator
	Necklaces service.NecklaceBuilder
}

// InitializeServices initializes business logic services. A zero seed
// draws from runtime entropy.
func InitializeServices(cfg config.NecklaceConfig) *ServiceComponents {
	src := service.NewRandomSource()
	if cfg.Seed != 0 {
		src = service.NewSeededSource(cfg.Seed)
	}

	generator := service.NewPearlGenerator(src)

	var opts []service.Option
	if cfg.Size > 0 {
		opts = append(opts, service.WithSize(cfg.Size))
	}

	return &ServiceComponents{
		Generator: generator,
		Necklaces: service.NewNecklaceService(generator, opts...),
	}
}
