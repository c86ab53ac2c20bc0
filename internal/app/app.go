// Package app provides application initialization and dependency injection.
package app

import (
	"io"

	"github.com/guttosm/pearl-necklace/config"
	"github.com/guttosm/pearl-necklace/internal/domain/model"
	"github.com/guttosm/pearl-necklace/internal/logger"
	"github.com/guttosm/pearl-necklace/internal/metrics"
	"github.com/guttosm/pearl-necklace/internal/report"
	"github.com/rs/zerolog/log"
)

// SearchTarget is the pearl the demonstration looks for.
var SearchTarget = model.NewPearl(15, model.White, model.Round, model.Freshwater)

// App holds the wired application components.
type App struct {
	cfg      config.Config
	services *ServiceComponents
}

// InitializeApp creates and wires all application dependencies.
func InitializeApp(cfg config.Config) *App {
	// Initialize logger first (needed by other components)
	InitializeLogger(cfg.Log)

	return &App{
		cfg:      cfg,
		services: InitializeServices(cfg.Necklace),
	}
}

// Run executes the demonstration and writes the report to w: it builds a
// necklace, prints shape counts, every pearl, the sorted pearls and the
// total cost, then searches for SearchTarget.
func (a *App) Run(w io.Writer) error {
	necklaces := a.services.Necklaces
	p := report.NewPrinter(w, a.cfg.Report.Locale)

	p.Generating()
	n := necklaces.Build()
	l := logger.WithContext(map[string]interface{}{
		"necklace_id": n.ID().String(),
		"seed":        a.cfg.Necklace.Seed,
	})
	l.Info().Int("pearls", n.Len()).Msg("Generated necklace")

	p.ShapeCount(n.CountByShape())
	p.Details(n.Pearls())
	p.Sorted(n.Sorted())
	p.TotalCost(necklaces.Value(n))

	idx, found, ok := necklaces.Search(n, SearchTarget)
	p.SearchResult(SearchTarget, idx, found, ok)

	l.Info().Bool("found", ok).Int("index", idx).Msg("Search finished")

	if a.cfg.Log.MetricsSummary {
		logMetricsSummary()
	}

	return p.Err()
}

func logMetricsSummary() {
	summary, err := metrics.Summary()
	if err != nil {
		log.Warn().Err(err).Msg("Failed to gather metrics")
		return
	}
	event := log.Info()
	for name, value := range summary {
		event = event.Float64(name, value)
	}
	event.Msg("Metrics summary")
}
