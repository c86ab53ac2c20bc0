// Package main is the entry point for the pearl necklace demonstration.
//
// It generates a necklace of random pearls and prints its shape counts,
// every pearl, the pearls sorted by diameter, color and shape, the total
// cost, and the result of searching for a fixed pearl.
package main

import (
	"os"

	"github.com/guttosm/pearl-necklace/config"
	"github.com/guttosm/pearl-necklace/internal/app"
	"github.com/rs/zerolog/log"
)

func main() {
	cfg := config.Load()

	a := app.InitializeApp(cfg)

	if err := a.Run(os.Stdout); err != nil {
		log.Fatal().Err(err).Msg("Report error")
	}
}
