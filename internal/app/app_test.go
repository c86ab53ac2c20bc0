//go:build !integration

package app

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/guttosm/pearl-necklace/config"
	"github.com/guttosm/pearl-necklace/internal/mocks"
	"github.com/guttosm/pearl-necklace/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, errors.New("closed pipe")
}

func quietConfig() config.Config {
	return config.Config{
		Necklace: config.NecklaceConfig{Size: 35, Seed: 2024},
		Log:      config.LogConfig{Level: "disabled"},
		Report:   config.ReportConfig{Locale: "en"},
	}
}

func TestInitializeApp(t *testing.T) {
	app := InitializeApp(quietConfig())

	require.NotNil(t, app)
	require.NotNil(t, app.services)
	assert.NotNil(t, app.services.Generator)
	assert.NotNil(t, app.services.Necklaces)
}

func TestApp_Run(t *testing.T) {
	var buf bytes.Buffer
	app := InitializeApp(quietConfig())

	require.NoError(t, app.Run(&buf))

	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	require.Len(t, lines, 8+2*35)
	assert.Equal(t, "Generating a test necklace!", lines[0])
	assert.Equal(t, "Shape count:", lines[1])
	assert.Regexp(t, `^This necklace has \d+ teardrops and \d+ round pearls\.$`, lines[2])
	assert.Equal(t, "More details:", lines[3])
	assert.Equal(t, "Sorted pearls:", lines[4+35])
	assert.Regexp(t, `^Total cost of the necklace is \d+kr\.$`, lines[5+2*35])
	assert.Equal(t,
		"Trying to find a match for White Round pearl sourced from Freshwater is 15mm in diameter and costs 750kr.",
		lines[6+2*35])
	assert.Regexp(t, `^(Match found at #\d+: White Round pearl .*\.|No matching pearl found\.)$`, lines[7+2*35])
}

func TestApp_RunIsReproducibleWithSeed(t *testing.T) {
	var first, second bytes.Buffer

	require.NoError(t, InitializeApp(quietConfig()).Run(&first))
	require.NoError(t, InitializeApp(quietConfig()).Run(&second))

	assert.Equal(t, first.String(), second.String())
}

func TestApp_RunGolden(t *testing.T) {
	src := new(mocks.MockRandomSource)
	src.On("IntN", mock.Anything).Return(0)

	app := &App{
		cfg: quietConfig(),
		services: &ServiceComponents{
			Necklaces: service.NewNecklaceService(service.NewPearlGenerator(src), service.WithSize(2)),
		},
	}

	var buf bytes.Buffer
	require.NoError(t, app.Run(&buf))

	pearl := "Black Round pearl sourced from Freshwater is 5mm in diameter and costs 250kr"
	expected := strings.Join([]string{
		"Generating a test necklace!",
		"Shape count:",
		"This necklace has 0 teardrops and 2 round pearls.",
		"More details:",
		pearl,
		pearl,
		"Sorted pearls:",
		pearl,
		pearl,
		"Total cost of the necklace is 500kr.",
		"Trying to find a match for White Round pearl sourced from Freshwater is 15mm in diameter and costs 750kr.",
		"No matching pearl found.",
		"",
	}, "\n")
	assert.Equal(t, expected, buf.String())
}

func TestApp_RunWithMetricsSummary(t *testing.T) {
	cfg := quietConfig()
	cfg.Log.MetricsSummary = true

	assert.NoError(t, InitializeApp(cfg).Run(&bytes.Buffer{}))
}

func TestApp_RunReturnsWriteError(t *testing.T) {
	err := InitializeApp(quietConfig()).Run(failingWriter{})

	assert.EqualError(t, err, "closed pipe")
}
