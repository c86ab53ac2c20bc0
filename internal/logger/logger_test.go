//go:build !integration

package logger

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		level    string
		expected zerolog.Level
	}{
		{level: "debug", expected: zerolog.DebugLevel},
		{level: "info", expected: zerolog.InfoLevel},
		{level: "warn", expected: zerolog.WarnLevel},
		{level: "error", expected: zerolog.ErrorLevel},
		{level: "disabled", expected: zerolog.Disabled},
		{level: "", expected: zerolog.InfoLevel},
		{level: "invalid", expected: zerolog.InfoLevel},
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			assert.Equal(t, tt.expected, ParseLevel(tt.level))
		})
	}
}

func TestInit(t *testing.T) {
	defer zerolog.SetGlobalLevel(zerolog.InfoLevel)

	Init("warn", false)
	assert.Equal(t, zerolog.WarnLevel, zerolog.GlobalLevel())

	Init("debug", true)
	assert.Equal(t, zerolog.DebugLevel, zerolog.GlobalLevel())
}

func TestNew_JSONOutput(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf, false)

	l.Info().Str("necklace_id", "abc").Msg("Necklace built")

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "info", entry["level"])
	assert.Equal(t, "abc", entry["necklace_id"])
	assert.Equal(t, "Necklace built", entry["message"])
	assert.Contains(t, entry, "time")
}

func TestNew_PrettyOutput(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf, true)

	l.Info().Msg("hello")

	assert.Contains(t, buf.String(), "hello")
	assert.False(t, json.Valid(buf.Bytes()))
}

func TestWithContext(t *testing.T) {
	var buf bytes.Buffer
	original := log.Logger
	defer func() { log.Logger = original }()
	log.Logger = New(&buf, false)

	l := WithContext(map[string]interface{}{
		"key1": "value1",
		"key2": 123,
	})
	l.Info().Msg("with fields")

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "value1", entry["key1"])
	assert.Equal(t, float64(123), entry["key2"])
}
