package logger

import (
	"bytes"
	"drivent/config"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func restore(t *testing.T) {
	t.Helper()

	logger := log.Logger
	level := zerolog.GlobalLevel()

	t.Cleanup(func() {
		log.Logger = logger
		zerolog.SetGlobalLevel(level)
	})
}

func TestInitLogger(t *testing.T) {
	restore(t)

	InitLogger()

	assert.Equal(t, zerolog.TimeFormatUnix, zerolog.TimeFieldFormat)
	assert.Equal(t, zerolog.TraceLevel, zerolog.GlobalLevel())
}

func TestConfigure_Level(t *testing.T) {
	tests := []struct {
		name     string
		level    string
		expected zerolog.Level
	}{
		{name: "debug", level: "debug", expected: zerolog.DebugLevel},
		{name: "warn", level: "warn", expected: zerolog.WarnLevel},
		{name: "disabled", level: "disabled", expected: zerolog.Disabled},
		{name: "invalid falls back to info", level: "loud", expected: zerolog.InfoLevel},
		{name: "empty falls back to info", level: "", expected: zerolog.InfoLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			restore(t)

			cfg := &config.Config{}
			cfg.Server.LogLevel = tt.level

			configure(cfg, &bytes.Buffer{})

			assert.Equal(t, tt.expected, zerolog.GlobalLevel())
		})
	}
}

func TestConfigure_ProductionWritesJSON(t *testing.T) {
	restore(t)

	var buf bytes.Buffer

	cfg := &config.Config{}
	cfg.Server.Env = "production"
	cfg.Server.LogLevel = "info"
	cfg.App.Name = "drivent"

	configure(cfg, &buf)
	log.Info().Int64("booking_id", 9).Msg("booking created")

	assert.Contains(t, buf.String(), `"app":"drivent"`)
	assert.Contains(t, buf.String(), `"booking_id":9`)
	assert.Contains(t, buf.String(), `"message":"booking created"`)
}

func TestConfigure_DevelopmentKeepsLogger(t *testing.T) {
	restore(t)

	var console bytes.Buffer
	log.Logger = log.Output(&console)

	cfg := &config.Config{}
	cfg.Server.Env = "development"
	cfg.Server.LogLevel = "info"

	var unused bytes.Buffer
	configure(cfg, &unused)
	log.Info().Msg("still here")

	assert.Empty(t, unused.String())
	assert.Contains(t, console.String(), "still here")
}

func TestErrorWithStack(t *testing.T) {
	restore(t)

	var buf bytes.Buffer
	log.Logger = zerolog.New(&buf)
	zerolog.SetGlobalLevel(zerolog.TraceLevel)

	ErrorWithStack(errors.New("room lock timed out"))

	require.NotEmpty(t, buf.String())
	assert.Contains(t, buf.String(), "room lock timed out")
	assert.Contains(t, buf.String(), "logger.ErrorWithStack")
}
