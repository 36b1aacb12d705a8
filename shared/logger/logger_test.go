package logger_test

import (
	"bytes"
	"errors"
	"reserva/config"
	"reserva/shared/logger"
	"testing"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func TestInitLogger(t *testing.T) {
	originalLogger := log.Logger

	logger.InitLogger()

	if zerolog.TimeFieldFormat != zerolog.TimeFormatUnix {
		t.Errorf("expected TimeFieldFormat to be %s, got %s", zerolog.TimeFormatUnix, zerolog.TimeFieldFormat)
	}

	if zerolog.GlobalLevel() != zerolog.TraceLevel {
		t.Errorf("expected global level to be %s, got %s", zerolog.TraceLevel, zerolog.GlobalLevel())
	}

	log.Logger = originalLogger
}

func TestErrorWithStack(t *testing.T) {
	originalLogger := log.Logger
	var buf bytes.Buffer
	log.Logger = log.Output(&buf)

	testErr := errors.New("test error")
	logger.ErrorWithStack(testErr)

	output := buf.String()
	if output == "" {
		t.Error("expected error log output, got empty string")
	}

	log.Logger = originalLogger
}

func TestSetLogLevel(t *testing.T) {
	cfg := &config.Config{}
	cfg.Server.LogLevel = "warn"

	logger.SetLogLevel(cfg)

	if zerolog.GlobalLevel() != zerolog.WarnLevel {
		t.Errorf("expected global level to be %s, got %s", zerolog.WarnLevel, zerolog.GlobalLevel())
	}

	cfg.Server.LogLevel = "not-a-level"
	logger.SetLogLevel(cfg)

	if zerolog.GlobalLevel() != zerolog.TraceLevel {
		t.Errorf("expected fallback level to be %s, got %s", zerolog.TraceLevel, zerolog.GlobalLevel())
	}
}
