package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
)

func main() {
	_ = godotenv.Load()

	cfg, err := ParseConfig(flag.CommandLine, os.Args[1:])
	if err != nil {
		exitf("parse config: %v", err)
	}
	logger := newLogger(cfg.LogLevel)

	res, err := deal(cfg, logger)
	if err != nil {
		logger.Error().Err(err).Msg("deal failed")
		os.Exit(1)
	}
	if err := writeResult(os.Stdout, cfg.Format, res); err != nil {
		exitf("write output: %v", err)
	}
}

func newLogger(level string) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		lvl = zerolog.InfoLevel
	}
	w := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}
	return zerolog.New(w).Level(lvl).With().Timestamp().Str("cmd", "deal").Logger()
}

func exitf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}
