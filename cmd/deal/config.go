package main

import (
	"flag"
	"fmt"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/rs/zerolog"
)

const (
	formatText     = "text"
	formatJSON     = "json"
	formatProtoHex = "proto-hex"
)

type Config struct {
	// RNG seed (0 => crypto seed)
	Seed int64 `env:"PLAYINGCARDS_SEED" envDefault:"0"`

	Hands    int `env:"PLAYINGCARDS_HANDS" envDefault:"4"`
	HandSize int `env:"PLAYINGCARDS_HAND_SIZE" envDefault:"5"`

	// Jokers adds a low and a high joker before shuffling.
	Jokers bool `env:"PLAYINGCARDS_JOKERS" envDefault:"false"`
	// Remove lists cards taken out before shuffling, e.g. "2c,2d,Q♡".
	Remove string `env:"PLAYINGCARDS_REMOVE"`

	Format   string `env:"PLAYINGCARDS_FORMAT" envDefault:"text"`
	LogLevel string `env:"PLAYINGCARDS_LOG_LEVEL" envDefault:"info"`
}

// ParseConfig loads environment defaults and then applies flags from args.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	fs.Int64Var(&cfg.Seed, "seed", cfg.Seed, "Shuffle seed (0 picks a random seed)")
	fs.IntVar(&cfg.Hands, "hands", cfg.Hands, "Number of hands to deal")
	fs.IntVar(&cfg.HandSize, "size", cfg.HandSize, "Cards per hand")
	fs.BoolVar(&cfg.Jokers, "jokers", cfg.Jokers, "Add a low and a high joker")
	fs.StringVar(&cfg.Remove, "remove", cfg.Remove, "Comma separated cards to remove before shuffling")
	fs.StringVar(&cfg.Format, "format", cfg.Format, "Output format: text, json or proto-hex")
	fs.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "Log level")
	if args == nil {
		args = []string{}
	}
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}
	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) validate() error {
	if c.Hands <= 0 {
		return fmt.Errorf("hands must be > 0")
	}
	if c.HandSize <= 0 {
		return fmt.Errorf("hand size must be > 0")
	}
	switch c.Format {
	case formatText, formatJSON, formatProtoHex:
	default:
		return fmt.Errorf("unknown format %q", c.Format)
	}
	if _, err := zerolog.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("invalid log level %q: %w", c.LogLevel, err)
	}
	return nil
}

// removeList splits Remove on commas and whitespace.
func (c Config) removeList() []string {
	return strings.FieldsFunc(c.Remove, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t'
	})
}
