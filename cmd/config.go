package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/pterm/pterm"
)

const (
	minPlayers = 2
	maxPlayers = 6 // six hands of five plus three exchanges each fit in 52 cards
)

// config holds the settings read from the environment (and an optional .env file).
type config struct {
	Players  int
	Seed     uint64 // 0 shuffles with the cryptographic stream
	LogLevel pterm.LogLevel
	Exchange bool
}

func loadConfig(getenv func(string) string) (config, error) {
	cfg := config{
		Players:  minPlayers,
		LogLevel: pterm.LogLevelInfo,
		Exchange: true,
	}
	if v := strings.TrimSpace(getenv("GAMES_PLAYERS")); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return config{}, fmt.Errorf("GAMES_PLAYERS: %w", err)
		}
		if n < minPlayers || n > maxPlayers {
			return config{}, fmt.Errorf("GAMES_PLAYERS must be between %d and %d, got %d", minPlayers, maxPlayers, n)
		}
		cfg.Players = n
	}
	if v := strings.TrimSpace(getenv("GAMES_SEED")); v != "" {
		seed, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			return config{}, fmt.Errorf("GAMES_SEED: %w", err)
		}
		cfg.Seed = seed
	}
	if v := strings.TrimSpace(getenv("GAMES_LOG_LEVEL")); v != "" {
		level, err := parseLogLevel(v)
		if err != nil {
			return config{}, err
		}
		cfg.LogLevel = level
	}
	if v := strings.TrimSpace(getenv("GAMES_EXCHANGE")); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return config{}, fmt.Errorf("GAMES_EXCHANGE: %w", err)
		}
		cfg.Exchange = b
	}
	return cfg, nil
}

func parseLogLevel(s string) (pterm.LogLevel, error) {
	switch strings.ToLower(s) {
	case "trace":
		return pterm.LogLevelTrace, nil
	case "debug":
		return pterm.LogLevelDebug, nil
	case "info":
		return pterm.LogLevelInfo, nil
	case "warn", "warning":
		return pterm.LogLevelWarn, nil
	case "error":
		return pterm.LogLevelError, nil
	}
	return 0, fmt.Errorf("GAMES_LOG_LEVEL: unknown level %q", s)
}
