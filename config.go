// config.go
// This file loads the engine's ambient runtime configuration: which
// dictionary file to read, which board type to use, the AI's time
// budget, and the RNG seed, per SPEC_FULL.md's AMBIENT STACK section.
//
// The teacher carries no configuration layer of its own (locale/board
// are selected via constructor functions and the flag package in
// main.go). Grounded instead on the pack's convention of loading a
// .env file with github.com/joho/godotenv, layered underneath real
// process environment variables so a deployment's environment always
// wins over a checked-in default file.

package engine

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds the values a Game is constructed from.
type Config struct {
	DictionaryPath string
	BoardType      string
	AITimeBudget   time.Duration
	Seed           int64
}

// DefaultConfig mirrors the teacher's Icelandic-game defaults,
// generalized to this engine's standard English tile set and board.
var DefaultConfig = Config{
	DictionaryPath: "dictionary.txt",
	BoardType:      "standard",
	AITimeBudget:   2 * time.Second,
	Seed:           1,
}

// LoadConfig reads a .env file (if present) into the process
// environment, then builds a Config from environment variables,
// falling back to DefaultConfig for anything unset. envPath may be
// empty, in which case godotenv's default ".env" lookup is used.
func LoadConfig(envPath string) (Config, error) {
	if envPath != "" {
		if err := godotenv.Load(envPath); err != nil && !os.IsNotExist(err) {
			return Config{}, err
		}
	} else if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return Config{}, err
	}

	cfg := DefaultConfig
	if v := os.Getenv("SCRABBLE_DICTIONARY_PATH"); v != "" {
		cfg.DictionaryPath = v
	}
	if v := os.Getenv("SCRABBLE_BOARD_TYPE"); v != "" {
		cfg.BoardType = v
	}
	if v := os.Getenv("SCRABBLE_AI_TIME_BUDGET_MS"); v != "" {
		if ms, err := strconv.Atoi(v); err == nil {
			cfg.AITimeBudget = time.Duration(ms) * time.Millisecond
		}
	}
	if v := os.Getenv("SCRABBLE_SEED"); v != "" {
		if seed, err := strconv.ParseInt(v, 10, 64); err == nil {
			cfg.Seed = seed
		}
	}
	return cfg, nil
}
