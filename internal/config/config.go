// internal/config/config.go
//
// Game configuration for a codebreaker session.
// Responsibilities:
//   - Hold the tunable dimensions of a round: code length, digit range, turn budget.
//   - Load values from the environment with sane defaults.
//   - Validate the combination before a session is created.
//
// Environment variables:
//   CODEBREAKER_LENGTH=4
//   CODEBREAKER_MIN_DIGIT=1
//   CODEBREAKER_MAX_DIGIT=6
//   CODEBREAKER_TURNS=10
//
// Constraints:
//   • Digits must stay single-character (MaxDigit ≤ 9), so one input rune
//     always maps to one code symbol.

package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
)

// Defaults for a standard round.
const (
	DefaultCodeLength = 4
	DefaultMinDigit   = 1
	DefaultMaxDigit   = 6
	DefaultTurns      = 10
)

// ErrInvalidConfiguration is the kind for any rejected configuration.
// Fatal: a session is never created from an invalid Config.
var ErrInvalidConfiguration = errors.New("invalid configuration")

// Config holds the dimensions of one game session.
type Config struct {
	CodeLength int // Number of digits in the secret code.
	MinDigit   int // Lowest digit value (inclusive).
	MaxDigit   int // Highest digit value (inclusive).
	Turns      int // Guesses allowed before the round is lost.
}

// Default returns the standard 4-digit, 1..6, 10-turn configuration.
func Default() Config {
	return Config{
		CodeLength: DefaultCodeLength,
		MinDigit:   DefaultMinDigit,
		MaxDigit:   DefaultMaxDigit,
		Turns:      DefaultTurns,
	}
}

// FromEnv builds a Config from environment variables, falling back to the
// defaults for anything unset or unparsable.
func FromEnv() Config {
	return Config{
		CodeLength: getEnvInt("CODEBREAKER_LENGTH", DefaultCodeLength),
		MinDigit:   getEnvInt("CODEBREAKER_MIN_DIGIT", DefaultMinDigit),
		MaxDigit:   getEnvInt("CODEBREAKER_MAX_DIGIT", DefaultMaxDigit),
		Turns:      getEnvInt("CODEBREAKER_TURNS", DefaultTurns),
	}
}

// Validate checks the combination of dimensions.
// Returns an error wrapping ErrInvalidConfiguration on the first violation.
func (c Config) Validate() error {
	switch {
	case c.CodeLength <= 0:
		return fmt.Errorf("%w: code length must be positive, got %d", ErrInvalidConfiguration, c.CodeLength)
	case c.MinDigit < 0:
		return fmt.Errorf("%w: min digit must be non-negative, got %d", ErrInvalidConfiguration, c.MinDigit)
	case c.MaxDigit > 9:
		return fmt.Errorf("%w: max digit must be a single digit, got %d", ErrInvalidConfiguration, c.MaxDigit)
	case c.MinDigit > c.MaxDigit:
		return fmt.Errorf("%w: digit range [%d,%d] is empty", ErrInvalidConfiguration, c.MinDigit, c.MaxDigit)
	case c.Turns <= 0:
		return fmt.Errorf("%w: turn budget must be positive, got %d", ErrInvalidConfiguration, c.Turns)
	}
	return nil
}

// getEnvInt reads an integer env var, returning def when unset or malformed.
func getEnvInt(k string, def int) int {
	v := os.Getenv(k)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}
