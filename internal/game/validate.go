// internal/game/validate.go
//
// Raw guess validation. Gates the scorer: every Code handed to Score has
// already passed through ParseGuess, which is what lets the scorer treat a
// length mismatch as a caller bug.
//
// Rules are checked in order and each rejection carries a distinct sentinel
// kind, so the driver can phrase its retry prompt per failure:
//   1. empty (or whitespace-only) input
//   2. wrong rune count
//   3. sign characters ('+'/'-') — checked before digit parsing, since a
//      signed string like "+123" would otherwise slip through as numeric
//   4. any other non-digit rune
//   5. a digit outside the configured range

package game

import (
	"errors"
	"fmt"
	"strings"

	"codebreaker/internal/code"
)

// Validation error kinds. All recoverable: the driver reprompts and the
// guess never reaches the scorer or the turn counter.
var (
	ErrEmptyInput       = errors.New("empty input")
	ErrWrongLength      = errors.New("wrong length")
	ErrInvalidCharacter = errors.New("invalid character")
	ErrNotNumeric       = errors.New("not numeric")
	ErrOutOfRange       = errors.New("digit out of range")
)

// ParseGuess turns one line of player input into a Code of the given length
// with every digit in [lo, hi]. The returned error wraps one of the sentinel
// kinds above.
func ParseGuess(raw string, length, lo, hi int) (code.Code, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, fmt.Errorf("%w: enter %d digits", ErrEmptyInput, length)
	}
	runes := []rune(raw)
	if len(runes) != length {
		return nil, fmt.Errorf("%w: got %d characters, want %d", ErrWrongLength, len(runes), length)
	}
	if strings.ContainsAny(raw, "+-") {
		return nil, fmt.Errorf("%w: signs are not allowed", ErrInvalidCharacter)
	}
	guess := make(code.Code, length)
	for i, r := range runes {
		if r < '0' || r > '9' {
			return nil, fmt.Errorf("%w: %q is not a digit", ErrNotNumeric, r)
		}
		d := int(r - '0')
		if d < lo || d > hi {
			return nil, fmt.Errorf("%w: %d is outside [%d,%d]", ErrOutOfRange, d, lo, hi)
		}
		guess[i] = d
	}
	return guess, nil
}
