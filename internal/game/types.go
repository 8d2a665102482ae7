// internal/game/types.go
//
// Core type definitions for the codebreaker game engine.
// Defines:
//   - Hint: the per-guess feedback pair (exact/partial match counts).
//   - Session: state for a single in-progress or finished round.

package game

import (
	"codebreaker/internal/code"
	"codebreaker/internal/config"
)

// Hint is the feedback for one scored guess.
//
// Invariant: Exact + Partial never exceeds the code length. A winning guess
// yields Exact == length and Partial == 0.
type Hint struct {
	Exact   int // Digits correct in both value and position.
	Partial int // Digits present in the secret at a different, unconsumed position.
}

// Won reports whether the hint represents a full match of an n-digit code.
func (h Hint) Won(n int) bool {
	return h.Exact == n
}

// Session holds the state of a single round.
type Session struct {
	Config    config.Config // Dimensions the round was created with.
	Secret    code.Code     // The hidden code. Immutable for the round.
	Turns     int         // Total guesses allowed.
	TurnsLeft int         // Guesses remaining before the round is lost.
	History   []code.Code // Valid guesses made so far.
	Finished  bool        // True once the round is over (won or lost).
	Won       bool        // True if the round finished with a win.
}
