// internal/game/score.go
//
// Guess scoring — the algorithmic core of the game.
//
// Score implements the two-pass multiset-correct comparison:
//
// Pass 1:
//   - Count exact positional matches and consume those positions on both
//     the guess and the secret side.
//
// Pass 2:
//   - For each unconsumed guess position, scan the unconsumed secret
//     positions in ascending order; the first value match consumes both
//     positions and counts as one partial.
//
// Consumption is tracked independently per side. Consuming only the guess
// side would let a duplicated guess digit be credited repeatedly against a
// single secret occurrence (secret 1234 vs guess 1111 must score one exact
// and zero partials).

package game

import (
	"fmt"

	"codebreaker/internal/code"
)

// Score compares a guess against the secret and returns the feedback hint.
// Pure function of its inputs.
//
// A full match short-circuits after the exact pass and returns the canonical
// win hint (Exact == len, Partial == 0).
//
// The validator guarantees equal lengths upstream; a mismatch here is a
// caller bug and panics.
func Score(secret, guess code.Code) Hint {
	n := len(secret)
	if len(guess) != n {
		panic(fmt.Sprintf("game: secret/guess length mismatch: %d vs %d", n, len(guess)))
	}

	usedSecret := make([]bool, n)
	usedGuess := make([]bool, n)
	var h Hint

	// First pass: exact positional matches consume both sides.
	for i := 0; i < n; i++ {
		if guess[i] == secret[i] {
			h.Exact++
			usedSecret[i], usedGuess[i] = true, true
		}
	}

	// Full match: never reaches the partial pass.
	if h.Exact == n {
		return h
	}

	// Second pass: value matches at different positions, lowest secret
	// position first.
	for i := 0; i < n; i++ {
		if usedGuess[i] {
			continue
		}
		for j := 0; j < n; j++ {
			if usedSecret[j] || guess[i] != secret[j] {
				continue
			}
			h.Partial++
			usedGuess[i], usedSecret[j] = true, true
			break
		}
	}
	return h
}
