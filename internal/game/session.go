// internal/game/session.go
//
// Session orchestration for a single round.
// Responsibilities:
//   - Create rounds with a freshly generated secret under the configured
//     dimensions.
//   - Apply validated guesses and track state transitions:
//     playing → won/lost.
//   - Reset for replay without rebuilding configuration.
//
// Notes:
//   - Guess validation lives in validate.go; ApplyGuess expects a Code that
//     already passed ParseGuess.
//   - The session is the sole owner of the secret; it is drawn once per
//     round and never mutated.

package game

import (
	"errors"

	"github.com/rs/zerolog/log"

	"codebreaker/internal/code"
	"codebreaker/internal/config"
)

// ErrFinished is returned when a guess is applied to a completed round.
// A driver that sequences turns correctly never sees it.
var ErrFinished = errors.New("round already finished")

// NewSession validates cfg, draws a secret and returns a fresh round.
func NewSession(cfg config.Config) (*Session, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	secret, err := code.Generate(cfg.CodeLength, cfg.MinDigit, cfg.MaxDigit)
	if err != nil {
		return nil, err
	}
	log.Debug().Int("length", cfg.CodeLength).Int("turns", cfg.Turns).Msg("new round")
	return &Session{
		Config:    cfg,
		Secret:    secret,
		Turns:     cfg.Turns,
		TurnsLeft: cfg.Turns,
	}, nil
}

// ApplyGuess scores a validated guess, mutating the session state.
// Returns: the hint, the new state string ("playing"/"won"/"lost"), or an
// error if the round is already over.
//
// State transitions:
//   - Full match → Finished = true, Won = true, before any partial
//     accounting happens.
//   - Else the guess consumes a turn; at zero turns left the round is lost.
func (s *Session) ApplyGuess(guess code.Code) (Hint, string, error) {
	if s.Finished {
		return Hint{}, s.State(), ErrFinished
	}

	hint := Score(s.Secret, guess)
	s.History = append(s.History, guess)

	if hint.Won(len(s.Secret)) {
		s.Finished, s.Won = true, true
	} else {
		s.TurnsLeft--
		if s.TurnsLeft <= 0 {
			s.Finished = true
		}
	}
	log.Debug().
		Int("turn", len(s.History)).
		Int("exact", hint.Exact).
		Int("partial", hint.Partial).
		Str("state", s.State()).
		Msg("guess applied")
	return hint, s.State(), nil
}

// Reset draws a new secret and restores the turn budget for a replay.
// The dimensions stay as configured at creation.
func (s *Session) Reset() error {
	secret, err := code.Generate(s.Config.CodeLength, s.Config.MinDigit, s.Config.MaxDigit)
	if err != nil {
		return err
	}
	s.Secret = secret
	s.TurnsLeft = s.Config.Turns
	s.History = nil
	s.Finished, s.Won = false, false
	log.Debug().Msg("round reset")
	return nil
}

// State reports a coarse string representation of the current round state.
func (s *Session) State() string {
	if s.Finished {
		if s.Won {
			return "won"
		}
		return "lost"
	}
	return "playing"
}
