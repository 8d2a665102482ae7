package game

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"codebreaker/internal/code"
	"codebreaker/internal/config"
)

// fixedSession builds a round with a known secret, bypassing generation.
func fixedSession(secret code.Code, turns int) *Session {
	cfg := config.Config{CodeLength: len(secret), MinDigit: 1, MaxDigit: 6, Turns: turns}
	return &Session{
		Config:    cfg,
		Secret:    secret,
		Turns:     turns,
		TurnsLeft: turns,
	}
}

func TestNewSession(t *testing.T) {
	t.Run("draws a secret of the configured shape", func(t *testing.T) {
		s, err := NewSession(config.Default())
		require.NoError(t, err)
		require.Len(t, s.Secret, config.DefaultCodeLength)
		for _, d := range s.Secret {
			assert.GreaterOrEqual(t, d, config.DefaultMinDigit)
			assert.LessOrEqual(t, d, config.DefaultMaxDigit)
		}
		assert.Equal(t, "playing", s.State())
		assert.Equal(t, config.DefaultTurns, s.TurnsLeft)
	})

	t.Run("rejects invalid configuration", func(t *testing.T) {
		cfg := config.Default()
		cfg.Turns = 0
		_, err := NewSession(cfg)
		require.Error(t, err)
		assert.True(t, errors.Is(err, config.ErrInvalidConfiguration))
	})
}

func TestApplyGuess(t *testing.T) {
	t.Run("winning guess finishes before any partial accounting", func(t *testing.T) {
		s := fixedSession(code.Code{1, 2, 3, 4}, 10)
		hint, state, err := s.ApplyGuess(code.Code{1, 2, 3, 4})
		require.NoError(t, err)
		assert.Equal(t, Hint{Exact: 4}, hint)
		assert.Equal(t, "won", state)
		assert.True(t, s.Won)
		// A win does not consume a turn.
		assert.Equal(t, 10, s.TurnsLeft)
	})

	t.Run("non-winning guess consumes a turn", func(t *testing.T) {
		s := fixedSession(code.Code{1, 2, 3, 4}, 10)
		hint, state, err := s.ApplyGuess(code.Code{4, 2, 3, 3})
		require.NoError(t, err)
		assert.Equal(t, Hint{Exact: 2, Partial: 1}, hint)
		assert.Equal(t, "playing", state)
		assert.Equal(t, 9, s.TurnsLeft)
		assert.Len(t, s.History, 1)
	})

	t.Run("budget exhaustion loses the round", func(t *testing.T) {
		turns := 3
		s := fixedSession(code.Code{1, 2, 3, 4}, turns)
		var state string
		for i := 0; i < turns; i++ {
			var err error
			_, state, err = s.ApplyGuess(code.Code{5, 5, 5, 5})
			require.NoError(t, err)
		}
		assert.Equal(t, "lost", state)
		assert.True(t, s.Finished)
		assert.False(t, s.Won)
		// The secret stays available for the loss reveal.
		assert.True(t, s.Secret.Equal(code.Code{1, 2, 3, 4}))
	})

	t.Run("winning on the last turn still wins", func(t *testing.T) {
		s := fixedSession(code.Code{1, 2, 3, 4}, 2)
		_, _, err := s.ApplyGuess(code.Code{5, 5, 5, 5})
		require.NoError(t, err)
		_, state, err := s.ApplyGuess(code.Code{1, 2, 3, 4})
		require.NoError(t, err)
		assert.Equal(t, "won", state)
	})

	t.Run("finished round rejects further guesses", func(t *testing.T) {
		s := fixedSession(code.Code{1, 2, 3, 4}, 1)
		_, _, err := s.ApplyGuess(code.Code{5, 5, 5, 5})
		require.NoError(t, err)
		_, state, err := s.ApplyGuess(code.Code{1, 2, 3, 4})
		assert.True(t, errors.Is(err, ErrFinished))
		assert.Equal(t, "lost", state)
	})
}

func TestReset(t *testing.T) {
	s := fixedSession(code.Code{1, 2, 3, 4}, 2)
	_, _, err := s.ApplyGuess(code.Code{1, 2, 3, 4})
	require.NoError(t, err)
	require.True(t, s.Finished)

	require.NoError(t, s.Reset())
	assert.Equal(t, "playing", s.State())
	assert.Equal(t, 2, s.TurnsLeft)
	assert.Empty(t, s.History)
	assert.Len(t, s.Secret, 4)
	for _, d := range s.Secret {
		assert.GreaterOrEqual(t, d, 1)
		assert.LessOrEqual(t, d, 6)
	}
}
