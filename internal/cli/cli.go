// internal/cli/cli.go
//
// Terminal driver for the game: command definition, the turn loop, and the
// replay prompt. Sequencing glue only; rules live in internal/game.
//
// Per turn: prompt with turns remaining, read one line, validate, score,
// render the hint. Invalid input reprompts in an explicit loop and never
// consumes a turn. After a finished round the player may start a fresh one
// with a new secret.

package cli

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"codebreaker/internal/code"
	"codebreaker/internal/config"
	"codebreaker/internal/game"
)

// NewRootCmd builds the codebreaker command. Configuration starts from the
// environment; flags override per invocation.
func NewRootCmd() *cobra.Command {
	cfg := config.FromEnv()
	cmd := &cobra.Command{
		Use:   "codebreaker",
		Short: "A terminal code-breaking game",
		Long: `codebreaker hides a random digit code and scores each guess with a hint:
one '+' per digit in the right place, one '-' per digit in the code but in
the wrong place. Crack the code before the turns run out.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return play(cmd, cfg)
		},
	}
	f := cmd.Flags()
	f.IntVar(&cfg.CodeLength, "length", cfg.CodeLength, "number of digits in the secret code")
	f.IntVar(&cfg.MinDigit, "min", cfg.MinDigit, "lowest digit in the code (inclusive)")
	f.IntVar(&cfg.MaxDigit, "max", cfg.MaxDigit, "highest digit in the code (inclusive)")
	f.IntVar(&cfg.Turns, "turns", cfg.Turns, "guesses allowed per round")
	return cmd
}

// Execute runs the root command.
func Execute() error {
	return NewRootCmd().Execute()
}

// newSession is swapped out by tests to pin the secret.
var newSession = game.NewSession

// play runs rounds until the player declines a replay or input ends.
func play(cmd *cobra.Command, cfg config.Config) error {
	session, err := newSession(cfg)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	in := bufio.NewScanner(cmd.InOrStdin())
	color := wantColor(out)

	for {
		if err := playRound(session, in, out, color); err != nil {
			if err == io.EOF {
				return nil
			}
			return err
		}
		fmt.Fprint(out, "\nPlay again? [y/N] ")
		if !in.Scan() {
			return in.Err()
		}
		if !strings.EqualFold(strings.TrimSpace(in.Text()), "y") {
			return nil
		}
		if err := session.Reset(); err != nil {
			return err
		}
		fmt.Fprintln(out)
	}
}

// playRound drives one round to completion. Returns io.EOF when input ends
// mid-round.
func playRound(session *game.Session, in *bufio.Scanner, out io.Writer, color bool) error {
	cfg := session.Config
	fmt.Fprintln(out, styled(bannerStyle, fmt.Sprintf(
		"I picked a %d-digit code, digits %d to %d. You have %d turns.",
		cfg.CodeLength, cfg.MinDigit, cfg.MaxDigit, cfg.Turns), color))

	for session.State() == "playing" {
		guess, err := promptGuess(session, in, out, color)
		if err != nil {
			log.Debug().Msg("input closed mid-round")
			return err
		}

		hint, state, err := session.ApplyGuess(guess)
		if err != nil {
			return err
		}

		switch state {
		case "won":
			fmt.Fprintln(out, styled(bannerStyle, fmt.Sprintf(
				"Cracked it in %d turn(s)!", len(session.History)), color))
		case "lost":
			fmt.Fprintln(out, renderHint(hint, color))
			fmt.Fprintln(out, styled(revealStyle, fmt.Sprintf(
				"Out of turns. The code was %s.", session.Secret), color))
		default:
			fmt.Fprintln(out, renderHint(hint, color))
		}
	}
	return nil
}

// promptGuess reprompts until a valid guess is read. Returns io.EOF when the
// input stream ends. Invalid attempts never count against the turn budget.
func promptGuess(session *game.Session, in *bufio.Scanner, out io.Writer, color bool) (code.Code, error) {
	cfg := session.Config
	turn := len(session.History) + 1
	for {
		fmt.Fprintf(out, "[%d/%d] your guess: ", turn, cfg.Turns)
		if !in.Scan() {
			if err := in.Err(); err != nil {
				return nil, err
			}
			return nil, io.EOF
		}
		guess, err := game.ParseGuess(in.Text(), cfg.CodeLength, cfg.MinDigit, cfg.MaxDigit)
		if err != nil {
			fmt.Fprintln(out, styled(errorStyle, fmt.Sprintf("invalid guess (%v), try again", err), color))
			continue
		}
		return guess, nil
	}
}

// wantColor enables styling only when writing to a real terminal.
func wantColor(out io.Writer) bool {
	f, ok := out.(*os.File)
	return ok && (isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd()))
}
