package commands

import (
	"fmt"
	"io"
	"math/rand"
	"time"

	"github.com/spf13/cobra"

	"github.com/tilldesk/tilldesk/internal/guess"
	"github.com/tilldesk/tilldesk/internal/ledger"
	"github.com/tilldesk/tilldesk/internal/prompt"
)

func newGuessCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "guess",
		Short: "Run the number-guessing game",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			rng := rand.New(rand.NewSource(time.Now().UnixNano()))
			return runGuess(cmd.InOrStdin(), cmd.OutOrStdout(), rng)
		},
	}
}

func runGuess(in io.Reader, out io.Writer, rng *rand.Rand) error {
	console := prompt.NewConsole(in, out)

	for !console.EOF() {
		game := guess.NewGame(rng)

	round:
		for !console.EOF() {
			n := console.Int(fmt.Sprintf("Guess the number between %d and %d: ", guess.Min, guess.Max))
			switch game.Try(n) {
			case guess.OutOfRange:
				fmt.Fprintf(out, "Out of range! Your number should be between %d and %d.\n", guess.Min, guess.Max)
			case guess.Correct:
				fmt.Fprintf(out, "Correct! You guessed the number. Total attempts: %d\n", game.Attempts())
				break round
			case guess.TooHigh:
				fmt.Fprintln(out, "Your guess is too high!")
			case guess.TooLow:
				fmt.Fprintln(out, "Your guess is too low!")
			}
		}

	replay:
		for {
			switch console.Decide("Do you want to play again?") {
			case ledger.AnswerYes:
				break replay
			case ledger.AnswerNo:
				fmt.Fprintln(out, "Well played! Goodbye for now.")
				return nil
			default:
				if console.EOF() {
					return nil
				}
			}
		}
	}
	return nil
}
