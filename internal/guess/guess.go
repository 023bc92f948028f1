// Package guess holds the round logic for the number-guessing game.
package guess

import "math/rand"

// Bounds of the secret number, inclusive.
const (
	Min = 1
	Max = 100
)

// Outcome is the result of one guess.
type Outcome int

const (
	OutOfRange Outcome = iota
	TooLow
	TooHigh
	Correct
)

// Game is a single round with a fixed secret.
type Game struct {
	secret   int
	attempts int
}

// NewGame draws a secret from rng in [Min, Max].
func NewGame(rng *rand.Rand) *Game {
	return &Game{secret: Min + rng.Intn(Max-Min+1)}
}

// Try evaluates one guess. Out-of-range guesses do not count as attempts.
func (g *Game) Try(n int) Outcome {
	if n < Min || n > Max {
		return OutOfRange
	}
	g.attempts++
	switch {
	case n == g.secret:
		return Correct
	case n < g.secret:
		return TooLow
	default:
		return TooHigh
	}
}

// Attempts returns how many in-range guesses have been made.
func (g *Game) Attempts() int { return g.attempts }
