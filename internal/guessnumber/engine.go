// Package guessnumber implements the number-guessing feedback loop.
package guessnumber

import "math/rand/v2"

const (
	Min     = 1
	Max     = 100
	Default = (Min + Max) / 2

	PromptHint  = "Guess a number from 1 to 100"
	GreaterHint = "The number is greater!"
	SmallerHint = "The number is smaller!"
)

type Feedback uint8

const (
	Greater Feedback = iota + 1
	Smaller
	Correct
)

func (f Feedback) String() string {
	switch f {
	case Greater:
		return "greater"
	case Smaller:
		return "smaller"
	case Correct:
		return "correct"
	default:
		return ""
	}
}

// Result describes one submitted guess. For a Correct guess Attempts holds
// the misses of the round that just ended; the engine has already reset.
type Result struct {
	Feedback Feedback
	Guess    int
	Attempts int
}

// Won reports whether the guess ended the round.
func (r Result) Won() bool { return r.Feedback == Correct }

// Engine keeps the hidden target and the player's progress in one round.
type Engine struct {
	draw     func() int
	target   int
	guess    int
	attempts int
	wins     int
	hint     string
}

// New starts a round. draw supplies targets; nil draws uniformly from
// [Min, Max]. Drawn values are clamped into range.
func New(draw func() int) *Engine {
	if draw == nil {
		draw = func() int { return Min + rand.IntN(Max-Min+1) }
	}
	e := &Engine{draw: draw}
	e.reset()
	return e
}

// SubmitGuess sets the guess to value and submits it.
func (e *Engine) SubmitGuess(value int) Result {
	e.SetGuess(value)
	return e.Submit()
}

// Submit compares the current guess with the target.
func (e *Engine) Submit() Result {
	g := e.guess
	switch {
	case g < e.target:
		e.attempts++
		e.hint = GreaterHint
		return Result{Feedback: Greater, Guess: g, Attempts: e.attempts}
	case g > e.target:
		e.attempts++
		e.hint = SmallerHint
		return Result{Feedback: Smaller, Guess: g, Attempts: e.attempts}
	default:
		res := Result{Feedback: Correct, Guess: g, Attempts: e.attempts}
		e.wins++
		e.reset()
		return res
	}
}

// SetGuess moves the guess input, clamped to [Min, Max].
func (e *Engine) SetGuess(value int) { e.guess = clamp(value) }

// Adjust moves the guess input by delta, clamped to [Min, Max].
func (e *Engine) Adjust(delta int) { e.guess = clamp(e.guess + delta) }

// Reset abandons the round and draws a new target.
func (e *Engine) Reset() { e.reset() }

func (e *Engine) reset() {
	e.target = clamp(e.draw())
	e.guess = Default
	e.attempts = 0
	e.hint = PromptHint
}

func (e *Engine) Guess() int    { return e.guess }
func (e *Engine) Attempts() int { return e.attempts }
func (e *Engine) Hint() string  { return e.hint }

// Wins counts rounds guessed since the engine was created.
func (e *Engine) Wins() int { return e.wins }

func clamp(v int) int {
	if v < Min {
		return Min
	}
	if v > Max {
		return Max
	}
	return v
}
