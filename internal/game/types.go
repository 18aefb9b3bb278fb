// internal/game/types.go
//
// Core type definitions for the hangman game engine.
// Defines:
//   - Difficulty: word list tier chosen once per session.
//   - Outcome: classification of a single guess.
//   - State: playing / won / lost.
//   - Session: state for a single in-progress or finished game.

package game

import "errors"

// MaxLives is the failure budget of a session. The gallows table in
// render.go has exactly this many stages.
const MaxLives = 10

// Difficulty selects which word list a session draws from.
type Difficulty int

const (
	Easy Difficulty = iota
	Normal
	Hard
)

// Difficulties lists every tier in prompt order.
var Difficulties = []Difficulty{Easy, Normal, Hard}

func (d Difficulty) String() string {
	switch d {
	case Easy:
		return "easy"
	case Normal:
		return "normal"
	case Hard:
		return "hard"
	}
	return "unknown"
}

// Outcome is the result of applying one guess.
type Outcome int

const (
	Rejected Outcome = iota
	CorrectLetter
	IncorrectLetter
	CorrectWord
	IncorrectWord
)

func (o Outcome) String() string {
	switch o {
	case CorrectLetter:
		return "correct_letter"
	case IncorrectLetter:
		return "incorrect_letter"
	case CorrectWord:
		return "correct_word"
	case IncorrectWord:
		return "incorrect_word"
	}
	return "rejected"
}

// State is a coarse representation of where a session is.
type State string

const (
	StatePlaying State = "playing"
	StateWon     State = "won"
	StateLost    State = "lost"
)

// Finished reports whether s is terminal.
func (s State) Finished() bool { return s == StateWon || s == StateLost }

// Player-facing rejection reasons. Wrapped values keep these as their
// prefix so they can be printed directly.
var (
	ErrEmptyInput        = errors.New("nothing entered, try again")
	ErrInvalidDifficulty = errors.New("difficulty must be easy, normal or hard")
	ErrNotAlphabetic     = errors.New("guesses may only contain letters")
	ErrAlreadyGuessed    = errors.New("you already guessed that letter")
	ErrGameFinished      = errors.New("the game is already over")
)

// Session holds the state of a single hangman game.
type Session struct {
	ID         string     // Random hex identifier.
	Difficulty Difficulty // Tier the word was drawn from.
	Word       string     // Secret word, original casing.
	LivesUsed  int        // 0..MaxLives once a guess has been applied.
	Incorrect  []rune     // Wrong letters in the order they were guessed.
	Guesses    int        // Accepted guesses, rejected input excluded.
	State      State

	folded   []rune // case-folded Word, used for every comparison
	revealed []rune // one slot per rune of Word; 0 while hidden
}
