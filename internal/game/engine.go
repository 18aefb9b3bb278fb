// internal/game/engine.go
//
// Core game engine for a single hangman session.
// Responsibilities:
//   - Parse the difficulty keyword and draw a word for the chosen tier.
//   - Validate, classify and apply guesses (letters and whole words).
//   - Charge lives for misses and track playing → won/lost.
//
// Notes:
//   - Word lists come from a WordSource (the words package in production).
//   - Randomness is injected through Picker so tests can pin the word.
//   - All comparisons use case-folded runes; Word keeps its original casing.
package game

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
)

const (
	letterCost = 1
	wordCost   = 2
)

// WordSource supplies the word list of a difficulty tier.
type WordSource interface {
	WordsFor(d Difficulty) []string
}

// Picker returns a value in [0, n). *math/rand.Rand satisfies it.
type Picker interface {
	Intn(n int) int
}

// SelectDifficulty maps trimmed, case-folded input to a tier.
func SelectDifficulty(raw string) (Difficulty, error) {
	in := fold(strings.TrimSpace(raw))
	if in == "" {
		return 0, ErrEmptyInput
	}
	for _, d := range Difficulties {
		if in == d.String() {
			return d, nil
		}
	}
	return 0, fmt.Errorf("%w (got %q)", ErrInvalidDifficulty, strings.TrimSpace(raw))
}

// DrawWord picks one word uniformly from the tier's list.
// An empty list means the word source is misconfigured and panics.
func DrawWord(d Difficulty, src WordSource, p Picker) string {
	list := src.WordsFor(d)
	if len(list) == 0 {
		panic(fmt.Sprintf("game: empty word list for difficulty %s", d))
	}
	return list[p.Intn(len(list))]
}

// New constructs a session for word with every position hidden.
func New(d Difficulty, word string) *Session {
	folded := foldRunes(word)
	return &Session{
		ID:         randomID(),
		Difficulty: d,
		Word:       word,
		Incorrect:  []rune{},
		State:      StatePlaying,
		folded:     folded,
		revealed:   make([]rune, len(folded)),
	}
}

// ApplyGuess validates, classifies and applies one guess.
// A non-nil error is always paired with Rejected and leaves the session
// untouched; its message is suitable for showing to the player.
//
// State transitions:
//   - LivesUsed reaching MaxLives → lost (LivesUsed clamped).
//   - Else no hidden position left → won.
func (s *Session) ApplyGuess(raw string) (Outcome, error) {
	if s.State.Finished() {
		return Rejected, ErrGameFinished
	}
	guess := foldRunes(strings.TrimSpace(raw))
	if len(guess) == 0 {
		return Rejected, ErrEmptyInput
	}
	if !isAlpha(guess) {
		return Rejected, fmt.Errorf("%w (got %q)", ErrNotAlphabetic, strings.TrimSpace(raw))
	}

	var out Outcome
	if len(guess) == 1 {
		letter := guess[0]
		if s.tried(letter) {
			return Rejected, fmt.Errorf("%w: %c", ErrAlreadyGuessed, letter)
		}
		if s.reveal(letter) {
			out = CorrectLetter
		} else {
			s.Incorrect = append(s.Incorrect, letter)
			s.LivesUsed += letterCost
			out = IncorrectLetter
		}
	} else if string(guess) == string(s.folded) {
		copy(s.revealed, []rune(s.Word))
		out = CorrectWord
	} else {
		s.LivesUsed += wordCost
		out = IncorrectWord
	}
	s.Guesses++
	s.settle()
	return out, nil
}

// settle applies the termination rules after a guess.
func (s *Session) settle() {
	if s.LivesUsed >= MaxLives {
		s.LivesUsed = MaxLives
		s.State = StateLost
		return
	}
	if s.solved() {
		s.State = StateWon
	}
}

// reveal uncovers every position holding letter and reports whether any did.
func (s *Session) reveal(letter rune) bool {
	hit := false
	i := 0
	for _, r := range s.Word {
		if s.folded[i] == letter {
			s.revealed[i] = r
			hit = true
		}
		i++
	}
	return hit
}

// tried reports whether letter was already revealed or recorded as wrong.
func (s *Session) tried(letter rune) bool {
	for i, r := range s.revealed {
		if r != 0 && s.folded[i] == letter {
			return true
		}
	}
	for _, r := range s.Incorrect {
		if r == letter {
			return true
		}
	}
	return false
}

func (s *Session) solved() bool {
	for _, r := range s.revealed {
		if r == 0 {
			return false
		}
	}
	return true
}

// Mask returns the word with hidden positions as Placeholder, e.g. "CA_".
func (s *Session) Mask() string {
	var b strings.Builder
	for _, r := range s.revealed {
		if r == 0 {
			b.WriteRune(Placeholder)
		} else {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// fold case-folds s for comparison.
func fold(s string) string { return cases.Fold().String(s) }

// foldRunes folds s rune by rune.
func foldRunes(s string) []rune {
	out := make([]rune, 0, len(s))
	for _, r := range s {
		out = append(out, foldRune(r))
	}
	return out
}

// foldRune folds a single rune. Runes whose fold expands (ß → ss) are
// only lowercased so Word and the mask stay aligned.
func foldRune(r rune) rune {
	f := fold(string(r))
	if utf8.RuneCountInString(f) != 1 {
		return unicode.ToLower(r)
	}
	fr, _ := utf8.DecodeRuneInString(f)
	return fr
}

// isAlpha reports whether every rune is a letter.
func isAlpha(rs []rune) bool {
	for _, r := range rs {
		if !unicode.IsLetter(r) {
			return false
		}
	}
	return true
}

// randomID returns a compact 16-hex-char identifier.
func randomID() string {
	var b [8]byte
	_, _ = rand.Read(b[:])
	return hex.EncodeToString(b[:])
}
