// internal/game/render.go
//
// Plain-text rendering of a session. Nothing here mutates state.

package game

import (
	"fmt"
	"strings"
)

// Placeholder is shown for every hidden letter.
const Placeholder = '_'

const banner = `Welcome to Hangman!
A random word has been chosen. Guess it one letter at a time, or guess the whole word.
1 wrong letter = 1 life     1 wrong word = 2 lives`

// RenderOptions tunes a frame.
type RenderOptions struct {
	Banner bool // prepend the instructions banner
}

// Banner returns the static instructions text.
func Banner() string { return banner }

// stages[i] is the gallows after i+1 lives have been lost.
var stages = [MaxLives]string{
	`  +-----+
  |
  |
  |
  |
  |
=========`,
	`  +-----+
  |     |
  |
  |
  |
  |
=========`,
	`  +-----+
  |     |
  |     O
  |
  |
  |
=========`,
	`  +-----+
  |     |
  |     O
  |     |
  |
  |
=========`,
	`  +-----+
  |     |
  |     O
  |    /|
  |
  |
=========`,
	`  +-----+
  |     |
  |     O
  |    /|\
  |
  |
=========`,
	`  +-----+
  |     |
  |     O
  |    /|\
  |    /
  |
=========`,
	`  +-----+
  |     |
  |     O
  |    /|\
  |    / \
  |
=========`,
	`  +-----+
  |     |
  |     O
  |    /|\
  |   _/ \_
  |
=========`,
	`  +-----+
  |     |
  |     X
  |    /|\
  |   _/ \_
  |
=========`,
}

// Stage returns the gallows drawing for livesUsed, or "" before any life
// is lost. livesUsed outside 0..MaxLives panics.
func Stage(livesUsed int) string {
	if livesUsed == 0 {
		return ""
	}
	return stages[livesUsed-1]
}

// Render produces one frame: banner, mask, life counter, gallows and the
// wrong letters so far.
func Render(s *Session, opts RenderOptions) string {
	var b strings.Builder
	if opts.Banner {
		b.WriteString(banner)
		b.WriteString("\n\n")
	}
	fmt.Fprintf(&b, "Word: %s\n", spaced(s.Mask()))
	fmt.Fprintf(&b, "Lives used: %d/%d\n", s.LivesUsed, MaxLives)
	if art := Stage(s.LivesUsed); art != "" {
		b.WriteString(art)
		b.WriteString("\n")
	}
	letters := make([]string, len(s.Incorrect))
	for i, r := range s.Incorrect {
		letters[i] = string(r)
	}
	fmt.Fprintf(&b, "Incorrect letters: %s\n", strings.Join(letters, " "))
	return b.String()
}

// Summary is the end-of-game message; empty while still playing.
func Summary(s *Session) string {
	switch s.State {
	case StateWon:
		return fmt.Sprintf("You won! The word was %s.", s.Word)
	case StateLost:
		return fmt.Sprintf("Out of lives. The word was %s.", s.Word)
	}
	return ""
}

func spaced(mask string) string {
	rs := []rune(mask)
	parts := make([]string, len(rs))
	for i, r := range rs {
		parts[i] = string(r)
	}
	return strings.Join(parts, " ")
}
