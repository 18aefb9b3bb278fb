// internal/words/words.go
//
// Provides word list management for the game engine.
//
// Responsibilities:
//   - Load the three difficulty tiers from the embedded defaults.
//   - Let a word pack (YAML or TOML) and per-tier files override them.
//   - Serve lists to the engine through game.WordSource.
//
// Initialization behavior (Load), later steps win per tier:
//  1. Embedded defaults from assets (easy.txt, normal.txt, hard.txt).
//  2. Files.Pack, a YAML/TOML document with easy/normal/hard keys.
//  3. Files.Easy / Files.Normal / Files.Hard, one word per line.
//
// Constraints:
//   - Words must be alphabetic; other entries are dropped with a warning.
//   - Duplicates are removed case-insensitively, first spelling kept.
//   - Every tier must end up non-empty.

package words

import (
	"bufio"
	"fmt"
	"os"
	"strings"
	"unicode"

	"github.com/rs/zerolog/log"
	"golang.org/x/text/cases"

	"github.com/robalobadob/hangman/assets"
	"github.com/robalobadob/hangman/internal/game"
)

// Files names optional override sources. Empty fields are skipped.
type Files struct {
	Pack   string
	Easy   string
	Normal string
	Hard   string
}

// Lists holds one word list per difficulty tier.
type Lists struct {
	tiers map[game.Difficulty][]string
}

// Load builds the tiered lists from the embedded defaults and overrides.
func Load(f Files) (*Lists, error) {
	l := &Lists{tiers: make(map[game.Difficulty][]string, len(game.Difficulties))}
	for _, d := range game.Difficulties {
		list, err := assets.Tier(d.String())
		if err != nil {
			return nil, fmt.Errorf("words: embedded %s list: %w", d, err)
		}
		l.tiers[d] = list
	}

	if f.Pack != "" {
		p, err := LoadPack(f.Pack)
		if err != nil {
			return nil, err
		}
		for d, list := range p.tiers() {
			if len(list) > 0 {
				l.tiers[d] = list
			}
		}
	}

	for d, path := range map[game.Difficulty]string{game.Easy: f.Easy, game.Normal: f.Normal, game.Hard: f.Hard} {
		if path == "" {
			continue
		}
		list, err := readWordFile(path)
		if err != nil {
			return nil, fmt.Errorf("words: %s list %s: %w", d, path, err)
		}
		l.tiers[d] = list
	}

	for _, d := range game.Difficulties {
		l.tiers[d] = normalize(d, l.tiers[d])
		if len(l.tiers[d]) == 0 {
			return nil, fmt.Errorf("words: %s list is empty", d)
		}
		log.Debug().Str("difficulty", d.String()).Int("words", len(l.tiers[d])).Msg("word list loaded")
	}
	return l, nil
}

// New builds Lists directly from in-memory tiers, normalizing each.
// Missing or empty tiers are an error.
func New(tiers map[game.Difficulty][]string) (*Lists, error) {
	l := &Lists{tiers: make(map[game.Difficulty][]string, len(game.Difficulties))}
	for _, d := range game.Difficulties {
		l.tiers[d] = normalize(d, tiers[d])
		if len(l.tiers[d]) == 0 {
			return nil, fmt.Errorf("words: %s list is empty", d)
		}
	}
	return l, nil
}

// WordsFor implements game.WordSource.
func (l *Lists) WordsFor(d game.Difficulty) []string {
	return l.tiers[d]
}

// Stats returns the number of words per tier.
func (l *Lists) Stats() map[game.Difficulty]int {
	out := make(map[game.Difficulty]int, len(l.tiers))
	for d, list := range l.tiers {
		out[d] = len(list)
	}
	return out
}

// readWordFile loads one word per line, skipping blanks and '#' comments.
func readWordFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	var out []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		w := strings.TrimSpace(sc.Text())
		if w == "" || strings.HasPrefix(w, "#") {
			continue
		}
		out = append(out, w)
	}
	return out, sc.Err()
}

// normalize trims entries, drops non-alphabetic ones and duplicates.
func normalize(d game.Difficulty, list []string) []string {
	fold := cases.Fold()
	seen := make(map[string]struct{}, len(list))
	out := make([]string, 0, len(list))
	for _, w := range list {
		w = strings.TrimSpace(w)
		if !isAlpha(w) {
			log.Warn().Str("difficulty", d.String()).Str("word", w).Msg("dropping non-alphabetic word")
			continue
		}
		key := fold.String(w)
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, w)
	}
	return out
}

// isAlpha reports whether s is a non-empty run of letters.
func isAlpha(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !unicode.IsLetter(r) {
			return false
		}
	}
	return true
}
