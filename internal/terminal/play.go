package terminal

import (
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/robalobadob/hangman/internal/game"
)

const (
	difficultyPrompt = "Choose a difficulty (easy, normal, hard): "
	guessPrompt      = "Guess a letter or the whole word: "
	replayPrompt     = "Play again? (y/n): "
)

// Options tunes a Play call.
type Options struct {
	Picker           game.Picker
	BannerEveryFrame bool
}

// ChooseDifficulty prompts until the input names a tier.
func ChooseDifficulty(t IO) (game.Difficulty, error) {
	for {
		raw, err := t.ReadLine(difficultyPrompt)
		if err != nil {
			return 0, err
		}
		d, err := game.SelectDifficulty(raw)
		if err == nil {
			return d, nil
		}
		if err := t.Message(err.Error()); err != nil {
			return 0, err
		}
	}
}

// Play runs one session to completion: difficulty, word draw, then
// render/read/apply until won or lost, then a final frame and message.
// The returned session is non-nil once a word has been drawn, even when
// an I/O error cut the game short.
func Play(t IO, src game.WordSource, opts Options) (*game.Session, error) {
	d, err := ChooseDifficulty(t)
	if err != nil {
		return nil, err
	}
	s := game.New(d, game.DrawWord(d, src, opts.Picker))
	log.Debug().Str("session", s.ID).Str("difficulty", d.String()).Int("letters", len([]rune(s.Word))).Msg("session started")

	render := game.RenderOptions{Banner: opts.BannerEveryFrame}
	for !s.State.Finished() {
		if err := t.WriteFrame(game.Render(s, render)); err != nil {
			return s, err
		}
		if err := turn(t, s); err != nil {
			return s, err
		}
	}

	if err := t.WriteFrame(game.Render(s, render)); err != nil {
		return s, err
	}
	log.Info().Str("session", s.ID).Str("state", string(s.State)).Int("lives_used", s.LivesUsed).Int("guesses", s.Guesses).Msg("session finished")
	return s, t.Message(game.Summary(s))
}

// turn reads guesses until one is accepted. Rejections are shown and
// cost nothing.
func turn(t IO, s *game.Session) error {
	for {
		raw, err := t.ReadLine(guessPrompt)
		if err != nil {
			return err
		}
		out, err := s.ApplyGuess(raw)
		if err == nil {
			log.Debug().Str("session", s.ID).Str("outcome", out.String()).Int("lives_used", s.LivesUsed).Msg("guess applied")
			return nil
		}
		if err := t.Message(err.Error()); err != nil {
			return err
		}
	}
}

// AskReplay asks whether to start another game. Empty input means no.
func AskReplay(t IO) (bool, error) {
	for {
		raw, err := t.ReadLine(replayPrompt)
		if err != nil {
			return false, err
		}
		switch strings.ToLower(strings.TrimSpace(raw)) {
		case "y", "yes":
			return true, nil
		case "", "n", "no":
			return false, nil
		}
		if err := t.Message("please answer y or n"); err != nil {
			return false, err
		}
	}
}
