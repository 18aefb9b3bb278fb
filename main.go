package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math/rand"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/hangman/internal/config"
	"github.com/robalobadob/hangman/internal/daily"
	"github.com/robalobadob/hangman/internal/game"
	"github.com/robalobadob/hangman/internal/store"
	"github.com/robalobadob/hangman/internal/terminal"
	"github.com/robalobadob/hangman/internal/words"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	setupLogger(cfg)

	lists, err := words.Load(words.Files{
		Pack:   cfg.WordsPackFile,
		Easy:   cfg.WordsEasyFile,
		Normal: cfg.WordsNormalFile,
		Hard:   cfg.WordsHardFile,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load word lists")
	}

	var picker game.Picker = rand.New(rand.NewSource(time.Now().UnixNano()))
	if cfg.DailySalt != "" {
		p := daily.NewPicker(cfg.DailySalt)
		log.Info().Str("date", daily.DateKey(p.Date)).Msg("daily word mode")
		picker = p
	}

	term := terminal.New(os.Stdin, os.Stdout, cfg.ClearScreen)
	results := store.NewMemoryStore()
	if err := run(context.Background(), term, lists, results, cfg, picker); err != nil {
		log.Fatal().Err(err).Msg("game exited")
	}
}

// run plays games until the player declines another round or input ends,
// then prints the run summary.
func run(ctx context.Context, t terminal.IO, src game.WordSource, st store.Store, cfg config.Config, p game.Picker) error {
	if err := t.Message(game.Banner() + "\n"); err != nil {
		return err
	}
	opts := terminal.Options{Picker: p, BannerEveryFrame: cfg.BannerEveryFrame}
	for {
		s, err := terminal.Play(t, src, opts)
		if errors.Is(err, io.EOF) {
			if s != nil {
				_ = t.Message("\nThe word was " + s.Word + ".")
			}
			break
		}
		if err != nil {
			return err
		}
		if err := st.Save(ctx, store.RecordOf(s)); err != nil {
			return err
		}
		if !cfg.Replay {
			break
		}
		again, err := terminal.AskReplay(t)
		if errors.Is(err, io.EOF) || (err == nil && !again) {
			break
		}
		if err != nil {
			return err
		}
	}

	sum, err := store.Summarize(ctx, st)
	if err != nil {
		return err
	}
	if sum.Played > 1 {
		return t.Message(fmt.Sprintf("Played %d (easy %d, normal %d, hard %d): won %d, lost %d.",
			sum.Played, sum.ByDifficulty[game.Easy], sum.ByDifficulty[game.Normal], sum.ByDifficulty[game.Hard],
			sum.Won, sum.Lost))
	}
	return nil
}

func setupLogger(cfg config.Config) {
	if lvl, err := zerolog.ParseLevel(cfg.LogLevel); err == nil {
		zerolog.SetGlobalLevel(lvl)
	}
	if cfg.LogFormat == "console" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen})
		return
	}
	log.Logger = zerolog.New(os.Stderr).With().Timestamp().Logger()
}
