package main

import (
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/term"

	"github.com/H4kor/rustle/internal/config"
	"github.com/H4kor/rustle/internal/game"
	"github.com/H4kor/rustle/internal/session"
	"github.com/H4kor/rustle/internal/tui"
	"github.com/H4kor/rustle/internal/words"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}
	if lvl, err := zerolog.ParseLevel(cfg.LogLevel); err == nil {
		zerolog.SetGlobalLevel(lvl)
	}

	list, err := loadWords(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load word list")
	}

	target, err := pickTarget(cfg, list)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to pick a target word")
	}

	if !term.IsTerminal(int(os.Stdin.Fd())) {
		log.Fatal().Msg("stdin is not a terminal")
	}

	eng, err := game.New(target, list, cfg.MaxTries)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to start game")
	}

	sessionLog, closeLog, err := sessionLogger(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to open log file")
	}
	defer closeLog()

	log.Info().Int("words", list.Len()).Int("letters", eng.WordLen()).Msg("starting rustle")

	scr, err := tui.NewTerminal()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to open screen")
	}
	if err := scr.Init(); err != nil {
		log.Fatal().Err(err).Msg("failed to init screen")
	}

	outcome := session.New(eng, tui.NewBoardView(scr), scr, sessionLog).Run()
	scr.Fini()

	fmt.Print(session.Summary(eng, outcome.State))
}

// loadWords returns the configured list, or the embedded default.
func loadWords(cfg config.Config) (*words.List, error) {
	if cfg.WordsFile != "" {
		return words.Load(cfg.WordsFile)
	}
	return words.Default()
}

// pickTarget resolves the word to guess: a forced answer, the daily word,
// or a seeded random draw.
func pickTarget(cfg config.Config, list *words.List) (string, error) {
	switch {
	case cfg.Answer != "":
		if !list.Contains(cfg.Answer) {
			return "", fmt.Errorf("answer %q is not in the word list", cfg.Answer)
		}
		return cfg.Answer, nil
	case cfg.Daily:
		return list.PickForDate(time.Now(), cfg.DailySalt), nil
	default:
		seed := cfg.Seed
		if seed == 0 {
			s, err := words.NewSeed()
			if err != nil {
				return "", err
			}
			seed = s
		}
		return list.Pick(rand.New(rand.NewSource(seed))), nil
	}
}

// sessionLogger returns the logger for in-game events. Without a log file
// they are discarded; the terminal owns stdout and stderr during play.
func sessionLogger(cfg config.Config) (zerolog.Logger, func(), error) {
	if cfg.LogFile == "" {
		return zerolog.Nop(), func() {}, nil
	}
	f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return zerolog.Nop(), func() {}, err
	}
	logger := zerolog.New(f).With().Timestamp().Logger()
	return logger, func() { _ = f.Close() }, nil
}
