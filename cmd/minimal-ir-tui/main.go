package main

import (
	"flag"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	"github.com/fdiazgon/minimal-ir/internal/config"
	"github.com/fdiazgon/minimal-ir/internal/loader"
	"github.com/fdiazgon/minimal-ir/internal/recommender"
	"github.com/fdiazgon/minimal-ir/internal/tui"
	"github.com/fdiazgon/minimal-ir/internal/vocabulary"
)

func main() {
	_ = godotenv.Load()

	var cfgPath string
	var cosineOnly bool
	flag.StringVar(&cfgPath, "config", "", "Path to YAML config file (optional; uses ~/.config/minimal-ir/config.yaml if not provided)")
	flag.BoolVar(&cosineOnly, "cosine-only", false, "Score by cosine similarity alone, without coverage weighting")
	flag.Parse()

	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	var cfg *config.Config
	var err error
	if cfgPath == "" {
		cfg, _, err = config.LoadDefault()
	} else {
		cfg, err = config.Load(cfgPath)
	}
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to load config")
	}
	if dir := flag.Arg(0); dir != "" {
		cfg.CorpusDir = dir
	}

	profiles, interestTerms, err := loader.BuildProfiles(cfg.ProfilesFile, cfg.Delimiter)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to load profiles")
	}
	dict, err := loader.BuildDictionary(cfg.DictionaryFile, cfg.Delimiter)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to load dictionary")
	}
	corpus, err := loader.LoadCorpus(cfg.CorpusDir, cfg.Extensions)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to load corpus")
	}

	terms := interestTerms
	if cfg.Vocabulary == config.VocabularyDictionary {
		terms = dict.Terms()
	}
	vocab := vocabulary.New(terms)

	mode := cfg.Mode()
	if cosineOnly {
		mode = recommender.ModeCosine
	}
	scorer := recommender.New(vocab, dict, recommender.Config{
		Mode:       mode,
		Threshold:  cfg.Scoring.Threshold,
		Multiplier: cfg.Scoring.Multiplier,
	}, logger)
	scorer.Run(profiles, corpus)

	if _, err := tea.NewProgram(tui.New(profiles)).Run(); err != nil {
		logger.Fatal().Err(err).Msg("tui failed")
	}
}
