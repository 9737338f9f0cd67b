package main

import (
	"flag"
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	"github.com/fdiazgon/minimal-ir/internal/config"
	"github.com/fdiazgon/minimal-ir/internal/loader"
	"github.com/fdiazgon/minimal-ir/internal/recommender"
	"github.com/fdiazgon/minimal-ir/internal/report"
	"github.com/fdiazgon/minimal-ir/internal/vocabulary"
)

func main() {
	_ = godotenv.Load()

	var cfgPath string
	var cosineOnly bool
	var showFrequencies bool
	flag.StringVar(&cfgPath, "config", "", "Path to YAML config file (optional; uses ~/.config/minimal-ir/config.yaml if not provided)")
	flag.BoolVar(&cosineOnly, "cosine-only", false, "Score by cosine similarity alone, without coverage weighting")
	flag.BoolVar(&showFrequencies, "frequencies", true, "Print the per-document term frequency table")
	flag.Parse()

	logger := newLogger()

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
	logger = logger.Level(parseLevel(cfg.LogLevel))
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
	logger.Info().
		Int("profiles", len(profiles)).
		Int("documents", len(corpus)).
		Int("terms", vocab.Len()).
		Msg("inputs loaded")

	mode := cfg.Mode()
	if cosineOnly {
		mode = recommender.ModeCosine
	}
	scorer := recommender.New(vocab, dict, recommender.Config{
		Mode:       mode,
		Threshold:  cfg.Scoring.Threshold,
		Multiplier: cfg.Scoring.Multiplier,
	}, logger)
	freqs := scorer.Run(profiles, corpus)

	w := report.New(os.Stdout)
	if showFrequencies {
		w.Frequencies(freqs, vocab)
	}
	w.Recommendations(profiles, cfg.Scoring.Threshold)
}

func newLogger() zerolog.Logger {
	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()
}

func parseLevel(level string) zerolog.Level {
	parsed, err := zerolog.ParseLevel(level)
	if err != nil {
		return zerolog.InfoLevel
	}
	return parsed
}
