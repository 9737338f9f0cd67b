// Package config loads the application configuration from a YAML file
// with environment-variable overrides.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v3"

	"github.com/fdiazgon/minimal-ir/internal/recommender"
)

// Vocabulary source values.
const (
	VocabularyProfiles   = "profiles"
	VocabularyDictionary = "dictionary"
)

// envPrefix scopes environment overrides, e.g. MINIMALIR_CORPUS_DIR.
const envPrefix = "minimalir"

// ScoringConfig tunes the recommendation scorer. Environment overrides
// follow the nesting, e.g. MINIMALIR_SCORING_THRESHOLD.
type ScoringConfig struct {
	Mode       string  `yaml:"mode"`
	Threshold  float64 `yaml:"threshold"`
	Multiplier float64 `yaml:"multiplier"`
}

// Config is the root application configuration.
type Config struct {
	ProfilesFile   string        `yaml:"profiles_file" envconfig:"PROFILES_FILE"`
	DictionaryFile string        `yaml:"dictionary_file" envconfig:"DICTIONARY_FILE"`
	CorpusDir      string        `yaml:"corpus_dir" envconfig:"CORPUS_DIR"`
	Delimiter      string        `yaml:"delimiter" envconfig:"DELIMITER"`
	Extensions     []string      `yaml:"extensions" envconfig:"EXTENSIONS"`
	Vocabulary     string        `yaml:"vocabulary" envconfig:"VOCABULARY"`
	Scoring        ScoringConfig `yaml:"scoring"`
	LogLevel       string        `yaml:"log_level" envconfig:"LOG_LEVEL"`
}

// Load reads a config from the given path. A missing file yields the
// defaults. Environment variables override the file in either case.
func Load(path string) (*Config, error) {
	cfg := defaultConfig()
	data, err := os.ReadFile(path)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, err
	}
	if err == nil {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse %s: %w", path, err)
		}
	}
	applyDefaults(cfg)
	if err := envconfig.Process(envPrefix, cfg); err != nil {
		return nil, err
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadDefault tries ./config.yaml first, then
// ~/.config/minimal-ir/config.yaml. If neither exists it writes the
// defaults to the user path and returns them.
func LoadDefault() (*Config, string, error) {
	cwdPath := "config.yaml"
	if _, err := os.Stat(cwdPath); err == nil {
		cfg, err := Load(cwdPath)
		return cfg, cwdPath, err
	}
	userPath, err := defaultUserConfigPath()
	if err != nil {
		return nil, "", err
	}
	if _, err := os.Stat(userPath); err == nil {
		cfg, err := Load(userPath)
		return cfg, userPath, err
	}
	if err := Save(userPath, defaultConfig()); err != nil {
		return nil, "", err
	}
	cfg, err := Load(userPath)
	return cfg, userPath, err
}

// Save writes the config to the given path, creating directories as
// needed.
func Save(path string, cfg *Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

// Mode returns the scoring mode as the recommender's type.
func (c *Config) Mode() recommender.Mode { return recommender.Mode(c.Scoring.Mode) }

func (c *Config) validate() error {
	switch c.Vocabulary {
	case VocabularyProfiles, VocabularyDictionary:
	default:
		return fmt.Errorf("unknown vocabulary source %q", c.Vocabulary)
	}
	switch recommender.Mode(c.Scoring.Mode) {
	case recommender.ModeCosine, recommender.ModeCoverage:
	default:
		return fmt.Errorf("unknown scoring mode %q", c.Scoring.Mode)
	}
	if len(c.Delimiter) != 1 {
		return fmt.Errorf("delimiter must be a single character, got %q", c.Delimiter)
	}
	return nil
}

func defaultUserConfigPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "minimal-ir", "config.yaml"), nil
}

func defaultConfig() *Config {
	return &Config{
		ProfilesFile:   "profiles",
		DictionaryFile: "dictionary",
		CorpusDir:      "corpus",
		Delimiter:      "#",
		Extensions:     []string{".txt"},
		Vocabulary:     VocabularyProfiles,
		Scoring: ScoringConfig{
			Mode:       string(recommender.ModeCoverage),
			Threshold:  recommender.DefaultThreshold,
			Multiplier: recommender.DefaultMultiplier,
		},
		LogLevel: "info",
	}
}

func applyDefaults(cfg *Config) {
	if cfg.Delimiter == "" {
		cfg.Delimiter = "#"
	}
	if len(cfg.Extensions) == 0 {
		cfg.Extensions = []string{".txt"}
	}
	if cfg.Vocabulary == "" {
		cfg.Vocabulary = VocabularyProfiles
	}
	if cfg.Scoring.Mode == "" {
		cfg.Scoring.Mode = string(recommender.ModeCoverage)
	}
	if cfg.Scoring.Threshold == 0 {
		cfg.Scoring.Threshold = recommender.DefaultThreshold
	}
	if cfg.Scoring.Multiplier == 0 {
		cfg.Scoring.Multiplier = recommender.DefaultMultiplier
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}
}
