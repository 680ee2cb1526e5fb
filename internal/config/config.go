package config

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"

	"github.com/Dmytrostu/zetacrush-backend/internal/analyzer"
)

// Config holds all application configuration.
type Config struct {
	// Database
	DatabasePath string

	// Books
	BooksDir string

	// Logging
	LogLevel string

	// Analysis tuning
	MaxEntities      int
	MaxSynopsis      int
	MaxPassageLength int

	// Optional word list files (one word per line, # comments allowed).
	CommonWordsPath   string
	ImpactLexiconPath string

	// EntityMatchMode is "substring" or "word".
	EntityMatchMode string
}

// Load reads configuration from environment variables.
// It automatically loads .env file if present.
func Load() (*Config, error) {
	// Load .env file if it exists (ignore error if not found)
	_ = godotenv.Load()

	cfg := &Config{
		DatabasePath:      getEnv("DATABASE_PATH", "data/zetacrush.db"),
		BooksDir:          getEnv("BOOKS_DIR", "books"),
		LogLevel:          getEnv("LOG_LEVEL", "info"),
		CommonWordsPath:   getEnv("COMMON_WORDS_PATH", ""),
		ImpactLexiconPath: getEnv("IMPACT_LEXICON_PATH", ""),
		EntityMatchMode:   getEnv("ENTITY_MATCH_MODE", "substring"),
	}

	var err error
	cfg.MaxEntities, err = getEnvInt("MAX_ENTITIES", analyzer.DefaultMaxEntities)
	if err != nil {
		return nil, err
	}

	cfg.MaxSynopsis, err = getEnvInt("MAX_SYNOPSIS", analyzer.DefaultMaxSynopsis)
	if err != nil {
		return nil, err
	}

	cfg.MaxPassageLength, err = getEnvInt("MAX_PASSAGE_LENGTH", analyzer.DefaultMaxPassageLength)
	if err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks that required configuration is present.
func (c *Config) Validate() error {
	if c.DatabasePath == "" {
		return fmt.Errorf("DATABASE_PATH is required")
	}
	if _, err := analyzer.ParseMatchMode(c.EntityMatchMode); err != nil {
		return fmt.Errorf("invalid ENTITY_MATCH_MODE: %w", err)
	}
	return nil
}

// AnalyzerOptions builds analyzer options from the configuration, loading
// any configured word list files.
func (c *Config) AnalyzerOptions() (analyzer.Options, error) {
	opts := analyzer.Options{
		MaxEntities:      c.MaxEntities,
		MaxSynopsis:      c.MaxSynopsis,
		MaxPassageLength: c.MaxPassageLength,
	}

	if c.CommonWordsPath != "" {
		words, err := LoadWordList(c.CommonWordsPath)
		if err != nil {
			return opts, fmt.Errorf("load common words: %w", err)
		}
		opts.CommonWords = words
	}

	if c.ImpactLexiconPath != "" {
		words, err := LoadWordList(c.ImpactLexiconPath)
		if err != nil {
			return opts, fmt.Errorf("load impact lexicon: %w", err)
		}
		opts.ImpactLexicon = words
	}

	mode, err := analyzer.ParseMatchMode(c.EntityMatchMode)
	if err != nil {
		return opts, fmt.Errorf("invalid ENTITY_MATCH_MODE: %w", err)
	}
	opts.EntityMatch = mode

	return opts, nil
}

// LoadWordList reads a word list file: one word per line, blank lines and
// lines starting with # skipped, words lowercased.
func LoadWordList(path string) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	var words []string
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		word := strings.TrimSpace(scanner.Text())
		if word == "" || strings.HasPrefix(word, "#") {
			continue
		}
		words = append(words, strings.ToLower(word))
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return words, nil
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

func getEnvInt(key string, defaultVal int) (int, error) {
	val := os.Getenv(key)
	if val == "" {
		return defaultVal, nil
	}
	n, err := strconv.Atoi(val)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return n, nil
}
