package main

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"log/slog"
	"math/rand"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Dmytrostu/zetacrush-backend/internal/analyzer"
	"github.com/Dmytrostu/zetacrush-backend/internal/config"
	"github.com/Dmytrostu/zetacrush-backend/internal/db"
	"github.com/Dmytrostu/zetacrush-backend/internal/report"
)

var (
	analyzeFile  string
	analyzeTitle string
	analyzeJSON  bool
	analyzeSave  bool
	analyzeSeed  uint64
	analyzeRaw   bool
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Analyze a plain-text book",
	Long: `Analyze a plain-text book and print its main characters/places/things,
a synopsis built from dramatic passages, and an easter egg passage.

Examples:
  zetacrush analyze --file books/pride-and-prejudice.txt
  zetacrush analyze --file book.txt --json
  zetacrush analyze --file book.txt --save --title "Pride and Prejudice"`,
	RunE: runAnalyze,
}

func init() {
	analyzeCmd.Flags().StringVarP(&analyzeFile, "file", "f", "", "Path to the text file to analyze (required)")
	analyzeCmd.Flags().StringVar(&analyzeTitle, "title", "", "Book title (defaults to the file name)")
	analyzeCmd.Flags().BoolVar(&analyzeJSON, "json", false, "Print the result as JSON")
	analyzeCmd.Flags().BoolVar(&analyzeSave, "save", false, "Save the result to the database")
	analyzeCmd.Flags().Uint64Var(&analyzeSeed, "seed", 0, "Seed the easter egg selection (reproducible output)")
	analyzeCmd.Flags().BoolVar(&analyzeRaw, "raw", false, "Skip Project Gutenberg boilerplate stripping")
	analyzeCmd.MarkFlagRequired("file")
	rootCmd.AddCommand(analyzeCmd)
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("validate config: %w", err)
	}

	data, err := os.ReadFile(analyzeFile)
	if err != nil {
		return fmt.Errorf("read file: %w", err)
	}

	text := string(data)
	if !analyzeRaw {
		text = analyzer.StripGutenberg(text)
	}

	opts, err := cfg.AnalyzerOptions()
	if err != nil {
		return fmt.Errorf("build analyzer options: %w", err)
	}
	if cmd.Flags().Changed("seed") {
		opts.Rand = seededRand{rand.New(rand.NewSource(int64(analyzeSeed)))}
	}

	a, err := analyzer.New(opts)
	if err != nil {
		return fmt.Errorf("create analyzer: %w", err)
	}

	title := analyzeTitle
	if title == "" {
		base := filepath.Base(analyzeFile)
		title = strings.TrimSuffix(base, filepath.Ext(base))
	}

	slog.Info("analyzing book", "title", title, "bytes", len(data))

	result, err := a.Analyze(text)
	if err != nil {
		return fmt.Errorf("analyze %s: %w", title, err)
	}

	if analyzeJSON {
		if err := report.RenderJSON(os.Stdout, result); err != nil {
			return fmt.Errorf("encode result: %w", err)
		}
	} else {
		report.Render(os.Stdout, title, result)
	}

	if analyzeSave {
		if err := saveAnalysis(ctx, cfg, title, result); err != nil {
			return fmt.Errorf("save analysis: %w", err)
		}
	}

	return nil
}

// seededRand adapts a seeded *rand.Rand to the analyzer.Rand interface.
type seededRand struct{ r *rand.Rand }

func (s seededRand) IntN(n int) int { return s.r.Intn(n) }

func saveAnalysis(ctx context.Context, cfg *config.Config, title string, result analyzer.Result) error {
	store, err := db.NewStore(ctx, cfg.DatabasePath)
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	defer store.Close()

	if err := store.Migrate(ctx); err != nil {
		return fmt.Errorf("run migrations: %w", err)
	}

	entities, err := json.Marshal(result.Entities)
	if err != nil {
		return fmt.Errorf("marshal entities: %w", err)
	}
	synopsis, err := json.Marshal(result.Synopsis)
	if err != nil {
		return fmt.Errorf("marshal synopsis: %w", err)
	}

	created, err := store.CreateAnalysis(ctx, db.CreateAnalysisParams{
		Title:        title,
		CharCount:    int64(result.CharCount),
		PassageCount: int64(result.PassageCount),
		Entities:     string(entities),
		Synopsis:     string(synopsis),
		EasterEgg:    sql.NullString{String: result.EasterEgg, Valid: result.EasterEgg != ""},
	})
	if err != nil {
		return fmt.Errorf("create analysis: %w", err)
	}

	slog.Info("analysis saved", "id", created.ID, "title", created.Title)
	return nil
}
