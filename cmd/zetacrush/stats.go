package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Dmytrostu/zetacrush-backend/internal/app"
	"github.com/Dmytrostu/zetacrush-backend/internal/config"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show database statistics",
	Long:  `Display statistics about stored book analyses.`,
	RunE:  runStats,
}

func init() {
	rootCmd.AddCommand(statsCmd)
}

func runStats(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("validate config: %w", err)
	}

	application, err := app.New(ctx, cfg)
	if err != nil {
		return fmt.Errorf("initialize app: %w", err)
	}
	defer application.Close()

	store := application.Store

	total, err := store.CountAnalyses(ctx)
	if err != nil {
		return fmt.Errorf("count analyses: %w", err)
	}

	byTitle, err := store.CountAnalysesByTitle(ctx)
	if err != nil {
		return fmt.Errorf("count analyses by title: %w", err)
	}

	recent, err := store.ListAnalyses(ctx, 5)
	if err != nil {
		return fmt.Errorf("list analyses: %w", err)
	}

	fmt.Println("=== ZetaCrush Statistics ===")
	fmt.Println()
	fmt.Printf("Database: %s\n", cfg.DatabasePath)
	fmt.Println()
	fmt.Printf("Analyses: %d\n", total)
	fmt.Println()

	if len(byTitle) > 0 {
		fmt.Println("  By title:")
		for _, row := range byTitle {
			fmt.Printf("    %s: %d\n", row.Title, row.Count)
		}
		fmt.Println()
	}

	if len(recent) > 0 {
		fmt.Println("  Recent:")
		for _, a := range recent {
			egg := "no easter egg"
			if a.EasterEgg.Valid {
				egg = "easter egg found"
			}
			fmt.Printf("    #%d %s — %d passages, %s (%s)\n",
				a.ID, a.Title, a.PassageCount, egg,
				a.CreatedAt.Format("2006-01-02 15:04"))
		}
		fmt.Println()
	}

	return nil
}
