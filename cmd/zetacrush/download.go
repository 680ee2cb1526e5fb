package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"
)

// Book represents a public-domain book to download.
type Book struct {
	Filename string
	Title    string
	URL      string
}

// Sample corpus from Project Gutenberg for trying out the analyzer.
var books = []Book{
	{
		Filename: "pride-and-prejudice.txt",
		Title:    "Pride and Prejudice",
		URL:      "https://www.gutenberg.org/cache/epub/1342/pg1342.txt",
	},
	{
		Filename: "moby-dick.txt",
		Title:    "Moby Dick",
		URL:      "https://www.gutenberg.org/cache/epub/2701/pg2701.txt",
	},
	{
		Filename: "frankenstein.txt",
		Title:    "Frankenstein",
		URL:      "https://www.gutenberg.org/cache/epub/84/pg84.txt",
	},
	{
		Filename: "dracula.txt",
		Title:    "Dracula",
		URL:      "https://www.gutenberg.org/cache/epub/345/pg345.txt",
	},
	{
		Filename: "a-tale-of-two-cities.txt",
		Title:    "A Tale of Two Cities",
		URL:      "https://www.gutenberg.org/cache/epub/98/pg98.txt",
	},
	{
		Filename: "crime-and-punishment.txt",
		Title:    "Crime and Punishment",
		URL:      "https://www.gutenberg.org/cache/epub/2554/pg2554.txt",
	},
}

var (
	downloadForce bool
	booksDir      string
)

var downloadCmd = &cobra.Command{
	Use:   "download",
	Short: "Download sample books from Project Gutenberg",
	Long: `Download a small set of public-domain books from Project Gutenberg
to try the analyzer on.

Books downloaded:
  - Pride and Prejudice
  - Moby Dick
  - Frankenstein
  - Dracula
  - A Tale of Two Cities
  - Crime and Punishment`,
	RunE: runDownload,
}

func init() {
	downloadCmd.Flags().BoolVarP(&downloadForce, "force", "f", false, "Re-download even if file exists")
	downloadCmd.Flags().StringVar(&booksDir, "dir", "books", "Directory to save books")
	rootCmd.AddCommand(downloadCmd)
}

func runDownload(cmd *cobra.Command, args []string) error {
	// Create books directory if it doesn't exist
	if err := os.MkdirAll(booksDir, 0755); err != nil {
		return fmt.Errorf("create books directory: %w", err)
	}

	client := &http.Client{
		Timeout: 60 * time.Second,
	}

	fmt.Println("Downloading sample books from Project Gutenberg...")
	fmt.Println()

	downloaded := 0
	skipped := 0

	for _, book := range books {
		path := filepath.Join(booksDir, book.Filename)

		// Check if already exists
		if !downloadForce {
			if _, err := os.Stat(path); err == nil {
				fmt.Printf("  ✓ %s (already downloaded)\n", book.Title)
				skipped++
				continue
			}
		}

		fmt.Printf("  ↓ Downloading %s...", book.Title)

		if err := downloadFile(cmd.Context(), client, book.URL, path); err != nil {
			fmt.Printf(" ERROR: %v\n", err)
			slog.Error("failed to download book", "title", book.Title, "error", err)
			continue
		}

		fmt.Println(" done")
		downloaded++
	}

	fmt.Println()
	fmt.Printf("Downloaded: %d, Skipped: %d\n", downloaded, skipped)
	fmt.Printf("Books saved to: %s/\n", booksDir)

	return nil
}

func downloadFile(ctx context.Context, client *http.Client, url, path string) error {
	req, err := http.NewRequestWithContext(ctx, "GET", url, nil)
	if err != nil {
		return err
	}

	resp, err := client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("HTTP %d", resp.StatusCode)
	}

	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	_, err = io.Copy(file, resp.Body)
	return err
}
