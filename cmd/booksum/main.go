package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/dgallion1/booksum/internal/config"
	"github.com/dgallion1/booksum/internal/summarize"
)

var verbose bool

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "booksum",
	Short: "Summarize books into PDF reports and build study-plan prompts",
	Long: `booksum extracts the text of a document, splits it into roughly equal
sentence-bounded chunks, summarizes each chunk with a language model and
writes the summaries to a PDF report.

It can also build a personalized study-plan prompt from a student profile.`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	rootCmd.AddCommand(summarizeCmd)
	rootCmd.AddCommand(studyplanCmd)
	rootCmd.AddCommand(serveCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

// newLogger writes JSON to stderr so stdout stays free for command output.
func newLogger() *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

// newClient builds the summarization client for the configured provider.
func newClient(cfg config.Config) (*summarize.Client, error) {
	return summarize.New(summarize.Options{
		Provider:          cfg.Provider,
		APIKey:            cfg.APIKeyForProvider(),
		BaseURL:           cfg.BaseURLForProvider(),
		Model:             cfg.ModelForProvider(),
		Temperature:       cfg.Temperature,
		MaxTokens:         cfg.MaxTokens,
		Timeout:           cfg.RequestTimeout,
		RequestsPerMinute: cfg.RequestsPerMinute,
	})
}
