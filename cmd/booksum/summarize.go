package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/dgallion1/booksum/internal/config"
	"github.com/dgallion1/booksum/internal/pipeline"
	"github.com/dgallion1/booksum/internal/report"
)

var (
	outputPath string
	title      string
	chunkCount int
	provider   string
	model      string
)

var summarizeCmd = &cobra.Command{
	Use:   "summarize <input>",
	Short: "Summarize a document into a PDF report",
	Long: `Summarize extracts the text of <input> (PDF, DOCX, Markdown, HTML, CSV or
plain text), summarizes it chunk by chunk and writes a PDF report with one
"Chapter N" section per chunk.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runSummarize(args[0])
	},
}

func init() {
	summarizeCmd.Flags().StringVarP(&outputPath, "output", "o", "", "report path (default <input>_summary.pdf)")
	summarizeCmd.Flags().StringVarP(&title, "title", "t", "", "book title for the report heading (default: document title)")
	summarizeCmd.Flags().IntVarP(&chunkCount, "chunks", "n", 0, "target chunk count (default BOOKSUM_CHUNK_COUNT)")
	summarizeCmd.Flags().StringVar(&provider, "provider", "", "summarization provider: openai or anthropic")
	summarizeCmd.Flags().StringVar(&model, "model", "", "model name override")
}

func runSummarize(input string) error {
	log := newLogger()

	cfg, err := config.Load()
	if err != nil {
		return err
	}
	applyOverrides(&cfg)
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	out := outputPath
	if out == "" {
		out = strings.TrimSuffix(input, filepath.Ext(input)) + "_summary.pdf"
	}

	client, err := newClient(cfg)
	if err != nil {
		return err
	}
	defer client.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	orch := pipeline.NewOrchestrator(cfg, client, report.NewRenderer(log), log)
	res, err := orch.Run(ctx, pipeline.Request{
		SourcePath: input,
		OutputPath: out,
		Title:      title,
	})
	if err != nil {
		return err
	}

	fmt.Printf("Wrote %s: %d chapters, %d pages", out, len(res.Summaries), res.Report.Pages)
	if res.Report.Substituted > 0 {
		fmt.Printf(", %d characters replaced", res.Report.Substituted)
	}
	fmt.Println()
	return nil
}

// applyOverrides layers command-line flags over the environment.
func applyOverrides(cfg *config.Config) {
	if chunkCount != 0 {
		cfg.ChunkCount = chunkCount
	}
	if provider != "" {
		cfg.Provider = strings.ToLower(provider)
	}
	if model != "" {
		if cfg.Provider == "anthropic" {
			cfg.AnthropicModel = model
		} else {
			cfg.OpenAIModel = model
		}
	}
}
