package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/medpipe/draftgate/internal/drafter"
	"github.com/medpipe/draftgate/internal/logging"
	"github.com/medpipe/draftgate/internal/pipeline"
	"github.com/medpipe/draftgate/internal/worker"
)

var (
	batchProvider    string
	batchModel       string
	batchOutDir      string
	batchConcurrency int
	batchTimeout     time.Duration
)

// batchCmd represents the batch command
var batchCmd = &cobra.Command{
	Use:   "batch <manifest>",
	Short: "Review many bundles concurrently",
	Long: `Batch reads bundle paths from a manifest (one per line, # comments
allowed) and reviews them concurrently. Each run keeps its own score history
and report; one JSON report per bundle is written to the output directory.

Example:
  draftgate batch bundles.txt --provider openai --out reports/`,
	Args: cobra.ExactArgs(1),
	RunE: runBatch,
}

func init() {
	rootCmd.AddCommand(batchCmd)

	batchCmd.Flags().StringVar(&batchProvider, "provider", "", "drafter provider (openai, file); empty checks bundled drafts")
	batchCmd.Flags().StringVar(&batchModel, "model", "", "drafter model name")
	batchCmd.Flags().StringVar(&batchOutDir, "out", "reports", "output directory for JSON reports")
	batchCmd.Flags().IntVar(&batchConcurrency, "concurrency", 0, "concurrent reviews (default from config)")
	batchCmd.Flags().DurationVar(&batchTimeout, "timeout", 30*time.Minute, "overall batch timeout")
}

func runBatch(cmd *cobra.Command, args []string) error {
	ctx, cancel := context.WithTimeout(context.Background(), batchTimeout)
	defer cancel()

	cfg := loadConfig()
	if batchProvider != "" {
		cfg.Drafter.Provider = batchProvider
	}
	if batchModel != "" {
		cfg.Drafter.Model = batchModel
	}
	if batchConcurrency > 0 {
		cfg.Review.BatchConcurrency = batchConcurrency
	}

	var gen drafter.Drafter
	if cfg.Drafter.Provider != "" {
		if cfg.Drafter.Provider == "openai" {
			cfg.Drafter.APIKey = os.Getenv("OPENAI_API_KEY")
			if cfg.Drafter.APIKey == "" {
				return fmt.Errorf("OPENAI_API_KEY environment variable not set")
			}
		}
		var err error
		gen, err = drafter.New(cfg.Drafter, cfg.Cache)
		if err != nil {
			return fmt.Errorf("configure drafter: %w", err)
		}
	}

	log, err := logging.New(cfg.Output.Verbose)
	if err != nil {
		return fmt.Errorf("init logging: %w", err)
	}
	defer func() { _ = log.Sync() }()

	if err := os.MkdirAll(batchOutDir, 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}

	p := pipeline.New(cfg, gen, log)
	processor := worker.NewBatchProcessor(p, cfg.Review.BatchConcurrency)

	results, err := processor.ProcessFile(ctx, args[0])
	if err != nil {
		return err
	}

	renderer := pipeline.NewRenderer(cfg.Output.IncludeFooter)
	released, failed := 0, 0
	for _, result := range results {
		if result.Error != nil {
			failed++
			log.Warnw("review failed", "bundle", result.Path, "error", result.Error)
			continue
		}
		if result.Report.Released {
			released++
		}
		outPath := filepath.Join(batchOutDir, reportName(result.Path))
		if err := renderer.RenderJSON(result.Report, outPath); err != nil {
			return err
		}
	}

	fmt.Printf("reviewed %d bundle(s): %d released, %d errored\n", len(results), released, failed)
	if failed > 0 {
		return fmt.Errorf("%d bundle(s) failed to review", failed)
	}
	return nil
}

func reportName(bundlePath string) string {
	base := filepath.Base(bundlePath)
	base = strings.TrimSuffix(base, filepath.Ext(base))
	return base + ".report.json"
}
