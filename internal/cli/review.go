package cli

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/medpipe/draftgate/internal/drafter"
	"github.com/medpipe/draftgate/internal/logging"
	"github.com/medpipe/draftgate/internal/pipeline"
	"github.com/medpipe/draftgate/internal/source"
)

var (
	reviewJSON      string
	reviewMD        string
	reviewProvider  string
	reviewModel     string
	reviewDraftFile string
	reviewTimeout   time.Duration
	reviewMaxIter   int
	reviewNoCache   bool
	reviewNoFooter  bool
)

// reviewCmd represents the review command
var reviewCmd = &cobra.Command{
	Use:   "review <bundle.yaml>",
	Short: "Generate and gate a procedure draft through the revision loop",
	Long: `Review runs the full loop for one bundle: generate a draft, parse it
into cited sentences, bind claims to evidence, lint, evaluate the
safety/quality/final gates, and request revisions until the gates pass, the
iteration budget is spent, or improvement stalls.

Example:
  draftgate review lumbar-puncture.yaml --provider openai --json report.json
  draftgate review lumbar-puncture.yaml --provider file --draft-file draft.md`,
	Args: cobra.ExactArgs(1),
	RunE: runReview,
}

func init() {
	rootCmd.AddCommand(reviewCmd)

	reviewCmd.Flags().StringVar(&reviewJSON, "json", "report.json", "output JSON path")
	reviewCmd.Flags().StringVar(&reviewMD, "md", "", "output Markdown path (optional)")
	reviewCmd.Flags().StringVar(&reviewProvider, "provider", "", "drafter provider (openai, file)")
	reviewCmd.Flags().StringVar(&reviewModel, "model", "", "drafter model name")
	reviewCmd.Flags().StringVar(&reviewDraftFile, "draft-file", "", "draft path for the file provider")
	reviewCmd.Flags().DurationVar(&reviewTimeout, "timeout", 10*time.Minute, "overall review timeout")
	reviewCmd.Flags().IntVar(&reviewMaxIter, "max-iterations", 0, "override max revision iterations")
	reviewCmd.Flags().BoolVar(&reviewNoCache, "no-cache", false, "disable drafter response cache")
	reviewCmd.Flags().BoolVar(&reviewNoFooter, "no-footer", false, "disable footer in Markdown reports")
}

func runReview(cmd *cobra.Command, args []string) error {
	bundlePath := args[0]
	ctx, cancel := context.WithTimeout(context.Background(), reviewTimeout)
	defer cancel()

	cfg := loadConfig()
	if reviewProvider != "" {
		cfg.Drafter.Provider = reviewProvider
	}
	if reviewModel != "" {
		cfg.Drafter.Model = reviewModel
	}
	if reviewDraftFile != "" {
		cfg.Drafter.DraftFile = reviewDraftFile
	}
	if reviewMaxIter > 0 {
		cfg.Review.MaxIterations = reviewMaxIter
	}
	if reviewNoCache {
		cfg.Cache.Enabled = false
	}
	cfg.Output.IncludeFooter = !reviewNoFooter

	if cfg.Drafter.Provider == "openai" {
		cfg.Drafter.APIKey = os.Getenv("OPENAI_API_KEY")
		if cfg.Drafter.APIKey == "" {
			return fmt.Errorf("OPENAI_API_KEY environment variable not set")
		}
	}

	gen, err := drafter.New(cfg.Drafter, cfg.Cache)
	if err != nil {
		return fmt.Errorf("configure drafter: %w", err)
	}

	log, err := logging.New(cfg.Output.Verbose)
	if err != nil {
		return fmt.Errorf("init logging: %w", err)
	}
	defer func() { _ = log.Sync() }()

	bundle, err := source.Load(bundlePath)
	if err != nil {
		return err
	}

	if cfg.Output.Verbose {
		fmt.Fprintf(os.Stderr, "Reviewing: %s (%d sources, drafter %s)\n", bundle.Title, len(bundle.Sources), gen.Name())
	}

	p := pipeline.New(cfg, gen, log)
	report, err := p.Run(ctx, bundle)
	if err != nil {
		return fmt.Errorf("review failed: %w", err)
	}

	return renderReport(pipeline.NewRenderer(cfg.Output.IncludeFooter), report, reviewJSON, reviewMD, cfg.Output.Verbose)
}
