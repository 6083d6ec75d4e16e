package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/medpipe/draftgate/internal/logging"
	"github.com/medpipe/draftgate/internal/model"
	"github.com/medpipe/draftgate/internal/pipeline"
	"github.com/medpipe/draftgate/internal/source"
)

var (
	checkJSON     string
	checkMD       string
	checkDraft    string
	checkNoFooter bool
)

// checkCmd represents the check command
var checkCmd = &cobra.Command{
	Use:   "check <bundle.yaml>",
	Short: "Run a single gate evaluation over an existing draft",
	Long: `Check evaluates one draft against the release gates without invoking
any drafter: parse, bind, lint, gate. The draft comes from --draft or from
the bundle's inline draft field.

The command exits non-zero when the final gate fails, which makes it usable
as a CI gate.

Example:
  draftgate check lumbar-puncture.yaml --draft draft.md --json report.json`,
	Args: cobra.ExactArgs(1),
	RunE: runCheck,
}

func init() {
	rootCmd.AddCommand(checkCmd)

	checkCmd.Flags().StringVar(&checkJSON, "json", "", "output JSON path (optional)")
	checkCmd.Flags().StringVar(&checkMD, "md", "", "output Markdown path (optional)")
	checkCmd.Flags().StringVar(&checkDraft, "draft", "", "draft markdown file (overrides the bundle's draft)")
	checkCmd.Flags().BoolVar(&checkNoFooter, "no-footer", false, "disable footer in Markdown reports")
}

func runCheck(cmd *cobra.Command, args []string) error {
	cfg := loadConfig()
	cfg.Output.IncludeFooter = !checkNoFooter

	bundle, err := source.Load(args[0])
	if err != nil {
		return err
	}

	draft := bundle.Draft
	if checkDraft != "" {
		data, err := os.ReadFile(checkDraft)
		if err != nil {
			return fmt.Errorf("read draft: %w", err)
		}
		draft = string(data)
	}
	if draft == "" {
		return fmt.Errorf("no draft to check: pass --draft or add a draft field to the bundle")
	}

	log, err := logging.New(cfg.Output.Verbose)
	if err != nil {
		return fmt.Errorf("init logging: %w", err)
	}
	defer func() { _ = log.Sync() }()

	p := pipeline.New(cfg, nil, log)
	report := p.Check(bundle, draft)

	if err := renderReport(pipeline.NewRenderer(cfg.Output.IncludeFooter), report, checkJSON, checkMD, cfg.Output.Verbose); err != nil {
		return err
	}

	if final := report.Final(); final != nil && !model.CanRelease(final.Gates) {
		return fmt.Errorf("release gates failed (%d blocking issue(s))", final.BlockingScore)
	}
	return nil
}
