// Package pipeline wires the QC core together: draft generation, sentence
// parsing, claim extraction, evidence binding, the lint battery, gate
// evaluation, and the bounded revision loop.
package pipeline

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/medpipe/draftgate/internal/bind"
	"github.com/medpipe/draftgate/internal/drafter"
	"github.com/medpipe/draftgate/internal/extract"
	"github.com/medpipe/draftgate/internal/gate"
	"github.com/medpipe/draftgate/internal/lint"
	"github.com/medpipe/draftgate/internal/model"
	"github.com/medpipe/draftgate/internal/revise"
	"github.com/medpipe/draftgate/internal/source"
	"github.com/medpipe/draftgate/internal/textunit"
)

// Pipeline orchestrates review runs
type Pipeline struct {
	parser    *textunit.Parser
	extractor *extract.ClaimExtractor
	binder    *bind.Binder
	collector *lint.Collector
	evaluator *gate.Evaluator
	loop      *revise.Loop
	gen       drafter.Drafter // nil in check-only mode
	config    *model.Config
	log       *zap.SugaredLogger

	// now is the reference clock for recency checks, injectable for tests
	now func() time.Time
}

// New creates a pipeline. gen may be nil, in which case only single-pass
// checks of existing drafts are possible.
func New(cfg *model.Config, gen drafter.Drafter, log *zap.SugaredLogger) *Pipeline {
	rules := []lint.Rule{
		&lint.CitationIntegrity{},
		&lint.TemplateCompliance{},
		&lint.ClaimCoverage{},
		&lint.UnitCheck{},
		&lint.Overconfidence{},
		&lint.ConflictDetection{},
		&lint.RecencyCheck{WindowYears: cfg.Review.RecencyWindowYears},
	}

	return &Pipeline{
		parser:    textunit.NewParser(),
		extractor: extract.NewClaimExtractor(),
		binder:    bind.NewBinder(cfg.Binder.MinScore, cfg.Binder.MaxLinksPerClaim),
		collector: lint.NewCollector(rules),
		evaluator: gate.NewEvaluator(),
		loop:      revise.NewLoop(cfg.Review.MaxIterations),
		gen:       gen,
		config:    cfg,
		log:       log,
		now:       time.Now,
	}
}

// Run drives the full generate-evaluate-revise loop for one bundle. The
// score history lives on the report and nowhere else, so concurrent runs of
// different bundles never interfere.
func (p *Pipeline) Run(ctx context.Context, bundle *source.Bundle) (*model.Report, error) {
	if p.gen == nil {
		return nil, fmt.Errorf("no drafter configured; use Check for existing drafts")
	}

	report := &model.Report{
		RunID:     uuid.NewString(),
		Title:     bundle.Title,
		StartedAt: p.now().UTC(),
		Sources:   bundle.Sources,
	}

	var (
		draft    string
		guidance string
		history  []int
	)

	for iteration := 1; iteration <= p.loop.MaxIterations(); iteration++ {
		req := drafter.Request{
			Title:      bundle.Title,
			PriorDraft: draft,
			Guidance:   guidance,
			Sources:    bundle.Sources,
		}
		resp, err := p.gen.Draft(ctx, req)
		if err != nil {
			return nil, fmt.Errorf("draft iteration %d: %w", iteration, err)
		}
		draft = resp.Markdown

		iter, newHistory := p.evaluate(report.RunID, bundle, draft, iteration, history)
		iter.TokensUsed = resp.TokensUsed
		history = newHistory
		report.Iterations = append(report.Iterations, iter)

		p.log.Debugw("iteration evaluated",
			"run_id", report.RunID,
			"iteration", iteration,
			"blocking_score", iter.BlockingScore,
			"can_proceed", iter.CanProceed,
			"stalled", iter.Stalled,
		)

		if iter.CanProceed {
			break
		}
		guidance = iter.Guidance
	}

	p.finish(report, draft, history)
	return report, nil
}

// Check runs a single evaluation pass over an existing draft, without
// invoking any drafter.
func (p *Pipeline) Check(bundle *source.Bundle, draft string) *model.Report {
	report := &model.Report{
		RunID:     uuid.NewString(),
		Title:     bundle.Title,
		StartedAt: p.now().UTC(),
		Sources:   bundle.Sources,
	}

	iter, history := p.evaluate(report.RunID, bundle, draft, 1, nil)
	report.Iterations = append(report.Iterations, iter)
	p.finish(report, draft, history)
	return report
}

// ReviewBundle loads a bundle from disk and reviews it: the full loop when a
// drafter is configured, a single-pass check of the bundled draft otherwise.
func (p *Pipeline) ReviewBundle(ctx context.Context, path string) (*model.Report, error) {
	bundle, err := source.Load(path)
	if err != nil {
		return nil, err
	}
	if p.gen != nil {
		return p.Run(ctx, bundle)
	}
	if bundle.Draft == "" {
		return nil, fmt.Errorf("bundle %s carries no draft and no drafter is configured", path)
	}
	return p.Check(bundle, bundle.Draft), nil
}

// evaluate performs one parse-bind-lint-gate-decide pass.
func (p *Pipeline) evaluate(runID string, bundle *source.Bundle, draft string, iteration int, history []int) (model.IterationReport, []int) {
	sentences := p.parser.Parse(draft)

	claims := bundle.Claims
	if len(claims) == 0 {
		claims = p.extractor.Extract(sentences)
	}
	chunks := bundle.Chunks()

	binding := p.binder.Bind(claims, chunks)

	lintCtx := &lint.Context{
		RunID:         runID,
		Draft:         draft,
		Claims:        claims,
		Chunks:        chunks,
		Links:         binding.Links,
		UnboundClaims: binding.UnboundClaims,
		Sources:       bundle.Sources,
		Now:           p.now(),
	}
	issues, stats := p.collector.Run(lintCtx)
	gates := p.evaluator.Evaluate(issues)

	decision, history := p.loop.Evaluate(iteration, history, issues, gates)

	return model.IterationReport{
		Iteration:     iteration,
		DraftChars:    len(draft),
		Binding:       binding.Stats,
		Issues:        issues,
		IssueStats:    stats,
		Gates:         gates,
		BlockingScore: decision.Score,
		NeedsRevision: decision.NeedsRevision,
		CanProceed:    decision.CanProceed,
		Stalled:       decision.Stalled,
		Guidance:      decision.Guidance,
	}, history
}

func (p *Pipeline) finish(report *model.Report, draft string, history []int) {
	report.FinishedAt = p.now().UTC()
	report.FinalDraft = draft
	report.ScoreHistory = history
	if final := report.Final(); final != nil {
		report.Released = model.CanRelease(final.Gates)
		report.Accepted = final.CanProceed && !report.Released
	}
}
