// Package gate converts severity counts into release verdicts: a safety gate
// over S0 issues, a quality gate over S1 issues, and a final gate over both.
package gate

import (
	"fmt"

	"github.com/medpipe/draftgate/internal/model"
)

// Evaluator computes gate verdicts from a flat issue list
type Evaluator struct{}

// NewEvaluator creates a gate evaluator.
func NewEvaluator() *Evaluator {
	return &Evaluator{}
}

// Evaluate returns the three gates in fixed order: safety, quality, final.
// Gates are recomputed from scratch on every pass.
func (e *Evaluator) Evaluate(issues []model.Issue) []model.Gate {
	counts := model.CountBySeverity(issues)
	s0 := counts[model.SeverityS0]
	s1 := counts[model.SeverityS1]

	safety := model.NewGate(model.GateSafety, s0 == 0, s0, s0, safetyMessage(s0))
	quality := model.NewGate(model.GateQuality, s1 == 0, s1, s1, qualityMessage(s1))
	final := model.NewGate(model.GateFinal, safety.Passed && quality.Passed, s0+s1, s0+s1,
		finalMessage(safety.Passed && quality.Passed, s0+s1))

	return []model.Gate{safety, quality, final}
}

func safetyMessage(s0 int) string {
	if s0 == 0 {
		return "safety gate passed: no safety-critical issues"
	}
	return fmt.Sprintf("safety gate failed: %d safety-critical issue(s)", s0)
}

func qualityMessage(s1 int) string {
	if s1 == 0 {
		return "quality gate passed: no quality-critical issues"
	}
	return fmt.Sprintf("quality gate failed: %d quality-critical issue(s)", s1)
}

func finalMessage(passed bool, blocking int) string {
	if passed {
		return "final gate passed: document meets release criteria"
	}
	return fmt.Sprintf("final gate failed: %d blocking issue(s)", blocking)
}
