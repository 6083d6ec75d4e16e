// Package revise decides, per evaluation pass, whether a draft proceeds to
// release, goes back for another generation attempt, or is accepted with
// warnings because retries are exhausted or no longer improving.
package revise

import (
	"fmt"
	"strings"

	"github.com/medpipe/draftgate/internal/model"
)

// State names the revision loop outcome
type State string

const (
	StateNeedsRevision State = "needs_revision"
	StateCanProceed    State = "can_proceed"
)

// DefaultMaxIterations bounds generation attempts per run.
const DefaultMaxIterations = 3

// guidanceExamplesPerBucket caps the example lines per severity bucket.
const guidanceExamplesPerBucket = 3

// Loop is the revision decision engine. It holds only configuration; all
// per-run state (the score history) is threaded explicitly by the caller so
// concurrent runs never interfere.
type Loop struct {
	maxIterations int
}

// NewLoop creates a loop with the given iteration bound; non-positive means
// the default of 3.
func NewLoop(maxIterations int) *Loop {
	if maxIterations <= 0 {
		maxIterations = DefaultMaxIterations
	}
	return &Loop{maxIterations: maxIterations}
}

// MaxIterations returns the configured iteration bound.
func (l *Loop) MaxIterations() int { return l.maxIterations }

// Decision is the outcome of one evaluation pass
type Decision struct {
	State         State  `json:"state"`
	NeedsRevision bool   `json:"needs_revision"`
	CanProceed    bool   `json:"can_proceed"`
	Stalled       bool   `json:"stalled"`
	Score         int    `json:"score"`    // S0+S1 count for this pass
	Guidance      string `json:"guidance"` // empty when all gates pass
}

// Evaluate decides the next step for iteration (1-based) given the current
// issues and gates. history is the caller-threaded blocking-score history for
// this run; the returned slice is history with this pass appended.
//
// The loop always terminates: iteration is caller-incremented and the stall
// check is monotone, so CanProceed is reached within maxIterations passes.
func (l *Loop) Evaluate(iteration int, history []int, issues []model.Issue, gates []model.Gate) (Decision, []int) {
	counts := model.CountBySeverity(issues)
	score := counts[model.SeverityS0] + counts[model.SeverityS1]
	history = append(history, score)

	// No strict decrease between the last two passes means revision has
	// stopped helping.
	stalled := len(history) >= 2 && history[len(history)-1] >= history[len(history)-2]

	if model.CanRelease(gates) {
		return Decision{
			State:         StateCanProceed,
			NeedsRevision: false,
			CanProceed:    true,
			Stalled:       false,
			Score:         score,
		}, history
	}

	guidance := BuildGuidance(issues, gates)

	if iteration >= l.maxIterations || stalled {
		// Accept with warnings rather than loop forever.
		return Decision{
			State:         StateCanProceed,
			NeedsRevision: false,
			CanProceed:    true,
			Stalled:       stalled,
			Score:         score,
			Guidance:      guidance,
		}, history
	}

	return Decision{
		State:         StateNeedsRevision,
		NeedsRevision: true,
		CanProceed:    false,
		Stalled:       false,
		Score:         score,
		Guidance:      guidance,
	}, history
}

// BuildGuidance renders revision guidance for the drafter: per-severity
// buckets (S0 first, then S1) with a count header and up to three
// "code: message" example lines each. When gates fail with no issues present
// it emits a fallback notice instead.
func BuildGuidance(issues []model.Issue, gates []model.Gate) string {
	var b strings.Builder

	buckets := []struct {
		severity model.Severity
		label    string
	}{
		{model.SeverityS0, "safety-critical"},
		{model.SeverityS1, "quality-critical"},
	}

	wrote := false
	for _, bucket := range buckets {
		var matched []model.Issue
		for _, issue := range issues {
			if issue.Severity == bucket.severity {
				matched = append(matched, issue)
			}
		}
		if len(matched) == 0 {
			continue
		}
		wrote = true

		fmt.Fprintf(&b, "%d %s issue(s) must be fixed:\n", len(matched), bucket.label)
		for i, issue := range matched {
			if i >= guidanceExamplesPerBucket {
				fmt.Fprintf(&b, "- ... and %d more\n", len(matched)-guidanceExamplesPerBucket)
				break
			}
			fmt.Fprintf(&b, "- %s: %s\n", issue.Code, issue.Message)
		}
	}

	if !wrote && !model.CanRelease(gates) {
		return "gates failed but no specific issues were recorded; regenerate the draft and re-check"
	}
	return strings.TrimRight(b.String(), "\n")
}
