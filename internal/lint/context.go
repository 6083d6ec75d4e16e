// Package lint runs the fixed battery of deterministic checks that turn
// structural and semantic defects in a reviewed draft into typed,
// severity-ranked issues.
package lint

import (
	"time"

	"github.com/medpipe/draftgate/internal/model"
)

// Context is the shared, read-only input every rule consumes. Rules never
// mutate it. Each rule reads only a subset:
//
//	CitationIntegrity   Draft, Sources
//	TemplateCompliance  Draft
//	ClaimCoverage       Claims, UnboundClaims
//	UnitCheck           Claims
//	Overconfidence      Draft
//	ConflictDetection   Claims
//	RecencyCheck        Sources, Now
type Context struct {
	RunID         string
	Draft         string
	Claims        []model.Claim
	Chunks        []model.EvidenceChunk
	Links         []model.ClaimEvidenceLink
	UnboundClaims []string
	Sources       []model.Source
	Now           time.Time // reference time for recency; injectable for reproducible runs
}

// Rule is a single lint check. Check must not mutate the context; panics are
// isolated by the collector and converted into a generic issue.
type Rule interface {
	Name() string
	Check(ctx *Context) []model.Issue
}

// DefaultRules returns the full battery in registration order. Order matters:
// the collector concatenates issues in this order, which keeps output
// deterministic across runs.
func DefaultRules() []Rule {
	return []Rule{
		&CitationIntegrity{},
		&TemplateCompliance{},
		&ClaimCoverage{},
		&UnitCheck{},
		&Overconfidence{},
		&ConflictDetection{},
		&RecencyCheck{},
	}
}
