// Package bind scores claim-to-evidence relevance and emits the top links
// per claim. Scoring is deterministic and transparent: keyword coverage,
// a declared-source bonus, and a verbatim-containment bonus.
package bind

import (
	"fmt"
	"sort"
	"strings"

	"github.com/medpipe/draftgate/internal/keyword"
	"github.com/medpipe/draftgate/internal/model"
)

const (
	coverageWeight      = 0.7
	declaredSourceBonus = 0.2
	substringBonus      = 0.1
)

// Binder binds claims to evidence chunks
type Binder struct {
	minScore         float64
	maxLinksPerClaim int
}

// NewBinder creates a binder with the given thresholds. Non-positive values
// fall back to the defaults (min score 0.1, max 3 links per claim).
func NewBinder(minScore float64, maxLinksPerClaim int) *Binder {
	if minScore <= 0 {
		minScore = 0.1
	}
	if maxLinksPerClaim <= 0 {
		maxLinksPerClaim = 3
	}
	return &Binder{
		minScore:         minScore,
		maxLinksPerClaim: maxLinksPerClaim,
	}
}

// Result is the outcome of one binding pass
type Result struct {
	Links         []model.ClaimEvidenceLink `json:"links"`
	UnboundClaims []string                  `json:"unbound_claims"` // claim ids with no surviving link
	Stats         model.BindingStats        `json:"stats"`
}

// Bind scores every claim against every chunk and keeps, per claim, the
// highest-scoring links above the threshold. Scoring never fails: empty or
// disjoint keyword sets yield score 0.
func (b *Binder) Bind(claims []model.Claim, chunks []model.EvidenceChunk) *Result {
	chunkKeywords := make([]map[string]struct{}, len(chunks))
	for i, chunk := range chunks {
		chunkKeywords[i] = keyword.Extract(chunk.Text)
	}

	result := &Result{
		Links:         []model.ClaimEvidenceLink{},
		UnboundClaims: []string{},
	}

	for _, claim := range claims {
		claimKeywords := keyword.Extract(claim.Text)

		type scored struct {
			chunkIdx int
			score    float64
		}
		var candidates []scored
		for i, chunk := range chunks {
			score := Score(claim, claimKeywords, chunk, chunkKeywords[i])
			if score >= b.minScore {
				candidates = append(candidates, scored{chunkIdx: i, score: score})
			}
		}

		// Stable: equal scores keep original chunk order.
		sort.SliceStable(candidates, func(i, j int) bool {
			return candidates[i].score > candidates[j].score
		})
		if len(candidates) > b.maxLinksPerClaim {
			candidates = candidates[:b.maxLinksPerClaim]
		}

		if len(candidates) == 0 {
			result.UnboundClaims = append(result.UnboundClaims, claim.ID)
			continue
		}
		for _, c := range candidates {
			result.Links = append(result.Links, model.ClaimEvidenceLink{
				ClaimID:         claim.ID,
				EvidenceChunkID: chunks[c.chunkIdx].ID,
				BindingType:     model.BindingKeyword,
				Score:           c.score,
			})
		}
	}

	result.Stats = model.BindingStats{
		TotalClaims:   len(claims),
		BoundClaims:   len(claims) - len(result.UnboundClaims),
		UnboundClaims: len(result.UnboundClaims),
		TotalLinks:    len(result.Links),
	}
	return result
}

// Score computes the deterministic binding score for one claim/chunk pair:
//
//	coverage = |overlap| / |claim_keywords|
//	score    = coverage*0.7 (+0.2 declared source) (+0.1 verbatim containment)
//
// capped at 1.0, and exactly 0 when either keyword set is empty or disjoint.
func Score(claim model.Claim, claimKeywords map[string]struct{}, chunk model.EvidenceChunk, chunkKeywords map[string]struct{}) float64 {
	if len(claimKeywords) == 0 || len(chunkKeywords) == 0 {
		return 0
	}
	overlap := keyword.Overlap(claimKeywords, chunkKeywords)
	if overlap == 0 {
		return 0
	}

	coverage := float64(overlap) / float64(len(claimKeywords))
	score := coverage * coverageWeight

	for _, declared := range claim.DeclaredSourceIDs {
		if declared == chunk.SourceID {
			score += declaredSourceBonus
			break
		}
	}
	if strings.Contains(strings.ToLower(chunk.Text), strings.ToLower(claim.Text)) {
		score += substringBonus
	}

	if score > 1.0 {
		score = 1.0
	}
	return score
}

// Describe renders a short human-readable summary of a binding pass.
func (r *Result) Describe() string {
	return fmt.Sprintf("%d/%d claims bound, %d links",
		r.Stats.BoundClaims, r.Stats.TotalClaims, r.Stats.TotalLinks)
}
