package lint

import (
	"fmt"

	"github.com/medpipe/draftgate/internal/model"
)

// ClaimCoverage raises an issue for every claim the binder could not link to
// evidence. Dose, threshold and contraindication claims are safety-critical
// and get dedicated codes; everything else degrades to a generic binding
// failure.
type ClaimCoverage struct{}

func (r *ClaimCoverage) Name() string { return "claim_coverage" }

func (r *ClaimCoverage) Check(ctx *Context) []model.Issue {
	byID := make(map[string]model.Claim, len(ctx.Claims))
	for _, c := range ctx.Claims {
		byID[c.ID] = c
	}

	var issues []model.Issue
	for _, claimID := range ctx.UnboundClaims {
		claim, ok := byID[claimID]
		if !ok {
			continue
		}

		var code model.IssueCode
		switch claim.Kind {
		case model.ClaimDose:
			code = model.CodeDoseWithoutEvidence
		case model.ClaimThreshold:
			code = model.CodeThresholdWithoutEvidence
		case model.ClaimContraindication:
			code = model.CodeContraindicationUnbound
		default:
			code = model.CodeClaimBindingFailed
		}

		issue := model.NewIssue(code,
			fmt.Sprintf("%s claim has no supporting evidence: %q", claim.Kind, truncate(claim.Text, 120)))
		issue.ClaimID = claim.ID
		issue.LineNumber = claim.LineNumber
		issues = append(issues, issue)
	}
	return issues
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max] + "..."
}
