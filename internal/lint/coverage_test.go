package lint

import (
	"testing"

	"github.com/medpipe/draftgate/internal/model"
)

func TestClaimCoverageCodesByKind(t *testing.T) {
	claims := []model.Claim{
		{ID: "c001", Kind: model.ClaimDose, Text: "amoxicillin 50 mg", LineNumber: 3},
		{ID: "c002", Kind: model.ClaimThreshold, Text: "fever above 38.5"},
		{ID: "c003", Kind: model.ClaimContraindication, Text: "do not use in pregnancy"},
		{ID: "c004", Kind: model.ClaimRecommendation, Text: "prefer the left side"},
		{ID: "c005", Kind: model.ClaimDose, Text: "bound claim, not listed"},
	}
	ctx := &Context{
		Claims:        claims,
		UnboundClaims: []string{"c001", "c002", "c003", "c004"},
	}

	issues := (&ClaimCoverage{}).Check(ctx)
	if len(issues) != 4 {
		t.Fatalf("expected 4 issues, got %+v", issues)
	}

	want := []model.IssueCode{
		model.CodeDoseWithoutEvidence,
		model.CodeThresholdWithoutEvidence,
		model.CodeContraindicationUnbound,
		model.CodeClaimBindingFailed,
	}
	for i, code := range want {
		if issues[i].Code != code {
			t.Errorf("issue %d code = %s, want %s", i, issues[i].Code, code)
		}
	}
	if issues[0].ClaimID != "c001" || issues[0].LineNumber != 3 {
		t.Errorf("issue 0 = %+v", issues[0])
	}
}

func TestClaimCoverageSkipsUnknownIDs(t *testing.T) {
	ctx := &Context{UnboundClaims: []string{"ghost"}}
	if issues := (&ClaimCoverage{}).Check(ctx); len(issues) != 0 {
		t.Errorf("unknown claim id should be skipped, got %+v", issues)
	}
}

func TestTruncate(t *testing.T) {
	if got := truncate("short", 10); got != "short" {
		t.Errorf("got %q", got)
	}
	if got := truncate("0123456789abc", 10); got != "0123456789..." {
		t.Errorf("got %q", got)
	}
}
