package lint

import (
	"strings"
	"testing"

	"github.com/medpipe/draftgate/internal/model"
)

func TestUnitCheckAcceptsCanonicalAndCompound(t *testing.T) {
	ctx := &Context{Claims: []model.Claim{
		{ID: "c001", Kind: model.ClaimDose, Unit: "mg"},
		{ID: "c002", Kind: model.ClaimDose, Unit: "mg/kg"},
		{ID: "c003", Kind: model.ClaimDose, Unit: "mg/kg/day"},
		{ID: "c004", Kind: model.ClaimDose, Unit: "IU/ml"},
		{ID: "c005", Kind: model.ClaimThreshold, Unit: ""},
	}}

	if issues := (&UnitCheck{}).Check(ctx); len(issues) != 0 {
		t.Errorf("expected no issues, got %+v", issues)
	}
}

func TestUnitCheckListsOnlyInvalidComponents(t *testing.T) {
	ctx := &Context{Claims: []model.Claim{
		{ID: "c001", Kind: model.ClaimDose, Unit: "mg/kg/zz", LineNumber: 7},
	}}

	issues := (&UnitCheck{}).Check(ctx)
	if len(issues) != 1 {
		t.Fatalf("expected 1 issue, got %+v", issues)
	}
	issue := issues[0]
	if issue.Code != model.CodeUnitMismatch || issue.Severity != model.SeverityS1 {
		t.Errorf("issue = %+v", issue)
	}
	if !strings.Contains(issue.Message, "zz") {
		t.Errorf("message should name zz: %q", issue.Message)
	}
	if strings.Contains(issue.Message, "mg,") || strings.Contains(issue.Message, "kg,") {
		t.Errorf("valid components leaked into message: %q", issue.Message)
	}
	if issue.ClaimID != "c001" || issue.LineNumber != 7 {
		t.Errorf("issue = %+v", issue)
	}
}

func TestUnitCheckMultipleInvalidComponents(t *testing.T) {
	ctx := &Context{Claims: []model.Claim{
		{ID: "c001", Kind: model.ClaimDose, Unit: "foo/mg/bar"},
	}}

	issues := (&UnitCheck{}).Check(ctx)
	if len(issues) != 1 {
		t.Fatalf("expected 1 issue, got %+v", issues)
	}
	if !strings.Contains(issues[0].Message, "foo, bar") {
		t.Errorf("message = %q", issues[0].Message)
	}
}
