package gate

import (
	"testing"

	"github.com/medpipe/draftgate/internal/model"
)

func TestEvaluateAllClean(t *testing.T) {
	gates := NewEvaluator().Evaluate(nil)
	if len(gates) != 3 {
		t.Fatalf("expected 3 gates, got %d", len(gates))
	}
	order := []model.GateKind{model.GateSafety, model.GateQuality, model.GateFinal}
	for i, g := range gates {
		if g.Kind != order[i] {
			t.Errorf("gate %d kind = %s, want %s", i, g.Kind, order[i])
		}
		if !g.Passed {
			t.Errorf("gate %s should pass with no issues", g.Kind)
		}
	}
	if !model.CanRelease(gates) {
		t.Errorf("clean evaluation should release")
	}
}

func TestEvaluateSafetyGateIndependentOfQuality(t *testing.T) {
	issues := []model.Issue{
		model.NewIssue(model.CodeUnitMismatch, "s1 only"),
		model.NewIssue(model.CodeTemplateIncomplete, "s1 only"),
	}

	gates := NewEvaluator().Evaluate(issues)
	safety, quality, final := gates[0], gates[1], gates[2]

	if !safety.Passed {
		t.Errorf("safety gate must ignore S1 issues: %+v", safety)
	}
	if quality.Passed {
		t.Errorf("quality gate must fail on S1 issues: %+v", quality)
	}
	if final.Passed {
		t.Errorf("final gate must fail when quality fails")
	}
	if quality.IssuesChecked != 2 || quality.IssuesFailed != 2 {
		t.Errorf("quality counts = %d/%d", quality.IssuesFailed, quality.IssuesChecked)
	}
}

func TestEvaluateWarningsNeverBlock(t *testing.T) {
	issues := []model.Issue{
		model.NewIssue(model.CodeOverconfidentLanguage, "hedge this"),
		model.NewIssue(model.CodeOverconfidentLanguage, "and this"),
	}

	gates := NewEvaluator().Evaluate(issues)
	if !model.CanRelease(gates) {
		t.Errorf("S2 issues must not block release: %+v", gates)
	}
}

func TestEvaluateBlockingCounts(t *testing.T) {
	issues := []model.Issue{
		model.NewIssue(model.CodeOrphanCitation, "s0"),
		model.NewIssue(model.CodeConflictingDoses, "s0"),
		model.NewIssue(model.CodeUnitMismatch, "s1"),
		model.NewIssue(model.CodeOverconfidentLanguage, "s2"),
	}

	gates := NewEvaluator().Evaluate(issues)
	safety, quality, final := gates[0], gates[1], gates[2]

	if safety.Passed || safety.IssuesFailed != 2 {
		t.Errorf("safety = %+v", safety)
	}
	if quality.Passed || quality.IssuesFailed != 1 {
		t.Errorf("quality = %+v", quality)
	}
	if final.Passed || final.IssuesFailed != 3 {
		t.Errorf("final = %+v", final)
	}
}
