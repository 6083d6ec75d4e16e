package lint

import (
	"strings"
	"testing"

	"github.com/medpipe/draftgate/internal/model"
)

type staticRule struct {
	name   string
	issues []model.Issue
}

func (r *staticRule) Name() string                     { return r.name }
func (r *staticRule) Check(ctx *Context) []model.Issue { return r.issues }

type panickyRule struct{}

func (r *panickyRule) Name() string { return "panicky" }
func (r *panickyRule) Check(ctx *Context) []model.Issue {
	panic("nil map write")
}

func TestCollectorConcatenatesInRegistrationOrder(t *testing.T) {
	first := &staticRule{name: "first", issues: []model.Issue{
		model.NewIssue(model.CodeOrphanCitation, "a"),
	}}
	second := &staticRule{name: "second", issues: []model.Issue{
		model.NewIssue(model.CodeUnitMismatch, "b"),
		model.NewIssue(model.CodeOverconfidentLanguage, "c"),
	}}

	issues, stats := NewCollector([]Rule{first, second}).Run(&Context{})
	if len(issues) != 3 {
		t.Fatalf("expected 3 issues, got %+v", issues)
	}
	if issues[0].Message != "a" || issues[1].Message != "b" || issues[2].Message != "c" {
		t.Errorf("order broken: %+v", issues)
	}
	if stats.TotalIssues != 3 || stats.RulesRun != 2 || stats.RulesWithIssues != 2 {
		t.Errorf("stats = %+v", stats)
	}
	if stats.BySeverity[model.SeverityS0] != 1 || stats.BySeverity[model.SeverityS1] != 1 || stats.BySeverity[model.SeverityS2] != 1 {
		t.Errorf("by severity = %v", stats.BySeverity)
	}
}

func TestCollectorIsolatesPanickingRule(t *testing.T) {
	after := &staticRule{name: "after", issues: []model.Issue{
		model.NewIssue(model.CodeOrphanCitation, "still runs"),
	}}

	issues, stats := NewCollector([]Rule{&panickyRule{}, after}).Run(&Context{})
	if len(issues) != 2 {
		t.Fatalf("expected 2 issues, got %+v", issues)
	}
	if issues[0].Code != model.CodeRuleExecutionFailed {
		t.Errorf("code = %s", issues[0].Code)
	}
	if !strings.Contains(issues[0].Message, "panicky") {
		t.Errorf("message should name the failed rule: %q", issues[0].Message)
	}
	if issues[1].Message != "still runs" {
		t.Errorf("later rule did not run: %+v", issues)
	}
	if stats.RulesRun != 2 || stats.RulesWithIssues != 2 {
		t.Errorf("stats = %+v", stats)
	}
}

func TestCollectorDefaultBatteryOnCleanInput(t *testing.T) {
	issues, stats := NewCollector(nil).Run(&Context{
		Draft: completeDraft(),
	})
	if stats.RulesRun != len(DefaultRules()) {
		t.Errorf("rules run = %d", stats.RulesRun)
	}
	for _, issue := range issues {
		if issue.Severity == model.SeverityS0 {
			t.Errorf("clean input produced blocking issue %+v", issue)
		}
	}
}

func TestCollectorEmptyRuleSetStillZeroFilled(t *testing.T) {
	issues, stats := NewCollector([]Rule{}).Run(&Context{})
	if len(issues) != 0 {
		t.Errorf("issues = %+v", issues)
	}
	for _, sev := range model.Severities() {
		if n, ok := stats.BySeverity[sev]; !ok || n != 0 {
			t.Errorf("tier %s missing: %v", sev, stats.BySeverity)
		}
	}
}
