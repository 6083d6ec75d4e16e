package lint

import (
	"fmt"

	"github.com/medpipe/draftgate/internal/model"
)

// Collector runs a rule battery and aggregates the findings
type Collector struct {
	rules []Rule
}

// NewCollector creates a collector over the given rules; nil means the
// default battery.
func NewCollector(rules []Rule) *Collector {
	if rules == nil {
		rules = DefaultRules()
	}
	return &Collector{rules: rules}
}

// Run executes every rule in registration order and concatenates their
// issues. A panicking rule is isolated: it contributes one generic issue
// naming the rule, and the remaining rules still run.
func (c *Collector) Run(ctx *Context) ([]model.Issue, model.IssueStats) {
	issues := []model.Issue{}
	rulesWithIssues := 0

	for _, rule := range c.rules {
		found := c.runIsolated(rule, ctx)
		if len(found) > 0 {
			rulesWithIssues++
		}
		issues = append(issues, found...)
	}

	stats := model.IssueStats{
		TotalIssues:     len(issues),
		RulesRun:        len(c.rules),
		RulesWithIssues: rulesWithIssues,
		BySeverity:      model.CountBySeverity(issues),
	}
	return issues, stats
}

func (c *Collector) runIsolated(rule Rule, ctx *Context) (issues []model.Issue) {
	defer func() {
		if r := recover(); r != nil {
			issues = []model.Issue{model.NewIssue(model.CodeRuleExecutionFailed,
				fmt.Sprintf("rule %q failed to execute: %v", rule.Name(), r))}
		}
	}()
	return rule.Check(ctx)
}
