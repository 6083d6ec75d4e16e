package model

import "time"

// BindingStats summarizes one binder pass
type BindingStats struct {
	TotalClaims   int `json:"total_claims"`
	BoundClaims   int `json:"bound_claims"`
	UnboundClaims int `json:"unbound_claims"`
	TotalLinks    int `json:"total_links"`
}

// IssueStats summarizes one collector pass. BySeverity always carries all
// three tiers, zero-filled when absent.
type IssueStats struct {
	TotalIssues     int              `json:"total_issues"`
	RulesRun        int              `json:"rules_run"`
	RulesWithIssues int              `json:"rules_with_issues"`
	BySeverity      map[Severity]int `json:"by_severity"`
}

// IterationReport captures one evaluation pass of the revision loop
type IterationReport struct {
	Iteration     int          `json:"iteration"` // 1-based
	DraftChars    int          `json:"draft_chars"`
	TokensUsed    int          `json:"tokens_used,omitempty"`
	Binding       BindingStats `json:"binding"`
	Issues        []Issue      `json:"issues"`
	IssueStats    IssueStats   `json:"issue_stats"`
	Gates         []Gate       `json:"gates"`
	BlockingScore int          `json:"blocking_score"` // S0+S1 count fed into the stall detector
	NeedsRevision bool         `json:"needs_revision"`
	CanProceed    bool         `json:"can_proceed"`
	Stalled       bool         `json:"stalled"`
	Guidance      string       `json:"guidance,omitempty"`
}

// Report is the complete review record for one run. ScoreHistory belongs to
// this run alone and is never merged across runs.
type Report struct {
	RunID      string    `json:"run_id"`
	Title      string    `json:"title"`
	StartedAt  time.Time `json:"started_at"`
	FinishedAt time.Time `json:"finished_at"`

	Sources []Source `json:"sources"`

	Iterations   []IterationReport `json:"iterations"`
	ScoreHistory []int             `json:"score_history"`

	FinalDraft string `json:"final_draft"`
	Released   bool   `json:"released"`              // all gates passed on the final pass
	Accepted   bool   `json:"accepted_with_warnings"` // loop stopped on exhaustion or stall
}

// Final returns the last iteration report, or nil if none ran.
func (r *Report) Final() *IterationReport {
	if len(r.Iterations) == 0 {
		return nil
	}
	return &r.Iterations[len(r.Iterations)-1]
}
