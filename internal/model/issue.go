package model

import "fmt"

// Severity ranks an issue by how strongly it blocks release
type Severity string

const (
	SeverityS0 Severity = "S0" // safety-critical, blocks the safety gate
	SeverityS1 Severity = "S1" // quality-critical, blocks the quality gate
	SeverityS2 Severity = "S2" // warning, never blocks
)

// Severities lists all tiers in rank order.
func Severities() []Severity {
	return []Severity{SeverityS0, SeverityS1, SeverityS2}
}

// IssueCode is the closed enumeration of lint findings. Codes are append-only:
// external consumers depend on them by value, so codes are never renumbered or
// reassigned to a different severity.
type IssueCode string

const (
	CodeOrphanCitation           IssueCode = "ORPHAN_CITATION"
	CodeMissingMandatorySection  IssueCode = "MISSING_MANDATORY_SECTION"
	CodeTemplateIncomplete       IssueCode = "TEMPLATE_INCOMPLETE"
	CodeDoseWithoutEvidence      IssueCode = "DOSE_WITHOUT_EVIDENCE"
	CodeThresholdWithoutEvidence IssueCode = "THRESHOLD_WITHOUT_EVIDENCE"
	CodeContraindicationUnbound  IssueCode = "CONTRAINDICATION_UNBOUND"
	CodeClaimBindingFailed       IssueCode = "CLAIM_BINDING_FAILED"
	CodeUnitMismatch             IssueCode = "UNIT_MISMATCH"
	CodeOverconfidentLanguage    IssueCode = "OVERCONFIDENT_LANGUAGE"
	CodeConflictingDoses         IssueCode = "CONFLICTING_DOSES"
	CodeAgeGroupConflict         IssueCode = "AGE_GROUP_CONFLICT"
	CodeOutdatedGuideline        IssueCode = "OUTDATED_GUIDELINE"
	CodeRuleExecutionFailed      IssueCode = "RULE_EXECUTION_FAILED"
)

// SeverityFor maps an issue code to its severity. The mapping is the single
// source of truth: severity is never set independently of the code. The
// exhaustive switch means a new code without a mapping fails here loudly
// instead of defaulting.
func SeverityFor(code IssueCode) Severity {
	switch code {
	case CodeOrphanCitation,
		CodeMissingMandatorySection,
		CodeDoseWithoutEvidence,
		CodeThresholdWithoutEvidence,
		CodeContraindicationUnbound,
		CodeConflictingDoses:
		return SeverityS0
	case CodeTemplateIncomplete,
		CodeClaimBindingFailed,
		CodeUnitMismatch,
		CodeAgeGroupConflict,
		CodeOutdatedGuideline,
		CodeRuleExecutionFailed:
		return SeverityS1
	case CodeOverconfidentLanguage:
		return SeverityS2
	}
	panic(fmt.Sprintf("model: issue code %q has no severity mapping", code))
}

// Issue is a typed, severity-tagged finding produced by a lint rule.
// Issues are created fresh on every evaluation pass and never persisted
// across revision iterations.
type Issue struct {
	Code       IssueCode `json:"code"`
	Severity   Severity  `json:"severity"`
	Message    string    `json:"message"`
	LineNumber int       `json:"line_number,omitempty"`
	ClaimID    string    `json:"claim_id,omitempty"`
	SourceID   string    `json:"source_id,omitempty"`
}

// NewIssue builds an issue with the severity derived from its code.
func NewIssue(code IssueCode, message string) Issue {
	return Issue{
		Code:     code,
		Severity: SeverityFor(code),
		Message:  message,
	}
}

// CountBySeverity tallies issues per tier, always producing an entry for
// every tier so downstream consumers never see a missing key.
func CountBySeverity(issues []Issue) map[Severity]int {
	counts := map[Severity]int{
		SeverityS0: 0,
		SeverityS1: 0,
		SeverityS2: 0,
	}
	for _, issue := range issues {
		counts[issue.Severity]++
	}
	return counts
}
