package model

import "fmt"

// GateKind names a release checkpoint
type GateKind string

const (
	GateSafety  GateKind = "safety"  // passes iff no S0 issues
	GateQuality GateKind = "quality" // passes iff no S1 issues
	GateFinal   GateKind = "final"   // passes iff safety and quality both pass
)

// Gate is a pass/fail checkpoint computed from issue severities.
// Gates are recomputed on every evaluation pass.
type Gate struct {
	Kind          GateKind `json:"kind"`
	Passed        bool     `json:"passed"`
	IssuesChecked int      `json:"issues_checked"`
	IssuesFailed  int      `json:"issues_failed"`
	Message       string   `json:"message"`
}

// NewGate builds a gate, enforcing the issues_failed <= issues_checked
// invariant. A violation is a programmer error, not a content defect.
func NewGate(kind GateKind, passed bool, checked, failed int, message string) Gate {
	if failed > checked {
		panic(fmt.Sprintf("model: gate %s has issues_failed=%d > issues_checked=%d", kind, failed, checked))
	}
	return Gate{
		Kind:          kind,
		Passed:        passed,
		IssuesChecked: checked,
		IssuesFailed:  failed,
		Message:       message,
	}
}

// CanRelease reports whether every gate passed.
func CanRelease(gates []Gate) bool {
	for _, g := range gates {
		if !g.Passed {
			return false
		}
	}
	return true
}
