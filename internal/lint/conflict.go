package lint

import (
	"fmt"
	"sort"
	"strings"

	"github.com/medpipe/draftgate/internal/model"
)

// clinicalParameters is the fixed set of recognized threshold parameters.
// Threshold claims naming none of these are not grouped for conflict checks.
var clinicalParameters = []string{
	"heart rate",
	"blood pressure",
	"temperature",
	"oxygen saturation",
	"spo2",
	"respiratory rate",
	"glucose",
	"age",
}

// ConflictDetection groups dose claims by drug name (first token of the claim
// text) and threshold claims by clinical parameter. More than one distinct
// normalized value within a group is a conflict; the message lists all values
// sorted.
type ConflictDetection struct{}

func (r *ConflictDetection) Name() string { return "conflict_detection" }

func (r *ConflictDetection) Check(ctx *Context) []model.Issue {
	doseGroups := make(map[string][]string)      // drug -> normalized values
	thresholdGroups := make(map[string][]string) // parameter -> normalized values
	var doseOrder, thresholdOrder []string

	for _, claim := range ctx.Claims {
		if claim.NormalizedValue == "" {
			continue
		}
		switch claim.Kind {
		case model.ClaimDose:
			drug := firstToken(claim.Text)
			if drug == "" {
				continue
			}
			if _, seen := doseGroups[drug]; !seen {
				doseOrder = append(doseOrder, drug)
			}
			doseGroups[drug] = append(doseGroups[drug], claim.NormalizedValue)
		case model.ClaimThreshold:
			param := matchParameter(claim.Text)
			if param == "" {
				continue
			}
			if _, seen := thresholdGroups[param]; !seen {
				thresholdOrder = append(thresholdOrder, param)
			}
			thresholdGroups[param] = append(thresholdGroups[param], claim.NormalizedValue)
		}
	}

	var issues []model.Issue
	for _, drug := range doseOrder {
		if values := distinctSorted(doseGroups[drug]); len(values) > 1 {
			issues = append(issues, model.NewIssue(model.CodeConflictingDoses,
				fmt.Sprintf("conflicting doses for %q: %s", drug, strings.Join(values, ", "))))
		}
	}
	for _, param := range thresholdOrder {
		if values := distinctSorted(thresholdGroups[param]); len(values) > 1 {
			issues = append(issues, model.NewIssue(model.CodeAgeGroupConflict,
				fmt.Sprintf("conflicting thresholds for %q: %s", param, strings.Join(values, ", "))))
		}
	}
	return issues
}

func firstToken(text string) string {
	fields := strings.Fields(strings.ToLower(text))
	if len(fields) == 0 {
		return ""
	}
	return strings.Trim(fields[0], ".,;:()")
}

func matchParameter(text string) string {
	lower := strings.ToLower(text)
	for _, param := range clinicalParameters {
		if strings.Contains(lower, param) {
			return param
		}
	}
	return ""
}

func distinctSorted(values []string) []string {
	seen := make(map[string]bool, len(values))
	var out []string
	for _, v := range values {
		if !seen[v] {
			seen[v] = true
			out = append(out, v)
		}
	}
	sort.Strings(out)
	return out
}
