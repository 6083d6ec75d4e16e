package lint

import (
	"fmt"
	"strings"

	"github.com/medpipe/draftgate/internal/model"
)

// canonicalUnits is the closed table of accepted unit components. Compound
// units ("mg/kg/day") are validated component by component against it.
var canonicalUnits = map[string]struct{}{}

func init() {
	for _, u := range []string{
		"mg", "g", "mcg", "µg", "ug", "kg", "ng",
		"ml", "l", "dl",
		"mmol", "mol", "meq",
		"iu", "u", "units",
		"h", "hr", "hour", "min", "s", "d", "day", "dose", "week",
		"mmhg", "kpa", "bpm", "%",
		"kcal", "j",
	} {
		canonicalUnits[u] = struct{}{}
	}
}

// UnitCheck validates each claim's declared unit against the canonical unit
// table. The issue message lists only the invalid components.
type UnitCheck struct{}

func (r *UnitCheck) Name() string { return "unit_check" }

func (r *UnitCheck) Check(ctx *Context) []model.Issue {
	var issues []model.Issue
	for _, claim := range ctx.Claims {
		if claim.Unit == "" {
			continue
		}

		var invalid []string
		for _, comp := range strings.Split(claim.Unit, "/") {
			comp = strings.ToLower(strings.TrimSpace(comp))
			if comp == "" {
				continue
			}
			if _, ok := canonicalUnits[comp]; !ok {
				invalid = append(invalid, comp)
			}
		}
		if len(invalid) == 0 {
			continue
		}

		issue := model.NewIssue(model.CodeUnitMismatch,
			fmt.Sprintf("unit %q has unrecognized components: %s", claim.Unit, strings.Join(invalid, ", ")))
		issue.ClaimID = claim.ID
		issue.LineNumber = claim.LineNumber
		issues = append(issues, issue)
	}
	return issues
}
