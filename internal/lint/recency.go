package lint

import (
	"fmt"
	"regexp"
	"time"

	"github.com/medpipe/draftgate/internal/model"
)

// RecencyWindowYears is the fixed guideline staleness window.
const RecencyWindowYears = 5

var yearRe = regexp.MustCompile(`\b(19|20)\d{2}\b`)

// RecencyCheck flags sources whose publication year falls outside the
// staleness window. The year comes from the first date-like field that yields
// one; sources with no parseable date are skipped, not flagged.
type RecencyCheck struct {
	// WindowYears overrides the default window when positive (tests).
	WindowYears int
}

func (r *RecencyCheck) Name() string { return "recency_check" }

func (r *RecencyCheck) Check(ctx *Context) []model.Issue {
	window := r.WindowYears
	if window <= 0 {
		window = RecencyWindowYears
	}
	now := ctx.Now
	if now.IsZero() {
		now = time.Now()
	}
	cutoff := now.Year() - window

	var issues []model.Issue
	for _, src := range ctx.Sources {
		year, ok := sourceYear(src)
		if !ok {
			continue
		}
		if year < cutoff {
			issue := model.NewIssue(model.CodeOutdatedGuideline,
				fmt.Sprintf("source %q dates from %d, older than the %d-year window", src.ID, year, window))
			issue.SourceID = src.ID
			issues = append(issues, issue)
		}
	}
	return issues
}

// sourceYear extracts a 4-digit year from the first date field that has one.
func sourceYear(src model.Source) (int, bool) {
	for _, field := range src.DateFields() {
		if field == "" {
			continue
		}
		if m := yearRe.FindString(field); m != "" {
			year := 0
			for _, c := range m {
				year = year*10 + int(c-'0')
			}
			return year, true
		}
		// A populated field that parses to nothing still wins the
		// first-match race; the source is skipped.
		return 0, false
	}
	return 0, false
}
