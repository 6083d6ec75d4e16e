package lint

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/medpipe/draftgate/internal/model"
)

// overconfidentTerms is the closed bilingual (English/Russian) list of
// absolute phrasings a clinical document must hedge. Append-only.
var overconfidentTerms = []string{
	// English
	"always", "never", "guaranteed", "impossible",
	"completely safe", "entirely safe", "no risk", "risk-free",
	"certainly", "definitely", "100% effective",
	// Russian
	"всегда", "никогда", "гарантированно", "невозможно",
	"абсолютно безопасно", "полностью безопасно", "без риска",
}

// overconfidentRes holds one compiled pattern per term. \b is ASCII-only in
// RE2, so boundaries are expressed as non-letter/non-digit classes to work
// for Cyrillic terms too.
var overconfidentRes = func() []*regexp.Regexp {
	res := make([]*regexp.Regexp, len(overconfidentTerms))
	for i, term := range overconfidentTerms {
		res[i] = regexp.MustCompile(`(?i)(?:^|[^\p{L}\p{N}])(` + regexp.QuoteMeta(term) + `)(?:$|[^\p{L}\p{N}])`)
	}
	return res
}()

// Overconfidence scans the draft line by line for absolute language that
// violates hedging requirements. One issue per match.
type Overconfidence struct{}

func (r *Overconfidence) Name() string { return "overconfidence" }

func (r *Overconfidence) Check(ctx *Context) []model.Issue {
	var issues []model.Issue
	for i, line := range strings.Split(ctx.Draft, "\n") {
		for _, re := range overconfidentRes {
			for _, m := range re.FindAllStringSubmatch(line, -1) {
				issue := model.NewIssue(model.CodeOverconfidentLanguage,
					fmt.Sprintf("absolute term %q should be hedged or qualified", m[1]))
				issue.LineNumber = i + 1
				issues = append(issues, issue)
			}
		}
	}
	return issues
}
