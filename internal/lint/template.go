package lint

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/medpipe/draftgate/internal/model"
)

// requiredSection is one mandatory heading of the procedure template
type requiredSection struct {
	name     string
	synonyms []string // accepted alternative headings, matched by prefix
}

// requiredSections is the fixed ordered template every released procedure
// document must follow.
var requiredSections = []requiredSection{
	{name: "Indications"},
	{name: "Contraindications"},
	{name: "Equipment", synonyms: []string{"Materials"}},
	{name: "Procedure", synonyms: []string{"Technique", "Steps"}},
	{name: "Complications", synonyms: []string{"Adverse Events", "Adverse Effects"}},
	{name: "Aftercare", synonyms: []string{"Post-procedure Care", "Follow-up"}},
}

// minSectionBody is the minimum body length for a section to count as filled in
const minSectionBody = 100

var templateHeadingRe = regexp.MustCompile(`^\s{0,3}(#{1,6})\s+(.+?)\s*$`)

// TemplateCompliance checks that all mandatory sections exist (synonym or
// prefix match allowed) and carry a non-trivial body.
type TemplateCompliance struct{}

func (r *TemplateCompliance) Name() string { return "template_compliance" }

func (r *TemplateCompliance) Check(ctx *Context) []model.Issue {
	type section struct {
		title string
		line  int
		body  strings.Builder
	}

	var sections []*section
	for i, line := range strings.Split(ctx.Draft, "\n") {
		if m := templateHeadingRe.FindStringSubmatch(line); m != nil {
			sections = append(sections, &section{title: m[2], line: i + 1})
			continue
		}
		if len(sections) > 0 {
			cur := sections[len(sections)-1]
			cur.body.WriteString(strings.TrimSpace(line))
			cur.body.WriteString(" ")
		}
	}

	var issues []model.Issue
	for _, req := range requiredSections {
		var found *section
		for _, s := range sections {
			if matchesSection(s.title, req) {
				found = s
				break
			}
		}

		if found == nil {
			issue := model.NewIssue(model.CodeMissingMandatorySection,
				fmt.Sprintf("mandatory section %q is missing", req.name))
			issues = append(issues, issue)
			continue
		}
		if len(strings.TrimSpace(found.body.String())) < minSectionBody {
			issue := model.NewIssue(model.CodeTemplateIncomplete,
				fmt.Sprintf("section %q is present but effectively empty (under %d characters)", req.name, minSectionBody))
			issue.LineNumber = found.line
			issues = append(issues, issue)
		}
	}
	return issues
}

func matchesSection(title string, req requiredSection) bool {
	title = strings.ToLower(strings.TrimSpace(title))
	if strings.HasPrefix(title, strings.ToLower(req.name)) {
		return true
	}
	for _, syn := range req.synonyms {
		if strings.HasPrefix(title, strings.ToLower(syn)) {
			return true
		}
	}
	return false
}
