package lint

import (
	"fmt"
	"regexp"
	"sort"
	"strings"

	"github.com/medpipe/draftgate/internal/model"
)

// citMarkerRe matches the audit citation format, e.g. [CIT-WHO2021]. This is
// deliberately independent of the [S:ID] evidence citations handled by the
// textunit parser; the two syntaxes are never reconciled.
var citMarkerRe = regexp.MustCompile(`\[CIT-([A-Za-z0-9]+)\]`)

const citPrefix = "CIT-"

// CitationIntegrity verifies that every [CIT-X] marker in the draft resolves
// to a supplied source id. A marker resolves when its id matches a source id
// directly or after adding/stripping the CIT- prefix on either side.
type CitationIntegrity struct{}

func (r *CitationIntegrity) Name() string { return "citation_integrity" }

func (r *CitationIntegrity) Check(ctx *Context) []model.Issue {
	valid := make(map[string]bool, len(ctx.Sources)*2)
	for _, src := range ctx.Sources {
		valid[src.ID] = true
		valid[strings.TrimPrefix(src.ID, citPrefix)] = true
		valid[citPrefix+src.ID] = true
	}

	orphans := make(map[string]bool)
	for _, m := range citMarkerRe.FindAllStringSubmatch(ctx.Draft, -1) {
		id := m[1]
		if !valid[id] && !valid[citPrefix+id] {
			orphans[id] = true
		}
	}

	ids := make([]string, 0, len(orphans))
	for id := range orphans {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	var issues []model.Issue
	for _, id := range ids {
		issue := model.NewIssue(model.CodeOrphanCitation,
			fmt.Sprintf("citation [CIT-%s] does not resolve to any supplied source", id))
		issue.SourceID = id
		issues = append(issues, issue)
	}
	return issues
}
