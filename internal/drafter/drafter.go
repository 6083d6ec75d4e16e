// Package drafter is the client side of the external text-generation seam:
// it turns a procedure title, sources, and optional revision guidance into a
// new draft. The QC core never calls it directly; the pipeline feeds the
// core's guidance into the next Draft call.
package drafter

import (
	"context"
	"fmt"
	"strings"

	"github.com/medpipe/draftgate/internal/model"
)

// Request is one generation request
type Request struct {
	// Title of the clinical procedure to document
	Title string

	// PriorDraft is the previous attempt, empty on the first iteration
	PriorDraft string

	// Guidance is the revision guidance from the last gate evaluation
	Guidance string

	// Sources the draft must cite via [S:ID] markers
	Sources []model.Source
}

// Response is the generator's output
type Response struct {
	Markdown   string `json:"markdown"`
	TokensUsed int    `json:"tokens_used"`
}

// Drafter generates procedure drafts
type Drafter interface {
	// Name returns the provider name
	Name() string

	// Draft generates a draft for the request
	Draft(ctx context.Context, req Request) (*Response, error)

	// IsAvailable checks that the provider is configured and reachable
	IsAvailable(ctx context.Context) bool
}

// BuildPrompt constructs the generation prompt. Citation discipline matters:
// the draft must cite only the supplied sources, sentence by sentence, using
// the [S:ID] syntax the downstream parser understands.
func BuildPrompt(req Request) string {
	var b strings.Builder

	fmt.Fprintf(&b, `Write a clinical procedure document in Markdown for: %s

Requirements:
- Include these sections in order: Indications, Contraindications, Equipment, Procedure, Complications, Aftercare.
- Cite evidence per sentence with [S:ID] markers, using ONLY the source ids listed below.
- Use hedged, guideline-style language. Avoid absolute terms such as "always", "never", "completely safe".
- State doses with explicit units (mg, mg/kg, ...).

Available sources:
`, req.Title)

	for _, src := range req.Sources {
		title := src.Title
		if title == "" {
			title = src.URL
		}
		fmt.Fprintf(&b, "- [S:%s] %s\n", src.ID, title)
	}

	if req.PriorDraft != "" {
		fmt.Fprintf(&b, "\nPrevious draft:\n%s\n", req.PriorDraft)
	}
	if req.Guidance != "" {
		fmt.Fprintf(&b, "\nRevise the draft to address these findings:\n%s\n", req.Guidance)
	}

	return b.String()
}
