package pipeline

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/medpipe/draftgate/internal/model"
)

// Renderer writes review reports to disk and a summary to stdout
type Renderer struct {
	includeFooter bool
}

// NewRenderer creates a renderer.
func NewRenderer(includeFooter bool) *Renderer {
	return &Renderer{includeFooter: includeFooter}
}

// RenderJSON writes the full report as indented JSON.
func (r *Renderer) RenderJSON(report *model.Report, path string) error {
	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal report: %w", err)
	}
	if err := os.WriteFile(path, append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	return nil
}

// RenderMarkdown writes a human-readable review report.
func (r *Renderer) RenderMarkdown(report *model.Report, path string) error {
	var b strings.Builder

	fmt.Fprintf(&b, "# Review: %s\n\n", report.Title)
	fmt.Fprintf(&b, "- Run: `%s`\n", report.RunID)
	fmt.Fprintf(&b, "- Started: %s\n", report.StartedAt.Format("2006-01-02 15:04:05 UTC"))
	fmt.Fprintf(&b, "- Iterations: %d\n", len(report.Iterations))
	fmt.Fprintf(&b, "- Released: %s\n\n", verdict(report))

	for _, iter := range report.Iterations {
		fmt.Fprintf(&b, "## Iteration %d\n\n", iter.Iteration)
		fmt.Fprintf(&b, "Binding: %d/%d claims bound, %d links. Blocking issues: %d.\n\n",
			iter.Binding.BoundClaims, iter.Binding.TotalClaims, iter.Binding.TotalLinks, iter.BlockingScore)

		for _, g := range iter.Gates {
			fmt.Fprintf(&b, "- **%s**: %s\n", g.Kind, g.Message)
		}
		b.WriteString("\n")

		if len(iter.Issues) > 0 {
			b.WriteString("| Severity | Code | Message |\n|---|---|---|\n")
			for _, issue := range iter.Issues {
				fmt.Fprintf(&b, "| %s | %s | %s |\n", issue.Severity, issue.Code, escapeCell(issue.Message))
			}
			b.WriteString("\n")
		}
	}

	if r.includeFooter {
		b.WriteString("---\n\nGenerated by draftgate. Gates evaluate evidence support and document structure, not clinical truth.\n")
	}

	if err := os.WriteFile(path, []byte(b.String()), 0o644); err != nil {
		return fmt.Errorf("write markdown report: %w", err)
	}
	return nil
}

// RenderSummary prints a short result line per gate to stdout.
func (r *Renderer) RenderSummary(report *model.Report) {
	final := report.Final()
	if final == nil {
		fmt.Println("no evaluation passes ran")
		return
	}

	fmt.Printf("%s — %s\n", report.Title, verdict(report))
	for _, g := range final.Gates {
		mark := "✓"
		if !g.Passed {
			mark = "✗"
		}
		fmt.Printf("  %s %s: %s\n", mark, g.Kind, g.Message)
	}
	counts := final.IssueStats.BySeverity
	fmt.Printf("  issues: %d S0, %d S1, %d S2 (history %v)\n",
		counts[model.SeverityS0], counts[model.SeverityS1], counts[model.SeverityS2], report.ScoreHistory)
}

func verdict(report *model.Report) string {
	switch {
	case report.Released:
		return "released"
	case report.Accepted:
		return "accepted with warnings"
	default:
		return "needs revision"
	}
}

func escapeCell(s string) string {
	return strings.ReplaceAll(strings.ReplaceAll(s, "|", `\|`), "\n", " ")
}
