package source

import (
	"strings"
	"testing"

	"github.com/medpipe/draftgate/internal/model"
)

func TestChunkSourceParagraphs(t *testing.T) {
	src := model.Source{
		ID:   "S1",
		Text: "First paragraph.\n\nSecond paragraph.\n\n\n\nThird.",
	}

	chunks := ChunkSource(src)
	if len(chunks) != 3 {
		t.Fatalf("expected 3 chunks, got %+v", chunks)
	}
	if chunks[0].ID != "S1#0" || chunks[1].ID != "S1#1" || chunks[2].ID != "S1#2" {
		t.Errorf("chunk ids = %s, %s, %s", chunks[0].ID, chunks[1].ID, chunks[2].ID)
	}
	for i, chunk := range chunks {
		if chunk.SourceID != "S1" || chunk.IndexInSource != i {
			t.Errorf("chunk %d = %+v", i, chunk)
		}
		if chunk.CharRange == nil {
			t.Fatalf("chunk %d has no char range", i)
		}
		got := src.Text[chunk.CharRange.Start:chunk.CharRange.End]
		if got != chunk.Text {
			t.Errorf("char range mismatch: %q != %q", got, chunk.Text)
		}
	}
}

func TestChunkSourceEmptyText(t *testing.T) {
	if chunks := ChunkSource(model.Source{ID: "S1"}); chunks != nil {
		t.Errorf("expected no chunks, got %+v", chunks)
	}
}

func TestChunkSourceHTML(t *testing.T) {
	src := model.Source{
		ID:   "S1",
		HTML: true,
		Text: `<html><body><script>var x = 1;</script><p>Visible paragraph.</p><li>List item.</li></body></html>`,
	}

	chunks := ChunkSource(src)
	if len(chunks) != 2 {
		t.Fatalf("expected 2 chunks, got %+v", chunks)
	}
	if !strings.Contains(chunks[0].Text, "Visible paragraph.") {
		t.Errorf("chunk 0 = %q", chunks[0].Text)
	}
	for _, chunk := range chunks {
		if strings.Contains(chunk.Text, "var x") {
			t.Errorf("script content leaked: %q", chunk.Text)
		}
	}
}

func TestVisibleTextSkipsHiddenSubtrees(t *testing.T) {
	got := VisibleText(`<div>Keep this.<style>p{color:red}</style><noscript>drop</noscript></div>`)
	if !strings.Contains(got, "Keep this.") {
		t.Errorf("visible text lost: %q", got)
	}
	if strings.Contains(got, "color") || strings.Contains(got, "drop") {
		t.Errorf("hidden content leaked: %q", got)
	}
}

func TestVisibleTextDegradesOnPlainText(t *testing.T) {
	got := VisibleText("just plain text")
	if !strings.Contains(got, "just plain text") {
		t.Errorf("got %q", got)
	}
}
