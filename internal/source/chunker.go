package source

import (
	"fmt"
	"strings"

	"golang.org/x/net/html"

	"github.com/medpipe/draftgate/internal/model"
)

// ChunkSource splits one source's text into paragraph-level evidence chunks.
// HTML payloads are reduced to visible text first. Sources with no text yield
// no chunks.
func ChunkSource(src model.Source) []model.EvidenceChunk {
	text := src.Text
	if text == "" {
		return nil
	}
	if src.HTML {
		text = VisibleText(text)
	}

	var chunks []model.EvidenceChunk
	offset := 0
	index := 0
	for _, para := range strings.Split(text, "\n\n") {
		trimmed := strings.TrimSpace(para)
		if trimmed == "" {
			offset += len(para) + 2
			continue
		}
		start := offset + strings.Index(para, trimmed)
		chunks = append(chunks, model.EvidenceChunk{
			ID:            fmt.Sprintf("%s#%d", src.ID, index),
			SourceID:      src.ID,
			Text:          trimmed,
			IndexInSource: index,
			CharRange: &model.CharRange{
				Start: start,
				End:   start + len(trimmed),
			},
		})
		index++
		offset += len(para) + 2
	}
	return chunks
}

// VisibleText extracts the visible text of an HTML document, skipping
// script/style/noscript/iframe subtrees. Parse failures degrade to returning
// the input unchanged.
func VisibleText(htmlContent string) string {
	doc, err := html.Parse(strings.NewReader(htmlContent))
	if err != nil {
		return htmlContent
	}

	var buf strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode {
			switch n.Data {
			case "script", "style", "noscript", "iframe":
				return
			}
		}
		if n.Type == html.TextNode {
			if text := strings.TrimSpace(n.Data); text != "" {
				buf.WriteString(text)
				buf.WriteString(" ")
			}
		}
		// Paragraph-ish elements become paragraph breaks so chunking
		// still has boundaries to work with.
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
		if n.Type == html.ElementNode {
			switch n.Data {
			case "p", "div", "li", "h1", "h2", "h3", "h4", "h5", "h6":
				buf.WriteString("\n\n")
			}
		}
	}
	walk(doc)
	return strings.TrimSpace(buf.String())
}
