// Package textunit segments draft markdown into ordered, citation-bearing
// sentence units. The parser is best-effort and never fails: malformed input
// degrades to plain prose sentences.
package textunit

import (
	"regexp"
	"strings"
)

// CitedSentence is one sentence unit with the evidence citations that apply
// to it. CitationIDs come from inline [S:ID] markers, falling back to the
// enclosing block's citation set when the sentence carries none of its own.
type CitedSentence struct {
	LineNo      int      `json:"line_no"`
	Text        string   `json:"text"`
	CitationIDs []string `json:"citation_ids,omitempty"`
}

var (
	// citationRe matches sentence-level evidence citations, e.g. [S:WHO2021]
	citationRe = regexp.MustCompile(`\[S:([A-Za-z0-9_-]+)\]`)

	headingRe  = regexp.MustCompile(`^\s{0,3}#{1,6}\s`)
	bulletRe   = regexp.MustCompile(`^\s*[-*]\s+`)
	numberedRe = regexp.MustCompile(`^\s*\d+[.)]\s+`)

	alnumRe = regexp.MustCompile(`[\p{L}\p{N}]`)

	// bareLinkRe matches fragments that are nothing but a URL, DOI or PMID
	bareLinkRe = regexp.MustCompile(`(?i)^[\s\p{P}]*(?:https?://\S+|doi:\s*\S+|10\.\d{4,9}/\S+|pmid:?\s*\d+)[\s.]*$`)

	// biblioRe matches bibliography fragments: an optional 4-digit year
	// followed by a URL/DOI/PMID marker. Without a year the marker must
	// open the fragment, so prose that merely mentions a link survives.
	biblioRe = regexp.MustCompile(`(?i)\b(?:19|20)\d{2}\b[\s\S]*?(?:https?://|doi\.org|doi:|pmid)|^\W*(?:https?://|doi\.org|doi:|pmid)`)

	// leadingCitationsRe captures citation markers at the start of a fragment
	leadingCitationsRe = regexp.MustCompile(`^\s*((?:\[S:[A-Za-z0-9_-]+\][\s,;]*)+)`)
)

// abbreviations that never end a sentence, compared case-insensitively after
// stripping leading punctuation. Closed list, multi-dot forms included.
var abbreviations = map[string]struct{}{}

func init() {
	for _, a := range []string{
		"e.g.", "i.e.", "etc.", "vs.", "cf.", "ca.", "approx.", "al.",
		"fig.", "no.", "vol.", "min.", "max.", "resp.",
		"dr.", "prof.", "st.", "mr.", "mrs.",
	} {
		abbreviations[a] = struct{}{}
	}
}

// Parser splits markdown into cited sentence units
type Parser struct{}

// NewParser creates a text-unit parser.
func NewParser() *Parser {
	return &Parser{}
}

type block struct {
	startLine int
	lines     []string
}

func (b *block) text() string {
	return strings.Join(b.lines, " ")
}

// Parse segments markdown into ordered cited sentences. It never returns an
// error; ordering matches source order.
func (p *Parser) Parse(markdown string) []CitedSentence {
	var sentences []CitedSentence
	for _, b := range partitionBlocks(markdown) {
		blockCitations := ExtractCitations(b.text())
		fragments := mergeFragments(splitFragments(b.text()))
		emitFragments(&sentences, fragments, b.startLine, blockCitations)
	}
	return sentences
}

// partitionBlocks splits markdown into prose blocks on blank lines and
// headings. A bullet or numbered marker starts a new list-item block; a line
// consisting solely of citation markers continues the current block.
func partitionBlocks(markdown string) []block {
	var blocks []block
	var current *block

	flush := func() {
		if current != nil && len(current.lines) > 0 {
			blocks = append(blocks, *current)
		}
		current = nil
	}

	for i, rawLine := range strings.Split(markdown, "\n") {
		lineNo := i + 1
		line := strings.TrimRight(rawLine, " \t\r")
		trimmed := strings.TrimSpace(line)

		switch {
		case trimmed == "":
			flush()
		case headingRe.MatchString(line):
			// Headings separate blocks but carry no prose sentences.
			flush()
		case isCitationOnly(trimmed):
			if current == nil {
				current = &block{startLine: lineNo}
			}
			current.lines = append(current.lines, trimmed)
		case bulletRe.MatchString(line) || numberedRe.MatchString(line):
			flush()
			current = &block{startLine: lineNo}
			current.lines = append(current.lines, stripListMarker(line))
		default:
			if current == nil {
				current = &block{startLine: lineNo}
			}
			current.lines = append(current.lines, trimmed)
		}
	}
	flush()

	return blocks
}

func stripListMarker(line string) string {
	if loc := bulletRe.FindStringIndex(line); loc != nil {
		return strings.TrimSpace(line[loc[1]:])
	}
	if loc := numberedRe.FindStringIndex(line); loc != nil {
		return strings.TrimSpace(line[loc[1]:])
	}
	return strings.TrimSpace(line)
}

// isCitationOnly reports whether text contains citation markers and no other
// alphanumeric content.
func isCitationOnly(text string) bool {
	if !citationRe.MatchString(text) {
		return false
	}
	rest := citationRe.ReplaceAllString(text, "")
	return !alnumRe.MatchString(rest)
}

// splitFragments splits block text into sentence fragments on sentence-ending
// punctuation followed by whitespace. Punctuation stays with the earlier
// fragment.
func splitFragments(text string) []string {
	var fragments []string
	var current strings.Builder

	runes := []rune(text)
	for i, r := range runes {
		current.WriteRune(r)
		if r == '.' || r == '!' || r == '?' {
			if i+1 < len(runes) && (runes[i+1] == ' ' || runes[i+1] == '\t') {
				frag := strings.TrimSpace(current.String())
				if frag != "" {
					fragments = append(fragments, frag)
				}
				current.Reset()
			}
		}
	}
	if frag := strings.TrimSpace(current.String()); frag != "" {
		fragments = append(fragments, frag)
	}

	return fragments
}

// mergeFragments re-joins adjacent fragments when the earlier one ends in a
// recognized abbreviation or the later one is citation-markers-only.
func mergeFragments(fragments []string) []string {
	var merged []string
	for _, frag := range fragments {
		if len(merged) > 0 {
			prev := merged[len(merged)-1]
			if endsWithAbbreviation(prev) || isCitationOnly(frag) {
				merged[len(merged)-1] = prev + " " + frag
				continue
			}
		}
		merged = append(merged, frag)
	}
	return merged
}

func endsWithAbbreviation(fragment string) bool {
	fields := strings.Fields(fragment)
	if len(fields) == 0 {
		return false
	}
	last := strings.ToLower(fields[len(fields)-1])
	// Strip leading punctuation such as "(" in "(e.g." and trailing closers
	// such as ")" in "e.g.)".
	last = strings.TrimLeft(last, `([{"'`)
	last = strings.TrimRight(last, `)]}"'`)
	_, ok := abbreviations[last]
	return ok
}

// emitFragments filters fragments, reattaches leading citation markers to the
// previously emitted sentence, and resolves per-sentence citations.
func emitFragments(out *[]CitedSentence, fragments []string, lineNo int, blockCitations []string) {
	for _, frag := range fragments {
		// Leading citation markers with nothing in front of them belong to
		// the previous sentence, not a new one.
		var reattached []string
		if m := leadingCitationsRe.FindStringSubmatch(frag); m != nil && len(*out) > 0 {
			prev := &(*out)[len(*out)-1]
			prev.Text = strings.TrimSpace(prev.Text + " " + strings.TrimSpace(m[1]))
			reattached = ExtractCitations(m[1])
			prev.CitationIDs = mergeIDs(prev.CitationIDs, reattached)
			frag = strings.TrimSpace(frag[len(m[0]):])
			if frag == "" || !alnumRe.MatchString(citationRe.ReplaceAllString(frag, "")) {
				continue
			}
		}

		if !alnumRe.MatchString(frag) {
			continue
		}
		if bareLinkRe.MatchString(frag) || biblioRe.MatchString(frag) {
			continue
		}

		citations := ExtractCitations(frag)
		if len(citations) == 0 {
			// Bullet items often cite once for the whole line. Markers
			// already reattached to the previous sentence are spent.
			citations = subtractIDs(blockCitations, reattached)
		}

		*out = append(*out, CitedSentence{
			LineNo:      lineNo,
			Text:        frag,
			CitationIDs: citations,
		})
	}
}

// ExtractCitations returns the [S:ID] citation ids found in text, in order,
// deduplicated.
func ExtractCitations(text string) []string {
	var ids []string
	seen := make(map[string]bool)
	for _, m := range citationRe.FindAllStringSubmatch(text, -1) {
		if !seen[m[1]] {
			seen[m[1]] = true
			ids = append(ids, m[1])
		}
	}
	return ids
}

func subtractIDs(ids, remove []string) []string {
	if len(remove) == 0 {
		return append([]string(nil), ids...)
	}
	drop := make(map[string]bool, len(remove))
	for _, id := range remove {
		drop[id] = true
	}
	var out []string
	for _, id := range ids {
		if !drop[id] {
			out = append(out, id)
		}
	}
	return out
}

func mergeIDs(existing, add []string) []string {
	seen := make(map[string]bool, len(existing))
	for _, id := range existing {
		seen[id] = true
	}
	for _, id := range add {
		if !seen[id] {
			seen[id] = true
			existing = append(existing, id)
		}
	}
	return existing
}
