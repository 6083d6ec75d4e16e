// Package keyword provides the shared token normalization used by the
// evidence binder and several lint rules: word/number tokens, lowercased,
// bilingual stopwords removed, short tokens dropped.
package keyword

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// tokenRe matches runs of letters or digits in any script
var tokenRe = regexp.MustCompile(`[\p{L}\p{N}]+`)

const minTokenLen = 2 // runes

// stopwords is the closed bilingual (English/Russian) stopword list.
// Append-only: removing entries changes binding scores for existing content.
var stopwords = map[string]struct{}{}

func init() {
	for _, w := range []string{
		// English
		"a", "an", "and", "are", "as", "at", "be", "but", "by", "for",
		"from", "has", "have", "if", "in", "into", "is", "it", "its",
		"may", "not", "of", "on", "or", "should", "that", "the", "their",
		"then", "this", "to", "was", "were", "when", "which", "will",
		"with", "within",
		// Russian
		"и", "в", "во", "не", "на", "но", "что", "как", "это", "для",
		"по", "при", "или", "от", "до", "из", "за", "его", "ее", "их",
		"быть", "если", "когда", "также", "может", "должен",
	} {
		stopwords[w] = struct{}{}
	}
}

// Extract returns the normalized keyword set of text. The result is a set:
// duplicates are collapsed, order is not meaningful.
func Extract(text string) map[string]struct{} {
	keywords := make(map[string]struct{})
	for _, tok := range tokenRe.FindAllString(text, -1) {
		tok = strings.ToLower(tok)
		if utf8.RuneCountInString(tok) < minTokenLen {
			continue
		}
		if _, stop := stopwords[tok]; stop {
			continue
		}
		keywords[tok] = struct{}{}
	}
	return keywords
}

// Overlap returns the number of keywords present in both sets.
func Overlap(a, b map[string]struct{}) int {
	if len(b) < len(a) {
		a, b = b, a
	}
	n := 0
	for k := range a {
		if _, ok := b[k]; ok {
			n++
		}
	}
	return n
}

// IsStopword reports whether the lowercased token is in the stopword list.
func IsStopword(tok string) bool {
	_, ok := stopwords[strings.ToLower(tok)]
	return ok
}
