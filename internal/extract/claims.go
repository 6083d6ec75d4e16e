// Package extract derives typed claims from parsed sentence units using
// keyword and pattern heuristics. It is the bundled default for the claim
// extraction seam; callers may supply pre-extracted claims instead.
package extract

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/medpipe/draftgate/internal/model"
	"github.com/medpipe/draftgate/internal/textunit"
)

var (
	// doseRe captures "50 mg", "0.5 mg/kg", "10 mg/kg/day" and similar
	doseRe = regexp.MustCompile(`(?i)\b(\d+(?:[.,]\d+)?)\s*((?:mg|g|mcg|µg|ug|ml|l|iu|u|mmol|meq)(?:/[a-z%]+)*)\b`)

	numberRe = regexp.MustCompile(`\d+(?:[.,]\d+)?`)

	thresholdRe = regexp.MustCompile(`(?i)\b(greater than|less than|more than|fewer than|at least|at most|above|below|over|under|exceeds?)\b|[<>≥≤]`)

	stepRe = regexp.MustCompile(`(?i)^(step\s+\d+|first|second|third|then|next|finally)\b`)
)

var (
	contraindicationTerms = []string{"contraindicated", "contraindication", "do not", "must not", "should not", "avoid in", "never use"}
	redFlagTerms          = []string{"red flag", "seek immediate", "call emergency", "refer immediately", "medical emergency", "warning sign"}
	recommendationTerms   = []string{"recommended", "should", "consider", "advised", "preferred"}
)

// ClaimExtractor extracts typed claims from cited sentences
type ClaimExtractor struct{}

// NewClaimExtractor creates a claim extractor.
func NewClaimExtractor() *ClaimExtractor {
	return &ClaimExtractor{}
}

// Extract classifies each sentence into at most one claim. Sentences that
// match no heuristic produce no claim. Claim ids are stable per pass
// (c001, c002, ...), and declared sources come from the sentence citations.
func (e *ClaimExtractor) Extract(sentences []textunit.CitedSentence) []model.Claim {
	var claims []model.Claim
	for _, sentence := range sentences {
		kind, confidence, ok := classify(sentence.Text)
		if !ok {
			continue
		}

		claim := model.Claim{
			ID:                fmt.Sprintf("c%03d", len(claims)+1),
			Kind:              kind,
			Text:              sentence.Text,
			DeclaredSourceIDs: append([]string(nil), sentence.CitationIDs...),
			LineNumber:        sentence.LineNo,
			Confidence:        confidence,
		}

		switch kind {
		case model.ClaimDose:
			if m := doseRe.FindStringSubmatch(sentence.Text); m != nil {
				claim.NormalizedValue = strings.ToLower(strings.ReplaceAll(m[1], ",", ".") + m[2])
				claim.Unit = strings.ToLower(m[2])
			}
		case model.ClaimThreshold:
			if m := numberRe.FindString(sentence.Text); m != "" {
				claim.NormalizedValue = strings.ReplaceAll(m, ",", ".")
			}
		}

		claims = append(claims, claim)
	}
	return dedupe(claims)
}

// classify picks the claim kind by precedence: safety-relevant kinds win over
// generic ones.
func classify(text string) (model.ClaimKind, float64, bool) {
	lower := strings.ToLower(text)

	if containsAny(lower, contraindicationTerms) {
		return model.ClaimContraindication, 0.8, true
	}
	if containsAny(lower, redFlagTerms) {
		return model.ClaimRedFlag, 0.8, true
	}
	if doseRe.MatchString(text) {
		return model.ClaimDose, 0.9, true
	}
	if thresholdRe.MatchString(text) && numberRe.MatchString(text) {
		return model.ClaimThreshold, 0.7, true
	}
	if stepRe.MatchString(strings.TrimSpace(text)) {
		return model.ClaimAlgorithmStep, 0.6, true
	}
	if containsAny(lower, recommendationTerms) {
		return model.ClaimRecommendation, 0.6, true
	}
	return "", 0, false
}

func containsAny(lower string, terms []string) bool {
	for _, term := range terms {
		if strings.Contains(lower, term) {
			return true
		}
	}
	return false
}

// dedupe drops claims whose text already appeared, keeping the first.
func dedupe(claims []model.Claim) []model.Claim {
	seen := make(map[string]bool, len(claims))
	var unique []model.Claim
	for _, claim := range claims {
		key := strings.ToLower(strings.TrimSpace(claim.Text))
		if !seen[key] {
			seen[key] = true
			unique = append(unique, claim)
		}
	}
	return unique
}
