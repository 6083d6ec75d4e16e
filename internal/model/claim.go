package model

// Claim represents a typed factual assertion extracted from a draft.
// Claims are created once per extraction pass and never mutated afterwards.
type Claim struct {
	ID                string    `json:"id"`
	Kind              ClaimKind `json:"kind"`
	Text              string    `json:"text"`
	NormalizedValue   string    `json:"normalized_value,omitempty"` // canonical value for dose/threshold comparison
	Unit              string    `json:"unit,omitempty"`             // declared unit, simple or "/"-compound
	DeclaredSourceIDs []string  `json:"declared_source_ids,omitempty"`
	LineNumber        int       `json:"line_number,omitempty"` // 1-based line in the draft
	Confidence        float64   `json:"confidence"`            // extraction confidence in [0,1]
}

// ClaimKind categorizes the nature of the claim
type ClaimKind string

const (
	ClaimDose             ClaimKind = "dose"             // Drug dosing statements
	ClaimThreshold        ClaimKind = "threshold"        // Numeric clinical thresholds
	ClaimRecommendation   ClaimKind = "recommendation"   // Should/should-not guidance
	ClaimContraindication ClaimKind = "contraindication" // When not to perform/administer
	ClaimRedFlag          ClaimKind = "red_flag"         // Warning signs requiring escalation
	ClaimAlgorithmStep    ClaimKind = "algorithm_step"   // Ordered procedure steps
)

// ValidKinds lists every claim kind in declaration order.
func ValidKinds() []ClaimKind {
	return []ClaimKind{
		ClaimDose,
		ClaimThreshold,
		ClaimRecommendation,
		ClaimContraindication,
		ClaimRedFlag,
		ClaimAlgorithmStep,
	}
}
