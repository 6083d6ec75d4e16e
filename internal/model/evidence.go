package model

// EvidenceChunk is a segment of source text eligible to support a claim.
// Chunks are produced by upstream chunking and are read-only to this core.
type EvidenceChunk struct {
	ID            string     `json:"id"`
	SourceID      string     `json:"source_id"`
	Text          string     `json:"text"`
	IndexInSource int        `json:"index_in_source"`
	CharRange     *CharRange `json:"char_range,omitempty"`
}

// CharRange locates a chunk within its source document
type CharRange struct {
	Start int `json:"start"`
	End   int `json:"end"`
}

// BindingType classifies how a claim-to-evidence link was established
type BindingType string

const (
	// BindingKeyword marks links produced by keyword-overlap scoring.
	BindingKeyword BindingType = "keyword"
)

// ClaimEvidenceLink is a scored link from a claim to an evidence chunk.
// Links are created exclusively by the binder and never mutated.
type ClaimEvidenceLink struct {
	ClaimID         string      `json:"claim_id"`
	EvidenceChunkID string      `json:"evidence_chunk_id"`
	BindingType     BindingType `json:"binding_type"`
	Score           float64     `json:"score"` // always in [0,1]
}

// Source describes a supplied reference document. Exactly which date field is
// populated depends on the provider; consumers take the first non-empty one
// in the order Published, Updated, Accessed.
type Source struct {
	ID        string `json:"id" yaml:"id"`
	Title     string `json:"title,omitempty" yaml:"title,omitempty"`
	URL       string `json:"url,omitempty" yaml:"url,omitempty"`
	Published string `json:"published,omitempty" yaml:"published,omitempty"`
	Updated   string `json:"updated,omitempty" yaml:"updated,omitempty"`
	Accessed  string `json:"accessed,omitempty" yaml:"accessed,omitempty"`
	Text      string `json:"text,omitempty" yaml:"text,omitempty"` // raw source text, chunked upstream
	HTML      bool   `json:"html,omitempty" yaml:"html,omitempty"` // Text is HTML and needs tag stripping
}

// DateFields returns the source's date-like fields in match order.
func (s Source) DateFields() []string {
	return []string{s.Published, s.Updated, s.Accessed}
}
