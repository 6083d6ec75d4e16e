// Package source loads review bundles (procedure title, reference sources,
// optional pre-extracted claims and draft) and chunks source text into
// evidence chunks for the binder.
package source

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/medpipe/draftgate/internal/model"
)

// Bundle is the on-disk input for one review run
type Bundle struct {
	Title   string         `yaml:"title" json:"title"`
	Draft   string         `yaml:"draft,omitempty" json:"draft,omitempty"`         // inline prior draft, optional
	Sources []model.Source `yaml:"sources" json:"sources"`
	Claims  []model.Claim  `yaml:"claims,omitempty" json:"claims,omitempty"` // pre-extracted claims, optional
}

// Load reads a bundle from a YAML or JSON file, keyed off the extension.
func Load(path string) (*Bundle, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read bundle: %w", err)
	}

	var bundle Bundle
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		if err := json.Unmarshal(data, &bundle); err != nil {
			return nil, fmt.Errorf("parse bundle %s: %w", path, err)
		}
	default:
		if err := yaml.Unmarshal(data, &bundle); err != nil {
			return nil, fmt.Errorf("parse bundle %s: %w", path, err)
		}
	}

	if bundle.Title == "" {
		return nil, fmt.Errorf("bundle %s: title is required", path)
	}
	if len(bundle.Sources) == 0 {
		return nil, fmt.Errorf("bundle %s: at least one source is required", path)
	}
	seen := make(map[string]bool, len(bundle.Sources))
	for _, src := range bundle.Sources {
		if src.ID == "" {
			return nil, fmt.Errorf("bundle %s: source with empty id", path)
		}
		if seen[src.ID] {
			return nil, fmt.Errorf("bundle %s: duplicate source id %q", path, src.ID)
		}
		seen[src.ID] = true
	}

	return &bundle, nil
}

// Chunks converts every source's text into evidence chunks.
func (b *Bundle) Chunks() []model.EvidenceChunk {
	var chunks []model.EvidenceChunk
	for _, src := range b.Sources {
		chunks = append(chunks, ChunkSource(src)...)
	}
	return chunks
}
