package drafter

import (
	"context"
	"fmt"
	"os"
)

// FileDrafter serves a fixed draft from disk or memory. It backs offline
// check runs and tests, where the generation stage already happened
// elsewhere.
type FileDrafter struct {
	path    string
	content string
}

// NewFileDrafter creates a drafter reading the draft from path on each call.
func NewFileDrafter(path string) *FileDrafter {
	return &FileDrafter{path: path}
}

// NewStaticDrafter creates a drafter returning the given markdown verbatim.
func NewStaticDrafter(markdown string) *FileDrafter {
	return &FileDrafter{content: markdown}
}

// Name returns the provider name
func (d *FileDrafter) Name() string { return "file" }

// IsAvailable reports whether the backing draft exists
func (d *FileDrafter) IsAvailable(ctx context.Context) bool {
	if d.content != "" {
		return true
	}
	_, err := os.Stat(d.path)
	return err == nil
}

// Draft returns the backing draft. Guidance is ignored: a fixed draft cannot
// be revised, which makes the revision loop's stall detector kick in on the
// second pass.
func (d *FileDrafter) Draft(ctx context.Context, req Request) (*Response, error) {
	if d.content != "" {
		return &Response{Markdown: d.content}, nil
	}
	data, err := os.ReadFile(d.path)
	if err != nil {
		return nil, fmt.Errorf("read draft file: %w", err)
	}
	return &Response{Markdown: string(data)}, nil
}
