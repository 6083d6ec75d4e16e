package drafter

import (
	"testing"

	"github.com/medpipe/draftgate/internal/model"
)

func TestNewFileProvider(t *testing.T) {
	d, err := New(model.DrafterConfig{Provider: "file", DraftFile: "draft.md"}, model.CacheConfig{})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if d.Name() != "file" {
		t.Errorf("name = %s", d.Name())
	}
}

func TestNewFileProviderRequiresDraftFile(t *testing.T) {
	if _, err := New(model.DrafterConfig{Provider: "file"}, model.CacheConfig{}); err == nil {
		t.Errorf("expected error without draft_file")
	}
}

func TestNewRejectsMissingAndUnknownProviders(t *testing.T) {
	if _, err := New(model.DrafterConfig{}, model.CacheConfig{}); err == nil {
		t.Errorf("expected error for empty provider")
	}
	if _, err := New(model.DrafterConfig{Provider: "carrier-pigeon"}, model.CacheConfig{}); err == nil {
		t.Errorf("expected error for unknown provider")
	}
}

func TestNewOpenAIProviderCachedByDefault(t *testing.T) {
	cfg := model.DrafterConfig{Provider: "openai", APIKey: "test-key", Model: "gpt-4o-mini"}

	d, err := New(cfg, model.CacheConfig{Enabled: true, Dir: t.TempDir()})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if _, ok := d.(*CachedDrafter); !ok {
		t.Errorf("expected cached drafter, got %T", d)
	}

	plain, err := New(cfg, model.CacheConfig{Enabled: false})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if _, ok := plain.(*CachedDrafter); ok {
		t.Errorf("cache disabled but drafter is cached")
	}
}
