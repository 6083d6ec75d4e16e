package drafter

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/medpipe/draftgate/internal/cache"
	"github.com/medpipe/draftgate/internal/model"
)

// New creates a drafter from configuration. Provider "openai" is wrapped
// with the response cache when caching is enabled; provider "file" serves a
// fixed draft and is never cached.
func New(cfg model.DrafterConfig, cacheCfg model.CacheConfig) (Drafter, error) {
	switch cfg.Provider {
	case "openai":
		d, err := NewOpenAIDrafter(cfg)
		if err != nil {
			return nil, err
		}
		if !cacheCfg.Enabled {
			return d, nil
		}
		return NewCachedDrafter(d, buildCache(cacheCfg), cfg.Model, cacheCfg.DiskTTL), nil
	case "file":
		if cfg.DraftFile == "" {
			return nil, fmt.Errorf("file drafter requires draft_file")
		}
		return NewFileDrafter(cfg.DraftFile), nil
	case "":
		return nil, fmt.Errorf("no drafter provider configured")
	default:
		return nil, fmt.Errorf("unknown drafter provider %q", cfg.Provider)
	}
}

func buildCache(cfg model.CacheConfig) cache.Cache {
	memory := cache.NewMemoryCache(cfg.MemoryTTL, 2*cfg.MemoryTTL)

	dir := cfg.Dir
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return memory
		}
		dir = filepath.Join(home, ".draftgate", "cache")
	}
	return cache.NewLayeredCache(memory, cache.NewDiskCache(dir, cfg.DiskTTL))
}
