// Package cache provides tiered caching for drafter responses, so repeated
// reviews of an unchanged bundle do not re-bill the generation API.
package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"time"
)

// Cache defines the interface for caching
type Cache interface {
	Get(key string) ([]byte, bool)
	Set(key string, value []byte, ttl time.Duration) error
	Delete(key string) error
	Clear() error
}

// Key derives a cache key from the provider, model and full prompt. Any
// change to the prompt (sources, guidance, prior draft) produces a new key.
func Key(provider, model, prompt string) string {
	hash := sha256.Sum256([]byte(provider + "\x00" + model + "\x00" + prompt))
	return "draftgate:v1:" + hex.EncodeToString(hash[:])
}
