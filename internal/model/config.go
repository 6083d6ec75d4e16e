package model

import "time"

// Config holds the full runtime configuration
type Config struct {
	Binder  BinderConfig  `yaml:"binder" json:"binder"`
	Review  ReviewConfig  `yaml:"review" json:"review"`
	Drafter DrafterConfig `yaml:"drafter" json:"drafter"`
	Cache   CacheConfig   `yaml:"cache" json:"cache"`
	Output  OutputConfig  `yaml:"output" json:"output"`
}

// BinderConfig tunes claim-to-evidence binding
type BinderConfig struct {
	MinScore         float64 `yaml:"min_score" json:"min_score"`
	MaxLinksPerClaim int     `yaml:"max_links_per_claim" json:"max_links_per_claim"`
}

// ReviewConfig tunes the revision loop and recency window
type ReviewConfig struct {
	MaxIterations      int `yaml:"max_iterations" json:"max_iterations"`
	RecencyWindowYears int `yaml:"recency_window_years" json:"recency_window_years"`
	BatchConcurrency   int `yaml:"batch_concurrency" json:"batch_concurrency"`
}

// DrafterConfig configures the external text generator client
type DrafterConfig struct {
	Provider          string        `yaml:"provider" json:"provider"` // "openai", "file", "" = disabled
	Model             string        `yaml:"model" json:"model"`
	APIKey            string        `yaml:"-" json:"-"` // from environment only, never serialized
	BaseURL           string        `yaml:"base_url,omitempty" json:"base_url,omitempty"`
	Timeout           time.Duration `yaml:"timeout" json:"timeout"`
	MaxTokens         int           `yaml:"max_tokens" json:"max_tokens"`
	RequestsPerSecond float64       `yaml:"requests_per_second" json:"requests_per_second"`
	Burst             int           `yaml:"burst" json:"burst"`
	DraftFile         string        `yaml:"draft_file,omitempty" json:"draft_file,omitempty"` // for the file provider
	HTTPProxy         string        `yaml:"http_proxy,omitempty" json:"http_proxy,omitempty"`
	HTTPSProxy        string        `yaml:"https_proxy,omitempty" json:"https_proxy,omitempty"`
	NoProxy           string        `yaml:"no_proxy,omitempty" json:"no_proxy,omitempty"`
}

// CacheConfig configures drafter response caching
type CacheConfig struct {
	Enabled   bool          `yaml:"enabled" json:"enabled"`
	Dir       string        `yaml:"dir" json:"dir"`
	MemoryTTL time.Duration `yaml:"memory_ttl" json:"memory_ttl"`
	DiskTTL   time.Duration `yaml:"disk_ttl" json:"disk_ttl"`
}

// OutputConfig configures report rendering
type OutputConfig struct {
	Verbose       bool `yaml:"verbose" json:"verbose"`
	IncludeFooter bool `yaml:"include_footer" json:"include_footer"`
}

// DefaultConfig returns sensible defaults
func DefaultConfig() *Config {
	return &Config{
		Binder: BinderConfig{
			MinScore:         0.1,
			MaxLinksPerClaim: 3,
		},
		Review: ReviewConfig{
			MaxIterations:      3,
			RecencyWindowYears: 5,
			BatchConcurrency:   4,
		},
		Drafter: DrafterConfig{
			Provider:          "",
			Timeout:           60 * time.Second,
			MaxTokens:         4000,
			RequestsPerSecond: 1,
			Burst:             2,
		},
		Cache: CacheConfig{
			Enabled:   true,
			Dir:       "",
			MemoryTTL: 15 * time.Minute,
			DiskTTL:   24 * time.Hour,
		},
		Output: OutputConfig{
			Verbose:       false,
			IncludeFooter: true,
		},
	}
}
