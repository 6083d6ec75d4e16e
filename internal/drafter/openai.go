package drafter

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	openai "github.com/sashabaranov/go-openai"

	"github.com/medpipe/draftgate/internal/model"
	"github.com/medpipe/draftgate/internal/util"
	"github.com/medpipe/draftgate/internal/worker"
)

// OpenAIDrafter generates drafts through the OpenAI Chat Completions API
type OpenAIDrafter struct {
	client  *openai.Client
	config  model.DrafterConfig
	limiter *worker.Limiter
}

// NewOpenAIDrafter creates an OpenAI-backed drafter.
func NewOpenAIDrafter(config model.DrafterConfig) (*OpenAIDrafter, error) {
	if config.APIKey == "" {
		return nil, fmt.Errorf("OpenAI API key is required")
	}

	clientConfig := openai.DefaultConfig(config.APIKey)
	if config.BaseURL != "" {
		clientConfig.BaseURL = config.BaseURL
	}
	clientConfig.HTTPClient = &http.Client{
		Timeout: config.Timeout,
		Transport: &http.Transport{
			Proxy: util.NewProxyFunc(config.HTTPProxy, config.HTTPSProxy, config.NoProxy),
		},
	}

	return &OpenAIDrafter{
		client:  openai.NewClientWithConfig(clientConfig),
		config:  config,
		limiter: worker.NewLimiter(config.RequestsPerSecond, config.Burst),
	}, nil
}

// Name returns the provider name
func (d *OpenAIDrafter) Name() string { return "openai" }

// IsAvailable checks that the API is reachable with the configured key
func (d *OpenAIDrafter) IsAvailable(ctx context.Context) bool {
	_, err := d.client.ListModels(ctx)
	return err == nil
}

// Draft generates a procedure draft
func (d *OpenAIDrafter) Draft(ctx context.Context, req Request) (*Response, error) {
	if err := d.limiter.Wait(ctx, d.Name()); err != nil {
		return nil, fmt.Errorf("rate limit wait: %w", err)
	}

	modelName := d.config.Model
	if modelName == "" {
		modelName = openai.GPT4oMini
	}
	maxTokens := d.config.MaxTokens
	if maxTokens == 0 {
		maxTokens = 4000
	}

	timeout := d.config.Timeout
	if timeout == 0 {
		timeout = 60 * time.Second
	}
	ctxWithTimeout, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	chatReq := openai.ChatCompletionRequest{
		Model: modelName,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleSystem,
				Content: "You write clinical procedure documentation in Markdown, citing only the supplied sources with [S:ID] markers.",
			},
			{
				Role:    openai.ChatMessageRoleUser,
				Content: BuildPrompt(req),
			},
		},
		MaxTokens:   maxTokens,
		Temperature: 0.2,
	}

	resp, err := d.client.CreateChatCompletion(ctxWithTimeout, chatReq)
	if err != nil {
		return nil, fmt.Errorf("OpenAI API error: %w", err)
	}
	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("no response from OpenAI")
	}

	return &Response{
		Markdown:   strings.TrimSpace(resp.Choices[0].Message.Content),
		TokensUsed: resp.Usage.TotalTokens,
	}, nil
}
