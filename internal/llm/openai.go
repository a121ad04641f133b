package llm

import (
	"context"
	"errors"

	openai "github.com/sashabaranov/go-openai"
)

// DefaultModel is the instruct checkpoint the demo was built around.  Any
// OpenAI-compatible server (vLLM, TGI, Ollama) can host it.
const DefaultModel = "ibm-granite/granite-3.2-2b-instruct"

// Params controls a single generation call.
type Params struct {
	MaxNewTokens int
	Temperature  float32
}

// Client is the model provider used by the model-backed generator.  Generate
// sends a raw prompt and returns the decoded completion text, which may still
// contain the prompt.
type Client interface {
	Generate(ctx context.Context, prompt string, p Params) (string, error)
}

// OpenAIConfig selects the server and model for OpenAIClient.
type OpenAIConfig struct {
	APIKey  string
	BaseURL string
	Model   string
	// Echo asks the server to return the prompt in front of the completion,
	// the way a local causal-LM decode does.
	Echo bool
}

// OpenAIClient calls the text completions endpoint of an OpenAI-compatible
// API.  Sampling is always on; the temperature comes from Params.
type OpenAIClient struct {
	client *openai.Client
	model  string
	echo   bool
}

// NewOpenAIClient constructs an OpenAI-backed client.  An empty BaseURL keeps
// the library default and an empty Model falls back to DefaultModel.
func NewOpenAIClient(cfg OpenAIConfig) *OpenAIClient {
	oc := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		oc.BaseURL = cfg.BaseURL
	}
	model := cfg.Model
	if model == "" {
		model = DefaultModel
	}
	return &OpenAIClient{
		client: openai.NewClientWithConfig(oc),
		model:  model,
		echo:   cfg.Echo,
	}
}

// Generate requests one completion for prompt.
func (c *OpenAIClient) Generate(ctx context.Context, prompt string, p Params) (string, error) {
	if c.client == nil {
		return "", errors.New("openai client not initialized")
	}
	resp, err := c.client.CreateCompletion(ctx, openai.CompletionRequest{
		Model:       c.model,
		Prompt:      prompt,
		MaxTokens:   p.MaxNewTokens,
		Temperature: p.Temperature,
		Echo:        c.echo,
	})
	if err != nil {
		return "", err
	}
	if len(resp.Choices) == 0 {
		return "", nil
	}
	return resp.Choices[0].Text, nil
}
