package askpod

import (
	"context"
	"fmt"

	"github.com/invopop/jsonschema"
	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
	"github.com/openai/openai-go/packages/ssestream"
)

// Define a custom type for context keys
type ContextKey string

// LLM defines the minimal contract required by the agent runtime to
// interact with a language-model provider. Implementations may add
// additional helper methods but only the operations below are relied
// upon by the rest of the codebase.
type LLM interface {
	// New issues a non-streaming chat completion request.
	New(ctx context.Context, params openai.ChatCompletionNewParams) (*openai.ChatCompletion, error)

	// NewStreaming issues a streaming chat completion request, returning
	// an ssestream.Stream to consume the chunks.
	NewStreaming(ctx context.Context, params openai.ChatCompletionNewParams) *ssestream.Stream[openai.ChatCompletionChunk]

	// Model returns the model name requests should be issued against.
	Model() string
}

// OpenAILLM talks to an OpenAI-compatible chat completion endpoint.
type OpenAILLM struct {
	model  string
	client openai.Client
}

var _ LLM = &OpenAILLM{}

// NewLLM constructs the chat client from an explicit Config. It fails when
// the API key is absent so that misconfiguration surfaces before any child
// process is launched.
func NewLLM(cfg *Config) (*OpenAILLM, error) {
	if cfg.OpenAIAPIKey == "" {
		return nil, fmt.Errorf("constructing LLM client: %w", ErrMissingAPIKey)
	}
	opts := []option.RequestOption{option.WithAPIKey(cfg.OpenAIAPIKey)}
	if cfg.OpenAIBaseURL != "" {
		opts = append(opts, option.WithBaseURL(cfg.OpenAIBaseURL))
	}
	model := cfg.Model
	if model == "" {
		model = DefaultModel
	}
	return &OpenAILLM{
		model:  model,
		client: openai.NewClient(opts...),
	}, nil
}

func (c *OpenAILLM) Model() string {
	return c.model
}

func (c *OpenAILLM) New(ctx context.Context, params openai.ChatCompletionNewParams) (*openai.ChatCompletion, error) {
	return c.client.Chat.Completions.New(ctx, params)
}

func (c *OpenAILLM) NewStreaming(ctx context.Context, params openai.ChatCompletionNewParams) *ssestream.Stream[openai.ChatCompletionChunk] {
	return c.client.Chat.Completions.NewStreaming(ctx, params)
}

// GenerateSchema reflects a Go struct into a JSON schema suitable for tool
// parameter declarations.
func GenerateSchema[T any]() *jsonschema.Schema {
	reflector := jsonschema.Reflector{
		AllowAdditionalProperties: false,
		DoNotReference:            true,
	}
	var v T
	return reflector.Reflect(v)
}
