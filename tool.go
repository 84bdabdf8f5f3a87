// Package askpod - tool.go
// Defines the Tool interface the reasoning loop invokes.
package askpod

import (
	"context"

	"github.com/openai/openai-go"
)

type Tool interface {
	Name() string
	StatusMessage() string
	Description() string
	OpenAI() []openai.ChatCompletionToolParam
	Execute(ctx context.Context, args map[string]interface{}) (string, error)
}
