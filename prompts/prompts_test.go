package prompts

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAgentSystemPromptWithTools(t *testing.T) {
	prompt, err := AgentSystemPrompt(AgentSystemPromptData{
		MainAgentSystemPrompt: "You are a calculator assistant.",
		ToolNames:             []string{"add", "multiply"},
	})
	require.NoError(t, err)

	assert.Contains(t, prompt, "You are a calculator assistant.")
	assert.Contains(t, prompt, "add, multiply")
}

func TestAgentSystemPromptWithoutTools(t *testing.T) {
	prompt, err := AgentSystemPrompt(AgentSystemPromptData{
		MainAgentSystemPrompt: "You are a helpful assistant.",
	})
	require.NoError(t, err)

	assert.Contains(t, prompt, "You are a helpful assistant.")
	assert.NotContains(t, prompt, "tools made available")
}
