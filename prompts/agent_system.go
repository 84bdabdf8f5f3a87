package prompts

// AgentSystemPromptData contains data for the agent system prompt template.
type AgentSystemPromptData struct {
	MainAgentSystemPrompt string
	ToolNames             []string
}

// AgentSystemPromptTemplate is the template for the agent's system prompt.
const AgentSystemPromptTemplate = `
{{ .MainAgentSystemPrompt }}

{{ if .ToolNames }}You should use the tools made available to you to answer the user's question. Prefer calling a tool over computing or guessing the result yourself. The tools available are: {{ formatToolNames .ToolNames }}.{{ end }}

When no further tool call is needed, reply with the final answer as plain text.`

// AgentSystemPrompt creates the agent system prompt by applying the provided data.
func AgentSystemPrompt(data AgentSystemPromptData) (string, error) {
	return generateFromTemplate(AgentSystemPromptTemplate, data)
}
