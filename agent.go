// Package askpod provides the main Agent orchestrator, which uses an LLM and Tools to answer questions.
package askpod

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/askpod/askpod/prompts"
	"github.com/openai/openai-go"
)

// DefaultMaxIterations caps how many times the loop may go back to the model
// after executing tool calls.
const DefaultMaxIterations = 10

func MessageWhenToolError(toolCallID string) openai.ChatCompletionMessageParamUnion {
	return openai.ToolMessage("Error occurred while running. Do not retry", toolCallID)
}

func MessageWhenToolErrorWithRetry(errorString string, toolCallID string) openai.ChatCompletionMessageParamUnion {
	return openai.ToolMessage(fmt.Sprintf("Error: %s.\nRetry", errorString), toolCallID)
}

// Agent alternates between asking the LLM what to do and executing the tool
// calls it requests, until the model produces a response with no tool calls.
type Agent struct {
	prompt        string
	tools         []Tool
	maxIterations int
	logger        *slog.Logger
}

// NewAgent creates an Agent with the given system prompt and tools.
func NewAgent(prompt string, tools []Tool) *Agent {
	return &Agent{
		prompt:        prompt,
		tools:         tools,
		maxIterations: DefaultMaxIterations,
		logger:        slog.Default(),
	}
}

func (a *Agent) GetLogger() *slog.Logger {
	return a.logger
}

func (a *Agent) SetLogger(logger *slog.Logger) {
	a.logger = logger
}

// SetMaxIterations overrides the tool loop iteration cap.
func (a *Agent) SetMaxIterations(n int) {
	if n > 0 {
		a.maxIterations = n
	}
}

func (a *Agent) GetTool(name string) (Tool, error) {
	for _, tool := range a.tools {
		if tool.Name() == name {
			return tool, nil
		}
	}
	return nil, fmt.Errorf("tool %s not found", name)
}

// ToolNames returns the names of all tools available to the agent.
func (a *Agent) ToolNames() []string {
	names := make([]string, 0, len(a.tools))
	for _, tool := range a.tools {
		names = append(names, tool.Name())
	}
	return names
}

// OpenAITools converts the agent's tools into the OpenAI tool-calling convention.
func (a *Agent) OpenAITools() []openai.ChatCompletionToolParam {
	tools := []openai.ChatCompletionToolParam{}
	for _, tool := range a.tools {
		tools = append(tools, tool.OpenAI()...)
	}
	return tools
}

// Run drives one question to a final answer. It streams partial text through
// outChan and closes it when done. Errors are reported as error responses and
// never retried here.
func (a *Agent) Run(ctx context.Context, llm LLM, state *SessionState, outChan chan<- Response) {
	defer close(outChan)

	systemPrompt, err := prompts.AgentSystemPrompt(prompts.AgentSystemPromptData{
		MainAgentSystemPrompt: a.prompt,
		ToolNames:             a.ToolNames(),
	})
	if err != nil {
		a.logger.Error("Error building system prompt", "error", err)
		outChan <- Response{Content: err.Error(), Type: ResponseTypeError}
		return
	}
	state.MessageHistory.AddFirstDeveloperMessage(DeveloperMessage(systemPrompt))

	for iteration := 0; iteration < a.maxIterations; iteration++ {
		params := openai.ChatCompletionNewParams{
			Messages: state.MessageHistory.All(),
			Model:    openai.ChatModel(llm.Model()),
			StreamOptions: openai.ChatCompletionStreamOptionsParam{
				IncludeUsage: openai.Bool(true),
			},
		}
		if tools := a.OpenAITools(); len(tools) > 0 {
			params.Tools = tools
		}

		stream := llm.NewStreaming(ctx, params)
		acc := openai.ChatCompletionAccumulator{}
		for stream.Next() {
			chunk := stream.Current()
			acc.AddChunk(chunk)
			if len(chunk.Choices) > 0 && chunk.Choices[0].Delta.Content != "" {
				outChan <- Response{
					Content: chunk.Choices[0].Delta.Content,
					Type:    ResponseTypePartialText,
				}
			}
		}
		streamErr := stream.Err()
		if closeErr := stream.Close(); closeErr != nil {
			a.logger.Error("Error closing completion stream", "error", closeErr)
		}
		if streamErr != nil {
			a.logger.Error("Error streaming completion", "error", streamErr)
			outChan <- Response{Content: streamErr.Error(), Type: ResponseTypeError}
			return
		}

		state.AddUsage(acc.Usage.PromptTokens, acc.Usage.CompletionTokens)

		if len(acc.Choices) == 0 {
			outChan <- Response{Content: "model returned no choices", Type: ResponseTypeError}
			return
		}
		message := acc.Choices[0].Message
		state.MessageHistory.Add(message.ToParam())

		if message.ToolCalls != nil && message.Content != "" {
			a.logger.Error("Expectation is that tool call and content shouldn't both be non-empty", "message", message)
		}

		// No tool calls means the streamed content was the final answer.
		if len(message.ToolCalls) == 0 {
			return
		}

		a.executeToolCalls(ctx, &message, state, outChan)
	}

	a.logger.Error("Tool call loop exceeded iteration cap", "maxIterations", a.maxIterations)
	outChan <- Response{
		Content: fmt.Sprintf("tool call loop exceeded %d iterations", a.maxIterations),
		Type:    ResponseTypeError,
	}
}

// executeToolCalls runs every requested tool call in parallel and appends one
// tool message per call to the history, so the next model request always sees
// a result for each pending call.
func (a *Agent) executeToolCalls(ctx context.Context, message *openai.ChatCompletionMessage, state *SessionState, outChan chan<- Response) {
	var wg sync.WaitGroup
	resultsChan := make(chan openai.ChatCompletionMessageParamUnion, len(message.ToolCalls))

	for _, toolCall := range message.ToolCalls {
		wg.Add(1)
		go func() {
			defer wg.Done()

			tool, err := a.GetTool(toolCall.Function.Name)
			if err != nil {
				a.logger.Error("Error getting tool", "error", err)
				resultsChan <- MessageWhenToolError(toolCall.ID)
				return
			}

			if tool.StatusMessage() != "" {
				outChan <- Response{
					Content: tool.StatusMessage(),
					Type:    ResponseTypeStatus,
				}
			}

			a.logger.Info("Tool", "tool", tool.Name(), "arguments", toolCall.Function.Arguments)
			arguments := map[string]interface{}{}
			if err := json.Unmarshal([]byte(toolCall.Function.Arguments), &arguments); err != nil {
				a.logger.Error("Error unmarshalling tool arguments", "error", err)
				resultsChan <- MessageWhenToolErrorWithRetry(err.Error(), toolCall.ID)
				return
			}

			output, err := tool.Execute(ctx, arguments)
			if err != nil {
				a.logger.Error("Error executing tool", "error", err)
				var ignErr *IgnorableError
				var retErr *RetryableError
				switch {
				case errors.As(err, &ignErr):
					resultsChan <- MessageWhenToolError(toolCall.ID)
				case errors.As(err, &retErr):
					resultsChan <- MessageWhenToolErrorWithRetry(err.Error(), toolCall.ID)
				default:
					resultsChan <- MessageWhenToolError(toolCall.ID)
				}
				return
			}

			resultsChan <- openai.ToolMessage(output, toolCall.ID)
		}()
	}

	go func() {
		wg.Wait()
		close(resultsChan)
	}()

	for result := range resultsChan {
		state.MessageHistory.Add(result)
	}
}
