package askpod

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
)

// Pod bundles the shared resources a session needs: the chat client, the
// agent and an optional storage backend.
type Pod struct {
	llm     LLM
	storage Storage
	agent   *Agent
	logger  *slog.Logger
}

// NewPod constructs a new Pod with the given resources. storage may be nil.
func NewPod(llm LLM, storage Storage, ag *Agent) *Pod {
	return &Pod{
		llm:     llm,
		storage: storage,
		agent:   ag,
		logger:  slog.Default(),
	}
}

// NewSession creates a new conversation session.
func (p *Pod) NewSession(ctx context.Context) *Session {
	return NewSession(ctx, p.llm, p.agent, p.storage)
}

// Ask runs a single question through a fresh session and returns the final
// answer text. Any error response from the agent aborts the run.
func (p *Pod) Ask(ctx context.Context, question string) (string, error) {
	session := p.NewSession(ctx)
	defer session.Close()

	session.In(question)

	// Always drain until the end response so the session goroutine can finish.
	var answer strings.Builder
	var runErr error
	for {
		response := session.Out()
		switch response.Type {
		case ResponseTypePartialText:
			answer.WriteString(response.Content)
		case ResponseTypeStatus:
			p.logger.Info("Status", "message", response.Content)
		case ResponseTypeError:
			runErr = fmt.Errorf("agent run failed: %s", response.Content)
		case ResponseTypeEnd:
			if runErr != nil {
				return "", runErr
			}
			return answer.String(), nil
		}
	}
}
