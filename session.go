// Package askpod - session.go
// Provides the Session struct for per-question state, along with methods for
// handling the user message and producing agent outputs.
package askpod

import (
	"context"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	gonanoid "github.com/matoous/go-nanoid/v2"
)

// Session holds ephemeral conversation data & references to global resources.
// A session handles a single user message; the input channel exists so an
// interactive mode can be added without changing the shape of the loop.
type Session struct {
	ctx       context.Context
	cancel    context.CancelFunc
	closeOnce sync.Once

	inUserChannel  chan string
	outUserChannel chan Response

	llm     LLM
	agent   *Agent
	storage Storage
	state   *SessionState

	logger *slog.Logger
}

// NewSession constructs a session with references to shared LLM, agent and
// storage, but isolated state. storage may be nil, in which case completed
// runs are not persisted.
func NewSession(ctx context.Context, llm LLM, ag *Agent, storage Storage) *Session {
	sessionID, err := gonanoid.New()
	if err != nil {
		panic(err)
	}
	ctx, cancel := context.WithCancel(ctx)
	ctx = context.WithValue(ctx, ContextKey("sessionID"), sessionID)
	s := &Session{
		ctx:       ctx,
		cancel:    cancel,
		closeOnce: sync.Once{},

		inUserChannel:  make(chan string),
		outUserChannel: make(chan Response),

		llm:     llm,
		agent:   ag,
		storage: storage,
		state:   NewSessionState(),

		logger: slog.Default(),
	}
	go s.run()
	return s
}

func (s *Session) ID() string {
	return s.ctx.Value(ContextKey("sessionID")).(string)
}

// In processes incoming user messages. Could queue or immediately handle them.
func (s *Session) In(userMessage string) {
	s.inUserChannel <- userMessage
}

// Out retrieves the next message from the output channel, blocking until a message is available.
func (s *Session) Out() Response {
	response := <-s.outUserChannel
	return response
}

// Close ends the session lifecycle and releases any resources if needed.
func (s *Session) Close() {
	s.closeOnce.Do(func() {
		s.cancel()
		close(s.inUserChannel)
		close(s.outUserChannel)
	})
}

// run is the main loop for the session. It waits for the user message, hands
// it to the agent and forwards the agent's responses to the caller.
func (s *Session) run() {
	s.logger.Info("Session started", "sessionID", s.ID())
	defer s.Close()
	select {
	case <-s.ctx.Done():
		s.outUserChannel <- Response{Type: ResponseTypeEnd}
	case userMessage, ok := <-s.inUserChannel:
		if !ok {
			s.logger.Error("Session input channel closed")
			s.outUserChannel <- Response{Type: ResponseTypeEnd}
			return
		}

		s.state.MessageHistory.Add(UserMessage(userMessage))

		internalChannel := make(chan Response)
		go s.agent.Run(s.ctx, s.llm, s.state, internalChannel)

		failed := false
		for response := range internalChannel {
			s.outUserChannel <- response
			if response.Type == ResponseTypeError {
				failed = true
				break
			}
		}

		if !failed {
			s.persistRun(userMessage)
		}

		// Run method is done, send the end message
		s.outUserChannel <- Response{
			Type: ResponseTypeEnd,
		}
	}
}

// persistRun records the completed cycle when a storage backend is configured.
func (s *Session) persistRun(question string) {
	if s.storage == nil {
		return
	}
	run := &RunRecord{
		ID:           uuid.NewString(),
		SessionID:    s.ID(),
		Question:     question,
		Answer:       s.state.MessageHistory.LastAssistantText(),
		ToolNames:    strings.Join(s.agent.ToolNames(), ","),
		InputTokens:  s.state.InputTokens,
		OutputTokens: s.state.OutputTokens,
		CreatedAt:    time.Now(),
	}
	if err := s.storage.SaveRun(s.ctx, run); err != nil {
		s.logger.Error("Error saving run", "error", err)
	}
}
