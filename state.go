package askpod

// SessionState tracks the conversation history and token usage for one run.
type SessionState struct {
	MessageHistory *MessageList
	InputTokens    int64
	OutputTokens   int64
}

func NewSessionState() *SessionState {
	return &SessionState{
		MessageHistory: NewMessageList(),
	}
}

// AddUsage accumulates token counts reported by a completed model call.
func (s *SessionState) AddUsage(inputTokens, outputTokens int64) {
	s.InputTokens += inputTokens
	s.OutputTokens += outputTokens
}
