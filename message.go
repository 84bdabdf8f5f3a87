package askpod

import (
	"fmt"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/packages/param"
)

func UserMessage(content string) openai.ChatCompletionMessageParamUnion {
	return openai.UserMessage(content)
}

func AssistantMessage(content string) openai.ChatCompletionMessageParamUnion {
	return openai.AssistantMessage(content)
}

func DeveloperMessage(content string) openai.ChatCompletionMessageParamUnion {
	return openai.DeveloperMessage(content)
}

// MessageList holds an ordered collection of chat messages to preserve the history.
type MessageList struct {
	Messages []openai.ChatCompletionMessageParamUnion
}

func NewMessageList(msgs ...openai.ChatCompletionMessageParamUnion) *MessageList {
	return &MessageList{
		Messages: msgs,
	}
}

func (ml *MessageList) Len() int {
	return len(ml.Messages)
}

// Add appends one or more new messages to the MessageList in a FIFO order.
func (ml *MessageList) Add(msgs ...openai.ChatCompletionMessageParamUnion) {
	ml.Messages = append(ml.Messages, msgs...)
}

// AddFirstDeveloperMessage prepends a developer message to the message list.
// It panics if the provided message is not a developer message.
func (ml *MessageList) AddFirstDeveloperMessage(msg openai.ChatCompletionMessageParamUnion) {
	if msg.OfDeveloper == nil {
		panic("AddFirstDeveloperMessage expects a DeveloperMessage")
	}
	ml.Messages = append([]openai.ChatCompletionMessageParamUnion{msg}, ml.Messages...)
}

func (ml *MessageList) All() []openai.ChatCompletionMessageParamUnion {
	return ml.Messages
}

// Clone returns a shallow copy of the MessageList.
func (ml *MessageList) Clone() *MessageList {
	cloned := make([]openai.ChatCompletionMessageParamUnion, len(ml.Messages))
	copy(cloned, ml.Messages)
	return &MessageList{Messages: cloned}
}

// LastAssistantText returns the text content of the most recent assistant
// message, or the empty string if there is none.
func (ml *MessageList) LastAssistantText() string {
	for i := len(ml.Messages) - 1; i >= 0; i-- {
		msg := ml.Messages[i]
		if msg.OfAssistant == nil {
			continue
		}
		if !param.IsOmitted(msg.OfAssistant.Content.OfString) {
			return msg.OfAssistant.Content.OfString.Value
		}
	}
	return ""
}

func (ml *MessageList) Clear() {
	ml.Messages = []openai.ChatCompletionMessageParamUnion{}
}

// PrintMessages is for debugging purposes
func (ml *MessageList) PrintMessages() {
	for _, msg := range ml.Messages {
		role := "unknown"
		content := ""

		switch {
		case msg.OfUser != nil:
			role = "user"
			if !param.IsOmitted(msg.OfUser.Content.OfString) {
				content = msg.OfUser.Content.OfString.Value
			}
		case msg.OfAssistant != nil:
			role = "assistant"
			if !param.IsOmitted(msg.OfAssistant.Content.OfString) {
				content = msg.OfAssistant.Content.OfString.Value
			}
			if len(msg.OfAssistant.ToolCalls) > 0 {
				content += "\nTool Calls:"
				for _, toolCall := range msg.OfAssistant.ToolCalls {
					content += fmt.Sprintf("\n- Function: %s", toolCall.Function.Name)
					content += fmt.Sprintf("\n  Arguments: %s", toolCall.Function.Arguments)
				}
			}
		case msg.OfDeveloper != nil:
			role = "developer"
			if !param.IsOmitted(msg.OfDeveloper.Content.OfString) {
				content = msg.OfDeveloper.Content.OfString.Value
			}
		case msg.OfTool != nil:
			role = "tool"
			if !param.IsOmitted(msg.OfTool.Content.OfString) {
				content = msg.OfTool.Content.OfString.Value
			}
		}

		fmt.Printf("Role: %s\nContent: %s\n\n", role, content)
	}
}
