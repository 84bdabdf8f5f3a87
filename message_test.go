package askpod

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMessageListAddAndLen(t *testing.T) {
	ml := NewMessageList()
	assert.Equal(t, 0, ml.Len())

	ml.Add(UserMessage("What is 2 + 2?"))
	ml.Add(AssistantMessage("4"))
	assert.Equal(t, 2, ml.Len())
}

func TestAddFirstDeveloperMessage(t *testing.T) {
	ml := NewMessageList(UserMessage("hello"))
	ml.AddFirstDeveloperMessage(DeveloperMessage("be brief"))

	require.Equal(t, 2, ml.Len())
	assert.NotNil(t, ml.All()[0].OfDeveloper)
	assert.NotNil(t, ml.All()[1].OfUser)
}

func TestAddFirstDeveloperMessagePanicsOnWrongRole(t *testing.T) {
	ml := NewMessageList()
	assert.Panics(t, func() {
		ml.AddFirstDeveloperMessage(UserMessage("not a developer message"))
	})
}

func TestCloneIsIndependent(t *testing.T) {
	ml := NewMessageList(UserMessage("one"))
	cloned := ml.Clone()
	cloned.Add(UserMessage("two"))

	assert.Equal(t, 1, ml.Len())
	assert.Equal(t, 2, cloned.Len())
}

func TestLastAssistantText(t *testing.T) {
	ml := NewMessageList()
	assert.Empty(t, ml.LastAssistantText())

	ml.Add(UserMessage("What is 2 + 2?"))
	ml.Add(AssistantMessage("2 + 2 = 4"))
	ml.Add(UserMessage("thanks"))

	assert.Equal(t, "2 + 2 = 4", ml.LastAssistantText())
}
