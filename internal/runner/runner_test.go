package runner

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/iftachshalev/shalev-assist/internal/provider"
	"github.com/iftachshalev/shalev-assist/internal/tools"
	"github.com/iftachshalev/shalev-assist/internal/types"
	"github.com/iftachshalev/shalev-assist/internal/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type shout struct {
	Text string `json:"text"`
}

func (s *shout) Run(ctx context.Context, env *tools.Env) string {
	return fmt.Sprintf("%s!", s.Text)
}

func newSession(t *testing.T, llm provider.LLM, events *[]Event) *Session {
	t.Helper()
	registry, err := tools.NewRegistry(tools.Tool{Description: "Shout text.", Args: &shout{}})
	require.NoError(t, err)
	env := &tools.Env{Playground: t.TempDir(), Logger: utils.NilLogger()}
	return NewSession(llm, registry, env, Options{
		SystemPrompt: "be helpful",
		Logger:       utils.NilLogger(),
		OnEvent: func(e Event) {
			*events = append(*events, e)
		},
	})
}

func TestTurnDirectReply(t *testing.T) {
	llm := &provider.MockLLM{Responses: []types.Message{
		types.NewAssistantMessage("hello there", nil),
	}}
	var events []Event
	session := newSession(t, llm, &events)

	answer, err := session.Turn(context.Background(), "hi")
	require.NoError(t, err)

	assert.Equal(t, "hello there", answer.Content)
	require.Len(t, llm.Calls, 1, "a direct reply needs no second call")
	assert.True(t, llm.Calls[0].ToolsOffered)

	msgs := session.Messages()
	require.Len(t, msgs, 3)
	assert.Equal(t, types.System, msgs[0].Role)
	assert.Equal(t, types.User, msgs[1].Role)
	assert.Equal(t, "hello there", msgs[2].Content)

	require.Len(t, events, 1)
	_, ok := events[0].Message()
	assert.True(t, ok)
}

func TestTurnToolCallsInOrder(t *testing.T) {
	calls := []types.ToolCall{
		{ID: "call_1", Name: "shout", Args: `{"text":"one"}`},
		{ID: "call_2", Name: "shout", Args: `{"text":"two"}`},
		{ID: "call_3", Name: "shout", Args: `{"text":"three"}`},
	}
	llm := &provider.MockLLM{Responses: []types.Message{
		types.NewAssistantMessage("", calls),
		types.NewAssistantMessage("done", nil),
	}}
	var events []Event
	session := newSession(t, llm, &events)

	answer, err := session.Turn(context.Background(), "shout three times")
	require.NoError(t, err)
	assert.Equal(t, "done", answer.Content)

	require.Len(t, llm.Calls, 2)
	assert.True(t, llm.Calls[0].ToolsOffered)
	assert.False(t, llm.Calls[1].ToolsOffered)

	// system, user, assistant with calls, three tool turns
	second := llm.Calls[1].Messages
	require.Len(t, second, 6)
	assert.Len(t, second[2].ToolCalls, 3)
	want := []string{"one!", "two!", "three!"}
	for i, msg := range second[3:] {
		assert.Equal(t, types.Tool, msg.Role)
		assert.Equal(t, calls[i].ID, msg.ID)
		assert.Equal(t, want[i], msg.Content)
	}

	var results []string
	for _, e := range events {
		if r, ok := e.ToolResult(); ok {
			results = append(results, r.Content)
		}
	}
	assert.Equal(t, want, results)
	assert.Len(t, session.Messages(), 7)
}

func TestTurnUnknownTool(t *testing.T) {
	llm := &provider.MockLLM{Responses: []types.Message{
		types.NewAssistantMessage("", []types.ToolCall{{ID: "c1", Name: "shuot", Args: "{}"}}),
		types.NewAssistantMessage("sorry", nil),
	}}
	var events []Event
	session := newSession(t, llm, &events)

	_, err := session.Turn(context.Background(), "go")
	require.NoError(t, err)

	tool := llm.Calls[1].Messages[3]
	assert.Equal(t, types.Tool, tool.Role)
	assert.Contains(t, tool.Content, "Unknown tool: shuot")
}

func TestTurnMalformedArguments(t *testing.T) {
	llm := &provider.MockLLM{Responses: []types.Message{
		types.NewAssistantMessage("", []types.ToolCall{{ID: "c1", Name: "shout", Args: "{not json"}}),
		types.NewAssistantMessage("ok", nil),
	}}
	var events []Event
	session := newSession(t, llm, &events)

	_, err := session.Turn(context.Background(), "go")
	require.NoError(t, err)
	assert.Contains(t, llm.Calls[1].Messages[3].Content, "Error: invalid arguments for shout")
}

func TestTurnModelFailure(t *testing.T) {
	llm := &provider.MockLLM{Err: provider.ErrNoChoices}
	var events []Event
	session := newSession(t, llm, &events)

	_, err := session.Turn(context.Background(), "hi")
	require.Error(t, err)
	assert.True(t, errors.Is(err, provider.ErrNoChoices))
	assert.Empty(t, events)
}

func TestTurnDropsNestedToolCalls(t *testing.T) {
	call := types.ToolCall{ID: "c1", Name: "shout", Args: `{"text":"a"}`}
	llm := &provider.MockLLM{Responses: []types.Message{
		types.NewAssistantMessage("", []types.ToolCall{call}),
		types.NewAssistantMessage("final", []types.ToolCall{{ID: "c2", Name: "shout"}}),
	}}
	var events []Event
	session := newSession(t, llm, &events)

	answer, err := session.Turn(context.Background(), "go")
	require.NoError(t, err)
	assert.Empty(t, answer.ToolCalls)
	last := session.Messages()[len(session.Messages())-1]
	assert.Equal(t, "final", last.Content)
	assert.Empty(t, last.ToolCalls)
}

func TestEventAccessors(t *testing.T) {
	call := toolCallEvent(types.ToolCall{ID: "x", Name: "n"})
	if c, ok := call.ToolCall(); !ok || c.Name != "n" {
		t.Fatalf("tool call accessor failed")
	}
	if _, ok := call.Message(); ok {
		t.Fatalf("tool call event should not carry a message")
	}

	result := toolEvent(ToolResult{Name: "n", Content: "c", ToolCallID: "x"})
	if r, ok := result.ToolResult(); !ok || r.Content != "c" {
		t.Fatalf("tool result accessor failed")
	}

	msg := messageEvent(types.NewAssistantMessage("hi", nil))
	if m, ok := msg.Message(); !ok || m.Content != "hi" {
		t.Fatalf("message accessor failed")
	}
}

func TestTurnDuplicateOrEmptyCallIDs(t *testing.T) {
	for name, ids := range map[string][]string{
		"empty":    {"", ""},
		"repeated": {"call_1", "call_1"},
	} {
		t.Run(name, func(t *testing.T) {
			llm := &provider.MockLLM{Responses: []types.Message{
				types.NewAssistantMessage("", []types.ToolCall{
					{ID: ids[0], Name: "shout", Args: `{"text":"a"}`},
					{ID: ids[1], Name: "shout", Args: `{"text":"b"}`},
				}),
				types.NewAssistantMessage("done", nil),
			}}
			var events []Event
			session := newSession(t, llm, &events)

			answer, err := session.Turn(context.Background(), "go")
			require.NoError(t, err)
			assert.Equal(t, "done", answer.Content)

			second := llm.Calls[1].Messages
			require.Len(t, second, 5)
			calls := second[2].ToolCalls
			require.Len(t, calls, 2)
			assert.NotEmpty(t, calls[0].ID)
			assert.NotEqual(t, calls[0].ID, calls[1].ID)
			assert.Equal(t, calls[0].ID, second[3].ID)
			assert.Equal(t, "a!", second[3].Content)
			assert.Equal(t, calls[1].ID, second[4].ID)
			assert.Equal(t, "b!", second[4].Content)
		})
	}
}
