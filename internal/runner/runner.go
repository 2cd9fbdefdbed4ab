// Package runner drives one tool-calling conversation against an LLM.
package runner

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/iftachshalev/shalev-assist/internal/provider"
	"github.com/iftachshalev/shalev-assist/internal/tools"
	"github.com/iftachshalev/shalev-assist/internal/types"
)

// Options configures a Session.
type Options struct {
	SystemPrompt string
	Logger       *slog.Logger
	// OnEvent observes tool calls, tool results and final answers in the
	// order they happen. It may be nil.
	OnEvent func(Event)
}

// Session holds the conversation log of one tool chat.
type Session struct {
	llm      provider.LLM
	registry *tools.Registry
	env      *tools.Env
	conv     *types.Conversation
	logger   *slog.Logger
	onEvent  func(Event)
}

// NewSession starts a conversation seeded with opts.SystemPrompt.
func NewSession(llm provider.LLM, registry *tools.Registry, env *tools.Env, opts Options) *Session {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &Session{
		llm:      llm,
		registry: registry,
		env:      env,
		conv:     types.NewConversation(opts.SystemPrompt),
		logger:   logger,
		onEvent:  opts.OnEvent,
	}
}

// Messages returns a copy of the conversation so far.
func (s *Session) Messages() []types.Message {
	return s.conv.Messages()
}

func (s *Session) emit(e Event) {
	if s.onEvent != nil {
		s.onEvent(e)
	}
}

// Turn processes one user line. The model is offered the tool catalog; if it
// asks for tools they run in request order and a second call, without tools,
// produces the answer. The returned message is the answer shown to the user.
// A model failure is returned as an error.
func (s *Session) Turn(ctx context.Context, input string) (types.Message, error) {
	if err := s.conv.Append(types.NewUserMessage(input)); err != nil {
		return types.Message{}, err
	}

	s.logger.Debug("calling model with tools",
		"message_count", s.conv.Len(),
		"num_tools", len(s.registry.Names()))
	reply, err := s.llm.Complete(ctx, s.conv.Messages(), s.registry)
	if err != nil {
		return types.Message{}, fmt.Errorf("model call failed: %w", err)
	}

	if len(reply.ToolCalls) == 0 {
		s.logger.Info("assistant response completed", "content_length", len(reply.Content))
		return s.answer(reply)
	}

	reply.ToolCalls = uniqueCallIDs(reply.ToolCalls)
	if err := s.conv.Append(reply); err != nil {
		return types.Message{}, err
	}
	s.logger.Info("processing tool calls", "tool_call_count", len(reply.ToolCalls))

	for _, call := range reply.ToolCalls {
		s.emit(toolCallEvent(call))
		s.logger.Debug("executing tool",
			"tool_name", call.Name,
			"tool_call_id", call.ID,
			"args_length", len(call.Args))

		output := s.registry.Execute(ctx, s.env, call.Name, call.Args)
		if err := s.conv.Append(types.NewToolMessage(call.ID, call.Name, output)); err != nil {
			return types.Message{}, err
		}
		s.emit(toolEvent(ToolResult{Name: call.Name, Content: output, ToolCallID: call.ID}))
	}

	if pending := s.conv.Pending(); len(pending) > 0 {
		return types.Message{}, fmt.Errorf("tool calls left unanswered: %v", pending)
	}

	s.logger.Debug("calling model for final answer", "message_count", s.conv.Len())
	final, err := s.llm.Complete(ctx, s.conv.Messages(), nil)
	if err != nil {
		return types.Message{}, fmt.Errorf("model call failed: %w", err)
	}
	if len(final.ToolCalls) > 0 {
		// Tools are one level deep; further requests are dropped.
		s.logger.Warn("ignoring tool calls in final answer", "tool_call_count", len(final.ToolCalls))
	}
	return s.answer(types.NewAssistantMessage(final.Content, nil))
}

// uniqueCallIDs gives every call an ID distinct from the others in the turn.
// Some OpenAI compatible servers return empty or repeated IDs.
func uniqueCallIDs(calls []types.ToolCall) []types.ToolCall {
	out := make([]types.ToolCall, len(calls))
	seen := make(map[string]bool, len(calls))
	for i, call := range calls {
		if call.ID == "" || seen[call.ID] {
			call.ID = "call_" + uuid.NewString()
		}
		seen[call.ID] = true
		out[i] = call
	}
	return out
}

func (s *Session) answer(msg types.Message) (types.Message, error) {
	if err := s.conv.Append(msg); err != nil {
		return types.Message{}, err
	}
	s.emit(messageEvent(msg))
	return msg, nil
}
