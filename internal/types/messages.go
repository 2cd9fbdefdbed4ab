package types

import (
	"github.com/iftachshalev/shalev-assist/internal/utils"
	"github.com/openai/openai-go"
)

// ToolCall represents an invocation of a tool requested by the language model.
type ToolCall struct {
	ID   string
	Name string
	Args string
}

// ToOpenAI converts the tool call into the OpenAI SDK representation.
func (t ToolCall) ToOpenAI() openai.ChatCompletionMessageToolCallParam {
	return openai.ChatCompletionMessageToolCallParam{
		ID: t.ID,
		Function: openai.ChatCompletionMessageToolCallFunctionParam{
			Arguments: t.Args,
			Name:      t.Name,
		},
	}
}

// ToolCallFromOpenAI converts an OpenAI tool call into our internal type.
func ToolCallFromOpenAI(call openai.ChatCompletionMessageToolCall) ToolCall {
	return ToolCall{
		ID:   call.ID,
		Name: call.Function.Name,
		Args: call.Function.Arguments,
	}
}

// Message represents a single turn in the conversation log.
type Message struct {
	Role      Role       `json:"role"`
	Content   string     `json:"content,omitempty"`
	Name      string     `json:"name,omitempty"`
	ToolCalls []ToolCall `json:"tool_calls,omitempty"`
	ID        string     `json:"id,omitempty"` // originating tool call, for tool messages
}

// ToOpenAI converts the message into the OpenAI SDK representation.
func (m Message) ToOpenAI() openai.ChatCompletionMessageParamUnion {
	switch m.Role {
	case User:
		return openai.UserMessage(m.Content)
	case Assistant:
		msg := openai.AssistantMessage(m.Content)
		if len(m.ToolCalls) > 0 {
			msg.OfAssistant.ToolCalls = utils.MapSlice(m.ToolCalls, ToolCall.ToOpenAI)
		}
		return msg
	case System:
		return openai.SystemMessage(m.Content)
	case Tool:
		return openai.ToolMessage(m.Content, m.ID)
	}
	return openai.ChatCompletionMessageParamUnion{}
}

// NewUserMessage creates a user message with the provided content.
func NewUserMessage(content string) Message {
	return Message{
		Role:    User,
		Content: content,
	}
}

// NewAssistantMessage constructs an assistant message with optional tool calls.
func NewAssistantMessage(content string, toolcalls []ToolCall) Message {
	return Message{
		Role:      Assistant,
		Content:   content,
		ToolCalls: toolcalls,
	}
}

// NewSystemMessage creates a system message with the given content.
func NewSystemMessage(content string) Message {
	return Message{
		Role:    System,
		Content: content,
	}
}

// NewToolMessage creates a message carrying the output of the tool call id.
func NewToolMessage(id, name, content string) Message {
	return Message{
		Role:    Tool,
		ID:      id,
		Name:    name,
		Content: content,
	}
}

// AssistantMessageFromOpenAI converts an OpenAI assistant message into our internal structure.
func AssistantMessageFromOpenAI(msg openai.ChatCompletionMessage) Message {
	return NewAssistantMessage(msg.Content, utils.MapSlice(msg.ToolCalls, ToolCallFromOpenAI))
}
