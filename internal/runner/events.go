package runner

import (
	"time"

	"github.com/iftachshalev/shalev-assist/internal/types"
)

// ToolResult is the output of one executed tool call.
type ToolResult struct {
	Name       string
	Content    string
	ToolCallID string
}

// Event is emitted while a turn is processed. Only one of the fields is
// populated depending on what occurred.
type Event struct {
	Timestamp    time.Time
	OfToolCall   *types.ToolCall
	OfToolResult ToolResult
	OfMessage    *types.Message
}

// ToolCall returns the requested tool call carried by the event if present.
func (e *Event) ToolCall() (*types.ToolCall, bool) {
	if e.OfToolCall != nil {
		return e.OfToolCall, true
	}
	return nil, false
}

// ToolResult returns the tool output carried by the event if present.
func (e *Event) ToolResult() (ToolResult, bool) {
	if e.OfToolResult.ToolCallID != "" {
		return e.OfToolResult, true
	}
	return ToolResult{}, false
}

// Message returns the assistant answer carried by the event if present.
func (e *Event) Message() (*types.Message, bool) {
	if e.OfMessage != nil {
		return e.OfMessage, true
	}
	return nil, false
}

func toolCallEvent(call types.ToolCall) Event {
	return Event{
		OfToolCall: &call,
		Timestamp:  time.Now(),
	}
}

func toolEvent(result ToolResult) Event {
	return Event{
		OfToolResult: result,
		Timestamp:    time.Now(),
	}
}

func messageEvent(message types.Message) Event {
	return Event{
		OfMessage: &message,
		Timestamp: time.Now(),
	}
}
