package types

import (
	"fmt"
	"slices"
)

// Conversation is the append-only log of a chat session.
type Conversation struct {
	messages []Message
}

// NewConversation starts a log with the given system prompt. An empty prompt
// starts an empty log.
func NewConversation(systemPrompt string) *Conversation {
	c := &Conversation{}
	if systemPrompt != "" {
		c.messages = append(c.messages, NewSystemMessage(systemPrompt))
	}
	return c
}

// Append adds a turn. A tool turn must answer a pending tool call.
func (c *Conversation) Append(msg Message) error {
	if msg.Role == Tool {
		if !slices.Contains(c.Pending(), msg.ID) {
			return fmt.Errorf("tool result %q does not answer a pending tool call", msg.ID)
		}
	}
	c.messages = append(c.messages, msg)
	return nil
}

// Messages returns a copy of the log.
func (c *Conversation) Messages() []Message {
	return slices.Clone(c.messages)
}

// Len reports the number of turns.
func (c *Conversation) Len() int {
	return len(c.messages)
}

// Last returns the most recent turn.
func (c *Conversation) Last() (Message, bool) {
	if len(c.messages) == 0 {
		return Message{}, false
	}
	return c.messages[len(c.messages)-1], true
}

// Pending lists the IDs of tool calls from the latest assistant turn that
// have no tool result yet, in request order.
func (c *Conversation) Pending() []string {
	for i := len(c.messages) - 1; i >= 0; i-- {
		msg := c.messages[i]
		if msg.Role != Assistant {
			continue
		}
		// Tool turns answer calls in request order, so repeated IDs are
		// matched by count.
		answered := map[string]int{}
		for _, later := range c.messages[i+1:] {
			if later.Role == Tool {
				answered[later.ID]++
			}
		}
		var pending []string
		for _, call := range msg.ToolCalls {
			if answered[call.ID] > 0 {
				answered[call.ID]--
				continue
			}
			pending = append(pending, call.ID)
		}
		return pending
	}
	return nil
}
