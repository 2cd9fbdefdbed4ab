package provider

import (
	"context"
	"fmt"

	"github.com/iftachshalev/shalev-assist/internal/tools"
	"github.com/iftachshalev/shalev-assist/internal/types"
)

// Call records one request received by MockLLM.
type Call struct {
	Messages     []types.Message
	ToolsOffered bool
}

// MockLLM replays scripted assistant turns and records every request. It is
// intended for tests.
type MockLLM struct {
	Responses []types.Message
	Err       error
	Calls     []Call
}

func (m *MockLLM) Complete(ctx context.Context, messages []types.Message, catalog *tools.Registry) (types.Message, error) {
	m.Calls = append(m.Calls, Call{
		Messages:     append([]types.Message(nil), messages...),
		ToolsOffered: catalog != nil,
	})
	if m.Err != nil {
		return types.Message{}, m.Err
	}
	if len(m.Calls) > len(m.Responses) {
		return types.Message{}, fmt.Errorf("mock: no scripted response for call %d", len(m.Calls))
	}
	return m.Responses[len(m.Calls)-1], nil
}

// MockGenerator streams a fixed list of fragments.
type MockGenerator struct {
	Fragments []string
	Err       error
	Prompts   []string
}

func (m *MockGenerator) Generate(ctx context.Context, prompt string, params GenerationParams, out chan<- string) error {
	m.Prompts = append(m.Prompts, prompt)
	for _, f := range m.Fragments {
		select {
		case out <- f:
		case <-ctx.Done():
			return ctx.Err()
		}
	}
	return m.Err
}
