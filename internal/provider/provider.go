// Package provider adapts model backends to the chat loops.
package provider

import (
	"context"
	"errors"

	"github.com/iftachshalev/shalev-assist/internal/tools"
	"github.com/iftachshalev/shalev-assist/internal/types"
)

var (
	// ErrNoChoices is returned when the backend answers without any choice.
	ErrNoChoices = errors.New("no choices returned from model")
	// ErrRefusal is returned when the model refuses to answer.
	ErrRefusal = errors.New("model refused to respond")
)

// LLM answers a conversation with either text or tool invocation requests.
// A nil catalog means no tools are offered for this call.
type LLM interface {
	Complete(ctx context.Context, messages []types.Message, catalog *tools.Registry) (types.Message, error)
}

// GenerationParams are the sampling settings of the local model.
type GenerationParams struct {
	MaxNewTokens      int64
	Temperature       float64
	TopP              float64
	RepetitionPenalty float64
	// Stop sequences end generation early.
	Stop []string
}

// DefaultGeneration is used for every local generation in a session.
var DefaultGeneration = GenerationParams{
	MaxNewTokens:      2048,
	Temperature:       0.5,
	TopP:              0.9,
	RepetitionPenalty: 1.1,
	Stop:              []string{"\nUser:"},
}

// Generator streams text for a raw prompt. Fragments are sent to out in the
// order the backend produces them; the caller owns and closes out.
type Generator interface {
	Generate(ctx context.Context, prompt string, params GenerationParams, out chan<- string) error
}
