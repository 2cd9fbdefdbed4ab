package provider

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/iftachshalev/shalev-assist/internal/types"
	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
)

// Local streams raw-prompt completions from a locally served model through an
// OpenAI compatible completions endpoint (llama.cpp server, vLLM, Ollama).
type Local struct {
	client openai.Client
	model  string
	logger *slog.Logger
}

// NewLocal creates a Generator for the model served at cfg.BaseURL.
func NewLocal(cfg types.ModelConfig, logger *slog.Logger, opts ...option.RequestOption) *Local {
	if logger == nil {
		logger = slog.Default()
	}
	if cfg.APIKey == "" {
		// The SDK insists on a key; local servers ignore it.
		cfg.APIKey = "local"
	}
	return &Local{
		client: openai.NewClient(clientOptions(cfg, opts...)...),
		model:  cfg.Model,
		logger: logger,
	}
}

func (l *Local) Generate(ctx context.Context, prompt string, params GenerationParams, out chan<- string) error {
	body := openai.CompletionNewParams{
		Model:       openai.CompletionNewParamsModel(l.model),
		Prompt:      openai.CompletionNewParamsPromptUnion{OfString: openai.String(prompt)},
		MaxTokens:   openai.Int(params.MaxNewTokens),
		Temperature: openai.Float(params.Temperature),
		TopP:        openai.Float(params.TopP),
	}
	extra := []option.RequestOption{
		option.WithJSONSet("repetition_penalty", params.RepetitionPenalty),
	}
	if len(params.Stop) > 0 {
		extra = append(extra, option.WithJSONSet("stop", params.Stop))
	}

	l.logger.Debug("starting local generation", "model", l.model, "prompt_length", len(prompt))
	stream := l.client.Completions.NewStreaming(ctx, body, extra...)
	defer stream.Close()

	fragments := 0
	for stream.Next() {
		for _, choice := range stream.Current().Choices {
			if choice.Text == "" {
				continue
			}
			select {
			case out <- choice.Text:
				fragments++
			case <-ctx.Done():
				return ctx.Err()
			}
		}
	}
	if err := stream.Err(); err != nil {
		return fmt.Errorf("local generation: %w", err)
	}
	l.logger.Debug("local generation finished", "fragments", fragments)
	return nil
}
