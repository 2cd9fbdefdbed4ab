package provider

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/iftachshalev/shalev-assist/internal/tools"
	"github.com/iftachshalev/shalev-assist/internal/types"
	"github.com/iftachshalev/shalev-assist/internal/utils"
	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
)

// OpenAI implements LLM with the chat completions API.
type OpenAI struct {
	client openai.Client
	model  string
	logger *slog.Logger
}

// clientOptions builds the request options shared by both backends. Requests
// are never retried.
func clientOptions(cfg types.ModelConfig, extra ...option.RequestOption) []option.RequestOption {
	opts := []option.RequestOption{option.WithMaxRetries(0)}
	if cfg.APIKey != "" {
		opts = append(opts, option.WithAPIKey(cfg.APIKey))
	}
	if cfg.BaseURL != "" {
		opts = append(opts, option.WithBaseURL(cfg.BaseURL))
	}
	return append(opts, extra...)
}

// NewOpenAI creates a chat completions backend for cfg.Model.
func NewOpenAI(cfg types.ModelConfig, logger *slog.Logger, opts ...option.RequestOption) *OpenAI {
	if logger == nil {
		logger = slog.Default()
	}
	return &OpenAI{
		client: openai.NewClient(clientOptions(cfg, opts...)...),
		model:  cfg.Model,
		logger: logger,
	}
}

// Complete sends the conversation, and the catalog when given, and returns
// the assistant turn.
func (p *OpenAI) Complete(ctx context.Context, messages []types.Message, catalog *tools.Registry) (types.Message, error) {
	params := openai.ChatCompletionNewParams{
		Messages: utils.MapSlice(messages, types.Message.ToOpenAI),
		Model:    p.model,
	}
	if catalog != nil {
		params.Tools = catalog.OpenAITools()
		params.ToolChoice = openai.ChatCompletionToolChoiceOptionUnionParam{
			OfAuto: openai.String("auto"),
		}
	}

	p.logger.Debug("sending request to LLM",
		"model", p.model,
		"message_count", len(messages),
		"tools_offered", catalog != nil)
	completion, err := p.client.Chat.Completions.New(ctx, params)
	if err != nil {
		return types.Message{}, fmt.Errorf("OpenAI API error: %w", err)
	}
	if len(completion.Choices) == 0 {
		return types.Message{}, ErrNoChoices
	}

	msg := completion.Choices[0].Message
	if msg.Refusal != "" {
		return types.Message{}, fmt.Errorf("%w: %s", ErrRefusal, msg.Refusal)
	}
	p.logger.Debug("received response from LLM",
		"finish_reason", completion.Choices[0].FinishReason,
		"tool_call_count", len(msg.ToolCalls),
		"total_tokens", completion.Usage.TotalTokens)
	return types.AssistantMessageFromOpenAI(msg), nil
}
