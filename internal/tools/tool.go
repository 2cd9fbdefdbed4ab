package tools

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	"github.com/iftachshalev/shalev-assist/internal/utils"
	"github.com/openai/openai-go"
	"github.com/stoewer/go-strcase"
)

// ToolArgs is implemented by an argument struct that can execute its tool.
// The struct's fields define the tool's parameter schema. Run never fails:
// problems are reported in the returned text.
type ToolArgs interface {
	Run(ctx context.Context, env *Env) string
}

// Env is the host surface tool handlers are allowed to touch.
type Env struct {
	// Playground is the absolute working directory for file edits and shell
	// commands.
	Playground string
	// Python is the interpreter used to run snippets and pip.
	Python string
	// Search answers web queries. Nil disables web search.
	Search Searcher
	// Confirm asks the operator before side effects that need approval.
	Confirm Confirmer
	// Runner spawns subprocesses.
	Runner CommandRunner
	Logger *slog.Logger
}

func (e *Env) logger() *slog.Logger {
	if e == nil || e.Logger == nil {
		return slog.Default()
	}
	return e.Logger
}

// Tool describes a function the model may ask to have executed.
type Tool struct {
	Name        string
	Description string
	Args        ToolArgs
}

// CompleteName returns the explicit name if set or the snake cased name of
// the argument type.
func (t Tool) CompleteName() string {
	if t.Name != "" {
		return t.Name
	}
	return strcase.SnakeCase(utils.TypeName(t.Args))
}

// Schema reflects the JSON schema of the tool's parameters.
func (t Tool) Schema() (map[string]any, error) {
	if t.Args == nil {
		return nil, fmt.Errorf("tool %q has no args type", t.CompleteName())
	}
	return utils.CreateSchema(t.Args)
}

// ToOpenAITool converts this tool into the format expected by the OpenAI SDK.
func (t Tool) ToOpenAITool() (openai.ChatCompletionToolParam, error) {
	schema, err := t.Schema()
	if err != nil {
		return openai.ChatCompletionToolParam{}, fmt.Errorf("schema for %s: %w", t.CompleteName(), err)
	}
	return openai.ChatCompletionToolParam{
		Function: openai.FunctionDefinitionParam{
			Name:        t.CompleteName(),
			Description: openai.String(t.Description),
			Parameters:  schema,
		},
	}, nil
}

// RunOnArgs decodes the JSON arguments into a fresh args value and runs it.
// Malformed arguments are reported as text.
func (t Tool) RunOnArgs(ctx context.Context, env *Env, args string) string {
	logger := env.logger()
	if strings.TrimSpace(args) == "" {
		args = "{}"
	}

	logger.Debug("unmarshaling tool arguments", "tool_name", t.CompleteName(), "args", args)
	argsInstance := utils.NewInstance(t.Args).(ToolArgs)
	if err := json.Unmarshal([]byte(args), argsInstance); err != nil {
		logger.Error("failed to unmarshal tool arguments",
			"tool_name", t.CompleteName(),
			"args", args,
			"error", err)
		return fmt.Sprintf("Error: invalid arguments for %s: %v", t.CompleteName(), err)
	}

	result := argsInstance.Run(ctx, env)
	logger.Debug("tool execution completed", "tool_name", t.CompleteName(), "result_length", len(result))
	return result
}
