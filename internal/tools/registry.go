package tools

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"github.com/iftachshalev/shalev-assist/internal/utils"
	"github.com/openai/openai-go"
	"github.com/sahilm/fuzzy"
)

// ErrUnknownTool is returned when a tool name is not in the registry.
var ErrUnknownTool = errors.New("unknown tool")

// Registry is the fixed mapping between tool names and tools. It is built
// once at startup and never mutated.
type Registry struct {
	tools   map[string]Tool
	names   []string
	openAI  []openai.ChatCompletionToolParam
	schemas map[string]map[string]any
}

// NewRegistry validates the catalog and indexes it by name. Every tool needs
// a unique non-empty name and a schema whose required parameters exist.
func NewRegistry(catalog ...Tool) (*Registry, error) {
	r := &Registry{
		tools:   make(map[string]Tool, len(catalog)),
		schemas: make(map[string]map[string]any, len(catalog)),
	}
	for _, tool := range catalog {
		if tool.Args == nil {
			return nil, fmt.Errorf("tool %q has no args type", tool.Name)
		}
		name := tool.CompleteName()
		if name == "" {
			return nil, fmt.Errorf("tool name is empty")
		}
		if _, exists := r.tools[name]; exists {
			return nil, fmt.Errorf("tool %s already registered", name)
		}
		schema, err := tool.Schema()
		if err != nil {
			return nil, fmt.Errorf("tool %s: %w", name, err)
		}
		if err := checkRequired(schema); err != nil {
			return nil, fmt.Errorf("tool %s: %w", name, err)
		}
		param, err := tool.ToOpenAITool()
		if err != nil {
			return nil, err
		}

		r.tools[name] = tool
		r.names = append(r.names, name)
		r.schemas[name] = schema
		r.openAI = append(r.openAI, param)
	}
	return r, nil
}

func checkRequired(schema map[string]any) error {
	props, _ := schema["properties"].(map[string]any)
	for _, name := range utils.RequiredFields(schema) {
		if _, ok := props[name]; !ok {
			return fmt.Errorf("required parameter %q is not a property", name)
		}
	}
	return nil
}

// Names lists the registered names in catalog order.
func (r *Registry) Names() []string {
	return slices.Clone(r.names)
}

// Schemas returns the parameter schema of every tool keyed by name.
func (r *Registry) Schemas() map[string]map[string]any {
	return r.schemas
}

// OpenAITools returns the catalog in OpenAI function-calling form.
func (r *Registry) OpenAITools() []openai.ChatCompletionToolParam {
	return slices.Clone(r.openAI)
}

// Lookup resolves a tool by name.
func (r *Registry) Lookup(name string) (Tool, error) {
	tool, ok := r.tools[name]
	if !ok {
		return Tool{}, fmt.Errorf("%w: %s", ErrUnknownTool, name)
	}
	return tool, nil
}

// Suggest returns the closest registered name to name, if any is close.
func (r *Registry) Suggest(name string) (string, bool) {
	matches := fuzzy.Find(name, r.names)
	if len(matches) == 0 {
		return "", false
	}
	return matches[0].Str, true
}

// Execute runs the named tool with raw JSON arguments and returns its text
// result. Unknown names are reported as text, never as a failure.
func (r *Registry) Execute(ctx context.Context, env *Env, name, args string) string {
	tool, err := r.Lookup(name)
	if err != nil {
		env.logger().Warn("tool not found", "tool_name", name)
		out := "Unknown tool: " + name
		if suggestion, ok := r.Suggest(name); ok {
			out += fmt.Sprintf(" (did you mean %s?)", suggestion)
		}
		return out
	}
	return tool.RunOnArgs(ctx, env, args)
}
