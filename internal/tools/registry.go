package tools

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

// Tool is one callable operation exposed over the MCP transport. InputSchema
// is the JSON Schema advertised to clients and enforced before the handler
// runs.
type Tool struct {
	Name        string
	Description string
	InputSchema json.RawMessage
	Handler     func(ctx context.Context, args json.RawMessage) (any, error)

	compiled *jsonschema.Schema
}

// Registry holds tools in registration order.
type Registry struct {
	order []string
	tools map[string]*Tool
}

// NewRegistry creates an empty tool registry.
func NewRegistry() *Registry {
	return &Registry{tools: make(map[string]*Tool)}
}

// Register adds a tool, compiling its input schema for argument validation.
func (r *Registry) Register(t *Tool) error {
	if t.Name == "" {
		return fmt.Errorf("tool name is required")
	}
	if _, exists := r.tools[t.Name]; exists {
		return fmt.Errorf("tool already registered: %s", t.Name)
	}

	compiler := jsonschema.NewCompiler()
	resource := t.Name + ".json"
	if err := compiler.AddResource(resource, bytes.NewReader(t.InputSchema)); err != nil {
		return fmt.Errorf("failed to load input schema for %s: %w", t.Name, err)
	}
	compiled, err := compiler.Compile(resource)
	if err != nil {
		return fmt.Errorf("failed to compile input schema for %s: %w", t.Name, err)
	}
	t.compiled = compiled

	r.order = append(r.order, t.Name)
	r.tools[t.Name] = t
	return nil
}

// List returns all tools in registration order.
func (r *Registry) List() []*Tool {
	out := make([]*Tool, 0, len(r.order))
	for _, name := range r.order {
		out = append(out, r.tools[name])
	}
	return out
}

// Call validates args against the tool's input schema and runs its handler.
func (r *Registry) Call(ctx context.Context, name string, args json.RawMessage) (any, error) {
	t, ok := r.tools[name]
	if !ok {
		return nil, fmt.Errorf("unknown tool: %s", name)
	}

	if len(args) == 0 {
		args = json.RawMessage(`{}`)
	}
	var doc any
	if err := json.Unmarshal(args, &doc); err != nil {
		return nil, fmt.Errorf("invalid tool arguments: %w", err)
	}
	if err := t.compiled.Validate(doc); err != nil {
		return nil, fmt.Errorf("tool arguments do not match schema: %w", err)
	}

	return t.Handler(ctx, args)
}
