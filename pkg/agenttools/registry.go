package agenttools

import (
	"context"
	"fmt"

	"github.com/Cirtus-AI/cirtusai-sdk/pkg/cirtusai"
)

// Registry holds named tools in registration order.
type Registry struct {
	tools map[string]Tool
	order []string
}

// NewRegistry creates a registry containing the given tools.
func NewRegistry(tools ...Tool) *Registry {
	r := &Registry{tools: make(map[string]Tool, len(tools))}
	for _, t := range tools {
		r.Register(t)
	}
	return r
}

// NewDefaultRegistry creates a registry preloaded with every sub-client
// tool for c.
func NewDefaultRegistry(c *cirtusai.Client) *Registry {
	return NewRegistry(DefaultTools(c)...)
}

// Register adds a tool, replacing any previous tool of the same name.
func (r *Registry) Register(t Tool) {
	if _, exists := r.tools[t.Name()]; !exists {
		r.order = append(r.order, t.Name())
	}
	r.tools[t.Name()] = t
}

// Lookup returns the tool with the given name.
func (r *Registry) Lookup(name string) (Tool, bool) {
	t, ok := r.tools[name]
	return t, ok
}

// Definitions returns the serializable descriptors of all tools, in
// registration order.
func (r *Registry) Definitions() []Definition {
	defs := make([]Definition, 0, len(r.order))
	for _, name := range r.order {
		t := r.tools[name]
		defs = append(defs, Definition{
			Name:        t.Name(),
			Description: t.Description(),
			InputSchema: t.InputSchema(),
		})
	}
	return defs
}

// Invoke calls the named tool. Errors from the underlying SDK operation
// propagate unchanged.
func (r *Registry) Invoke(ctx context.Context, name string, args map[string]any) (any, error) {
	t, ok := r.tools[name]
	if !ok {
		return nil, fmt.Errorf("agenttools: unknown tool %q", name)
	}
	return t.Invoke(ctx, args)
}
