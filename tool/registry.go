// Package tool defines the static tool registry and the dispatch boundary
// that converts every tool-level failure into an explicit result value.
package tool

import (
	"context"
	"fmt"

	"github.com/viant/mcp-protocol/schema"
)

// Handler executes one tool invocation and returns its text payload.
// Failures are returned as *browser.Error values carrying a stable kind.
type Handler func(ctx context.Context, args map[string]interface{}) (string, error)

// Descriptor describes one tool: its wire name, parameter schema and
// handler. Descriptors are immutable once registered.
type Descriptor struct {
	Name        string
	Description string
	InputSchema schema.ToolInputSchema
	Handler     Handler
}

// Registry is a closed, ordered tool table built once at startup; unknown
// tools are a data-driven lookup failure.
type Registry struct {
	ordered []*Descriptor
	index   map[string]*Descriptor
}

// NewRegistry builds a registry from descriptors, preserving their order.
func NewRegistry(descriptors ...*Descriptor) (*Registry, error) {
	ret := &Registry{index: make(map[string]*Descriptor, len(descriptors))}
	for _, descriptor := range descriptors {
		if descriptor.Name == "" {
			return nil, fmt.Errorf("tool descriptor has no name")
		}
		if descriptor.Handler == nil {
			return nil, fmt.Errorf("tool %v has no handler", descriptor.Name)
		}
		if _, ok := ret.index[descriptor.Name]; ok {
			return nil, fmt.Errorf("duplicate tool name: %v", descriptor.Name)
		}
		ret.ordered = append(ret.ordered, descriptor)
		ret.index[descriptor.Name] = descriptor
	}
	return ret, nil
}

// Resolve returns the descriptor registered under name.
func (r *Registry) Resolve(name string) (*Descriptor, bool) {
	descriptor, ok := r.index[name]
	return descriptor, ok
}

// Len returns the number of registered tools.
func (r *Registry) Len() int {
	return len(r.ordered)
}

// Tools renders the registry as MCP tool descriptors. Ordering is stable
// across calls so clients can cache the catalog deterministically.
func (r *Registry) Tools() []schema.Tool {
	ret := make([]schema.Tool, 0, len(r.ordered))
	for _, descriptor := range r.ordered {
		description := descriptor.Description
		ret = append(ret, schema.Tool{
			Name:        descriptor.Name,
			Description: &description,
			InputSchema: descriptor.InputSchema,
		})
	}
	return ret
}
