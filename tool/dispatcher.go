package tool

import (
	"context"
	"fmt"

	"github.com/viant/mcp-protocol/schema"

	"github.com/autobrowse/playwright-mcp/browser"
)

// Dispatcher routes tool calls to their handlers and contains every failure
// as a result value: no tool error ever reaches the transport as anything
// other than an IsError result.
type Dispatcher struct {
	registry *Registry
}

// NewDispatcher creates a dispatcher over registry.
func NewDispatcher(registry *Registry) *Dispatcher {
	return &Dispatcher{registry: registry}
}

// Dispatch resolves name, validates args and runs the handler. The returned
// result is always usable: failures come back flagged with IsError.
func (d *Dispatcher) Dispatch(ctx context.Context, name string, args map[string]interface{}) *schema.CallToolResult {
	descriptor, ok := d.registry.Resolve(name)
	if !ok {
		return failureResult(browser.NewError(browser.KindUnknownTool, fmt.Sprintf("unknown tool: %v", name), nil))
	}
	if args == nil {
		args = map[string]interface{}{}
	}
	if err := validateArguments(descriptor, args); err != nil {
		return failureResult(err)
	}
	text, err := d.invoke(ctx, descriptor, args)
	if err != nil {
		return failureResult(err)
	}
	return successResult(text)
}

// invoke runs the handler with a recovery barrier so a panicking handler
// degrades to an InternalError result instead of taking the process down.
func (d *Dispatcher) invoke(ctx context.Context, descriptor *Descriptor, args map[string]interface{}) (text string, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = browser.NewError(browser.KindInternalError, fmt.Sprintf("tool %v panicked: %v", descriptor.Name, r), nil)
		}
	}()
	return descriptor.Handler(ctx, args)
}

func successResult(text string) *schema.CallToolResult {
	return &schema.CallToolResult{
		Content: []schema.CallToolResultContentElem{{Text: text}},
	}
}

func failureResult(err error) *schema.CallToolResult {
	isError := true
	return &schema.CallToolResult{
		Content: []schema.CallToolResultContentElem{{Text: err.Error()}},
		IsError: &isError,
	}
}
