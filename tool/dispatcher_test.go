package tool

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/viant/mcp-protocol/schema"

	"github.com/autobrowse/playwright-mcp/browser"
)

func testRegistry(t *testing.T) (*Registry, *[]string) {
	var calls []string
	registry, err := NewRegistry(
		&Descriptor{
			Name:        "echo",
			Description: "Echo the message back",
			InputSchema: objectSchema(schema.ToolInputSchemaProperties{
				"message": {"type": "string"},
				"repeat":  {"type": "number"},
			}, "message"),
			Handler: func(ctx context.Context, args map[string]interface{}) (string, error) {
				calls = append(calls, "echo")
				return stringArg(args, "message"), nil
			},
		},
		&Descriptor{
			Name:        "fail",
			Description: "Always fails",
			InputSchema: objectSchema(schema.ToolInputSchemaProperties{}),
			Handler: func(ctx context.Context, args map[string]interface{}) (string, error) {
				calls = append(calls, "fail")
				return "", browser.NewError(browser.KindNavigationError, "failed to navigate to https://x", errors.New("net::ERR"))
			},
		},
		&Descriptor{
			Name:        "panic",
			Description: "Always panics",
			InputSchema: objectSchema(schema.ToolInputSchemaProperties{}),
			Handler: func(ctx context.Context, args map[string]interface{}) (string, error) {
				panic("boom")
			},
		},
	)
	assert.Nil(t, err)
	return registry, &calls
}

func TestDispatcher_Dispatch(t *testing.T) {
	registry, calls := testRegistry(t)
	dispatcher := NewDispatcher(registry)

	testCases := []struct {
		description string
		tool        string
		args        map[string]interface{}
		expectError bool
		expectText  string
	}{
		{
			description: "success",
			tool:        "echo",
			args:        map[string]interface{}{"message": "hi"},
			expectText:  "hi",
		},
		{
			description: "unknown tool",
			tool:        "nope",
			expectError: true,
			expectText:  "UnknownTool: unknown tool: nope",
		},
		{
			description: "missing required parameter",
			tool:        "echo",
			args:        map[string]interface{}{},
			expectError: true,
			expectText:  `InvalidArguments: missing required parameter "message" for tool echo`,
		},
		{
			description: "type mismatch",
			tool:        "echo",
			args:        map[string]interface{}{"message": "hi", "repeat": "three"},
			expectError: true,
			expectText:  `InvalidArguments: parameter "repeat" of tool echo is not a valid number`,
		},
		{
			description: "handler failure becomes result",
			tool:        "fail",
			expectError: true,
			expectText:  "NavigationError: failed to navigate to https://x: net::ERR",
		},
	}

	for _, testCase := range testCases {
		result := dispatcher.Dispatch(context.Background(), testCase.tool, testCase.args)
		if assert.Equal(t, 1, len(result.Content), testCase.description) {
			assert.Equal(t, testCase.expectText, result.Content[0].Text, testCase.description)
		}
		if testCase.expectError {
			if assert.NotNil(t, result.IsError, testCase.description) {
				assert.True(t, *result.IsError, testCase.description)
			}
		} else {
			assert.Nil(t, result.IsError, testCase.description)
		}
	}
	assert.Equal(t, []string{"echo", "fail"}, *calls)
}

func TestDispatcher_PanicContained(t *testing.T) {
	registry, _ := testRegistry(t)
	dispatcher := NewDispatcher(registry)
	result := dispatcher.Dispatch(context.Background(), "panic", nil)
	assert.NotNil(t, result.IsError)
	assert.True(t, *result.IsError)
	assert.Contains(t, result.Content[0].Text, "InternalError: tool panic panicked: boom")
}

func TestNewRegistry_Validation(t *testing.T) {
	handler := func(ctx context.Context, args map[string]interface{}) (string, error) { return "", nil }
	_, err := NewRegistry(
		&Descriptor{Name: "dup", Handler: handler},
		&Descriptor{Name: "dup", Handler: handler},
	)
	assert.NotNil(t, err)
	_, err = NewRegistry(&Descriptor{Name: "nohandler"})
	assert.NotNil(t, err)
}
