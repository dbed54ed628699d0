package tool

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/autobrowse/playwright-mcp/browser"
)

func failingLauncher(ctx context.Context, config *browser.Config) (browser.Driver, error) {
	return nil, errors.New("no chromium available")
}

func TestNewCatalog_ToolTable(t *testing.T) {
	manager := browser.NewManager(nil, browser.WithLauncher(failingLauncher))
	registry, err := NewCatalog(manager)
	assert.Nil(t, err)
	assert.Equal(t, 10, registry.Len())

	var names []string
	var required = map[string][]string{}
	for _, item := range registry.Tools() {
		names = append(names, item.Name)
		required[item.Name] = item.InputSchema.Required
		assert.NotNil(t, item.Description, item.Name)
		assert.Equal(t, "object", item.InputSchema.Type, item.Name)
	}
	assert.Equal(t, []string{
		"navigate",
		"click",
		"take_screenshot",
		"type_text",
		"select_option",
		"wait_for_selector",
		"get_page_content",
		"close_browser",
		"new_tab",
		"hover",
	}, names)

	assert.Equal(t, []string{"url"}, required["navigate"])
	assert.Equal(t, []string{"selector"}, required["click"])
	assert.Equal(t, []string{"selector", "text"}, required["type_text"])
	assert.Equal(t, []string{"selector", "value"}, required["select_option"])
	assert.Equal(t, []string{"selector"}, required["wait_for_selector"])
	assert.Equal(t, []string{"selector"}, required["hover"])
	assert.Empty(t, required["take_screenshot"])
	assert.Empty(t, required["get_page_content"])
	assert.Empty(t, required["close_browser"])
	assert.Empty(t, required["new_tab"])
}

func TestCatalog_LaunchFailureContained(t *testing.T) {
	manager := browser.NewManager(nil, browser.WithLauncher(failingLauncher))
	registry, err := NewCatalog(manager)
	assert.Nil(t, err)
	dispatcher := NewDispatcher(registry)

	result := dispatcher.Dispatch(context.Background(), "open_new_window", nil)
	assert.NotNil(t, result.IsError)
	assert.Equal(t, "UnknownTool: unknown tool: open_new_window", result.Content[0].Text)
	assert.Equal(t, browser.StatusUninitialized, manager.Status())

	result = dispatcher.Dispatch(context.Background(), "navigate", map[string]interface{}{"url": "https://example.com"})
	assert.NotNil(t, result.IsError)
	assert.True(t, *result.IsError)
	assert.Contains(t, result.Content[0].Text, "LaunchError: failed to launch browser")
	assert.Equal(t, browser.StatusUninitialized, manager.Status())
}

func TestCatalog_CloseBrowserWithoutLaunch(t *testing.T) {
	manager := browser.NewManager(nil, browser.WithLauncher(failingLauncher))
	registry, err := NewCatalog(manager)
	assert.Nil(t, err)
	dispatcher := NewDispatcher(registry)

	result := dispatcher.Dispatch(context.Background(), "close_browser", nil)
	assert.Nil(t, result.IsError)
	assert.Equal(t, "Browser closed successfully", result.Content[0].Text)
	assert.Equal(t, browser.StatusClosed, manager.Status())
}
