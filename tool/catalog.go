package tool

import (
	"context"
	"fmt"

	"github.com/viant/mcp-protocol/schema"

	"github.com/autobrowse/playwright-mcp/browser"
)

// NewCatalog builds the browser automation tool registry bound to manager.
func NewCatalog(manager *browser.Manager) (*Registry, error) {
	return NewRegistry(
		navigateTool(manager),
		clickTool(manager),
		screenshotTool(manager),
		typeTextTool(manager),
		selectOptionTool(manager),
		waitForSelectorTool(manager),
		pageContentTool(manager),
		closeBrowserTool(manager),
		newTabTool(manager),
		hoverTool(manager),
	)
}

func objectSchema(properties schema.ToolInputSchemaProperties, required ...string) schema.ToolInputSchema {
	return schema.ToolInputSchema{
		Type:       "object",
		Properties: properties,
		Required:   required,
	}
}

func navigateTool(manager *browser.Manager) *Descriptor {
	return &Descriptor{
		Name:        "navigate",
		Description: "Navigate the browser to a URL and wait for the page to load",
		InputSchema: objectSchema(schema.ToolInputSchemaProperties{
			"url": {
				"type":        "string",
				"description": "The URL to navigate to",
			},
			"timeout": {
				"type":        "number",
				"description": "Navigation timeout in milliseconds",
			},
		}, "url"),
		Handler: func(ctx context.Context, args map[string]interface{}) (string, error) {
			pageURL := stringArg(args, "url")
			title, err := manager.Navigate(ctx, pageURL, floatArg(args, "timeout"))
			if err != nil {
				return "", err
			}
			if title != "" {
				return fmt.Sprintf("Successfully navigated to %v (title: %v)", pageURL, title), nil
			}
			return fmt.Sprintf("Successfully navigated to %v", pageURL), nil
		},
	}
}

func clickTool(manager *browser.Manager) *Descriptor {
	return &Descriptor{
		Name:        "click",
		Description: "Click the first element matching a CSS selector",
		InputSchema: objectSchema(schema.ToolInputSchemaProperties{
			"selector": {
				"type":        "string",
				"description": "CSS selector of the element to click",
			},
			"timeout": {
				"type":        "number",
				"description": "Time to wait for the element in milliseconds",
			},
		}, "selector"),
		Handler: func(ctx context.Context, args map[string]interface{}) (string, error) {
			selector := stringArg(args, "selector")
			if err := manager.Click(ctx, selector, floatArg(args, "timeout")); err != nil {
				return "", err
			}
			return fmt.Sprintf("Successfully clicked on %v", selector), nil
		},
	}
}

func screenshotTool(manager *browser.Manager) *Descriptor {
	return &Descriptor{
		Name:        "take_screenshot",
		Description: "Capture a screenshot of the current page and store it as a PNG file",
		InputSchema: objectSchema(schema.ToolInputSchemaProperties{
			"path": {
				"type":        "string",
				"description": "File name for the screenshot, generated when omitted",
			},
			"full_page": {
				"type":        "boolean",
				"description": "Capture the full scrollable page instead of the viewport",
			},
		}),
		Handler: func(ctx context.Context, args map[string]interface{}) (string, error) {
			location, err := manager.Screenshot(ctx, stringArg(args, "path"), boolArg(args, "full_page"))
			if err != nil {
				return "", err
			}
			return fmt.Sprintf("Screenshot saved to %v", location), nil
		},
	}
}

func typeTextTool(manager *browser.Manager) *Descriptor {
	return &Descriptor{
		Name:        "type_text",
		Description: "Type text into the element matching a CSS selector",
		InputSchema: objectSchema(schema.ToolInputSchemaProperties{
			"selector": {
				"type":        "string",
				"description": "CSS selector of the input element",
			},
			"text": {
				"type":        "string",
				"description": "Text to type into the element",
			},
			"timeout": {
				"type":        "number",
				"description": "Time to wait for the element in milliseconds",
			},
		}, "selector", "text"),
		Handler: func(ctx context.Context, args map[string]interface{}) (string, error) {
			selector := stringArg(args, "selector")
			text := stringArg(args, "text")
			if err := manager.TypeText(ctx, selector, text, floatArg(args, "timeout")); err != nil {
				return "", err
			}
			return fmt.Sprintf("Successfully typed %q into %v", text, selector), nil
		},
	}
}

func selectOptionTool(manager *browser.Manager) *Descriptor {
	return &Descriptor{
		Name:        "select_option",
		Description: "Select an option by value in a dropdown matching a CSS selector",
		InputSchema: objectSchema(schema.ToolInputSchemaProperties{
			"selector": {
				"type":        "string",
				"description": "CSS selector of the select element",
			},
			"value": {
				"type":        "string",
				"description": "Value of the option to select",
			},
			"timeout": {
				"type":        "number",
				"description": "Time to wait for the element in milliseconds",
			},
		}, "selector", "value"),
		Handler: func(ctx context.Context, args map[string]interface{}) (string, error) {
			selector := stringArg(args, "selector")
			value := stringArg(args, "value")
			if err := manager.SelectOption(ctx, selector, value, floatArg(args, "timeout")); err != nil {
				return "", err
			}
			return fmt.Sprintf("Successfully selected %q in %v", value, selector), nil
		},
	}
}

func waitForSelectorTool(manager *browser.Manager) *Descriptor {
	return &Descriptor{
		Name:        "wait_for_selector",
		Description: "Wait until an element matching a CSS selector appears on the page",
		InputSchema: objectSchema(schema.ToolInputSchemaProperties{
			"selector": {
				"type":        "string",
				"description": "CSS selector to wait for",
			},
			"timeout": {
				"type":        "number",
				"description": "Maximum wait in milliseconds",
			},
		}, "selector"),
		Handler: func(ctx context.Context, args map[string]interface{}) (string, error) {
			selector := stringArg(args, "selector")
			if err := manager.WaitForSelector(ctx, selector, floatArg(args, "timeout")); err != nil {
				return "", err
			}
			return fmt.Sprintf("Element %v appeared", selector), nil
		},
	}
}

func pageContentTool(manager *browser.Manager) *Descriptor {
	return &Descriptor{
		Name:        "get_page_content",
		Description: "Return the HTML content of the current page, truncated when large",
		InputSchema: objectSchema(schema.ToolInputSchemaProperties{}),
		Handler: func(ctx context.Context, args map[string]interface{}) (string, error) {
			return manager.PageContent(ctx)
		},
	}
}

func closeBrowserTool(manager *browser.Manager) *Descriptor {
	return &Descriptor{
		Name:        "close_browser",
		Description: "Close the browser and release its resources; a later tool call relaunches it",
		InputSchema: objectSchema(schema.ToolInputSchemaProperties{}),
		Handler: func(ctx context.Context, args map[string]interface{}) (string, error) {
			if err := manager.Close(ctx); err != nil {
				return "", err
			}
			return "Browser closed successfully", nil
		},
	}
}

func newTabTool(manager *browser.Manager) *Descriptor {
	return &Descriptor{
		Name:        "new_tab",
		Description: "Open a new browser tab and make it the active one, optionally navigating to a URL",
		InputSchema: objectSchema(schema.ToolInputSchemaProperties{
			"url": {
				"type":        "string",
				"description": "URL to open in the new tab",
			},
		}),
		Handler: func(ctx context.Context, args map[string]interface{}) (string, error) {
			pageURL := stringArg(args, "url")
			if err := manager.NewTab(ctx, pageURL); err != nil {
				return "", err
			}
			if pageURL != "" {
				return fmt.Sprintf("New tab opened at %v", pageURL), nil
			}
			return "New tab opened", nil
		},
	}
}

func hoverTool(manager *browser.Manager) *Descriptor {
	return &Descriptor{
		Name:        "hover",
		Description: "Hover the mouse over the first element matching a CSS selector",
		InputSchema: objectSchema(schema.ToolInputSchemaProperties{
			"selector": {
				"type":        "string",
				"description": "CSS selector of the element to hover over",
			},
			"timeout": {
				"type":        "number",
				"description": "Time to wait for the element in milliseconds",
			},
		}, "selector"),
		Handler: func(ctx context.Context, args map[string]interface{}) (string, error) {
			selector := stringArg(args, "selector")
			if err := manager.Hover(ctx, selector, floatArg(args, "timeout")); err != nil {
				return "", err
			}
			return fmt.Sprintf("Successfully hovered over %v", selector), nil
		},
	}
}
