package tool

import (
	"encoding/json"
	"fmt"

	"github.com/autobrowse/playwright-mcp/browser"
)

// validateArguments checks supplied arguments against the descriptor's
// parameter schema: every required parameter present, every supplied value
// coercible to its declared type. Parameters outside the schema are
// tolerated.
func validateArguments(descriptor *Descriptor, args map[string]interface{}) error {
	for _, name := range descriptor.InputSchema.Required {
		if _, ok := args[name]; !ok {
			return browser.NewError(browser.KindInvalidArguments,
				fmt.Sprintf("missing required parameter %q for tool %v", name, descriptor.Name), nil)
		}
	}
	for name, value := range args {
		property, ok := descriptor.InputSchema.Properties[name]
		if !ok {
			continue
		}
		declared, _ := property["type"].(string)
		if declared == "" {
			continue
		}
		if !coercible(value, declared) {
			return browser.NewError(browser.KindInvalidArguments,
				fmt.Sprintf("parameter %q of tool %v is not a valid %v", name, descriptor.Name, declared), nil)
		}
	}
	return nil
}

func coercible(value interface{}, declared string) bool {
	switch declared {
	case "string":
		_, ok := value.(string)
		return ok
	case "boolean":
		_, ok := value.(bool)
		return ok
	case "number", "integer":
		switch value.(type) {
		case float64, float32, int, int64, json.Number:
			return true
		}
		return false
	}
	return true
}

// stringArg returns a string argument or "" when absent.
func stringArg(args map[string]interface{}, name string) string {
	value, _ := args[name].(string)
	return value
}

// floatArg returns a numeric argument or 0 when absent.
func floatArg(args map[string]interface{}, name string) float64 {
	switch value := args[name].(type) {
	case float64:
		return value
	case float32:
		return float64(value)
	case int:
		return float64(value)
	case int64:
		return float64(value)
	case json.Number:
		ret, _ := value.Float64()
		return ret
	}
	return 0
}

// boolArg returns a boolean argument or false when absent.
func boolArg(args map[string]interface{}, name string) bool {
	value, _ := args[name].(bool)
	return value
}
