// Package conv provides small conversion helpers for loosely typed
// JSON-RPC values.
package conv

import (
	"encoding/json"
	"strconv"
)

// AsInt coerces a JSON-RPC identifier-like value into an int, returning 0
// when the value carries no usable numeric content.
func AsInt(value interface{}) int {
	switch actual := value.(type) {
	case int:
		return actual
	case int64:
		return int(actual)
	case uint64:
		return int(actual)
	case float64:
		return int(actual)
	case json.Number:
		ret, _ := actual.Int64()
		return int(ret)
	case string:
		ret, _ := strconv.Atoi(actual)
		return ret
	}
	return 0
}
