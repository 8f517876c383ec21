// Package numeric coerces loosely typed JSON values into finite numbers.
package numeric

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// Finite converts v to a float64 when it represents a finite number.
// JSON decoding into `any` yields float64 for numbers; json.Number and
// numeric strings are accepted too since clients send both.
func Finite(v any) (float64, bool) {
	switch t := v.(type) {
	case float64:
		return t, !math.IsNaN(t) && !math.IsInf(t, 0)
	case float32:
		return Finite(float64(t))
	case int:
		return float64(t), true
	case int32:
		return float64(t), true
	case int64:
		return float64(t), true
	case json.Number:
		f, err := t.Float64()
		if err != nil {
			return 0, false
		}
		return Finite(f)
	case string:
		trimmed := strings.TrimSpace(t)
		if trimmed == "" {
			return 0, false
		}
		f, err := strconv.ParseFloat(trimmed, 64)
		if err != nil {
			return 0, false
		}
		return Finite(f)
	default:
		return 0, false
	}
}
