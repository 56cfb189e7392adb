package digraph

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// CoerceLabel normalizes a dynamically typed value into a canonical vertex
// label. It accepts strings, fmt.Stringer implementations, json.Number, and
// all integer and float kinds; numbers are formatted in their shortest
// unambiguous decimal form, so a JSON document may list vertices as numbers
// and still address them as strings afterwards.
//
// Returns ErrInvalidLabel for unsupported types, non-finite floats, and
// values whose string form is empty after trimming whitespace. Coercion
// happens only at the public API boundary; internal storage is string-only.
func CoerceLabel(v any) (string, error) {
	var label string
	switch val := v.(type) {
	case string:
		label = val
	case json.Number:
		label = val.String()
	case fmt.Stringer:
		label = val.String()
	case int:
		label = strconv.Itoa(val)
	case int8, int16, int32, int64:
		label = fmt.Sprintf("%d", val)
	case uint, uint8, uint16, uint32, uint64:
		label = fmt.Sprintf("%d", val)
	case float32:
		return CoerceLabel(float64(val))
	case float64:
		if math.IsNaN(val) || math.IsInf(val, 0) {
			return "", fmt.Errorf("%w: non-finite number %v", ErrInvalidLabel, val)
		}
		label = strconv.FormatFloat(val, 'g', -1, 64)
	default:
		return "", fmt.Errorf("%w: unsupported type %T", ErrInvalidLabel, v)
	}

	label = strings.TrimSpace(label)
	if label == "" {
		return "", ErrInvalidLabel
	}
	return label, nil
}
