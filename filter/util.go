package filter

import (
	"bytes"
	"encoding/json"
	"regexp"
	"strconv"
)

// numericPattern accepts what the grid treats as a number: optional sign,
// digits with an optional fraction and exponent, surrounding whitespace.
var numericPattern = regexp.MustCompile(`^\s*[+-]?(\d+(\.\d*)?|\.\d+)([eE][+-]?\d+)?\s*$`)

func isNumeric(s string) bool {
	return numericPattern.MatchString(s)
}

func unmarshalUseNumber(data []byte, v any) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	return dec.Decode(v)
}

func isScalar(v any) bool {
	if v == nil {
		return true
	}

	switch v.(type) {
	case bool, json.Number, string, float64, int:
		return true
	default:
		return false
	}
}

// scalarText renders a scalar the way it is embedded in SQL text.
func scalarText(v any) string {
	switch v := v.(type) {
	case nil:
		return ""
	case string:
		return v
	case json.Number:
		return v.String()
	case bool:
		return strconv.FormatBool(v)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case int:
		return strconv.Itoa(v)
	default:
		return ""
	}
}
