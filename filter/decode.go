package filter

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
)

// Decode turns the filter text sent by an Ext grid into raw filters. The text
// is either a single JSON object or an array of them. Empty text decodes to
// no filters.
func Decode(text string) ([]RawFilter, error) {
	if text == "" {
		return []RawFilter{}, nil
	}

	data := []byte(text)
	var probe json.RawMessage
	if err := json.Unmarshal(data, &probe); err != nil {
		return nil, MalformedInputError{Err: err}
	}

	var filters []RawFilter
	switch probe[0] {
	case '[':
		if err := json.Unmarshal(probe, &filters); err != nil {
			return nil, decodeError(err)
		}
	case '{':
		var f RawFilter
		if err := json.Unmarshal(probe, &f); err != nil {
			return nil, decodeError(err)
		}
		filters = []RawFilter{f}
	default:
		return nil, MalformedInputError{Err: fmt.Errorf("expected an object or an array, got %s", truncate(probe, 32))}
	}
	if filters == nil {
		filters = []RawFilter{}
	}
	return filters, nil
}

func decodeError(err error) error {
	var unknown UnknownFilterTypeError
	if errors.As(err, &unknown) {
		return unknown
	}
	return MalformedInputError{Err: err}
}

func truncate(b []byte, n int) string {
	b = bytes.TrimSpace(b)
	if len(b) > n {
		return string(b[:n]) + "..."
	}
	return string(b)
}
