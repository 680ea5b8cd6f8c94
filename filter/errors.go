package filter

import "fmt"

// MalformedInputError is returned when the filter text is not a JSON object
// or an array of objects.
type MalformedInputError struct {
	Err error
}

func (e MalformedInputError) Error() string {
	return fmt.Sprintf("malformed filter json: %v", e.Err)
}

func (e MalformedInputError) Unwrap() error {
	return e.Err
}

type UnknownFilterTypeError struct {
	Type string
}

func (e UnknownFilterTypeError) Error() string {
	return fmt.Sprintf("unknown filter type: %q", e.Type)
}

type InvalidComparisonOperatorError struct {
	Comparison string
}

func (e InvalidComparisonOperatorError) Error() string {
	return fmt.Sprintf("invalid comparison operator: %q", e.Comparison)
}

// InvalidValueError is returned when a filter value can't be rendered, for
// example an object or a nested array inside a list filter.
type InvalidValueError struct {
	Field string
	Value any
}

func (e InvalidValueError) Error() string {
	return fmt.Sprintf("invalid value for field %s: %v", e.Field, e.Value)
}
