package filter

import (
	"encoding/json"
	"fmt"
)

// Type is the kind of an Ext grid filter, taken from its "type" property.
type Type int

const (
	TypeNumeric Type = iota + 1
	TypeDate
	TypeString
	TypeList
)

var typeNames = map[string]Type{
	"numeric": TypeNumeric,
	"date":    TypeDate,
	"string":  TypeString,
	"list":    TypeList,
}

func (t Type) String() string {
	for name, v := range typeNames {
		if v == t {
			return name
		}
	}
	return fmt.Sprintf("Type(%d)", int(t))
}

func (t *Type) UnmarshalJSON(data []byte) error {
	var name string
	if err := json.Unmarshal(data, &name); err != nil {
		return UnknownFilterTypeError{Type: string(data)}
	}
	v, ok := typeNames[name]
	if !ok {
		return UnknownFilterTypeError{Type: name}
	}
	*t = v
	return nil
}

func (t Type) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.String())
}

// Comparison is the SQL operator of a numeric or date filter.
type Comparison string

const (
	LessThan    Comparison = "<"
	GreaterThan Comparison = ">"
	Equal       Comparison = "="
)

var ComparisonMap = map[string]Comparison{
	"lt": LessThan,
	"gt": GreaterThan,
	"eq": Equal,
}

// ParseComparison translates the Ext comparison token (lt, gt, eq) into its
// SQL operator.
func ParseComparison(token string) (Comparison, error) {
	op, ok := ComparisonMap[token]
	if !ok {
		return "", InvalidComparisonOperatorError{Comparison: token}
	}
	return op, nil
}

// RawFilter is a single decoded filter as sent by the grid.
type RawFilter struct {
	Type       Type   `json:"type"`
	Field      string `json:"field"`
	Value      Value  `json:"value"`
	Comparison string `json:"comparison,omitempty"`
}

func (f *RawFilter) UnmarshalJSON(data []byte) error {
	type rawFilter RawFilter
	var v rawFilter
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	if v.Type == 0 {
		return UnknownFilterTypeError{Type: ""}
	}
	*f = RawFilter(v)
	return nil
}

// Value holds the "value" property of a filter: a string, a json.Number, a
// bool, nil or a []any.
type Value struct {
	v any
}

// NewValue wraps v so it can be used in a RawFilter built by hand. Numbers
// should be passed as json.Number.
func NewValue(v any) Value {
	return Value{v: v}
}

func (v *Value) UnmarshalJSON(data []byte) error {
	var x any
	if err := unmarshalUseNumber(data, &x); err != nil {
		return err
	}
	v.v = x
	return nil
}

func (v Value) MarshalJSON() ([]byte, error) {
	return json.Marshal(v.v)
}

// Interface returns the underlying decoded value.
func (v Value) Interface() any {
	return v.v
}

// ParsedFilter is the rendered form of a filter. Expression holds the field
// and operator, Value the SQL literal that goes on the right hand side.
type ParsedFilter struct {
	Expression string `json:"expression"`
	Value      string `json:"value"`
}

func (f ParsedFilter) String() string {
	return f.Expression + " " + f.Value
}
