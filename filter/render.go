package filter

import (
	"encoding/json"
	"strings"
	"time"

	"github.com/araddon/dateparse"
)

// emptyDate is what the grid sends for a cleared date field.
const emptyDate = "0000-00-00"

// Render converts a single raw filter into its SQL expression and value.
func (p *Parser) Render(f RawFilter) (ParsedFilter, error) {
	switch f.Type {
	case TypeNumeric:
		return p.renderComparison(f)
	case TypeDate:
		return p.renderDate(f)
	case TypeString:
		return p.renderString(f)
	case TypeList:
		return p.renderList(f)
	default:
		return ParsedFilter{}, UnknownFilterTypeError{Type: f.Type.String()}
	}
}

func (p *Parser) renderComparison(f RawFilter) (ParsedFilter, error) {
	op, err := ParseComparison(f.Comparison)
	if err != nil {
		return ParsedFilter{}, err
	}
	text, numeric, err := p.scalar(f)
	if err != nil {
		return ParsedFilter{}, err
	}
	if !numeric {
		text = p.quoteLiteral(text)
	}
	return ParsedFilter{
		Expression: p.columnName(f.Field) + " " + string(op),
		Value:      text,
	}, nil
}

func (p *Parser) renderDate(f RawFilter) (ParsedFilter, error) {
	value, _, err := p.scalar(f)
	if err != nil {
		return ParsedFilter{}, err
	}
	if value == emptyDate {
		value = ""
	}
	if t, err := dateparse.ParseIn(value, time.UTC); err == nil {
		value = t.Format(p.layout())
	} else {
		p.logger().Debug().
			Str("field", f.Field).
			Str("value", value).
			Msg("Date filter value is not a date, keeping it as is")
	}
	f.Value = Value{v: value}
	return p.renderComparison(f)
}

func (p *Parser) renderString(f RawFilter) (ParsedFilter, error) {
	text, _, err := p.scalar(f)
	if err != nil {
		return ParsedFilter{}, err
	}
	return ParsedFilter{
		Expression: p.columnName(f.Field) + " LIKE",
		Value:      p.quoteLiteral("%" + text + "%"),
	}, nil
}

func (p *Parser) renderList(f RawFilter) (ParsedFilter, error) {
	var items []string
	switch v := f.Value.v.(type) {
	case []any:
		items = make([]string, 0, len(v))
		for _, e := range v {
			if !isScalar(e) {
				return ParsedFilter{}, InvalidValueError{Field: f.Field, Value: v}
			}
			items = append(items, scalarText(e))
		}
	case []string:
		items = v
	default:
		if !isScalar(v) {
			return ParsedFilter{}, InvalidValueError{Field: f.Field, Value: v}
		}
		items = strings.Split(scalarText(v), ",")
	}

	quoted := make([]string, len(items))
	for i, item := range items {
		quoted[i] = p.quoteLiteral(item)
	}
	return ParsedFilter{
		Expression: p.columnName(f.Field) + " IN",
		Value:      "(" + strings.Join(quoted, ",") + ")",
	}, nil
}

// scalar returns the text of a scalar filter value and whether it is numeric.
func (p *Parser) scalar(f RawFilter) (string, bool, error) {
	switch v := f.Value.v.(type) {
	case json.Number, float64, int:
		return scalarText(v), true, nil
	case string:
		return v, isNumeric(v), nil
	default:
		if !isScalar(v) {
			return "", false, InvalidValueError{Field: f.Field, Value: v}
		}
		return scalarText(v), false, nil
	}
}

func (p *Parser) quoteLiteral(s string) string {
	if p.quote != nil {
		return p.quote(s)
	}
	return "'" + s + "'"
}

func (p *Parser) columnName(field string) string {
	if p.fieldAlias == "" {
		return field
	}
	return p.fieldAlias + "." + field
}

func (p *Parser) layout() string {
	if p.dateFormat == "" {
		return DefaultDateFormat
	}
	return p.dateFormat
}
