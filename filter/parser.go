package filter

import (
	"fmt"

	"github.com/rs/zerolog"
)

var nopLogger = zerolog.Nop()

// Parser holds the filter text sent by an Ext grid and the filters it was
// parsed into. The zero value is ready to use with the default options.
//
// A Parser is not safe for concurrent use, create one per request.
type Parser struct {
	filters string
	parsed  []ParsedFilter

	requestParam string
	dateFormat   string
	fieldAlias   string
	accumulate   bool
	quote        func(string) string
	source       Source
	log          *zerolog.Logger
}

// NewParser creates a new Parser. When WithSource is given the filter text is
// read from the source right away.
func NewParser(options ...Option) *Parser {
	p := &Parser{
		requestParam: DefaultRequestParam,
		dateFormat:   DefaultDateFormat,
	}
	for _, option := range options {
		if option.f != nil {
			option.f(p)
		}
	}
	if p.source != nil {
		p.filters = p.source.Get(p.RequestParam())
		p.logger().Debug().
			Str("param", p.RequestParam()).
			Int("length", len(p.filters)).
			Msg("Pulled filters from source")
	}
	return p
}

// SetFilters replaces the raw filter text. Parsed filters are left alone until
// the next call to Parse.
func (p *Parser) SetFilters(filters string) *Parser {
	p.filters = filters
	return p
}

// Filters returns the raw filter text exactly as it was set.
func (p *Parser) Filters() string {
	return p.filters
}

func (p *Parser) String() string {
	return p.filters
}

// ParsedFilters returns the filters rendered by Parse, in input order.
func (p *Parser) ParsedFilters() []ParsedFilter {
	return p.parsed
}

func (p *Parser) RequestParam() string {
	if p.requestParam == "" {
		return DefaultRequestParam
	}
	return p.requestParam
}

func (p *Parser) DateFormat() string {
	return p.layout()
}

// Reset forgets all parsed filters.
func (p *Parser) Reset() {
	p.parsed = nil
}

// Parse decodes the raw filter text and renders every filter in it.
//
// The result replaces the filters of an earlier Parse, unless the parser was
// created WithAccumulate. Nothing is stored when any filter in the batch fails.
func (p *Parser) Parse() error {
	raw, err := Decode(p.filters)
	if err != nil {
		p.logger().Debug().Err(err).Msg("Failed to decode filters")
		return err
	}

	parsed := make([]ParsedFilter, 0, len(raw))
	for i, f := range raw {
		pf, err := p.Render(f)
		if err != nil {
			p.logger().Debug().
				Err(err).
				Int("index", i).
				Str("field", f.Field).
				Msg("Failed to render filter")
			return fmt.Errorf("filter %d: %w", i, err)
		}
		p.logger().Debug().
			Str("type", f.Type.String()).
			Str("field", f.Field).
			Str("condition", pf.String()).
			Msg("Rendered filter")
		parsed = append(parsed, pf)
	}

	if p.accumulate {
		p.parsed = append(p.parsed, parsed...)
	} else {
		p.parsed = parsed
	}
	return nil
}

func (p *Parser) logger() *zerolog.Logger {
	if p.log == nil {
		return &nopLogger
	}
	return p.log
}
