package filter

import "github.com/rs/zerolog"

const (
	// DefaultRequestParam is the parameter name a Source is asked for.
	DefaultRequestParam = "filter"

	// DefaultDateFormat is the layout date filters are rendered with (YYYY-MM-DD).
	DefaultDateFormat = "2006-01-02"
)

type Option struct {
	f func(*Parser)
}

// WithRequestParam is an option to change the parameter name that is looked up
// in the Source passed to WithSource. The default is "filter".
func WithRequestParam(name string) Option {
	return Option{
		f: func(p *Parser) {
			p.requestParam = name
		},
	}
}

// WithDateFormat is an option to specify the Go time layout used to render
// the value of date filters.
//
// Example:
//
//	p := filter.NewParser(filter.WithDateFormat("01/02/2006"))
func WithDateFormat(layout string) Option {
	return Option{
		f: func(p *Parser) {
			p.dateFormat = layout
		},
	}
}

// WithSource is an option to read the filter text from src when the parser
// is constructed. The key that is looked up is the request parameter name.
func WithSource(src Source) Option {
	return Option{
		f: func(p *Parser) {
			p.source = src
		},
	}
}

// WithFieldAlias is an option to prefix every field with a table alias,
// `WithFieldAlias("p")` turns `name LIKE` into `p.name LIKE`.
func WithFieldAlias(alias string) Option {
	return Option{
		f: func(p *Parser) {
			p.fieldAlias = alias
		},
	}
}

// WithLiteralQuoter is an option to specify how string literals are quoted.
// By default values are wrapped in single quotes as they are, without escaping
// embedded quotes. An example for github.com/lib/pq is:
//
//	p := filter.NewParser(filter.WithLiteralQuoter(pq.QuoteLiteral))
func WithLiteralQuoter(quote func(string) string) Option {
	return Option{
		f: func(p *Parser) {
			p.quote = quote
		},
	}
}

// WithAccumulate is an option to keep the results of earlier Parse calls,
// every Parse appends to the parsed filters instead of replacing them.
func WithAccumulate() Option {
	return Option{
		f: func(p *Parser) {
			p.accumulate = true
		},
	}
}

// WithLogger is an option to specify the logger used for debug output.
func WithLogger(log zerolog.Logger) Option {
	return Option{
		f: func(p *Parser) {
			p.log = &log
		},
	}
}
