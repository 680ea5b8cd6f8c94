package filter

import "strings"

// QueryBuilder receives one predicate per parsed filter, for example a thin
// wrapper around a query builder that ANDs predicates together.
type QueryBuilder interface {
	AndWhere(predicate string)
}

// Where renders the parsed filters as a WHERE clause. Without filters it
// returns "WHERE 1=1".
func (p *Parser) Where() string {
	if len(p.parsed) == 0 {
		return "WHERE 1=1"
	}
	conditions := make([]string, len(p.parsed))
	for i, f := range p.parsed {
		conditions[i] = f.String()
	}
	return "WHERE " + strings.Join(conditions, " AND ")
}

// ParseIntoQuery parses the filters and appends the WHERE clause to query.
func (p *Parser) ParseIntoQuery(query string) (string, error) {
	if err := p.Parse(); err != nil {
		return "", err
	}
	return query + " " + p.Where(), nil
}

// ParseInto parses the filters and hands each of them to qb in order.
func (p *Parser) ParseInto(qb QueryBuilder) error {
	if err := p.Parse(); err != nil {
		return err
	}
	for _, f := range p.parsed {
		qb.AndWhere(f.String())
	}
	return nil
}

// Apply parses the filters of p and passes the result to sink.
func Apply[T any](p *Parser, sink func([]ParsedFilter) (T, error)) (T, error) {
	if err := p.Parse(); err != nil {
		var zero T
		return zero, err
	}
	return sink(p.ParsedFilters())
}
