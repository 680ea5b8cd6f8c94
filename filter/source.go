package filter

import "net/http"

// Source looks up the raw filter text by parameter name. url.Values
// satisfies it.
type Source interface {
	Get(key string) string
}

type SourceFunc func(key string) string

func (f SourceFunc) Get(key string) string {
	return f(key)
}

// RequestSource reads parameters from the query string of r, falling back to
// its POST form when the query string has no (or an empty) value.
func RequestSource(r *http.Request) Source {
	return SourceFunc(func(key string) string {
		if v := r.URL.Query().Get(key); v != "" {
			return v
		}
		return r.PostFormValue(key)
	})
}
