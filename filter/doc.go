// This package converts the filters sent by an Ext JS grid into SQL predicates
// for a WHERE clause.
//
// Filters arrive as JSON, a single object or an array of them:
//
//	[{"type": "numeric", "field": "age", "value": 18, "comparison": "gt"},
//	 {"type": "list", "field": "role", "value": ["admin", "user"]}]
//
// and are rendered into expression/value pairs such as `age >` / `18` and
// `role IN` / `('admin','user')`.
//
// Values are embedded as literals. Quotes inside values are not escaped unless
// a quoter is configured with WithLiteralQuoter, and field names are used as
// they are, so never pass untrusted field names.
//
// See: https://docs.sencha.com/extjs/3.4.0/#!/api/Ext.ux.grid.GridFilters
package filter
