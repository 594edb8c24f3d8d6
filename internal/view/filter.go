package view

import (
	"strings"

	"github.com/rshade/pokecatch/internal/catalog"
)

// Filter returns, in order, the records whose name contains query. Both
// sides are compared lower-cased. An empty query returns records unchanged.
// The result is computed fresh on every call and never shares state with
// earlier calls beyond the records themselves.
func Filter(records []catalog.Pokemon, query string) []catalog.Pokemon {
	if query == "" {
		return records
	}

	q := strings.ToLower(query)
	out := make([]catalog.Pokemon, 0, len(records))
	for _, r := range records {
		if strings.Contains(strings.ToLower(r.Name), q) {
			out = append(out, r)
		}
	}
	return out
}
