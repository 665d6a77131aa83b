package folk

import (
	"fmt"
	"net/url"
	"strings"
)

// Query accumulates URL query parameters in insertion order so the same
// inputs always produce the same string.
type Query []queryParam

type queryParam struct {
	key   string
	value any
}

// Add records a parameter. Nil values are kept in the slice but skipped by
// Encode, which lets callers add optional arguments unconditionally.
func (q Query) Add(key string, value any) Query {
	return append(q, queryParam{key: key, value: value})
}

// Encode renders the query string. Parameters whose value is nil are omitted
// entirely (never emitted as "key="). Returns "" when nothing remains,
// otherwise "?" followed by the encoded pairs in insertion order.
func (q Query) Encode() string {
	var b strings.Builder
	for _, p := range q {
		if p.value == nil {
			continue
		}
		if b.Len() == 0 {
			b.WriteByte('?')
		} else {
			b.WriteByte('&')
		}
		b.WriteString(url.QueryEscape(p.key))
		b.WriteByte('=')
		b.WriteString(url.QueryEscape(stringify(p.value)))
	}
	return b.String()
}

func stringify(v any) string {
	switch n := v.(type) {
	case float64:
		// JSON numbers decode as float64; render integral values without
		// a trailing ".0" so limit=50 stays "50".
		if n == float64(int64(n)) {
			return fmt.Sprintf("%d", int64(n))
		}
		return fmt.Sprintf("%v", n)
	default:
		return fmt.Sprintf("%v", v)
	}
}
