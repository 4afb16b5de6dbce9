package rpc

import (
	"net/url"
	"strings"
)

// Query is an insertion-ordered set of query parameters.
// url.Values sorts keys on Encode, providers and tests expect the order parameters were added in.
type Query struct {
	keys   []string
	values []string
}

func NewQuery() *Query { return &Query{} }

func (q *Query) Add(key, value string) *Query {
	q.keys = append(q.keys, key)
	q.values = append(q.values, value)
	return q
}

func (q *Query) Len() int {
	if q == nil {
		return 0
	}
	return len(q.keys)
}

func (q *Query) Get(key string) (string, bool) {
	if q == nil {
		return "", false
	}
	for i, k := range q.keys {
		if k == key {
			return q.values[i], true
		}
	}
	return "", false
}

func (q *Query) Encode() string {
	if q.Len() == 0 {
		return ""
	}
	parts := make([]string, len(q.keys))
	for i, k := range q.keys {
		parts[i] = url.QueryEscape(k) + "=" + url.QueryEscape(q.values[i])
	}
	return strings.Join(parts, "&")
}

// PathEscape escapes an identifier used as a path segment.
func PathEscape(segment string) string {
	return url.PathEscape(segment)
}
