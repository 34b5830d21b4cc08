package adapter

import (
	"fmt"
	"net/url"
	"strings"
)

// Param is a single query parameter.
type Param struct {
	Key   string
	Value string
}

// Query is an ordered list of query parameters with unique keys.
// The zero value is an empty query ready to use.
type Query []Param

// NewQuery builds a query from key/value pairs. A repeated key replaces the
// earlier value in place.
func NewQuery(params ...Param) Query {
	q := make(Query, 0, len(params))
	for _, p := range params {
		q.Set(p.Key, p.Value)
	}
	return q
}

// ParseQuery decodes a raw URL query string keeping the order in which keys
// first appear. A repeated key replaces the earlier value in place.
func ParseQuery(raw string) (Query, error) {
	var q Query
	for _, part := range strings.Split(raw, "&") {
		if part == "" {
			continue
		}
		rawKey, rawValue, _ := strings.Cut(part, "=")
		key, err := url.QueryUnescape(rawKey)
		if err != nil {
			return nil, fmt.Errorf("invalid query key %q: %w", rawKey, err)
		}
		value, err := url.QueryUnescape(rawValue)
		if err != nil {
			return nil, fmt.Errorf("invalid query value for %q: %w", key, err)
		}
		q.Set(key, value)
	}
	return q, nil
}

// Set adds key with value, or replaces the value of an existing key without
// moving it.
func (q *Query) Set(key, value string) {
	for i := range *q {
		if (*q)[i].Key == key {
			(*q)[i].Value = value
			return
		}
	}
	*q = append(*q, Param{Key: key, Value: value})
}

// Get returns the value of key and whether it is present.
func (q Query) Get(key string) (string, bool) {
	for _, p := range q {
		if p.Key == key {
			return p.Value, true
		}
	}
	return "", false
}

// Encode returns the query in "k1=v1&k2=v2" form, in insertion order.
func (q Query) Encode() string {
	var sb strings.Builder
	for i, p := range q {
		if i > 0 {
			sb.WriteByte('&')
		}
		sb.WriteString(url.QueryEscape(p.Key))
		sb.WriteByte('=')
		sb.WriteString(url.QueryEscape(p.Value))
	}
	return sb.String()
}

// appendQuery returns rawURL with q appended to any query it already
// carries.
func appendQuery(rawURL string, q Query) (string, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "", err
	}
	if len(q) == 0 {
		return u.String(), nil
	}

	encoded := q.Encode()
	if u.RawQuery != "" {
		u.RawQuery += "&" + encoded
	} else {
		u.RawQuery = encoded
	}
	return u.String(), nil
}
