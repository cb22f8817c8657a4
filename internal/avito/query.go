package avito

import (
	"net/url"
	"strconv"
	"strings"
)

// pathQuery appends query parameters to a path in the order they are added.
// url.Values sorts keys on Encode, which would lose declaration order.
type pathQuery struct {
	b strings.Builder
	n int
}

func newPathQuery(path string) *pathQuery {
	q := &pathQuery{}
	q.b.WriteString(path)
	return q
}

func (q *pathQuery) raw(key, value string) {
	if q.n == 0 {
		q.b.WriteByte('?')
	} else {
		q.b.WriteByte('&')
	}
	q.n++
	q.b.WriteString(url.QueryEscape(key))
	q.b.WriteByte('=')
	q.b.WriteString(value)
}

// str adds key=value when value is non-empty.
func (q *pathQuery) str(key, value string) {
	if value != "" {
		q.raw(key, url.QueryEscape(value))
	}
}

// positive adds key=value when value is greater than zero.
func (q *pathQuery) positive(key string, value int) {
	if value > 0 {
		q.raw(key, strconv.Itoa(value))
	}
}

// flag adds key=true when value is set.
func (q *pathQuery) flag(key string, value bool) {
	if value {
		q.raw(key, "true")
	}
}

// ids adds key as a comma separated list when ids is non-empty.
func (q *pathQuery) ids(key string, ids []int64) {
	if len(ids) == 0 {
		return
	}
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = strconv.FormatInt(id, 10)
	}
	q.raw(key, strings.Join(parts, ","))
}

func (q *pathQuery) String() string {
	return q.b.String()
}
