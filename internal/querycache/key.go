package querycache

import (
	"fmt"
	"strings"
)

// Key is a slash-joined list of segments, e.g. "insights/detail/42".
type Key string

func NewKey(segments ...any) Key {
	parts := make([]string, 0, len(segments))
	for _, segment := range segments {
		part := strings.Trim(fmt.Sprint(segment), "/")
		if part == "" {
			continue
		}
		parts = append(parts, part)
	}
	return Key(strings.Join(parts, "/"))
}

// Child appends segments to k.
func (k Key) Child(segments ...any) Key {
	return NewKey(append([]any{string(k)}, segments...)...)
}

// Within reports whether k is prefix or lies below it. Matching is per
// segment: "insights" covers "insights/today" but not "insightsx".
func (k Key) Within(prefix Key) bool {
	if prefix == "" {
		return true
	}
	return k == prefix || strings.HasPrefix(string(k), string(prefix)+"/")
}

func (k Key) String() string {
	return string(k)
}
