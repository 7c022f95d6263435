package rulefunc

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"github.com/speakeasy-api/lintfuncs/jsonpointer"
)

// Path is an ordered sequence of map keys (string) and sequence indices (int) locating a value in a document.
type Path []any

// NewPath creates a path from the given segments.
func NewPath(segments ...any) Path {
	if len(segments) == 0 {
		return Path{}
	}
	p := make(Path, len(segments))
	copy(p, segments)
	return p
}

// Append returns a new path made of p followed by segments. p itself is never modified,
// even when its backing array has spare capacity.
func (p Path) Append(segments ...any) Path {
	out := make(Path, 0, len(p)+len(segments))
	out = append(out, p...)
	return append(out, segments...)
}

// Clone returns a copy of p that shares no storage with it.
func (p Path) Clone() Path {
	if p == nil {
		return nil
	}
	out := make(Path, len(p))
	copy(out, p)
	return out
}

// Equal reports whether p and other have the same segments in the same order.
func (p Path) Equal(other Path) bool {
	if len(p) != len(other) {
		return false
	}
	for i := range p {
		if !segmentEqual(p[i], other[i]) {
			return false
		}
	}
	return true
}

// HasPrefix reports whether prefix is a leading subsequence of p.
func (p Path) HasPrefix(prefix Path) bool {
	if len(prefix) > len(p) {
		return false
	}
	return p[:len(prefix)].Equal(prefix)
}

// String renders the path with dot separators, e.g. paths./pets.post.requestBody.
func (p Path) String() string {
	parts := make([]string, 0, len(p))
	for _, segment := range p {
		parts = append(parts, segmentString(segment))
	}
	return strings.Join(parts, ".")
}

// JSONPointer renders the path as an RFC6901 pointer, e.g. /paths/~1pets/post/requestBody.
func (p Path) JSONPointer() jsonpointer.JSONPointer {
	return jsonpointer.FromPath(p)
}

func segmentString(segment any) string {
	switch s := segment.(type) {
	case string:
		return s
	case int:
		return strconv.Itoa(s)
	default:
		return fmt.Sprint(s)
	}
}

func segmentEqual(a, b any) bool {
	switch av := a.(type) {
	case string:
		bv, ok := b.(string)
		return ok && av == bv
	case int:
		bv, ok := b.(int)
		return ok && av == bv
	default:
		return reflect.DeepEqual(a, b)
	}
}
