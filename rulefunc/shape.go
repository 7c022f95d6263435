package rulefunc

import (
	"fmt"
	"math"
	"reflect"
	"sort"

	"gopkg.in/yaml.v3"
)

// Object is a read-only view over a keyed input, either a Go map or a YAML mapping node.
type Object interface {
	// Keys returns the object's own keys. Map keys are sorted. Mapping node keys keep document order,
	// followed by keys merged in through <<.
	Keys() []string

	// Has reports whether key is one of the object's own keys.
	Has(key string) bool

	// Get returns the value stored under key. Values of a mapping node are returned as *yaml.Node.
	Get(key string) (any, bool)

	// Len returns the number of keys.
	Len() int
}

// AsString returns the string held by v. v must be a string or a YAML scalar node tagged !!str.
func AsString(v any) (string, bool) {
	switch s := v.(type) {
	case string:
		return s, true
	case *yaml.Node:
		node := unwrapNode(s)
		if node == nil || node.Kind != yaml.ScalarNode || node.ShortTag() != "!!str" {
			return "", false
		}
		return node.Value, true
	default:
		return "", false
	}
}

// AsObject returns an Object view of v. v must be a non-nil Go map (or pointer to one) or a YAML mapping node.
// Slices, scalars and nil are not objects.
func AsObject(v any) (Object, bool) {
	if v == nil {
		return nil, false
	}

	if n, ok := v.(*yaml.Node); ok {
		node := unwrapNode(n)
		if node == nil || node.Kind != yaml.MappingNode {
			return nil, false
		}
		return newNodeObject(node), true
	}

	rv := reflect.ValueOf(v)
	for rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return nil, false
		}
		rv = rv.Elem()
	}
	if rv.Kind() != reflect.Map || rv.IsNil() {
		return nil, false
	}

	return newMapObject(rv), true
}

// Truthy reports whether v would count as present in a boolean test.
// nil, false, numeric zero, NaN, the empty string, nil maps, slices and pointers, and YAML null, false,
// zero, NaN and empty string scalars are falsy. Everything else, including empty objects and sequences, is truthy.
func Truthy(v any) bool {
	if v == nil {
		return false
	}

	if n, ok := v.(*yaml.Node); ok {
		return nodeTruthy(unwrapNode(n))
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Bool:
		return rv.Bool()
	case reflect.String:
		return rv.Len() > 0
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return rv.Int() != 0
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return rv.Uint() != 0
	case reflect.Float32, reflect.Float64:
		f := rv.Float()
		return f != 0 && !math.IsNaN(f)
	case reflect.Map, reflect.Slice, reflect.Pointer, reflect.Interface, reflect.Func, reflect.Chan:
		return !rv.IsNil()
	default:
		return true
	}
}

func nodeTruthy(node *yaml.Node) bool {
	if node == nil {
		return false
	}
	if node.Kind != yaml.ScalarNode {
		return true
	}

	// decode with yaml's own resolver so spellings like .nan, 0x0 or +.inf match the decoded value
	var v any
	if err := node.Decode(&v); err != nil {
		return node.Value != ""
	}
	return Truthy(v)
}

// unwrapNode follows document wrappers and aliases down to the node holding the value.
func unwrapNode(node *yaml.Node) *yaml.Node {
	for node != nil {
		switch {
		case node.Kind == yaml.DocumentNode:
			if len(node.Content) == 0 {
				return nil
			}
			node = node.Content[0]
		case node.Kind == yaml.AliasNode:
			node = node.Alias
		default:
			return node
		}
	}
	return nil
}

type mapObject struct {
	keys   []string
	values map[string]any
}

func newMapObject(rv reflect.Value) mapObject {
	obj := mapObject{
		keys:   make([]string, 0, rv.Len()),
		values: make(map[string]any, rv.Len()),
	}

	iter := rv.MapRange()
	for iter.Next() {
		key := fmt.Sprint(iter.Key().Interface())
		if _, seen := obj.values[key]; seen {
			continue
		}
		obj.keys = append(obj.keys, key)
		obj.values[key] = iter.Value().Interface()
	}
	sort.Strings(obj.keys)

	return obj
}

func (m mapObject) Keys() []string {
	out := make([]string, len(m.keys))
	copy(out, m.keys)
	return out
}

func (m mapObject) Has(key string) bool {
	_, ok := m.values[key]
	return ok
}

func (m mapObject) Get(key string) (any, bool) {
	v, ok := m.values[key]
	return v, ok
}

func (m mapObject) Len() int {
	return len(m.keys)
}

type nodeEntry struct {
	key   string
	value *yaml.Node
}

// nodeObject holds the entries of a mapping node with merge keys (<<) resolved.
type nodeObject struct {
	entries []nodeEntry
}

func newNodeObject(node *yaml.Node) nodeObject {
	obj := nodeObject{}
	collectNodeEntries(node, &obj, map[string]bool{}, map[*yaml.Node]bool{})
	return obj
}

// collectNodeEntries adds own keys first, then keys from merged mappings that are not already present.
// Within a merged sequence, earlier mappings win.
func collectNodeEntries(node *yaml.Node, obj *nodeObject, seen map[string]bool, visiting map[*yaml.Node]bool) {
	if node == nil || visiting[node] {
		return
	}
	visiting[node] = true
	defer delete(visiting, node)

	var merges []*yaml.Node
	for i := 0; i+1 < len(node.Content); i += 2 {
		key := unwrapNode(node.Content[i])
		if key == nil || key.Kind != yaml.ScalarNode {
			continue
		}
		if key.ShortTag() == "!!merge" {
			merges = append(merges, node.Content[i+1])
			continue
		}
		if seen[key.Value] {
			continue
		}
		seen[key.Value] = true
		obj.entries = append(obj.entries, nodeEntry{key: key.Value, value: node.Content[i+1]})
	}

	for _, merge := range merges {
		merged := unwrapNode(merge)
		if merged == nil {
			continue
		}
		switch merged.Kind {
		case yaml.MappingNode:
			collectNodeEntries(merged, obj, seen, visiting)
		case yaml.SequenceNode:
			for _, item := range merged.Content {
				if m := unwrapNode(item); m != nil && m.Kind == yaml.MappingNode {
					collectNodeEntries(m, obj, seen, visiting)
				}
			}
		}
	}
}

func (n nodeObject) Keys() []string {
	keys := make([]string, 0, len(n.entries))
	for _, e := range n.entries {
		keys = append(keys, e.key)
	}
	return keys
}

func (n nodeObject) Has(key string) bool {
	_, ok := n.Get(key)
	return ok
}

func (n nodeObject) Get(key string) (any, bool) {
	for _, e := range n.entries {
		if e.key == key {
			return e.value, true
		}
	}
	return nil, false
}

func (n nodeObject) Len() int {
	return len(n.entries)
}
