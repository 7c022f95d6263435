// Package jsonpointer provides JSONPointer an implementation of RFC6901 https://datatracker.ietf.org/doc/html/rfc6901
// used to render diagnostic paths and to resolve them against decoded documents.
package jsonpointer

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"github.com/speakeasy-api/lintfuncs/errors"
	"gopkg.in/yaml.v3"
)

const (
	// ErrNotFound is returned when the target is not found.
	ErrNotFound = errors.Error("not found")
	// ErrInvalidPath is returned when the path is invalid.
	ErrInvalidPath = errors.Error("invalid path")
	// ErrValidation is returned when the jsonpointer is invalid.
	ErrValidation = errors.Error("validation error")
)

// Root is the pointer addressing the whole document.
const Root = JSONPointer("/")

// JSONPointer represents a JSON Pointer value as defined by RFC6901 https://datatracker.ietf.org/doc/html/rfc6901
type JSONPointer string

// Validate will validate the JSONPointer is valid as per RFC6901.
func (j JSONPointer) Validate() error {
	_, err := j.getNavigationStack()
	if err != nil {
		return ErrValidation.Wrap(err)
	}
	return nil
}

// Parts returns the unescaped reference tokens of the pointer.
func (j JSONPointer) Parts() ([]string, error) {
	stack, err := j.getNavigationStack()
	if err != nil {
		return nil, ErrValidation.Wrap(err)
	}

	parts := make([]string, 0, len(stack))
	for _, part := range stack {
		parts = append(parts, part.unescapeValue())
	}
	return parts, nil
}

// GetTarget will evaluate the JSONPointer against the source and return the target.
// The source can be any decoded document: Go maps, slices and arrays, or a *yaml.Node tree.
// Numeric tokens address map keys as well as sequence indices, so "/responses/200" works against
// a responses map.
func GetTarget(source any, pointer JSONPointer) (any, error) {
	stack, err := pointer.getNavigationStack()
	if err != nil {
		return nil, ErrValidation.Wrap(err)
	}

	if len(stack) == 0 {
		if node, ok := source.(*yaml.Node); ok && node != nil && node.Kind == yaml.DocumentNode && len(node.Content) > 0 {
			return node.Content[0], nil
		}
	}

	return getCurrentStackTarget(source, stack, "/")
}

// FromPath converts a path of string keys and integer indices to a JSONPointer.
// Other segment types are rendered with fmt.Sprint. An empty path yields Root.
func FromPath(segments []any) JSONPointer {
	if len(segments) == 0 {
		return Root
	}

	parts := make([]string, 0, len(segments))
	for _, segment := range segments {
		switch s := segment.(type) {
		case string:
			parts = append(parts, s)
		case int:
			parts = append(parts, strconv.Itoa(s))
		default:
			parts = append(parts, fmt.Sprint(s))
		}
	}
	return PartsToJSONPointer(parts)
}

// PartsToJSONPointer will convert the exploded parts of a JSONPointer to a JSONPointer.
func PartsToJSONPointer(parts []string) JSONPointer {
	var sb strings.Builder
	for _, part := range parts {
		sb.WriteByte('/')
		sb.WriteString(escape(part))
	}
	return JSONPointer(sb.String())
}

func getCurrentStackTarget(source any, stack []navigationPart, currentPath string) (any, error) {
	if len(stack) == 0 {
		return source, nil
	}

	currentPart := stack[0]
	stack = stack[1:]

	currentPath = buildPath(currentPath, currentPart)

	return getTarget(source, currentPart, stack, currentPath)
}

func getTarget(source any, currentPart navigationPart, stack []navigationPart, currentPath string) (any, error) {
	if node, ok := source.(*yaml.Node); ok {
		return getYamlNodeTarget(node, currentPart, stack, currentPath)
	}

	if source == nil {
		return nil, ErrNotFound.Wrap(fmt.Errorf("value is null at %s", currentPath))
	}

	sourceVal := reflect.Indirect(reflect.ValueOf(source))

	switch sourceVal.Kind() {
	case reflect.Map:
		return getMapTarget(sourceVal, currentPart, stack, currentPath)
	case reflect.Slice, reflect.Array:
		return getSliceTarget(sourceVal, currentPart, stack, currentPath)
	default:
		return nil, ErrInvalidPath.Wrap(fmt.Errorf("expected map or slice, got %s at %s", sourceVal.Kind(), currentPath))
	}
}

func getMapTarget(sourceVal reflect.Value, currentPart navigationPart, stack []navigationPart, currentPath string) (any, error) {
	if sourceVal.IsNil() {
		return nil, ErrNotFound.Wrap(fmt.Errorf("map is nil at %s", currentPath))
	}

	key := currentPart.unescapeValue()

	// Keys are compared in their rendered form so map[any]any documents with integer keys
	// (unquoted status codes) resolve the same as string keyed ones.
	iter := sourceVal.MapRange()
	for iter.Next() {
		if fmt.Sprint(iter.Key().Interface()) == key {
			return getCurrentStackTarget(iter.Value().Interface(), stack, currentPath)
		}
	}

	return nil, ErrNotFound.Wrap(fmt.Errorf("key %s not found in map at %s", key, currentPath))
}

func getSliceTarget(sourceVal reflect.Value, currentPart navigationPart, stack []navigationPart, currentPath string) (any, error) {
	if currentPart.Type != partTypeIndex {
		return nil, ErrInvalidPath.Wrap(fmt.Errorf("expected index, got %s at %s", currentPart.Type, currentPath))
	}

	if sourceVal.Kind() == reflect.Slice && sourceVal.IsNil() {
		return nil, ErrNotFound.Wrap(fmt.Errorf("slice is nil at %s", currentPath))
	}

	index := currentPart.getIndex()

	if index < 0 || index >= sourceVal.Len() {
		return nil, ErrNotFound.Wrap(fmt.Errorf("index %d out of range for slice/array of length %d at %s", index, sourceVal.Len(), currentPath))
	}

	return getCurrentStackTarget(sourceVal.Index(index).Interface(), stack, currentPath)
}

func buildPath(currentPath string, currentPart navigationPart) string {
	if !strings.HasSuffix(currentPath, "/") {
		currentPath += "/"
	}
	return currentPath + currentPart.Value
}

// EscapeString escapes a string for use as a reference token in a JSON pointer according to RFC6901.
// It replaces "~" with "~0" and "/" with "~1" as required by RFC6901.
func EscapeString(s string) string {
	return escape(s)
}

func escape(part string) string {
	return strings.ReplaceAll(strings.ReplaceAll(part, "~", "~0"), "/", "~1")
}
