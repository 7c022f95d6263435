package rulefunc_test

import (
	"testing"

	"github.com/speakeasy-api/lintfuncs/jsonpointer"
	"github.com/speakeasy-api/lintfuncs/rulefunc"
	"github.com/stretchr/testify/assert"
)

func TestPath_Append_DoesNotModifyReceiver(t *testing.T) {
	t.Parallel()

	// spare capacity would let a naive append write into the shared backing array
	base := make(rulefunc.Path, 0, 8)
	base = append(base, "paths", "/pets", "post", "requestBody")

	first := base.Append("content", "application/json")
	second := base.Append("description")

	assert.Equal(t, rulefunc.Path{"paths", "/pets", "post", "requestBody"}, base, "receiver should be unchanged")
	assert.Equal(t, rulefunc.Path{"paths", "/pets", "post", "requestBody", "content", "application/json"}, first)
	assert.Equal(t, rulefunc.Path{"paths", "/pets", "post", "requestBody", "description"}, second)
	assert.True(t, first.HasPrefix(base), "extended path should keep the original prefix")
}

func TestPath_Append_NilReceiver(t *testing.T) {
	t.Parallel()

	var p rulefunc.Path
	extended := p.Append("info")

	assert.Nil(t, p)
	assert.Equal(t, rulefunc.Path{"info"}, extended)
	assert.NotNil(t, p.Append(), "appending nothing should still produce a usable path")
}

func TestNewPath_CopiesSegments(t *testing.T) {
	t.Parallel()

	segments := []any{"tags", 0}
	p := rulefunc.NewPath(segments...)
	segments[0] = "servers"

	assert.Equal(t, rulefunc.Path{"tags", 0}, p)
	assert.Equal(t, rulefunc.Path{}, rulefunc.NewPath())
}

func TestPath_Clone(t *testing.T) {
	t.Parallel()

	p := rulefunc.NewPath("info", "description")
	clone := p.Clone()
	clone[1] = "title"

	assert.Equal(t, rulefunc.Path{"info", "description"}, p)
	assert.Nil(t, rulefunc.Path(nil).Clone())
}

func TestPath_Equal(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		a        rulefunc.Path
		b        rulefunc.Path
		expected bool
	}{
		{name: "same segments", a: rulefunc.Path{"tags", 0}, b: rulefunc.Path{"tags", 0}, expected: true},
		{name: "both empty", a: rulefunc.Path{}, b: nil, expected: true},
		{name: "different length", a: rulefunc.Path{"tags"}, b: rulefunc.Path{"tags", 0}, expected: false},
		{name: "index and key differ", a: rulefunc.Path{"responses", 200}, b: rulefunc.Path{"responses", "200"}, expected: false},
		{name: "uncomparable segments", a: rulefunc.Path{[]string{"a"}}, b: rulefunc.Path{[]string{"a"}}, expected: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, tt.a.Equal(tt.b))
		})
	}
}

func TestPath_HasPrefix(t *testing.T) {
	t.Parallel()

	p := rulefunc.NewPath("paths", "/pets", "get")

	assert.True(t, p.HasPrefix(nil))
	assert.True(t, p.HasPrefix(rulefunc.NewPath("paths", "/pets")))
	assert.False(t, p.HasPrefix(rulefunc.NewPath("paths", "/owners")))
	assert.False(t, p.HasPrefix(rulefunc.NewPath("paths", "/pets", "get", "responses")))
}

func TestPath_String(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		path     rulefunc.Path
		expected string
	}{
		{name: "empty", path: nil, expected: ""},
		{name: "keys", path: rulefunc.NewPath("info", "description"), expected: "info.description"},
		{name: "with index", path: rulefunc.NewPath("tags", 1, "name"), expected: "tags.1.name"},
		{name: "media type", path: rulefunc.NewPath("paths", "/pets", "post", "requestBody", "content", "application/json"), expected: "paths./pets.post.requestBody.content.application/json"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, tt.path.String())
		})
	}
}

func TestPath_JSONPointer(t *testing.T) {
	t.Parallel()

	p := rulefunc.NewPath("paths", "/pets", "post", "requestBody", "content", "application/json")
	assert.Equal(t, jsonpointer.JSONPointer("/paths/~1pets/post/requestBody/content/application~1json"), p.JSONPointer())
	assert.Equal(t, jsonpointer.Root, rulefunc.Path{}.JSONPointer())
}

func TestDiagnostic_String(t *testing.T) {
	t.Parallel()

	d := rulefunc.NewDiagnostic(rulefunc.NewPath("info", "description"), "Description must be a string.")
	assert.Equal(t, "info.description: Description must be a string.", d.String())
}
