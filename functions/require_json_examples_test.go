package functions_test

import (
	"testing"

	"github.com/speakeasy-api/lintfuncs/functions"
	"github.com/speakeasy-api/lintfuncs/rulefunc"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

const msgMissingExample = "application/json requestBody must include an example or examples."

func requestBodyCtx() rulefunc.Context {
	return rulefunc.Context{Path: rulefunc.NewPath("paths", "/pets", "post", "requestBody")}
}

func TestRequireJSONExamples_Success(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input any
	}{
		{name: "nil", input: nil},
		{name: "string", input: "requestBody"},
		{name: "array", input: []any{map[string]any{}}},
		{name: "empty object", input: map[string]any{}},
		{name: "no content", input: map[string]any{"description": "a pet"}},
		{name: "text only", input: map[string]any{
			"content": map[string]any{"text/plain": map[string]any{}},
		}},
		{name: "null content", input: map[string]any{"content": nil}},
		{name: "string content", input: map[string]any{"content": "application/json"}},
		{name: "other media type only", input: map[string]any{
			"content": map[string]any{"application/xml": map[string]any{}},
		}},
		{name: "example", input: map[string]any{
			"content": map[string]any{"application/json": map[string]any{"example": map[string]any{"name": "Rex"}}},
		}},
		{name: "examples", input: map[string]any{
			"content": map[string]any{"application/json": map[string]any{"examples": map[string]any{}}},
		}},
		{name: "null example still counts as present", input: map[string]any{
			"content": map[string]any{"application/json": map[string]any{"example": nil}},
		}},
		{name: "null json entry", input: map[string]any{
			"content": map[string]any{"application/json": nil},
		}},
		{name: "false json entry", input: map[string]any{
			"content": map[string]any{"application/json": false},
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Empty(t, functions.RequireJSONExamples(tt.input, nil, requestBodyCtx()))
		})
	}
}

func TestRequireJSONExamples_Error(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input any
	}{
		{name: "schema without example", input: map[string]any{
			"content": map[string]any{"application/json": map[string]any{"schema": map[string]any{}}},
		}},
		{name: "empty media type", input: map[string]any{
			"content": map[string]any{"application/json": map[string]any{}},
		}},
		{name: "example on another media type", input: map[string]any{
			"content": map[string]any{
				"application/json": map[string]any{"schema": map[string]any{}},
				"application/xml":  map[string]any{"example": "<pet/>"},
			},
		}},
		{name: "non-object json entry", input: map[string]any{
			"content": map[string]any{"application/json": "yes"},
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			diags := functions.RequireJSONExamples(tt.input, nil, requestBodyCtx())
			require.Len(t, diags, 1)
			assert.Equal(t, msgMissingExample, diags[0].Message)
			assert.Equal(t, rulefunc.Path{"paths", "/pets", "post", "requestBody", "content", "application/json"}, diags[0].Path)
		})
	}
}

func TestRequireJSONExamples_DoesNotModifyContextPath(t *testing.T) {
	t.Parallel()

	// spare capacity must not be written through when the diagnostic path is extended
	path := make(rulefunc.Path, 0, 16)
	path = append(path, "paths", "/pets", "post", "requestBody")
	ctx := rulefunc.Context{Path: path}

	input := map[string]any{"content": map[string]any{"application/json": map[string]any{}}}

	first := functions.RequireJSONExamples(input, nil, ctx)
	second := functions.RequireJSONExamples(input, nil, ctx)

	require.Len(t, first, 1)
	require.Len(t, second, 1)
	assert.Equal(t, rulefunc.Path{"paths", "/pets", "post", "requestBody"}, ctx.Path)
	assert.True(t, first[0].Path.HasPrefix(ctx.Path))
	assert.Equal(t, first[0].Path, second[0].Path)

	first[0].Path[0] = "components"
	assert.Equal(t, "paths", second[0].Path[0], "diagnostic paths should not share storage")
}

func TestRequireJSONExamples_YamlNode(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		yml      string
		expected int
	}{
		{
			name: "missing example",
			yml: `
content:
  application/json:
    schema:
      $ref: '#/components/schemas/Pet'
`,
			expected: 1,
		},
		{
			name: "example present",
			yml: `
content:
  application/json:
    schema:
      $ref: '#/components/schemas/Pet'
    example:
      name: Rex
`,
			expected: 0,
		},
		{
			name: "null json entry",
			yml: `
content:
  application/json: ~
`,
			expected: 0,
		},
		{
			name: "anchored media type with examples",
			yml: `
x-shared: &shared
  examples:
    rex:
      value: {name: Rex}
content:
  application/json: *shared
`,
			expected: 0,
		},
		{
			name: "example merged into the media type",
			yml: `
x-shared: &shared
  example:
    name: Rex
content:
  application/json:
    <<: *shared
    schema:
      type: object
`,
			expected: 0,
		},
		{
			name: "merge without example",
			yml: `
x-shared: &shared
  schema:
    type: object
content:
  application/json:
    <<: *shared
`,
			expected: 1,
		},
		{
			name: "nan json entry",
			yml: `
content:
  application/json: .nan
`,
			expected: 0,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var node yaml.Node
			require.NoError(t, yaml.Unmarshal([]byte(tt.yml), &node))

			diags := functions.RequireJSONExamples(&node, nil, requestBodyCtx())
			assert.Len(t, diags, tt.expected)
		})
	}
}
