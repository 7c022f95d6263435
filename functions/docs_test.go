package functions_test

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/speakeasy-api/lintfuncs/functions"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestDocGenerator_GenerateFunctionDoc(t *testing.T) {
	t.Parallel()

	gen := functions.NewDocGenerator(functions.Default())
	doc := gen.GenerateFunctionDoc(&functions.AlnumDescriptionFunction{})

	assert.Equal(t, functions.FunctionAlnumDescription, doc.ID)
	assert.Equal(t, functions.CategoryStyle, doc.Category)
	assert.Equal(t, "$.info.description", doc.Given)
	assert.NotEmpty(t, doc.Rationale)
	assert.Contains(t, doc.BadExample, "description:")
	assert.Equal(t, map[string]any{"maxLength": functions.DefaultDescriptionMaxLength}, doc.OptionsDefaults)
	assert.Contains(t, doc.OptionsSchema, "properties")
}

func TestDocGenerator_ExamplesAreValidYAML(t *testing.T) {
	t.Parallel()

	gen := functions.NewDocGenerator(functions.Default())
	for _, doc := range gen.GenerateAllFunctionDocs() {
		t.Run(doc.ID, func(t *testing.T) {
			t.Parallel()

			var good, bad yaml.Node
			require.NoError(t, yaml.Unmarshal([]byte(doc.GoodExample), &good), "good example should parse")
			require.NoError(t, yaml.Unmarshal([]byte(doc.BadExample), &bad), "bad example should parse")
		})
	}
}

func TestDocGenerator_WriteJSON(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	require.NoError(t, functions.NewDocGenerator(functions.Default()).WriteJSON(&buf))

	var out struct {
		Functions []struct {
			ID       string `json:"id"`
			Category string `json:"category"`
			Given    string `json:"given"`
		} `json:"functions"`
		Categories []string `json:"categories"`
	}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &out))

	require.Len(t, out.Functions, 3)
	assert.Equal(t, functions.FunctionAlnumDescription, out.Functions[0].ID)
	assert.Equal(t, "$.paths[*][*].responses", out.Functions[1].Given)
	assert.Equal(t, []string{"examples", "responses", "style"}, out.Categories)
}

func TestDocGenerator_WriteMarkdown(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	require.NoError(t, functions.NewDocGenerator(functions.Default()).WriteMarkdown(&buf))

	md := buf.String()
	assert.Contains(t, md, "# Rule Functions Reference")
	assert.Contains(t, md, "- [style](#style)")
	assert.Contains(t, md, "### alnum-description")
	assert.Contains(t, md, "### forbid-default-response")
	assert.Contains(t, md, "### require-json-examples")
	assert.Contains(t, md, "**Typical target:** `$.paths[*][*].requestBody`")
	assert.Contains(t, md, "#### Options")
	assert.Contains(t, md, "| `maxLength` | integer | `20` |")
	assert.Contains(t, md, "```yaml")

	// categories are rendered in sorted order
	assert.Less(t, bytes.Index(buf.Bytes(), []byte("## examples")), bytes.Index(buf.Bytes(), []byte("## responses")))
	assert.Less(t, bytes.Index(buf.Bytes(), []byte("## responses")), bytes.Index(buf.Bytes(), []byte("## style")))
}
