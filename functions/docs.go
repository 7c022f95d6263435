package functions

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
)

// DocGenerator generates reference documentation from a catalog
type DocGenerator struct {
	catalog *Catalog
}

// NewDocGenerator creates a new documentation generator
func NewDocGenerator(catalog *Catalog) *DocGenerator {
	return &DocGenerator{catalog: catalog}
}

// FunctionDoc represents documentation for a single function
type FunctionDoc struct {
	ID              string         `json:"id" yaml:"id"`
	Category        string         `json:"category" yaml:"category"`
	Summary         string         `json:"summary" yaml:"summary"`
	Description     string         `json:"description" yaml:"description"`
	Rationale       string         `json:"rationale,omitempty" yaml:"rationale,omitempty"`
	Link            string         `json:"link,omitempty" yaml:"link,omitempty"`
	Given           string         `json:"given,omitempty" yaml:"given,omitempty"`
	GoodExample     string         `json:"good_example,omitempty" yaml:"good_example,omitempty"`
	BadExample      string         `json:"bad_example,omitempty" yaml:"bad_example,omitempty"`
	OptionsSchema   map[string]any `json:"options_schema,omitempty" yaml:"options_schema,omitempty"`
	OptionsDefaults map[string]any `json:"options_defaults,omitempty" yaml:"options_defaults,omitempty"`
}

// GenerateFunctionDoc generates documentation for a single function
func (g *DocGenerator) GenerateFunctionDoc(fn Function) *FunctionDoc {
	doc := &FunctionDoc{
		ID:          fn.ID(),
		Category:    fn.Category(),
		Summary:     fn.Summary(),
		Description: fn.Description(),
		Link:        fn.Link(),
		Given:       fn.Given(),
	}

	if documented, ok := fn.(DocumentedFunction); ok {
		doc.GoodExample = documented.GoodExample()
		doc.BadExample = documented.BadExample()
		doc.Rationale = documented.Rationale()
	}

	if configurable, ok := fn.(ConfigurableFunction); ok {
		doc.OptionsSchema = configurable.OptionsSchema()
		doc.OptionsDefaults = configurable.OptionsDefaults()
	}

	return doc
}

// GenerateAllFunctionDocs generates documentation for all registered functions
func (g *DocGenerator) GenerateAllFunctionDocs() []*FunctionDoc {
	var docs []*FunctionDoc
	for _, fn := range g.catalog.All() {
		docs = append(docs, g.GenerateFunctionDoc(fn))
	}
	return docs
}

// WriteJSON writes function documentation as JSON
func (g *DocGenerator) WriteJSON(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(map[string]any{
		"functions":  g.GenerateAllFunctionDocs(),
		"categories": g.catalog.Categories(),
	})
}

// WriteMarkdown writes function documentation as Markdown, grouped by category
func (g *DocGenerator) WriteMarkdown(w io.Writer) error {
	categories := g.catalog.Categories()

	if err := writeLine(w, "# Rule Functions Reference"); err != nil {
		return err
	}
	if err := writeEmptyLine(w); err != nil {
		return err
	}

	if err := writeLine(w, "## Categories"); err != nil {
		return err
	}
	if err := writeEmptyLine(w); err != nil {
		return err
	}
	for _, category := range categories {
		if err := writeF(w, "- [%s](#%s)\n", category, category); err != nil {
			return err
		}
	}
	if err := writeEmptyLine(w); err != nil {
		return err
	}

	for _, category := range categories {
		if err := writeF(w, "## %s\n\n", category); err != nil {
			return err
		}

		for _, fn := range g.catalog.InCategory(category) {
			if err := g.writeFunctionMarkdown(w, g.GenerateFunctionDoc(fn)); err != nil {
				return err
			}
		}
	}

	return nil
}

func (g *DocGenerator) writeFunctionMarkdown(w io.Writer, doc *FunctionDoc) error {
	if err := writeF(w, "### %s\n\n", doc.ID); err != nil {
		return err
	}
	if err := writeF(w, "**Category:** %s  \n", doc.Category); err != nil {
		return err
	}
	if doc.Summary != "" {
		if err := writeF(w, "**Summary:** %s  \n", doc.Summary); err != nil {
			return err
		}
	}
	if doc.Given != "" {
		if err := writeF(w, "**Typical target:** `%s`  \n", doc.Given); err != nil {
			return err
		}
	}
	if err := writeEmptyLine(w); err != nil {
		return err
	}

	if err := writeF(w, "%s\n\n", doc.Description); err != nil {
		return err
	}

	if doc.Rationale != "" {
		if err := writeF(w, "#### Rationale\n\n%s\n\n", doc.Rationale); err != nil {
			return err
		}
	}

	if err := writeExample(w, "#### ❌ Incorrect", doc.BadExample); err != nil {
		return err
	}
	if err := writeExample(w, "#### ✅ Correct", doc.GoodExample); err != nil {
		return err
	}

	if err := writeOptionsTable(w, doc.OptionsSchema, doc.OptionsDefaults); err != nil {
		return err
	}

	if doc.Link != "" {
		if err := writeF(w, "[Documentation →](%s)\n\n", doc.Link); err != nil {
			return err
		}
	}

	if err := writeLine(w, "---"); err != nil {
		return err
	}
	return writeEmptyLine(w)
}

func writeExample(w io.Writer, heading, example string) error {
	if example == "" {
		return nil
	}
	for _, line := range []string{heading, "```yaml", example, "```"} {
		if err := writeLine(w, line); err != nil {
			return err
		}
	}
	return writeEmptyLine(w)
}

func writeOptionsTable(w io.Writer, schema map[string]any, defaults map[string]any) error {
	properties, _ := schema["properties"].(map[string]any)
	if len(properties) == 0 {
		return nil
	}

	if err := writeLine(w, "#### Options"); err != nil {
		return err
	}
	if err := writeEmptyLine(w); err != nil {
		return err
	}
	if err := writeLine(w, "| Option | Type | Default | Description |"); err != nil {
		return err
	}
	if err := writeLine(w, "|--------|------|---------|-------------|"); err != nil {
		return err
	}

	names := make([]string, 0, len(properties))
	for name := range properties {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		property, _ := properties[name].(map[string]any)

		def := ""
		if v, ok := defaults[name]; ok {
			def = fmt.Sprintf("`%v`", v)
		}

		if err := writeF(w, "| `%s` | %v | %s | %v |\n", name, property["type"], def, valueOrEmpty(property["description"])); err != nil {
			return err
		}
	}

	return writeEmptyLine(w)
}

func valueOrEmpty(v any) any {
	if v == nil {
		return ""
	}
	return v
}

func writeLine(w io.Writer, text string) error {
	_, err := fmt.Fprintln(w, text)
	return err
}

func writeEmptyLine(w io.Writer) error {
	_, err := fmt.Fprintln(w)
	return err
}

func writeF(w io.Writer, format string, args ...any) error {
	_, err := fmt.Fprintf(w, format, args...)
	return err
}
