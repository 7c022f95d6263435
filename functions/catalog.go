package functions

import (
	"fmt"
	"sort"

	"github.com/speakeasy-api/lintfuncs/errors"
	"github.com/speakeasy-api/lintfuncs/rulefunc"
)

const (
	// ErrUnknownFunction is returned when a function ID is not in the catalog.
	ErrUnknownFunction = errors.Error("unknown function")
	// ErrDuplicateFunction is returned when a function ID is registered twice.
	ErrDuplicateFunction = errors.Error("duplicate function")
)

// Catalog holds registered functions by ID.
type Catalog struct {
	functions map[string]Function
}

// NewCatalog creates an empty catalog
func NewCatalog() *Catalog {
	return &Catalog{
		functions: make(map[string]Function),
	}
}

// Default returns a catalog holding every function in this package
func Default() *Catalog {
	c := NewCatalog()
	for _, fn := range []Function{
		&AlnumDescriptionFunction{},
		&ForbidDefaultResponseFunction{},
		&RequireJSONExamplesFunction{},
	} {
		if err := c.Register(fn); err != nil {
			panic(err)
		}
	}
	return c
}

// Register adds a function to the catalog
func (c *Catalog) Register(fn Function) error {
	if _, exists := c.functions[fn.ID()]; exists {
		return ErrDuplicateFunction.Wrap(fmt.Errorf("function %q already registered", fn.ID()))
	}
	c.functions[fn.ID()] = fn
	return nil
}

// Get returns a function by ID
func (c *Catalog) Get(id string) (Function, bool) {
	fn, ok := c.functions[id]
	return fn, ok
}

// Func returns the rule function registered under id
func (c *Catalog) Func(id string) (rulefunc.Func, error) {
	fn, ok := c.functions[id]
	if !ok {
		return nil, ErrUnknownFunction.Wrap(fmt.Errorf("function %q not found", id))
	}
	return fn.Evaluate, nil
}

// Run invokes the function registered under id through rulefunc.Invoke
func (c *Catalog) Run(id string, input any, options any, ctx rulefunc.Context, opts ...rulefunc.InvokeOption) ([]rulefunc.Diagnostic, error) {
	fn, err := c.Func(id)
	if err != nil {
		return nil, err
	}
	return rulefunc.Invoke(fn, input, options, ctx, opts...), nil
}

// ValidateOptions checks options against the schema of the function registered under id.
// Functions that do not declare a schema accept any options.
func (c *Catalog) ValidateOptions(id string, options any) error {
	fn, ok := c.functions[id]
	if !ok {
		return ErrUnknownFunction.Wrap(fmt.Errorf("function %q not found", id))
	}

	configurable, ok := fn.(ConfigurableFunction)
	if !ok {
		return nil
	}

	if err := rulefunc.ValidateOptions(configurable.OptionsSchema(), options); err != nil {
		return fmt.Errorf("function %q: %w", id, err)
	}
	return nil
}

// All returns all registered functions sorted by ID
func (c *Catalog) All() []Function {
	fns := make([]Function, 0, len(c.functions))
	for _, fn := range c.functions {
		fns = append(fns, fn)
	}
	sort.Slice(fns, func(i, j int) bool {
		return fns[i].ID() < fns[j].ID()
	})
	return fns
}

// IDs returns all registered function IDs
func (c *Catalog) IDs() []string {
	ids := make([]string, 0, len(c.functions))
	for id := range c.functions {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Categories returns all unique categories
func (c *Catalog) Categories() []string {
	categories := make(map[string]bool)
	for _, fn := range c.functions {
		categories[fn.Category()] = true
	}

	cats := make([]string, 0, len(categories))
	for cat := range categories {
		cats = append(cats, cat)
	}
	sort.Strings(cats)
	return cats
}

// InCategory returns the functions of a category sorted by ID
func (c *Catalog) InCategory(category string) []Function {
	var fns []Function
	for _, fn := range c.All() {
		if fn.Category() == category {
			fns = append(fns, fn)
		}
	}
	return fns
}
