package rulefunc

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sync"

	jsValidator "github.com/santhosh-tekuri/jsonschema/v6"
	"github.com/speakeasy-api/lintfuncs/errors"
	"github.com/speakeasy-api/lintfuncs/jsonpointer"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"gopkg.in/yaml.v3"
)

const (
	// ErrInvalidOptions is returned when rule options cannot be decoded or fail their schema.
	ErrInvalidOptions = errors.Error("invalid function options")
	// ErrInvalidSchema is returned when an options schema cannot be compiled.
	ErrInvalidSchema = errors.Error("invalid options schema")
)

const optionsSchemaResource = "options.json"

var defaultPrinter = message.NewPrinter(language.English)

// SchemaCache holds compiled options schemas keyed by their JSON encoding.
type SchemaCache struct {
	cache sync.Map // map[string]*jsValidator.Schema
}

var globalSchemaCache = &SchemaCache{}

// Clear removes every compiled schema.
func (c *SchemaCache) Clear() {
	c.cache.Range(func(key, _ any) bool {
		c.cache.Delete(key)
		return true
	})
}

// SchemaCacheStats provides statistics about the compiled schema cache
type SchemaCacheStats struct {
	Size int64
}

// GetSchemaCacheStats returns statistics about the global compiled schema cache
func GetSchemaCacheStats() SchemaCacheStats {
	var size int64
	globalSchemaCache.cache.Range(func(_, _ any) bool {
		size++
		return true
	})
	return SchemaCacheStats{Size: size}
}

// ClearSchemaCache clears the global compiled schema cache
func ClearSchemaCache() {
	globalSchemaCache.Clear()
}

// DecodeOptions decodes a generic options value into target, which should be a pointer to a struct
// with yaml tags. options may be any value produced by a JSON or YAML decoder, or a *yaml.Node.
// A nil options value (including a nil *yaml.Node) leaves target untouched so callers can pre-populate defaults.
func DecodeOptions(options any, target any) error {
	if options == nil {
		return nil
	}

	if node, ok := options.(*yaml.Node); ok {
		if node == nil {
			return nil
		}
		if err := node.Decode(target); err != nil {
			return ErrInvalidOptions.Wrap(err)
		}
		return nil
	}

	data, err := yaml.Marshal(options)
	if err != nil {
		return ErrInvalidOptions.Wrap(err)
	}
	if err := yaml.Unmarshal(data, target); err != nil {
		return ErrInvalidOptions.Wrap(err)
	}
	return nil
}

// ValidateOptions validates options against a JSON Schema given as a decoded document.
// A nil schema accepts anything. Each failing leaf of the schema is reported as a separate joined error
// located by JSON pointer, all wrapped in ErrInvalidOptions.
func ValidateOptions(schema map[string]any, options any) error {
	if schema == nil {
		return nil
	}

	compiled, err := compileOptionsSchema(schema)
	if err != nil {
		return err
	}

	instance, err := toJSONValue(options)
	if err != nil {
		return ErrInvalidOptions.Wrap(err)
	}

	err = compiled.Validate(instance)
	if err == nil {
		return nil
	}

	var validationErr *jsValidator.ValidationError
	if !errors.As(err, &validationErr) {
		return ErrInvalidOptions.Wrap(err)
	}

	return ErrInvalidOptions.Wrap(errors.Join(rootCauses(validationErr)...))
}

func compileOptionsSchema(schema map[string]any) (*jsValidator.Schema, error) {
	data, err := json.Marshal(schema)
	if err != nil {
		return nil, ErrInvalidSchema.Wrap(err)
	}
	key := string(data)

	if cached, ok := globalSchemaCache.cache.Load(key); ok {
		return cached.(*jsValidator.Schema), nil
	}

	doc, err := jsValidator.UnmarshalJSON(bytes.NewReader(data))
	if err != nil {
		return nil, ErrInvalidSchema.Wrap(err)
	}

	c := jsValidator.NewCompiler()
	if err := c.AddResource(optionsSchemaResource, doc); err != nil {
		return nil, ErrInvalidSchema.Wrap(err)
	}
	compiled, err := c.Compile(optionsSchemaResource)
	if err != nil {
		return nil, ErrInvalidSchema.Wrap(err)
	}

	actual, _ := globalSchemaCache.cache.LoadOrStore(key, compiled)
	return actual.(*jsValidator.Schema), nil
}

// toJSONValue normalizes options to the value model the validator expects (json.Number, map[string]any, ...).
func toJSONValue(options any) (any, error) {
	if node, ok := options.(*yaml.Node); ok {
		var decoded any
		if node != nil {
			if err := node.Decode(&decoded); err != nil {
				return nil, err
			}
		}
		options = decoded
	}

	data, err := json.Marshal(options)
	if err != nil {
		return nil, err
	}
	return jsValidator.UnmarshalJSON(bytes.NewReader(data))
}

func rootCauses(err *jsValidator.ValidationError) []error {
	if len(err.Causes) == 0 {
		location := jsonpointer.PartsToJSONPointer(err.InstanceLocation)
		if location == "" {
			location = jsonpointer.Root
		}
		return []error{fmt.Errorf("%s: %s", location, err.ErrorKind.LocalizedString(defaultPrinter))}
	}

	var errs []error
	for _, cause := range err.Causes {
		errs = append(errs, rootCauses(cause)...)
	}
	return errs
}
