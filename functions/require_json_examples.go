package functions

import (
	"github.com/speakeasy-api/lintfuncs/rulefunc"
)

// FunctionRequireJSONExamples is the ID of the require JSON examples function.
const FunctionRequireJSONExamples = "require-json-examples"

const (
	mediaTypeJSON = "application/json"
	contentKey    = "content"
	exampleKey    = "example"
	examplesKey   = "examples"
)

// RequireJSONExamplesFunction reports JSON request bodies without an example.
type RequireJSONExamplesFunction struct{}

var _ DocumentedFunction = (*RequireJSONExamplesFunction)(nil)
var _ ConfigurableFunction = (*RequireJSONExamplesFunction)(nil)

// RequireJSONExamples reports a request body whose application/json media type has no example.
var RequireJSONExamples rulefunc.Func = (&RequireJSONExamplesFunction{}).Evaluate

func (f *RequireJSONExamplesFunction) ID() string { return FunctionRequireJSONExamples }

func (f *RequireJSONExamplesFunction) Category() string { return CategoryExamples }

func (f *RequireJSONExamplesFunction) Summary() string {
	return "JSON request bodies must include an example or examples."
}

func (f *RequireJSONExamplesFunction) Description() string {
	return "When a request body declares an application/json media type, that media type must define 'example' or 'examples'. Request bodies without JSON content are not checked. The finding points at the application/json entry."
}

func (f *RequireJSONExamplesFunction) Link() string {
	return "https://github.com/speakeasy-api/lintfuncs/blob/main/functions/README.md#require-json-examples"
}

func (f *RequireJSONExamplesFunction) Given() string { return "$.paths[*][*].requestBody" }

func (f *RequireJSONExamplesFunction) Rationale() string {
	return "Examples on JSON payloads drive generated documentation, mock servers and SDK tests."
}

func (f *RequireJSONExamplesFunction) GoodExample() string {
	return `requestBody:
  content:
    application/json:
      schema:
        $ref: '#/components/schemas/Pet'
      example:
        name: Rex`
}

func (f *RequireJSONExamplesFunction) BadExample() string {
	return `requestBody:
  content:
    application/json:
      schema:
        $ref: '#/components/schemas/Pet'`
}

func (f *RequireJSONExamplesFunction) OptionsSchema() map[string]any { return noOptionsSchema() }

func (f *RequireJSONExamplesFunction) OptionsDefaults() map[string]any { return nil }

func (f *RequireJSONExamplesFunction) Evaluate(input any, _ any, ctx rulefunc.Context) []rulefunc.Diagnostic {
	requestBody, ok := rulefunc.AsObject(input)
	if !ok {
		return nil
	}

	// a missing, falsy or non-object content has no JSON entry to check
	rawContent, _ := requestBody.Get(contentKey)
	content, ok := rulefunc.AsObject(rawContent)
	if !ok {
		return nil
	}

	jsonContent, _ := content.Get(mediaTypeJSON)
	if !rulefunc.Truthy(jsonContent) {
		return nil
	}

	if mediaType, ok := rulefunc.AsObject(jsonContent); ok && (mediaType.Has(exampleKey) || mediaType.Has(examplesKey)) {
		return nil
	}

	return []rulefunc.Diagnostic{
		rulefunc.NewDiagnostic(ctx.Path.Append(contentKey, mediaTypeJSON),
			"application/json requestBody must include an example or examples."),
	}
}
