package functions

import (
	"github.com/speakeasy-api/lintfuncs/rulefunc"
)

// FunctionForbidDefaultResponse is the ID of the forbid default response function.
const FunctionForbidDefaultResponse = "forbid-default-response"

const defaultResponseKey = "default"

// ForbidDefaultResponseFunction reports responses objects with a default response.
type ForbidDefaultResponseFunction struct{}

var _ DocumentedFunction = (*ForbidDefaultResponseFunction)(nil)
var _ ConfigurableFunction = (*ForbidDefaultResponseFunction)(nil)

// ForbidDefaultResponse reports a responses object that declares a catch-all default response.
var ForbidDefaultResponse rulefunc.Func = (&ForbidDefaultResponseFunction{}).Evaluate

func (f *ForbidDefaultResponseFunction) ID() string { return FunctionForbidDefaultResponse }

func (f *ForbidDefaultResponseFunction) Category() string { return CategoryResponses }

func (f *ForbidDefaultResponseFunction) Summary() string {
	return "Responses must use explicit status codes instead of 'default'."
}

func (f *ForbidDefaultResponseFunction) Description() string {
	return "A responses object must not declare a 'default' response. Only the object's own keys are checked; nested structures are not searched. Inputs that are not objects are not checked."
}

func (f *ForbidDefaultResponseFunction) Link() string {
	return "https://github.com/speakeasy-api/lintfuncs/blob/main/functions/README.md#forbid-default-response"
}

func (f *ForbidDefaultResponseFunction) Given() string { return "$.paths[*][*].responses" }

func (f *ForbidDefaultResponseFunction) Rationale() string {
	return "A default response hides which failures an operation can actually return, so clients cannot handle them individually."
}

func (f *ForbidDefaultResponseFunction) GoodExample() string {
	return `responses:
  '200':
    description: ok
  '404':
    description: not found`
}

func (f *ForbidDefaultResponseFunction) BadExample() string {
	return `responses:
  '200':
    description: ok
  default:
    description: unexpected error`
}

func (f *ForbidDefaultResponseFunction) OptionsSchema() map[string]any { return noOptionsSchema() }

func (f *ForbidDefaultResponseFunction) OptionsDefaults() map[string]any { return nil }

func (f *ForbidDefaultResponseFunction) Evaluate(input any, _ any, ctx rulefunc.Context) []rulefunc.Diagnostic {
	responses, ok := rulefunc.AsObject(input)
	if !ok {
		return nil
	}

	if !responses.Has(defaultResponseKey) {
		return nil
	}

	return []rulefunc.Diagnostic{
		rulefunc.NewDiagnostic(ctx.Path, "Avoid 'default' response; use explicit status codes."),
	}
}
