// Package functions provides rule functions for linting OpenAPI documents.
//
// Each function implements [rulefunc.Func] and is also exposed as a [Function] carrying an ID,
// a category, documentation and, for [ConfigurableFunction], an options schema:
//
//	diags := functions.ForbidDefaultResponse(responses, nil, rulefunc.Context{
//		Path: rulefunc.NewPath("paths", "/pets", "get", "responses"),
//	})
//
// [Default] returns a [Catalog] holding every function, which hosts can use to resolve functions by ID,
// validate rule options and generate reference documentation with [DocGenerator].
//
// The functions are:
//
//   - alnum-description: a description must be a string shorter than 20 characters made of ASCII letters and digits.
//   - forbid-default-response: a responses object must not declare a "default" response.
//   - require-json-examples: an application/json request body must carry "example" or "examples".
package functions
