// Package rulefunc defines the contract shared by every rule function a host linting engine can invoke.
//
// A rule function is a pure mapping from (input, options, context) to a slice of diagnostics:
//
//	func(input any, options any, ctx rulefunc.Context) []rulefunc.Diagnostic
//
// The host walks a parsed document, selects the nodes a rule applies to, and calls the function once
// per node with the node value as input and the node location as ctx.Path. An empty result means no
// violation was found. Rule functions never panic, never perform I/O, and never modify their arguments;
// a malformed input is reported as a diagnostic rather than an error.
//
// # Input shapes
//
// Inputs are untyped. Each rule guards the shape it expects at entry with [AsString], [AsObject] and
// [Truthy], which accept both plain decoded values (string, map[string]any, map[any]any, []any, ...)
// and *yaml.Node trees:
//
//	s, ok := rulefunc.AsString(input)
//	if !ok {
//		return []rulefunc.Diagnostic{{Message: "Description must be a string.", Path: ctx.Path}}
//	}
//
// # Paths
//
// Diagnostics default to ctx.Path. A rule that points at a nested field extends it with [Path.Append],
// which always returns a new slice so sibling invocations sharing the same parent path are unaffected:
//
//	rulefunc.Diagnostic{Message: msg, Path: ctx.Path.Append("content", "application/json")}
//
// # Invocation
//
// Hosts should call rules through [Invoke], which isolates the caller's path and converts a panicking
// rule into a single diagnostic so no runtime error escapes to the host.
package rulefunc
