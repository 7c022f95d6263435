package rulefunc

import (
	"fmt"
)

// InvokeOption configures a call to Invoke.
type InvokeOption func(o *invokeOptions)

type invokeOptions struct {
	logger Logger
}

// WithLogger sets the logger used to report recovered rule functions.
func WithLogger(logger Logger) InvokeOption {
	return func(o *invokeOptions) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// Invoke calls fn the way a host should: the rule receives its own copy of ctx.Path, diagnostics without
// a path are attributed to ctx.Path, and a panicking rule is converted into a single diagnostic at ctx.Path
// instead of unwinding into the host. A nil fn reports nothing.
func Invoke(fn Func, input any, options any, ctx Context, opts ...InvokeOption) (diags []Diagnostic) {
	o := &invokeOptions{logger: NopLogger{}}
	for _, opt := range opts {
		opt(o)
	}

	if fn == nil {
		return nil
	}

	logger := o.logger.With("rule", ctx.Rule, "path", ctx.Path.String())

	defer func() {
		if r := recover(); r != nil {
			logger.Error("rule function panicked", "panic", r)
			diags = []Diagnostic{{
				Message: fmt.Sprintf("function failed: %v", r),
				Path:    ctx.Path.Append(),
			}}
		}
	}()

	ruleCtx := ctx
	ruleCtx.Path = ctx.Path.Append()

	diags = fn(input, options, ruleCtx)
	for i := range diags {
		if diags[i].Path == nil {
			diags[i].Path = ctx.Path.Append()
		}
	}

	logger.Debug("rule function evaluated", "diagnostics", len(diags))

	return diags
}
