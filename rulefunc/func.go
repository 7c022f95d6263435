package rulefunc

// Func is the signature every rule function implements.
// The options value is rule specific and may be nil; ctx carries the location of input in the document.
type Func func(input any, options any, ctx Context) []Diagnostic

// Context is the per-invocation metadata supplied by the host.
type Context struct {
	// Path locates the input within the document.
	Path Path

	// Document is the whole document the input was taken from, if the host provides it.
	Document any

	// Rule is the name of the host rule that triggered this invocation, if known.
	Rule string
}

// Diagnostic is a single finding reported by a rule function.
type Diagnostic struct {
	// Message is a human-readable, self-contained description of the violation.
	Message string `json:"message" yaml:"message"`

	// Path locates the violation in the document. It is the invocation path, possibly extended.
	Path Path `json:"path" yaml:"path"`
}

// NewDiagnostic creates a diagnostic located at a copy of path.
func NewDiagnostic(path Path, message string) Diagnostic {
	return Diagnostic{Message: message, Path: path.Clone()}
}

func (d Diagnostic) String() string {
	return d.Path.String() + ": " + d.Message
}
