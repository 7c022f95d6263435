package functions

import (
	"fmt"
	"regexp"
	"unicode/utf16"

	"github.com/speakeasy-api/lintfuncs/rulefunc"
)

// FunctionAlnumDescription is the ID of the alnum description function.
const FunctionAlnumDescription = "alnum-description"

// DefaultDescriptionMaxLength is the exclusive upper bound on description length when no option is set.
const DefaultDescriptionMaxLength = 20

var alnumRegex = regexp.MustCompile(`^[A-Za-z0-9]+$`)

// AlnumDescriptionOptions configures AlnumDescriptionFunction.
type AlnumDescriptionOptions struct {
	// MaxLength is the exclusive upper bound on the description length.
	MaxLength int `yaml:"maxLength" json:"maxLength"`
}

// AlnumDescriptionFunction reports descriptions that are too long or not alphanumeric.
type AlnumDescriptionFunction struct{}

var _ ConfigurableFunction = (*AlnumDescriptionFunction)(nil)
var _ DocumentedFunction = (*AlnumDescriptionFunction)(nil)

// AlnumDescription checks that a description is a short alphanumeric string.
var AlnumDescription rulefunc.Func = (&AlnumDescriptionFunction{}).Evaluate

func (f *AlnumDescriptionFunction) ID() string { return FunctionAlnumDescription }

func (f *AlnumDescriptionFunction) Category() string { return CategoryStyle }

func (f *AlnumDescriptionFunction) Summary() string {
	return "Descriptions must be short alphanumeric strings."
}

func (f *AlnumDescriptionFunction) Description() string {
	return "Descriptions must be strings shorter than the configured maximum length (20 characters by default) made up only of ASCII letters and digits. Length and character set are checked independently, so a single description can produce two findings. A description that is not a string is reported once and not checked further."
}

func (f *AlnumDescriptionFunction) Link() string {
	return "https://github.com/speakeasy-api/lintfuncs/blob/main/functions/README.md#alnum-description"
}

func (f *AlnumDescriptionFunction) Given() string { return "$.info.description" }

func (f *AlnumDescriptionFunction) Rationale() string {
	return "Short, plain identifiers are stable across documentation generators and code generators that turn descriptions into names."
}

func (f *AlnumDescriptionFunction) GoodExample() string {
	return `info:
  title: Pets
  version: 1.0.0
  description: PetStore`
}

func (f *AlnumDescriptionFunction) BadExample() string {
	return `info:
  title: Pets
  version: 1.0.0
  description: The pet store API, version one`
}

func (f *AlnumDescriptionFunction) OptionsSchema() map[string]any {
	return map[string]any{
		"type": []any{"object", "null"},
		"properties": map[string]any{
			"maxLength": map[string]any{
				"type":        "integer",
				"minimum":     1,
				"description": "Exclusive upper bound on the description length",
			},
		},
		"additionalProperties": false,
	}
}

func (f *AlnumDescriptionFunction) OptionsDefaults() map[string]any {
	return map[string]any{"maxLength": DefaultDescriptionMaxLength}
}

func (f *AlnumDescriptionFunction) Evaluate(input any, options any, ctx rulefunc.Context) []rulefunc.Diagnostic {
	description, ok := rulefunc.AsString(input)
	if !ok {
		return []rulefunc.Diagnostic{
			rulefunc.NewDiagnostic(ctx.Path, "Description must be a string."),
		}
	}

	maxLength := f.maxLength(options)

	var diags []rulefunc.Diagnostic

	if length := utf16Length(description); length >= maxLength {
		diags = append(diags, rulefunc.NewDiagnostic(ctx.Path,
			fmt.Sprintf("Description is too long (%d chars). Must be < %d.", length, maxLength)))
	}

	if !alnumRegex.MatchString(description) {
		diags = append(diags, rulefunc.NewDiagnostic(ctx.Path,
			fmt.Sprintf("Description must be alphanumeric only. Found: \"%s\"", description)))
	}

	return diags
}

// maxLength falls back to the default for options that are absent, malformed or out of range.
func (f *AlnumDescriptionFunction) maxLength(options any) int {
	opts := AlnumDescriptionOptions{MaxLength: DefaultDescriptionMaxLength}
	if err := rulefunc.DecodeOptions(options, &opts); err != nil || opts.MaxLength < 1 {
		return DefaultDescriptionMaxLength
	}
	return opts.MaxLength
}

// utf16Length counts UTF-16 code units, the length hosts running on JavaScript report for the same string.
func utf16Length(s string) int {
	n := 0
	for _, r := range s {
		n += utf16.RuneLen(r)
	}
	return n
}
