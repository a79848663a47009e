// FILE: lixenwraith/optconfig/option.go
package optconfig

import (
	"fmt"
	"reflect"
	"strings"
)

// OptionTag is the struct tag naming an option field
const OptionTag = "option"

// Options holds the resolved value of every configurable option for one run.
// Fields are declared in the order options are resolved, except where a
// builtin preset value function reads another option; see resolutionOrder.
// Style strings are opaque here.
type Options struct {
	// Presets is the raw, whitespace-separated active preset list.
	// It selects presets and is not itself resolved through them.
	Presets string

	CommitDecorationStyle     string `option:"commit-decoration-style"`
	CommitStyle               string `option:"commit-style"`
	FileAddedLabel            string `option:"file-added-label"`
	FileDecorationStyle       string `option:"file-decoration-style"`
	FileModifiedLabel         string `option:"file-modified-label"`
	FileRemovedLabel          string `option:"file-removed-label"`
	FileRenamedLabel          string `option:"file-renamed-label"`
	FileStyle                 string `option:"file-style"`
	HunkHeaderDecorationStyle string `option:"hunk-header-decoration-style"`
	HunkHeaderStyle           string `option:"hunk-header-style"`
	MinusEmphStyle            string `option:"minus-emph-style"`
	MinusNonEmphStyle         string `option:"minus-non-emph-style"`
	MinusStyle                string `option:"minus-style"`
	NumberMinusFormat         string `option:"number-minus-format"`
	NumberMinusFormatStyle    string `option:"number-minus-format-style"`
	NumberMinusStyle          string `option:"number-minus-style"`
	NumberPlusFormat          string `option:"number-plus-format"`
	NumberPlusFormatStyle     string `option:"number-plus-format-style"`
	NumberPlusStyle           string `option:"number-plus-style"`
	NumberZeroStyle           string `option:"number-zero-style"`
	PagingMode                string `option:"paging"`
	PlusEmphStyle             string `option:"plus-emph-style"`
	PlusNonEmphStyle          string `option:"plus-non-emph-style"`
	PlusStyle                 string `option:"plus-style"`
	TrueColor                 string `option:"true-color"`
	WhitespaceErrorStyle      string `option:"whitespace-error-style"`
	ZeroStyle                 string `option:"zero-style"`

	SyntaxTheme *string `option:"syntax-theme"`
	Width       *string `option:"width"`

	ColorOnly            bool `option:"color-only"`
	Dark                 bool `option:"dark"`
	KeepPlusMinusMarkers bool `option:"keep-plus-minus-markers"`
	Light                bool `option:"light"`
	LineNumbers          bool `option:"line-numbers"`
	Navigate             bool `option:"navigate"`

	MaxLineDistance float64 `option:"max-line-distance"`

	MaxLineLength uint `option:"max-line-length"`
	TabWidth      uint `option:"tabs"`
}

// DefaultOptions returns the compiled-in defaults
func DefaultOptions() Options {
	return Options{
		CommitDecorationStyle:     "",
		CommitStyle:               "raw",
		FileAddedLabel:            "added:",
		FileDecorationStyle:       "blue ul",
		FileModifiedLabel:         "",
		FileRemovedLabel:          "removed:",
		FileRenamedLabel:          "renamed:",
		FileStyle:                 "blue",
		HunkHeaderDecorationStyle: "blue box",
		HunkHeaderStyle:           "syntax",
		MinusEmphStyle:            "normal #901011",
		MinusNonEmphStyle:         "auto",
		MinusStyle:                "normal #3f0001",
		NumberMinusFormat:         "{nm:^4}|",
		NumberMinusFormatStyle:    "blue",
		NumberMinusStyle:          "red",
		NumberPlusFormat:          "{np:^4}|",
		NumberPlusFormatStyle:     "blue",
		NumberPlusStyle:           "green",
		NumberZeroStyle:           "#444444",
		PagingMode:                "auto",
		PlusEmphStyle:             "syntax #006000",
		PlusNonEmphStyle:          "auto",
		PlusStyle:                 "syntax #012800",
		TrueColor:                 "auto",
		WhitespaceErrorStyle:      "magenta reverse",
		ZeroStyle:                 "syntax",
		MaxLineDistance:           0.6,
		MaxLineLength:             512,
		TabWidth:                  4,
	}
}

// Kind is the declared type of an option
type Kind int

const (
	KindString Kind = iota
	KindOptionalString
	KindBool
	KindFloat
	KindUint
)

func (k Kind) String() string {
	switch k {
	case KindString:
		return "string"
	case KindOptionalString:
		return "optional-string"
	case KindBool:
		return "bool"
	case KindFloat:
		return "float"
	case KindUint:
		return "uint"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// optionField is one row of the static option table
type optionField struct {
	name  string
	kind  Kind
	index []int
}

// value returns the addressable field of opts
func (f optionField) value(opts *Options) reflect.Value {
	return reflect.ValueOf(opts).Elem().FieldByIndex(f.index)
}

// interfaceValue returns the field as a plain value; nil optional strings yield nil
func (f optionField) interfaceValue(opts *Options) any {
	v := f.value(opts)
	if f.kind == KindOptionalString {
		if v.IsNil() {
			return nil
		}
		return v.Elem().String()
	}
	return v.Interface()
}

var (
	stringType         = reflect.TypeOf("")
	optionalStringType = reflect.TypeOf((*string)(nil))
)

// kindOf maps a Go field type to an option kind
func kindOf(t reflect.Type) (Kind, bool) {
	switch {
	case t == stringType:
		return KindString, true
	case t == optionalStringType:
		return KindOptionalString, true
	case t.Kind() == reflect.Bool:
		return KindBool, true
	case t.Kind() == reflect.Float64:
		return KindFloat, true
	case t.Kind() == reflect.Uint:
		return KindUint, true
	}
	return 0, false
}

// buildOptionTable walks the struct fields in declaration order and registers
// every field carrying an option tag.
func buildOptionTable(t reflect.Type) ([]optionField, error) {
	if t.Kind() != reflect.Struct {
		return nil, fmt.Errorf("%w: option table requires a struct, got %s", ErrInvalidOption, t)
	}

	var (
		fields []optionField
		errs   []string
		seen   = make(map[string]bool)
	)

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		if !field.IsExported() {
			continue
		}

		name := field.Tag.Get(OptionTag)
		if name == "" || name == "-" {
			continue
		}

		if !isValidKeySegment(name) {
			errs = append(errs, fmt.Sprintf("field %s: invalid option name %q", field.Name, name))
			continue
		}
		if seen[name] {
			errs = append(errs, fmt.Sprintf("field %s: duplicate option name %q", field.Name, name))
			continue
		}

		kind, ok := kindOf(field.Type)
		if !ok {
			errs = append(errs, fmt.Sprintf("field %s: unsupported type %s", field.Name, field.Type))
			continue
		}

		seen[name] = true
		fields = append(fields, optionField{name: name, kind: kind, index: field.Index})
	}

	if len(errs) > 0 {
		return nil, fmt.Errorf("%w: failed to register %d field(s): %s", ErrInvalidOption, len(errs), strings.Join(errs, "; "))
	}
	return fields, nil
}

// optionTable is the declaration-ordered table of all options
var optionTable = mustBuildOptionTable()

func mustBuildOptionTable() []optionField {
	fields, err := buildOptionTable(reflect.TypeOf(Options{}))
	if err != nil {
		panic(fmt.Sprintf("option table: %v", err))
	}
	return fields
}

// lookupOption finds an option by name
func lookupOption(name string) (optionField, bool) {
	for _, f := range optionTable {
		if f.name == name {
			return f, true
		}
	}
	return optionField{}, false
}

// OptionNames returns all option names in declaration order
func OptionNames() []string {
	names := make([]string, len(optionTable))
	for i, f := range optionTable {
		names[i] = f.name
	}
	return names
}

// OptionKind returns the declared kind of an option
func OptionKind(name string) (Kind, bool) {
	f, ok := lookupOption(name)
	return f.kind, ok
}

// Value returns the current value of an option by name.
// Unset optional strings are reported as nil.
func (o *Options) Value(name string) (any, bool) {
	f, ok := lookupOption(name)
	if !ok {
		return nil, false
	}
	return f.interfaceValue(o), true
}
