// FILE: lixenwraith/optconfig/flags.go
package optconfig

import (
	"fmt"
	"reflect"

	"github.com/spf13/pflag"
)

// PresetsFlag is the flag carrying the raw active preset list
const PresetsFlag = "presets"

// FlagBinding ties a flag set to an Options value
type FlagBinding struct {
	fs       *pflag.FlagSet
	opts     *Options
	optional map[string]*string
}

// BindFlags registers one flag per option on fs, writing into opts.
// Flag defaults are the current values of opts. Optional string options are
// only written by Apply, so an unused flag leaves them unset.
func BindFlags(fs *pflag.FlagSet, opts *Options) *FlagBinding {
	b := &FlagBinding{
		fs:       fs,
		opts:     opts,
		optional: make(map[string]*string),
	}

	fs.StringVar(&opts.Presets, PresetsFlag, opts.Presets, "Whitespace-separated list of presets to activate, last one wins")

	for _, f := range optionTable {
		usage := fmt.Sprintf("Option: %s", f.name)
		field := f.value(opts)

		switch f.kind {
		case KindString:
			fs.StringVar(field.Addr().Interface().(*string), f.name, field.String(), usage)
		case KindOptionalString:
			holder := new(string)
			if !field.IsNil() {
				*holder = field.Elem().String()
			}
			fs.StringVar(holder, f.name, *holder, usage)
			b.optional[f.name] = holder
		case KindBool:
			fs.BoolVar(field.Addr().Interface().(*bool), f.name, field.Bool(), usage)
		case KindFloat:
			fs.Float64Var(field.Addr().Interface().(*float64), f.name, field.Float(), usage)
		case KindUint:
			fs.UintVar(field.Addr().Interface().(*uint), f.name, uint(field.Uint()), usage)
		}
	}

	return b
}

// Apply copies the optional string flags that were used into the options.
// Call it after parsing.
func (b *FlagBinding) Apply() {
	for name, holder := range b.optional {
		if !b.Changed(name) {
			continue
		}
		if f, ok := lookupOption(name); ok {
			v := *holder
			f.value(b.opts).Set(reflect.ValueOf(&v))
		}
	}
}

// Changed reports whether the flag of an option was set on the command line
func (b *FlagBinding) Changed(name string) bool {
	return b.fs.Changed(name)
}

// Supplied returns the predicate for Builder.WithSupplied
func (b *FlagBinding) Supplied() SuppliedFunc {
	return b.Changed
}

// PresetsSupplied reports whether --presets was used
func (b *FlagBinding) PresetsSupplied() bool {
	return b.Changed(PresetsFlag)
}
