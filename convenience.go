// File: lixenwraith/optconfig/convenience.go
package optconfig

import (
	"fmt"
	"io"
	"strings"

	"github.com/BurntSushi/toml"
)

// Quick resolves all options against a store file with the builtin presets.
// An empty presets string means the presets key of the store decides.
func Quick(configFile, presets string) (*Result, error) {
	b := NewBuilder().WithFile(configFile)
	if presets != "" {
		b.WithPresets(presets)
	}
	return b.Build()
}

// MustQuick is like Quick but panics on error
func MustQuick(configFile, presets string) *Result {
	res, err := Quick(configFile, presets)
	if err != nil {
		panic(fmt.Sprintf("option resolution failed: %v", err))
	}
	return res
}

// Map returns the resolved options keyed by option name.
// Optional options that are unset are left out.
func (r *Result) Map() map[string]any {
	m := make(map[string]any, len(optionTable))
	for _, f := range optionTable {
		if v := f.interfaceValue(&r.Options); v != nil {
			m[f.name] = v
		}
	}
	return m
}

// Dump writes the resolved options to w in TOML format
func (r *Result) Dump(w io.Writer) error {
	encoder := toml.NewEncoder(w)
	return encoder.Encode(r.Map())
}

// Debug returns a formatted string showing every option with where its value came from
func (r *Result) Debug() string {
	var b strings.Builder
	b.WriteString("Option Resolution Debug Info:\n")
	b.WriteString(fmt.Sprintf("Store: %s\n", orNone(r.StorePath)))
	b.WriteString(fmt.Sprintf("Presets: %s\n", orNone(strings.Join(r.Presets, " "))))
	b.WriteString("Resolved values:\n")

	for _, res := range r.Resolutions {
		b.WriteString(fmt.Sprintf("  %s = %v\n", res.Option, displayValue(res.Value)))
		b.WriteString(fmt.Sprintf("    source: %s", res.Source))
		if res.Preset != "" {
			b.WriteString(fmt.Sprintf(" preset=%s", res.Preset))
		}
		if res.Key != "" {
			b.WriteString(fmt.Sprintf(" key=%s", res.Key))
		}
		b.WriteString("\n")
	}

	return b.String()
}

func orNone(s string) string {
	if s == "" {
		return "(none)"
	}
	return s
}

func displayValue(v any) string {
	switch v := v.(type) {
	case nil:
		return "(unset)"
	case string:
		return fmt.Sprintf("%q", v)
	default:
		return fmt.Sprintf("%v", v)
	}
}
