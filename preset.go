// FILE: lixenwraith/optconfig/preset.go
package optconfig

import "sort"

// Builtin preset names
const (
	PresetDiffHighlight = "diff-highlight"
	PresetDiffSoFancy   = "diff-so-fancy"
	PresetLineNumbers   = "line-numbers"
	PresetNavigate      = "navigate"
)

// ValueFunc computes a builtin preset value for one option.
// opts holds every option resolved so far; fields named in the function's
// declared dependencies are guaranteed to be resolved already.
// Returning false means the preset has no opinion.
type ValueFunc func(opts *Options, store KeyStore) (string, bool)

type valueEntry struct {
	fn        ValueFunc
	dependsOn []string
}

// SymbolicDefaults maps preset name -> option name -> store key to read instead
type SymbolicDefaults map[string]map[string]string

// Lookup returns the redirect key of an option under a preset
func (s SymbolicDefaults) Lookup(preset, option string) (string, bool) {
	if s == nil {
		return "", false
	}
	key, ok := s[preset][option]
	return key, ok
}

// Registry holds the builtin presets: value functions and symbolic redirects.
// It is built once per run and is read-only during resolution.
type Registry struct {
	values   map[string]map[string]valueEntry
	symbolic SymbolicDefaults
}

// NewRegistry creates an empty registry
func NewRegistry() *Registry {
	return &Registry{
		values:   make(map[string]map[string]valueEntry),
		symbolic: make(SymbolicDefaults),
	}
}

// Define registers a value function for an option under a preset.
// dependsOn lists the options the function reads from opts.
func (r *Registry) Define(preset, option string, fn ValueFunc, dependsOn ...string) *Registry {
	if r.values[preset] == nil {
		r.values[preset] = make(map[string]valueEntry)
	}
	r.values[preset][option] = valueEntry{fn: fn, dependsOn: dependsOn}
	return r
}

// Redirect declares that option under preset reads the given store key
func (r *Registry) Redirect(preset, option, key string) *Registry {
	if r.symbolic[preset] == nil {
		r.symbolic[preset] = make(map[string]string)
	}
	r.symbolic[preset][option] = key
	return r
}

// Lookup returns the value function of an option under a preset
func (r *Registry) Lookup(preset, option string) (ValueFunc, bool) {
	if r == nil {
		return nil, false
	}
	entry, ok := r.values[preset][option]
	return entry.fn, ok
}

// SymbolicDefault returns the redirect key of an option under a preset
func (r *Registry) SymbolicDefault(preset, option string) (string, bool) {
	if r == nil {
		return "", false
	}
	return r.symbolic.Lookup(preset, option)
}

// Symbolic returns the symbolic default table
func (r *Registry) Symbolic() SymbolicDefaults {
	if r == nil {
		return nil
	}
	return r.symbolic
}

// Has reports whether preset is a builtin preset
func (r *Registry) Has(preset string) bool {
	if r == nil {
		return false
	}
	_, hasValues := r.values[preset]
	_, hasRedirects := r.symbolic[preset]
	return hasValues || hasRedirects
}

// Presets returns the builtin preset names, sorted
func (r *Registry) Presets() []string {
	if r == nil {
		return nil
	}
	seen := make(map[string]bool)
	for name := range r.values {
		seen[name] = true
	}
	for name := range r.symbolic {
		seen[name] = true
	}
	names := make([]string, 0, len(seen))
	for name := range seen {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Dependencies returns the options read by any value function of option,
// across all presets, sorted.
func (r *Registry) Dependencies(option string) []string {
	if r == nil {
		return nil
	}
	seen := make(map[string]bool)
	for _, options := range r.values {
		for _, dep := range options[option].dependsOn {
			seen[dep] = true
		}
	}
	deps := make([]string, 0, len(seen))
	for dep := range seen {
		deps = append(deps, dep)
	}
	sort.Strings(deps)
	return deps
}

// hasValueFunc reports whether any of presets defines a value function for option
func (r *Registry) hasValueFunc(presets []string, option string) bool {
	for _, p := range presets {
		if _, ok := r.Lookup(p, option); ok {
			return true
		}
	}
	return false
}

// DefaultRegistry returns the builtin presets shipped with the program.
//
// Value function dependencies:
//
//	minus-emph-style, minus-non-emph-style -> minus-style
//	plus-emph-style, plus-non-emph-style   -> plus-style
func DefaultRegistry() *Registry {
	r := NewRegistry()

	for _, preset := range []string{PresetDiffHighlight, PresetDiffSoFancy} {
		defineDiffHighlight(r, preset)
		r.Redirect(preset, "whitespace-error-style", "color.diff.whitespace")
	}

	r.Define(PresetDiffSoFancy, "commit-style", fromStore("color.diff.commit", "bold yellow")).
		Define(PresetDiffSoFancy, "commit-decoration-style", constant("none")).
		Define(PresetDiffSoFancy, "file-style", fromStore("color.diff.meta", "11")).
		Define(PresetDiffSoFancy, "file-decoration-style", constant("bold yellow ul ol")).
		Define(PresetDiffSoFancy, "hunk-header-style", fromStore("color.diff.frag", "bold syntax")).
		Define(PresetDiffSoFancy, "hunk-header-decoration-style", constant("magenta box")).
		Redirect(PresetDiffSoFancy, "width", "diff-so-fancy.rulerWidth")

	r.Define(PresetLineNumbers, "line-numbers", constant("true"))
	r.Define(PresetNavigate, "navigate", constant("true"))

	return r
}

// defineDiffHighlight registers the diff-highlight styles under preset.
// The emph and non-emph styles fall back to the already resolved base style.
func defineDiffHighlight(r *Registry, preset string) {
	r.Define(preset, "minus-style", fromStore("color.diff.old", "red")).
		Define(preset, "minus-non-emph-style", func(opts *Options, store KeyStore) (string, bool) {
			return stringOr(store, "color.diff-highlight.oldNormal", opts.MinusStyle), true
		}, "minus-style").
		Define(preset, "minus-emph-style", func(opts *Options, store KeyStore) (string, bool) {
			return stringOr(store, "color.diff-highlight.oldHighlight", opts.MinusStyle+" reverse"), true
		}, "minus-style").
		Define(preset, "zero-style", fromStore("color.diff.context", "")).
		Define(preset, "plus-style", fromStore("color.diff.new", "green")).
		Define(preset, "plus-non-emph-style", func(opts *Options, store KeyStore) (string, bool) {
			return stringOr(store, "color.diff-highlight.newNormal", opts.PlusStyle), true
		}, "plus-style").
		Define(preset, "plus-emph-style", func(opts *Options, store KeyStore) (string, bool) {
			return stringOr(store, "color.diff-highlight.newHighlight", opts.PlusStyle+" reverse"), true
		}, "plus-style")
}

// fromStore reads key from the store, falling back to a fixed value
func fromStore(key, fallback string) ValueFunc {
	return func(_ *Options, store KeyStore) (string, bool) {
		return stringOr(store, key, fallback), true
	}
}

func constant(value string) ValueFunc {
	return func(*Options, KeyStore) (string, bool) {
		return value, true
	}
}

func stringOr(store KeyStore, key, fallback string) string {
	if store == nil {
		return fallback
	}
	if v, ok := store.GetString(key); ok {
		return v
	}
	return fallback
}
