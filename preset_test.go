// FILE: lixenwraith/optconfig/preset_test.go
package optconfig

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistry(t *testing.T) {
	t.Run("DefineAndLookup", func(t *testing.T) {
		r := NewRegistry().
			Define("p", "minus-style", constant("red")).
			Redirect("p", "width", "other.width")

		fn, ok := r.Lookup("p", "minus-style")
		require.True(t, ok)
		v, ok := fn(nil, nil)
		assert.True(t, ok)
		assert.Equal(t, "red", v)

		_, ok = r.Lookup("p", "plus-style")
		assert.False(t, ok)
		_, ok = r.Lookup("q", "minus-style")
		assert.False(t, ok)

		key, ok := r.SymbolicDefault("p", "width")
		assert.True(t, ok)
		assert.Equal(t, "other.width", key)

		assert.True(t, r.Has("p"))
		assert.False(t, r.Has("q"))
	})

	t.Run("NilRegistry", func(t *testing.T) {
		var r *Registry
		_, ok := r.Lookup("p", "minus-style")
		assert.False(t, ok)
		_, ok = r.SymbolicDefault("p", "width")
		assert.False(t, ok)
		assert.False(t, r.Has("p"))
		assert.Nil(t, r.Presets())
		assert.Nil(t, r.Dependencies("minus-emph-style"))
		assert.Nil(t, r.Symbolic())
	})

	t.Run("Dependencies", func(t *testing.T) {
		r := NewRegistry().
			Define("a", "x", constant(""), "m", "n").
			Define("b", "x", constant(""), "n", "l")
		assert.Equal(t, []string{"l", "m", "n"}, r.Dependencies("x"))
		assert.Empty(t, r.Dependencies("y"))
	})
}

func TestDefaultRegistry(t *testing.T) {
	r := DefaultRegistry()

	assert.Equal(t, []string{PresetDiffHighlight, PresetDiffSoFancy, PresetLineNumbers, PresetNavigate}, r.Presets())
	assert.Equal(t, []string{"minus-style"}, r.Dependencies("minus-emph-style"))
	assert.Equal(t, []string{"plus-style"}, r.Dependencies("plus-non-emph-style"))

	key, ok := r.SymbolicDefault(PresetDiffHighlight, "whitespace-error-style")
	assert.True(t, ok)
	assert.Equal(t, "color.diff.whitespace", key)

	key, ok = r.SymbolicDefault(PresetDiffSoFancy, "width")
	assert.True(t, ok)
	assert.Equal(t, "diff-so-fancy.rulerWidth", key)

	_, ok = r.Lookup(PresetDiffHighlight, "commit-style")
	assert.False(t, ok, "commit-style is diff-so-fancy only")

	// Every option named by the builtin presets exists
	for _, preset := range r.Presets() {
		for option := range r.values[preset] {
			_, ok := lookupOption(option)
			assert.True(t, ok, "%s.%s", preset, option)
		}
		for option := range r.symbolic[preset] {
			_, ok := lookupOption(option)
			assert.True(t, ok, "%s.%s", preset, option)
		}
	}

	t.Run("ValueFunctionsReadStore", func(t *testing.T) {
		store := NewSnapshot(map[string]any{"color.diff.old": "red bold"})
		opts := DefaultOptions()
		opts.MinusStyle = "magenta"

		fn, _ := r.Lookup(PresetDiffHighlight, "minus-style")
		v, _ := fn(&opts, store)
		assert.Equal(t, "red bold", v)

		fn, _ = r.Lookup(PresetDiffHighlight, "minus-emph-style")
		v, _ = fn(&opts, store)
		assert.Equal(t, "magenta reverse", v)

		fn, _ = r.Lookup(PresetDiffSoFancy, "file-decoration-style")
		v, _ = fn(&opts, nil)
		assert.Equal(t, "bold yellow ul ol", v)
	})
}
