// FILE: lixenwraith/optconfig/builder_test.go
package optconfig

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const presetGitConfig = `
[delta]
	minus-style = blue
	presets = my-preset-1
[delta "my-preset-1"]
	minus-style = green
[delta "my-preset-2"]
	minus-style = yellow
`

// TestBuilder tests the builder pattern
func TestBuilder(t *testing.T) {
	t.Run("Defaults", func(t *testing.T) {
		res, err := NewBuilder().WithArgs(nil).Build()
		require.NoError(t, err)
		assert.Equal(t, DefaultOptions(), res.Options)
		assert.Empty(t, res.Presets)
		assert.Empty(t, res.StorePath)
		assert.Len(t, res.Resolutions, len(OptionNames()))
	})

	t.Run("MainSection", func(t *testing.T) {
		path := writeFile(t, "config", "[delta]\n\tminus-style = blue\n")

		assert.NotEqual(t, "blue", DefaultOptions().MinusStyle)

		res, err := NewBuilder().WithFile(path).Build()
		require.NoError(t, err)
		assert.Equal(t, "blue", res.Options.MinusStyle)
		assert.Equal(t, path, res.StorePath)

		// A command-line value is not overridden
		opts := DefaultOptions()
		opts.MinusStyle = "red"
		res, err = NewBuilder().
			WithDefaults(opts).
			WithFile(path).
			WithSupplied(func(o string) bool { return o == "minus-style" }).
			Build()
		require.NoError(t, err)
		assert.Equal(t, "red", res.Options.MinusStyle)

		src, ok := res.Source("minus-style")
		require.True(t, ok)
		assert.Equal(t, SourceCLI, src.Source)
	})

	t.Run("PresetsFromStore", func(t *testing.T) {
		path := writeFile(t, "config", presetGitConfig)

		res, err := NewBuilder().WithFile(path).Build()
		require.NoError(t, err)
		assert.Equal(t, []string{"my-preset-1"}, res.Presets)
		assert.Equal(t, "my-preset-1", res.Options.Presets)
		assert.Equal(t, "green", res.Options.MinusStyle)
	})

	t.Run("PresetsArgumentWins", func(t *testing.T) {
		path := writeFile(t, "config", presetGitConfig)

		res, err := NewBuilder().WithFile(path).WithPresets("my-preset-1 my-preset-2").Build()
		require.NoError(t, err)
		assert.Equal(t, "yellow", res.Options.MinusStyle)

		res, err = NewBuilder().WithFile(path).WithPresets("my-preset-2 my-preset-1").Build()
		require.NoError(t, err)
		assert.Equal(t, "green", res.Options.MinusStyle)

		// An explicitly empty list disables the stored one
		res, err = NewBuilder().WithFile(path).WithPresets("").Build()
		require.NoError(t, err)
		assert.Empty(t, res.Presets)
		assert.Equal(t, "blue", res.Options.MinusStyle)
	})

	t.Run("WithKeyStore", func(t *testing.T) {
		ks := NewSnapshot(map[string]any{"delta.tabs": 2})
		res, err := NewBuilder().WithKeyStore(ks).Build()
		require.NoError(t, err)
		assert.Equal(t, uint(2), res.Options.TabWidth)
		assert.Empty(t, res.StorePath)
	})

	t.Run("WithStoreFormat", func(t *testing.T) {
		path := writeFile(t, "settings", "[pager]\ntabs = 3\n")
		res, err := NewBuilder().
			WithStore(Store{Path: path, Format: FormatTOML}).
			WithNamespace("pager").
			Build()
		require.NoError(t, err)
		assert.Equal(t, uint(3), res.Options.TabWidth)
	})

	t.Run("WithRegistry", func(t *testing.T) {
		r := NewRegistry().Define("loud", "paging", constant("always"))
		res, err := NewBuilder().WithKeyStore(NewSnapshot(nil)).WithRegistry(r).WithPresets("loud diff-so-fancy").Build()
		require.NoError(t, err)
		assert.Equal(t, "always", res.Options.PagingMode)
		// The builtin presets are gone
		assert.Equal(t, DefaultOptions().FileStyle, res.Options.FileStyle)
	})

	t.Run("InvalidSettings", func(t *testing.T) {
		_, err := NewBuilder().WithNamespace("a.b").Build()
		assert.ErrorIs(t, err, ErrInvalidOption)

		_, err = NewBuilder().WithRegistry(nil).Build()
		assert.ErrorIs(t, err, ErrInvalidOption)
	})

	t.Run("MalformedStoreIsFatal", func(t *testing.T) {
		path := writeFile(t, "config", "[delta\n")
		_, err := NewBuilder().WithFile(path).Build()
		assert.Error(t, err)

		assert.Panics(t, func() {
			NewBuilder().WithFile(path).MustBuild()
		})
	})

	t.Run("MissingStoreIsFine", func(t *testing.T) {
		assert.NotPanics(t, func() {
			res := NewBuilder().WithFile(t.TempDir() + "/absent.gitconfig").WithPresets("diff-highlight").MustBuild()
			assert.Equal(t, "red reverse", res.Options.MinusEmphStyle)
		})
	})
}
