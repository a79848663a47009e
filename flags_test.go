// FILE: lixenwraith/optconfig/flags_test.go
package optconfig

import (
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parseFlags(t *testing.T, args ...string) (*Options, *FlagBinding) {
	t.Helper()
	opts := DefaultOptions()
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	binding := BindFlags(fs, &opts)
	require.NoError(t, fs.Parse(args))
	binding.Apply()
	return &opts, binding
}

func TestBindFlags(t *testing.T) {
	t.Run("EveryOptionHasAFlag", func(t *testing.T) {
		opts := DefaultOptions()
		fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
		BindFlags(fs, &opts)
		for _, name := range OptionNames() {
			assert.NotNil(t, fs.Lookup(name), name)
		}
		assert.NotNil(t, fs.Lookup(PresetsFlag))
		assert.Equal(t, "512", fs.Lookup("max-line-length").DefValue)
	})

	t.Run("ParsedValues", func(t *testing.T) {
		opts, binding := parseFlags(t,
			"--minus-style", "red",
			"--line-numbers",
			"--tabs=2",
			"--max-line-distance", "0.9",
			"--syntax-theme", "Nord",
			"--presets", "diff-so-fancy mine",
		)

		assert.Equal(t, "red", opts.MinusStyle)
		assert.True(t, opts.LineNumbers)
		assert.Equal(t, uint(2), opts.TabWidth)
		assert.Equal(t, 0.9, opts.MaxLineDistance)
		require.NotNil(t, opts.SyntaxTheme)
		assert.Equal(t, "Nord", *opts.SyntaxTheme)
		assert.Nil(t, opts.Width)
		assert.Equal(t, "diff-so-fancy mine", opts.Presets)

		supplied := binding.Supplied()
		assert.True(t, supplied("minus-style"))
		assert.True(t, supplied("syntax-theme"))
		assert.False(t, supplied("plus-style"))
		assert.False(t, supplied("width"))
		assert.True(t, binding.PresetsSupplied())
	})

	t.Run("UnusedFlagsKeepDefaults", func(t *testing.T) {
		opts, binding := parseFlags(t)
		assert.Equal(t, DefaultOptions(), *opts)
		assert.False(t, binding.PresetsSupplied())
	})

	t.Run("ExplicitWinsOverStore", func(t *testing.T) {
		opts, binding := parseFlags(t, "--minus-style", "red")
		res, err := NewBuilder().
			WithDefaults(*opts).
			WithKeyStore(NewSnapshot(map[string]any{"delta.minus-style": "blue", "delta.plus-style": "cyan"})).
			WithSupplied(binding.Supplied()).
			Build()
		require.NoError(t, err)
		assert.Equal(t, "red", res.Options.MinusStyle)
		assert.Equal(t, "cyan", res.Options.PlusStyle)
	})

	t.Run("BadValue", func(t *testing.T) {
		opts := DefaultOptions()
		fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
		fs.SetOutput(nopWriter{})
		BindFlags(fs, &opts)
		assert.Error(t, fs.Parse([]string{"--tabs", "-1"}))
	})
}

type nopWriter struct{}

func (nopWriter) Write(p []byte) (int, error) { return len(p), nil }
