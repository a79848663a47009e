// FILE: lixenwraith/optconfig/discovery_test.go
package optconfig

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileDiscovery(t *testing.T) {
	home := t.TempDir()
	xdg := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("XDG_CONFIG_HOME", xdg)
	t.Setenv("OPTCONFIG_CONFIG", "")

	opts := DefaultDiscoveryOptions()

	t.Run("NothingFound", func(t *testing.T) {
		assert.Equal(t, "", opts.Discover(nil))
	})

	homeConfig := filepath.Join(home, ".gitconfig")
	require.NoError(t, os.WriteFile(homeConfig, []byte("[delta]\n\tminus-style = blue\n"), 0644))

	t.Run("HomeGitConfig", func(t *testing.T) {
		assert.Equal(t, homeConfig, opts.Discover(nil))
	})

	xdgConfig := filepath.Join(xdg, "git", "config")
	require.NoError(t, os.MkdirAll(filepath.Dir(xdgConfig), 0755))
	require.NoError(t, os.WriteFile(xdgConfig, []byte("[delta]\n\tminus-style = green\n\tplus-style = cyan\n"), 0644))

	t.Run("HomeOverridesXDG", func(t *testing.T) {
		assert.Equal(t, []string{xdgConfig, homeConfig}, opts.DiscoverAll(nil))
		assert.Equal(t, homeConfig, opts.Discover(nil))

		noHome := opts
		noHome.UseHome = false
		assert.Equal(t, xdgConfig, noHome.Discover(nil))
	})

	t.Run("CustomPathsLast", func(t *testing.T) {
		custom := writeFile(t, "custom.toml", "")
		withPaths := opts
		withPaths.Paths = []string{filepath.Join(home, "missing"), custom}
		assert.Equal(t, []string{xdgConfig, homeConfig, custom}, withPaths.DiscoverAll(nil))
		assert.Equal(t, custom, withPaths.Discover(nil))
	})

	t.Run("EnvVar", func(t *testing.T) {
		t.Setenv("OPTCONFIG_CONFIG", "/from/env")
		assert.Equal(t, []string{"/from/env"}, opts.DiscoverAll(nil))
	})

	t.Run("CLIFlag", func(t *testing.T) {
		t.Setenv("OPTCONFIG_CONFIG", "/from/env")
		assert.Equal(t, "/from/flag", opts.Discover([]string{"--tabs", "2", "--config", "/from/flag"}))
		assert.Equal(t, "/from/flag", opts.Discover([]string{"--config=/from/flag"}))
	})

	t.Run("BuilderMergesFiles", func(t *testing.T) {
		res, err := NewBuilder().WithArgs(nil).WithFileDiscovery(opts).Build()
		require.NoError(t, err)
		assert.Equal(t, xdgConfig+string(os.PathListSeparator)+homeConfig, res.StorePath)
		// ~/.gitconfig wins where both set a key
		assert.Equal(t, "blue", res.Options.MinusStyle)
		assert.Equal(t, "cyan", res.Options.PlusStyle)
	})
}
