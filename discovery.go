// FILE: lixenwraith/optconfig/discovery.go
package optconfig

import (
	"os"
	"path/filepath"
	"strings"
)

// FileDiscoveryOptions configures automatic store file discovery
type FileDiscoveryOptions struct {
	// CLI flag to check (e.g., "--config")
	CLIFlag string

	// Environment variable to check for explicit path
	EnvVar string

	// Custom file paths, overriding the standard locations
	Paths []string

	// Whether to search $XDG_CONFIG_HOME/git/config
	UseXDG bool

	// Whether to search ~/.gitconfig
	UseHome bool
}

// DefaultDiscoveryOptions returns the git global config locations
func DefaultDiscoveryOptions() FileDiscoveryOptions {
	return FileDiscoveryOptions{
		CLIFlag: "--config",
		EnvVar:  "OPTCONFIG_CONFIG",
		UseXDG:  true,
		UseHome: true,
	}
}

// DiscoverAll returns every store file to read, lowest priority first.
// An explicit flag or environment path is the only file returned, even if it
// does not exist. Otherwise the existing files among the XDG git config,
// ~/.gitconfig and the custom paths are returned in that order, so that
// ~/.gitconfig overrides the XDG file as in git.
func (o FileDiscoveryOptions) DiscoverAll(args []string) []string {
	if path := o.explicit(args); path != "" {
		return []string{path}
	}

	var searchPaths []string
	if o.UseXDG {
		searchPaths = append(searchPaths, xdgGitConfigPath())
	}
	if o.UseHome {
		if home := os.Getenv("HOME"); home != "" {
			searchPaths = append(searchPaths, filepath.Join(home, ".gitconfig"))
		}
	}
	searchPaths = append(searchPaths, o.Paths...)

	var found []string
	for _, path := range searchPaths {
		if path == "" {
			continue
		}
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			found = append(found, path)
		}
	}

	// No file found is not an error, resolution runs on defaults
	return found
}

// Discover returns the highest priority store file, or "" when there is none
func (o FileDiscoveryOptions) Discover(args []string) string {
	found := o.DiscoverAll(args)
	if len(found) == 0 {
		return ""
	}
	return found[len(found)-1]
}

// explicit returns the path named by the CLI flag or the environment variable
func (o FileDiscoveryOptions) explicit(args []string) string {
	// Check CLI args first (highest priority)
	if o.CLIFlag != "" {
		for i, arg := range args {
			if arg == o.CLIFlag && i+1 < len(args) {
				return args[i+1]
			}
			if strings.HasPrefix(arg, o.CLIFlag+"=") {
				return strings.TrimPrefix(arg, o.CLIFlag+"=")
			}
		}
	}

	if o.EnvVar != "" {
		return os.Getenv(o.EnvVar)
	}
	return ""
}

// WithFileDiscovery reads every discovered store file, merged in priority order
func (b *Builder) WithFileDiscovery(opts FileDiscoveryOptions) *Builder {
	if paths := opts.DiscoverAll(b.args); len(paths) > 0 {
		b.WithFiles(paths...)
	}
	return b
}

// xdgGitConfigPath returns git's XDG global config file
func xdgGitConfigPath() string {
	if xdgHome := os.Getenv("XDG_CONFIG_HOME"); xdgHome != "" {
		return filepath.Join(xdgHome, "git", "config")
	}
	if home := os.Getenv("HOME"); home != "" {
		return filepath.Join(home, ".config", "git", "config")
	}
	return ""
}
