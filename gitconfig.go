// FILE: lixenwraith/optconfig/gitconfig.go
package optconfig

import (
	"bytes"
	"fmt"

	"github.com/go-git/gcfg"
)

// parseGitConfig decodes git-config syntax into flat dotted keys.
// [delta "my-preset"] minus-style = green becomes delta.my-preset.minus-style.
// A key without "=" is a true boolean, as in git.
// For multi-valued keys the last value wins, as with git config --get.
func parseGitConfig(data []byte) (map[string]any, error) {
	flat := make(map[string]any)
	err := gcfg.ReadWithCallback(bytes.NewReader(data), func(section, subsection, key, value string, blank bool) error {
		// Section and subsection headers carry no key
		if key == "" {
			return nil
		}
		if blank {
			value = "true"
		}
		flat[normalizeKey(joinKey(section, subsection, key))] = value
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to parse git config: %w", err)
	}
	return flat, nil
}
