// FILE: lixenwraith/optconfig/keys.go
package optconfig

import "strings"

// DefaultNamespace is the store section holding options and user presets
const DefaultNamespace = "delta"

// PresetsOption is the store key (under the namespace) that lists the active
// presets when none are given on the command line
const PresetsOption = "presets"

// ParsePresets splits a raw preset list on whitespace and lowercases each name.
// Order and duplicates are kept.
func ParsePresets(raw string) []string {
	fields := strings.Fields(raw)
	if len(fields) == 0 {
		return nil
	}
	presets := make([]string, len(fields))
	for i, f := range fields {
		presets[i] = strings.ToLower(f)
	}
	return presets
}

// GlobalKey returns the global store key of an option: <namespace>.<option>
func GlobalKey(namespace, option string) string {
	return joinKey(namespace, option)
}

// PresetKey returns the user preset store key of an option: <namespace>.<preset>.<option>
func PresetKey(namespace, preset, option string) string {
	return joinKey(namespace, preset, option)
}

// candidate is one store key together with where it comes from
type candidate struct {
	key    string
	preset string
	source Source
}

// expandCandidates builds the ordered store candidates for an option.
// Later-listed presets come first; the global key is always last.
func expandCandidates(namespace, option string, presets []string, symbolic SymbolicDefaults) []candidate {
	candidates := make([]candidate, 0, 2*len(presets)+1)
	for i := len(presets) - 1; i >= 0; i-- {
		preset := presets[i]
		// A user preset key has precedence over the preset's redirect
		candidates = append(candidates, candidate{key: PresetKey(namespace, preset, option), preset: preset, source: SourcePresetStore})
		if redirect, ok := symbolic.Lookup(preset, option); ok {
			candidates = append(candidates, candidate{key: redirect, preset: preset, source: SourceSymbolic})
		}
	}
	return append(candidates, candidate{key: GlobalKey(namespace, option), source: SourceGlobal})
}

// ExpandKeys returns the ordered list of store keys to look up for an option:
// for each active preset in reverse listed order <namespace>.<preset>.<option>
// followed by the preset's symbolic redirect if it has one, then
// <namespace>.<option> last.
func ExpandKeys(namespace, option string, presets []string, symbolic SymbolicDefaults) []string {
	candidates := expandCandidates(namespace, option, presets, symbolic)
	keys := make([]string, len(candidates))
	for i, p := range candidates {
		keys[i] = p.key
	}
	return keys
}
