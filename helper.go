// FILE: lixenwraith/optconfig/helper.go
package optconfig

import "strings"

// flattenMap converts a nested map[string]any to a flat map[string]any with dot-notation paths.
func flattenMap(nested map[string]any, prefix string) map[string]any {
	flat := make(map[string]any)

	for key, value := range nested {
		newPath := key
		if prefix != "" {
			newPath = prefix + "." + key
		}

		// Check if the value is a map that can be further flattened
		if nestedMap, isMap := value.(map[string]any); isMap {
			for subPath, subValue := range flattenMap(nestedMap, newPath) {
				flat[subPath] = subValue
			}
		} else {
			flat[newPath] = value
		}
	}

	return flat
}

// normalizeKey applies git key semantics to a dotted key.
// Section and variable names are case-insensitive and are lowercased,
// everything in between (the subsection, e.g. a preset name) is kept as written.
func normalizeKey(key string) string {
	segments := strings.Split(key, ".")
	if len(segments) == 1 {
		return strings.ToLower(key)
	}

	last := len(segments) - 1
	segments[0] = strings.ToLower(segments[0])
	segments[last] = strings.ToLower(segments[last])
	return strings.Join(segments, ".")
}

// joinKey builds a dotted store key, skipping empty segments
func joinKey(segments ...string) string {
	parts := make([]string, 0, len(segments))
	for _, s := range segments {
		if s != "" {
			parts = append(parts, s)
		}
	}
	return strings.Join(parts, ".")
}

// isValidKeySegment checks if a single path segment is a valid option or section name.
func isValidKeySegment(s string) bool {
	if len(s) == 0 {
		return false
	}
	if strings.ContainsRune(s, '.') {
		return false // Segments themselves cannot contain dots
	}

	for _, r := range s {
		isLetter := (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
		isDigit := r >= '0' && r <= '9'
		isUnderscore := r == '_'
		isDash := r == '-'

		if !(isLetter || isDigit || isUnderscore || isDash) {
			return false
		}
	}
	return true
}
