// FILE: lixenwraith/optconfig/store.go
package optconfig

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"strconv"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/samber/oops"
	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

// Format names the syntax of a store file
type Format string

const (
	// FormatAuto detects the format from the file extension, then from the content
	FormatAuto Format = ""
	// FormatGitConfig is git-config INI syntax: [section "subsection"] key = value
	FormatGitConfig Format = "gitconfig"
	// FormatTOML is TOML, presets live in nested tables: [delta.my-preset]
	FormatTOML Format = "toml"
	// FormatYAML is YAML with nested mappings
	FormatYAML Format = "yaml"
	// FormatJSON is JSON with nested objects
	FormatJSON Format = "json"
)

// KeyStore is typed read-only access to the external key/value store.
// Every getter reports false when the key is absent or its value cannot be
// converted to the requested type.
type KeyStore interface {
	GetString(key string) (string, bool)
	GetBool(key string) (bool, bool)
	GetInt(key string) (int64, bool)
}

// Store describes where the external key/value store lives
type Store struct {
	Path   string
	Format Format
}

// Snapshot reads and parses the store file once.
// A missing file (or an empty path) is not an error and yields an empty snapshot.
// A file that exists but cannot be read or parsed is an error; callers are
// expected to abort rather than continue with surprising option values.
func (s Store) Snapshot() (*Snapshot, error) {
	if s.Path == "" {
		return emptySnapshot(""), nil
	}

	data, err := os.ReadFile(s.Path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			log.WithFields(logrus.Fields{
				"at":   "optconfig.Store.Snapshot",
				"path": s.Path,
			}).Debug("store file not found, continuing without store")
			return emptySnapshot(s.Path), nil
		}
		return nil, oops.In("store").With("path", s.Path).Wrapf(err, "failed to read store file")
	}

	format := s.Format
	if format == FormatAuto {
		format = detectFileFormat(s.Path)
		if format == FormatAuto {
			format = detectFormatFromContent(data)
		}
	}

	values, err := parseStore(data, format)
	if err != nil {
		return nil, oops.In("store").With("path", s.Path, "format", format).Wrapf(err, "failed to parse store file")
	}

	snap := NewSnapshot(values)
	snap.paths = []string{s.Path}
	log.WithFields(logrus.Fields{
		"at":     "optconfig.Store.Snapshot",
		"path":   s.Path,
		"format": format,
		"keys":   len(snap.values),
	}).Debug("store snapshot taken")
	return snap, nil
}

// parseStore parses raw store data into a flat, normalized key map
func parseStore(data []byte, format Format) (map[string]any, error) {
	nested := make(map[string]any)

	switch format {
	case FormatGitConfig:
		return parseGitConfig(data)
	case FormatTOML:
		if err := toml.Unmarshal(data, &nested); err != nil {
			return nil, fmt.Errorf("failed to parse TOML: %w", err)
		}
	case FormatJSON:
		decoder := json.NewDecoder(bytes.NewReader(data))
		decoder.UseNumber() // Preserve number precision
		if err := decoder.Decode(&nested); err != nil {
			return nil, fmt.Errorf("failed to parse JSON: %w", err)
		}
	case FormatYAML:
		if err := yaml.Unmarshal(data, &nested); err != nil {
			return nil, fmt.Errorf("failed to parse YAML: %w", err)
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}

	return flattenMap(nested, ""), nil
}

// detectFileFormat determines format from file extension or well-known names
func detectFileFormat(path string) Format {
	base := strings.ToLower(filepath.Base(path))
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml", ".tml":
		return FormatTOML
	case ".json":
		return FormatJSON
	case ".yaml", ".yml":
		return FormatYAML
	case ".gitconfig", ".ini":
		return FormatGitConfig
	}
	if base == "config" || base == ".gitconfig" {
		return FormatGitConfig
	}
	return FormatAuto
}

// detectFormatFromContent attempts to detect format by parsing
func detectFormatFromContent(data []byte) Format {
	// JSON first (strict format)
	var jsonTest any
	if err := json.Unmarshal(data, &jsonTest); err == nil {
		return FormatJSON
	}

	var tomlTest map[string]any
	if err := toml.Unmarshal(data, &tomlTest); err == nil {
		return FormatTOML
	}

	// gitconfig before YAML, YAML accepts too much
	if _, err := parseGitConfig(data); err == nil {
		return FormatGitConfig
	}

	var yamlTest map[string]any
	if err := yaml.Unmarshal(data, &yamlTest); err == nil {
		return FormatYAML
	}

	return FormatAuto
}

// OpenStores reads several store files into one snapshot.
// Later files override earlier ones key by key, like git reading its global
// config files in turn. Any file that fails to read or parse is an error.
func OpenStores(stores ...Store) (*Snapshot, error) {
	merged := emptySnapshot("")
	for _, store := range stores {
		snap, err := store.Snapshot()
		if err != nil {
			return nil, err
		}
		for key, value := range snap.values {
			merged.values[key] = value
		}
		merged.paths = append(merged.paths, snap.paths...)
	}
	return merged, nil
}

// Snapshot is an immutable, point-in-time view of the store.
// A nil *Snapshot is valid and behaves as an empty store.
type Snapshot struct {
	paths  []string
	values map[string]any
}

// NewSnapshot builds a snapshot from a nested or flat key map.
// Keys are normalized with git semantics (section and name case-insensitive).
func NewSnapshot(values map[string]any) *Snapshot {
	flat := flattenMap(values, "")
	normalized := make(map[string]any, len(flat))
	for key, value := range flat {
		normalized[normalizeKey(key)] = value
	}
	return &Snapshot{values: normalized}
}

func emptySnapshot(path string) *Snapshot {
	snap := &Snapshot{values: make(map[string]any)}
	if path != "" {
		snap.paths = []string{path}
	}
	return snap
}

// Path returns the files the snapshot was taken from, separated by
// os.PathListSeparator, or "" when there were none
func (s *Snapshot) Path() string {
	if s == nil {
		return ""
	}
	return strings.Join(s.paths, string(os.PathListSeparator))
}

// Paths returns the files the snapshot was taken from, lowest priority first
func (s *Snapshot) Paths() []string {
	if s == nil {
		return nil
	}
	return append([]string(nil), s.paths...)
}

// Len returns the number of keys in the snapshot
func (s *Snapshot) Len() int {
	if s == nil {
		return 0
	}
	return len(s.values)
}

// Get returns the raw value stored under key
func (s *Snapshot) Get(key string) (any, bool) {
	if s == nil {
		return nil, false
	}
	val, found := s.values[normalizeKey(key)]
	return val, found
}

// GetString retrieves a value as text. Scalars are rendered textually,
// tables and arrays are not strings.
func (s *Snapshot) GetString(key string) (string, bool) {
	val, found := s.Get(key)
	if !found || val == nil {
		return "", false
	}

	switch v := val.(type) {
	case string:
		return v, true
	case json.Number:
		return v.String(), true
	case bool:
		return strconv.FormatBool(v), true
	case time.Time:
		return formatTime(v), true
	// Checked after time.Time on purpose
	case fmt.Stringer:
		return v.String(), true
	}

	rv := reflect.ValueOf(val)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(rv.Int(), 10), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return strconv.FormatUint(rv.Uint(), 10), true
	case reflect.Float32, reflect.Float64:
		return strconv.FormatFloat(rv.Float(), 'f', -1, 64), true
	default:
		return "", false
	}
}

// GetBool retrieves a boolean value (true/false, yes/no, on/off, 1/0)
func (s *Snapshot) GetBool(key string) (bool, bool) {
	val, found := s.Get(key)
	if !found {
		return false, false
	}

	b, err := decodeValue[bool](val)
	if err != nil {
		log.WithFields(logrus.Fields{
			"at":    "optconfig.Snapshot.GetBool",
			"key":   key,
			"error": err,
		}).Debug("store value is not a bool, treating as absent")
		return false, false
	}
	return b, true
}

// GetInt retrieves a signed integer value, accepting git's k/m/g suffixes
func (s *Snapshot) GetInt(key string) (int64, bool) {
	val, found := s.Get(key)
	if !found {
		return 0, false
	}

	n, err := decodeValue[int64](val)
	if err != nil {
		log.WithFields(logrus.Fields{
			"at":    "optconfig.Snapshot.GetInt",
			"key":   key,
			"error": err,
		}).Debug("store value is not an integer, treating as absent")
		return 0, false
	}
	return n, true
}

// formatTime renders a time value the way it appears in the store.
// TOML local dates and times decode with marker zones of these names.
func formatTime(t time.Time) string {
	switch t.Location().String() {
	case "date-local":
		return t.Format("2006-01-02")
	case "time-local":
		return t.Format("15:04:05.999999999")
	case "datetime-local":
		return t.Format("2006-01-02T15:04:05.999999999")
	default:
		return t.Format(time.RFC3339Nano)
	}
}
