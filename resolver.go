// FILE: lixenwraith/optconfig/resolver.go
package optconfig

import (
	"fmt"
	"math"
	"reflect"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"
)

// Source identifies which layer produced an option value
type Source string

const (
	SourceCLI         Source = "cli"          // Supplied explicitly on the command line
	SourcePresetStore Source = "preset-store" // Store key <namespace>.<preset>.<option>
	SourceBuiltin     Source = "builtin"      // Builtin preset value function
	SourceSymbolic    Source = "symbolic"     // Builtin preset redirect to another store key
	SourceGlobal      Source = "global"       // Store key <namespace>.<option>
	SourceDefault     Source = "default"      // Value already held by the field
)

// Resolution records how one option got its final value
type Resolution struct {
	Option string
	Source Source
	Preset string // Preset that supplied the value, empty for cli/global/default
	Key    string // Store key read, empty for cli/builtin/default
	Value  any
}

// SuppliedFunc reports whether an option was given explicitly on the command line
type SuppliedFunc func(option string) bool

// Context carries everything one resolution pass reads.
// It is passed explicitly and never shared between runs.
type Context struct {
	Store     KeyStore
	Presets   []string // Active presets in listed order, already lowercased
	Registry  *Registry
	Supplied  SuppliedFunc
	Namespace string // Defaults to DefaultNamespace
}

func (c *Context) namespace() string {
	if c.Namespace == "" {
		return DefaultNamespace
	}
	return c.Namespace
}

func (c *Context) store() KeyStore {
	if c.Store == nil {
		return (*Snapshot)(nil)
	}
	return c.Store
}

func (c *Context) supplied(option string) bool {
	return c.Supplied != nil && c.Supplied(option)
}

// Resolve fills every option of opts that was not supplied on the command line.
// Fields of opts must hold the compiled defaults (plus any CLI values) on entry.
// Options are visited in dependency order; the returned trace follows that order.
func (c *Context) Resolve(opts *Options) ([]Resolution, error) {
	order, err := resolutionOrder(optionTable, c.Registry.Dependencies)
	if err != nil {
		return nil, err
	}

	resolutions := make([]Resolution, 0, len(order))
	for _, f := range order {
		resolutions = append(resolutions, c.resolveField(opts, f))
	}
	return resolutions, nil
}

// ResolveOption resolves a single option in place.
// Options read by its value functions are used as they currently are.
func (c *Context) ResolveOption(opts *Options, name string) (Resolution, error) {
	f, ok := lookupOption(name)
	if !ok {
		return Resolution{}, fmt.Errorf("%w: unknown option %q", ErrInvalidOption, name)
	}
	return c.resolveField(opts, f), nil
}

func (c *Context) resolveField(opts *Options, f optionField) Resolution {
	var res Resolution
	if c.supplied(f.name) {
		res = Resolution{Option: f.name, Source: SourceCLI}
	} else {
		switch f.kind {
		case KindString:
			res = setString(c, opts, f)
		case KindOptionalString:
			res = setOptionalString(c, opts, f)
		case KindBool:
			res = setBool(c, opts, f)
		case KindFloat:
			res = setFloat(c, opts, f)
		case KindUint:
			res = setUint(c, opts, f)
		}
	}
	res.Value = f.interfaceValue(opts)

	log.WithFields(logrus.Fields{
		"at":     "optconfig.Context.Resolve",
		"option": res.Option,
		"source": res.Source,
		"preset": res.Preset,
		"key":    res.Key,
	}).Debug("option resolved")
	return res
}

// getter reads one store key as T; false means absent at that key
type getter[T any] func(store KeyStore, key string) (T, bool)

// coercer converts value function output to T; false means no value
type coercer[T any] func(raw string) (T, bool)

// lookup walks the layers below the command line for one option and returns
// the first value found. false means every layer missed.
func lookup[T any](c *Context, opts *Options, option string, get getter[T], coerce coercer[T]) (T, Resolution, bool) {
	var zero T
	store := c.store()
	ns := c.namespace()

	// Without value functions in play the candidate list alone decides
	if !c.Registry.hasValueFunc(c.Presets, option) {
		for _, p := range expandCandidates(ns, option, c.Presets, c.Registry.Symbolic()) {
			if v, ok := get(store, p.key); ok {
				return v, Resolution{Option: option, Source: p.source, Preset: p.preset, Key: p.key}, true
			}
		}
		return zero, Resolution{Option: option, Source: SourceDefault}, false
	}

	for i := len(c.Presets) - 1; i >= 0; i-- {
		preset := c.Presets[i]

		key := PresetKey(ns, preset, option)
		if v, ok := get(store, key); ok {
			return v, Resolution{Option: option, Source: SourcePresetStore, Preset: preset, Key: key}, true
		}

		if fn, ok := c.Registry.Lookup(preset, option); ok {
			if raw, ok := fn(opts, store); ok {
				if v, ok := coerce(raw); ok {
					return v, Resolution{Option: option, Source: SourceBuiltin, Preset: preset}, true
				}
				log.WithFields(logrus.Fields{
					"at":     "optconfig.lookup",
					"option": option,
					"preset": preset,
					"value":  raw,
				}).Debug("builtin preset value not convertible, skipping")
			}
		}

		if redirect, ok := c.Registry.SymbolicDefault(preset, option); ok {
			if v, ok := get(store, redirect); ok {
				return v, Resolution{Option: option, Source: SourceSymbolic, Preset: preset, Key: redirect}, true
			}
		}
	}

	key := GlobalKey(ns, option)
	if v, ok := get(store, key); ok {
		return v, Resolution{Option: option, Source: SourceGlobal, Key: key}, true
	}
	return zero, Resolution{Option: option, Source: SourceDefault}, false
}

func getString(store KeyStore, key string) (string, bool) { return store.GetString(key) }

func getBool(store KeyStore, key string) (bool, bool) { return store.GetBool(key) }

// getUint reads an integer and rejects values a uint cannot hold
func getUint(store KeyStore, key string) (uint64, bool) {
	n, ok := store.GetInt(key)
	if !ok {
		return 0, false
	}
	return toUint(n, key)
}

func toUint(n int64, from string) (uint64, bool) {
	if n < 0 || uint64(n) > math.MaxUint {
		log.WithFields(logrus.Fields{
			"at":    "optconfig.toUint",
			"from":  from,
			"value": n,
		}).Debug("integer out of range for unsigned option, treating as absent")
		return 0, false
	}
	return uint64(n), true
}

func identity(raw string) (string, bool) { return raw, true }

func coerceBool(raw string) (bool, bool) {
	b, err := decodeValue[bool](raw)
	return b, err == nil
}

func coerceUint(raw string) (uint64, bool) {
	n, err := decodeValue[int64](raw)
	if err != nil {
		return 0, false
	}
	return toUint(n, "value function")
}

// setString keeps the field when every layer misses
func setString(c *Context, opts *Options, f optionField) Resolution {
	v, res, ok := lookup[string](c, opts, f.name, getString, identity)
	if ok {
		f.value(opts).SetString(v)
	}
	return res
}

// setOptionalString keeps the field, nil or not, when every layer misses
func setOptionalString(c *Context, opts *Options, f optionField) Resolution {
	v, res, ok := lookup[string](c, opts, f.name, getString, identity)
	if ok {
		f.value(opts).Set(reflect.ValueOf(&v))
	}
	return res
}

func setBool(c *Context, opts *Options, f optionField) Resolution {
	v, res, ok := lookup[bool](c, opts, f.name, getBool, coerceBool)
	if ok {
		f.value(opts).SetBool(v)
	}
	return res
}

// setFloat reads the winning value as text and parses it afterwards.
// A value that does not parse leaves the compiled default in place.
func setFloat(c *Context, opts *Options, f optionField) Resolution {
	raw, res, ok := lookup[string](c, opts, f.name, getString, identity)
	if !ok {
		return res
	}

	v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		log.WithFields(logrus.Fields{
			"at":     "optconfig.setFloat",
			"option": f.name,
			"source": res.Source,
			"key":    res.Key,
			"value":  raw,
		}).Warn("malformed number, using default")
		return Resolution{Option: f.name, Source: SourceDefault}
	}
	f.value(opts).SetFloat(v)
	return res
}

func setUint(c *Context, opts *Options, f optionField) Resolution {
	v, res, ok := lookup[uint64](c, opts, f.name, getUint, coerceUint)
	if ok {
		f.value(opts).SetUint(v)
	}
	return res
}
