// File: lixenwraith/optconfig/builder.go
package optconfig

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
)

// Builder provides a fluent interface for one resolution pass
type Builder struct {
	defaults  Options
	stores    []Store
	keyStore  KeyStore
	presets   *string
	supplied  SuppliedFunc
	registry  *Registry
	namespace string
	args      []string
	err       error
}

// NewBuilder creates a builder with the compiled defaults, the builtin presets
// and the delta namespace
func NewBuilder() *Builder {
	return &Builder{
		defaults:  DefaultOptions(),
		registry:  DefaultRegistry(),
		namespace: DefaultNamespace,
		args:      os.Args[1:],
	}
}

// WithDefaults sets the starting option values: compiled defaults with any
// command-line values already applied
func (b *Builder) WithDefaults(defaults Options) *Builder {
	b.defaults = defaults
	return b
}

// WithFile sets the store file path, format detected automatically
func (b *Builder) WithFile(path string) *Builder {
	b.stores = []Store{{Path: path}}
	return b
}

// WithFiles reads several store files, later ones overriding earlier ones
func (b *Builder) WithFiles(paths ...string) *Builder {
	b.stores = make([]Store, len(paths))
	for i, path := range paths {
		b.stores[i] = Store{Path: path}
	}
	return b
}

// WithStore sets the store file path and format
func (b *Builder) WithStore(store Store) *Builder {
	b.stores = []Store{store}
	return b
}

// WithKeyStore resolves against an already opened store instead of a file
func (b *Builder) WithKeyStore(ks KeyStore) *Builder {
	b.keyStore = ks
	return b
}

// WithPresets sets the raw active preset list, taking precedence over the
// presets key of the store
func (b *Builder) WithPresets(raw string) *Builder {
	b.presets = &raw
	return b
}

// WithSupplied sets the predicate telling which options came from the command line
func (b *Builder) WithSupplied(fn SuppliedFunc) *Builder {
	b.supplied = fn
	return b
}

// WithRegistry replaces the builtin presets
func (b *Builder) WithRegistry(r *Registry) *Builder {
	if r == nil {
		b.err = fmt.Errorf("%w: nil registry", ErrInvalidOption)
		return b
	}
	b.registry = r
	return b
}

// WithNamespace sets the store section holding options and user presets
func (b *Builder) WithNamespace(ns string) *Builder {
	if !isValidKeySegment(ns) {
		b.err = fmt.Errorf("%w: invalid namespace %q", ErrInvalidOption, ns)
		return b
	}
	b.namespace = ns
	return b
}

// WithArgs sets the command-line arguments searched by file discovery
func (b *Builder) WithArgs(args []string) *Builder {
	b.args = args
	return b
}

// Result is the outcome of one resolution pass
type Result struct {
	Options     Options
	Presets     []string     // Active presets in listed order
	Resolutions []Resolution // One per option, in resolution order
	StorePath   string       // Store files read, separated by os.PathListSeparator
}

// Source returns how an option got its value
func (r *Result) Source(option string) (Resolution, bool) {
	for _, res := range r.Resolutions {
		if res.Option == option {
			return res, true
		}
	}
	return Resolution{}, false
}

// Build opens the store snapshot once and resolves every option.
// A store file that exists but cannot be read or parsed is an error.
func (b *Builder) Build() (*Result, error) {
	if b.err != nil {
		return nil, b.err
	}

	ks := b.keyStore
	storePath := ""
	if ks == nil {
		snap, err := OpenStores(b.stores...)
		if err != nil {
			return nil, err
		}
		ks = snap
		storePath = snap.Path()
	}

	raw := ""
	if b.presets != nil {
		raw = *b.presets
	} else if v, ok := ks.GetString(GlobalKey(b.namespace, PresetsOption)); ok {
		raw = v
	}

	opts := b.defaults
	opts.Presets = raw

	ctx := &Context{
		Store:     ks,
		Presets:   ParsePresets(raw),
		Registry:  b.registry,
		Supplied:  b.supplied,
		Namespace: b.namespace,
	}

	resolutions, err := ctx.Resolve(&opts)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve options: %w", err)
	}

	log.WithFields(logrus.Fields{
		"at":      "optconfig.Builder.Build",
		"store":   storePath,
		"presets": ctx.Presets,
	}).Debug("options resolved")

	return &Result{
		Options:     opts,
		Presets:     ctx.Presets,
		Resolutions: resolutions,
		StorePath:   storePath,
	}, nil
}

// MustBuild is like Build but panics on error
func (b *Builder) MustBuild() *Result {
	res, err := b.Build()
	if err != nil {
		panic(fmt.Sprintf("option resolution failed: %v", err))
	}
	return res
}
