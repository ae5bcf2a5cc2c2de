// Package registry provides the name-keyed store of cassette serializers.
// Built-in backends are constructed lazily on first lookup and cached for
// the registry's lifetime; callers may install additional serializers under
// arbitrary names.
package registry

import (
	"fmt"
	"log"
	"sync"

	compressedserializer "github.com/balvig/vcr/cassette/backends/compressed"
	jsonserializer "github.com/balvig/vcr/cassette/backends/json"
	psychserializer "github.com/balvig/vcr/cassette/backends/psych"
	syckserializer "github.com/balvig/vcr/cassette/backends/syck"
	yamlserializer "github.com/balvig/vcr/cassette/backends/yaml"
	"github.com/balvig/vcr/cassette/core"
)

// Built-in serializer names.
const (
	YAML       = "yaml"
	Syck       = "syck"
	Psych      = "psych"
	JSON       = "json"
	Compressed = "compressed"
)

// Logger represents the logging contract consumed by the registry.
type Logger interface {
	Printf(string, ...any)
}

// Builder constructs a built-in serializer on first lookup.
type Builder func() (core.Serializer, error)

// Registry maps serializer names to instances. The zero value is not usable;
// construct with New.
type Registry struct {
	mu       sync.RWMutex
	entries  map[string]core.Serializer
	builders map[string]Builder
	logger   Logger
}

// Option configures registry behavior.
type Option func(*config)

type config struct {
	logger Logger
}

// WithLogger sets the logger used for collision warnings.
func WithLogger(logger Logger) Option {
	return func(cfg *config) {
		cfg.logger = logger
	}
}

// New constructs a registry with the built-in builders installed.
func New(opts ...Option) *Registry {
	cfg := config{}
	for _, opt := range opts {
		opt(&cfg)
	}

	logger := cfg.logger
	if logger == nil {
		logger = log.Default()
	}

	return &Registry{
		entries:  make(map[string]core.Serializer),
		builders: builtinBuilders(),
		logger:   logger,
	}
}

// Get returns the serializer registered under name, constructing and caching
// a built-in on first lookup. Unknown names fail with
// core.ErrUnrecognizedSerializer; a built-in whose optional engine cannot be
// loaded fails with core.ErrDependencyUnavailable.
func (r *Registry) Get(name string) (core.Serializer, error) {
	r.mu.RLock()
	s, ok := r.entries[name]
	r.mu.RUnlock()
	if ok {
		return s, nil
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	// First writer wins: a concurrent lookup may have constructed the
	// instance while the write lock was awaited.
	if s, ok := r.entries[name]; ok {
		return s, nil
	}

	builder, ok := r.builders[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", core.ErrUnrecognizedSerializer, name)
	}

	s, err := builder()
	if err != nil {
		return nil, err
	}
	r.entries[name] = s
	return s, nil
}

// Set installs serializer under name unconditionally, bypassing lazy
// construction for that name thereafter. An existing entry (lazily
// constructed or previously set) is overridden with a logged warning; Set
// never fails.
func (r *Registry) Set(name string, serializer core.Serializer) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.entries[name]; ok {
		r.logger.Printf("WARNING: a serializer is already registered for %q; overriding it", name)
	}
	r.entries[name] = serializer
}

// Has reports whether an instance is currently cached under name. Built-in
// names report false until first constructed.
func (r *Registry) Has(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.entries[name]
	return ok
}

func builtinBuilders() map[string]Builder {
	return map[string]Builder{
		YAML: func() (core.Serializer, error) {
			return core.WithHints(yamlserializer.New()), nil
		},
		Syck: func() (core.Serializer, error) {
			return core.WithHints(syckserializer.New()), nil
		},
		Psych: func() (core.Serializer, error) {
			s, err := psychserializer.New()
			if err != nil {
				return nil, err
			}
			return core.WithHints(s), nil
		},
		JSON: func() (core.Serializer, error) {
			return core.WithHints(jsonserializer.New()), nil
		},
		// The compressed backend already hints through its inner yaml
		// serializer; wrapping it again would run the marker check against
		// compressed bytes, where coincidental `<%`/`%>` sequences in the
		// binary stream could falsely attach the hint.
		Compressed: func() (core.Serializer, error) {
			return compressedserializer.New(), nil
		},
	}
}

var (
	defaultRegistry     *Registry
	defaultRegistryOnce sync.Once
)

// Default returns the process-wide registry shared by callers that do not
// manage their own. It lives for the process; there is no teardown.
func Default() *Registry {
	defaultRegistryOnce.Do(func() {
		defaultRegistry = New()
	})
	return defaultRegistry
}
