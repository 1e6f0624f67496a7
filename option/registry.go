package option

import (
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"sync"
)

// Source is a document options are loaded from.
type Source interface {
	GetByPath(path string) (string, bool)
	FileName() string
}

// Registry maps dotted paths to options. Options are loaded in
// registration order.
type Registry struct {
	mu       sync.RWMutex
	bindings map[string]Binding
	paths    []string
	log      *slog.Logger
}

type RegistryOption func(*Registry)

func RegistryLogger(l *slog.Logger) RegistryOption {
	return func(r *Registry) { r.log = l }
}

func NewRegistry(opts ...RegistryOption) *Registry {
	r := &Registry{bindings: map[string]Binding{}}
	for _, f := range opts {
		f(r)
	}
	if r.log == nil {
		r.log = slog.Default()
	}
	return r
}

// Register adds b at its key. Registering a path twice fails with
// ErrDuplicate.
func (r *Registry) Register(b Binding) error {
	return r.register(b.Key(), b)
}

func (r *Registry) MustRegister(bs ...Binding) {
	for _, b := range bs {
		if err := r.Register(b); err != nil {
			panic(err)
		}
	}
}

func (r *Registry) register(path string, b Binding) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.bindings[path]; exists {
		return fmt.Errorf("%w: %s", ErrDuplicate, path)
	}
	r.bindings[path] = b
	r.paths = append(r.paths, path)
	return nil
}

// Section returns a view of r registering under key.
func (r *Registry) Section(key string) *Section {
	return &Section{reg: r, prefix: key}
}

// Paths returns the registered paths in registration order.
func (r *Registry) Paths() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	res := make([]string, len(r.paths))
	copy(res, r.paths)
	return res
}

func (r *Registry) Get(path string) Binding {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.bindings[path]
}

// Load assigns every registered option from src. A missing required entry
// and a value that does not parse are logged and joined into the returned
// error; the other options are still loaded.
func (r *Registry) Load(src Source) error {
	r.mu.RLock()
	paths := slices.Clone(r.paths)
	bindings := make([]Binding, len(paths))
	for i, path := range paths {
		bindings[i] = r.bindings[path]
	}
	r.mu.RUnlock()

	var errs []error
	for i, path := range paths {
		b := bindings[i]
		raw, ok := src.GetByPath(path)
		if !ok {
			b.Reset()
			if b.IsOptional() {
				continue
			}
			msg := fmt.Sprintf("Required entry '%s' is missing in %s", path, src.FileName())
			r.log.Error(msg, "file", src.FileName())
			errs = append(errs, errors.New(msg))
			continue
		}
		if err := b.Set(raw); err != nil {
			r.log.Error(err.Error(), "file", src.FileName(), "path", path)
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// Section registers options under a key prefix.
type Section struct {
	reg    *Registry
	prefix string
}

func (s *Section) Register(b Binding) error {
	return s.reg.register(s.prefix+"."+b.Key(), b)
}

func (s *Section) Section(key string) *Section {
	return &Section{reg: s.reg, prefix: s.prefix + "." + key}
}
