package paramskema

import (
	"reflect"
	"sync"

	"github.com/reoring/paramskema/i18n"
)

// Registry maps concrete types to schemas and enumerations. A Registry is
// safe for concurrent use; lookups hand out clones, never shared state.
//
// Externally registered schemas are accepted verbatim: no range or type
// consistency checks are performed on caller-supplied values.
type Registry struct {
	mu      sync.RWMutex
	schemas map[reflect.Type]Schema
	enums   map[reflect.Type][]string
}

// NewRegistry returns an empty Registry holding no entries at all, not even
// the builtin catalog. Most callers want DefaultRegistry.
func NewRegistry() *Registry {
	return &Registry{
		schemas: make(map[reflect.Type]Schema),
		enums:   make(map[reflect.Type][]string),
	}
}

// defaultRegistry carries the builtin primitive catalog and any
// package-level registrations.
var defaultRegistry = newBuiltinRegistry()

func newBuiltinRegistry() *Registry {
	r := NewRegistry()
	for t, s := range builtinSchemas {
		r.schemas[t] = s
	}
	return r
}

// DefaultRegistry returns the process-wide Registry pre-populated with the
// builtin primitive catalog.
func DefaultRegistry() *Registry { return defaultRegistry }

// RegisterType records an explicit schema for t, overriding any builtin or
// previously registered entry. The schema content is accepted verbatim; no
// consistency validation is performed.
func (r *Registry) RegisterType(t reflect.Type, s Schema) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.schemas[t] = s.Clone()
}

// RegisterEnumType records t as an enumeration of the given nullary
// alternative names, in declaration order. Registering an enumeration with
// no alternatives is a registration-time error.
func (r *Registry) RegisterEnumType(t reflect.Type, names ...string) error {
	if len(names) == 0 {
		return Issues{{
			Path:    "/",
			Code:    CodeEmptyEnum,
			Message: i18n.T(CodeEmptyEnum, nil),
			Hint:    "declare at least one alternative",
			Params:  map[string]any{"type": t.String()},
		}}
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.enums[t] = append([]string(nil), names...)
	return nil
}

func (r *Registry) lookup(t reflect.Type) (Schema, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	s, ok := r.schemas[t]
	if !ok {
		return Schema{}, false
	}
	return s.Clone(), true
}

func (r *Registry) lookupEnum(t reflect.Type) ([]string, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names, ok := r.enums[t]
	if !ok {
		return nil, false
	}
	return append([]string(nil), names...), true
}

// Register records an explicit schema for T in the default Registry.
func Register[T any](s Schema) {
	defaultRegistry.RegisterType(reflect.TypeFor[T](), s)
}

// RegisterEnum records T as an enumeration of the given alternative names
// in the default Registry.
func RegisterEnum[T any](names ...string) error {
	return defaultRegistry.RegisterEnumType(reflect.TypeFor[T](), names...)
}
