package paramskema

import "reflect"

// Options bundles derivation configuration.
type Options struct {
	// TagModifier rewrites each enum alternative's declared name into its
	// serialized tag. Defaults to the identity function. It is applied only
	// during enum traversal, never to leaf or wrapper schemas.
	TagModifier func(name string) string
	// Registry resolves explicit schemas and enumerations. Defaults to
	// DefaultRegistry().
	Registry *Registry
}

// Option mutates Options.
type Option func(*Options)

// WithTagModifier sets the naming transform applied to enum alternative tags.
func WithTagModifier(f func(string) string) Option {
	return func(o *Options) {
		if f != nil {
			o.TagModifier = f
		}
	}
}

// WithRegistry selects the Registry consulted during shape construction.
func WithRegistry(r *Registry) Option {
	return func(o *Options) {
		if r != nil {
			o.Registry = r
		}
	}
}

func buildOptions(opts []Option) Options {
	o := Options{
		TagModifier: func(name string) string { return name },
		Registry:    defaultRegistry,
	}
	for _, fn := range opts {
		fn(&o)
	}
	return o
}

// For derives the parameter schema of T from its static shape alone; no
// value of T is ever inspected. It is total for any T whose shape matches a
// supported structural case or carries a registered schema, and returns
// Issues (unsupported_shape) otherwise.
//
// Derivation is referentially transparent: the same type and options always
// produce the same schema, and concurrent calls are safe.
func For[T any](opts ...Option) (Schema, error) {
	o := buildOptions(opts)
	sh, err := o.Registry.ShapeOf(reflect.TypeFor[T]())
	if err != nil {
		return Schema{}, err
	}
	return FromShape(sh, opts...), nil
}

// MustFor is For that panics on unsupported shapes. Intended for
// package-initialization contexts where the shape is statically known good.
func MustFor[T any](opts ...Option) Schema {
	s, err := For[T](opts...)
	if err != nil {
		panic(err)
	}
	return s
}

// FromShape runs the structural traversal over an already-built descriptor.
// It is total: every descriptor produced by ShapeOf derives cleanly.
//
// Enum alternatives contribute their tags in declaration order; this
// library guarantees that order is preserved, never reversed.
func FromShape(sh *Shape, opts ...Option) Schema {
	return deriveShape(sh, buildOptions(opts))
}

func deriveShape(sh *Shape, o Options) Schema {
	switch sh.Kind {
	case ShapeWrapper:
		// Constructor and field names carry no schema meaning; pass through.
		return deriveShape(sh.Inner, o)
	case ShapeEnum:
		tags := make([]string, 0, len(sh.Alts))
		for _, name := range sh.Alts {
			tags = append(tags, o.TagModifier(name))
		}
		return MergeRight(Empty(), Empty().WithType(KindString).WithEnum(tags...))
	default:
		return sh.Leaf.Clone()
	}
}
