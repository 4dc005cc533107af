package paramskema

import (
	"reflect"

	"github.com/reoring/paramskema/i18n"
)

// ShapeKind tags the structural classification of a type.
type ShapeKind uint8

const (
	// ShapeLeaf is a type with its own registered or builtin schema.
	ShapeLeaf ShapeKind = iota
	// ShapeWrapper is a single-constructor/single-field type; its schema is
	// the wrapped field's schema verbatim.
	ShapeWrapper
	// ShapeEnum is a closed set of nullary alternatives; its schema is a
	// string enumeration of the alternative tags.
	ShapeEnum
)

// Shape is the explicit structural descriptor consumed by the traversal.
// It is built once per derivation request; leaf schemas are resolved during
// construction so the traversal itself can never fail.
type Shape struct {
	Kind  ShapeKind
	Leaf  Schema   // ShapeLeaf: the resolved schema.
	Inner *Shape   // ShapeWrapper: the wrapped field's shape.
	Alts  []string // ShapeEnum: declared alternative names, declaration order.
}

var enumerationType = reflect.TypeFor[Enumeration]()

// ShapeOf classifies t against the supported structural cases and returns
// its descriptor. A type matching no case yields an unsupported_shape error
// carrying the type path where classification gave up; unsupported shapes
// surface here, at shape-build time, never mid-traversal.
//
// Classification order: explicit schema entry, enumeration, pointer
// unwrap, single-field struct unwrap, zero-field struct (unit), basic kind.
func (r *Registry) ShapeOf(t reflect.Type) (*Shape, error) {
	return r.shapeOf(t, "/")
}

func (r *Registry) shapeOf(t reflect.Type, path string) (*Shape, error) {
	if s, ok := r.lookup(t); ok {
		return &Shape{Kind: ShapeLeaf, Leaf: s}, nil
	}
	if names, ok := r.enumAlternatives(t); ok {
		if len(names) == 0 {
			return nil, Issues{{
				Path:    path,
				Code:    CodeEmptyEnum,
				Message: i18n.T(CodeEmptyEnum, nil),
				Hint:    "EnumAlternatives returned no names",
				Params:  map[string]any{"type": t.String()},
			}}
		}
		return &Shape{Kind: ShapeEnum, Alts: names}, nil
	}
	switch t.Kind() {
	case reflect.Pointer:
		inner, err := r.shapeOf(t.Elem(), path)
		if err != nil {
			return nil, err
		}
		return &Shape{Kind: ShapeWrapper, Inner: inner}, nil
	case reflect.Struct:
		switch t.NumField() {
		case 0:
			// No-payload singleton, same schema as Unit.
			return &Shape{Kind: ShapeLeaf, Leaf: UnitSchema()}, nil
		case 1:
			f := t.Field(0)
			inner, err := r.shapeOf(f.Type, joinTypePath(path, f.Name))
			if err != nil {
				return nil, err
			}
			return &Shape{Kind: ShapeWrapper, Inner: inner}, nil
		}
	default:
		if s, ok := kindSchema(t); ok {
			return &Shape{Kind: ShapeLeaf, Leaf: s}, nil
		}
	}
	return nil, Issues{{
		Path:    path,
		Code:    CodeUnsupportedShape,
		Message: i18n.T(CodeUnsupportedShape, nil),
		Hint:    "register an explicit schema for this type",
		Params:  map[string]any{"type": t.String()},
	}}
}

// enumAlternatives resolves t's declared alternatives, either from an
// explicit RegisterEnum entry or from an Enumeration implementation. The
// interface check consults only static type metadata; the method is invoked
// on a zero value and must not depend on its receiver.
func (r *Registry) enumAlternatives(t reflect.Type) ([]string, bool) {
	if names, ok := r.lookupEnum(t); ok {
		return names, true
	}
	// Pointer types are unwrapped first; invoking an Enumeration method on a
	// zero (nil) pointer would panic for value receivers.
	if t.Kind() != reflect.Pointer && t.Implements(enumerationType) {
		e := reflect.Zero(t).Interface().(Enumeration)
		return e.EnumAlternatives(), true
	}
	return nil, false
}

// kindSchema resolves unregistered named types over basic kinds. Integer
// bounds come from the kind's actual bit width, so a type like
// `type Port uint16` gets the full uint16 range without registration.
func kindSchema(t reflect.Type) (Schema, bool) {
	switch t.Kind() {
	case reflect.Bool:
		return BooleanSchema(), true
	case reflect.String:
		return StringSchema(), true
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return BoundedIntegerSchema(t.Bits(), true), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return BoundedIntegerSchema(t.Bits(), false), true
	case reflect.Float32, reflect.Float64:
		return NumberSchema(), true
	default:
		return Schema{}, false
	}
}

func joinTypePath(path, field string) string {
	if path == "/" {
		return "/" + field
	}
	return path + "/" + field
}
