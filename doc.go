package paramskema

// Package paramskema derives declarative parameter schemas from the static
// shape of Go types, for API-documentation tooling (OpenAPI/Swagger-style
// "type: integer, minimum: -128, maximum: 127" descriptions). No runtime
// value is ever inspected; output depends solely on the type's shape.
//
// Core pieces:
//
// - Schema: an optional-field accumulator record (kind, format, numeric
//   bounds, length bounds, enum tags) with pure setters and a right-biased
//   MergeRight whose identity is Empty()
// - Primitive catalog: a closed table of basic types (bool, fixed and
//   arbitrary width integers, floats, char, string, four date/time shapes,
//   duration, unit) resolved through a Registry
// - Structural traversal: shape descriptors (leaf, single-field wrapper,
//   sum of nullary alternatives) built by ShapeOf and folded by FromShape
//
// Design policy:
// - Keep only public APIs in the root package; supporting packages live in
//   wrapper/ (delegating single-field types), codec/ (date/time layouts),
//   i18n/, and cmd/paramskema.
// - Derivation is pure and total for supported shapes; unsupported shapes
//   fail at shape-build/registration time via Issues, never mid-traversal.
// - Prefer black-box testing against public APIs.
//
// Typical usage:
//
//  s, err := paramskema.For[int8]()
//  s, err := paramskema.For[Status](paramskema.WithTagModifier(strings.ToLower))
//  wire, err := paramskema.EncodeJSON(s)
//
