package paramskema

import "encoding/json"

// Kind is the JSON-level primitive category reported in a Schema's "type" key.
type Kind string

const (
	KindString  Kind = "string"
	KindNumber  Kind = "number"
	KindInteger Kind = "integer"
	KindBoolean Kind = "boolean"
	KindArray   Kind = "array"
	KindObject  Kind = "object"
)

// Schema is the accumulator record describing a parameter type's JSON-level
// representation: primitive kind, numeric bounds, string-length/format
// constraints, and enumerated literal values. Every field is independently
// optional; absent fields are omitted from the wire form, never emitted as
// null. Bounds use json.Number so 64-bit integer ranges survive exactly
// (float64 cannot represent them).
//
// A Schema is built up purely through setters and merges during one
// derivation and is treated as immutable once returned.
type Schema struct {
	Type      Kind         `json:"type,omitempty" yaml:"type,omitempty"`
	Format    string       `json:"format,omitempty" yaml:"format,omitempty"`
	Minimum   *json.Number `json:"minimum,omitempty" yaml:"minimum,omitempty"`
	Maximum   *json.Number `json:"maximum,omitempty" yaml:"maximum,omitempty"`
	MinLength *int         `json:"minLength,omitempty" yaml:"minLength,omitempty"`
	MaxLength *int         `json:"maxLength,omitempty" yaml:"maxLength,omitempty"`
	Enum      []string     `json:"enum,omitempty" yaml:"enum,omitempty"`
}

// Empty returns the Schema with every field absent. It is the identity
// element of MergeRight and the initial accumulator of a derivation.
func Empty() Schema { return Schema{} }

// IsZero reports whether every field of s is absent.
func (s Schema) IsZero() bool {
	return s.Type == "" && s.Format == "" &&
		s.Minimum == nil && s.Maximum == nil &&
		s.MinLength == nil && s.MaxLength == nil &&
		s.Enum == nil
}

// Clone returns a deep copy of s. Registry entries are cloned on every
// lookup so callers can never alias catalog state.
func (s Schema) Clone() Schema {
	out := s
	out.Minimum = cloneNumber(s.Minimum)
	out.Maximum = cloneNumber(s.Maximum)
	out.MinLength = cloneInt(s.MinLength)
	out.MaxLength = cloneInt(s.MaxLength)
	if s.Enum != nil {
		out.Enum = append([]string(nil), s.Enum...)
	}
	return out
}

// MergeRight combines two partial schemas: per field, b's value wins when
// present, otherwise a's value is kept. Empty() is the identity on both
// sides. Enum follows the same right-biased override here; the enum
// accumulation performed by the sum traversal happens before the Enum field
// is set, not inside the merge.
func MergeRight(a, b Schema) Schema {
	out := a.Clone()
	if b.Type != "" {
		out.Type = b.Type
	}
	if b.Format != "" {
		out.Format = b.Format
	}
	if b.Minimum != nil {
		out.Minimum = cloneNumber(b.Minimum)
	}
	if b.Maximum != nil {
		out.Maximum = cloneNumber(b.Maximum)
	}
	if b.MinLength != nil {
		out.MinLength = cloneInt(b.MinLength)
	}
	if b.MaxLength != nil {
		out.MaxLength = cloneInt(b.MaxLength)
	}
	if b.Enum != nil {
		out.Enum = append([]string(nil), b.Enum...)
	}
	return out
}

// ---- pure field setters ----
//
// Each setter returns a copy of the receiver with exactly one field replaced.
// No cross-field validation happens at this layer (minimum > maximum is not
// rejected here).

// WithType returns a copy of s with the type kind replaced.
func (s Schema) WithType(k Kind) Schema {
	out := s.Clone()
	out.Type = k
	return out
}

// WithFormat returns a copy of s with the format hint replaced.
func (s Schema) WithFormat(f string) Schema {
	out := s.Clone()
	out.Format = f
	return out
}

// WithMinimum returns a copy of s with the inclusive lower bound replaced.
func (s Schema) WithMinimum(n json.Number) Schema {
	out := s.Clone()
	out.Minimum = &n
	return out
}

// WithMaximum returns a copy of s with the inclusive upper bound replaced.
func (s Schema) WithMaximum(n json.Number) Schema {
	out := s.Clone()
	out.Maximum = &n
	return out
}

// WithMinLength returns a copy of s with the minimum string length replaced.
func (s Schema) WithMinLength(n int) Schema {
	out := s.Clone()
	out.MinLength = &n
	return out
}

// WithMaxLength returns a copy of s with the maximum string length replaced.
func (s Schema) WithMaxLength(n int) Schema {
	out := s.Clone()
	out.MaxLength = &n
	return out
}

// WithEnum returns a copy of s with the permitted value set replaced.
func (s Schema) WithEnum(values ...string) Schema {
	out := s.Clone()
	out.Enum = append([]string(nil), values...)
	return out
}

func cloneNumber(n *json.Number) *json.Number {
	if n == nil {
		return nil
	}
	v := *n
	return &v
}

func cloneInt(n *int) *int {
	if n == nil {
		return nil
	}
	v := *n
	return &v
}
