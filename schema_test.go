package paramskema_test

import (
	"encoding/json"
	"reflect"
	"strings"
	"testing"

	paramskema "github.com/reoring/paramskema"
)

func TestMergeRight_IdentityLaw(t *testing.T) {
	x := paramskema.Empty().
		WithType(paramskema.KindInteger).
		WithFormat("int32").
		WithMinimum(json.Number("-5")).
		WithMaximum(json.Number("5")).
		WithMinLength(1).
		WithMaxLength(3).
		WithEnum("a", "b")

	if got := paramskema.MergeRight(paramskema.Empty(), x); !reflect.DeepEqual(got, x) {
		t.Fatalf("MergeRight(empty, x) != x: %+v", got)
	}
	if got := paramskema.MergeRight(x, paramskema.Empty()); !reflect.DeepEqual(got, x) {
		t.Fatalf("MergeRight(x, empty) != x: %+v", got)
	}
}

func TestMergeRight_RightBias(t *testing.T) {
	a := paramskema.Empty().
		WithType(paramskema.KindInteger).
		WithMinimum(json.Number("0")).
		WithFormat("old")
	b := paramskema.Empty().
		WithType(paramskema.KindString).
		WithMaximum(json.Number("9"))

	got := paramskema.MergeRight(a, b)
	if got.Type != paramskema.KindString {
		t.Fatalf("expected b's type to win, got %q", got.Type)
	}
	if got.Format != "old" {
		t.Fatalf("expected a's format to survive, got %q", got.Format)
	}
	if got.Minimum == nil || *got.Minimum != json.Number("0") {
		t.Fatalf("expected a's minimum to survive, got %v", got.Minimum)
	}
	if got.Maximum == nil || *got.Maximum != json.Number("9") {
		t.Fatalf("expected b's maximum, got %v", got.Maximum)
	}
}

func TestSetters_PureCopies(t *testing.T) {
	base := paramskema.Empty().WithType(paramskema.KindString)
	derived := base.WithMinLength(2)
	if base.MinLength != nil {
		t.Fatalf("setter mutated its receiver: %+v", base)
	}
	if derived.MinLength == nil || *derived.MinLength != 2 {
		t.Fatalf("setter lost its field: %+v", derived)
	}

	// no cross-field validation at this layer
	inverted := paramskema.Empty().
		WithMinimum(json.Number("10")).
		WithMaximum(json.Number("1"))
	if inverted.Minimum == nil || inverted.Maximum == nil {
		t.Fatalf("inverted bounds must be stored verbatim: %+v", inverted)
	}
}

func TestClone_Independent(t *testing.T) {
	orig := paramskema.Empty().WithEnum("x", "y").WithMinLength(1)
	cp := orig.Clone()
	cp.Enum[0] = "mutated"
	*cp.MinLength = 99
	if orig.Enum[0] != "x" || *orig.MinLength != 1 {
		t.Fatalf("clone aliased its source: %+v", orig)
	}
}

func TestIsZero(t *testing.T) {
	if !paramskema.Empty().IsZero() {
		t.Fatalf("Empty must be zero")
	}
	if paramskema.Empty().WithFormat("x").IsZero() {
		t.Fatalf("populated schema must not be zero")
	}
}

func TestEncodeJSON_WireShape(t *testing.T) {
	cases := []struct {
		name string
		in   paramskema.Schema
		want string
	}{
		{"boolean", paramskema.BooleanSchema(), `{"type":"boolean"}`},
		{"int8", paramskema.BoundedIntegerSchema(8, true), `{"type":"integer","minimum":-128,"maximum":127}`},
		{"char", paramskema.CharSchema(), `{"type":"string","minLength":1,"maxLength":1}`},
		{"date", paramskema.DateTimeSchema(paramskema.FormatDate), `{"type":"string","format":"yyyy-mm-dd","minLength":10}`},
		{"unit", paramskema.UnitSchema(), `{"type":"string","enum":["_"]}`},
		{"empty", paramskema.Empty(), `{}`},
	}
	for _, c := range cases {
		out, err := paramskema.EncodeJSON(c.in)
		if err != nil {
			t.Fatalf("%s: encode: %v", c.name, err)
		}
		if string(out) != c.want {
			t.Fatalf("%s: got %s want %s", c.name, out, c.want)
		}
	}
}

func TestEncodeJSON_Int64BoundsExact(t *testing.T) {
	out, err := paramskema.EncodeJSON(paramskema.BoundedIntegerSchema(64, true))
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	want := `{"type":"integer","minimum":-9223372036854775808,"maximum":9223372036854775807}`
	if string(out) != want {
		t.Fatalf("64-bit bounds must not pass through float64:\n got %s\nwant %s", out, want)
	}
}

func TestEncodeYAML_KeepsIntegerBounds(t *testing.T) {
	out, err := paramskema.EncodeYAML(paramskema.BoundedIntegerSchema(64, false))
	if err != nil {
		t.Fatalf("encode yaml: %v", err)
	}
	s := string(out)
	if !strings.Contains(s, "18446744073709551615") {
		t.Fatalf("uint64 maximum lost precision: %s", s)
	}
}
