package paramskema_test

import (
	"reflect"
	"strings"
	"testing"

	paramskema "github.com/reoring/paramskema"
)

func TestShapeOf_ClassifiesSupportedCases(t *testing.T) {
	reg := paramskema.DefaultRegistry()

	sh, err := reg.ShapeOf(reflect.TypeFor[bool]())
	if err != nil || sh.Kind != paramskema.ShapeLeaf {
		t.Fatalf("bool must be a leaf, got %+v err=%v", sh, err)
	}

	sh, err = reg.ShapeOf(reflect.TypeFor[userID]())
	if err != nil || sh.Kind != paramskema.ShapeWrapper {
		t.Fatalf("single-field struct must be a wrapper, got %+v err=%v", sh, err)
	}
	if sh.Inner == nil || sh.Inner.Kind != paramskema.ShapeLeaf {
		t.Fatalf("wrapper must resolve its inner leaf, got %+v", sh.Inner)
	}

	sh, err = reg.ShapeOf(reflect.TypeFor[suit]())
	if err != nil || sh.Kind != paramskema.ShapeEnum {
		t.Fatalf("nullary sum must be an enum, got %+v err=%v", sh, err)
	}
	if want := []string{"Hearts", "Clubs"}; !reflect.DeepEqual(sh.Alts, want) {
		t.Fatalf("alternatives out of order: %v", sh.Alts)
	}
}

func TestShapeOf_LeavesAreResolvedUpFront(t *testing.T) {
	// Once a descriptor exists the traversal is total: deriving from it
	// cannot fail, whatever the options.
	sh, err := paramskema.DefaultRegistry().ShapeOf(reflect.TypeFor[tinyID]())
	if err != nil {
		t.Fatalf("shape: %v", err)
	}
	got := paramskema.FromShape(sh)
	if !reflect.DeepEqual(got, paramskema.StringSchema()) {
		t.Fatalf("nested wrappers must bottom out in the string leaf: %+v", got)
	}
}

func TestFromShape_EnumUsesDescriptorOrder(t *testing.T) {
	sh := &paramskema.Shape{Kind: paramskema.ShapeEnum, Alts: []string{"B", "A", "C"}}
	got := paramskema.FromShape(sh)
	if want := []string{"B", "A", "C"}; !reflect.DeepEqual(got.Enum, want) {
		t.Fatalf("descriptor order must be kept: %v", got.Enum)
	}
	if got.Type != paramskema.KindString {
		t.Fatalf("enum derivations force the string kind, got %q", got.Type)
	}
}

func TestIssues_ErrorSummary(t *testing.T) {
	iss := paramskema.Issues{
		{Path: "/A", Code: paramskema.CodeUnsupportedShape},
		{Path: "/B", Code: paramskema.CodeUnsupportedShape},
		{Path: "/C", Code: paramskema.CodeUnsupportedShape},
		{Path: "/D", Code: paramskema.CodeUnsupportedShape},
	}
	msg := iss.Error()
	if !strings.HasPrefix(msg, "unsupported_shape at /A") {
		t.Fatalf("summary must lead with the first issue: %q", msg)
	}
	if !strings.Contains(msg, "(total 4)") {
		t.Fatalf("summary must count the overflow: %q", msg)
	}
}
