package engine

import (
	"testing"
)

func TestPreprocessKeywords(t *testing.T) {
	got := preprocessSource(`(world :gravity 981)`)
	want := `(world "__kw_gravity" 981)`
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestPreprocessKeywordKeepsHyphen(t *testing.T) {
	got := preprocessSource(`:edge-length`)
	want := `"__kw_edge-length"`
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestPreprocessKebabIdentifiers(t *testing.T) {
	got := preprocessSource(`(duct-robot)`)
	want := `(duct_robot)`
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestPreprocessPreservesMinus(t *testing.T) {
	got := preprocessSource(`(- 5 3)`)
	if got != `(- 5 3)` {
		t.Errorf("minus operator mangled: %q", got)
	}
	got = preprocessSource(`(vec3 -1.5 0 0)`)
	if got != `(vec3 -1.5 0 0)` {
		t.Errorf("negative literal mangled: %q", got)
	}
}

func TestPreprocessStringsUntouched(t *testing.T) {
	src := `(label "duct-robot :gravity ; untouched")`
	got := preprocessSource(src)
	if got != src {
		t.Errorf("string literal mangled: %q", got)
	}
}

func TestPreprocessComments(t *testing.T) {
	got := preprocessSource(";; a duct-robot comment\n(world)")
	want := "// a duct-robot comment\n(world)"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestPreprocessAssignmentOperator(t *testing.T) {
	got := preprocessSource(`(def x := 5)`)
	if got != `(def x := 5)` {
		t.Errorf("assignment operator mangled: %q", got)
	}
}

func TestParseArgs(t *testing.T) {
	sc := evalScene(t, `(duct-robot :edge-length 35)`)
	if sc.Robots[0].Config.EdgeLength != 35 {
		t.Errorf("keyword argument not applied: %v", sc.Robots[0].Config.EdgeLength)
	}
}

func TestVec3RequiresThreeNumbers(t *testing.T) {
	errs := evalErrors(t, `(force-plate :at (vec3 1 2))`)
	if len(errs) == 0 {
		t.Fatal("expected error for two-argument vec3")
	}
}

func TestIntegersAcceptedAsFloats(t *testing.T) {
	sc := evalScene(t, `(duct-robot :edge-length 32)`)
	if sc.Robots[0].Config.EdgeLength != 32 {
		t.Errorf("integer literal not converted: %v", sc.Robots[0].Config.EdgeLength)
	}
}
