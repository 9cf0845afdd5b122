package engine

import (
	"strings"
	"sync"
	"testing"
)

func evalScene(t *testing.T, source string) *Scene {
	t.Helper()
	eng := NewEngine()
	sc, evalErrs, err := eng.Evaluate(source)
	if err != nil {
		t.Fatalf("unexpected fatal error: %v", err)
	}
	if len(evalErrs) > 0 {
		t.Fatalf("unexpected eval errors: %v", evalErrs)
	}
	if sc == nil {
		t.Fatal("expected non-nil scene")
	}
	return sc
}

func evalErrors(t *testing.T, source string) []EvalError {
	t.Helper()
	eng := NewEngine()
	sc, evalErrs, err := eng.Evaluate(source)
	if err != nil {
		t.Fatalf("unexpected fatal error: %v", err)
	}
	if sc != nil {
		t.Fatal("expected nil scene on eval error")
	}
	if len(evalErrs) == 0 {
		t.Fatal("expected eval errors")
	}
	return evalErrs
}

func TestEvaluateEmptyString(t *testing.T) {
	sc := evalScene(t, "")
	if sc.World.Gravity != 981 {
		t.Errorf("expected default gravity 981, got %v", sc.World.Gravity)
	}
	if len(sc.Robots) != 0 || len(sc.Plates) != 0 {
		t.Errorf("expected empty scene, got %d robots, %d plates", len(sc.Robots), len(sc.Plates))
	}
}

func TestEvaluateWhitespaceOnly(t *testing.T) {
	sc := evalScene(t, "   \n\t  \n  ")
	if len(sc.Robots) != 0 {
		t.Errorf("expected no robots, got %d", len(sc.Robots))
	}
}

func TestWorldForm(t *testing.T) {
	sc := evalScene(t, `(world :gravity 98.1)`)
	if sc.World.Gravity != 98.1 {
		t.Errorf("expected gravity 98.1, got %v", sc.World.Gravity)
	}
}

func TestWorldFormRejectsBadGravity(t *testing.T) {
	errs := evalErrors(t, `(world :gravity -1)`)
	if !strings.Contains(errs[0].Message, "gravity") {
		t.Errorf("expected gravity error, got %q", errs[0].Message)
	}
}

func TestGroundForm(t *testing.T) {
	sc := evalScene(t, `(ground :yaw 0.5 :pitch 0.25 :roll 0.1)`)
	g := sc.Ground
	if g.Yaw != 0.5 || g.Pitch != 0.25 || g.Roll != 0.1 {
		t.Errorf("unexpected ground orientation: %+v", g)
	}
}

func TestDuctRobotFormDefaults(t *testing.T) {
	sc := evalScene(t, `(duct-robot)`)
	if len(sc.Robots) != 1 {
		t.Fatalf("expected 1 robot, got %d", len(sc.Robots))
	}
	cfg := sc.Robots[0].Config
	if cfg.EdgeLength != 30 {
		t.Errorf("expected default edge length 30, got %v", cfg.EdgeLength)
	}
	if cfg.Pretension != 0.05 {
		t.Errorf("expected default pretension 0.05, got %v", cfg.Pretension)
	}
}

func TestDuctRobotFormOverrides(t *testing.T) {
	sc := evalScene(t, `
		(duct-robot :edge-length 40
		            :duct-height 25
		            :pretension 0.1
		            :max-saddle-velocity 10)`)
	cfg := sc.Robots[0].Config
	if cfg.EdgeLength != 40 {
		t.Errorf("expected edge length 40, got %v", cfg.EdgeLength)
	}
	if cfg.DuctHeight != 25 {
		t.Errorf("expected duct height 25, got %v", cfg.DuctHeight)
	}
	if cfg.Pretension != 0.1 {
		t.Errorf("expected pretension 0.1, got %v", cfg.Pretension)
	}
	if cfg.MaxSaddleVelocity != 10 {
		t.Errorf("expected saddle velocity 10, got %v", cfg.MaxSaddleVelocity)
	}
	// Untouched fields keep defaults.
	if cfg.Stiffness != 10000 {
		t.Errorf("expected default stiffness, got %v", cfg.Stiffness)
	}
}

func TestDuctRobotFormRejectsBadConfig(t *testing.T) {
	errs := evalErrors(t, `(duct-robot :stiffness 0)`)
	if !strings.Contains(errs[0].Message, "Stiffness") {
		t.Errorf("expected stiffness error, got %q", errs[0].Message)
	}
}

func TestDuctRobotFormRejectsUnknownKeyword(t *testing.T) {
	errs := evalErrors(t, `(duct-robot :edge-lenght 40)`)
	if !strings.Contains(errs[0].Message, "edge-lenght") {
		t.Errorf("expected unknown keyword error, got %q", errs[0].Message)
	}
}

func TestForcePlateForm(t *testing.T) {
	sc := evalScene(t, `(force-plate :length 12 :width 12 :at (vec3 5 0 -3))`)
	if len(sc.Plates) != 1 {
		t.Fatalf("expected 1 plate, got %d", len(sc.Plates))
	}
	p := sc.Plates[0]
	if p.Config.Length != 12 || p.Config.Width != 12 {
		t.Errorf("unexpected plate dimensions: %+v", p.Config)
	}
	if p.At.X != 5 || p.At.Y != 0 || p.At.Z != -3 {
		t.Errorf("unexpected placement: %+v", p.At)
	}
}

func TestFullSceneScript(t *testing.T) {
	sc := evalScene(t, `
		;; duct climbing experiment
		(world :gravity 981)
		(ground :yaw 0.0)
		(duct-robot :edge-length 30 :duct-distance 15)
		(force-plate :at (vec3 0 0 0))
		(force-plate :at (vec3 20 0 0))`)
	if len(sc.Robots) != 1 {
		t.Errorf("expected 1 robot, got %d", len(sc.Robots))
	}
	if len(sc.Plates) != 2 {
		t.Errorf("expected 2 plates, got %d", len(sc.Plates))
	}
	if sc.Plates[1].At.X != 20 {
		t.Errorf("expected second plate at x=20, got %v", sc.Plates[1].At.X)
	}
}

func TestParseErrorReported(t *testing.T) {
	eng := NewEngine()
	sc, evalErrs, err := eng.Evaluate(`(world :gravity`)
	if err != nil {
		t.Fatalf("unexpected fatal error: %v", err)
	}
	if sc != nil {
		t.Error("expected nil scene on parse error")
	}
	if len(evalErrs) == 0 {
		t.Fatal("expected eval errors for unbalanced form")
	}
}

func TestConcurrentEvaluations(t *testing.T) {
	eng := NewEngine()
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			// Concurrent results may be superseded; only fatal panics and
			// eval errors are failures.
			sc, evalErrs, err := eng.Evaluate(`(duct-robot)`)
			if err != nil && !strings.Contains(err.Error(), "superseded") {
				t.Errorf("unexpected fatal error: %v", err)
			}
			if err == nil && len(evalErrs) > 0 {
				t.Errorf("unexpected eval errors: %v", evalErrs)
			}
			if err == nil && sc != nil && len(sc.Robots) != 1 {
				t.Errorf("expected 1 robot, got %d", len(sc.Robots))
			}
		}()
	}
	wg.Wait()
}
