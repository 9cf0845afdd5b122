package engine

import (
	"fmt"
	"strings"

	zygo "github.com/glycerine/zygomys/zygo"

	"github.com/chazu/tenseg/pkg/duct"
	"github.com/chazu/tenseg/pkg/forceplate"
	"github.com/chazu/tenseg/pkg/structure"
)

// ---------------------------------------------------------------------------
// Source preprocessing
// ---------------------------------------------------------------------------

// preprocessSource transforms scene Lisp source code before passing it to
// zygomys. It performs two transformations:
//
//  1. Keyword conversion: :keyword -> "__kw_keyword" (string literal)
//     This avoids the need to register keyword symbols as globals, which
//     would conflict with user-defined variables of the same name.
//
//  2. Kebab-case to underscore: duct-robot -> duct_robot
//     zygomys does not allow hyphens in identifiers (it interprets them
//     as the subtraction operator). This converts kebab-case identifiers
//     to underscore form outside of strings and comments. Keyword names
//     keep their hyphens because they become string literals first.
//
// Both transformations respect string literal boundaries and line comments.
func preprocessSource(source string) string {
	result := make([]byte, 0, len(source)+len(source)/4)
	b := []byte(source)
	i := 0
	for i < len(b) {
		// Skip double-quoted string literals.
		if b[i] == '"' {
			result = append(result, b[i])
			i++
			for i < len(b) && b[i] != '"' {
				if b[i] == '\\' && i+1 < len(b) {
					result = append(result, b[i], b[i+1])
					i += 2
					continue
				}
				result = append(result, b[i])
				i++
			}
			if i < len(b) {
				result = append(result, b[i])
				i++
			}
			continue
		}
		// Skip backtick-quoted string literals.
		if b[i] == '`' {
			result = append(result, b[i])
			i++
			for i < len(b) && b[i] != '`' {
				result = append(result, b[i])
				i++
			}
			if i < len(b) {
				result = append(result, b[i])
				i++
			}
			continue
		}
		// Convert ; line comments to // comments for zygomys.
		// zygomys uses // for line comments, not the traditional Lisp ;.
		if b[i] == ';' {
			result = append(result, '/', '/')
			i++
			// Skip additional ; characters (;; style).
			for i < len(b) && b[i] == ';' {
				i++
			}
			for i < len(b) && b[i] != '\n' {
				result = append(result, b[i])
				i++
			}
			continue
		}
		// Transform :keyword to "__kw_keyword".
		if b[i] == ':' && i+1 < len(b) {
			// Preserve := (assignment operator).
			if b[i+1] == '=' {
				result = append(result, b[i], b[i+1])
				i += 2
				continue
			}
			// Check for keyword: colon followed by a letter.
			if isLetter(b[i+1]) {
				j := i + 1
				for j < len(b) && isKWChar(b[j]) {
					j++
				}
				kwName := string(b[i+1 : j])
				result = append(result, '"')
				result = append(result, []byte(kwPrefix)...)
				result = append(result, []byte(kwName)...)
				result = append(result, '"')
				i = j
				continue
			}
		}
		// Transform kebab-case identifiers: alpha-alpha -> alpha_alpha.
		// Only when hyphen sits between identifier characters (not a minus operator).
		if b[i] == '-' && i > 0 && i+1 < len(b) &&
			isIdentChar(b[i-1]) && isIdentStartChar(b[i+1]) {
			result = append(result, '_')
			i++
			continue
		}
		result = append(result, b[i])
		i++
	}
	return string(result)
}

func isLetter(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isKWChar(c byte) bool {
	return isLetter(c) || (c >= '0' && c <= '9') || c == '-' || c == '_'
}

func isIdentChar(c byte) bool {
	return isLetter(c) || (c >= '0' && c <= '9') || c == '_'
}

func isIdentStartChar(c byte) bool {
	return isLetter(c)
}

// ---------------------------------------------------------------------------
// Custom Sexp types
// ---------------------------------------------------------------------------

// sexpVec3 wraps a structure.Vec3 so placements can be passed between
// builtins.
type sexpVec3 struct {
	vec structure.Vec3
}

func (v *sexpVec3) SexpString(ps *zygo.PrintState) string {
	return fmt.Sprintf("(vec3 %.1f %.1f %.1f)", v.vec.X, v.vec.Y, v.vec.Z)
}
func (v *sexpVec3) Type() *zygo.RegisteredType { return nil }

// ---------------------------------------------------------------------------
// Keyword argument parsing
// ---------------------------------------------------------------------------

// kwPrefix is the marker prepended to keyword names by preprocessSource.
const kwPrefix = "__kw_"

// isKW checks if a Sexp is a preprocessed keyword string.
// Returns the keyword name (without prefix) and true if it is.
func isKW(s zygo.Sexp) (string, bool) {
	str, ok := s.(*zygo.SexpStr)
	if !ok {
		return "", false
	}
	if strings.HasPrefix(str.S, kwPrefix) {
		return str.S[len(kwPrefix):], true
	}
	return "", false
}

// kwArgs holds the result of parsing a mixed positional+keyword argument list.
type kwArgs struct {
	kw         map[string]zygo.Sexp
	positional []zygo.Sexp
}

// parseArgs separates args into keyword and positional arguments.
// Keywords are identified by the __kw_ prefix added during preprocessing.
func parseArgs(args []zygo.Sexp) kwArgs {
	result := kwArgs{kw: make(map[string]zygo.Sexp)}
	i := 0
	for i < len(args) {
		name, ok := isKW(args[i])
		if ok {
			if i+1 < len(args) {
				result.kw[name] = args[i+1]
				i += 2
			} else {
				// Keyword at end with no value; treat as flag with nil.
				result.kw[name] = zygo.SexpNull
				i++
			}
		} else {
			result.positional = append(result.positional, args[i])
			i++
		}
	}
	return result
}

// ---------------------------------------------------------------------------
// Value extraction helpers
// ---------------------------------------------------------------------------

// toFloat64 extracts a float64 from a Sexp (SexpInt or SexpFloat).
func toFloat64(s zygo.Sexp) (float64, error) {
	switch v := s.(type) {
	case *zygo.SexpInt:
		return float64(v.Val), nil
	case *zygo.SexpFloat:
		return v.Val, nil
	}
	return 0, fmt.Errorf("expected number, got %T (%s)", s, s.SexpString(nil))
}

// toVec3 extracts a Vec3 from a sexpVec3.
func toVec3(s zygo.Sexp) (structure.Vec3, error) {
	if v, ok := s.(*sexpVec3); ok {
		return v.vec, nil
	}
	return structure.Vec3{}, fmt.Errorf("expected vec3, got %T (%s)", s, s.SexpString(nil))
}

// applyFloats overwrites fields named by keyword arguments. fields maps
// keyword name to destination; unknown keywords are an error so typos in
// scene source fail loudly.
func applyFloats(form string, pa kwArgs, fields map[string]*float64, allowed map[string]bool) error {
	for name, value := range pa.kw {
		dst, ok := fields[name]
		if !ok {
			if allowed[name] {
				continue
			}
			return fmt.Errorf("%s: unknown keyword :%s", form, name)
		}
		f, err := toFloat64(value)
		if err != nil {
			return fmt.Errorf("%s: %s: %w", form, name, err)
		}
		*dst = f
	}
	return nil
}

// ---------------------------------------------------------------------------
// Builtin registration
// ---------------------------------------------------------------------------

// registerBuiltins installs the scene DSL builtins into a zygomys
// environment. The builtins populate the provided Scene during evaluation.
//
// Source code must be preprocessed with preprocessSource() before
// evaluation so that :keyword tokens are converted to recognizable string
// literals and kebab-case form names become the underscore identifiers
// registered here.
func registerBuiltins(env *zygo.Zlisp, scene *Scene) {

	// -----------------------------------------------------------------------
	// (vec3 1 2 3)
	// -----------------------------------------------------------------------
	env.AddFunction("vec3", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		if len(args) != 3 {
			return zygo.SexpNull, fmt.Errorf("vec3 requires exactly 3 arguments, got %d", len(args))
		}
		var v structure.Vec3
		var err error
		if v.X, err = toFloat64(args[0]); err != nil {
			return zygo.SexpNull, fmt.Errorf("vec3: x: %w", err)
		}
		if v.Y, err = toFloat64(args[1]); err != nil {
			return zygo.SexpNull, fmt.Errorf("vec3: y: %w", err)
		}
		if v.Z, err = toFloat64(args[2]); err != nil {
			return zygo.SexpNull, fmt.Errorf("vec3: z: %w", err)
		}
		return &sexpVec3{vec: v}, nil
	})

	// -----------------------------------------------------------------------
	// (world :gravity 981)
	// -----------------------------------------------------------------------
	env.AddFunction("world", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		pa := parseArgs(args)
		err := applyFloats("world", pa, map[string]*float64{
			"gravity": &scene.World.Gravity,
		}, nil)
		if err != nil {
			return zygo.SexpNull, err
		}
		return zygo.SexpNull, nil
	})

	// -----------------------------------------------------------------------
	// (ground :yaw 0.1 :pitch 0.2 :roll 0)
	// -----------------------------------------------------------------------
	env.AddFunction("ground", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		pa := parseArgs(args)
		err := applyFloats("ground", pa, map[string]*float64{
			"yaw":   &scene.Ground.Yaw,
			"pitch": &scene.Ground.Pitch,
			"roll":  &scene.Ground.Roll,
		}, nil)
		if err != nil {
			return zygo.SexpNull, err
		}
		return zygo.SexpNull, nil
	})

	// -----------------------------------------------------------------------
	// (duct-robot :edge-length 30 :duct-height 22 :pretension 0.05 ...)
	// Unspecified parameters keep their defaults.
	// -----------------------------------------------------------------------
	env.AddFunction("duct_robot", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		pa := parseArgs(args)
		cfg := duct.DefaultConfig()
		err := applyFloats("duct-robot", pa, map[string]*float64{
			"edge-length":         &cfg.EdgeLength,
			"duct-distance":       &cfg.DuctDistance,
			"duct-height":         &cfg.DuctHeight,
			"density":             &cfg.Density,
			"prism-radius":        &cfg.PrismRadius,
			"prism-extent":        &cfg.PrismExtent,
			"vert-rod-radius":     &cfg.VertRodRadius,
			"inner-rod-radius":    &cfg.InnerRodRadius,
			"tip-radius":          &cfg.TipRadius,
			"tip-density":         &cfg.TipDensity,
			"tip-friction":        &cfg.TipFriction,
			"stiffness":           &cfg.Stiffness,
			"damping":             &cfg.Damping,
			"pretension":          &cfg.Pretension,
			"max-vert-velocity":   &cfg.MaxVertVelocity,
			"max-saddle-velocity": &cfg.MaxSaddleVelocity,
			"max-string-force":    &cfg.MaxStringForce,
			"hinge-fraction":      &cfg.HingeFraction,
			"node-offset":         &cfg.NodeOffset,
		}, nil)
		if err != nil {
			return zygo.SexpNull, err
		}
		if err := cfg.Validate(); err != nil {
			return zygo.SexpNull, fmt.Errorf("duct-robot: %w", err)
		}
		scene.Robots = append(scene.Robots, RobotSpec{Config: cfg})
		return zygo.SexpNull, nil
	})

	// -----------------------------------------------------------------------
	// (force-plate :length 10 :width 10 :at (vec3 0 0 0))
	// -----------------------------------------------------------------------
	env.AddFunction("force_plate", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		pa := parseArgs(args)
		cfg := forceplate.DefaultConfig()
		err := applyFloats("force-plate", pa, map[string]*float64{
			"length":               &cfg.Length,
			"width":                &cfg.Width,
			"height":               &cfg.Height,
			"thickness":            &cfg.Thickness,
			"plate-thickness":      &cfg.PlateThickness,
			"wall-gap":             &cfg.WallGap,
			"bottom-gap":           &cfg.BottomGap,
			"lateral-stiffness":    &cfg.LateralStiffness,
			"vertical-stiffness":   &cfg.VerticalStiffness,
			"lateral-damping":      &cfg.LateralDamping,
			"vertical-damping":     &cfg.VerticalDamping,
			"lateral-rest-length":  &cfg.LateralRestLen,
			"vertical-rest-length": &cfg.VerticalRestLen,
			"density":              &cfg.Density,
			"friction":             &cfg.Friction,
			"roll-friction":        &cfg.RollFriction,
			"restitution":          &cfg.Restitution,
		}, map[string]bool{"at": true})
		if err != nil {
			return zygo.SexpNull, err
		}
		if err := cfg.Validate(); err != nil {
			return zygo.SexpNull, fmt.Errorf("force-plate: %w", err)
		}

		var at structure.Vec3
		if v, ok := pa.kw["at"]; ok {
			at, err = toVec3(v)
			if err != nil {
				return zygo.SexpNull, fmt.Errorf("force-plate: at: %w", err)
			}
		}
		scene.Plates = append(scene.Plates, PlateSpec{Config: cfg, At: at})
		return zygo.SexpNull, nil
	})
}
