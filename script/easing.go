// Package script compiles user-authored easing curves written as Tengo
// expressions.
//
// An expression sees the linear ratio as t (a float in [0, 1]) and the Tengo
// math module as math:
//
//	smooth, err := script.NewEasing("t * t * (3 - 2 * t)")
//	wobble, err := script.NewEasing("t + math.sin(t * math.pi * 4) * (1 - t) * 0.1")
//
// The resulting Easing plugs into sway.NewTween like any built-in curve.
package script

import (
	"fmt"
	"math"
	"strings"
	"sync"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"
)

const (
	inputVar  = "t"
	outputVar = "__out"
)

// Easing evaluates a compiled Tengo expression. It is safe for concurrent
// use; evaluations are serialized.
type Easing struct {
	src string

	mu       sync.Mutex
	compiled *tengo.Compiled
	err      error
}

// NewEasing compiles expr and checks that it evaluates to a number.
func NewEasing(expr string) (*Easing, error) {
	expr = strings.TrimSpace(expr)
	if expr == "" {
		return nil, fmt.Errorf("script: empty easing expression")
	}
	src := fmt.Sprintf("math := import(\"math\")\n%s := %s\n", outputVar, expr)

	s := tengo.NewScript([]byte(src))
	s.SetImports(stdlib.GetModuleMap("math"))
	if err := s.Add(inputVar, 0.0); err != nil {
		return nil, fmt.Errorf("script: add input: %w", err)
	}
	compiled, err := s.Compile()
	if err != nil {
		return nil, fmt.Errorf("script: compile %q: %w", expr, err)
	}

	e := &Easing{src: expr, compiled: compiled}
	if _, err := e.eval(0.5); err != nil {
		return nil, fmt.Errorf("script: evaluate %q: %w", expr, err)
	}
	return e, nil
}

// Source returns the expression the curve was compiled from.
func (e *Easing) Source() string { return e.src }

// Err returns the last evaluation error, if any.
func (e *Easing) Err() error {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.err
}

// Ease implements sway.Easing. Endpoints are pinned to 0 and 1; values in
// between may overshoot. If the script fails at runtime or yields NaN or an
// infinity, the linear ratio is returned and the error is kept for Err.
func (e *Easing) Ease(ratio float32) float32 {
	if ratio <= 0 {
		return 0
	}
	if ratio >= 1 {
		return 1
	}
	v, err := e.eval(ratio)
	if err != nil {
		return ratio
	}
	return v
}

func (e *Easing) eval(ratio float32) (float32, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if err := e.compiled.Set(inputVar, float64(ratio)); err != nil {
		e.err = err
		return 0, err
	}
	if err := e.compiled.Run(); err != nil {
		e.err = err
		return 0, err
	}
	out := e.compiled.Get(outputVar)
	switch out.ValueType() {
	case "float", "int":
		v := out.Float()
		if math.IsNaN(v) || math.IsInf(v, 0) {
			e.err = fmt.Errorf("expression yields %v at t=%v", v, ratio)
			return 0, e.err
		}
		return float32(v), nil
	}
	e.err = fmt.Errorf("expression yields %s, want a number", out.ValueType())
	return 0, e.err
}
