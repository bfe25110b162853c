// Package calc evaluates calculator expressions for the calc command. The
// interpreter only sees the math package, so expressions cannot reach the
// process environment.
package calc

import (
	"errors"
	"fmt"
	"strings"

	"github.com/traefik/yaegi/interp"
	"github.com/traefik/yaegi/stdlib"
)

const maxResultLen = 1024

type Evaluator interface {
	Evaluate(expr string) (string, error)
}

type MathEvaluator struct{}

func NewEvaluator() *MathEvaluator {
	return &MathEvaluator{}
}

// Evaluate runs the expression in a fresh interpreter and renders the result.
func (e *MathEvaluator) Evaluate(expr string) (string, error) {
	expr = strings.TrimSpace(expr)
	if expr == "" {
		return "", errors.New("empty expression")
	}

	i := interp.New(interp.Options{})
	symbols := interp.Exports{"math/math": stdlib.Symbols["math/math"]}
	if err := i.Use(symbols); err != nil {
		return "", err
	}
	if _, err := i.Eval(`import "math"`); err != nil {
		return "", err
	}

	res, err := i.Eval(expr)
	if err != nil {
		return "", fmt.Errorf("invalid expression: %w", err)
	}
	if !res.IsValid() {
		return "", errors.New("expression produced no value")
	}

	out := fmt.Sprintf("%v", res.Interface())
	if len(out) > maxResultLen {
		out = out[:maxResultLen]
	}
	return out, nil
}
