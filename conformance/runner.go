package conformance

import (
	"fmt"

	"lumen/eval"
	"lumen/parser"
	"lumen/types"
)

// Runner evaluates conformance test cases against a fresh environment
// per case, so one test's bindings never leak into the next.
type Runner struct {
	maxCallDepth int
}

// NewRunner creates a Runner with the default call-depth ceiling.
func NewRunner() *Runner {
	return &Runner{maxCallDepth: 10000}
}

// Run executes a single loaded test case and reports whether its
// result matched the fixture's expectation.
func (r *Runner) Run(lt LoadedTest) error {
	if lt.Test.Skip {
		return nil
	}

	l := parser.NewLexer(lt.Test.Code)
	p := parser.New(l)
	program := p.ParseProgram()
	if errs := p.Errors(); len(errs) > 0 {
		return fmt.Errorf("parse error: %v", errs)
	}

	e := eval.NewEvaluatorWithDepth(r.maxCallDepth)
	env := types.NewEnvironment()
	result := e.Run(program, env)

	return checkExpectation(lt.Test.Expect, result)
}

func checkExpectation(expect Expectation, result types.Value) error {
	switch {
	case expect.Error != "":
		errObj, ok := result.(*types.Error)
		if !ok {
			return fmt.Errorf("expected error %q, got %s %v", expect.Error, result.Kind(), result)
		}
		if errObj.Message != expect.Error {
			return fmt.Errorf("expected error %q, got %q", expect.Error, errObj.Message)
		}
		return nil

	case expect.Kind != "":
		if string(result.Kind()) != expect.Kind {
			return fmt.Errorf("expected kind %s, got %s", expect.Kind, result.Kind())
		}
		return nil

	case expect.Value != nil:
		want := fmt.Sprint(expect.Value)
		got := result.String()
		if got != want {
			return fmt.Errorf("expected %q, got %q", want, got)
		}
		return nil

	default:
		return fmt.Errorf("test case has no expectation")
	}
}
