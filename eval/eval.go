// Package eval implements the tree-walking evaluator: recursive
// reduction of a parsed syntax tree to a runtime value, operator
// dispatch, and the function-application protocol for closures.
package eval

import (
	"fmt"

	"lumen/builtins"
	"lumen/parser"
	"lumen/types"
)

// defaultMaxCallDepth bounds nested function application so that the
// common infinite-recursion script (`let f = fn(){ f() }; f()`)
// surfaces as a runtime error instead of exhausting the host stack.
const defaultMaxCallDepth = 10000

// Evaluator walks an AST and reduces it to a value against a binding
// context, consulting a fixed built-in registry for identifier lookup
// and call dispatch it doesn't resolve lexically.
type Evaluator struct {
	builtins     *builtins.Registry
	maxCallDepth int
	callDepth    int
}

// NewEvaluator creates an Evaluator with the default built-in registry
// and call-depth ceiling.
func NewEvaluator() *Evaluator {
	return &Evaluator{
		builtins:     builtins.NewRegistry(),
		maxCallDepth: defaultMaxCallDepth,
	}
}

// NewEvaluatorWithDepth creates an Evaluator with a custom call-depth
// ceiling (see config.Config.MaxCallDepth).
func NewEvaluatorWithDepth(maxCallDepth int) *Evaluator {
	return &Evaluator{
		builtins:     builtins.NewRegistry(),
		maxCallDepth: maxCallDepth,
	}
}

// Run is the public driver: it evaluates a whole program against a
// seed environment and returns a value that is never a return-carrier,
// enforcing invariant 1 (totality) at the embedder-facing boundary.
func (e *Evaluator) Run(program *parser.Program, env *types.Environment) types.Value {
	result := e.Eval(program, env)
	if rv, ok := result.(*types.ReturnValue); ok {
		return rv.Value
	}
	return result
}

// Eval is the evaluator core's single public entry: it reduces node to
// a value, recursing into children and propagating errors and
// return-carriers per the node's reduction rule.
func (e *Evaluator) Eval(node parser.Node, env *types.Environment) types.Value {
	switch n := node.(type) {
	case *parser.Program:
		return e.evalProgram(n, env)
	case *parser.BlockStatement:
		return e.evalBlockStatement(n, env)
	case *parser.ExpressionStatement:
		return e.Eval(n.Expression, env)
	case *parser.LetStatement:
		return e.evalLetStatement(n, env)
	case *parser.ReturnStatement:
		return e.evalReturnStatement(n, env)

	case *parser.IntegerLiteral:
		return &types.Integer{Value: n.Value}
	case *parser.StringLiteral:
		return &types.String{Value: n.Value}
	case *parser.Boolean:
		return &types.Boolean{Value: n.Value}

	case *parser.Identifier:
		return e.evalIdentifier(n, env)

	case *parser.ArrayLiteral:
		elements := e.evalExpressions(n.Elements, env)
		if len(elements) == 1 && types.IsError(elements[0]) {
			return elements[0]
		}
		return &types.Array{Elements: elements}

	case *parser.HashLiteral:
		return e.evalHashLiteral(n, env)

	case *parser.IndexExpression:
		return e.evalIndexExpression(n, env)

	case *parser.PrefixExpression:
		right := e.Eval(n.Right, env)
		if types.IsError(right) {
			return right
		}
		return e.evalPrefixExpression(n.Operator, right)

	case *parser.InfixExpression:
		left := e.Eval(n.Left, env)
		if types.IsError(left) {
			return left
		}
		right := e.Eval(n.Right, env)
		if types.IsError(right) {
			return right
		}
		return e.evalInfixExpression(n.Operator, left, right)

	case *parser.IfExpression:
		return e.evalIfExpression(n, env)

	case *parser.FunctionLiteral:
		return &types.Function{Parameters: n.Parameters, Body: n.Body, Env: env}

	case *parser.CallExpression:
		return e.evalCallExpression(n, env)

	default:
		return newError("unknown node type: %T", node)
	}
}

func (e *Evaluator) evalExpressions(exps []parser.Expression, env *types.Environment) []types.Value {
	result := make([]types.Value, 0, len(exps))
	for _, exp := range exps {
		evaluated := e.Eval(exp, env)
		if types.IsError(evaluated) {
			return []types.Value{evaluated}
		}
		result = append(result, evaluated)
	}
	return result
}

func (e *Evaluator) evalIdentifier(node *parser.Identifier, env *types.Environment) types.Value {
	if val, ok := env.Get(node.Value); ok {
		return val
	}
	if e.builtins.Has(node.Value) {
		return &types.Builtin{Name: node.Value}
	}
	return newError("identifier not found: %s", node.Value)
}

func (e *Evaluator) evalCallExpression(node *parser.CallExpression, env *types.Environment) types.Value {
	function := e.Eval(node.Function, env)
	if types.IsError(function) {
		return function
	}

	args := e.evalExpressions(node.Arguments, env)
	if len(args) == 1 && types.IsError(args[0]) {
		return args[0]
	}

	return e.applyFunction(function, args)
}

func (e *Evaluator) applyFunction(fn types.Value, args []types.Value) types.Value {
	switch fn := fn.(type) {
	case *types.Function:
		if e.callDepth >= e.maxCallDepth {
			return newError("too many nested calls")
		}
		e.callDepth++
		defer func() { e.callDepth-- }()

		extended := extendFunctionEnv(fn, args)
		evaluated := e.Eval(fn.Body, extended)
		return unwrapReturnValue(evaluated)

	case *types.Builtin:
		callable, ok := e.builtins.Get(fn.Name)
		if !ok {
			return newError("Not a function: %s", fn.Name)
		}
		return callable(args)

	default:
		return newError("Not a function: %s", fn.Kind())
	}
}

func extendFunctionEnv(fn *types.Function, args []types.Value) *types.Environment {
	env := types.NewEnclosedEnvironment(fn.Env)
	for i, param := range fn.Parameters {
		if i < len(args) {
			env.Set(param.Value, args[i])
		} else {
			env.Set(param.Value, &types.Null{})
		}
	}
	return env
}

func unwrapReturnValue(v types.Value) types.Value {
	if rv, ok := v.(*types.ReturnValue); ok {
		return rv.Value
	}
	return v
}

func newError(format string, args ...any) *types.Error {
	return &types.Error{Message: fmt.Sprintf(format, args...)}
}
