package eval

import (
	"lumen/parser"
	"lumen/types"
)

func (e *Evaluator) evalIndexExpression(node *parser.IndexExpression, env *types.Environment) types.Value {
	left := e.Eval(node.Left, env)
	if types.IsError(left) {
		return left
	}
	index := e.Eval(node.Index, env)
	if types.IsError(index) {
		return index
	}

	switch {
	case left.Kind() == types.ARRAY && index.Kind() == types.INTEGER:
		return evalArrayIndexExpression(left.(*types.Array), index.(*types.Integer))
	case left.Kind() == types.ARRAY:
		return newError("index is not a integer: %s", index.Kind())
	case left.Kind() == types.HASH:
		return evalHashIndexExpression(left.(*types.Hash), index)
	default:
		return newError("index operator not supported: %s", left.Kind())
	}
}

// evalArrayIndexExpression returns Null for an index outside the
// array's bounds (in either direction) rather than an error, per the
// language's out-of-range read rule.
func evalArrayIndexExpression(arr *types.Array, index *types.Integer) types.Value {
	idx := index.Value
	max := int64(len(arr.Elements) - 1)
	if idx < 0 || idx > max {
		return &types.Null{}
	}
	return arr.Elements[idx]
}

// evalHashIndexExpression returns Null on a missing key and an error
// if the index value isn't key-eligible (Integer, Boolean, or String).
func evalHashIndexExpression(hash *types.Hash, index types.Value) types.Value {
	if _, ok := index.(types.Hashable); !ok {
		return newError("only string, integer and boolean can be hash key, found %s", index.Kind())
	}
	value, ok := hash.Get(index)
	if !ok {
		return &types.Null{}
	}
	return value
}

func (e *Evaluator) evalHashLiteral(node *parser.HashLiteral, env *types.Environment) types.Value {
	hash := types.NewHash()

	for _, pair := range node.Pairs {
		key := e.Eval(pair.Key, env)
		if types.IsError(key) {
			return key
		}

		if _, ok := key.(types.Hashable); !ok {
			return newError("only string, integer and boolean can be hash key, found %s", key.Kind())
		}

		value := e.Eval(pair.Value, env)
		if types.IsError(value) {
			return value
		}

		hash.Set(key, value)
	}

	return hash
}
