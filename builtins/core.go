package builtins

import (
	"fmt"
	"os"

	"lumen/types"
)

func newError(format string, args ...any) *types.Error {
	return &types.Error{Message: fmt.Sprintf(format, args...)}
}

func wrongArgCount(got, want int) *types.Error {
	return newError("wrong number of arguments. got=%d, want=%d", got, want)
}

func builtinLen(args []types.Value) types.Value {
	if len(args) != 1 {
		return wrongArgCount(len(args), 1)
	}
	switch arg := args[0].(type) {
	case *types.String:
		return &types.Integer{Value: int64(len(arg.Value))}
	case *types.Array:
		return &types.Integer{Value: int64(len(arg.Elements))}
	default:
		return newError("argument to `len` not supported, got %s", arg.Kind())
	}
}

func builtinFirst(args []types.Value) types.Value {
	if len(args) != 1 {
		return wrongArgCount(len(args), 1)
	}
	arr, ok := args[0].(*types.Array)
	if !ok {
		return newError("argument to `first` must be ARRAY, got %s", args[0].Kind())
	}
	if len(arr.Elements) == 0 {
		return &types.Null{}
	}
	return arr.Elements[0]
}

func builtinLast(args []types.Value) types.Value {
	if len(args) != 1 {
		return wrongArgCount(len(args), 1)
	}
	arr, ok := args[0].(*types.Array)
	if !ok {
		return newError("argument to `last` must be ARRAY, got %s", args[0].Kind())
	}
	if len(arr.Elements) == 0 {
		return &types.Null{}
	}
	return arr.Elements[len(arr.Elements)-1]
}

func builtinRest(args []types.Value) types.Value {
	if len(args) != 1 {
		return wrongArgCount(len(args), 1)
	}
	arr, ok := args[0].(*types.Array)
	if !ok {
		return newError("argument to `rest` must be ARRAY, got %s", args[0].Kind())
	}
	if len(arr.Elements) == 0 {
		return &types.Null{}
	}
	rest := make([]types.Value, len(arr.Elements)-1)
	copy(rest, arr.Elements[1:])
	return &types.Array{Elements: rest}
}

func builtinPush(args []types.Value) types.Value {
	if len(args) != 2 {
		return wrongArgCount(len(args), 2)
	}
	arr, ok := args[0].(*types.Array)
	if !ok {
		return newError("argument to `push` must be ARRAY, got %s", args[0].Kind())
	}
	newElements := make([]types.Value, len(arr.Elements)+1)
	copy(newElements, arr.Elements)
	newElements[len(arr.Elements)] = args[1]
	return &types.Array{Elements: newElements}
}

func builtinPuts(args []types.Value) types.Value {
	for _, arg := range args {
		fmt.Fprintln(os.Stdout, arg.String())
	}
	return &types.Null{}
}

func builtinType(args []types.Value) types.Value {
	if len(args) != 1 {
		return wrongArgCount(len(args), 1)
	}
	return &types.String{Value: string(args[0].Kind())}
}
