/*
File   : monkeymix/object/builtins.go
Package: object

The built-in registry (spec §4.4): a name-to-native-function table
consulted when an Identifier lookup misses the user environment. Builtins
receive the already-evaluated argument list and return an Object,
including Error on misuse.

`len` is the only builtin spec.md requires; `first`, `last`, `rest` and
`push` are supplemented from the language's canonical built-in set (see
SPEC_FULL.md §4.7) and follow the same arity/type-error message shapes —
`"wrong number of arguments. got = %d, want = %d"` and
`"argument to '%s' not supported, got %s"` — so the error-format
invariant in spec §7 stays bit-exact for `len`.
*/
package object

import "fmt"

// Builtins is the name-to-callable table the evaluator consults on an
// identifier-lookup miss, grounded on the teacher's commonMethods/init
// registration pattern in objects/builtins.go.
var Builtins = map[string]*Builtin{
	"len":   {Fn: builtinLen},
	"first": {Fn: builtinFirst},
	"last":  {Fn: builtinLast},
	"rest":  {Fn: builtinRest},
	"push":  {Fn: builtinPush},
}

func newError(format string, a ...interface{}) *Error {
	return &Error{Message: fmt.Sprintf(format, a...)}
}

func builtinLen(args ...Object) Object {
	if len(args) != 1 {
		return newError("wrong number of arguments. got = %d, want = 1", len(args))
	}
	switch arg := args[0].(type) {
	case *String:
		return &Integer{Value: int64(len(arg.Value))}
	case *Array:
		return &Integer{Value: int64(len(arg.Elements))}
	default:
		return newError("argument to 'len' not supported, got %s", args[0].Type())
	}
}

func builtinFirst(args ...Object) Object {
	if len(args) != 1 {
		return newError("wrong number of arguments. got = %d, want = 1", len(args))
	}
	arr, ok := args[0].(*Array)
	if !ok {
		return newError("argument to 'first' not supported, got %s", args[0].Type())
	}
	if len(arr.Elements) == 0 {
		return NULL
	}
	return arr.Elements[0]
}

func builtinLast(args ...Object) Object {
	if len(args) != 1 {
		return newError("wrong number of arguments. got = %d, want = 1", len(args))
	}
	arr, ok := args[0].(*Array)
	if !ok {
		return newError("argument to 'last' not supported, got %s", args[0].Type())
	}
	length := len(arr.Elements)
	if length == 0 {
		return NULL
	}
	return arr.Elements[length-1]
}

func builtinRest(args ...Object) Object {
	if len(args) != 1 {
		return newError("wrong number of arguments. got = %d, want = 1", len(args))
	}
	arr, ok := args[0].(*Array)
	if !ok {
		return newError("argument to 'rest' not supported, got %s", args[0].Type())
	}
	length := len(arr.Elements)
	if length == 0 {
		return NULL
	}
	newElements := make([]Object, length-1)
	copy(newElements, arr.Elements[1:length])
	return &Array{Elements: newElements}
}

func builtinPush(args ...Object) Object {
	if len(args) != 2 {
		return newError("wrong number of arguments. got = %d, want = 2", len(args))
	}
	arr, ok := args[0].(*Array)
	if !ok {
		return newError("argument to 'push' not supported, got %s", args[0].Type())
	}
	length := len(arr.Elements)
	newElements := make([]Object, length+1)
	copy(newElements, arr.Elements)
	newElements[length] = args[1]
	return &Array{Elements: newElements}
}
