/*
File   : monkeymix/eval/helpers.go
Package: eval

Small shared predicates and constructors grounded on the teacher's
eval_helpers.go / evaluator_helpers.go split: IsError/IsTruthy style
guards and the newError constructor used throughout statements.go and
expressions.go.
*/
package eval

import (
	"fmt"

	"github.com/akashmaji946/monkeymix/object"
)

func newError(format string, a ...interface{}) *object.Error {
	return &object.Error{Message: fmt.Sprintf(format, a...)}
}

// isError reports whether obj is a runtime error. A nil obj is never an
// error; callers that might see nil should check that separately.
func isError(obj object.Object) bool {
	if obj == nil {
		return false
	}
	return obj.Type() == object.ERROR_OBJ
}

// isTruthy implements the spec's truthiness rule (§4.3): only FALSE and
// NULL are falsy, every other value (including 0 and "") is truthy.
func isTruthy(obj object.Object) bool {
	switch obj {
	case object.NULL:
		return false
	case object.TRUE:
		return true
	case object.FALSE:
		return false
	default:
		return true
	}
}

// unwrapReturnValue strips a single layer of ReturnValue wrapping, done
// exactly once at the boundary where a function call or program finishes
// evaluating, so a return inside nested blocks does not keep unwrapping.
func unwrapReturnValue(obj object.Object) object.Object {
	if returnValue, ok := obj.(*object.ReturnValue); ok {
		return returnValue.Value
	}
	return obj
}
