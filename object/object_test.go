package object

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBooleanSingletons(t *testing.T) {
	assert.Same(t, TRUE, NativeBool(true))
	assert.Same(t, FALSE, NativeBool(false))
	assert.NotSame(t, TRUE, FALSE)
}

func TestIntegerInspect(t *testing.T) {
	assert.Equal(t, "42", (&Integer{Value: 42}).Inspect())
}

func TestErrorInspect(t *testing.T) {
	err := &Error{Message: "identifier not found: foobar"}
	assert.Equal(t, "ERROR: identifier not found: foobar", err.Inspect())
}

func TestEnvironment_GetSetChained(t *testing.T) {
	outer := NewEnvironment()
	outer.Set("x", &Integer{Value: 1})

	inner := NewEnclosedEnvironment(outer)
	val, ok := inner.Get("x")
	assert.True(t, ok)
	assert.Equal(t, int64(1), val.(*Integer).Value)

	inner.Set("x", &Integer{Value: 2})
	innerVal, _ := inner.Get("x")
	outerVal, _ := outer.Get("x")
	assert.Equal(t, int64(2), innerVal.(*Integer).Value)
	assert.Equal(t, int64(1), outerVal.(*Integer).Value, "Set must not mutate the enclosing scope")
}

func TestEnvironment_GetMiss(t *testing.T) {
	env := NewEnvironment()
	_, ok := env.Get("missing")
	assert.False(t, ok)
}

func TestBuiltinLen(t *testing.T) {
	assert.Equal(t, int64(4), Builtins["len"].Fn(&String{Value: "four"}).(*Integer).Value)
	assert.Equal(t, int64(3), Builtins["len"].Fn(&Array{Elements: []Object{&Integer{}, &Integer{}, &Integer{}}}).(*Integer).Value)

	err := Builtins["len"].Fn(&Integer{Value: 1})
	assert.Equal(t, "argument to 'len' not supported, got INTEGER", err.(*Error).Message)

	err = Builtins["len"].Fn()
	assert.Equal(t, "wrong number of arguments. got = 0, want = 1", err.(*Error).Message)
}

func TestBuiltinArrayHelpers(t *testing.T) {
	arr := &Array{Elements: []Object{&Integer{Value: 1}, &Integer{Value: 2}, &Integer{Value: 3}}}

	assert.Equal(t, int64(1), Builtins["first"].Fn(arr).(*Integer).Value)
	assert.Equal(t, int64(3), Builtins["last"].Fn(arr).(*Integer).Value)

	rest := Builtins["rest"].Fn(arr).(*Array)
	assert.Len(t, rest.Elements, 2)
	assert.Equal(t, int64(2), rest.Elements[0].(*Integer).Value)

	pushed := Builtins["push"].Fn(arr, &Integer{Value: 4}).(*Array)
	assert.Len(t, pushed.Elements, 4)
	assert.Len(t, arr.Elements, 3, "push must not mutate the original array")

	empty := &Array{}
	assert.Same(t, NULL, Builtins["first"].Fn(empty))
	assert.Same(t, NULL, Builtins["last"].Fn(empty))
	assert.Same(t, NULL, Builtins["rest"].Fn(empty))
}
