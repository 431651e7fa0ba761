/*
File   : monkeymix/eval/statements.go
Package: eval

Program and block/let/return statement evaluation (spec §4.3). A Program
unwraps a ReturnValue at the top level exactly once; a BlockStatement
does not unwrap, so a nested return value keeps propagating, wrapped,
all the way up to the enclosing function call or program.
*/
package eval

import (
	"github.com/akashmaji946/monkeymix/ast"
	"github.com/akashmaji946/monkeymix/object"
)

func evalProgram(program *ast.Program, env *object.Environment) object.Object {
	var result object.Object

	for _, stmt := range program.Statements {
		result = Eval(stmt, env)

		switch result := result.(type) {
		case *object.ReturnValue:
			return result.Value
		case *object.Error:
			return result
		}
	}

	return result
}

func evalBlockStatement(block *ast.BlockStatement, env *object.Environment) object.Object {
	var result object.Object

	for _, stmt := range block.Statements {
		result = Eval(stmt, env)

		if result != nil {
			rt := result.Type()
			if rt == object.RETURN_VALUE_OBJ || rt == object.ERROR_OBJ {
				return result
			}
		}
	}

	return result
}

func evalReturnStatement(stmt *ast.ReturnStatement, env *object.Environment) object.Object {
	val := Eval(stmt.ReturnValue, env)
	if isError(val) {
		return val
	}
	return &object.ReturnValue{Value: val}
}

// evalLetStatement always binds in the innermost environment (see
// object.Environment.Set), so `let` inside a block or function body can
// never reach out and mutate an outer binding.
func evalLetStatement(stmt *ast.LetStatement, env *object.Environment) object.Object {
	val := Eval(stmt.Value, env)
	if isError(val) {
		return val
	}
	env.Set(stmt.Name.Value, val)
	return val
}
