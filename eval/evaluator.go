/*
File   : monkeymix/eval/evaluator.go
Package: eval

Eval walks the AST with a single type switch (spec §4.3, design note §9)
rather than the teacher's Visitor/Accept pattern: literals and function
literals are built inline, and every other ast.Node case dispatches to a
dedicated evalXxx helper in statements.go or expressions.go. Two error channels stay distinct throughout: a returned
*object.Error is an in-band runtime value that every caller up the tree
must check for and propagate immediately; it is unrelated to the
parser's []string diagnostics, which never reach this package.
*/
package eval

import (
	"github.com/akashmaji946/monkeymix/ast"
	"github.com/akashmaji946/monkeymix/object"
)

// Eval evaluates node in env and returns the resulting object. It returns
// nil only for an empty Program or an empty block; an unrecognized node
// type is a defect in this switch, reported as an "unknown node type" error.
func Eval(node ast.Node, env *object.Environment) object.Object {
	switch node := node.(type) {

	// Statements
	case *ast.Program:
		return evalProgram(node, env)
	case *ast.ExpressionStatement:
		return Eval(node.Expression, env)
	case *ast.BlockStatement:
		return evalBlockStatement(node, env)
	case *ast.ReturnStatement:
		return evalReturnStatement(node, env)
	case *ast.LetStatement:
		return evalLetStatement(node, env)

	// Expressions
	case *ast.IntegerLiteral:
		return &object.Integer{Value: node.Value}
	case *ast.StringLiteral:
		return &object.String{Value: node.Value}
	case *ast.BooleanLiteral:
		return object.NativeBool(node.Value)
	case *ast.PrefixExpression:
		return evalPrefixExpression(node, env)
	case *ast.InfixExpression:
		return evalInfixExpression(node, env)
	case *ast.IfExpression:
		return evalIfExpression(node, env)
	case *ast.Identifier:
		return evalIdentifier(node, env)
	case *ast.FunctionLiteral:
		return &object.Function{Parameters: node.Parameters, Body: node.Body, Env: env}
	case *ast.CallExpression:
		return evalCallExpression(node, env)
	case *ast.ArrayLiteral:
		return evalArrayLiteral(node, env)
	case *ast.IndexExpression:
		return evalIndexExpression(node, env)
	}

	return newError("unknown node type: %T", node)
}
