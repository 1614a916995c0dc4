package security

import (
	"strings"

	"sentra/internal/ast"
)

// Safe-context prefixes: a function whose name starts with one of these
// declares, by convention only, that its arithmetic is already guarded.
// This is the single suppression mechanism for SEC-003; nothing is inferred.
var safeContextPrefixes = []string{"checked_", "safe_"}

func isSafeContext(name string) bool {
	for _, prefix := range safeContextPrefixes {
		if strings.HasPrefix(name, prefix) {
			return true
		}
	}
	return false
}

// analyzeFunction resets the per-function scan state and walks the body.
// The reentrancy flag never crosses a function boundary.
func (a *Analyzer) analyzeFunction(fn *ast.Function) {
	a.externalCallSeen = false
	a.safeContext = isSafeContext(fn.Name.Value)
	a.analyzeBlock(fn.Body)
}

func (a *Analyzer) analyzeBlock(block *ast.Block) {
	if block == nil {
		return
	}
	for _, stmt := range block.Stmts {
		a.analyzeStatement(stmt)
	}
}

// analyzeStatement dispatches over the statement kinds that can carry
// expressions. Break and continue carry nothing the checks care about, so
// they fall through the default no-op alongside any future kinds.
func (a *Analyzer) analyzeStatement(stmt ast.Statement) {
	switch node := stmt.(type) {
	case *ast.LetStmt:
		a.analyzeExpression(node.Init)

	case *ast.ExprStmt:
		a.analyzeExpression(node.Expr)

	case *ast.ReturnStmt:
		if node.Value != nil {
			a.analyzeExpression(node.Value)
		}

	case *ast.IfStmt:
		a.analyzeExpression(node.Cond)
		a.analyzeBlock(node.Then)
		a.analyzeBlock(node.Else)

	case *ast.WhileStmt:
		a.analyzeExpression(node.Cond)
		a.analyzeBlock(node.Body)

	case *ast.ForStmt:
		a.analyzeExpression(node.Start)
		a.analyzeExpression(node.End)
		a.analyzeBlock(node.Body)
	}
}

// analyzeExpression recurses depth-first, left to right. Traversal order is
// load-bearing: the reentrancy flag set by a call is consulted by every
// later assignment in the same function, which is what makes
// "call, then assignment" detectable without a control-flow graph.
func (a *Analyzer) analyzeExpression(expr ast.Expr) {
	if expr == nil {
		return
	}

	switch node := expr.(type) {
	case *ast.BinaryExpr:
		if node.Op == ast.ASSIGN && a.externalCallSeen {
			if _, ok := receiverFieldName(node.Left); ok {
				a.warnings = append(a.warnings, SecurityWarning{
					Kind:     PotentialReentrancy,
					Detail:   "state modification after potential external call",
					Position: node.Pos,
					EndPos:   node.EndPos,
				})
			}
		}

		switch node.Op {
		case ast.ADD, ast.SUB, ast.MUL:
			if !a.safeContext {
				a.warnings = append(a.warnings, SecurityWarning{
					Kind:      UncheckedArithmetic,
					Operation: node.Op.Name(),
					Position:  node.Pos,
					EndPos:    node.EndPos,
				})
			}
		}

		a.analyzeExpression(node.Left)
		a.analyzeExpression(node.Right)

	case *ast.CallExpr:
		// A call through a field access on anything but the receiver is the
		// syntactic proxy for "control may leave this contract". The flag is
		// monotonic for the rest of the function: a call inside one branch
		// poisons every later assignment unconditionally.
		if access, ok := node.Callee.(*ast.FieldAccessExpr); ok {
			if ident, ok := access.Target.(*ast.IdentExpr); ok && ident.Name != Receiver {
				a.externalCallSeen = true
			}
		}

		a.analyzeExpression(node.Callee)
		for _, arg := range node.Args {
			a.analyzeExpression(arg)
		}

	case *ast.FieldAccessExpr:
		a.analyzeExpression(node.Target)

	case *ast.IndexExpr:
		a.analyzeExpression(node.Target)
		a.analyzeExpression(node.Index)

	case *ast.TryExpr:
		a.analyzeExpression(node.Value)

	case *ast.GenericInstExpr:
		a.analyzeExpression(node.Target)

	case *ast.MatchExpr:
		a.analyzeExpression(node.Scrutinee)
		// Arm guards are not visited
		for _, arm := range node.Arms {
			a.analyzeExpression(arm.Body)
		}

	case *ast.StructInitExpr:
		for _, field := range node.Fields {
			a.analyzeExpression(field.Value)
		}

		// Identifiers, literals and unary expressions are leaves for these
		// checks; unknown kinds stay no-ops rather than being guessed at.
	}
}
