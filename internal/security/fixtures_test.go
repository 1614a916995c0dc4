package security

import (
	"sentra/internal/ast"
)

// AST fixture builders. The frontend is out of scope for this repository, so
// tests construct trees directly, mirroring the shapes the frontend emits.

func pos(line, column int) ast.Position {
	return ast.Position{Filename: "test.sc", Line: line, Column: column}
}

func name(value string) ast.Ident {
	return ast.Ident{Value: value}
}

func identExpr(value string) *ast.IdentExpr {
	return &ast.IdentExpr{Name: value}
}

func lit(value string) *ast.LiteralExpr {
	return &ast.LiteralExpr{Value: value}
}

func fieldOf(target ast.Expr, field string) *ast.FieldAccessExpr {
	return &ast.FieldAccessExpr{Target: target, Field: field}
}

func selfField(field string) *ast.FieldAccessExpr {
	return fieldOf(identExpr(Receiver), field)
}

func binary(op ast.BinaryOp, left, right ast.Expr) *ast.BinaryExpr {
	return &ast.BinaryExpr{Op: op, Left: left, Right: right}
}

func assign(left, right ast.Expr) *ast.BinaryExpr {
	return binary(ast.ASSIGN, left, right)
}

func call(callee ast.Expr, args ...ast.Expr) *ast.CallExpr {
	return &ast.CallExpr{Callee: callee, Args: args}
}

func exprStmt(expr ast.Expr) *ast.ExprStmt {
	return &ast.ExprStmt{Pos: expr.NodePos(), Expr: expr}
}

func block(stmts ...ast.Statement) *ast.Block {
	return &ast.Block{Stmts: stmts}
}

func function(fnName string, stmts ...ast.Statement) *ast.Function {
	return &ast.Function{Name: name(fnName), Body: block(stmts...)}
}

func constructor(stmts ...ast.Statement) *ast.Init {
	return &ast.Init{Name: name("init"), Body: block(stmts...)}
}

func storage(fieldNames ...string) *ast.Storage {
	s := &ast.Storage{}
	for _, fieldName := range fieldNames {
		s.Fields = append(s.Fields, &ast.StorageField{
			Name: name(fieldName),
			Type: &ast.TypeRef{Name: name("U256")},
		})
	}
	return s
}

func contract(contractName string, members ...ast.ContractMember) *ast.Contract {
	return &ast.Contract{Name: name(contractName), Members: members}
}

func program(items ...ast.Item) *ast.Program {
	return &ast.Program{Items: items}
}

// selfInit builds the canonical constructor assignment `self.<field> = 0;`.
func selfInit(field string) *ast.ExprStmt {
	return exprStmt(assign(selfField(field), lit("0")))
}

// externalCall builds `<object>.<method>();`, the syntactic shape the
// analyzer treats as a potential external call.
func externalCall(object, method string) *ast.ExprStmt {
	return exprStmt(call(fieldOf(identExpr(object), method)))
}

func kindsOf(warnings []SecurityWarning) []WarningKind {
	kinds := make([]WarningKind, 0, len(warnings))
	for _, w := range warnings {
		kinds = append(kinds, w.Kind)
	}
	return kinds
}

func countKind(warnings []SecurityWarning, kind WarningKind) int {
	count := 0
	for _, w := range warnings {
		if w.Kind == kind {
			count++
		}
	}
	return count
}
