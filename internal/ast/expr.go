package ast

type Expr interface {
	Node
	isExpr()
}

func (*BinaryExpr) isExpr() {}

func (*UnaryExpr) isExpr() {}

func (*CallExpr) isExpr() {}

func (*FieldAccessExpr) isExpr() {}

func (*IndexExpr) isExpr() {}

func (*MatchExpr) isExpr() {}

func (*StructInitExpr) isExpr() {}

func (*TryExpr) isExpr() {}

func (*GenericInstExpr) isExpr() {}

func (*IdentExpr) isExpr() {}

func (*LiteralExpr) isExpr() {}
