package ast

type Statement interface {
	Node
	isStatement()
}

func (*LetStmt) isStatement()      {}
func (*ExprStmt) isStatement()     {}
func (*ReturnStmt) isStatement()   {}
func (*IfStmt) isStatement()       {}
func (*WhileStmt) isStatement()    {}
func (*ForStmt) isStatement()      {}
func (*BreakStmt) isStatement()    {}
func (*ContinueStmt) isStatement() {}
