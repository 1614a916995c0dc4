package ast

// Program is the root of a frontend AST dump: the ordered top-level items of
// one source unit. The analyzer borrows the tree read-only; it is constructed
// and owned entirely by the frontend.
type Program struct {
	Pos    Position
	EndPos Position
	Items  []Item
}

// Position tracks location information for attaching warnings and tooling
type Position struct {
	Filename string
	Offset   int
	Line     int
	Column   int
}

// Ident represents any identifier like contract names, field names, etc.
// Example: "Vault", "balance", "deposit"
type Ident struct {
	Pos    Position
	EndPos Position
	Value  string
}

// Contract represents a contract declaration
// Example: "contract Vault { storage { balance: U256 } init() { ... } fn withdraw(amount: U256) { ... } }"
type Contract struct {
	Pos     Position
	EndPos  Position
	Name    Ident
	Members []ContractMember
}

// Storage represents a storage declaration group inside a contract
// Example: "storage { balance: U256, owner: Address }"
type Storage struct {
	Pos    Position
	EndPos Position
	Fields []*StorageField
}

// StorageField represents a single named, typed storage slot.
// Only the name is consulted by the analyzer; the type rides along for tooling.
// Example: "balance: U256"
type StorageField struct {
	Pos    Position
	EndPos Position
	Name   Ident
	Type   *TypeRef
}

// Init represents the contract constructor
// Example: "init(owner: Address) { self.owner = owner; self.balance = 0; }"
type Init struct {
	Pos    Position
	EndPos Position
	Name   Ident
	Params []*Param
	Body   *Block
}

// Function represents function declarations, both free functions and
// contract methods
// Example: "fn withdraw(amount: U256) { ... }", "fn checked_add(a: U256, b: U256) -> U256 { ... }"
type Function struct {
	Pos    Position
	EndPos Position
	Name   Ident
	Params []*Param
	Return *TypeRef
	Body   *Block
}

// Param represents function parameters
// Example: "amount: U256", "to: Address"
type Param struct {
	Pos    Position
	EndPos Position
	Name   Ident
	Type   *TypeRef
}

// TypeRef represents type specifications
// Example: "U256", "Address", "Map<Address, U256>"
type TypeRef struct {
	Pos      Position
	EndPos   Position
	Name     Ident
	Generics []*TypeRef
}

// Use represents import statements; the analyzer skips them
// Example: "use std::token;"
type Use struct {
	Pos    Position
	EndPos Position
	Path   []Ident
}

// Struct represents plain struct declarations outside contract storage;
// the analyzer skips them
// Example: "struct Receipt { id: U256, payee: Address }"
type Struct struct {
	Pos    Position
	EndPos Position
	Name   Ident
	Fields []*StructField
}

// StructField represents individual fields within a struct declaration
// Example: "id: U256"
type StructField struct {
	Pos    Position
	EndPos Position
	Name   Ident
	Type   *TypeRef
}

// Block represents a braced statement list
// Example: "{ let fee = amount * rate; self.balance = self.balance - fee; }"
type Block struct {
	Pos    Position
	EndPos Position
	Stmts  []Statement
}

// LetStmt represents variable declarations
// Example: "let fee = amount * rate;", "let mut total = 0;"
type LetStmt struct {
	Pos    Position
	EndPos Position
	Mut    bool // true for "let mut"
	Name   Ident
	Init   Expr
}

// ExprStmt represents expression statements
// Example: "self.balance = 0;", "token.transfer(to, amount);"
type ExprStmt struct {
	Pos    Position
	EndPos Position
	Expr   Expr
}

// ReturnStmt represents return statements
// Example: "return balance;", "return;"
type ReturnStmt struct {
	Pos    Position
	EndPos Position
	Value  Expr // nil for plain `return;`
}

// IfStmt represents conditional statements
// Example: "if amount > 0 { ... } else { ... }"
type IfStmt struct {
	Pos    Position
	EndPos Position
	Cond   Expr
	Then   *Block
	Else   *Block // nil when no else branch
}

// WhileStmt represents while loops
// Example: "while i < n { ... }"
type WhileStmt struct {
	Pos    Position
	EndPos Position
	Cond   Expr
	Body   *Block
}

// ForStmt represents bounded range loops
// Example: "for i in 0..n { ... }"
type ForStmt struct {
	Pos    Position
	EndPos Position
	Var    Ident
	Start  Expr
	End    Expr
	Body   *Block
}

// BreakStmt represents loop break statements
type BreakStmt struct {
	Pos    Position
	EndPos Position
}

// ContinueStmt represents loop continue statements
type ContinueStmt struct {
	Pos    Position
	EndPos Position
}

// BinaryExpr represents binary operations, assignment included
// Example: "amount + fee", "self.balance = 0"
type BinaryExpr struct {
	Pos    Position
	EndPos Position
	Op     BinaryOp
	Left   Expr
	Right  Expr
}

// UnaryExpr represents unary operations
// Example: "-amount", "!paused"
type UnaryExpr struct {
	Pos    Position
	EndPos Position
	Op     string
	Value  Expr
}

// CallExpr represents function and method calls
// Example: "transfer(to, amount)", "token.balance_of(owner)"
type CallExpr struct {
	Pos    Position
	EndPos Position
	Callee Expr
	Args   []Expr
}

// FieldAccessExpr represents field access
// Example: "self.balance", "token.owner"
type FieldAccessExpr struct {
	Pos    Position
	EndPos Position
	Target Expr
	Field  string
}

// IndexExpr represents map/array indexing
// Example: "balances[owner]"
type IndexExpr struct {
	Pos    Position
	EndPos Position
	Target Expr
	Index  Expr
}

// MatchExpr represents match expressions
// Example: "match result { Ok(v) => v, Err(_) => 0 }"
type MatchExpr struct {
	Pos       Position
	EndPos    Position
	Scrutinee Expr
	Arms      []*MatchArm
}

// MatchArm represents a single pattern => body arm of a match expression
type MatchArm struct {
	Pos     Position
	EndPos  Position
	Pattern string
	Guard   Expr // nil when the arm has no guard
	Body    Expr
}

// StructInitExpr represents struct literals
// Example: "Receipt { id: next_id, payee: sender }"
type StructInitExpr struct {
	Pos    Position
	EndPos Position
	Name   Ident
	Fields []*FieldInit
}

// FieldInit represents a field initializer in a struct literal
// Example: "payee: sender"
type FieldInit struct {
	Pos    Position
	EndPos Position
	Name   Ident
	Value  Expr
}

// TryExpr represents error-propagating expressions
// Example: "token.transfer(to, amount)?"
type TryExpr struct {
	Pos    Position
	EndPos Position
	Value  Expr
}

// GenericInstExpr represents explicit generic instantiation
// Example: "decode<U256>(payload)"
type GenericInstExpr struct {
	Pos      Position
	EndPos   Position
	Target   Expr
	TypeArgs []*TypeRef
}

// IdentExpr represents simple identifiers in expression position
// Example: "amount", "self", "token"
type IdentExpr struct {
	Pos    Position
	EndPos Position
	Name   string
}

// LiteralExpr represents literal values
// Example: "100", "0x42", "true"
type LiteralExpr struct {
	Pos    Position
	EndPos Position
	Value  string
}
