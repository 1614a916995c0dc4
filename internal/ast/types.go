package ast

type NodeType int

const (
	// Special / error
	ILLEGAL NodeType = iota

	// High-level constructs
	PROGRAM
	CONTRACT
	IDENT

	// Contract members
	STORAGE
	STORAGE_FIELD
	INIT

	// Items
	USE
	STRUCT
	STRUCT_FIELD

	// Functions
	FUNCTION
	PARAM
	TYPE_REF

	// Statements
	BLOCK
	LET_STMT
	EXPR_STMT
	RETURN_STMT
	IF_STMT
	WHILE_STMT
	FOR_STMT
	BREAK_STMT
	CONTINUE_STMT

	// Expressions
	BINARY_EXPR
	UNARY_EXPR
	CALL_EXPR
	FIELD_ACCESS_EXPR
	INDEX_EXPR
	MATCH_EXPR
	MATCH_ARM
	STRUCT_INIT_EXPR
	FIELD_INIT
	TRY_EXPR
	GENERIC_INST_EXPR
	IDENT_EXPR
	LITERAL_EXPR
)
