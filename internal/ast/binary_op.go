package ast

type BinaryOp int

const (
	// Special / error
	ILLEGAL_OP BinaryOp = iota
	ASSIGN
	ADD
	SUB
	MUL
	DIV
	MOD
	EQ
	NE
	LT
	LE
	GT
	GE
	AND
	OR
)

var binaryOpSymbols = map[BinaryOp]string{
	ASSIGN: "=",
	ADD:    "+",
	SUB:    "-",
	MUL:    "*",
	DIV:    "/",
	MOD:    "%",
	EQ:     "==",
	NE:     "!=",
	LT:     "<",
	LE:     "<=",
	GT:     ">",
	GE:     ">=",
	AND:    "&&",
	OR:     "||",
}

var binaryOpNames = map[BinaryOp]string{
	ASSIGN: "Assign",
	ADD:    "Add",
	SUB:    "Sub",
	MUL:    "Mul",
	DIV:    "Div",
	MOD:    "Mod",
	EQ:     "Eq",
	NE:     "Ne",
	LT:     "Lt",
	LE:     "Le",
	GT:     "Gt",
	GE:     "Ge",
	AND:    "And",
	OR:     "Or",
}

// String returns the source-level operator symbol, e.g. "+" or "=".
func (op BinaryOp) String() string {
	if s, ok := binaryOpSymbols[op]; ok {
		return s
	}
	return "<illegal>"
}

// Name returns the operator's canonical name, e.g. "Add". Warning messages
// reference operators by name rather than symbol.
func (op BinaryOp) Name() string {
	if n, ok := binaryOpNames[op]; ok {
		return n
	}
	return "Illegal"
}

// BinaryOpFromSymbol maps a source-level operator symbol to its BinaryOp.
// Unknown symbols map to ILLEGAL_OP.
func BinaryOpFromSymbol(symbol string) BinaryOp {
	for op, s := range binaryOpSymbols {
		if s == symbol {
			return op
		}
	}
	return ILLEGAL_OP
}
