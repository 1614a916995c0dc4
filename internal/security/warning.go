package security

import (
	"fmt"

	"sentra/internal/ast"
)

// Diagnostic codes for the security analyzer.
// These codes are a stable external contract: CI gates, editor integrations
// and suppression comments key off them, so existing codes never change when
// new warning kinds are added.
//
// SEC-003 is shared by PotentialOverflow and UncheckedArithmetic. The split
// into two kinds predates the code assignment and downstream suppression
// rules already match on the shared code, so it stays shared.
const (
	// SEC-002: state modification after a potential external call
	CodeReentrancy = "SEC-002"

	// SEC-003: unchecked or overflow-prone arithmetic
	CodeArithmetic = "SEC-003"

	// SEC-004: storage field not initialized by the constructor
	CodeUninitialized = "SEC-004"
)

// WarningKind identifies one of the closed set of vulnerability patterns the
// analyzer detects.
type WarningKind int

const (
	PotentialOverflow WarningKind = iota
	UninitializedVariable
	UncheckedArithmetic
	PotentialReentrancy
)

func (k WarningKind) String() string {
	switch k {
	case PotentialOverflow:
		return "PotentialOverflow"
	case UninitializedVariable:
		return "UninitializedVariable"
	case UncheckedArithmetic:
		return "UncheckedArithmetic"
	case PotentialReentrancy:
		return "PotentialReentrancy"
	default:
		return "Unknown"
	}
}

// SecurityWarning is a single advisory finding. Warnings are pure data: the
// analyzer appends them during traversal and never retracts or merges them.
type SecurityWarning struct {
	Kind      WarningKind
	Operation string // operator name for arithmetic warnings, e.g. "Add"
	Name      string // field name for uninitialized-storage warnings
	Detail    string // free-form detail for reentrancy warnings
	Position  ast.Position
	EndPos    ast.Position
}

// Code returns the stable diagnostic code for this warning.
func (w SecurityWarning) Code() string {
	switch w.Kind {
	case PotentialReentrancy:
		return CodeReentrancy
	case PotentialOverflow, UncheckedArithmetic:
		return CodeArithmetic
	case UninitializedVariable:
		return CodeUninitialized
	default:
		return ""
	}
}

// Message renders the one-line human-readable message, code included.
func (w SecurityWarning) Message() string {
	switch w.Kind {
	case PotentialOverflow:
		return fmt.Sprintf("%s: potential integer overflow in '%s' operation", w.Code(), w.Operation)
	case UninitializedVariable:
		return fmt.Sprintf("%s: storage field '%s' is never initialized in the constructor", w.Code(), w.Name)
	case UncheckedArithmetic:
		return fmt.Sprintf("%s: unchecked '%s' arithmetic may overflow", w.Code(), w.Operation)
	case PotentialReentrancy:
		return fmt.Sprintf("%s: %s", w.Code(), w.Detail)
	default:
		return fmt.Sprintf("unknown warning kind %d", w.Kind)
	}
}

func (w SecurityWarning) String() string {
	return w.Message()
}

// DescribeCode returns a human-readable description of a diagnostic code,
// for tooling that groups or documents findings by code.
func DescribeCode(code string) string {
	switch code {
	case CodeReentrancy:
		return "Contract state is modified after control may have passed to external code"
	case CodeArithmetic:
		return "Arithmetic operation is not overflow-checked"
	case CodeUninitialized:
		return "Storage field is not initialized by the constructor"
	default:
		return "Unknown diagnostic code"
	}
}
