package security

import (
	"sentra/internal/ast"
)

// Receiver is the identifier denoting the current contract instance inside
// its own methods. A call through a field access on any other identifier is
// treated as a potential external call.
const Receiver = "self"

// Analyzer performs a single syntactic pass over a frontend-supplied program
// and accumulates advisory warnings for three vulnerability patterns:
// uninitialized storage fields, unchecked arithmetic, and state mutation
// after a potential external call.
//
// It is deliberately a flow-insensitive pattern matcher, not a verifier: no
// control-flow graph, no dataflow fixpoint, no aliasing, no type information.
// It trades precision for predictability and accepts false positives.
//
// One Analyzer serves one call stack; instances are not safe for concurrent
// use because the warning accumulator and the per-function scan flags are
// unsynchronized.
type Analyzer struct {
	warnings []SecurityWarning

	// Per-function scan state, reset at every function entry.
	externalCallSeen bool
	safeContext      bool
}

// NewAnalyzer creates an analyzer with an empty warning list.
func NewAnalyzer() *Analyzer {
	return &Analyzer{
		warnings: make([]SecurityWarning, 0),
	}
}

// AnalyzeProgram walks every top-level item of the program. Contracts get
// two-phase handling (storage collection, then constructor coverage),
// free functions go straight to the statement visitor, and every other item
// kind is skipped. The program tree is borrowed read-only and never mutated.
//
// Repeated calls accumulate warnings across runs without deduplication;
// callers wanting isolation construct a fresh Analyzer per run.
func (a *Analyzer) AnalyzeProgram(program *ast.Program) {
	for _, item := range program.Items {
		switch node := item.(type) {
		case *ast.Contract:
			a.analyzeContract(node)
		case *ast.Function:
			a.analyzeFunction(node)
		}
		// Use, Struct and any future item kinds are out of scope
	}
}

// Warnings returns all warnings accumulated so far, in emission order.
// Reading never mutates state; repeated reads return the same sequence.
func (a *Analyzer) Warnings() []SecurityWarning {
	return a.warnings
}

// HasCriticalWarnings reports whether any finding should block a build.
// The warning model has no severity tiering yet, so nothing qualifies;
// the method exists so callers can gate on it once tiering lands.
func (a *Analyzer) HasCriticalWarnings() bool {
	return false
}

// analyzeContract runs the two contract phases: collect every declared
// storage field, then check the constructor covers them all. The
// uninitialized-field batch is emitted before any of the contract's
// ordinary functions are analyzed.
func (a *Analyzer) analyzeContract(contract *ast.Contract) {
	// Phase 1: union of every Storage member's fields, declaration order
	// preserved, duplicate declarations collapsed without a diagnostic.
	var declared []string
	seen := make(map[string]bool)
	for _, member := range contract.Members {
		storage, ok := member.(*ast.Storage)
		if !ok {
			continue
		}
		for _, field := range storage.Fields {
			if !seen[field.Name.Value] {
				seen[field.Name.Value] = true
				declared = append(declared, field.Name.Value)
			}
		}
	}

	// Phase 2: linear scan of the constructor's top-level statements.
	// A missing constructor is never flagged itself; it just leaves every
	// field unassigned.
	initialized := make(map[string]bool)
	anchor := contract.Pos
	for _, member := range contract.Members {
		init, ok := member.(*ast.Init)
		if !ok {
			continue
		}
		if init.Body != nil && len(init.Body.Stmts) > 0 && anchor == contract.Pos {
			anchor = init.Body.Stmts[0].NodePos()
		}
		a.collectInitializations(init.Body, initialized)
	}

	for _, name := range declared {
		if !initialized[name] {
			a.warnings = append(a.warnings, SecurityWarning{
				Kind:     UninitializedVariable,
				Name:     name,
				Position: anchor,
			})
		}
	}

	for _, member := range contract.Members {
		if fn, ok := member.(*ast.Function); ok {
			a.analyzeFunction(fn)
		}
	}
}

// collectInitializations records every field assigned as `self.<field> = ...`
// among the block's top-level statements. Nested if/while/for bodies are
// intentionally not scanned: a field initialized only inside a branch is
// still reported as uninitialized.
func (a *Analyzer) collectInitializations(block *ast.Block, initialized map[string]bool) {
	if block == nil {
		return
	}
	for _, stmt := range block.Stmts {
		exprStmt, ok := stmt.(*ast.ExprStmt)
		if !ok {
			continue
		}
		binary, ok := exprStmt.Expr.(*ast.BinaryExpr)
		if !ok || binary.Op != ast.ASSIGN {
			continue
		}
		if field, ok := receiverFieldName(binary.Left); ok {
			initialized[field] = true
		}
	}
}

// receiverFieldName matches the shape `self.<field>` and returns the field
// name when the target is exactly the receiver identifier.
func receiverFieldName(expr ast.Expr) (string, bool) {
	access, ok := expr.(*ast.FieldAccessExpr)
	if !ok {
		return "", false
	}
	ident, ok := access.Target.(*ast.IdentExpr)
	if !ok || ident.Name != Receiver {
		return "", false
	}
	return access.Field, true
}
