package security

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sentra/internal/ast"
)

func analyzeFn(fn *ast.Function) []SecurityWarning {
	analyzer := NewAnalyzer()
	analyzer.AnalyzeProgram(program(fn))
	return analyzer.Warnings()
}

func TestUncheckedArithmetic(t *testing.T) {
	cases := []struct {
		name      string
		op        ast.BinaryOp
		operation string
	}{
		{"addition", ast.ADD, "Add"},
		{"subtraction", ast.SUB, "Sub"},
		{"multiplication", ast.MUL, "Mul"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			warnings := analyzeFn(function("compute",
				exprStmt(binary(tc.op, identExpr("x"), identExpr("y"))),
			))

			require.Len(t, warnings, 1)
			assert.Equal(t, UncheckedArithmetic, warnings[0].Kind)
			assert.Equal(t, tc.operation, warnings[0].Operation)
			assert.Equal(t, CodeArithmetic, warnings[0].Code())
		})
	}
}

func TestNonArithmeticOperatorsNotFlagged(t *testing.T) {
	for _, op := range []ast.BinaryOp{ast.DIV, ast.MOD, ast.EQ, ast.LT, ast.AND} {
		warnings := analyzeFn(function("compute",
			exprStmt(binary(op, identExpr("x"), identExpr("y"))),
		))
		assert.Empty(t, warnings, "operator %s should not be flagged", op.Name())
	}
}

func TestSafeContextPrefixesSuppressArithmetic(t *testing.T) {
	for _, fnName := range []string{"checked_add", "safe_mul", "checked_", "safe_transfer"} {
		warnings := analyzeFn(function(fnName,
			exprStmt(binary(ast.ADD, identExpr("x"), identExpr("y"))),
		))
		assert.Empty(t, warnings, "function %q should suppress arithmetic warnings", fnName)
	}
}

func TestSafeContextPrefixMustBeExact(t *testing.T) {
	// The suppression is a literal prefix check, nothing smarter.
	for _, fnName := range []string{"Checked_add", "unsafe_add", "is_safe", "mychecked_add"} {
		warnings := analyzeFn(function(fnName,
			exprStmt(binary(ast.ADD, identExpr("x"), identExpr("y"))),
		))
		assert.Len(t, warnings, 1, "function %q should not suppress arithmetic warnings", fnName)
	}
}

func TestNestedArithmeticFlagsEveryOperator(t *testing.T) {
	// (a + b) * c: the outer Mul is checked before recursing into Add.
	warnings := analyzeFn(function("compute",
		exprStmt(binary(ast.MUL,
			binary(ast.ADD, identExpr("a"), identExpr("b")),
			identExpr("c"),
		)),
	))

	require.Len(t, warnings, 2)
	assert.Equal(t, "Mul", warnings[0].Operation)
	assert.Equal(t, "Add", warnings[1].Operation)
}

func TestReentrancyCallThenAssign(t *testing.T) {
	warnings := analyzeFn(function("withdraw",
		externalCall("other", "call"),
		exprStmt(assign(selfField("balance"), lit("1"))),
	))

	require.Len(t, warnings, 1)
	assert.Equal(t, PotentialReentrancy, warnings[0].Kind)
	assert.Equal(t, CodeReentrancy, warnings[0].Code())
}

func TestReentrancyAssignThenCall(t *testing.T) {
	// Order matters: state written before the external call is fine.
	warnings := analyzeFn(function("withdraw",
		exprStmt(assign(selfField("balance"), lit("1"))),
		externalCall("other", "call"),
	))

	assert.Empty(t, warnings)
}

func TestCallOnReceiverDoesNotSetFlag(t *testing.T) {
	warnings := analyzeFn(function("withdraw",
		externalCall(Receiver, "helper"),
		exprStmt(assign(selfField("balance"), lit("1"))),
	))

	assert.Empty(t, warnings)
}

func TestPlainCallDoesNotSetFlag(t *testing.T) {
	// A bare function call is not a field-accessed call and never trips the
	// external-call heuristic.
	warnings := analyzeFn(function("withdraw",
		exprStmt(call(identExpr("helper"))),
		exprStmt(assign(selfField("balance"), lit("1"))),
	))

	assert.Empty(t, warnings)
}

func TestAssignmentToNonReceiverAfterCallNotFlagged(t *testing.T) {
	warnings := analyzeFn(function("withdraw",
		externalCall("other", "call"),
		exprStmt(assign(fieldOf(identExpr("local"), "balance"), lit("1"))),
	))

	assert.Empty(t, warnings)
}

func TestReentrancyFlagIsFunctionScoped(t *testing.T) {
	analyzer := NewAnalyzer()
	analyzer.AnalyzeProgram(program(
		function("poke", externalCall("other", "call")),
		function("settle", exprStmt(assign(selfField("balance"), lit("1")))),
	))

	assert.Empty(t, analyzer.Warnings())
}

func TestReentrancyFlagIsMonotonicWithinFunction(t *testing.T) {
	// Every receiver-state assignment after the first external call fires,
	// no matter how many statements separate them.
	warnings := analyzeFn(function("withdraw",
		externalCall("other", "call"),
		exprStmt(assign(selfField("balance"), lit("1"))),
		exprStmt(call(identExpr("log"))),
		exprStmt(assign(selfField("nonce"), lit("2"))),
	))

	assert.Equal(t, 2, countKind(warnings, PotentialReentrancy))
}

func TestCallInsideBranchPoisonsLaterCode(t *testing.T) {
	// No control-flow joins: a call inside one branch unconditionally
	// poisons checks in sibling and later code.
	warnings := analyzeFn(function("withdraw",
		&ast.IfStmt{
			Cond: identExpr("cond"),
			Then: block(externalCall("other", "call")),
		},
		exprStmt(assign(selfField("balance"), lit("1"))),
	))

	assert.Equal(t, 1, countKind(warnings, PotentialReentrancy))
}

func TestReentrancyAndArithmeticBothFire(t *testing.T) {
	// self.balance = self.balance + amt after an external call trips both
	// checks on the same assignment expression.
	warnings := analyzeFn(function("withdraw",
		externalCall("token", "transfer"),
		exprStmt(assign(selfField("balance"),
			binary(ast.ADD, selfField("balance"), identExpr("amt")))),
	))

	assert.Equal(t, 1, countKind(warnings, PotentialReentrancy))
	assert.Equal(t, 1, countKind(warnings, UncheckedArithmetic))
	require.Len(t, warnings, 2)
}

func TestExternalCallDetectedInsideCallArguments(t *testing.T) {
	// log(other.call()) still sets the flag: the visitor recurses into
	// arguments after examining the callee.
	warnings := analyzeFn(function("withdraw",
		exprStmt(call(identExpr("log"), call(fieldOf(identExpr("other"), "call")))),
		exprStmt(assign(selfField("balance"), lit("1"))),
	))

	assert.Equal(t, 1, countKind(warnings, PotentialReentrancy))
}

func TestWhileConditionAndBodyVisited(t *testing.T) {
	warnings := analyzeFn(function("drain",
		&ast.WhileStmt{
			Cond: binary(ast.ADD, identExpr("i"), lit("1")),
			Body: block(externalCall("other", "call")),
		},
		exprStmt(assign(selfField("balance"), lit("0"))),
	))

	assert.Equal(t, 1, countKind(warnings, UncheckedArithmetic))
	assert.Equal(t, 1, countKind(warnings, PotentialReentrancy))
}

func TestForBoundsAndBodyVisited(t *testing.T) {
	warnings := analyzeFn(function("airdrop",
		&ast.ForStmt{
			Var:   name("i"),
			Start: lit("0"),
			End:   binary(ast.SUB, identExpr("n"), lit("1")),
			Body:  block(externalCall("recipient", "notify")),
		},
		exprStmt(assign(selfField("done"), lit("true"))),
	))

	assert.Equal(t, 1, countKind(warnings, UncheckedArithmetic))
	assert.Equal(t, 1, countKind(warnings, PotentialReentrancy))
}

func TestLetAndReturnExpressionsVisited(t *testing.T) {
	warnings := analyzeFn(function("compute",
		&ast.LetStmt{Name: name("x"), Init: binary(ast.ADD, identExpr("a"), identExpr("b"))},
		&ast.ReturnStmt{Value: binary(ast.MUL, identExpr("x"), lit("2"))},
	))

	assert.Equal(t, 2, countKind(warnings, UncheckedArithmetic))
}

func TestBareReturnIsNoOp(t *testing.T) {
	warnings := analyzeFn(function("noop", &ast.ReturnStmt{}))
	assert.Empty(t, warnings)
}

func TestMatchScrutineeAndArmBodiesVisited(t *testing.T) {
	warnings := analyzeFn(function("settle",
		exprStmt(&ast.MatchExpr{
			Scrutinee: binary(ast.ADD, identExpr("a"), identExpr("b")),
			Arms: []*ast.MatchArm{
				{Pattern: "Ok(v)", Body: binary(ast.MUL, identExpr("v"), lit("2"))},
				{Pattern: "Err(_)", Body: lit("0")},
			},
		}),
	))

	assert.Equal(t, 2, countKind(warnings, UncheckedArithmetic))
}

func TestMatchArmGuardsNotVisited(t *testing.T) {
	warnings := analyzeFn(function("settle",
		exprStmt(&ast.MatchExpr{
			Scrutinee: identExpr("result"),
			Arms: []*ast.MatchArm{
				{
					Pattern: "Ok(v)",
					Guard:   binary(ast.ADD, identExpr("v"), lit("1")),
					Body:    lit("0"),
				},
			},
		}),
	))

	assert.Empty(t, warnings)
}

func TestStructInitFieldValuesVisited(t *testing.T) {
	warnings := analyzeFn(function("mint",
		exprStmt(&ast.StructInitExpr{
			Name: name("Receipt"),
			Fields: []*ast.FieldInit{
				{Name: name("total"), Value: binary(ast.ADD, identExpr("a"), identExpr("b"))},
			},
		}),
	))

	assert.Equal(t, 1, countKind(warnings, UncheckedArithmetic))
}

func TestTryWrapsTransparently(t *testing.T) {
	warnings := analyzeFn(function("withdraw",
		exprStmt(&ast.TryExpr{Value: call(fieldOf(identExpr("token"), "transfer"))}),
		exprStmt(assign(selfField("balance"), lit("0"))),
	))

	assert.Equal(t, 1, countKind(warnings, PotentialReentrancy))
}

func TestGenericInstWrapsTransparently(t *testing.T) {
	warnings := analyzeFn(function("decode_all",
		exprStmt(&ast.GenericInstExpr{
			Target:   binary(ast.ADD, identExpr("a"), identExpr("b")),
			TypeArgs: []*ast.TypeRef{{Name: name("U256")}},
		}),
	))

	assert.Equal(t, 1, countKind(warnings, UncheckedArithmetic))
}

func TestIndexExpressionsVisited(t *testing.T) {
	warnings := analyzeFn(function("lookup",
		exprStmt(&ast.IndexExpr{
			Target: identExpr("balances"),
			Index:  binary(ast.ADD, identExpr("base"), identExpr("offset")),
		}),
	))

	assert.Equal(t, 1, countKind(warnings, UncheckedArithmetic))
}

func TestUnaryOperandsAreNotVisited(t *testing.T) {
	// Unary expressions are outside the active dispatch set: the checks do
	// not recurse into them.
	warnings := analyzeFn(function("negate",
		exprStmt(&ast.UnaryExpr{Op: "-", Value: binary(ast.ADD, identExpr("a"), identExpr("b"))}),
	))

	assert.Empty(t, warnings)
}

func TestBreakAndContinueAreNoOps(t *testing.T) {
	warnings := analyzeFn(function("spin",
		&ast.WhileStmt{
			Cond: lit("true"),
			Body: block(&ast.BreakStmt{}, &ast.ContinueStmt{}),
		},
	))

	assert.Empty(t, warnings)
}

func TestNilFunctionBodyIsNoOp(t *testing.T) {
	analyzer := NewAnalyzer()
	analyzer.AnalyzeProgram(program(&ast.Function{Name: name("declared_only")}))

	assert.Empty(t, analyzer.Warnings())
}
