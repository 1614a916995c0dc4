package security

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWarningCodesAreStable(t *testing.T) {
	assert.Equal(t, "SEC-002", SecurityWarning{Kind: PotentialReentrancy}.Code())
	assert.Equal(t, "SEC-003", SecurityWarning{Kind: UncheckedArithmetic}.Code())
	assert.Equal(t, "SEC-004", SecurityWarning{Kind: UninitializedVariable}.Code())
}

func TestOverflowAndArithmeticShareACode(t *testing.T) {
	// SEC-003 is shared: downstream suppression rules match on the code, so
	// the two kinds must keep rendering to the same one.
	overflow := SecurityWarning{Kind: PotentialOverflow, Operation: "Add"}
	unchecked := SecurityWarning{Kind: UncheckedArithmetic, Operation: "Add"}

	assert.Equal(t, overflow.Code(), unchecked.Code())
	assert.Equal(t, CodeArithmetic, overflow.Code())
}

func TestMessagesEmbedTheCode(t *testing.T) {
	cases := []SecurityWarning{
		{Kind: PotentialOverflow, Operation: "Mul"},
		{Kind: UninitializedVariable, Name: "balance"},
		{Kind: UncheckedArithmetic, Operation: "Add"},
		{Kind: PotentialReentrancy, Detail: "state modification after potential external call"},
	}

	for _, w := range cases {
		assert.Contains(t, w.Message(), w.Code(), "message for %s must embed its code", w.Kind)
	}
}

func TestMessagePayloads(t *testing.T) {
	assert.Equal(t,
		"SEC-004: storage field 'balance' is never initialized in the constructor",
		SecurityWarning{Kind: UninitializedVariable, Name: "balance"}.Message())

	assert.Equal(t,
		"SEC-003: unchecked 'Add' arithmetic may overflow",
		SecurityWarning{Kind: UncheckedArithmetic, Operation: "Add"}.Message())

	assert.Equal(t,
		"SEC-002: state modification after potential external call",
		SecurityWarning{
			Kind:   PotentialReentrancy,
			Detail: "state modification after potential external call",
		}.Message())
}

func TestWarningStringMatchesMessage(t *testing.T) {
	w := SecurityWarning{Kind: UncheckedArithmetic, Operation: "Sub"}
	assert.Equal(t, w.Message(), w.String())
}

func TestKindNames(t *testing.T) {
	assert.Equal(t, "PotentialOverflow", PotentialOverflow.String())
	assert.Equal(t, "UninitializedVariable", UninitializedVariable.String())
	assert.Equal(t, "UncheckedArithmetic", UncheckedArithmetic.String())
	assert.Equal(t, "PotentialReentrancy", PotentialReentrancy.String())
	assert.Equal(t, "Unknown", WarningKind(99).String())
}

func TestDescribeCode(t *testing.T) {
	assert.Contains(t, DescribeCode(CodeReentrancy), "external code")
	assert.Contains(t, DescribeCode(CodeArithmetic), "overflow")
	assert.Contains(t, DescribeCode(CodeUninitialized), "constructor")
	assert.Equal(t, "Unknown diagnostic code", DescribeCode("SEC-999"))
}
