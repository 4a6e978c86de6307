package truth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEvaluateSingleVariable(t *testing.T) {
	assert.Equal(t, byte('0'), Evaluate("a", "a", "0"))
	assert.Equal(t, byte('1'), Evaluate("a", "a", "1"))
}

func TestEvaluateNegation(t *testing.T) {
	assert.Equal(t, byte('1'), Evaluate("!a", "a", "0"))
	assert.Equal(t, byte('0'), Evaluate("!a", "a", "1"))
}

func TestEvaluateConjunction(t *testing.T) {
	assert.Equal(t, byte('1'), Evaluate("ab", "ab", "11"))
	assert.Equal(t, byte('0'), Evaluate("ab", "ab", "10"))
	assert.Equal(t, byte('0'), Evaluate("ab", "ab", "01"))
}

func TestEvaluateDisjunction(t *testing.T) {
	assert.Equal(t, byte('1'), Evaluate("a+b", "ab", "10"))
	assert.Equal(t, byte('1'), Evaluate("a+b", "ab", "01"))
	assert.Equal(t, byte('0'), Evaluate("a+b", "ab", "00"))
}

func TestEvaluateXNOR(t *testing.T) {
	cases := map[string]byte{
		"00": '1',
		"01": '0',
		"10": '0',
		"11": '1',
	}
	for bits, want := range cases {
		assert.Equal(t, want, Evaluate("ab+!a!b", "ab", bits), "bits %s", bits)
	}
}

func TestEvaluateUnknownVariableKillsTerm(t *testing.T) {
	// z is not among the declared variables, so the az term can never
	// match; the standalone b can.
	assert.Equal(t, byte('0'), Evaluate("az", "ab", "11"))
	assert.Equal(t, byte('1'), Evaluate("az+b", "ab", "11"))
}

func TestEvaluateSkipsEmptyTerms(t *testing.T) {
	// Split tokens for "a++b" and "+a" include empties; they are
	// skipped, not satisfied.
	assert.Equal(t, byte('0'), Evaluate("a++b", "ab", "00"))
	assert.Equal(t, byte('1'), Evaluate("a++b", "ab", "01"))
	assert.Equal(t, byte('0'), Evaluate("+a", "a", "0"))
}

func TestAssignments(t *testing.T) {
	got := Assignments(2)

	require.Equal(t, []string{"00", "01", "10", "11"}, got)
}

func TestAssignmentsCountAndWidth(t *testing.T) {
	got := Assignments(4)

	require.Len(t, got, 16)
	for _, a := range got {
		assert.Len(t, a, 4)
	}
	assert.Equal(t, "0000", got[0])
	assert.Equal(t, "1111", got[15])
}

func TestAssignmentsZeroVariables(t *testing.T) {
	got := Assignments(0)

	require.Equal(t, []string{""}, got)
}
