package grammar

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckAcceptsWellFormedDNF(t *testing.T) {
	for _, input := range []string{
		"a",
		"!a",
		"ab+!c",
		"abc + c d + f",
	} {
		_, err := Check(input)
		assert.NoError(t, err, "input %q", input)
	}
}

func TestCheckRejectsMalformedDNF(t *testing.T) {
	for _, input := range []string{
		"",
		"+a",
		"a+",
		"a!",
		"a++b",
		"a*b",
		"A",
		"!!a",
	} {
		_, err := Check(input)
		assert.Error(t, err, "input %q", input)
	}
}

func TestCheckStructure(t *testing.T) {
	formula, err := Check("ab+!c")
	require.NoError(t, err)

	require.Len(t, formula.Terms, 2)
	require.Len(t, formula.Terms[0].Literals, 2)
	require.Len(t, formula.Terms[1].Literals, 1)

	assert.Equal(t, "a", formula.Terms[0].Literals[0].Var)
	assert.False(t, formula.Terms[0].Literals[0].Negated)
	assert.Equal(t, "c", formula.Terms[1].Literals[0].Var)
	assert.True(t, formula.Terms[1].Literals[0].Negated)
}
