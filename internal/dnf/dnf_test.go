package dnf

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLiteralComplement(t *testing.T) {
	a := Pos('a')
	na := Not('a')

	assert.Equal(t, na, a.Complement())
	assert.Equal(t, a, na.Complement())
	assert.True(t, a.Equal(Pos('a')))
	assert.False(t, a.Equal(na))
	assert.False(t, a.Equal(Pos('b')))
	assert.True(t, a.Complementary(na))
	assert.False(t, a.Complementary(a))
	assert.False(t, a.Complementary(Pos('b')))
}

func TestLiteralString(t *testing.T) {
	assert.Equal(t, "a", Pos('a').String())
	assert.Equal(t, "!b", Not('b').String())
}

func TestAddLiteralIdempotent(t *testing.T) {
	term := &Term{}
	term.AddLiteral(Pos('a'))
	term.AddLiteral(Pos('a'))

	assert.Equal(t, []Literal{Pos('a')}, term.Literals)
	assert.False(t, term.Falsified)
}

func TestAddLiteralComplementFalsifies(t *testing.T) {
	term := &Term{}
	term.AddLiteral(Pos('a'))
	term.AddLiteral(Not('a'))

	assert.True(t, term.Falsified)
	assert.Equal(t, []Literal{Pos('a')}, term.Literals, "the contradiction itself is not stored")
}

func TestTermUses(t *testing.T) {
	term := &Term{}
	term.AddLiteral(Not('x'))

	assert.True(t, term.Uses('x'))
	assert.False(t, term.Uses('y'))
}

func TestExpressionUsesSkipsFalsifiedTerms(t *testing.T) {
	dead := &Term{Falsified: true}
	dead.Literals = []Literal{Pos('a')}

	e := &Expression{Terms: []*Term{dead}}
	assert.False(t, e.Uses('a'))

	e.Terms = append(e.Terms, &Term{Literals: []Literal{Pos('a')}})
	assert.True(t, e.Uses('a'))
}

func TestEvalEmpty(t *testing.T) {
	assert.True(t, True().EvalEmpty())
	assert.False(t, False().EvalEmpty())

	empty := &Expression{Terms: []*Term{{}}}
	assert.True(t, empty.EvalEmpty())

	alive := &Expression{Terms: []*Term{{Literals: []Literal{Pos('a')}}}}
	assert.False(t, alive.EvalEmpty())

	dead := &Expression{Terms: []*Term{{Falsified: true}}}
	assert.False(t, dead.EvalEmpty())
}

func TestCloneIsDeep(t *testing.T) {
	orig := &Expression{
		Terms: []*Term{
			{Literals: []Literal{Pos('a'), Not('b')}},
		},
	}

	clone := orig.Clone()
	require.Len(t, clone.Terms, 1)

	clone.Terms[0].Literals[0] = Pos('z')
	clone.Terms[0].Falsified = true

	assert.Equal(t, Pos('a'), orig.Terms[0].Literals[0])
	assert.False(t, orig.Terms[0].Falsified)
}

func TestExpressionString(t *testing.T) {
	assert.Equal(t, "0", False().String())
	assert.Equal(t, "1", True().String())

	e := &Expression{
		Terms: []*Term{
			{Literals: []Literal{Pos('a'), Not('b')}},
			{Falsified: true, Literals: []Literal{Pos('c')}},
			{Literals: []Literal{Pos('d')}},
		},
	}
	assert.Equal(t, "a!b+d", e.String())
}
