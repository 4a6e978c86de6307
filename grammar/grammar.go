// Package grammar is the strict surface of the expression language: a
// participle grammar for well-formed DNF. The construction pipeline
// stays permissive; Check exists so tooling can tell a user exactly
// where their text stops being well formed.
package grammar

import (
	"fmt"

	"github.com/alecthomas/participle/v2"
)

// Formula is a disjunction of one or more terms.
type Formula struct {
	Terms []*Term `@@ ( "+" @@ )*`
}

// Term is a conjunction of one or more literals.
type Term struct {
	Literals []*Literal `@@+`
}

// Literal is an optionally negated variable.
type Literal struct {
	Negated bool   `@"!"?`
	Var     string `@Letter`
}

var parser = buildParser()

func buildParser() *participle.Parser[Formula] {
	p, err := participle.Build[Formula](
		participle.Lexer(DNFLexer),
		participle.Elide("Whitespace"),
	)
	if err != nil {
		panic(fmt.Errorf("failed to build grammar: %w", err))
	}

	return p
}

// Check parses source strictly. Unlike the permissive parser it fails
// on anything outside the grammar, with participle's positioned errors.
func Check(source string) (*Formula, error) {
	return parser.ParseString("", source)
}
