package parser

import "robdd/internal/dnf"

// Parse turns expression text into a dnf.Expression. It never fails:
// malformed input yields a best-effort expression. Empty input denotes
// the constant ⊥.
//
// A '!' negates the next letter, wherever it appears, and each further
// '!' before that letter flips the polarity back, so "!!a" is a; a '!'
// never followed by a letter is dropped. Each '+' opens a new term, so a
// leading or trailing '+' leaves an empty term in the list, which the
// builder resolves to ⊤ once the order is exhausted. Within a term a
// repeated literal is a no-op and a complementary literal falsifies
// the term.
func Parse(source string) *dnf.Expression {
	if source == "" {
		return dnf.False()
	}

	expr := &dnf.Expression{}
	term := &dnf.Term{}
	expr.Terms = append(expr.Terms, term)

	negate := false
	for _, tok := range NewScanner(source).ScanTokens() {
		switch tok.Type {
		case BANG:
			negate = !negate
		case LETTER:
			v := tok.Lexeme[0]
			if negate {
				term.AddLiteral(dnf.Not(v))
			} else {
				term.AddLiteral(dnf.Pos(v))
			}
			negate = false
		case PLUS:
			term = &dnf.Term{}
			expr.Terms = append(expr.Terms, term)
		}
	}

	return expr
}
