// Package dnf holds the in-memory model for Boolean functions in
// disjunctive normal form: signed literals grouped into product terms,
// terms grouped into an expression. The model is the scratch data the
// BDD builder consumes; it is cheap to clone and carries the two
// constant short-circuit flags.
package dnf

import "strings"

// Literal is a single propositional variable with a polarity.
type Literal struct {
	Var byte // 'a'..'z'
	Neg bool
}

// Pos returns the positive literal for v.
func Pos(v byte) Literal { return Literal{Var: v} }

// Not returns the negated literal for v.
func Not(v byte) Literal { return Literal{Var: v, Neg: true} }

// Complement returns the literal over the same variable with the
// opposite polarity.
func (l Literal) Complement() Literal {
	return Literal{Var: l.Var, Neg: !l.Neg}
}

// Equal reports whether o is the same literal: same variable, same
// polarity.
func (l Literal) Equal(o Literal) bool {
	return l == o
}

// Complementary reports whether o is the complement of l.
func (l Literal) Complementary(o Literal) bool {
	return l.Var == o.Var && l.Neg != o.Neg
}

func (l Literal) String() string {
	if l.Neg {
		return "!" + string(l.Var)
	}
	return string(l.Var)
}

// Term is a conjunction of literals. A term containing complementary
// literals can never be satisfied; such terms carry Falsified instead
// of the contradiction itself.
type Term struct {
	Literals  []Literal
	Falsified bool
}

// AddLiteral inserts l into the term. Adding a literal already present
// is a no-op; adding the complement of a present literal falsifies the
// term.
func (t *Term) AddLiteral(l Literal) {
	for _, have := range t.Literals {
		if have.Equal(l) {
			return
		}
		if have.Complementary(l) {
			t.Falsified = true
			return
		}
	}
	t.Literals = append(t.Literals, l)
}

// Uses reports whether the term mentions v in either polarity.
func (t *Term) Uses(v byte) bool {
	for _, l := range t.Literals {
		if l.Var == v {
			return true
		}
	}
	return false
}

// Clone returns an independent deep copy of the term.
func (t *Term) Clone() *Term {
	c := &Term{Falsified: t.Falsified}
	if len(t.Literals) > 0 {
		c.Literals = make([]Literal, len(t.Literals))
		copy(c.Literals, t.Literals)
	}
	return c
}

func (t *Term) String() string {
	var sb strings.Builder
	for _, l := range t.Literals {
		sb.WriteString(l.String())
	}
	return sb.String()
}

// Expression is a disjunction of product terms. The constant flags
// short-circuit the denotation to ⊥ or ⊤ regardless of the term list;
// at most one of them is ever set.
type Expression struct {
	Terms      []*Term
	ConstFalse bool
	ConstTrue  bool
}

// False returns an expression denoting the constant ⊥.
func False() *Expression { return &Expression{ConstFalse: true} }

// True returns an expression denoting the constant ⊤.
func True() *Expression { return &Expression{ConstTrue: true} }

// IsConst reports whether the expression is short-circuited to a
// constant.
func (e *Expression) IsConst() bool { return e.ConstFalse || e.ConstTrue }

// Uses reports whether v occurs, in either polarity, in some term that
// is not falsified.
func (e *Expression) Uses(v byte) bool {
	for _, t := range e.Terms {
		if t.Falsified {
			continue
		}
		if t.Uses(v) {
			return true
		}
	}
	return false
}

// EvalEmpty evaluates the expression under the empty assignment: true
// iff the expression is the constant ⊤ or some non-falsified term has
// no literals left.
func (e *Expression) EvalEmpty() bool {
	if e.ConstTrue {
		return true
	}
	if e.ConstFalse {
		return false
	}
	for _, t := range e.Terms {
		if !t.Falsified && len(t.Literals) == 0 {
			return true
		}
	}
	return false
}

// Clone returns an independent deep copy of the expression.
func (e *Expression) Clone() *Expression {
	c := &Expression{
		ConstFalse: e.ConstFalse,
		ConstTrue:  e.ConstTrue,
	}
	if len(e.Terms) > 0 {
		c.Terms = make([]*Term, len(e.Terms))
		for i, t := range e.Terms {
			c.Terms[i] = t.Clone()
		}
	}
	return c
}

func (e *Expression) String() string {
	if e.ConstFalse {
		return "0"
	}
	if e.ConstTrue {
		return "1"
	}
	parts := make([]string, 0, len(e.Terms))
	for _, t := range e.Terms {
		if t.Falsified {
			continue
		}
		parts = append(parts, t.String())
	}
	return strings.Join(parts, "+")
}
