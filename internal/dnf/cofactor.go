package dnf

// Cofactor computes the Shannon cofactor of e with lit assumed true: a
// positive literal restricts its variable to 1, a negated literal to 0.
// The result is a fresh expression; e is left untouched.
//
// Per term, a literal equal to lit is satisfied and removed, while the
// complement of lit falsifies the term. A term emptied by a removal
// makes the whole disjunction ⊤ and cuts the scan short; if every term
// ends up falsified the result is ⊥. Falsified terms are otherwise kept
// in the list, where they contribute nothing.
func Cofactor(e *Expression, lit Literal) *Expression {
	if e.IsConst() {
		return e.Clone()
	}

	out := e.Clone()
	allFalsified := true

	for _, t := range out.Terms {
		i := 0
		for !t.Falsified && i < len(t.Literals) {
			if t.Literals[i].Equal(lit) {
				t.Literals = append(t.Literals[:i], t.Literals[i+1:]...)
				if len(t.Literals) == 0 {
					out.ConstTrue = true
					return out
				}
				continue
			}
			if t.Literals[i].Complementary(lit) {
				t.Falsified = true
				break
			}
			i++
		}

		if !t.Falsified {
			allFalsified = false
		}
	}

	if allFalsified {
		out.ConstFalse = true
	}
	return out
}
