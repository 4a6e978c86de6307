package bdd

import "robdd/internal/dnf"

// build is the Shannon decomposition recursion. Each call either
// resolves a constant, skips a variable the expression no longer
// mentions, or splits on order[level] and recurses on the two
// cofactors. Children are interned before their parent, so the DAG is
// acyclic by construction and the table only ever grows.
func build(e *dnf.Expression, order string, level int, table *Table) *Node {
	if e.ConstFalse {
		return False
	}
	if e.ConstTrue {
		return True
	}

	if level == len(order) {
		// Out of variables: a surviving term with no literals left
		// is a satisfied conjunction.
		if e.EvalEmpty() {
			return True
		}
		return False
	}

	v := order[level]
	if !e.Uses(v) {
		return build(e, order, level+1, table)
	}

	fHigh := dnf.Cofactor(e, dnf.Pos(v))
	fLow := dnf.Cofactor(e, dnf.Not(v))

	high := build(fHigh, order, level+1, table)
	low := build(fLow, order, level+1, table)

	if high == low {
		return high
	}
	return table.MakeNode(v, low, high)
}
