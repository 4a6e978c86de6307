package bdd

// NewBestOrder builds one candidate BDD per left rotation of varOrder,
// identity rotation included, and returns the smallest by node count.
// Ties keep the earliest rotation, so the result is never larger than
// the diagram New would build. With an empty order the expression is a
// constant under the empty assignment and the root is the matching
// terminal.
func NewBestOrder(exprText, varOrder string) *BDD {
	n := len(varOrder)
	if n == 0 {
		return New(exprText, varOrder)
	}

	var best *BDD
	bestSize := 0

	for i := 0; i < n; i++ {
		rotated := varOrder[i:] + varOrder[:i]
		b := New(exprText, rotated)

		if best == nil || b.Size() < bestSize {
			if best != nil {
				best.Free()
			}
			best = b
			bestSize = b.Size()
		} else {
			b.Free()
		}
	}

	return best
}
