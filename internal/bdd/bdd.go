package bdd

import (
	"strings"

	"robdd/internal/parser"
)

// BDD is a reduced ordered binary decision diagram: a root node, the
// variable order it was built under, and the unique table that owns
// every internal node reachable from the root.
type BDD struct {
	root  *Node
	order string
	table *Table
}

// New parses exprText and builds its BDD under varOrder. The order is
// normalized to lowercase; variables in the text but not in the order
// are projected away by the build. Construction never fails: malformed
// text parses permissively.
func New(exprText, varOrder string) *BDD {
	b := &BDD{
		order: strings.ToLower(varOrder),
		table: NewTable(),
	}
	b.root = build(parser.Parse(exprText), b.order, 0, b.table)
	return b
}

// Root returns the root node: a terminal or a table-owned internal
// node.
func (b *BDD) Root() *Node { return b.root }

// Order returns the normalized variable order.
func (b *BDD) Order() string { return b.order }

// Size is the number of internal nodes in the unique table.
func (b *BDD) Size() int {
	if b.table == nil {
		return 0
	}
	return b.table.Size()
}

// Nodes returns the interned internal nodes in creation order.
func (b *BDD) Nodes() []*Node {
	if b.table == nil {
		return nil
	}
	return b.table.Nodes()
}

// Free releases the diagram: the root and the table are dropped so the
// node graph becomes collectable. Terminals are shared and survive.
// Evaluate on a freed BDD returns ErrFreed; Size reports 0 and Root
// and Nodes return nil.
func (b *BDD) Free() {
	b.root = nil
	b.table = nil
}
