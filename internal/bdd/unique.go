package bdd

// nodeKey identifies an internal node structurally. Child equality is
// pointer identity, which suffices because every descendant of a node
// was interned by the same table.
type nodeKey struct {
	v    byte
	low  *Node
	high *Node
}

// Table is the unique table: a hash-consed store of internal nodes
// keyed by (variable, low, high). It owns every node it allocates.
type Table struct {
	nodes map[nodeKey]*Node
	seq   []*Node // insertion order, for deterministic iteration
}

func NewTable() *Table {
	return &Table{nodes: make(map[nodeKey]*Node)}
}

// MakeNode returns the node for (v, low, high), applying both reduction
// rules: a redundant test (low == high) collapses to its child without
// touching the table, and a triple already interned returns the cached
// node. MakeNode is idempotent per key.
func (t *Table) MakeNode(v byte, low, high *Node) *Node {
	if low == high {
		return low
	}

	key := nodeKey{v: v, low: low, high: high}
	if n, ok := t.nodes[key]; ok {
		return n
	}

	n := &Node{Var: v, Low: low, High: high}
	t.nodes[key] = n
	t.seq = append(t.seq, n)
	return n
}

// Size is the number of interned internal nodes. Terminals are not
// counted.
func (t *Table) Size() int { return len(t.nodes) }

// Nodes returns the interned nodes in insertion order.
func (t *Table) Nodes() []*Node {
	out := make([]*Node, len(t.seq))
	copy(out, t.seq)
	return out
}
