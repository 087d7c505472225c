package ahocorasick

import "sort"

// edge is a single outgoing transition from a node.
type edge struct {
	sym  byte
	next *node
}

// node is a trie vertex. Before Finalize, outgoing holds edges in
// insertion order and a linear scan is used to look one up; Finalize
// sorts outgoing ascending by sym so lookups can binary search, per
// spec.md §3's edge-ordering invariant.
type node struct {
	depth        int
	outgoing     []edge
	final        bool
	failure      *node
	matched      []*Pattern
	toBeReplaced *Pattern
}

// findEdge scans outgoing for sym, for use only before sorting.
func (n *node) findEdge(sym byte) *node {
	for i := range n.outgoing {
		if n.outgoing[i].sym == sym {
			return n.outgoing[i].next
		}
	}
	return nil
}

// addEdge appends a new child reached by sym, returning it. Caller must
// have already confirmed sym has no existing edge.
func (n *node) addEdge(sym byte) *node {
	child := &node{depth: n.depth + 1}
	n.outgoing = append(n.outgoing, edge{sym: sym, next: child})
	return child
}

// sortEdges orders outgoing ascending by sym. Called once per node
// during Finalize.
func (n *node) sortEdges() {
	sort.Slice(n.outgoing, func(i, j int) bool {
		return n.outgoing[i].sym < n.outgoing[j].sym
	})
}

// goto_ performs a binary search for sym among the (already sorted)
// outgoing edges. Named goto_ because goto is a keyword; it is the
// "goto / direct transition" of the GLOSSARY.
func (n *node) goto_(sym byte) *node {
	edges := n.outgoing
	i := sort.Search(len(edges), func(i int) bool { return edges[i].sym >= sym })
	if i < len(edges) && edges[i].sym == sym {
		return edges[i].next
	}
	return nil
}

// registerOwnPattern marks the node final and appends p to matched. Add
// only ever calls this once per node, guarded by the final check, so no
// duplicate can be introduced through this path.
func (n *node) registerOwnPattern(p *Pattern) {
	n.final = true
	n.matched = append(n.matched, p)
}

// computeReplacement selects this node's to-be-replaced pattern: the
// longest pattern in matched carrying a non-empty Replacement, ties
// broken in favor of a pattern terminating at this node rather than one
// inherited through the failure chain (spec.md §4.5). Must run after
// matched has been fully aggregated (i.e. during the finalize pass,
// after the failure-chain union).
func (n *node) computeReplacement(ownCount int) {
	var best *Pattern
	bestLen := -1
	bestOwn := false
	for i, p := range n.matched {
		if len(p.Replacement) == 0 {
			continue
		}
		own := i < ownCount
		better := len(p.Text) > bestLen || (len(p.Text) == bestLen && own && !bestOwn)
		if better {
			best = p
			bestLen = len(p.Text)
			bestOwn = own
		}
	}
	n.toBeReplaced = best
}

// transition computes the next state from cur on input symbol sym,
// chasing failure links when cur has no direct edge for sym, exactly as
// spec.md §3 describes the combined goto/fail transition function. root
// is its own failure target: the search loop never walks past it.
func transition(root, cur *node, sym byte) *node {
	for {
		if next := cur.goto_(sym); next != nil {
			return next
		}
		if cur == root {
			return root
		}
		cur = cur.failure
	}
}
