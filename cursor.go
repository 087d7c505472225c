package ahocorasick

// cursor is the persistent (current_node, base_position) pair that lets
// a search resume across chunked input, per spec.md §3/§4.3. The default
// search API keeps one cursor on the Automaton itself; the thread-safe
// API keeps one per SearchPayload so concurrent searches never share
// mutable state.
type cursor struct {
	node         *node
	basePosition int
}

func (c *cursor) reset(root *node) {
	c.node = root
	c.basePosition = 0
}
