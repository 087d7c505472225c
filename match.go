package ahocorasick

// Match reports every pattern ending at the same text position, per
// spec.md §3's description of a node's aggregated matched set. Position
// is the end-exclusive offset in the stream: one past the last matched
// symbol, counting from the start of the very first chunk a cursor has
// seen (spec.md §4.3).
type Match struct {
	Position int
	Patterns []*Pattern
}

// Size is the number of patterns reported in this Match.
func (m Match) Size() int {
	return len(m.Patterns)
}

// MatchCallback is invoked once per Match found during a push-style
// search. Returning false stops the search; returning true continues it.
type MatchCallback func(Match) bool
