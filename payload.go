package ahocorasick

// SearchPayload carries one goroutine's private search cursor against a
// shared, finalized Automaton. Once Finalize has run, an automaton's
// topology (nodes, edges, failure links, matched sets) never changes
// again, so any number of SearchPayloads can be driven concurrently
// through SearchThreadSafe without the automaton itself needing a lock
// (spec.md §4.7).
type SearchPayload struct {
	cur cursor
}

// NewSearchPayload creates a payload ready to search a, starting at its
// root. a need not be finalized yet; the payload's cursor is simply
// reset to whatever a.root is at the time of this call.
func NewSearchPayload(a *Automaton) *SearchPayload {
	p := &SearchPayload{}
	p.cur.reset(a.root)
	return p
}

// SearchThreadSafe is Search's concurrency-safe counterpart: it mutates
// only payload, never any state shared with other goroutines calling
// SearchThreadSafe against the same Automaton. a must already be
// finalized.
func (a *Automaton) SearchThreadSafe(payload *SearchPayload, text []byte, keep bool, cb MatchCallback) (SearchStatus, error) {
	if a.open {
		return SearchComplete, ErrNotFinalized
	}
	if !keep {
		payload.cur.reset(a.root)
	}
	return a.runSearch(&payload.cur, text, cb), nil
}
