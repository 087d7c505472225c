package ahocorasick

import (
	"fmt"
	"strings"
)

// Automaton is the Aho–Corasick trie augmented with failure links. It
// owns every node and pattern through flat registries (spec.md §3's
// "flat registry... for bulk release"), and moves one-way from open
// (mutable, Add allowed, Search/Replace disallowed) to finalized
// (immutable topology, Search/Replace allowed) via Finalize.
type Automaton struct {
	cfg config

	root     *node
	nodes    []*node
	patterns []*Pattern
	open     bool

	hasReplacement bool
	replacement    *replaceState

	def  cursor   // the default, non-thread-safe push-style search cursor
	pull pullState // the SetText/FindNext pull-style cursor
}

// New creates an empty, open Automaton ready to receive patterns.
func New(opts ...Option) *Automaton {
	a := &Automaton{
		cfg:  newConfig(opts),
		root: &node{},
		open: true,
	}
	a.nodes = append(a.nodes, a.root)
	a.def.reset(a.root)
	return a
}

// NumberOfNodes returns the number of trie nodes, including the root.
func (a *Automaton) NumberOfNodes() int {
	return len(a.nodes)
}

// NumberOfPatterns returns the number of patterns successfully added.
func (a *Automaton) NumberOfPatterns() int {
	return len(a.patterns)
}

// IsFinalized reports whether Finalize has been called.
func (a *Automaton) IsFinalized() bool {
	return !a.open
}

// Add inserts pattern into the trie. If copyText is true, the automaton
// takes its own copy of pattern.Text and pattern.Replacement; otherwise
// the caller warrants those slices outlive the automaton (spec.md §5).
//
// Add fails with ErrAutomataClosed after Finalize, ErrZeroPattern for
// empty pattern text, ErrLongPattern for text beyond the configured
// maximum, and ErrDuplicatePattern if another pattern already terminates
// at the same trie node.
func (a *Automaton) Add(pattern Pattern, copyText bool) error {
	if !a.open {
		return ErrAutomataClosed
	}
	if len(pattern.Text) == 0 {
		return ErrZeroPattern
	}
	if len(pattern.Text) > a.cfg.maxPatternLength {
		return ErrLongPattern
	}

	if copyText {
		pattern = pattern.clone()
	}

	n := a.root
	for _, sym := range pattern.Text {
		next := n.findEdge(sym)
		if next == nil {
			next = n.addEdge(sym)
			a.nodes = append(a.nodes, next)
		}
		n = next
	}

	if n.final {
		return ErrDuplicatePattern
	}

	stored := pattern
	a.patterns = append(a.patterns, &stored)
	n.registerOwnPattern(&stored)
	return nil
}

// Finalize computes failure links, aggregates each node's matched-pattern
// set across its failure chain, sorts every node's outgoing edges for
// binary search, and books each node's replacement hint. It is one-shot
// and idempotent: calling it again is a no-op (spec.md §8 property 6).
// After Finalize, Add always fails and Search/Replace are permitted.
func (a *Automaton) Finalize() {
	if !a.open {
		return
	}
	a.open = false

	// Breadth-first failure-link computation and match-set aggregation
	// in a single pass: BFS visits nodes in non-decreasing depth
	// order, so a node's failure target (always shallower, invariant 1
	// of spec.md §8) has already been fully aggregated by the time this
	// node is processed.
	queue := make([]*node, 0, len(a.nodes))
	for _, e := range a.root.outgoing {
		e.next.failure = a.root
		queue = append(queue, e.next)
	}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]

		ownCount := len(cur.matched)

		for _, e := range cur.outgoing {
			child := e.next
			queue = append(queue, child)

			fail := cur.failure
			for fail != nil && fail.findEdge(e.sym) == nil {
				fail = fail.failure
			}
			if fail == nil {
				child.failure = a.root
			} else {
				child.failure = fail.findEdge(e.sym)
			}
		}

		if cur.failure != nil {
			cur.matched = append(cur.matched, cur.failure.matched...)
			if cur.failure.final {
				cur.final = true
			}
		}
		cur.computeReplacement(ownCount)
	}

	for _, n := range a.nodes {
		n.sortEdges()
		if n.toBeReplaced != nil {
			a.hasReplacement = true
		}
	}

	if a.hasReplacement {
		a.replacement = newReplaceState(a.cfg.bufferSize, a.cfg.maxPatternLength, a.root)
	}
}

// Release drops every node, pattern and replacement buffer the automaton
// owns. It is a convenience for deterministically freeing a large
// automaton rather than waiting on the garbage collector (unlike the
// reference C implementation, nothing here is unsafe to skip). The
// Automaton must not be used again afterward.
func (a *Automaton) Release() {
	a.nodes = nil
	a.patterns = nil
	a.root = nil
	a.replacement = nil
	a.def = cursor{}
	a.pull = pullState{}
}

// String renders the automaton's nodes, failure links, outgoing edges
// and accepted patterns in the debug-display style of the reference
// implementation's ac_automata_display, for interactive inspection only.
func (a *Automaton) String() string {
	var b strings.Builder
	ids := make(map[*node]int, len(a.nodes))
	for i, n := range a.nodes {
		ids[n] = i
	}
	for i, n := range a.nodes {
		failID := 0
		if n.failure != nil {
			failID = ids[n.failure]
		}
		fmt.Fprintf(&b, "NODE(%d) --fail--> NODE(%d)\n", i, failID)
		for _, e := range n.outgoing {
			fmt.Fprintf(&b, "  --(%q)--> NODE(%d)\n", e.sym, ids[e.next])
		}
		if len(n.matched) > 0 {
			b.WriteString("  accepts: {")
			for j, p := range n.matched {
				if j > 0 {
					b.WriteString(", ")
				}
				b.WriteString(p.ID.String())
			}
			b.WriteString("}\n")
		}
	}
	return b.String()
}
