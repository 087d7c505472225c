package ahocorasick

// Pattern is immutable once added to an Automaton. Text is the sequence
// of symbols to match; Replacement is optional and, if non-empty, makes
// this pattern eligible to be selected as a node's replacement hint
// (see node.computeReplacement). ID is opaque to the engine: it is
// stored and echoed back in Match.Patterns, never inspected.
type Pattern struct {
	Text        []byte
	Replacement []byte
	ID          PatternID
}

// NewPattern builds a match-only pattern (no replacement) with a numeric ID.
func NewPattern(text []byte, id int64) Pattern {
	return Pattern{Text: text, ID: NumberID(id)}
}

// NewPatternWithReplacement builds a pattern that participates in
// replacement, carrying the text to substitute in its place.
func NewPatternWithReplacement(text, replacement []byte, id int64) Pattern {
	return Pattern{Text: text, Replacement: replacement, ID: NumberID(id)}
}

// clone returns a Pattern with its own copies of Text and Replacement,
// used by Automaton.Add when the caller asks the automaton to take
// ownership of the pattern's backing memory instead of warranting that
// the caller's slices outlive the automaton.
func (p Pattern) clone() Pattern {
	out := Pattern{ID: p.ID}
	if p.Text != nil {
		out.Text = append([]byte(nil), p.Text...)
	}
	if p.Replacement != nil {
		out.Replacement = append([]byte(nil), p.Replacement...)
	}
	return out
}
