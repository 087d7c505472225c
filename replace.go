package ahocorasick

// Mode selects the overlap-resolution policy used by Replace when two
// replacement candidates cover overlapping spans of text (spec.md §4.5).
type Mode int

const (
	// ModeNormal keeps the longer of two overlapping candidates,
	// evicting a shorter one already booked when a longer candidate is
	// found ending later. Of two overlapping candidates of equal length,
	// the one booked first is kept.
	ModeNormal Mode = iota

	// ModeLazy keeps only strictly non-overlapping candidates, taken in
	// left-to-right order: a candidate starting before the end of the
	// last booked one is rejected outright, never compared by length.
	ModeLazy
)

// ReplaceCallback receives each ready slice of output bytes as Replace
// or Flush drains the bounded output buffer. The slice is reused after
// the call returns; copy it if it must outlive the callback.
type ReplaceCallback func([]byte) error

// Replace scans text for the automaton's replacement patterns and
// streams the result, unmatched bytes passed through unchanged and
// matched spans substituted with their pattern's replacement text, to
// cb in chunks bounded by the automaton's configured buffer size.
//
// Bytes near the end of text that might still extend into a longer
// match spanning into the next call are held back in an internal
// backlog; a later Replace call on the next chunk, or Flush at the end
// of the stream, resolves them. Multiple Replace calls against the same
// Automaton therefore form one continuous replacement stream until
// Flush is called.
func (a *Automaton) Replace(text []byte, mode Mode, cb ReplaceCallback) error {
	if a.open {
		return ErrNotFinalized
	}
	if !a.hasReplacement {
		return ErrNoReplacement
	}
	return a.replacement.feed(a.root, text, mode, cb)
}

// Flush finalizes the current replacement stream: any still-booked
// candidate and any remaining backlog bytes are emitted, and the output
// buffer is drained to cb regardless of its fill level. Afterward the
// automaton's replacement cursor and backlog are reset, ready for a
// fresh stream on the next Replace call.
func (a *Automaton) Flush(cb ReplaceCallback) error {
	if a.open {
		return ErrNotFinalized
	}
	if !a.hasReplacement {
		return ErrNoReplacement
	}
	return a.replacement.flush(cb)
}
