package ahocorasick

import "errors"

// Sentinel errors returned by the automaton's mutating and searching
// operations, replacing the AC_STATUS_t / AC_ERROR_t codes of the
// reference C implementation with errors.Is-comparable values.
var (
	// ErrZeroPattern is returned by Add for a pattern with no text.
	ErrZeroPattern = errors.New("ahocorasick: pattern has zero length")

	// ErrLongPattern is returned by Add when the pattern text exceeds the
	// automaton's configured maximum pattern length.
	ErrLongPattern = errors.New("ahocorasick: pattern exceeds maximum length")

	// ErrAutomataClosed is returned by Add once the automaton has been
	// finalized; mutation is only allowed while the automaton is open.
	ErrAutomataClosed = errors.New("ahocorasick: automaton is finalized, no more patterns may be added")

	// ErrDuplicatePattern is returned by Add when another pattern already
	// terminates at the same trie node.
	ErrDuplicatePattern = errors.New("ahocorasick: duplicate pattern")

	// ErrNotFinalized is returned by Search, SearchThreadSafe, SetText and
	// Replace when called before Finalize.
	ErrNotFinalized = errors.New("ahocorasick: automaton is not finalized")

	// ErrNoReplacement is returned by Replace when the automaton has no
	// pattern carrying a non-empty replacement text.
	ErrNoReplacement = errors.New("ahocorasick: automaton has no replacement patterns")
)
