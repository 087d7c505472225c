package ahocorasick

import "github.com/dl/ahocorasick/internal/ring"

// nominee is a booked replacement candidate: a complete match of a
// pattern carrying a non-empty Replacement, spanning the half-open
// global byte range [start, end).
type nominee struct {
	start, end int
	repl       []byte
}

// replaceState holds one Automaton's replacement-stream progress: the
// scan cursor, the backlog of input bytes not yet committed to output,
// the ordered list of currently-booked, not-yet-committed candidates,
// and the bounded output buffer. It persists across Replace calls so a
// stream can span many chunks.
type replaceState struct {
	root             *node
	bufferSize       int
	maxPatternLength int

	cur cursor

	pending      *ring.Ring[byte]
	pendingStart int

	// noms holds booked candidates ordered by start position, with no
	// two overlapping each other. A candidate only ever joins or evicts
	// entries at the back of noms (the most recently discovered, hence
	// the only ones a new, later-ending candidate could overlap);
	// nothing here is committed to outBuf until drainTo confirms it is
	// past the point a further candidate could still reach back over
	// it (spec.md §4.5's backlog_pos).
	noms []nominee

	outBuf []byte
}

func newReplaceState(bufferSize, maxPatternLength int, root *node) *replaceState {
	rs := &replaceState{
		root:             root,
		bufferSize:       bufferSize,
		maxPatternLength: maxPatternLength,
		pending:          ring.New[byte](bufferSize),
	}
	rs.cur.reset(root)
	return rs
}

// feed scans one chunk of a replacement stream: it books replacement
// candidates as they complete, then drains output up to the safe
// boundary implied by the automaton's current state depth -- the
// backlog boundary of spec.md §4.6, base position plus chunk length
// minus current depth. Bytes beyond that boundary might still become
// part of a longer match starting earlier, so they stay in the backlog.
func (rs *replaceState) feed(root *node, chunk []byte, mode Mode, cb ReplaceCallback) error {
	if len(chunk) == 0 {
		return nil
	}
	rs.pending.PushBackAll(chunk)

	n := rs.cur.node
	base := rs.cur.basePosition
	for i, sym := range chunk {
		n = transition(root, n, sym)
		if n.toBeReplaced != nil {
			end := base + i + 1
			start := end - len(n.toBeReplaced.Text)
			rs.book(nominee{start: start, end: end, repl: n.toBeReplaced.Replacement}, mode)
		}
	}
	rs.cur.node = n
	rs.cur.basePosition = base + len(chunk)

	rs.drainTo(rs.cur.basePosition - n.depth)
	return rs.flushOutBuf(cb, false)
}

// book resolves a freshly completed candidate against the tail of noms.
// It only ever mutates that ordered list -- nothing is committed to
// output here. For ModeLazy, a candidate overlapping the last booked
// nominee is simply dropped. For ModeNormal, book walks back from the
// tail evicting every overlapping nominee shorter than cand; if it
// meets one at least as long as cand first, cand is dropped and the
// list is left untouched, since a single longer match can subsume
// several shorter ones booked immediately before it (spec.md §4.5).
func (rs *replaceState) book(cand nominee, mode Mode) {
	if mode == ModeLazy {
		if len(rs.noms) > 0 && cand.start < rs.noms[len(rs.noms)-1].end {
			return
		}
		rs.noms = append(rs.noms, cand)
		return
	}

	i := len(rs.noms)
	for i > 0 && rs.noms[i-1].end > cand.start {
		existing := rs.noms[i-1]
		if existing.end-existing.start >= cand.end-cand.start {
			return // existing nominee is at least as long: cand is dropped
		}
		i--
	}
	rs.noms = append(rs.noms[:i], cand)
}

// finalize commits nominee n to pending output: the literal bytes
// before it, then its replacement text in place of the matched span.
func (rs *replaceState) finalize(n nominee) {
	rs.emitLiteral(n.start)
	rs.appendOut(n.repl)
	rs.advancePast(n.end)
}

// drainTo commits to pending output everything that is certain up to
// global position limit: every booked nominee ending at or before
// limit, in order, along with the literal bytes around them, and
// nothing past limit, since those bytes -- or a still-pending nominee
// extending past limit -- might still be touched by a not-yet-completed
// match.
func (rs *replaceState) drainTo(limit int) {
	for len(rs.noms) > 0 && rs.noms[0].end <= limit {
		rs.finalize(rs.noms[0])
		rs.noms = rs.noms[1:]
	}
	if len(rs.noms) > 0 {
		if rs.noms[0].start < limit {
			rs.emitLiteral(rs.noms[0].start)
		}
		return
	}
	rs.emitLiteral(limit)
}

// emitLiteral appends the backlog bytes in [pendingStart, upTo) to the
// output buffer unchanged, then drops them from the backlog.
func (rs *replaceState) emitLiteral(upTo int) {
	if upTo <= rs.pendingStart {
		return
	}
	n := upTo - rs.pendingStart
	rs.appendOut(rs.pending.Slice(n))
	rs.advancePast(upTo)
}

// advancePast drops backlog bytes before global position upTo, now that
// they have been accounted for in the output buffer.
func (rs *replaceState) advancePast(upTo int) {
	if upTo <= rs.pendingStart {
		return
	}
	rs.pending.DropFront(upTo - rs.pendingStart)
	rs.pendingStart = upTo
}

func (rs *replaceState) appendOut(b []byte) {
	rs.outBuf = append(rs.outBuf, b...)
}

// flushOutBuf drains the output buffer to cb. With force false it only
// drains once the buffer has reached its configured size; flush passes
// force true to drain unconditionally.
func (rs *replaceState) flushOutBuf(cb ReplaceCallback, force bool) error {
	if len(rs.outBuf) == 0 || (!force && len(rs.outBuf) < rs.bufferSize) {
		return nil
	}
	for b := rs.outBuf; cb != nil && len(b) > 0; {
		part := b[:min(len(b), max(rs.bufferSize, 1))]
		if err := cb(part); err != nil {
			return err
		}
		b = b[len(part):]
	}
	rs.outBuf = rs.outBuf[:0]
	return nil
}

// flush finalizes the stream: every remaining booked nominee and every
// remaining backlog byte are committed unconditionally, the output
// buffer is drained regardless of its fill level, and the cursor and
// backlog are reset for the next stream.
func (rs *replaceState) flush(cb ReplaceCallback) error {
	rs.drainTo(rs.cur.basePosition)
	if err := rs.flushOutBuf(cb, true); err != nil {
		return err
	}
	rs.cur.reset(rs.root)
	rs.pending = ring.New[byte](rs.bufferSize)
	rs.pendingStart = 0
	rs.noms = nil
	return nil
}
