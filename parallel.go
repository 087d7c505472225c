package ahocorasick

import "sync"

// Group bounds the number of goroutines running concurrently: Go starts
// one goroutine per task, but blocks the caller while the concurrency
// limit is reached. It is meant to drive many SearchThreadSafe calls
// (one SearchPayload each) over a finalized Automaton in parallel.
type Group struct {
	sem chan struct{}
	wg  sync.WaitGroup

	mu   sync.Mutex
	errs []error
}

// NewGroup creates a Group that runs at most concurrency tasks at once.
// A concurrency of 0 or less means unbounded.
func NewGroup(concurrency int) *Group {
	g := &Group{}
	if concurrency > 0 {
		g.sem = make(chan struct{}, concurrency)
	}
	return g
}

// Go runs fn in its own goroutine, blocking only if the group is
// already at its concurrency limit. Any error fn returns is collected
// and surfaced by Wait.
func (g *Group) Go(fn func() error) {
	g.wg.Add(1)
	if g.sem != nil {
		g.sem <- struct{}{}
	}
	go func() {
		defer g.wg.Done()
		if g.sem != nil {
			defer func() { <-g.sem }()
		}
		if err := fn(); err != nil {
			g.mu.Lock()
			g.errs = append(g.errs, err)
			g.mu.Unlock()
		}
	}()
}

// Wait blocks until every task started with Go has returned, then
// reports the first error encountered, if any.
func (g *Group) Wait() error {
	g.wg.Wait()
	if len(g.errs) == 0 {
		return nil
	}
	return g.errs[0]
}
