// Package pool provides a small worker pool for probabilistic searches,
// such as drawing several prime candidates at once.
package pool

import (
	"io"
	"runtime"
	"sync"
	"sync/atomic"
)

// task tells an idle worker what to do: either evaluate f at a fixed index,
// or keep evaluating it until a non-nil result comes back.
type task struct {
	search bool
	// remaining counts the search results still missing; nil for
	// fixed-index tasks.
	remaining *int64
	// index evaluated when not searching.
	i       int
	f       func(int) interface{}
	results []interface{}
}

func runSearch(results []interface{}, done chan<- struct{}, f func(int) interface{}, remaining *int64) {
	for atomic.LoadInt64(remaining) > 0 {
		res := f(0)
		if res == nil {
			continue
		}
		slot := atomic.AddInt64(remaining, -1)
		if slot < 0 {
			// Another worker claimed the last slot; nobody is
			// listening for this result, so signalling it would
			// park this worker on the done channel.
			break
		}
		// The result must land in its slot before the signal, or the
		// collector could return while the slot is still nil.
		results[slot] = res
		done <- struct{}{}
	}
}

func runWorker(tasks <-chan task, done chan<- struct{}) {
	for t := range tasks {
		if t.search {
			runSearch(t.results, done, t.f, t.remaining)
			continue
		}
		t.results[t.i] = t.f(t.i)
		done <- struct{}{}
	}
}

// Pool is a set of latent workers shared between searches.
//
// All methods work with a nil receiver, doing the equivalent work on the
// calling goroutine instead, so a pool is strictly optional.
type Pool struct {
	tasks chan task
	// done receives exactly one signal per result written, sent after the
	// write, so the collectors below can count signals instead of polling.
	done        chan struct{}
	workerCount int
}

// New creates a pool with the given number of workers.
// If count <= 0, the number of available CPUs is used.
func New(count int) *Pool {
	if count <= 0 {
		count = runtime.NumCPU()
	}

	p := &Pool{
		tasks:       make(chan task),
		done:        make(chan struct{}),
		workerCount: count,
	}
	for i := 0; i < count; i++ {
		go runWorker(p.tasks, p.done)
	}
	return p
}

// TearDown stops the workers. The pool must not be used afterwards.
func (p *Pool) TearDown() {
	close(p.tasks)
}

// Search evaluates f until count non-nil results have been produced, and
// returns those results. f is expected to try a single candidate, returning
// nil when the candidate fails.
func (p *Pool) Search(count int, f func() interface{}) []interface{} {
	results := make([]interface{}, count)

	if p == nil {
		for i := range results {
			for results[i] == nil {
				results[i] = f()
			}
		}
		return results
	}

	remaining := int64(count)
	t := task{
		search:    true,
		remaining: &remaining,
		f:         func(int) interface{} { return f() },
		results:   results,
	}
	for i := 0; i < p.workerCount; i++ {
		p.tasks <- t
	}
	// One signal per filled slot; after count of them every slot holds a
	// result and no sender is left behind.
	for i := 0; i < count; i++ {
		<-p.done
	}
	return results
}

// Parallelize returns [f(0), f(1), ..., f(count-1)], evaluating across the
// workers.
func (p *Pool) Parallelize(count int, f func(int) interface{}) []interface{} {
	results := make([]interface{}, count)

	if p == nil {
		for i := range results {
			results[i] = f(i)
		}
		return results
	}

	sent, received := 0, 0
	for sent < count {
		t := task{
			i:       sent,
			f:       f,
			results: results,
		}
		// Interleave draining done signals so workers free up to accept
		// the remaining tasks.
		select {
		case p.tasks <- t:
			sent++
		case <-p.done:
			received++
		}
	}
	for ; received < count; received++ {
		<-p.done
	}
	return results
}

// LockedReader wraps an io.Reader so that concurrent reads are safe.
//
// Which goroutine reads which bytes is still raced, but no two readers ever
// observe the same bytes, which is what independent witness sampling needs.
type LockedReader struct {
	reader io.Reader
	m      sync.Mutex
}

// NewLockedReader wraps r. The zero mutex is ready to use.
func NewLockedReader(r io.Reader) *LockedReader {
	return &LockedReader{reader: r}
}

// Read implements io.Reader by delegating under the lock.
func (r *LockedReader) Read(p []byte) (int, error) {
	r.m.Lock()
	defer r.m.Unlock()
	return r.reader.Read(p)
}
