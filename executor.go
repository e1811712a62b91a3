package spellcheck

import "sync"

// executor runs submitted tasks one at a time in submission order. The
// facade pushes every dictionary mutation through it so callers never
// block on disk I/O, while two mutations for the same word still land in
// the order they were issued.
type executor struct {
	tasks chan func()
	wg    sync.WaitGroup

	mu     sync.Mutex
	closed bool
}

func newExecutor() *executor {
	e := &executor{tasks: make(chan func(), 128)}
	e.wg.Add(1)
	go e.loop()
	return e
}

func (e *executor) loop() {
	defer e.wg.Done()
	for fn := range e.tasks {
		fn()
	}
}

// submit enqueues fn; a full queue blocks the caller rather than dropping
// or reordering work. Tasks submitted after close are discarded and
// reported as such.
func (e *executor) submit(fn func()) bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.closed {
		return false
	}
	e.tasks <- fn
	return true
}

// close drains the queue and stops the worker. In-flight tasks run to
// completion; there is no cancellation.
func (e *executor) close() {
	e.mu.Lock()
	if e.closed {
		e.mu.Unlock()
		return
	}
	e.closed = true
	e.mu.Unlock()
	close(e.tasks)
	e.wg.Wait()
}

// barrier blocks until every previously submitted task has finished.
func (e *executor) barrier() {
	done := make(chan struct{})
	if !e.submit(func() { close(done) }) {
		return
	}
	<-done
}
