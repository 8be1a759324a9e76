package viewer

import (
	"context"
	"errors"
	"runtime"
	"sync"
)

var ErrClosed = errors.New("worker closed")

// Worker runs functions one at a time on a single locked OS thread.
// Driver objects are only ever touched from inside Do.
type Worker struct {
	jobs chan func()
	quit chan struct{}
	wg   sync.WaitGroup
	once sync.Once
}

func NewWorker() *Worker {
	w := &Worker{
		jobs: make(chan func()),
		quit: make(chan struct{}),
	}
	w.wg.Add(1)
	go w.loop()
	return w
}

func (w *Worker) loop() {
	defer w.wg.Done()
	// Keep this thread, so d3d/dxgi see the same thread for every call
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()
	for {
		select {
		case fn := <-w.jobs:
			fn()
		case <-w.quit:
			return
		}
	}
}

// Do runs fn on the worker thread and waits for it. A job that has been
// handed over always runs to completion, even if ctx ends meanwhile.
func (w *Worker) Do(ctx context.Context, fn func()) error {
	done := make(chan struct{})
	job := func() {
		defer close(done)
		fn()
	}
	select {
	case w.jobs <- job:
	case <-ctx.Done():
		return ctx.Err()
	case <-w.quit:
		return ErrClosed
	}
	<-done
	return nil
}

// Close stops the worker after the running job. Later calls to Do fail
// with ErrClosed.
func (w *Worker) Close() {
	w.once.Do(func() { close(w.quit) })
	w.wg.Wait()
}
