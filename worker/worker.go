package worker

import (
	"runtime"
	"sync"

	"github.com/getsentry/sentry-go"
)

// Pool runs submitted functions on a fixed set of goroutines. A panicking function is reported to sentry and
// does not take its worker down.
type Pool struct {
	queue     chan func()
	workers   sync.WaitGroup
	closeOnce sync.Once
}

// New starts a pool with the given number of workers. Fewer than one worker means runtime.NumCPU().
func New(workers int) *Pool {
	if workers < 1 {
		workers = runtime.NumCPU()
	}
	p := &Pool{queue: make(chan func(), workers)}
	p.workers.Add(workers)
	for i := 0; i < workers; i++ {
		go p.worker()
	}
	return p
}

func (p *Pool) worker() {
	defer p.workers.Done()
	for f := range p.queue {
		run(f)
	}
}

func run(f func()) {
	defer sentry.Recover()
	f()
}

// Submit queues f, blocking while every worker is busy. It must not be called after Close.
func (p *Pool) Submit(f func()) {
	p.queue <- f
}

// Close stops accepting work and waits for queued functions to finish.
func (p *Pool) Close() {
	p.closeOnce.Do(func() {
		close(p.queue)
	})
	p.workers.Wait()
}
