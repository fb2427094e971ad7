// Copyright 2025 The go-highway Authors. SPDX-License-Identifier: Apache-2.0

// Package workerpool runs row-parallel kernels on a fixed set of long-lived
// goroutines. A Pool is created once and shared by every call that splits
// work across rows, such as matmul.MatMulWithPool.
//
// A nil *Pool is valid and runs everything on the calling goroutine, so
// callers can thread an optional pool through without branching.
//
// Usage:
//
//	pool := workerpool.New(runtime.GOMAXPROCS(0))
//	defer pool.Close()
//
//	pool.ParallelForMin(rows, 16, func(start, end int) {
//	    processRows(start, end)
//	})
package workerpool

import (
	"fmt"
	"runtime"
	"sync"
	"sync/atomic"
)

// Pool is a fixed set of workers that execute ranges of a parallel loop.
type Pool struct {
	numWorkers int
	tasks      chan task
	closeOnce  sync.Once
	closed     atomic.Bool
}

// task is one range of a loop plus the join state of the call it belongs
// to.
type task struct {
	run  func()
	join *join
}

// join waits for the tasks of one call and keeps the first panic raised by
// any of them.
type join struct {
	wg       sync.WaitGroup
	panicked atomic.Pointer[workerPanic]
}

type workerPanic struct {
	value any
}

func (j *join) do(run func()) {
	defer j.wg.Done()
	defer func() {
		if r := recover(); r != nil {
			j.panicked.CompareAndSwap(nil, &workerPanic{value: r})
		}
	}()
	run()
}

// wait blocks until every task is done and re-raises a worker panic on the
// calling goroutine.
func (j *join) wait() {
	j.wg.Wait()
	if p := j.panicked.Load(); p != nil {
		panic(fmt.Sprintf("workerpool: worker panicked: %v", p.value))
	}
}

// New starts a pool with numWorkers goroutines. If numWorkers <= 0 it uses
// GOMAXPROCS.
func New(numWorkers int) *Pool {
	if numWorkers <= 0 {
		numWorkers = runtime.GOMAXPROCS(0)
	}
	p := &Pool{
		numWorkers: numWorkers,
		tasks:      make(chan task, numWorkers*2),
	}
	for range numWorkers {
		go p.worker()
	}
	return p
}

func (p *Pool) worker() {
	for t := range p.tasks {
		t.join.do(t.run)
	}
}

// NumWorkers returns the number of workers, or 1 for a nil or closed pool.
func (p *Pool) NumWorkers() int {
	if !p.usable() {
		return 1
	}
	return p.numWorkers
}

// Close stops the workers after queued work drains. It is safe to call more
// than once; later calls on a closed pool run sequentially.
func (p *Pool) Close() {
	if p == nil {
		return
	}
	p.closeOnce.Do(func() {
		p.closed.Store(true)
		close(p.tasks)
	})
}

func (p *Pool) usable() bool {
	return p != nil && !p.closed.Load()
}

// ParallelFor splits [0, n) into one contiguous range per worker and calls
// fn(start, end) for each. It blocks until all ranges are done.
func (p *Pool) ParallelFor(n int, fn func(start, end int)) {
	p.ParallelForMin(n, 1, fn)
}

// ParallelForMin is ParallelFor with ranges of at least minChunk indices, so
// small loops are not split finer than is worth a hand-off.
func (p *Pool) ParallelForMin(n, minChunk int, fn func(start, end int)) {
	if n <= 0 {
		return
	}
	minChunk = max(minChunk, 1)
	workers := min(p.NumWorkers(), (n+minChunk-1)/minChunk)
	if workers <= 1 {
		fn(0, n)
		return
	}

	chunk := (n + workers - 1) / workers
	j := &join{}
	for start := 0; start < n; start += chunk {
		end := min(start+chunk, n)
		j.wg.Add(1)
		p.tasks <- task{run: func() { fn(start, end) }, join: j}
	}
	j.wait()
}

// ParallelForAtomic calls fn(i) for every i in [0, n), with workers taking
// the next index from a shared counter. Use it when the cost per index
// varies. It blocks until all indices are done.
func (p *Pool) ParallelForAtomic(n int, fn func(i int)) {
	if n <= 0 {
		return
	}
	workers := min(p.NumWorkers(), n)
	if workers <= 1 {
		for i := range n {
			fn(i)
		}
		return
	}

	var next atomic.Int64
	j := &join{}
	j.wg.Add(workers)
	for range workers {
		p.tasks <- task{
			run: func() {
				for {
					i := int(next.Add(1)) - 1
					if i >= n {
						return
					}
					fn(i)
				}
			},
			join: j,
		}
	}
	j.wait()
}
