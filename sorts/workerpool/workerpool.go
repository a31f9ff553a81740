// Copyright 2025 The go-sortbench Authors. SPDX-License-Identifier: Apache-2.0

// Package workerpool provides a persistent goroutine pool for splitting one
// sort across several cores. Workers are started once by New and reused by
// every Chunks or Each call until Close.
//
// Usage:
//
//	pool := workerpool.New(runtime.GOMAXPROCS(0))
//	defer pool.Close()
//
//	sorted := sorts.MergeSortParallel(pool, data)
//
// Calls must not be nested: a function running on the pool must not submit
// more work to the same pool.
package workerpool

import (
	"runtime"
	"sync"
	"sync/atomic"
)

// Pool is a fixed set of worker goroutines fed through a buffered channel.
type Pool struct {
	workers   int
	tasks     chan task
	closeOnce sync.Once
	closed    atomic.Bool
}

type task struct {
	fn   func()
	done *sync.WaitGroup
}

// New starts a pool with the given number of workers.
// If workers <= 0, GOMAXPROCS workers are started.
func New(workers int) *Pool {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	p := &Pool{
		workers: workers,
		tasks:   make(chan task, workers*2),
	}
	for range workers {
		go p.loop()
	}
	return p
}

func (p *Pool) loop() {
	for t := range p.tasks {
		t.fn()
		t.done.Done()
	}
}

// Workers returns the number of worker goroutines.
func (p *Pool) Workers() int {
	return p.workers
}

// Close stops the workers once pending work has drained. It is safe to call
// more than once. Work submitted after Close runs on the caller.
func (p *Pool) Close() {
	p.closeOnce.Do(func() {
		p.closed.Store(true)
		close(p.tasks)
	})
}

// Bounds returns the boundaries Chunks uses to split [0, n): the start of
// each range in order, followed by n. It returns nil for n <= 0.
func (p *Pool) Bounds(n int) []int {
	if n <= 0 {
		return nil
	}
	workers := min(p.workers, n)
	size := (n + workers - 1) / workers

	bounds := make([]int, 0, workers+1)
	for start := 0; start < n; start += size {
		bounds = append(bounds, start)
	}
	return append(bounds, n)
}

// Chunks splits [0, n) into the contiguous ranges given by Bounds and calls
// fn(start, end) for each range on the pool. It blocks until every range is
// done.
func (p *Pool) Chunks(n int, fn func(start, end int)) {
	bounds := p.Bounds(n)
	if len(bounds) < 2 {
		return
	}

	if len(bounds) == 2 || p.closed.Load() {
		for i := range len(bounds) - 1 {
			fn(bounds[i], bounds[i+1])
		}
		return
	}

	var wg sync.WaitGroup
	wg.Add(len(bounds) - 1)
	for i := range len(bounds) - 1 {
		start, end := bounds[i], bounds[i+1]
		p.tasks <- task{
			fn:   func() { fn(start, end) },
			done: &wg,
		}
	}
	wg.Wait()
}

// Each calls fn(i) for every i in [0, n). Workers claim indices one at a time
// from a shared counter, which balances uneven per-index cost. It blocks
// until every index is done.
func (p *Pool) Each(n int, fn func(i int)) {
	if n <= 0 {
		return
	}

	workers := min(p.workers, n)
	if workers == 1 || p.closed.Load() {
		for i := range n {
			fn(i)
		}
		return
	}

	var next atomic.Int64
	var wg sync.WaitGroup
	wg.Add(workers)
	for range workers {
		p.tasks <- task{
			fn: func() {
				for {
					i := int(next.Add(1)) - 1
					if i >= n {
						return
					}
					fn(i)
				}
			},
			done: &wg,
		}
	}
	wg.Wait()
}
