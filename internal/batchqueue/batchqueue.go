// Package batchqueue implements the two batched append-only result
// collectors the parallel dispatcher shares across worker goroutines
// (spec.md §4.10, §5 "Shared-resource policy"): a lock-free Fixed queue
// for the max_typos-unset case, where the survivor count is bounded by
// the candidate count, and a mutex-batched Expandable queue otherwise.
//
// Both are grounded on
// original_source/src/one_shot/parallel/{fixed_queue,threaded_vec}.rs: a
// worker claims a batch-sized region up front and writes to it without
// further synchronization, amortising coordination cost over batch_size
// elements instead of paying it per element. This Go port drops the
// reference's raw-pointer arena allocation (Go has no use for it; a
// preallocated slice already gives worker goroutines disjoint regions to
// write without a data race) and replaces its documented TODO — the
// fixed queue there ships with dangling, never-compacted slots — with an
// explicit list of filled regions, registered as each writer's batch fills
// and at Close, and compacted in Finalize.
package batchqueue

import (
	"sync"
	"sync/atomic"
)

// Fixed is a lock-free collector sized to an upper bound on the number
// of results known ahead of time. Each Writer claims disjoint
// batch-sized regions of a single preallocated backing slice by atomic
// increment; no two writers ever touch the same index, so no locking is
// needed on the write path.
type Fixed[T any] struct {
	data      []T
	batchSize int
	batchIdx  atomic.Int64

	mu      sync.Mutex
	regions []fixedRegion
}

type fixedRegion struct {
	offset, count int
}

// NewFixed allocates a Fixed queue. capacity is the upper bound on
// results (typically len(candidates)); batchSize is the number of slots
// a writer reserves per claim; threadCount widens the backing slice by
// one batch per worker so the last worker to claim a batch never runs
// out of room even if every prior batch was only partially filled.
func NewFixed[T any](capacity, batchSize, threadCount int) *Fixed[T] {
	if batchSize <= 0 {
		batchSize = 1
	}
	batches := (capacity + batchSize - 1) / batchSize
	total := (batches + threadCount) * batchSize
	return &Fixed[T]{data: make([]T, total), batchSize: batchSize}
}

// FixedWriter is the per-goroutine handle into a Fixed queue. As with the
// reference implementation, at most one goroutine may use a given
// FixedWriter at a time — create one per worker.
type FixedWriter[T any] struct {
	q         *Fixed[T]
	offset    int
	pos       int
	allocated bool
}

// Writer returns a new per-goroutine handle into q.
func (q *Fixed[T]) Writer() *FixedWriter[T] {
	return &FixedWriter[T]{q: q}
}

// Push appends value to the writer's current batch, claiming a fresh
// batch-sized region via atomic increment when the current one (or none
// yet) is full. A filled region is registered with the queue before the
// writer moves on to the next one.
func (w *FixedWriter[T]) Push(value T) {
	if !w.allocated || w.pos == w.q.batchSize {
		w.allocBatch()
	}
	w.q.data[w.offset+w.pos] = value
	w.pos++
}

func (w *FixedWriter[T]) allocBatch() {
	if w.allocated && w.pos > 0 {
		w.q.mu.Lock()
		w.q.regions = append(w.q.regions, fixedRegion{offset: w.offset, count: w.pos})
		w.q.mu.Unlock()
	}
	idx := int(w.q.batchIdx.Add(1) - 1)
	offset := idx * w.q.batchSize
	if offset+w.q.batchSize > len(w.q.data) {
		panic("batchqueue: Fixed queue overflow; capacity was undersized for the workload")
	}
	w.offset = offset
	w.pos = 0
	w.allocated = true
}

// Close registers the writer's last (possibly partially filled) region
// with the queue so Finalize can compact it. Call once per writer after its goroutine is done
// pushing, before the queue is finalized.
func (w *FixedWriter[T]) Close() {
	if !w.allocated || w.pos == 0 {
		return
	}
	w.q.mu.Lock()
	w.q.regions = append(w.q.regions, fixedRegion{offset: w.offset, count: w.pos})
	w.q.mu.Unlock()
}

// Finalize compacts every closed writer's live region into one
// contiguous slice, in the order the writers happened to register (spec.md
// §5: "the parallel path's result sequence is in completion order").
// Call only after every writer has returned from Close and every worker
// goroutine has joined.
func (q *Fixed[T]) Finalize() []T {
	total := 0
	for _, r := range q.regions {
		total += r.count
	}
	out := make([]T, 0, total)
	for _, r := range q.regions {
		out = append(out, q.data[r.offset:r.offset+r.count]...)
	}
	return out
}

// Expandable is the mutex-guarded collector used when the survivor count
// is not tightly bounded (max_typos set): each writer accumulates into a
// thread-local batch and flushes it into the shared backing slice under
// one lock acquisition per batch, rather than one per element.
type Expandable[T any] struct {
	batchSize int

	mu   sync.Mutex
	data []T
}

// NewExpandable allocates an Expandable queue with the given per-writer
// batch size.
func NewExpandable[T any](batchSize int) *Expandable[T] {
	if batchSize <= 0 {
		batchSize = 1
	}
	return &Expandable[T]{batchSize: batchSize}
}

// ExpandableWriter is the per-goroutine handle into an Expandable queue.
type ExpandableWriter[T any] struct {
	q     *Expandable[T]
	batch []T
}

// Writer returns a new per-goroutine handle into q.
func (q *Expandable[T]) Writer() *ExpandableWriter[T] {
	return &ExpandableWriter[T]{q: q, batch: make([]T, 0, q.batchSize)}
}

// Push appends value to the writer's local batch, flushing it into the
// shared backing slice once it fills.
func (w *ExpandableWriter[T]) Push(value T) {
	w.batch = append(w.batch, value)
	if len(w.batch) == w.q.batchSize {
		w.flush()
	}
}

func (w *ExpandableWriter[T]) flush() {
	if len(w.batch) == 0 {
		return
	}
	w.q.mu.Lock()
	w.q.data = append(w.q.data, w.batch...)
	w.q.mu.Unlock()
	w.batch = w.batch[:0]
}

// Close flushes any residual, not-yet-full batch. Call once per writer
// after its goroutine is done pushing, before the queue is finalized.
func (w *ExpandableWriter[T]) Close() {
	w.flush()
}

// Finalize returns the accumulated results. Call only after every writer
// has returned from Close and every worker goroutine has joined.
func (q *Expandable[T]) Finalize() []T {
	return q.data
}
