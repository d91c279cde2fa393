// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package chute

// SPMCQueue is a single-producer multicast queue: thread-safe against any
// number of concurrent readers, but Push requires exclusive producer access
// (wrap it in a mutex to get a multi-writer queue — doing so is usually
// faster for writers than MPMCQueue, though MPMCQueue wins when several
// threads genuinely write in parallel).
//
// Every reader observes every value pushed after the reader was created.
// Memory is shared across readers: each pushed value lives in the queue
// exactly once no matter how many readers observe it.
type SPMCQueue[T any] struct {
	lastBlock *block[T]
}

// NewSPMC creates an empty single-producer multicast queue.
func NewSPMC[T any]() *SPMCQueue[T] {
	return &SPMCQueue[T]{lastBlock: newBlock[T](1)}
}

// Push appends value to the queue. The caller must ensure no other call to
// Push runs concurrently with this one; concurrent Reader.Next calls are
// always safe.
func (q *SPMCQueue[T]) Push(value *T) {
	last := q.lastBlock
	length := last.len.LoadRelaxed()
	if length == BlockSize {
		// +1 for the queue's own tail reference, +1 for the old block's next.
		next := newBlock[T](2)
		last.next.Store(next)
		q.lastBlock = next
		decUseCount(last) // drop the old block's queue-tail contribution
		last, length = next, 0
	}

	last.mem[length] = *value
	last.len.StoreRelease(length + 1)
}

// Reader returns a reader seeded at "now": it observes every value pushed
// after this call returns, and none pushed before it.
func (q *SPMCQueue[T]) Reader() *Reader[T] {
	last := q.lastBlock
	incUseCount(last)
	length := last.len.LoadAcquire()
	return &Reader[T]{
		block:  last,
		index:  length,
		length: length,
		bitmap: false,
	}
}
