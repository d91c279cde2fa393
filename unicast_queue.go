// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package chute

import "sync"

// UnicastQueue delivers every message to exactly one reader (competing
// consumers). Push requires exclusive producer access, matching
// [SPMCQueue]; any number of readers may compete for messages concurrently.
type UnicastQueue[T any] struct {
	writeBlock *unicastBlock[T]

	readBlockMu sync.Mutex
	readBlock   *unicastBlock[T]
}

// NewUnicast creates an empty unicast queue.
func NewUnicast[T any]() *UnicastQueue[T] {
	b := newUnicastBlock[T](2) // +1 writeBlock, +1 readBlock
	return &UnicastQueue[T]{writeBlock: b, readBlock: b}
}

// Push appends value to the queue for exactly one reader to claim. The
// caller must ensure no other call to Push runs concurrently with this one.
func (q *UnicastQueue[T]) Push(value *T) {
	b := q.writeBlock
	length := b.writeCounter.LoadRelaxed()
	if length == BlockSize {
		next := newUnicastBlock[T](2) // +1 writeBlock, +1 predecessor's next
		setNext(b, next)
		q.writeBlock = next
		decUseCountUnicast(b) // drop the old block's writeBlock contribution
		b, length = next, 0
	}

	b.mem[length] = *value
	b.writeCounter.StoreRelease(length + 1)
}

// Reader returns a reader competing with every other reader of this queue
// for not-yet-claimed messages.
func (q *UnicastQueue[T]) Reader() *UnicastReader[T] {
	q.readBlockMu.Lock()
	b := q.readBlock
	incUseCountUnicast(b)
	q.readBlockMu.Unlock()

	return &UnicastReader[T]{
		q:            q,
		block:        b,
		writeCounter: b.writeCounter.LoadAcquire(),
	}
}
