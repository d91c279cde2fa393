// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package chute

import "code.hybscloud.com/spin"

// UnicastReader competes with every other reader of the same [UnicastQueue]
// for not-yet-claimed messages: each successful Next call claims a slot no
// other reader will ever see.
//
// UnicastReader is not safe for concurrent use by multiple goroutines, but
// any number of independent UnicastReaders may run concurrently.
type UnicastReader[T any] struct {
	q            *UnicastQueue[T]
	block        *unicastBlock[T]
	writeCounter uint64
}

// Next claims the next unclaimed message and returns an owning guard, or
// (nil, false) if none is available yet.
func (r *UnicastReader[T]) Next() (*ReadGuard[T], bool) {
	sw := spin.Wait{}
	readCounter := r.block.readCounter.LoadAcquire()
	for {
		if readCounter >= r.writeCounter {
			if readCounter < BlockSize {
				wc := r.block.writeCounter.LoadAcquire()
				if wc == r.writeCounter {
					return nil, false
				}
				r.writeCounter = wc
				continue
			}
			if !r.advanceBlock() {
				return nil, false
			}
			readCounter = r.block.readCounter.LoadAcquire()
			continue
		}

		if r.block.readCounter.CompareAndSwapAcqRel(readCounter, readCounter+1) {
			index := readCounter
			return &ReadGuard[T]{block: r.block, index: index}, true
		}
		readCounter = r.block.readCounter.LoadAcquire()
		sw.Once()
	}
}

// advanceBlock moves r onto the next block once r.block is fully claimed:
// either adopting a read-block another reader already published, or taking
// r.block's next link and publishing it itself. Reports whether a
// successor was found.
func (r *UnicastReader[T]) advanceBlock() bool {
	r.q.readBlockMu.Lock()
	if rb := r.q.readBlock; rb != r.block {
		incUseCountUnicast(rb)
		r.q.readBlockMu.Unlock()
		decUseCountUnicast(r.block)
		r.block = rb
		r.writeCounter = r.block.writeCounter.LoadAcquire()
		return true
	}

	next := takeNext(r.block)
	if next == nil {
		r.q.readBlockMu.Unlock()
		return false
	}
	// next's credit taken from r.block.next becomes the queue's read-block
	// credit; r.block itself is about to be vacated as the read-block.
	incUseCountUnicast(next)
	old := r.block
	r.q.readBlock = next
	r.q.readBlockMu.Unlock()

	decUseCountUnicast(old) // release the vacated read-block field's credit
	decUseCountUnicast(old) // release this reader's own credit on the old block
	r.block = next
	r.writeCounter = r.block.writeCounter.LoadAcquire()
	return true
}

// Session begins a batched consumption scope: see [ReadSession].
func (r *UnicastReader[T]) Session() *ReadSession[T] {
	return &ReadSession[T]{r: r}
}

// Close releases r's hold on the block it last visited: it drops r's
// reference count on that block and r's pointer to it. Calling Close more
// than once is a no-op.
func (r *UnicastReader[T]) Close() {
	if r.block != nil {
		decUseCountUnicast(r.block)
		r.block = nil
	}
}
