// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package chute

import (
	"sync/atomic"

	"code.hybscloud.com/atomix"
)

// BlockSize is the fixed slot count of every block in the list.
// It must be a multiple of 64 so the mpmc ready bitmap divides evenly.
const BlockSize = 4096

const bitBlocksLen = BlockSize / 64

// refcount is an intrusive, atomic reference counter shared by every block
// flavor in this package. Increment only ever grows the count from a pinned
// origin while any reference is held, so it needs no ordering beyond atomicity.
// Decrement uses acquire-release ordering: acquire so a decrement can never
// be reordered before the reads it is meant to follow, release so a thread
// that observes the count reach zero has synchronized-with every prior
// decrement and may safely reclaim what the counter protected.
type refcount struct {
	n atomix.Uint64
}

func (r *refcount) init(initial uint64) {
	r.n.StoreRelaxed(initial)
}

// incr adds one reference (clone).
func (r *refcount) incr() {
	r.n.Add(1)
}

// decr removes one reference (drop) and reports whether this was the last one.
func (r *refcount) decr() bool {
	return r.n.AddAcqRel(^uint64(0)) == 0
}

// block is the unit of allocation for the multicast disciplines (spmc and
// mpmc). len is the spmc writer's monotonically increasing published length
// under spmc, and the mpmc FAA reservation counter (which may transiently
// exceed BlockSize) under mpmc; bitBlocks is unused by spmc and carries the
// per-64-slot mpmc readiness bitmap.
type block[T any] struct {
	_         pad
	len       atomix.Uint64
	_         pad
	refs      refcount
	next      atomic.Pointer[block[T]]
	_         pad
	bitBlocks [bitBlocksLen]atomix.Uint64
	mem       [BlockSize]T
}

// newBlock allocates a block with the given initial reference count. Callers
// pre-credit the counter for every referrer that will receive a handle
// without a later incr — e.g. 2 when both the queue tail and a predecessor's
// next field will point at it.
func newBlock[T any](initial uint64) *block[T] {
	b := new(block[T])
	b.refs.init(initial)
	return b
}

// incUseCount increments b's reference count (relaxed).
func incUseCount[T any](b *block[T]) {
	b.refs.incr()
}

// decUseCount decrements b's reference count, cascading the drop down the
// next chain iteratively (never recursively, so a long queue cannot blow the
// stack) once it reaches zero.
func decUseCount[T any](b *block[T]) {
	for {
		if !b.refs.decr() {
			return
		}
		next := b.next.Load()
		if next == nil {
			return
		}
		b = next
	}
}

// tryLoadNext returns an owning reference to b's successor, if any.
func tryLoadNext[T any](b *block[T]) (*block[T], bool) {
	next := b.next.Load()
	if next == nil {
		return nil, false
	}
	incUseCount(next)
	return next, true
}

// pad is cache-line padding used to keep hot atomic fields on their own
// cache line and prevent false sharing between them.
type pad [64]byte
