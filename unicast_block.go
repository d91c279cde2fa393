// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package chute

import (
	"sync"

	"code.hybscloud.com/atomix"
)

// unicastBlock is the unit of allocation for the unicast discipline. Unlike
// the multicast block, each slot is consumed by exactly one reader: once
// readSucc reaches BlockSize every message in mem has been taken, so mem
// itself is freed while the header survives until refs reaches zero.
type unicastBlock[T any] struct {
	_            pad
	writeCounter atomix.Uint64 // initialized-prefix length, release-published by the writer
	_            pad
	readCounter  atomix.Uint64 // next slot to claim; advanced by compare-and-swap
	_            pad
	readSucc     atomix.Uint64 // count of slots consumed and destroyed
	_            pad
	refs         refcount
	nextMu       sync.Mutex
	next         *unicastBlock[T] // cleared once the first reader adopts it
	mem          *[BlockSize]T    // nil once every slot has been consumed
}

func newUnicastBlock[T any](initial uint64) *unicastBlock[T] {
	b := &unicastBlock[T]{mem: new([BlockSize]T)}
	b.refs.init(initial)
	return b
}

func incUseCountUnicast[T any](b *unicastBlock[T]) {
	b.refs.incr()
}

func decUseCountUnicast[T any](b *unicastBlock[T]) {
	for {
		if !b.refs.decr() {
			return
		}
		b.nextMu.Lock()
		next := b.next
		b.nextMu.Unlock()
		if next == nil {
			return
		}
		b = next
	}
}

// markConsumed records that one more slot in b has been read and destroyed.
// Once every slot has been consumed, b's backing storage is freed while the
// header (and anything still referencing it) lives on.
func markConsumed[T any](b *unicastBlock[T]) {
	markConsumedN(b, 1)
}

// markConsumedN is markConsumed's batched form, used by [ReadSession] to
// flush several claims it tracked locally in one atomic add.
func markConsumedN[T any](b *unicastBlock[T], n uint64) {
	if n == 0 {
		return
	}
	if b.readSucc.AddAcqRel(n) == BlockSize {
		b.mem = nil
	}
}

// setNext publishes next as b's successor. Called once, by the writer, when
// b fills up.
func setNext[T any](b *unicastBlock[T], next *unicastBlock[T]) {
	b.nextMu.Lock()
	b.next = next
	b.nextMu.Unlock()
}

// takeNext consumes b's next field, transferring ownership of the successor
// (if any) to the caller. A second call returns nil: the link is cleared on
// first adoption, matching "set to none when the first reader enters the
// next block" — later readers instead adopt the queue's shared read-block.
func takeNext[T any](b *unicastBlock[T]) *unicastBlock[T] {
	b.nextMu.Lock()
	next := b.next
	b.next = nil
	b.nextMu.Unlock()
	return next
}
