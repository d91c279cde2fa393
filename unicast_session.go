// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package chute

import "code.hybscloud.com/spin"

// ReadSession batches the per-claim bookkeeping an [UnicastReader] would
// otherwise perform on every call into one flush per block, which helps
// bursty readers at the cost of slightly delayed memory reclamation: a
// block's storage is not freed until the session flushes, even if every
// slot in it has already been claimed.
//
// A session must not outlive concurrent direct use of the same
// UnicastReader; finish one before starting another or calling Next
// directly on r.
type ReadSession[T any] struct {
	r       *UnicastReader[T]
	block   *unicastBlock[T] // block the pending count below applies to
	pending uint64
}

// Next claims the next unclaimed message, same as [UnicastReader.Next], but
// returns a [SessionGuard] whose consumption is tallied locally instead of
// flushed immediately.
func (s *ReadSession[T]) Next() (*SessionGuard[T], bool) {
	sw := spin.Wait{}
	for {
		readCounter := s.r.block.readCounter.LoadAcquire()
		if readCounter >= s.r.writeCounter {
			if readCounter < BlockSize {
				wc := s.r.block.writeCounter.LoadAcquire()
				if wc == s.r.writeCounter {
					return nil, false
				}
				s.r.writeCounter = wc
				continue
			}
			s.flush()
			if !s.r.advanceBlock() {
				return nil, false
			}
			continue
		}

		if s.r.block.readCounter.CompareAndSwapAcqRel(readCounter, readCounter+1) {
			if s.block != s.r.block {
				s.flush()
				s.block = s.r.block
			}
			return &SessionGuard[T]{block: s.r.block, index: readCounter, s: s}, true
		}
		sw.Once()
	}
}

// flush publishes the session's locally-tallied consume count for the
// block it currently applies to, then resets the tally.
func (s *ReadSession[T]) flush() {
	if s.pending == 0 || s.block == nil {
		return
	}
	markConsumedN(s.block, s.pending)
	s.pending = 0
}

// Close flushes any outstanding claims made through this session. Nothing
// else flushes a session's tally: a session abandoned without calling Close
// never publishes it, so the block it last applied to never frees its
// storage.
func (s *ReadSession[T]) Close() {
	s.flush()
}

// SessionGuard is [ReadGuard]'s session-scoped counterpart: it records
// consumption in its session's local tally instead of publishing it
// immediately.
type SessionGuard[T any] struct {
	block *unicastBlock[T]
	index uint64
	s     *ReadSession[T]
	done  bool
}

// Take returns the claimed value and tallies the slot as consumed in the
// owning session. Calling Take more than once panics.
func (g *SessionGuard[T]) Take() T {
	if g.done {
		panic("chute: SessionGuard already consumed")
	}
	v := g.block.mem[g.index]
	g.done = true
	g.s.pending++
	return v
}

// Close discards the claimed value without returning it, still tallying
// the slot as consumed. Calling Close after Take, or more than once, is a
// no-op.
func (g *SessionGuard[T]) Close() {
	if g.done {
		return
	}
	g.done = true
	g.s.pending++
}
