// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package chute

// ReadGuard owns exactly one claimed slot. Exactly one of Take or Close
// must be called: both mark the slot consumed, allowing the block to
// eventually release its storage once every slot in it has been consumed.
type ReadGuard[T any] struct {
	block *unicastBlock[T]
	index uint64
	done  bool
}

// Take returns the claimed value and marks the slot consumed. Calling Take
// more than once panics.
func (g *ReadGuard[T]) Take() T {
	if g.done {
		panic("chute: ReadGuard already consumed")
	}
	v := g.block.mem[g.index]
	g.done = true
	markConsumed(g.block)
	return v
}

// Close discards the claimed value without returning it, still marking the
// slot consumed. Calling Close after Take, or more than once, is a no-op.
func (g *ReadGuard[T]) Close() {
	if g.done {
		return
	}
	g.done = true
	markConsumed(g.block)
}
