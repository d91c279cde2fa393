// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package chute

// Builder selects a queue's delivery discipline by fluent configuration.
// Direct constructors ([NewSPMC], [NewMPMC], [NewUnicast]) remain the
// recommended path for most callers; Builder exists for call sites that
// decide discipline and writer cardinality from configuration rather than
// from code.
//
// Unlike the untyped builder this is modeled on, each step below returns a
// differently-typed builder so that an invalid combination (for example,
// a unicast queue with SingleWriter) simply has no method to reach it,
// rather than panicking at Build time.
type Builder[T any] struct{}

// New starts building a queue of element type T.
func New[T any]() *Builder[T] {
	return &Builder[T]{}
}

// Multicast selects the multicast discipline: every reader observes every
// message pushed after the reader was created.
func (*Builder[T]) Multicast() *MulticastBuilder[T] {
	return &MulticastBuilder[T]{}
}

// Unicast selects the unicast discipline: every message is delivered to
// exactly one of the queue's readers.
func (*Builder[T]) Unicast() *UnicastBuilder[T] {
	return &UnicastBuilder[T]{}
}

// MulticastBuilder builds a multicast queue, lock-free for any number of
// concurrent writers unless narrowed with [MulticastBuilder.SingleWriter].
type MulticastBuilder[T any] struct{}

// SingleWriter narrows the queue to a single, externally-serialized writer
// in exchange for a cheaper push path.
func (*MulticastBuilder[T]) SingleWriter() *SingleWriterBuilder[T] {
	return &SingleWriterBuilder[T]{}
}

// Build creates a lock-free multi-writer multicast queue.
func (*MulticastBuilder[T]) Build() *MPMCQueue[T] {
	return NewMPMC[T]()
}

// SingleWriterBuilder builds a single-writer multicast queue.
type SingleWriterBuilder[T any] struct{}

// Build creates a single-writer multicast queue.
func (*SingleWriterBuilder[T]) Build() *SPMCQueue[T] {
	return NewSPMC[T]()
}

// UnicastBuilder builds a unicast (competing consumers) queue.
type UnicastBuilder[T any] struct{}

// Build creates a unicast queue.
func (*UnicastBuilder[T]) Build() *UnicastQueue[T] {
	return NewUnicast[T]()
}
