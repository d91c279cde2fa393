// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package chute provides unbounded, lock-free, in-process queues for
// delivering messages from writers to readers with very low overhead.
//
// Two delivery disciplines are offered:
//
//   - Multicast: every reader observes every message pushed after the
//     reader was created. Memory is shared — each message lives in the
//     queue exactly once no matter how many readers observe it.
//   - Unicast: every message is delivered to exactly one reader
//     (competing consumers).
//
// Within multicast, two construction flavors are provided: [NewSPMC] is
// single-writer (thread-safe only against concurrent reads; concurrent
// writers require external mutual exclusion), and [NewMPMC] is lock-free
// for any number of writers.
//
// # Quick Start
//
// Direct constructors (recommended for most cases):
//
//	spmc := chute.NewSPMC[Event]()
//	mpmc := chute.NewMPMC[Request]()
//	uni  := chute.NewUnicast[Job]()
//
// Builder API selects a queue by discipline:
//
//	q := chute.New[Event]().Multicast().Build()               // → *MPMCQueue[Event]
//	q := chute.New[Event]().Multicast().SingleWriter().Build() // → *SPMCQueue[Event]
//	q := chute.New[Event]().Unicast().Build()                  // → *UnicastQueue[Event]
//
// # Basic Usage
//
// Multicast (broadcast):
//
//	q := chute.NewMPMC[int]()
//	w := q.Writer()
//	r := q.Reader() // sees only values pushed from here on
//
//	v := 42
//	w.Push(&v)
//
//	for {
//	    elem, ok := r.Next()
//	    if !ok {
//	        break // nothing available yet, not an error
//	    }
//	    fmt.Println(*elem)
//	}
//
// Unicast (competing consumers):
//
//	q := chute.NewUnicast[Job]()
//	j := Job{ID: 1}
//	q.Push(&j)
//
//	r := q.Reader()
//	guard, ok := r.Next()
//	if ok {
//	    job := guard.Take()
//	    process(job)
//	}
//
// # Common Patterns
//
// Work distribution (multicast spmc, single dispatcher):
//
//	q := chute.NewSPMC[Task]()
//
//	go func() { // dispatcher
//	    for task := range tasks {
//	        q.Push(&task)
//	    }
//	}()
//
//	for range numWorkers { // every worker sees every task
//	    go func() {
//	        r := q.Reader()
//	        for {
//	            task, ok := r.Next()
//	            if ok {
//	                task.Execute()
//	            }
//	        }
//	    }()
//	}
//
// Event aggregation (multicast mpmc, many writers):
//
//	q := chute.NewMPMC[Event]()
//
//	for sensor := range slices.Values(sensors) {
//	    go func(s Sensor) {
//	        w := q.Writer()
//	        for ev := range s.Events() {
//	            w.Push(&ev)
//	        }
//	    }(sensor)
//	}
//
//	r := q.Reader()
//	for {
//	    ev, ok := r.Next()
//	    if ok {
//	        aggregate(ev)
//	    }
//	}
//
// Job queue (unicast, competing workers):
//
//	q := chute.NewUnicast[Job]()
//
//	for range numWorkers {
//	    go func() {
//	        r := q.Reader()
//	        for {
//	            guard, ok := r.Next()
//	            if ok {
//	                guard.Take().Run()
//	            }
//	        }
//	    }()
//	}
//
//	func Submit(j Job) { q.Push(&j) }
//
// # Owning vs Lending Reads
//
// [Reader.Next] lends: the returned *T aliases queue-owned storage and is
// invalidated by the next call to Next. Use [Reader.Cloned] to get a
// [ClonedReader] whose Next copies the value instead:
//
//	cr := q.Reader().Cloned()
//	for {
//	    v, ok := cr.Next()
//	    if !ok {
//	        break
//	    }
//	    store(v) // v is safe to retain
//	}
//
// Both Reader and ClonedReader also expose Seq, a range-over-func iterator
// over everything available right now:
//
//	for v := range q.Reader().Seq() {
//	    fmt.Println(*v)
//	}
//
// # Unicast Sessions
//
// A [ReadSession] batches the per-message bookkeeping a unicast reader
// would otherwise perform on every claim into one flush per block (plus one
// when the session is closed), which
// measurably helps bursty readers at the cost of slightly delayed memory
// reclamation:
//
//	sess := r.Session()
//	for i := 0; i < batchSize; i++ {
//	    g, ok := sess.Next()
//	    if !ok {
//	        break
//	    }
//	    process(g.Take())
//	}
//
// # Error Handling
//
// Push never fails: this library's writers are infallible by design, so
// there is no backpressure and no write-side error to check. Reads return
// (value, false) when nothing is available yet — not an error. [ErrEmpty]
// and its helpers exist for callers that prefer wrapping that outcome as
// an error at an API boundary:
//
//	chute.IsEmpty(err)      // true if no message is available
//	chute.IsSemantic(err)   // true if control flow signal
//	chute.IsNonFailure(err) // true if nil or ErrEmpty
//
// # Capacity and Length
//
// There is no capacity: queues grow one block at a time as writers push,
// and are never full. Length is intentionally not provided because an
// accurate count in a lock-free, multi-writer structure requires expensive
// cross-core synchronization; track counts in application logic instead.
//
// # Resource Management
//
// A reader or writer keeps the block it last visited (and, in multicast,
// every block after it) reachable for as long as the reader or writer
// itself is reachable. Call [Reader.Close] (or the equivalent on [Writer]
// and [UnicastReader]) when one is done but still referenced, to release
// that block promptly, and [ReadSession.Close] to publish a session's
// outstanding consume count.
//
// # Thread Safety
//
//   - spmc multicast: one producer goroutine (or externally
//     mutually-excluded producers), any number of concurrent readers.
//   - mpmc multicast: any number of concurrent producer and reader
//     goroutines.
//   - unicast spmc: one producer goroutine, any number of competing
//     reader goroutines.
//
// # Dependencies
//
// This package uses [code.hybscloud.com/atomix] for atomic primitives with
// explicit memory ordering, [code.hybscloud.com/spin] for CPU pause
// instructions in retry loops, and [code.hybscloud.com/iox] for semantic,
// non-failure errors on the read side.
package chute
