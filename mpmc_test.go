// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package chute_test

import (
	"sort"
	"sync"
	"testing"

	"code.hybscloud.com/chute"
)

func TestMPMCBasic(t *testing.T) {
	q := chute.NewMPMC[int]()
	w := q.Writer()
	r := q.Reader()

	if _, ok := r.Next(); ok {
		t.Fatalf("Next on empty queue: got a value, want none")
	}

	for i := range 5 {
		v := i
		w.Push(&v)
	}

	seen := map[int]bool{}
	for i := 0; i < 5; i++ {
		got, ok := r.Next()
		if !ok {
			t.Fatalf("Next(%d): got none, want a value", i)
		}
		seen[*got] = true
	}
	for i := range 5 {
		if !seen[i] {
			t.Fatalf("missing value %d", i)
		}
	}
}

func TestMPMCBlockingPush(t *testing.T) {
	q := chute.NewMPMC[int]()
	r := q.Reader()

	for i := range 5 {
		v := i
		q.BlockingPush(&v)
	}

	for i := range 5 {
		if _, ok := r.Next(); !ok {
			t.Fatalf("Next(%d): got none, want a value", i)
		}
	}
}

func TestMPMCCrossesBlockBoundary(t *testing.T) {
	q := chute.NewMPMC[int]()
	w := q.Writer()
	r := q.Reader()

	const n = chute.BlockSize + 100
	for i := range n {
		v := i
		w.Push(&v)
	}

	count := 0
	for {
		if _, ok := r.Next(); !ok {
			break
		}
		count++
	}
	if count != n {
		t.Fatalf("read %d values, want %d", count, n)
	}
}

func TestMPMCMultipleWriters(t *testing.T) {
	if chute.RaceEnabled {
		t.Skip("skip: concurrent multi-writer stress triggers race-detector false positives on lock-free ordering")
	}

	q := chute.NewMPMC[int]()
	r := q.Reader()

	const perWriter = 200
	const writers = 4

	var wg sync.WaitGroup
	for wi := range writers {
		wg.Add(1)
		go func(base int) {
			defer wg.Done()
			w := q.Writer()
			for i := range perWriter {
				v := base + i
				w.Push(&v)
			}
		}(wi * perWriter)
	}
	wg.Wait()

	var got []int
	for {
		v, ok := r.Next()
		if !ok {
			break
		}
		got = append(got, *v)
	}
	if len(got) != writers*perWriter {
		t.Fatalf("read %d values, want %d", len(got), writers*perWriter)
	}

	sort.Ints(got)
	for i, v := range got {
		if v != i {
			t.Fatalf("got[%d] = %d, want %d", i, v, i)
		}
	}
}

func TestMPMCWriterUpdate(t *testing.T) {
	q := chute.NewMPMC[int]()
	w := q.Writer()

	const n = chute.BlockSize*2 + 7
	for i := range n {
		v := i
		w.Push(&v)
	}
	w.Update() // must not panic and must not lose track of the tail

	r := q.Reader()
	v := n
	w.Push(&v)

	count := 0
	for {
		if _, ok := r.Next(); !ok {
			break
		}
		count++
	}
	if count != 1 {
		t.Fatalf("reader created after Update saw %d values from one Push, want 1", count)
	}
}

func TestMPMCReaderSeesOnlyFutureValues(t *testing.T) {
	q := chute.NewMPMC[int]()
	w := q.Writer()

	before := 1
	w.Push(&before)

	r := q.Reader()
	if _, ok := r.Next(); ok {
		t.Fatalf("new reader observed a value pushed before it was created")
	}

	after := 2
	w.Push(&after)
	got, ok := r.Next()
	if !ok || *got != 2 {
		t.Fatalf("Next: got (%v, %v), want (2, true)", got, ok)
	}
}
