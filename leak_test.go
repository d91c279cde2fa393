// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package chute_test

import (
	"runtime"
	"testing"

	"code.hybscloud.com/chute"
)

// heapAlloc forces two GC cycles and returns live heap bytes, stable enough
// to compare across two checkpoints in the same process.
func heapAlloc() uint64 {
	runtime.GC()
	runtime.GC()
	var stats runtime.MemStats
	runtime.ReadMemStats(&stats)
	return stats.HeapAlloc
}

// A reclaiming reader keeps live heap bounded no matter how many blocks a
// writer has produced over the process's lifetime: once the reader and the
// writer have both moved past a block, nothing still points at it and the
// GC is free to collect it. The blocks' reference counts play no part in
// this: the check catches a block that stays reachable, not a miscounted
// credit. maxBlockGrowth bounds how much growth this test tolerates as
// noise.
const maxBlockGrowth = 5 * chute.BlockSize * 8 // bytes; 5 blocks' worth of ints

func TestSPMCBlockReclamationIsBounded(t *testing.T) {
	q := chute.NewSPMC[int]()
	r := q.Reader()

	drain := func(n int) {
		for i := range n {
			v := i
			q.Push(&v)
			if _, ok := r.Next(); !ok {
				t.Fatalf("Next: got none, want a value")
			}
		}
	}

	drain(20 * chute.BlockSize) // warm up allocator and GC state
	before := heapAlloc()

	drain(200 * chute.BlockSize)
	after := heapAlloc()

	if after > before && after-before > maxBlockGrowth {
		t.Fatalf("heap grew by %d bytes over 200 probe blocks (want < %d): "+
			"old spmc blocks are likely leaking instead of being reclaimed",
			after-before, maxBlockGrowth)
	}
}

func TestMPMCBlockReclamationIsBounded(t *testing.T) {
	q := chute.NewMPMC[int]()
	w := q.Writer()
	r := q.Reader()

	drain := func(n int) {
		for i := range n {
			v := i
			w.Push(&v)
			if _, ok := r.Next(); !ok {
				t.Fatalf("Next: got none, want a value")
			}
		}
	}

	drain(20 * chute.BlockSize)
	before := heapAlloc()

	drain(200 * chute.BlockSize)
	after := heapAlloc()

	if after > before && after-before > maxBlockGrowth {
		t.Fatalf("heap grew by %d bytes over 200 probe blocks (want < %d): "+
			"old mpmc blocks are likely leaking instead of being reclaimed",
			after-before, maxBlockGrowth)
	}
}

// TestUnicastBlockReclamationIsBounded exercises the single-reader path
// through UnicastReader.advanceBlock that takes over r.block's own next
// link on every block transition (the branch a prior refcount-leak
// regression was found in): each of the 200 probe blocks below forces
// exactly one such transition.
func TestUnicastBlockReclamationIsBounded(t *testing.T) {
	q := chute.NewUnicast[int]()
	r := q.Reader()

	drain := func(n int) {
		for i := range n {
			v := i
			q.Push(&v)
			g, ok := r.Next()
			if !ok {
				t.Fatalf("Next: got none, want a value")
			}
			g.Take()
		}
	}

	drain(20 * chute.BlockSize)
	before := heapAlloc()

	drain(200 * chute.BlockSize)
	after := heapAlloc()

	if after > before && after-before > maxBlockGrowth {
		t.Fatalf("heap grew by %d bytes over 200 probe blocks crossing 200 "+
			"block boundaries (want < %d): unclaimed unicast blocks are "+
			"likely leaking instead of being reclaimed",
			after-before, maxBlockGrowth)
	}
}
