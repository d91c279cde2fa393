// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package chute_test

import (
	"testing"

	"code.hybscloud.com/chute"
)

func TestReaderMPMCSeq(t *testing.T) {
	q := chute.NewMPMC[int]()
	w := q.Writer()
	r := q.Reader()
	for i := range 20 {
		v := i
		w.Push(&v)
	}

	seen := map[int]bool{}
	count := 0
	for v := range r.Seq() {
		seen[*v] = true
		count++
	}
	if count != 20 {
		t.Fatalf("Seq: got %d values, want 20", count)
	}
	for i := range 20 {
		if !seen[i] {
			t.Fatalf("Seq missed value %d", i)
		}
	}
}

func TestReaderMPMCClonedSeq(t *testing.T) {
	q := chute.NewMPMC[int]()
	w := q.Writer()
	cr := q.Reader().Cloned()
	for i := range 5 {
		v := i
		w.Push(&v)
	}

	var got []int
	for v := range cr.Seq() {
		got = append(got, v)
	}
	if len(got) != 5 {
		t.Fatalf("Cloned Seq: got %d values, want 5", len(got))
	}
}

func TestReaderSeqStopsEarly(t *testing.T) {
	q := chute.NewSPMC[int]()
	r := q.Reader()
	for i := range 10 {
		v := i
		q.Push(&v)
	}

	count := 0
	for range r.Seq() {
		count++
		if count == 3 {
			break
		}
	}
	if count != 3 {
		t.Fatalf("Seq with early break ran %d iterations, want 3", count)
	}
}
