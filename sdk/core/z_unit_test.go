// Copyright 2026 Zintix Labs
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package core

import (
	"testing"

	num "github.com/shabbyrobe/go-num"
)

func TestWyRandDeterminism(t *testing.T) {
	r1 := NewWyRand(7)
	r2 := Default().New(7)
	for i := 0; i < 100; i++ {
		if r1.Uint64() != r2.Uint64() {
			t.Fatalf("Uint64 mismatch at %d", i)
		}
	}
	if r1.Uint64N(1000) != r2.Uint64N(1000) {
		t.Fatalf("Uint64N mismatch")
	}
}

func TestWyRandSeedRoundTrip(t *testing.T) {
	r := NewWyRand(0x29_21_f1_bd_8b_a9_c6_b6)
	for i := 0; i < 17; i++ {
		r.Uint64()
	}
	replay := NewWyRand(r.GetSeed())
	for i := 0; i < 100; i++ {
		if r.Uint64() != replay.Uint64() {
			t.Fatalf("trajectory mismatch at %d", i)
		}
	}
}

func TestWyRandReseed(t *testing.T) {
	r := NewWyRand(1)
	r.Uint64()
	r.Seed(1)
	fresh := NewWyRand(1)
	if r.Uint64() != fresh.Uint64() {
		t.Fatalf("Seed did not reset trajectory")
	}
}

func TestWyRandFork(t *testing.T) {
	parent := NewWyRand(42)
	untouched := NewWyRand(42)

	child := parent.Fork()
	// 父串流狀態必須被推進
	if parent.Uint64() == untouched.Uint64() {
		t.Fatalf("fork did not advance parent state")
	}

	// 子串流由父串流 fork 前的狀態唯一決定
	replayParent := NewWyRand(42)
	replayChild := replayParent.Fork()
	for i := 0; i < 50; i++ {
		if child.Uint64() != replayChild.Uint64() {
			t.Fatalf("child stream not reproducible at %d", i)
		}
	}

	// 連續 fork 兩次必須得到不同的子串流
	p := NewWyRand(42)
	c1, c2 := p.Fork(), p.Fork()
	if c1.Uint64() == c2.Uint64() && c1.Uint64() == c2.Uint64() {
		t.Fatalf("sibling forks produced identical streams")
	}
}

func TestWyRandSnapshotRestore(t *testing.T) {
	r := NewWyRand(99)
	r.Uint64()
	snap, err := r.Snapshot()
	if err != nil {
		t.Fatalf("snapshot: %v", err)
	}
	want := r.Uint64()

	other := NewWyRand(0)
	if err := other.Restore(snap); err != nil {
		t.Fatalf("restore: %v", err)
	}
	if got := other.Uint64(); got != want {
		t.Fatalf("restored stream mismatch: got %d want %d", got, want)
	}

	if err := other.Restore([]byte{1, 2, 3}); err == nil {
		t.Fatalf("expected error for short snapshot")
	}
}

func TestUint64NBounds(t *testing.T) {
	r := NewWyRand(5)
	if got := r.Uint64N(0); got != 0 {
		t.Fatalf("Uint64N(0) = %d", got)
	}
	for i := 0; i < 10000; i++ {
		if got := r.Uint64N(7); got >= 7 {
			t.Fatalf("Uint64N(7) out of range: %d", got)
		}
	}
	// power-of-two fast path
	for i := 0; i < 10000; i++ {
		if got := r.Uint64N(1 << 23); got >= 1<<23 {
			t.Fatalf("Uint64N(1<<23) out of range: %d", got)
		}
	}
}

func TestUintInBounds(t *testing.T) {
	r := NewWyRand(11)
	for i := 0; i < 10000; i++ {
		v := UintIn[uint8](r, 2, 255)
		if v < 2 || v >= 255 {
			t.Fatalf("UintIn out of range: %d", v)
		}
	}
	for i := 0; i < 10000; i++ {
		v := UintIn[uint64](r, 2, 1<<63)
		if v < 2 || v >= 1<<63 {
			t.Fatalf("UintIn out of range: %d", v)
		}
	}
}

func TestIntInBounds(t *testing.T) {
	r := NewWyRand(13)
	for i := 0; i < 10000; i++ {
		v := IntIn[int8](r, -127, -1)
		if v < -127 || v >= -1 {
			t.Fatalf("IntIn out of range: %d", v)
		}
	}
	for i := 0; i < 10000; i++ {
		v := IntIn[int64](r, -1<<62, 1<<62)
		if v < -1<<62 || v >= 1<<62 {
			t.Fatalf("IntIn out of range: %d", v)
		}
	}
}

func TestU128NBounds(t *testing.T) {
	r := NewWyRand(17)
	if got := U128N(r, num.U128{}); !got.IsZero() {
		t.Fatalf("U128N(0) = %v", got)
	}
	// 64-bit fast path
	small := num.U128From64(1000)
	for i := 0; i < 1000; i++ {
		if got := U128N(r, small); got.GreaterOrEqualTo(small) {
			t.Fatalf("U128N small out of range: %v", got)
		}
	}
	// wide path
	wide := num.U128FromRaw(1<<40, 0)
	for i := 0; i < 1000; i++ {
		if got := U128N(r, wide); got.GreaterOrEqualTo(wide) {
			t.Fatalf("U128N wide out of range: %v", got)
		}
	}
}

func TestI128InBounds(t *testing.T) {
	r := NewWyRand(19)
	lo := num.MinI128.Inc()
	hi := num.I128From64(-1)
	for i := 0; i < 1000; i++ {
		v := I128In(r, lo, hi)
		if v.LessThan(lo) || v.GreaterOrEqualTo(hi) {
			t.Fatalf("I128In out of range: %v", v)
		}
	}
	lo2 := num.I128From64(2)
	hi2 := num.MaxI128
	for i := 0; i < 1000; i++ {
		v := I128In(r, lo2, hi2)
		if v.LessThan(lo2) || v.GreaterOrEqualTo(hi2) {
			t.Fatalf("I128In out of range: %v", v)
		}
	}
}
