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

package sampler

import (
	"testing"

	"github.com/zintix-labs/edgelab/sdk/core"
)

func TestCategoricalProportions(t *testing.T) {
	c := NewCategorical([]int{1, 3, 0, 4})
	r := core.NewWyRand(0x29_21_f1_bd_8b_a9_c6_b6)

	counts := make([]int, c.Len())
	const n = 80000
	for i := 0; i < n; i++ {
		counts[c.Pick(r)]++
	}

	if counts[2] != 0 {
		t.Fatalf("zero-weight category picked %d times", counts[2])
	}
	// 期望值 1/8, 3/8, 0, 4/8，容忍 ±2% 的抽樣誤差
	checks := []struct {
		idx  int
		want float64
	}{{0, 0.125}, {1, 0.375}, {3, 0.5}}
	for _, ck := range checks {
		got := float64(counts[ck.idx]) / n
		if got < ck.want-0.02 || got > ck.want+0.02 {
			t.Fatalf("category %d: got ratio %.4f, want ~%.4f", ck.idx, got, ck.want)
		}
	}
}

func TestCategoricalSingleCategory(t *testing.T) {
	c := NewCategorical([]uint8{7})
	r := core.NewWyRand(1)
	for i := 0; i < 100; i++ {
		if got := c.Pick(r); got != 0 {
			t.Fatalf("got %d, want 0", got)
		}
	}
}

func TestCategoricalDeterminism(t *testing.T) {
	c := NewCategorical([]int{25, 25, 25, 25})
	r1 := core.NewWyRand(42)
	r2 := core.NewWyRand(42)
	for i := 0; i < 1000; i++ {
		if c.Pick(r1) != c.Pick(r2) {
			t.Fatalf("pick sequence diverged at %d", i)
		}
	}
}

func TestCategoricalPanics(t *testing.T) {
	mustPanic := func(name string, fn func()) {
		defer func() {
			if recover() == nil {
				t.Fatalf("%s: expected panic", name)
			}
		}()
		fn()
	}
	mustPanic("empty", func() { NewCategorical([]int{}) })
	mustPanic("negative", func() { NewCategorical([]int{1, -1}) })
	mustPanic("all zero", func() { NewCategorical([]int{0, 0, 0}) })
}
