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

package stats

import (
	"bytes"
	"encoding/json"
	"math"
	"testing"

	num "github.com/shabbyrobe/go-num"

	"github.com/zintix-labs/edgelab/profile"
)

func TestFloatClassification(t *testing.T) {
	c := NewCollector(profile.F32)

	c.RecordFloat32(1.5)                                 // normal
	c.RecordFloat32(math.Float32frombits(1))             // subnormal
	c.RecordFloat32(math.Float32frombits(0x7FC00001))    // quiet NaN
	c.RecordFloat32(math.Float32frombits(0x7F800001))    // signaling NaN
	c.RecordFloat32(float32(math.Inf(1)))                // special (+inf)
	c.RecordFloat32(1.0)                                 // special (1)，優先於 normal
	c.RecordFloat32(math.Float32frombits(0x00800000))    // special (min-normal)
	c.RecordFloat32(math.Float32frombits(0x80000000))    // special (-0)

	want := []int{1, 1, 1, 1, 4}
	for i, n := range want {
		if c.cats[i] != n {
			t.Fatalf("cat %s: got %d, want %d", floatCats[i], c.cats[i], n)
		}
	}
	if c.rounds != 8 {
		t.Fatalf("rounds: %d", c.rounds)
	}
}

func TestIntClassification(t *testing.T) {
	c := NewCollector(profile.I8)
	for _, v := range []int64{0, 1, -1, math.MinInt8, math.MaxInt8} {
		c.RecordInt(v)
	}
	c.RecordInt(42)
	c.RecordInt(-42)

	if c.cats[scSpecial] != 5 || c.cats[scPositive] != 1 || c.cats[scNegative] != 1 {
		t.Fatalf("cats: %v", c.cats)
	}
	for i, n := range c.specials {
		if n != 1 {
			t.Fatalf("special %s hit %d times", signedSpecialNames[i], n)
		}
	}
}

func TestIntCoverageStaysInWidth(t *testing.T) {
	c := NewCollector(profile.I8)
	c.RecordInt(-1) // 0xFF at width 8
	if c.covLo != 0xFF {
		t.Fatalf("coverage: %#x", c.covLo)
	}
}

func TestU128Classification(t *testing.T) {
	c := NewCollector(profile.U128)
	c.RecordU128(num.U128{})
	c.RecordU128(num.U128From64(1))
	c.RecordU128(num.MaxU128)
	c.RecordU128(num.U128From64(7))

	if c.cats[ucSpecial] != 3 || c.cats[ucGeneral] != 1 {
		t.Fatalf("cats: %v", c.cats)
	}
	if !c.Report("t", 0).Summary.CoverageFull {
		t.Fatalf("MaxU128 must saturate coverage")
	}
}

func TestMerge(t *testing.T) {
	a := NewCollector(profile.U8)
	b := NewCollector(profile.U8)
	a.RecordUint(0)
	b.RecordUint(math.MaxUint8)
	b.RecordUint(9)

	if err := a.Merge(b); err != nil {
		t.Fatalf("merge: %v", err)
	}
	if a.rounds != 3 || a.cats[ucSpecial] != 2 || a.cats[ucGeneral] != 1 {
		t.Fatalf("merged: rounds=%d cats=%v", a.rounds, a.cats)
	}
	if a.covLo != 0xFF|9 {
		t.Fatalf("merged coverage: %#x", a.covLo)
	}

	other := NewCollector(profile.U16)
	if err := a.Merge(other); err == nil {
		t.Fatalf("kind mismatch must fail")
	}
}

func TestReportFractions(t *testing.T) {
	c := NewCollector(profile.U8)
	for i := 0; i < 30; i++ {
		c.RecordUint(0)
	}
	for i := 0; i < 70; i++ {
		c.RecordUint(50)
	}
	r := c.Report("mix", 7)

	if r.Summary.Rounds != 100 || r.Summary.Seed != 7 {
		t.Fatalf("summary: %+v", r.Summary)
	}
	sp := r.Categories[ucSpecial]
	if sp.Frac != 0.3 {
		t.Fatalf("special frac: %v", sp.Frac)
	}
	if sp.CI.Lo >= 0.3 || sp.CI.Hi <= 0.3 {
		t.Fatalf("CI must bracket the point estimate: %+v", sp.CI)
	}
}

func TestProportionCIBounds(t *testing.T) {
	hat, ci := ProportionCI(0, 100, 0.95)
	if hat != 0 || ci.Lo != 0 || ci.Hi <= 0 || ci.Hi > 0.1 {
		t.Fatalf("k=0: hat=%v ci=%+v", hat, ci)
	}
	hat, ci = ProportionCI(100, 100, 0.95)
	if hat != 1 || ci.Hi != 1 || ci.Lo >= 1 || ci.Lo < 0.9 {
		t.Fatalf("k=n: hat=%v ci=%+v", hat, ci)
	}
}

func TestRenderers(t *testing.T) {
	c := NewCollector(profile.F64)
	c.RecordFloat64(1.5)
	r := c.Report("render", 1)

	var buf bytes.Buffer
	if err := r.WriteWith(&buf, &JsonReportRender{}); err != nil {
		t.Fatalf("json render: %v", err)
	}
	var back Report
	if err := json.Unmarshal(buf.Bytes(), &back); err != nil {
		t.Fatalf("json round trip: %v", err)
	}
	if back.Summary.Profile != "render" {
		t.Fatalf("round trip summary: %+v", back.Summary)
	}

	buf.Reset()
	if err := r.WriteWith(&buf, &YAMLReportRender{}); err != nil {
		t.Fatalf("yaml render: %v", err)
	}
	if buf.Len() == 0 {
		t.Fatalf("yaml render produced nothing")
	}
}
