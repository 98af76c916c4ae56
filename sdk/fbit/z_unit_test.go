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

package fbit

import (
	"math"
	"testing"
)

func TestEqual32DistinguishesZeroSigns(t *testing.T) {
	negZero := math.Float32frombits(SignMask32)
	if Equal32(0, negZero) {
		t.Fatalf("+0 and -0 must differ bitwise")
	}
	if !Equal32(negZero, negZero) {
		t.Fatalf("-0 must equal itself")
	}
}

func TestEqual64MatchesNaNPayloads(t *testing.T) {
	a := math.Float64frombits(ExpMask64 | 1)
	b := math.Float64frombits(ExpMask64 | 2)
	if Equal64(a, b) {
		t.Fatalf("distinct NaN payloads must differ")
	}
	if !Equal64(a, a) {
		t.Fatalf("a NaN must equal its own bit pattern")
	}
}

func TestIsNaN32(t *testing.T) {
	if !IsNaN32(float32(math.NaN())) {
		t.Fatalf("runtime NaN not recognized")
	}
	if IsNaN32(float32(math.Inf(1))) {
		t.Fatalf("infinity misclassified as NaN")
	}
	// 指數全 1 但 mantissa 為零是無窮大，不是 NaN
	if IsNaN32(math.Float32frombits(ExpMask32)) {
		t.Fatalf("exp-only pattern misclassified as NaN")
	}
}

func TestIsSignalingNaN(t *testing.T) {
	snan32 := math.Float32frombits(ExpMask32 | 1)
	qnan32 := math.Float32frombits(ExpMask32 | QuietBit32 | 1)
	if !IsSignalingNaN32(snan32) {
		t.Fatalf("quiet bit clear, payload set: must be signaling")
	}
	if IsSignalingNaN32(qnan32) {
		t.Fatalf("quiet bit set: must not be signaling")
	}

	snan64 := math.Float64frombits(ExpMask64 | 1)
	qnan64 := math.Float64frombits(ExpMask64 | QuietBit64 | 1)
	if !IsSignalingNaN64(snan64) {
		t.Fatalf("quiet bit clear, payload set: must be signaling")
	}
	if IsSignalingNaN64(qnan64) {
		t.Fatalf("quiet bit set: must not be signaling")
	}
}

func TestIsSubnormal(t *testing.T) {
	if !IsSubnormal32(math.Float32frombits(1)) {
		t.Fatalf("smallest positive subnormal not recognized")
	}
	if !IsSubnormal64(math.Float64frombits(SignMask64 | 1)) {
		t.Fatalf("negative subnormal not recognized")
	}
	if IsSubnormal32(0) {
		t.Fatalf("zero is not subnormal")
	}
	if IsSubnormal64(1.0) {
		t.Fatalf("1.0 is not subnormal")
	}
}

func TestIsNormal(t *testing.T) {
	if !IsNormal32(1.5) || !IsNormal64(-2.25) {
		t.Fatalf("ordinary values must be normal")
	}
	if IsNormal32(0) {
		t.Fatalf("zero has all-zero exponent")
	}
	if IsNormal64(math.Inf(-1)) {
		t.Fatalf("infinity has all-ones exponent")
	}
	// 最小正規值剛好落在界線上
	if !IsNormal64(math.Float64frombits(0x0010000000000000)) {
		t.Fatalf("min positive normal must be normal")
	}
}

func TestIsInf(t *testing.T) {
	if !IsInf32(float32(math.Inf(1))) || !IsInf64(math.Inf(-1)) {
		t.Fatalf("infinities not recognized")
	}
	if IsInf32(float32(math.NaN())) || IsInf64(math.MaxFloat64) {
		t.Fatalf("non-infinity misclassified")
	}
}
