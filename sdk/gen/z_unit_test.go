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

package gen

import (
	"math"
	"testing"

	num "github.com/shabbyrobe/go-num"

	"github.com/zintix-labs/edgelab/sdk/fbit"
)

// seed 0 是固定的回歸校準點。

func TestNaNFloat32Seed0(t *testing.T) {
	g := NewWithSeed(0)
	if v := g.NaNFloat32(); !fbit.IsNaN32(v) {
		t.Fatalf("not NaN: %032b", math.Float32bits(v))
	}
}

func TestNaNFloat64Seed0(t *testing.T) {
	g := NewWithSeed(0)
	if v := g.NaNFloat64(); !fbit.IsNaN64(v) {
		t.Fatalf("not NaN: %064b", math.Float64bits(v))
	}
}

func TestSubnormalFloat32Seed0(t *testing.T) {
	g := NewWithSeed(0)
	if v := g.SubnormalFloat32(); !fbit.IsSubnormal32(v) {
		t.Fatalf("not subnormal: %032b", math.Float32bits(v))
	}
}

func TestSubnormalFloat64Seed0(t *testing.T) {
	g := NewWithSeed(0)
	if v := g.SubnormalFloat64(); !fbit.IsSubnormal64(v) {
		t.Fatalf("not subnormal: %064b", math.Float64bits(v))
	}
}

func TestNormalFloat32Seed0(t *testing.T) {
	g := NewWithSeed(0)
	if v := g.NormalFloat32(); fbit.IsSubnormal32(v) {
		t.Fatalf("normal constructor produced subnormal: %032b", math.Float32bits(v))
	}
}

func TestNormalFloat64Seed0(t *testing.T) {
	g := NewWithSeed(0)
	if v := g.NormalFloat64(); fbit.IsSubnormal64(v) {
		t.Fatalf("normal constructor produced subnormal: %064b", math.Float64bits(v))
	}
}

func TestDeterminism(t *testing.T) {
	g1 := NewWithSeed(0x8e_bd_46_37_50_b4_9b_1a)
	g2 := NewWithSeed(0x8e_bd_46_37_50_b4_9b_1a)
	for i := 0; i < 1000; i++ {
		if !fbit.Equal64(g1.Float64(), g2.Float64()) {
			t.Fatalf("float64 sequence diverged at %d", i)
		}
		if g1.Int32() != g2.Int32() {
			t.Fatalf("int32 sequence diverged at %d", i)
		}
		if !g1.Uint128().Equal(g2.Uint128()) {
			t.Fatalf("u128 sequence diverged at %d", i)
		}
	}
}

func TestGetSeedRoundTrip(t *testing.T) {
	g := NewWithSeed(0x0b_65_58_2b_4e_d8_20_fe)
	for i := 0; i < 13; i++ {
		g.Float32()
	}
	replay := NewWithSeed(g.GetSeed())
	for i := 0; i < 100; i++ {
		if !fbit.Equal32(g.Float32(), replay.Float32()) {
			t.Fatalf("replayed trajectory diverged at %d", i)
		}
	}
}

func TestForkIndependence(t *testing.T) {
	g := NewWithSeed(0x36_44_3e_f8_40_af_6e_49)
	plain := NewWithSeed(0x36_44_3e_f8_40_af_6e_49)

	child := g.Fork()
	// fork 必須推進父串流：之後的輸出與未 fork 的軌跡不同
	if g.Uint64() == plain.Uint64() {
		t.Fatalf("fork did not advance parent state")
	}

	// 子串流由父串流 fork 前的狀態決定，可重現
	replay := NewWithSeed(0x36_44_3e_f8_40_af_6e_49)
	replayChild := replay.Fork()
	for i := 0; i < 100; i++ {
		if child.Uint64() != replayChild.Uint64() {
			t.Fatalf("child stream not reproducible at %d", i)
		}
	}
}

func TestNaNFloat32IsAlwaysNaN(t *testing.T) {
	g := NewWithSeed(0x0b_65_58_2b_4e_d8_20_fe)
	for i := 0; i < 10000; i++ {
		v := g.NaNFloat32()
		if !fbit.IsNaN32(v) {
			t.Fatalf("%d: %032b", i, math.Float32bits(v))
		}
		if math.Float32bits(v)&fbit.MantMask32 == 0 {
			t.Fatalf("%d: zero mantissa (infinity)", i)
		}
	}
}

func TestNaNFloat64IsAlwaysNaN(t *testing.T) {
	g := NewWithSeed(0x36_44_3e_f8_40_af_6e_49)
	for i := 0; i < 10000; i++ {
		v := g.NaNFloat64()
		if !fbit.IsNaN64(v) {
			t.Fatalf("%d: %064b", i, math.Float64bits(v))
		}
		if math.Float64bits(v)&fbit.MantMask64 == 0 {
			t.Fatalf("%d: zero mantissa (infinity)", i)
		}
	}
}

func TestNaNFloat32Coverage(t *testing.T) {
	g := NewWithSeed(0x29_21_f1_bd_8b_a9_c6_b6)
	var coverage uint32
	for i := 0; i < 10000; i++ {
		coverage |= math.Float32bits(g.NaNFloat32())
	}
	// 次數夠多時，sign 與 mantissa 的每個 bit 都應至少出現一次
	if coverage != math.MaxUint32 {
		t.Fatalf("coverage: %032b", coverage)
	}
}

func TestNaNFloat64Coverage(t *testing.T) {
	g := NewWithSeed(0x6f_35_67_53_e6_37_13_c3)
	var coverage uint64
	for i := 0; i < 10000; i++ {
		coverage |= math.Float64bits(g.NaNFloat64())
	}
	if coverage != math.MaxUint64 {
		t.Fatalf("coverage: %064b", coverage)
	}
}

func TestSubnormalFloat32IsAlwaysSubnormal(t *testing.T) {
	g := NewWithSeed(0x52_58_4a_d1_55_e1_72_10)
	for i := 0; i < 10000; i++ {
		v := g.SubnormalFloat32()
		if !fbit.IsSubnormal32(v) {
			t.Fatalf("%d: %032b", i, math.Float32bits(v))
		}
	}
}

func TestSubnormalFloat64IsAlwaysSubnormal(t *testing.T) {
	g := NewWithSeed(0x2d_46_cc_c0_45_c5_ec_03)
	for i := 0; i < 10000; i++ {
		v := g.SubnormalFloat64()
		if !fbit.IsSubnormal64(v) {
			t.Fatalf("%d: %064b", i, math.Float64bits(v))
		}
	}
}

func TestSubnormalFloat32Coverage(t *testing.T) {
	g := NewWithSeed(0x98_fb_6b_ef_ac_5d_81_f3)
	coverage := fbit.ExpMask32 // 指數域永遠為零，先補滿再驗其餘 bit
	for i := 0; i < 10000; i++ {
		coverage |= math.Float32bits(g.SubnormalFloat32())
	}
	if coverage != math.MaxUint32 {
		t.Fatalf("coverage: %032b", coverage)
	}
}

func TestSubnormalFloat64Coverage(t *testing.T) {
	g := NewWithSeed(0x7a_07_58_14_f4_b8_2f_49)
	coverage := fbit.ExpMask64
	for i := 0; i < 10000; i++ {
		coverage |= math.Float64bits(g.SubnormalFloat64())
	}
	if coverage != math.MaxUint64 {
		t.Fatalf("coverage: %064b", coverage)
	}
}

func TestNormalFloat32IsAlwaysNormal(t *testing.T) {
	g := NewWithSeed(0x2c_fe_59_bb_7a_56_28_20)
	for i := 0; i < 10000; i++ {
		v := g.NormalFloat32()
		if !fbit.IsNormal32(v) {
			t.Fatalf("%d: %032b", i, math.Float32bits(v))
		}
	}
}

func TestNormalFloat64IsAlwaysNormal(t *testing.T) {
	g := NewWithSeed(0xa9_26_d1_d9_7b_d7_94_15)
	for i := 0; i < 10000; i++ {
		v := g.NormalFloat64()
		if !fbit.IsNormal64(v) {
			t.Fatalf("%d: %064b", i, math.Float64bits(v))
		}
	}
}

func TestNormalFloat32Coverage(t *testing.T) {
	g := NewWithSeed(0x15_63_e3_11_09_cb_11_b5)
	var coverage uint32
	for i := 0; i < 10000; i++ {
		coverage |= math.Float32bits(g.NormalFloat32())
	}
	if coverage != math.MaxUint32 {
		t.Fatalf("coverage: %032b", coverage)
	}
}

func TestNormalFloat64Coverage(t *testing.T) {
	g := NewWithSeed(0x56_e5_19_b1_47_f2_5e_0d)
	var coverage uint64
	for i := 0; i < 10000; i++ {
		coverage |= math.Float64bits(g.NormalFloat64())
	}
	if coverage != math.MaxUint64 {
		t.Fatalf("coverage: %064b", coverage)
	}
}

func TestSpecialFloat32Completeness(t *testing.T) {
	g := NewWithSeed(0x90_ae_72_03_34_a0_d7_4b)
	var hits [12]int
	for i := 0; i < 10000; i++ {
		v := g.SpecialFloat32()
		found := false
		for j, want := range SpecialFloat32Values {
			if fbit.Equal32(v, want) {
				hits[j]++
				found = true
				break
			}
		}
		if !found {
			t.Fatalf("value outside special set: %032b", math.Float32bits(v))
		}
	}
	for j, n := range hits {
		if n == 0 {
			t.Fatalf("special value %d never produced", j)
		}
	}
}

func TestSpecialFloat64Completeness(t *testing.T) {
	g := NewWithSeed(0x10_6c_a1_34_a5_6d_03_97)
	var hits [12]int
	for i := 0; i < 10000; i++ {
		v := g.SpecialFloat64()
		found := false
		for j, want := range SpecialFloat64Values {
			if fbit.Equal64(v, want) {
				hits[j]++
				found = true
				break
			}
		}
		if !found {
			t.Fatalf("value outside special set: %064b", math.Float64bits(v))
		}
	}
	for j, n := range hits {
		if n == 0 {
			t.Fatalf("special value %d never produced", j)
		}
	}
}

func TestFloat32CategoryMix(t *testing.T) {
	g := NewWithSeed(0x7c_65_54_c7_d6_a9_d4_b7)

	var hadNormal, hadSubnormal, hadNaN, hadSpecial bool
	for i := 0; i < 10000; i++ {
		v := g.Float32()
		hadNormal = hadNormal || (fbit.IsNormal32(v) && !fbit.IsNaN32(v))
		hadSubnormal = hadSubnormal || fbit.IsSubnormal32(v)
		hadNaN = hadNaN || fbit.IsNaN32(v)
		for _, s := range SpecialFloat32Values {
			if fbit.Equal32(v, s) {
				hadSpecial = true
				break
			}
		}
	}
	if !hadNormal || !hadSubnormal || !hadNaN || !hadSpecial {
		t.Fatalf("missing category: normal=%v subnormal=%v nan=%v special=%v",
			hadNormal, hadSubnormal, hadNaN, hadSpecial)
	}
}

func TestFloat64CategoryMix(t *testing.T) {
	g := NewWithSeed(0x9a_a4_ee_0f_08_ba_d9_de)

	var hadNormal, hadSubnormal, hadNaN, hadSpecial bool
	for i := 0; i < 10000; i++ {
		v := g.Float64()
		hadNormal = hadNormal || (fbit.IsNormal64(v) && !fbit.IsNaN64(v))
		hadSubnormal = hadSubnormal || fbit.IsSubnormal64(v)
		hadNaN = hadNaN || fbit.IsNaN64(v)
		for _, s := range SpecialFloat64Values {
			if fbit.Equal64(v, s) {
				hadSpecial = true
				break
			}
		}
	}
	if !hadNormal || !hadSubnormal || !hadNaN || !hadSpecial {
		t.Fatalf("missing category: normal=%v subnormal=%v nan=%v special=%v",
			hadNormal, hadSubnormal, hadNaN, hadSpecial)
	}
}

func TestSpecialInt8SetExactness(t *testing.T) {
	g := NewWithSeed(0x29_2d_3a_df_ed_dd_c0_82)
	seen := map[int8]bool{}
	for i := 0; i < 10000; i++ {
		v := g.SpecialInt8()
		switch v {
		case 0, 1, -1, math.MinInt8, math.MaxInt8:
			seen[v] = true
		default:
			t.Fatalf("value outside special set: %d", v)
		}
	}
	if len(seen) != 5 {
		t.Fatalf("incomplete special set after 10k draws: %v", seen)
	}
}

func TestSpecialUint8SetExactness(t *testing.T) {
	g := NewWithSeed(0x29_2d_3a_df_ed_dd_c0_82)
	seen := map[uint8]bool{}
	for i := 0; i < 10000; i++ {
		v := g.SpecialUint8()
		switch v {
		case 0, 1, math.MaxUint8:
			seen[v] = true
		default:
			t.Fatalf("value outside special set: %d", v)
		}
	}
	if len(seen) != 3 {
		t.Fatalf("incomplete special set after 10k draws: %v", seen)
	}
}

func TestGeneralInt8ExcludesSentinels(t *testing.T) {
	g := NewWithSeed(0x8e_bd_46_37_50_b4_9b_1a)
	for i := 0; i < 10000; i++ {
		switch v := g.GeneralInt8(); v {
		case 0, 1, -1, math.MinInt8, math.MaxInt8:
			t.Fatalf("%d: sentinel leaked into general range: %d", i, v)
		}
	}
}

func TestGeneralInt64ExcludesSentinels(t *testing.T) {
	g := NewWithSeed(0xf5_31_9e_51_c4_1f_9e_35)
	for i := 0; i < 10000; i++ {
		switch v := g.GeneralInt64(); v {
		case 0, 1, -1, math.MinInt64, math.MaxInt64:
			t.Fatalf("%d: sentinel leaked into general range: %d", i, v)
		}
	}
}

func TestGeneralUint8ExcludesSentinels(t *testing.T) {
	g := NewWithSeed(0x69_1b_e9_82_15_ed_a0_7d)
	for i := 0; i < 10000; i++ {
		switch v := g.GeneralUint8(); v {
		case 0, 1, math.MaxUint8:
			t.Fatalf("%d: sentinel leaked into general range: %d", i, v)
		}
	}
}

func TestIntValueMix(t *testing.T) {
	g := NewWithSeed(0x2c_fe_59_bb_7a_56_28_20)
	var hadSpecial, hadPos, hadNeg bool
	for i := 0; i < 10000; i++ {
		switch v := g.Int16(); {
		case v == 0 || v == 1 || v == -1 || v == math.MinInt16 || v == math.MaxInt16:
			hadSpecial = true
		case v > 1:
			hadPos = true
		default:
			hadNeg = true
		}
	}
	if !hadSpecial || !hadPos || !hadNeg {
		t.Fatalf("missing category: special=%v pos=%v neg=%v", hadSpecial, hadPos, hadNeg)
	}
}

func TestSpecialUint128SetExactness(t *testing.T) {
	g := NewWithSeed(0x90_ae_72_03_34_a0_d7_4b)
	seen := map[string]bool{}
	for i := 0; i < 10000; i++ {
		v := g.SpecialUint128()
		if !v.IsZero() && !v.Equal(one128U) && !v.Equal(num.MaxU128) {
			t.Fatalf("value outside special set: %v", v)
		}
		seen[v.String()] = true
	}
	if len(seen) != 3 {
		t.Fatalf("incomplete special set after 10k draws: %v", seen)
	}
}

func TestGeneralInt128ExcludesSentinels(t *testing.T) {
	g := NewWithSeed(0x10_6c_a1_34_a5_6d_03_97)
	for i := 0; i < 10000; i++ {
		v := g.GeneralInt128()
		if v.IsZero() || v.Equal(one128I) || v.Equal(neg128I) ||
			v.Equal(num.MinI128) || v.Equal(num.MaxI128) {
			t.Fatalf("%d: sentinel leaked into general range: %v", i, v)
		}
	}
}

func TestInt128ValueMix(t *testing.T) {
	g := NewWithSeed(0x56_e5_19_b1_47_f2_5e_0d)
	var hadSpecial, hadPos, hadNeg bool
	for i := 0; i < 10000; i++ {
		v := g.Int128()
		switch {
		case v.IsZero() || v.Equal(one128I) || v.Equal(neg128I) ||
			v.Equal(num.MinI128) || v.Equal(num.MaxI128):
			hadSpecial = true
		case v.Sign() > 0:
			hadPos = true
		default:
			hadNeg = true
		}
	}
	if !hadSpecial || !hadPos || !hadNeg {
		t.Fatalf("missing category: special=%v pos=%v neg=%v", hadSpecial, hadPos, hadNeg)
	}
}
