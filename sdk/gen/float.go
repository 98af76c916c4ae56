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

	"github.com/zintix-labs/edgelab/sdk/fbit"
)

// SpecialFloat32Values 是 SpecialFloat32 的固定列舉集合（依索引均勻選取）。
//
// 順序即選取索引：+0, -0, +Inf, -Inf, 1, -1, 最小有限值, 最大有限值,
// 最小正 normal, 其負值, epsilon（1 與下一個可表示值的距離）, 其負值。
// 匯出供統計層與測試做 bit-exact 比對。
var SpecialFloat32Values = [12]float32{
	0.0,
	math.Float32frombits(fbit.SignMask32), // -0.0
	float32(math.Inf(1)),
	float32(math.Inf(-1)),
	1.0,
	-1.0,
	-math.MaxFloat32,
	math.MaxFloat32,
	math.Float32frombits(0x0080_0000), // 最小正 normal
	math.Float32frombits(0x8080_0000),
	math.Float32frombits(0x3400_0000), // epsilon = 2^-23
	math.Float32frombits(0xB400_0000),
}

// SpecialFloat64Values 是 SpecialFloat64 的固定列舉集合，順序同 32-bit 版。
var SpecialFloat64Values = [12]float64{
	0.0,
	math.Float64frombits(fbit.SignMask64), // -0.0
	math.Inf(1),
	math.Inf(-1),
	1.0,
	-1.0,
	-math.MaxFloat64,
	math.MaxFloat64,
	math.Float64frombits(0x0010_0000_0000_0000), // 最小正 normal
	math.Float64frombits(0x8010_0000_0000_0000),
	math.Float64frombits(0x3CB0_0000_0000_0000), // epsilon = 2^-52
	math.Float64frombits(0xBCB0_0000_0000_0000),
}

// NaNFloat32 產生隨機的 f32 NaN。
//
// NaN 有多種等價的 bit pattern。本方法覆蓋 IEEE-754 定義的「所有」合法
// NaN pattern（任一符號位、任一非零 mantissa，含 quiet 與 signaling 兩種），
// 連一般程式不會自然產生的 payload 也包含在內。覆蓋是「最終覆蓋」保證：
// 足夠多次呼叫後每個 pattern 都可能出現，單次呼叫不保證任何特定值。
func (g *Gen) NaNFloat32() float32 {
	sign := uint32(g.src.Uint64N(2)) << 31

	// mantissa 全零是 INFINITY 不是 NaN！下界從 1 起跳
	mant := uint32(1 + g.src.Uint64N(1<<23-1))

	return math.Float32frombits(sign | fbit.ExpMask32 | mant)
}

// NaNFloat64 產生隨機的 f64 NaN，規則同 NaNFloat32（mantissa 為 52 bits）。
func (g *Gen) NaNFloat64() float64 {
	sign := g.src.Uint64N(2) << 63

	// mantissa 全零是 INFINITY 不是 NaN！下界從 1 起跳
	mant := 1 + g.src.Uint64N(1<<52-1)

	return math.Float64frombits(sign | fbit.ExpMask64 | mant)
}

// SubnormalFloat32 產生隨機的 f32 subnormal（denormal）。
// 覆蓋 IEEE-754 定義的所有 subnormal pattern。
func (g *Gen) SubnormalFloat32() float32 {
	sign := uint32(g.src.Uint64N(2)) << 31

	// mantissa 全零是 ±0 不是 subnormal！下界從 1 起跳
	mant := uint32(1 + g.src.Uint64N(1<<23-1))

	return math.Float32frombits(sign | mant)
}

// SubnormalFloat64 產生隨機的 f64 subnormal（denormal）。
func (g *Gen) SubnormalFloat64() float64 {
	sign := g.src.Uint64N(2) << 63

	// mantissa 全零是 ±0 不是 subnormal！下界從 1 起跳
	mant := 1 + g.src.Uint64N(1<<52-1)

	return math.Float64frombits(sign | mant)
}

// NormalFloat32 產生隨機的 f32 normal 值。
func (g *Gen) NormalFloat32() float32 {
	sign := uint32(g.src.Uint64N(2)) << 31

	// 指數域全零（subnormal/零）與全一（Inf/NaN）都不是 normal，
	// 合法範圍是 [1, 0xFE]
	exp := uint32(1+g.src.Uint64N(0xFE)) << 23

	mant := uint32(g.src.Uint64N(1 << 23))
	return math.Float32frombits(sign | exp | mant)
}

// NormalFloat64 產生隨機的 f64 normal 值。
func (g *Gen) NormalFloat64() float64 {
	sign := g.src.Uint64N(2) << 63

	// 指數域合法範圍是 [1, 0x7FE]（排除全零與全一）
	exp := (1 + g.src.Uint64N(0x7FE)) << 52

	mant := g.src.Uint64N(1 << 52)
	return math.Float64frombits(sign | exp | mant)
}

// SpecialFloat32 產生隨機的 f32「特殊值」。
//
// 特殊值指表示法上獨特、靠機率幾乎抽不到、且帶有不尋常性質的固定值，
// 例如 ±0、±Inf 與型別極值。由 SpecialFloat32Values 依索引均勻選取。
func (g *Gen) SpecialFloat32() float32 {
	return SpecialFloat32Values[g.src.Uint64N(12)]
}

// SpecialFloat64 產生隨機的 f64「特殊值」，集合同 SpecialFloat32。
func (g *Gen) SpecialFloat64() float64 {
	return SpecialFloat64Values[g.src.Uint64N(12)]
}

// Float32 產生隨機 f32，讓特殊/有問題的值遠比一般情況常見。
//
// 分佈如下（每次抽取獨立、均勻分到四類）：
//   - 25% normal
//   - 25% subnormal
//   - 25% NaN（含所有 payload、quiet 與 signaling）
//   - 25% 特殊值（±Inf、-0.0 等獨特值）
//
// 此分佈不具統計意義；它只確保所有邊角值都有公平的出現機會。
func (g *Gen) Float32() float32 {
	switch g.src.Uint64N(4) {
	case 0:
		return g.NormalFloat32()
	case 1:
		return g.SubnormalFloat32()
	case 2:
		return g.NaNFloat32()
	default:
		return g.SpecialFloat32()
	}
}

// Float64 產生隨機 f64，分佈同 Float32。
func (g *Gen) Float64() float64 {
	switch g.src.Uint64N(4) {
	case 0:
		return g.NormalFloat64()
	case 1:
		return g.SubnormalFloat64()
	case 2:
		return g.NaNFloat64()
	default:
		return g.SpecialFloat64()
	}
}
