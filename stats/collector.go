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
	"math"

	num "github.com/shabbyrobe/go-num"

	"github.com/zintix-labs/edgelab/errs"
	"github.com/zintix-labs/edgelab/profile"
	"github.com/zintix-labs/edgelab/sdk/fbit"
	"github.com/zintix-labs/edgelab/sdk/gen"
)

// 各型別家族的類別標籤，Report 依這裡的順序輸出。
var (
	floatCats    = []string{"normal", "subnormal", "quiet-nan", "signaling-nan", "special"}
	signedCats   = []string{"special", "positive", "negative"}
	unsignedCats = []string{"special", "general"}

	floatSpecialNames = []string{
		"+0", "-0", "+inf", "-inf", "1", "-1",
		"-max", "max", "min-normal", "-min-normal", "eps", "-eps",
	}
	signedSpecialNames   = []string{"0", "1", "max", "-1", "min"}
	unsignedSpecialNames = []string{"0", "1", "max"}
)

// Collector 對發射出的每個值做分類累計。
//
// 紀錄時只做整數計數與 bitmask OR，避免轉型成本；
// 統計完成後由 Report() 一次性換算比例與信賴區間。
// 單一 Collector 不是併發安全的，多 worker 請一人一個再 Merge。
type Collector struct {
	kind   profile.Kind
	rounds int

	cats     []int // 對應 catNames 的計數
	specials []int // 對應 specialNames 的計數

	// 覆蓋度 bitmask：OR 所有看過的 bit pattern。
	// 128-bit 型別同時使用兩個字，其餘只用 covLo。
	covLo, covHi uint64

	width  int // 型別位寬
	signed bool
	minI   int64 // 有號型別的 MIN/MAX（位寬內）
	maxI   int64
	maxU   uint64 // 無號型別的 MAX（位寬內）
}

// NewCollector 依型別建一個空的 Collector。
func NewCollector(kind profile.Kind) *Collector {
	c := &Collector{kind: kind}

	switch kind {
	case profile.F32:
		c.width = 32
	case profile.F64:
		c.width = 64
	case profile.U8:
		c.width, c.maxU = 8, math.MaxUint8
	case profile.U16:
		c.width, c.maxU = 16, math.MaxUint16
	case profile.U32:
		c.width, c.maxU = 32, math.MaxUint32
	case profile.U64, profile.Uint:
		c.width, c.maxU = 64, math.MaxUint64
	case profile.U128:
		c.width = 128
	case profile.I8:
		c.width, c.signed, c.minI, c.maxI = 8, true, math.MinInt8, math.MaxInt8
	case profile.I16:
		c.width, c.signed, c.minI, c.maxI = 16, true, math.MinInt16, math.MaxInt16
	case profile.I32:
		c.width, c.signed, c.minI, c.maxI = 32, true, math.MinInt32, math.MaxInt32
	case profile.I64, profile.Int:
		c.width, c.signed, c.minI, c.maxI = 64, true, math.MinInt64, math.MaxInt64
	case profile.I128:
		c.width, c.signed = 128, true
	default:
		panic("stats: unknown kind " + string(kind))
	}

	c.cats = make([]int, len(c.catNames()))
	c.specials = make([]int, len(c.specialNames()))
	return c
}

func (c *Collector) catNames() []string {
	switch {
	case c.kind.IsFloat():
		return floatCats
	case c.signed:
		return signedCats
	default:
		return unsignedCats
	}
}

func (c *Collector) specialNames() []string {
	switch {
	case c.kind.IsFloat():
		return floatSpecialNames
	case c.signed:
		return signedSpecialNames
	default:
		return unsignedSpecialNames
	}
}

// Kind 回傳此 Collector 統計的型別。
func (c *Collector) Kind() profile.Kind { return c.kind }

// Rounds 回傳已紀錄的值數量。
func (c *Collector) Rounds() int { return c.rounds }

// 類別索引
const (
	fcNormal = iota
	fcSubnormal
	fcQuietNaN
	fcSignalingNaN
	fcSpecial
)

const (
	scSpecial = iota
	scPositive
	scNegative
)

const (
	ucSpecial = iota
	ucGeneral
)

// RecordFloat32 分類並累計一個 float32。
func (c *Collector) RecordFloat32(v float32) {
	bits := math.Float32bits(v)
	c.rounds++
	c.covLo |= uint64(bits)

	switch {
	case fbit.IsSignalingNaN32(v):
		c.cats[fcSignalingNaN]++
	case fbit.IsNaN32(v):
		c.cats[fcQuietNaN]++
	case c.markFloatSpecial32(bits):
		c.cats[fcSpecial]++
	case fbit.IsSubnormal32(v):
		c.cats[fcSubnormal]++
	default:
		c.cats[fcNormal]++
	}
}

// RecordFloat64 分類並累計一個 float64。
func (c *Collector) RecordFloat64(v float64) {
	bits := math.Float64bits(v)
	c.rounds++
	c.covLo |= bits

	switch {
	case fbit.IsSignalingNaN64(v):
		c.cats[fcSignalingNaN]++
	case fbit.IsNaN64(v):
		c.cats[fcQuietNaN]++
	case c.markFloatSpecial64(bits):
		c.cats[fcSpecial]++
	case fbit.IsSubnormal64(v):
		c.cats[fcSubnormal]++
	default:
		c.cats[fcNormal]++
	}
}

func (c *Collector) markFloatSpecial32(bits uint32) bool {
	for i, s := range gen.SpecialFloat32Values {
		if math.Float32bits(s) == bits {
			c.specials[i]++
			return true
		}
	}
	return false
}

func (c *Collector) markFloatSpecial64(bits uint64) bool {
	for i, s := range gen.SpecialFloat64Values {
		if math.Float64bits(s) == bits {
			c.specials[i]++
			return true
		}
	}
	return false
}

// RecordUint 分類並累計一個無號整數值（已放大為 uint64）。
func (c *Collector) RecordUint(v uint64) {
	c.rounds++
	c.covLo |= v

	switch v {
	case 0:
		c.specials[0]++
		c.cats[ucSpecial]++
	case 1:
		c.specials[1]++
		c.cats[ucSpecial]++
	case c.maxU:
		c.specials[2]++
		c.cats[ucSpecial]++
	default:
		c.cats[ucGeneral]++
	}
}

// RecordInt 分類並累計一個有號整數值（已符號延伸為 int64）。
// 覆蓋度只 OR 位寬內的 pattern，避免符號延伸污染高位。
func (c *Collector) RecordInt(v int64) {
	c.rounds++
	c.covLo |= uint64(v) & widthMask(c.width)

	switch v {
	case 0:
		c.specials[0]++
		c.cats[scSpecial]++
	case 1:
		c.specials[1]++
		c.cats[scSpecial]++
	case c.maxI:
		c.specials[2]++
		c.cats[scSpecial]++
	case -1:
		c.specials[3]++
		c.cats[scSpecial]++
	case c.minI:
		c.specials[4]++
		c.cats[scSpecial]++
	default:
		if v > 0 {
			c.cats[scPositive]++
		} else {
			c.cats[scNegative]++
		}
	}
}

// RecordU128 分類並累計一個 num.U128。
func (c *Collector) RecordU128(v num.U128) {
	c.rounds++
	hi, lo := v.Raw()
	c.covHi |= hi
	c.covLo |= lo

	switch {
	case v.IsZero():
		c.specials[0]++
		c.cats[ucSpecial]++
	case v.Equal(num.U128From64(1)):
		c.specials[1]++
		c.cats[ucSpecial]++
	case v.Equal(num.MaxU128):
		c.specials[2]++
		c.cats[ucSpecial]++
	default:
		c.cats[ucGeneral]++
	}
}

// RecordI128 分類並累計一個 num.I128。
func (c *Collector) RecordI128(v num.I128) {
	c.rounds++
	hi, lo := v.AsU128().Raw()
	c.covHi |= hi
	c.covLo |= lo

	one := num.I128From64(1)
	switch {
	case v.IsZero():
		c.specials[0]++
		c.cats[scSpecial]++
	case v.Equal(one):
		c.specials[1]++
		c.cats[scSpecial]++
	case v.Equal(num.MaxI128):
		c.specials[2]++
		c.cats[scSpecial]++
	case v.Equal(one.Neg()):
		c.specials[3]++
		c.cats[scSpecial]++
	case v.Equal(num.MinI128):
		c.specials[4]++
		c.cats[scSpecial]++
	default:
		if v.Sign() > 0 {
			c.cats[scPositive]++
		} else {
			c.cats[scNegative]++
		}
	}
}

func widthMask(width int) uint64 {
	if width >= 64 {
		return math.MaxUint64
	}
	return (uint64(1) << width) - 1
}

// Merge 把另一個同型別 Collector 的累計加進來，用於多 worker 匯總。
func (c *Collector) Merge(other *Collector) error {
	if other == nil {
		return nil
	}
	if other.kind != c.kind {
		return errs.Warnf("merge collector kind mismatch: %s vs %s", c.kind, other.kind)
	}
	c.rounds += other.rounds
	for i := range c.cats {
		c.cats[i] += other.cats[i]
	}
	for i := range c.specials {
		c.specials[i] += other.specials[i]
	}
	c.covLo |= other.covLo
	c.covHi |= other.covHi
	return nil
}
