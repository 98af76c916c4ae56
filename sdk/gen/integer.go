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

	"github.com/zintix-labs/edgelab/sdk/core"
)

// 整數生成的共用實作。
//
// 12 種寬度/符號組合只寫一次：泛型函數以（型別, MIN, MAX）參數化，
// 各寬度的方法是一行的實例化。分類規則：
//
//   - special 無號：{0, 1, MAX} 均勻選取。
//   - special 有號：{0, 1, MAX, -1, MIN} 均勻選取。
//   - general 無號：[2, MAX) 均勻取樣。
//   - general 有號：[2, MAX) 與 [MIN+1, -1) 各半。
//     區間邊界刻意排除全部五個 sentinel（0, 1, -1, MIN, MAX）——
//     它們只屬於 special 類，由邊界構造保證，不靠拒絕採樣。
//
// 頂層入口（Uint8 / Int8 / ...）先均勻二選一 {special, general} 再派發。
// 注意這與浮點入口的 25/25/25/25 四分不同：整數只有兩類，
// 50/50 是刻意的設計，不是需要對齊的偏差。

func specialUint[T core.Unsigned](r core.RAND) T {
	switch r.Uint64N(3) {
	case 0:
		return 0
	case 1:
		return 1
	default:
		return ^T(0)
	}
}

func generalUint[T core.Unsigned](r core.RAND) T {
	return core.UintIn(r, 2, ^T(0))
}

func anyUint[T core.Unsigned](r core.RAND) T {
	if r.Uint64N(2) == 0 {
		return specialUint[T](r)
	}
	return generalUint[T](r)
}

func specialInt[T core.Signed](r core.RAND, min, max T) T {
	switch r.Uint64N(5) {
	case 0:
		return 0
	case 1:
		return 1
	case 2:
		return max
	case 3:
		return -1
	default:
		return min
	}
}

func generalInt[T core.Signed](r core.RAND, min, max T) T {
	if r.Uint64N(2) == 0 {
		return core.IntIn(r, 2, max)
	}
	return core.IntIn(r, min+1, -1)
}

func anyInt[T core.Signed](r core.RAND, min, max T) T {
	if r.Uint64N(2) == 0 {
		return specialInt(r, min, max)
	}
	return generalInt(r, min, max)
}

// SpecialUint8 產生隨機的 uint8「特殊值」：{0, 1, MAX} 均勻選取。
// 特殊值指獨特、靠機率幾乎抽不到、且帶有不尋常性質的固定值。
func (g *Gen) SpecialUint8() uint8 { return specialUint[uint8](g.src) }

// GeneralUint8 產生 [2, MAX) 的均勻 uint8（排除 special sentinel）。
func (g *Gen) GeneralUint8() uint8 { return generalUint[uint8](g.src) }

// Uint8 產生隨機 uint8，讓特殊值遠比一般情況常見（50% special / 50% general）。
func (g *Gen) Uint8() uint8 { return anyUint[uint8](g.src) }

// SpecialUint16 產生隨機的 uint16「特殊值」。
func (g *Gen) SpecialUint16() uint16 { return specialUint[uint16](g.src) }

// GeneralUint16 產生 [2, MAX) 的均勻 uint16。
func (g *Gen) GeneralUint16() uint16 { return generalUint[uint16](g.src) }

// Uint16 產生隨機 uint16，特殊值遠比一般情況常見。
func (g *Gen) Uint16() uint16 { return anyUint[uint16](g.src) }

// SpecialUint32 產生隨機的 uint32「特殊值」。
func (g *Gen) SpecialUint32() uint32 { return specialUint[uint32](g.src) }

// GeneralUint32 產生 [2, MAX) 的均勻 uint32。
func (g *Gen) GeneralUint32() uint32 { return generalUint[uint32](g.src) }

// Uint32 產生隨機 uint32，特殊值遠比一般情況常見。
func (g *Gen) Uint32() uint32 { return anyUint[uint32](g.src) }

// SpecialUint64 產生隨機的 uint64「特殊值」。
func (g *Gen) SpecialUint64() uint64 { return specialUint[uint64](g.src) }

// GeneralUint64 產生 [2, MAX) 的均勻 uint64。
func (g *Gen) GeneralUint64() uint64 { return generalUint[uint64](g.src) }

// Uint64 產生隨機 uint64，特殊值遠比一般情況常見。
func (g *Gen) Uint64() uint64 { return anyUint[uint64](g.src) }

// SpecialUint 產生隨機的 uint（指標寬度）「特殊值」。
func (g *Gen) SpecialUint() uint { return specialUint[uint](g.src) }

// GeneralUint 產生 [2, MAX) 的均勻 uint。
func (g *Gen) GeneralUint() uint { return generalUint[uint](g.src) }

// Uint 產生隨機 uint，特殊值遠比一般情況常見。
func (g *Gen) Uint() uint { return anyUint[uint](g.src) }

// SpecialInt8 產生隨機的 int8「特殊值」：{0, 1, MAX, -1, MIN} 均勻選取。
func (g *Gen) SpecialInt8() int8 { return specialInt[int8](g.src, math.MinInt8, math.MaxInt8) }

// GeneralInt8 產生 [2, MAX) 或 [MIN+1, -1) 的均勻 int8（各半）。
func (g *Gen) GeneralInt8() int8 { return generalInt[int8](g.src, math.MinInt8, math.MaxInt8) }

// Int8 產生隨機 int8，特殊值遠比一般情況常見。
func (g *Gen) Int8() int8 { return anyInt[int8](g.src, math.MinInt8, math.MaxInt8) }

// SpecialInt16 產生隨機的 int16「特殊值」。
func (g *Gen) SpecialInt16() int16 { return specialInt[int16](g.src, math.MinInt16, math.MaxInt16) }

// GeneralInt16 產生 [2, MAX) 或 [MIN+1, -1) 的均勻 int16。
func (g *Gen) GeneralInt16() int16 { return generalInt[int16](g.src, math.MinInt16, math.MaxInt16) }

// Int16 產生隨機 int16，特殊值遠比一般情況常見。
func (g *Gen) Int16() int16 { return anyInt[int16](g.src, math.MinInt16, math.MaxInt16) }

// SpecialInt32 產生隨機的 int32「特殊值」。
func (g *Gen) SpecialInt32() int32 { return specialInt[int32](g.src, math.MinInt32, math.MaxInt32) }

// GeneralInt32 產生 [2, MAX) 或 [MIN+1, -1) 的均勻 int32。
func (g *Gen) GeneralInt32() int32 { return generalInt[int32](g.src, math.MinInt32, math.MaxInt32) }

// Int32 產生隨機 int32，特殊值遠比一般情況常見。
func (g *Gen) Int32() int32 { return anyInt[int32](g.src, math.MinInt32, math.MaxInt32) }

// SpecialInt64 產生隨機的 int64「特殊值」。
func (g *Gen) SpecialInt64() int64 { return specialInt[int64](g.src, math.MinInt64, math.MaxInt64) }

// GeneralInt64 產生 [2, MAX) 或 [MIN+1, -1) 的均勻 int64。
func (g *Gen) GeneralInt64() int64 { return generalInt[int64](g.src, math.MinInt64, math.MaxInt64) }

// Int64 產生隨機 int64，特殊值遠比一般情況常見。
func (g *Gen) Int64() int64 { return anyInt[int64](g.src, math.MinInt64, math.MaxInt64) }

// SpecialInt 產生隨機的 int（指標寬度）「特殊值」。
func (g *Gen) SpecialInt() int { return specialInt[int](g.src, math.MinInt, math.MaxInt) }

// GeneralInt 產生 [2, MAX) 或 [MIN+1, -1) 的均勻 int。
func (g *Gen) GeneralInt() int { return generalInt[int](g.src, math.MinInt, math.MaxInt) }

// Int 產生隨機 int，特殊值遠比一般情況常見。
func (g *Gen) Int() int { return anyInt[int](g.src, math.MinInt, math.MaxInt) }
