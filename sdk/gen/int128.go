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
	num "github.com/shabbyrobe/go-num"

	"github.com/zintix-labs/edgelab/sdk/core"
)

// 128-bit 整數：Go 沒有原生 u128/i128，用 go-num 的值型別補齊；
// 分類規則與其他寬度完全相同，只是 MIN/MAX 與區間運算換成 num 的 API。

var (
	one128U = num.U128From64(1)
	two128U = num.U128From64(2)
	one128I = num.I128From64(1)
	two128I = num.I128From64(2)
	neg128I = num.I128From64(-1)
)

// SpecialUint128 產生隨機的 u128「特殊值」：{0, 1, MAX} 均勻選取。
func (g *Gen) SpecialUint128() num.U128 {
	switch g.src.Uint64N(3) {
	case 0:
		return num.U128{}
	case 1:
		return one128U
	default:
		return num.MaxU128
	}
}

// GeneralUint128 產生 [2, MAX) 的均勻 u128。
func (g *Gen) GeneralUint128() num.U128 {
	return core.U128In(g.src, two128U, num.MaxU128)
}

// Uint128 產生隨機 u128，特殊值遠比一般情況常見（50% special / 50% general）。
func (g *Gen) Uint128() num.U128 {
	if g.src.Uint64N(2) == 0 {
		return g.SpecialUint128()
	}
	return g.GeneralUint128()
}

// SpecialInt128 產生隨機的 i128「特殊值」：{0, 1, MAX, -1, MIN} 均勻選取。
func (g *Gen) SpecialInt128() num.I128 {
	switch g.src.Uint64N(5) {
	case 0:
		return num.I128{}
	case 1:
		return one128I
	case 2:
		return num.MaxI128
	case 3:
		return neg128I
	default:
		return num.MinI128
	}
}

// GeneralInt128 產生 [2, MAX) 或 [MIN+1, -1) 的均勻 i128（各半）。
func (g *Gen) GeneralInt128() num.I128 {
	if g.src.Uint64N(2) == 0 {
		return core.I128In(g.src, two128I, num.MaxI128)
	}
	return core.I128In(g.src, num.MinI128.Inc(), neg128I)
}

// Int128 產生隨機 i128，特殊值遠比一般情況常見。
func (g *Gen) Int128() num.I128 {
	if g.src.Uint64N(2) == 0 {
		return g.SpecialInt128()
	}
	return g.GeneralInt128()
}
