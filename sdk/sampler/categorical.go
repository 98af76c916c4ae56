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

// Package sampler 提供加權抽樣演算法與工具。
//
// 本檔案 (categorical.go) 實作了累積權重的分類抽樣。
//
// 演算法原理：
//   - 建表時累加權重成前綴和陣列 (cumulative sums)。
//   - 抽樣時取一個 [0, total) 的隨機數，線性掃描找到第一個大於它的前綴和。
//
// 特性：
//   - 建表時間：O(N)
//   - 抽樣時間：O(N)，類別數量很小（通常 2~12 個）時比二分搜尋還快。
//   - 空間複雜度：O(N)。
//
// 適用場景：
//   - 類別數量少且固定（產值器的類別分派、profile 的型別權重）。
//   - 需要在 panic 前完整驗證權重（負權重、全零權重都是設定錯誤）。
package sampler

import (
	"math"

	"github.com/zintix-labs/edgelab/sdk/core"
)

// Integers 約束所有可做權重的整數型別。
type Integers interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64
}

// Categorical 是以前綴和實作的分類抽樣器。
//
// 建好之後抽樣不會再配置記憶體，可以安全地被多個 goroutine
// 以各自的 RAND 併發使用（結構本身建表後唯讀）。
type Categorical struct {
	cum   []uint64 // 前綴和，cum[len-1] == total
	total uint64
}

// NewCategorical 根據權重列表建立分類抽樣器。
//
// src 為任意非負整數權重列表，若遇到負權重或全零權重會 panic，
// 因為那代表呼叫端的設定壞掉了，繼續執行只會產生偏差的抽樣。
//
// 權重為 0 的類別永遠不會被抽中，但仍保留其索引位置。
func NewCategorical[T Integers](src []T) *Categorical {
	if len(src) == 0 {
		panic("categorical: empty weight list")
	}

	cum := make([]uint64, len(src))
	acc := uint64(0)
	for i, v := range src {
		if v < 0 {
			panic("categorical: negative weight encountered")
		}
		uv := uint64(v)
		if acc > math.MaxUint64-uv {
			panic("categorical: total weight overflow uint64 range")
		}
		acc += uv
		cum[i] = acc
	}

	if acc == 0 {
		panic("categorical: all weights are zero")
	}

	return &Categorical{cum: cum, total: acc}
}

// Pick 依權重比例抽出一個類別索引。
//
// 抽樣是 O(N) 線性掃描，N 為類別數。
func (c *Categorical) Pick(r core.RAND) int {
	x := r.Uint64N(c.total)
	for i, cv := range c.cum {
		if x < cv {
			return i
		}
	}
	// total > 0 時不可能走到這裡
	panic("categorical: scan past total weight")
}

// Len 回傳類別數量。
func (c *Categorical) Len() int { return len(c.cum) }

// Total 回傳權重總和。
func (c *Categorical) Total() uint64 { return c.total }
