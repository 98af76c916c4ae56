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

// Package gen 產生「刻意偏向邊角案例」的數值測試資料。
//
// 用均勻取樣產生 32 bits 再轉成 f32 時，某些值幾乎不可能出現，例如 NaN 與
// INFINITY。對隨機測試（fuzzing）來說，一直產生行為良好的資料沒什麼用；
// 人為拉高這些特殊值的出現機率，才能更常測到它們。部分亂數函式庫甚至
// 永遠不會產生 NaN 這類有問題的 bit pattern。
//
// 分佈是刻意傾斜的，不具統計意義；它只保證每一類邊角值都有公平的出現機會。
//
// Gen 不做內部同步：它是 per-task、被單一擁有者循序使用的物件，
// 併發使用需要外部互斥（或每個 worker 各自 Fork 一份）。
// 所有生成操作都不配置記憶體、不做 I/O、不會失敗；每次呼叫都推進內部狀態。
package gen

import (
	"github.com/zintix-labs/edgelab/sdk/core"
)

// Gen 是邊角案例產生器，包裝「恰好一個」均勻亂數來源。
type Gen struct {
	src core.Source
}

// NewWithSeed 以指定 seed 建立決定性的 Gen。
// 相同 seed 的兩個 Gen 對相同的操作序列必須產生 bit-for-bit 相同的輸出。
func NewWithSeed(seed uint64) *Gen {
	return &Gen{src: core.NewWyRand(seed)}
}

// New 允許使用外部自實現的 Source 建立 Gen。
func New(src core.Source) *Gen {
	return &Gen{src: src}
}

// Fork 派生一個新的 Gen：子串流由父串流當下狀態唯一決定，
// 同時父串流的狀態被推進（連續 Fork 兩次得到兩個不同的子串流）。
func (g *Gen) Fork() *Gen {
	return &Gen{src: g.src.Fork()}
}

// Seed 原地重設，丟棄先前狀態。
func (g *Gen) Seed(seed uint64) {
	g.src.Seed(seed)
}

// GetSeed 回傳可重現目前軌跡的 seed 值（餵回 NewWithSeed 會得到相同的後續輸出）。
func (g *Gen) GetSeed() uint64 {
	return g.src.GetSeed()
}

// Source 回傳底層亂數來源，供快照/還原等組裝層操作使用。
func (g *Gen) Source() core.Source {
	return g.src
}
