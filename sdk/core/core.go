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

// Package core 定義 edgelab 所需的均勻亂數來源（uniform source）合約與預設實作。
//
// 注意：本套件的亂數來源「不具密碼學強度」。它只用於產生測試輸入，
// 不可在正式環境中作為安全用途的亂數來源。
package core

// Source 定義 edgelab 的亂數來源合約，需同時支援取樣、seed 生命週期與狀態保存/還原。
//
// 合約（很重要）：
//   - 相同 seed 必須產生相同的輸出序列（決定性，用於回放與審計）。
//   - GetSeed 回傳的值若再餵回 Seed / 建構子，必須重現「目前」的後續輸出軌跡
//     （實作可以回傳內部狀態的合成值，不必是原始 seed 本身）。
//   - Fork 從目前狀態派生一條獨立的新串流，並推進父串流的狀態；
//     因此連續 Fork 兩次會得到兩條不同的子串流。
type Source interface {
	RAND
	Seeder
	Restorable
}

// RAND 定義核心亂數取樣能力。
//
// 只要求 Uint64 與 Uint64N 兩個方法：各寬度/各區間的取樣一律由本套件的
// 泛型輔助函數（UintIn / IntIn / U128In / I128In）基於這兩個方法組出，
// 避免每個實作都要各自重複 12 種寬度的 bounded 生成。
type RAND interface {
	// Uint64 回傳 64-bit 均勻亂數。
	Uint64() uint64
	// Uint64N 回傳 [0,n) 的無偏均勻亂數，若 n == 0 回傳 0。
	Uint64N(n uint64) uint64
}

// Seeder 定義 seed 生命週期操作。
type Seeder interface {
	// Seed 原地重設狀態，丟棄先前的軌跡。
	Seed(seed uint64)
	// GetSeed 回傳可重現目前軌跡的 64-bit 值。
	GetSeed() uint64
	// Fork 派生獨立的新串流並推進自身狀態。
	Fork() Source
}

// Restorable 定義可快照與還原的狀態介面。
// 用於 corpus 檔頭與 dev 端點的狀態搬運。
type Restorable interface {
	// Snapshot 回傳可用於還原的序列化狀態。
	Snapshot() ([]byte, error)
	// Restore 依序列化狀態還原內部狀態。
	Restore([]byte) error
}

// SourceFactory 以指定 seed 建立新的 Source。
//
// 合約：在同一個實作與同一個版本下，New(seed) 必須是決定性的——
// 相同的 seed 必須產生相同的初始內部狀態與輸出序列。
// edgelab 內部永遠不呼叫「不帶 seed 的建構子」；預設 seed 的產生
// （crypto/rand）由組裝層統一負責，避免行為不可重現。
type SourceFactory interface {
	New(seed uint64) Source
}

// DefaultSource 實作預設的 SourceFactory，以 WyRand 為底。
type DefaultSource struct{}

// New 滿足 SourceFactory 合約。
func (d *DefaultSource) New(seed uint64) Source {
	return NewWyRand(seed)
}

func Default() *DefaultSource {
	return &DefaultSource{}
}
