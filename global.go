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

package edgelab

import (
	"sync"

	num "github.com/shabbyrobe/go-num"

	"github.com/zintix-labs/edgelab/sdk/gen"
)

// 套件層級的預設產生器，給「拿來就用」的場景：測試檔案裡塞幾個
// 邊界值、不想自己管理 Gen 的生命週期。
//
// 預設種子來自 crypto/rand；需要重現時先呼叫 Seed。
// 所有免費函數都過同一把鎖，重度併發請改用各自的 gen.Gen。
var (
	defaultMu  sync.Mutex
	defaultGen = gen.NewWithSeed(RandSeed())
)

// Seed 重設預設產生器的種子。
func Seed(seed uint64) {
	defaultMu.Lock()
	defer defaultMu.Unlock()
	defaultGen.Seed(seed)
}

// GetSeed 回傳預設產生器當前的完整狀態，餵回 Seed 可重現後續序列。
func GetSeed() uint64 {
	defaultMu.Lock()
	defer defaultMu.Unlock()
	return defaultGen.GetSeed()
}

// Fork 從預設產生器分出一條獨立子串流，並推進預設產生器的狀態。
func Fork() *gen.Gen {
	defaultMu.Lock()
	defer defaultMu.Unlock()
	return defaultGen.Fork()
}

// Swap 暫時把預設產生器換成 g，回傳的 restore 負責換回原本那顆。
//
// 用於測試中需要完全掌控預設產生器的場景：
//
//	restore := edgelab.Swap(gen.NewWithSeed(7))
//	defer restore()
func Swap(g *gen.Gen) (restore func()) {
	defaultMu.Lock()
	defer defaultMu.Unlock()
	old := defaultGen
	defaultGen = g
	return func() {
		defaultMu.Lock()
		defer defaultMu.Unlock()
		defaultGen = old
	}
}

func withDefault[T any](fn func(g *gen.Gen) T) T {
	defaultMu.Lock()
	defer defaultMu.Unlock()
	return fn(defaultGen)
}

// 浮點

func NaNFloat32() float32       { return withDefault((*gen.Gen).NaNFloat32) }
func NaNFloat64() float64       { return withDefault((*gen.Gen).NaNFloat64) }
func SubnormalFloat32() float32 { return withDefault((*gen.Gen).SubnormalFloat32) }
func SubnormalFloat64() float64 { return withDefault((*gen.Gen).SubnormalFloat64) }
func NormalFloat32() float32    { return withDefault((*gen.Gen).NormalFloat32) }
func NormalFloat64() float64    { return withDefault((*gen.Gen).NormalFloat64) }
func SpecialFloat32() float32   { return withDefault((*gen.Gen).SpecialFloat32) }
func SpecialFloat64() float64   { return withDefault((*gen.Gen).SpecialFloat64) }
func Float32() float32          { return withDefault((*gen.Gen).Float32) }
func Float64() float64          { return withDefault((*gen.Gen).Float64) }

// 整數

func Uint8() uint8   { return withDefault((*gen.Gen).Uint8) }
func Uint16() uint16 { return withDefault((*gen.Gen).Uint16) }
func Uint32() uint32 { return withDefault((*gen.Gen).Uint32) }
func Uint64() uint64 { return withDefault((*gen.Gen).Uint64) }
func Uint() uint     { return withDefault((*gen.Gen).Uint) }
func Int8() int8     { return withDefault((*gen.Gen).Int8) }
func Int16() int16   { return withDefault((*gen.Gen).Int16) }
func Int32() int32   { return withDefault((*gen.Gen).Int32) }
func Int64() int64   { return withDefault((*gen.Gen).Int64) }
func Int() int       { return withDefault((*gen.Gen).Int) }

func Uint128() num.U128 { return withDefault((*gen.Gen).Uint128) }
func Int128() num.I128  { return withDefault((*gen.Gen).Int128) }
