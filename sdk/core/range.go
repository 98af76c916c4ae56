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

package core

import (
	num "github.com/shabbyrobe/go-num"
)

// Unsigned 列出本套件支援的無號整數寬度。
type Unsigned interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uint | ~uintptr
}

// Signed 列出本套件支援的有號整數寬度。
type Signed interface {
	~int8 | ~int16 | ~int32 | ~int64 | ~int
}

// UintIn 回傳 [lo,hi) 的均勻亂數。呼叫端必須保證 hi > lo。
//
// 所有無號寬度共用同一份實作：把區間平移到 [0, hi-lo)，
// 用 Uint64N 取樣後再平移回去。窄寬度的截斷是安全的，
// 因為 delta < hi-lo 必定可被 T 表示。
func UintIn[T Unsigned](r RAND, lo, hi T) T {
	return lo + T(r.Uint64N(uint64(hi)-uint64(lo)))
}

// IntIn 回傳 [lo,hi) 的均勻亂數。呼叫端必須保證 hi > lo。
//
// 有號區間一樣走平移：hi-lo 在 uint64 的模運算下永遠是正確的區間長度
// （二補數），加回 lo 後截斷到目標寬度即為結果。
func IntIn[T Signed](r RAND, lo, hi T) T {
	span := uint64(int64(hi)) - uint64(int64(lo))
	return T(int64(uint64(int64(lo)) + r.Uint64N(span)))
}

// U128N 回傳 [0,n) 的均勻 128-bit 亂數，若 n 為零回傳零。
//
// n 落在 64-bit 範圍內時直接走 Uint64N；否則採用經典的
// threshold rejection：接受 r >= (2^128 - n) mod n 的抽樣，
// 再取 r mod n，期望抽樣次數 < 2。
func U128N(r RAND, n num.U128) num.U128 {
	if n.IsZero() {
		return n
	}
	if hi, lo := n.Raw(); hi == 0 {
		return num.U128From64(r.Uint64N(lo))
	}
	// (2^128 - n) mod n；n >= 2^64 所以 MaxU128-n+1 不會溢位
	t := num.MaxU128.Sub(n).Inc().Rem(n)
	for {
		x := num.RandU128(r)
		if x.GreaterOrEqualTo(t) {
			return x.Rem(n)
		}
	}
}

// U128In 回傳 [lo,hi) 的均勻 128-bit 無號亂數。呼叫端必須保證 hi > lo。
func U128In(r RAND, lo, hi num.U128) num.U128 {
	return lo.Add(U128N(r, hi.Sub(lo)))
}

// I128In 回傳 [lo,hi) 的均勻 128-bit 有號亂數。呼叫端必須保證 hi > lo。
//
// 與 IntIn 同一套平移技巧：在 U128 的模 2^128 運算下計算區間長度與位移，
// 最後直接轉回 I128（二補數 cast，不做值域檢查）。
func I128In(r RAND, lo, hi num.I128) num.I128 {
	span := hi.AsU128().Sub(lo.AsU128())
	return lo.AsU128().Add(U128N(r, span)).AsI128()
}
