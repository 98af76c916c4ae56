// Package core implements the WyRand random number generator.
//
// The wyrand algorithm is designed by Wang Yi.
// Portions of the bounded random generation logic (Uint64N) are
// adapted from the Go standard library (math/rand), which is
// licensed under the BSD 3-Clause License.

package core

import (
	"encoding/binary"
	"errors"
	"math/bits"
)

var errSnapshotSize = errors.New("wyrand: snapshot must be 8 bytes")

const (
	wyAdd uint64 = 0xa0761d6478bd642f
	wyXor uint64 = 0xe7037ed1a0b428db
)

// WyRand 亂數產生器。
//
// 整個內部狀態就是單一個 uint64，這讓 GetSeed 可以直接回傳目前狀態、
// Seed 可以直接覆寫狀態：GetSeed -> Seed 的 round-trip 天生成立，
// 不需要額外的狀態合成。
type WyRand struct {
	state uint64
}

// NewWyRand 以指定 seed 建立新的 WyRand 實例。
func NewWyRand(seed uint64) *WyRand {
	return &WyRand{state: seed}
}

//---------------------------------------
// 回傳方法
//---------------------------------------

// Uint64 回傳 64-bit 均勻亂數。
func (w *WyRand) Uint64() uint64 {
	w.state += wyAdd
	hi, lo := bits.Mul64(w.state, w.state^wyXor)
	return hi ^ lo
}

// Uint64N 回傳 [0,n) 的無偏亂數（基於乘法高位與拒絕採樣），若 n == 0 回傳 0。
func (w *WyRand) Uint64N(n uint64) uint64 {
	if n == 0 {
		return 0
	}
	if n&(n-1) == 0 { // n is power of two, can mask
		return w.Uint64() & (n - 1)
	}
	hi, lo := bits.Mul64(w.Uint64(), n)
	if lo < n {
		thresh := -n % n
		for lo < thresh {
			hi, lo = bits.Mul64(w.Uint64(), n)
		}
	}
	return hi
}

//---------------------------------------
// seed 生命週期
//---------------------------------------

// Seed 原地重設狀態，丟棄先前的軌跡。
func (w *WyRand) Seed(seed uint64) {
	w.state = seed
}

// GetSeed 回傳目前狀態。餵回 Seed / NewWyRand 會重現相同的後續輸出序列。
func (w *WyRand) GetSeed() uint64 {
	return w.state
}

// Fork 派生新的獨立串流。
//
// 子串流的 seed 取自父串流的下一個輸出值，因此：
//   - 派生是決定性的（由父串流當下狀態唯一決定）。
//   - 父串流的狀態被推進，連續 Fork 會得到不同的子串流。
func (w *WyRand) Fork() Source {
	return NewWyRand(w.Uint64())
}

//---------------------------------------
// 快照 / 還原
//---------------------------------------

// Snapshot 取得當下內部狀態（8 bytes, little-endian）。
func (w *WyRand) Snapshot() ([]byte, error) {
	buf := make([]byte, 8)
	binary.LittleEndian.PutUint64(buf, w.state)
	return buf, nil
}

// Restore 恢復內部狀態。
func (w *WyRand) Restore(data []byte) error {
	if len(data) != 8 {
		return errSnapshotSize
	}
	w.state = binary.LittleEndian.Uint64(data)
	return nil
}
