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

// Package edgelab 提供 Edgelab 引擎的「組裝入口（assembler）」與「運行入口（runtime entry）」。
//
// Edgelab 是一個可播種、可重現的對抗性數值產生器：專門產出 NaN、次正規數、
// 無窮大、MIN/MAX 哨兵這類會把數值程式打掛的邊界值。把 Edgelab 視為一個
// runtime，它把兩個地基組裝在一起，並提供建立 Emitter 的入口：
//  1. Registry：產值剖面目錄（Single Source of Truth），定義有哪些剖面與其設定。
//  2. SourceFactory：亂數來源工廠（PRNG factory），保證可重現（reproducible）
//     與可審計（auditable）。
//
// 設計重點：
//   - Edgelab 本身不綁定任何「檔案路徑」概念：剖面來源一律以 fs.FS 的形式注入。
//   - Emitter 是對外執行發射的最小單位；單次取值請直接用 sdk/gen.Gen。
//
// 典型使用情境：
//   - 後端服務（HTTP）：由 Lab 建立 Emitter，對外提供抽樣報告。
//   - 命令列（emit）：由 Lab 建立 Emitter 進行大量發射並落地 corpus。
package edgelab

import (
	"crypto/rand"
	"io/fs"
	"math"
	"math/big"

	"github.com/zintix-labs/edgelab/errs"
	"github.com/zintix-labs/edgelab/profile"
	"github.com/zintix-labs/edgelab/sdk/core"
)

// Profiles 用來把一或多個剖面來源（fs.FS）打包成 New() 需要的參數。
//
// 為什麼是 fs.FS：
//   - 你可以用 go:embed 把剖面直接編進 binary（部署最穩定，不依賴工作目錄）。
//   - 也可以用 os.DirFS 在本機開發時讀取目錄。
func Profiles(cfgs ...fs.FS) []fs.FS {
	return cfgs
}

// Lab 是組裝器：持有 SourceFactory 與剖面目錄，提供建立 Emitter 的入口。
//
// 組裝完成後即唯讀，可以被多個 goroutine 併發使用。
type Lab struct {
	cf  core.SourceFactory
	reg *profile.Registry
}

// New 建立一個 Lab instance。
//
// 參數要求（是合約的一部分）：
//   - cf 不能為 nil：沒有 RNG 工廠就無法建立可重現/可審計的來源。
//   - cfgs 至少一個：沒有剖面來源，目錄無法解析。
func New(cf core.SourceFactory, cfgs []fs.FS) (*Lab, error) {
	if cf == nil {
		return nil, errs.NewFatal("source factory required")
	}
	if len(cfgs) == 0 {
		return nil, errs.NewFatal("profile configs required")
	}
	reg, err := profile.Load(cfgs...)
	if err != nil {
		return nil, err
	}
	return &Lab{cf: cf, reg: reg}, nil
}

// Registry 回傳剖面目錄。
func (l *Lab) Registry() *profile.Registry { return l.reg }

// NewEmitter 依剖面名稱建立 Emitter。
//
// seed 的決定順序：剖面內宣告的 seed 優先，否則由 crypto/rand 產生。
// seed 會被記錄在 Emitter 內，用於追溯/重現。
func (l *Lab) NewEmitter(name string) (*Emitter, error) {
	p, ok := l.reg.Get(name)
	if !ok {
		return nil, errs.Warnf("profile not found: %q", name)
	}
	if p.Seed != nil {
		return newEmitter(p, l.cf, *p.Seed), nil
	}
	return newEmitter(p, l.cf, RandSeed()), nil
}

// NewEmitterWithSeed 與 NewEmitter 相同，但由呼叫端指定初始 seed。
//
// 使用情境：
//   - 可重現的測試：同一份剖面 + 同一個 seed，應產生一致的值序列。
func (l *Lab) NewEmitterWithSeed(name string, seed uint64) (*Emitter, error) {
	p, ok := l.reg.Get(name)
	if !ok {
		return nil, errs.Warnf("profile not found: %q", name)
	}
	return newEmitter(p, l.cf, seed), nil
}

// NewEmitterAdHoc 跳過目錄，直接以臨時剖面建立 Emitter。
// 提供給命令列 -type 模式與 API 的無剖面抽樣使用。
func (l *Lab) NewEmitterAdHoc(p *profile.Profile, seed uint64) (*Emitter, error) {
	if p == nil {
		return nil, errs.NewWarn("ad hoc profile required")
	}
	return newEmitter(p, l.cf, seed), nil
}

// RandSeed 由 crypto/rand 產生一個種子。
func RandSeed() uint64 {
	n, err := rand.Int(rand.Reader, big.NewInt(math.MaxInt64))
	if err != nil {
		panic("crypto/rand unavailable: " + err.Error())
	}
	return n.Uint64()
}
