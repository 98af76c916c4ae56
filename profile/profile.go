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

// Package profile 定義產值剖面 (generation profile) 的設定結構與載入器。
//
// 一個 profile 描述一次發射 (emission run)：要產哪種數值型別、產幾個、
// 用什麼種子、各類別的權重如何。設定以 YAML 描述，一個檔案一個 profile。
package profile

import (
	"fmt"

	"github.com/zintix-labs/edgelab/errs"
)

// Kind 是 profile 支援的數值型別。
type Kind string

const (
	F32  Kind = "f32"
	F64  Kind = "f64"
	U8   Kind = "u8"
	U16  Kind = "u16"
	U32  Kind = "u32"
	U64  Kind = "u64"
	U128 Kind = "u128"
	Uint Kind = "uint"
	I8   Kind = "i8"
	I16  Kind = "i16"
	I32  Kind = "i32"
	I64  Kind = "i64"
	I128 Kind = "i128"
	Int  Kind = "int"
)

var kindSet = map[Kind]struct{}{
	F32: {}, F64: {},
	U8: {}, U16: {}, U32: {}, U64: {}, U128: {}, Uint: {},
	I8: {}, I16: {}, I32: {}, I64: {}, I128: {}, Int: {},
}

// ParseKind 解析型別字串，未知型別回傳 Warn 級錯誤。
func ParseKind(s string) (Kind, error) {
	k := Kind(s)
	if _, ok := kindSet[k]; !ok {
		return "", errs.Warnf("unknown value type: %q", s)
	}
	return k, nil
}

// IsFloat 回報 Kind 是否為浮點型別。
func (k Kind) IsFloat() bool { return k == F32 || k == F64 }

// 一次發射的數量上限，防止設定錯誤把機器吃滿。
const MaxCount = 1_000_000_000

// Weights 是各類別的相對權重。
//
// 浮點剖面使用 Normal/Subnormal/NaN/Special 四格；
// 整數剖面使用 Special/General 兩格。未填的欄位視為 0。
// 全部為零代表「未設定」，發射時退回內建的均勻分派。
type Weights struct {
	Normal    int `yaml:"normal" json:"normal,omitempty"`
	Subnormal int `yaml:"subnormal" json:"subnormal,omitempty"`
	NaN       int `yaml:"nan" json:"nan,omitempty"`
	Special   int `yaml:"special" json:"special,omitempty"`
	General   int `yaml:"general" json:"general,omitempty"`
}

// FloatWeights 回傳浮點類別權重，順序固定 [normal, subnormal, nan, special]。
func (w *Weights) FloatWeights() [4]int {
	return [4]int{w.Normal, w.Subnormal, w.NaN, w.Special}
}

// IntWeights 回傳整數類別權重，順序固定 [special, general]。
func (w *Weights) IntWeights() [2]int {
	return [2]int{w.Special, w.General}
}

func (w *Weights) isZero() bool {
	return w.Normal == 0 && w.Subnormal == 0 && w.NaN == 0 &&
		w.Special == 0 && w.General == 0
}

// Profile 是一份產值剖面設定。
type Profile struct {
	Name    string   `yaml:"name" json:"name"`
	Type    string   `yaml:"type" json:"type"`
	Count   int      `yaml:"count" json:"count"`
	Seed    *uint64  `yaml:"seed,omitempty" json:"seed,omitempty"`
	Weights *Weights `yaml:"weights,omitempty" json:"weights,omitempty"`
	Note    string   `yaml:"note,omitempty" json:"note,omitempty"`

	kind Kind
}

// New 建立一個程式化的臨時剖面（不經 YAML），檢查規則與載入器一致。
func New(name string, typ string, count int) (*Profile, error) {
	p := &Profile{Name: name, Type: typ, Count: count}
	if err := p.init(); err != nil {
		return nil, err
	}
	return p, nil
}

// Kind 回傳初始化後解析出的型別。
func (p *Profile) Kind() Kind { return p.kind }

// HasWeights 回報此剖面是否帶了有效的自訂權重。
func (p *Profile) HasWeights() bool {
	return p.Weights != nil && !p.Weights.isZero()
}

// init 做基本檢查並解析型別，載入器在 unmarshal 後呼叫。
func (p *Profile) init() error {
	if p.Name == "" {
		return errs.NewWarn("profile name required")
	}

	k, err := ParseKind(p.Type)
	if err != nil {
		return errs.Wrap(err, fmt.Sprintf("profile %q", p.Name))
	}
	p.kind = k

	if p.Count < 1 || p.Count > MaxCount {
		return errs.Warnf("profile %q: count %d out of range [1, %d]", p.Name, p.Count, MaxCount)
	}

	if p.Weights != nil {
		if err := p.validWeights(); err != nil {
			return err
		}
	}
	return nil
}

func (p *Profile) validWeights() error {
	w := p.Weights
	for name, v := range map[string]int{
		"normal": w.Normal, "subnormal": w.Subnormal, "nan": w.NaN,
		"special": w.Special, "general": w.General,
	} {
		if v < 0 {
			return errs.Warnf("profile %q: negative weight %s=%d", p.Name, name, v)
		}
	}
	if w.isZero() {
		// 整份權重區塊寫了但全為零，視為設定錯誤而非「用預設」
		return errs.Warnf("profile %q: weights present but all zero", p.Name)
	}

	// 浮點剖面不接受整數格，反之亦然
	if p.kind.IsFloat() {
		if w.General != 0 {
			return errs.Warnf("profile %q: float profile cannot weight 'general'", p.Name)
		}
	} else {
		if w.Normal != 0 || w.Subnormal != 0 || w.NaN != 0 {
			return errs.Warnf("profile %q: integer profile can only weight 'special'/'general'", p.Name)
		}
	}
	return nil
}
