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

package v1

import (
	"encoding/json"
	"math"
	"net/http"
	"strconv"

	"github.com/zintix-labs/edgelab"
	"github.com/zintix-labs/edgelab/errs"
	"github.com/zintix-labs/edgelab/profile"
	"github.com/zintix-labs/edgelab/sdk/gen"
	"github.com/zintix-labs/edgelab/server/httperr"
)

// 單次 API 的抽取數量上限，防止一個請求把機器吃滿。
const maxDrawCount = 10_000

// DrawHandler 提供 /v1/draw：依型別與類別抽取一批邊界值。
type DrawHandler struct {
	lab *edgelab.Lab
}

func NewDrawHandler(lab *edgelab.Lab) (*DrawHandler, error) {
	if lab == nil {
		return nil, errs.NewFatal("lab is required")
	}
	return &DrawHandler{lab: lab}, nil
}

// DrawRequestBody 是 /v1/draw 的輸入 payload。
//
// Category：
//   - value：該型別的完整混合分布（預設）。
//   - special：固定哨兵集合。
//   - nan / subnormal / normal：僅浮點型別可用。
//   - general：僅整數型別可用（排除哨兵的一般區間）。
//
// Seed：
//   - 未提供時由後端以 crypto/rand 生成，並回傳在 response 中以便回放。
type DrawRequestBody struct {
	Type     string  `json:"type"`
	Category string  `json:"category"`
	Count    int     `json:"count"`
	Seed     *uint64 `json:"seed,omitempty"`
}

// DrawnValue 同時攜帶位元模式與可讀字串。
// NaN/Inf 無法以 JSON number 表示，bits 才是 lossless 表示。
type DrawnValue struct {
	Bits  string `json:"bits"`
	Value string `json:"value"`
}

type DrawResponse struct {
	Seed     uint64       `json:"seed"`
	Type     string       `json:"type"`
	Category string       `json:"category"`
	Values   []DrawnValue `json:"values"`
}

func (dh *DrawHandler) Draw(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet && r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	req := new(DrawRequestBody)
	if r.Method == http.MethodGet {
		typStr := r.URL.Query().Get("type")
		catStr := r.URL.Query().Get("category")
		countStr := r.URL.Query().Get("count")
		seedStr := r.URL.Query().Get("seed")

		// type
		if typStr == "" {
			httperr.Errs(w, errs.NewWarn("type is required"))
			return
		}
		req.Type = typStr

		// category
		req.Category = catStr

		// count
		if countStr != "" {
			n, err := strconv.Atoi(countStr)
			if err != nil {
				httperr.Errs(w, errs.NewWarn("count must be integer"))
				return
			}
			req.Count = n
		}

		// seed
		if seedStr != "" {
			u, err := strconv.ParseUint(seedStr, 10, 64)
			if err != nil {
				httperr.Errs(w, errs.NewWarn("seed must be non-negative integer"))
				return
			}
			req.Seed = &u
		}
	} else {
		if err := json.NewDecoder(r.Body).Decode(req); err != nil {
			httperr.Errs(w, errs.NewWarn("invalid json body"))
			return
		}
	}

	// 參數規整與驗證
	kind, err := profile.ParseKind(req.Type)
	if err != nil {
		httperr.Errs(w, err)
		return
	}
	if req.Category == "" {
		req.Category = "value"
	}
	if req.Count == 0 {
		req.Count = 1
	}
	if req.Count < 1 || req.Count > maxDrawCount {
		httperr.Errs(w, errs.Warnf("count must be in [1, %d]", maxDrawCount))
		return
	}
	draw, err := drawOne(kind, req.Category)
	if err != nil {
		httperr.Errs(w, err)
		return
	}
	if req.Seed == nil {
		s := edgelab.RandSeed()
		req.Seed = &s
	}

	g := gen.NewWithSeed(*req.Seed)
	values := make([]DrawnValue, req.Count)
	for i := range values {
		values[i] = draw(g)
	}

	resp := DrawResponse{
		Seed:     *req.Seed,
		Type:     string(kind),
		Category: req.Category,
		Values:   values,
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(resp)
}

// drawOne 將 (type, category) 解析成單值抽取函數。
// 類別與型別不相容（例如整數的 nan）回傳 Warn 級錯誤。
func drawOne(k profile.Kind, cat string) (func(g *gen.Gen) DrawnValue, error) {
	if k.IsFloat() {
		switch cat {
		case "value", "special", "nan", "subnormal", "normal":
			// ok
		default:
			return nil, errs.Warnf("category %q is not valid for float type %s", cat, k)
		}
		if k == profile.F32 {
			return func(g *gen.Gen) DrawnValue {
				var v float32
				switch cat {
				case "special":
					v = g.SpecialFloat32()
				case "nan":
					v = g.NaNFloat32()
				case "subnormal":
					v = g.SubnormalFloat32()
				case "normal":
					v = g.NormalFloat32()
				default:
					v = g.Float32()
				}
				return DrawnValue{
					Bits:  hexBits(uint64(math.Float32bits(v)), 4),
					Value: strconv.FormatFloat(float64(v), 'g', -1, 32),
				}
			}, nil
		}
		return func(g *gen.Gen) DrawnValue {
			var v float64
			switch cat {
			case "special":
				v = g.SpecialFloat64()
			case "nan":
				v = g.NaNFloat64()
			case "subnormal":
				v = g.SubnormalFloat64()
			case "normal":
				v = g.NormalFloat64()
			default:
				v = g.Float64()
			}
			return DrawnValue{
				Bits:  "0x" + pad16(math.Float64bits(v)),
				Value: strconv.FormatFloat(v, 'g', -1, 64),
			}
		}, nil
	}

	switch cat {
	case "value", "special", "general":
		// ok
	default:
		return nil, errs.Warnf("category %q is not valid for integer type %s", cat, k)
	}

	// 128-bit 走 num 套件的字串表示，其餘整數以 64-bit 承載。
	switch k {
	case profile.U128:
		return func(g *gen.Gen) DrawnValue {
			v := pick3(cat, g.SpecialUint128, g.GeneralUint128, g.Uint128)
			hi, lo := v.Raw()
			return DrawnValue{
				Bits:  "0x" + pad16(hi) + pad16(lo),
				Value: v.String(),
			}
		}, nil
	case profile.I128:
		return func(g *gen.Gen) DrawnValue {
			v := pick3(cat, g.SpecialInt128, g.GeneralInt128, g.Int128)
			hi, lo := v.AsU128().Raw()
			return DrawnValue{
				Bits:  "0x" + pad16(hi) + pad16(lo),
				Value: v.String(),
			}
		}, nil
	}

	type intDrawer struct {
		width int
		draw  func(g *gen.Gen) (u uint64, signed int64, isSigned bool)
	}
	var d intDrawer
	switch k {
	case profile.U8:
		d = intDrawer{1, func(g *gen.Gen) (uint64, int64, bool) {
			return uint64(pick3(cat, g.SpecialUint8, g.GeneralUint8, g.Uint8)), 0, false
		}}
	case profile.U16:
		d = intDrawer{2, func(g *gen.Gen) (uint64, int64, bool) {
			return uint64(pick3(cat, g.SpecialUint16, g.GeneralUint16, g.Uint16)), 0, false
		}}
	case profile.U32:
		d = intDrawer{4, func(g *gen.Gen) (uint64, int64, bool) {
			return uint64(pick3(cat, g.SpecialUint32, g.GeneralUint32, g.Uint32)), 0, false
		}}
	case profile.U64:
		d = intDrawer{8, func(g *gen.Gen) (uint64, int64, bool) {
			return pick3(cat, g.SpecialUint64, g.GeneralUint64, g.Uint64), 0, false
		}}
	case profile.Uint:
		d = intDrawer{8, func(g *gen.Gen) (uint64, int64, bool) {
			return uint64(pick3(cat, g.SpecialUint, g.GeneralUint, g.Uint)), 0, false
		}}
	case profile.I8:
		d = intDrawer{1, func(g *gen.Gen) (uint64, int64, bool) {
			v := pick3(cat, g.SpecialInt8, g.GeneralInt8, g.Int8)
			return uint64(uint8(v)), int64(v), true
		}}
	case profile.I16:
		d = intDrawer{2, func(g *gen.Gen) (uint64, int64, bool) {
			v := pick3(cat, g.SpecialInt16, g.GeneralInt16, g.Int16)
			return uint64(uint16(v)), int64(v), true
		}}
	case profile.I32:
		d = intDrawer{4, func(g *gen.Gen) (uint64, int64, bool) {
			v := pick3(cat, g.SpecialInt32, g.GeneralInt32, g.Int32)
			return uint64(uint32(v)), int64(v), true
		}}
	case profile.I64:
		d = intDrawer{8, func(g *gen.Gen) (uint64, int64, bool) {
			v := pick3(cat, g.SpecialInt64, g.GeneralInt64, g.Int64)
			return uint64(v), v, true
		}}
	case profile.Int:
		d = intDrawer{8, func(g *gen.Gen) (uint64, int64, bool) {
			v := pick3(cat, g.SpecialInt, g.GeneralInt, g.Int)
			return uint64(v), int64(v), true
		}}
	default:
		return nil, errs.Warnf("unknown value type: %q", k)
	}

	return func(g *gen.Gen) DrawnValue {
		u, s, signed := d.draw(g)
		val := strconv.FormatUint(u, 10)
		if signed {
			val = strconv.FormatInt(s, 10)
		}
		return DrawnValue{Bits: hexBits(u, d.width), Value: val}
	}, nil
}

func pick3[T any](cat string, special, general, value func() T) T {
	switch cat {
	case "special":
		return special()
	case "general":
		return general()
	default:
		return value()
	}
}

// hexBits 以型別寬度輸出固定位數的十六進位位元模式。
func hexBits(u uint64, width int) string {
	s := strconv.FormatUint(u, 16)
	for len(s) < width*2 {
		s = "0" + s
	}
	return "0x" + s
}

func pad16(u uint64) string {
	s := strconv.FormatUint(u, 16)
	for len(s) < 16 {
		s = "0" + s
	}
	return s
}
