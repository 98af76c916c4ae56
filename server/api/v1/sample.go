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
	"fmt"
	"net/http"
	"strconv"

	"github.com/zintix-labs/edgelab"
	"github.com/zintix-labs/edgelab/errs"
	"github.com/zintix-labs/edgelab/profile"
	"github.com/zintix-labs/edgelab/server/httperr"
	"github.com/zintix-labs/edgelab/stats"
)

// 單次 API 的取樣回合上限。
const maxSampleRounds = 1_000_000

// SampleHandler 提供 /v1/sample：跑一段發射並回傳統計報表。
type SampleHandler struct {
	lab *edgelab.Lab
}

func NewSampleHandler(lab *edgelab.Lab) (*SampleHandler, error) {
	if lab == nil {
		return nil, errs.NewFatal("lab is required")
	}
	return &SampleHandler{lab: lab}, nil
}

// SampleRequestBody 是 /v1/sample 的輸入 payload。
//
// Profile 與 Type 擇一：
//   - Profile：使用已註冊剖面（含其權重）；Rounds 可覆寫回合數。
//   - Type：臨時剖面，均勻混合分布；Rounds 未提供時預設 1000。
type SampleRequestBody struct {
	Profile string  `json:"profile"`
	Type    string  `json:"type"`
	Rounds  int     `json:"rounds"`
	Seed    *uint64 `json:"seed,omitempty"`
}

type SampleResponse struct {
	Stats    *stats.Report `json:"stats"`
	UsedTime int64         `json:"used_ms"`
}

func (sh *SampleHandler) Sample(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet && r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	req := new(SampleRequestBody)
	if r.Method == http.MethodGet {
		req.Profile = r.URL.Query().Get("profile")
		req.Type = r.URL.Query().Get("type")
		roundsStr := r.URL.Query().Get("rounds")
		seedStr := r.URL.Query().Get("seed")

		if roundsStr != "" {
			n, err := strconv.Atoi(roundsStr)
			if err != nil {
				httperr.Errs(w, errs.NewWarn("rounds must be integer"))
				return
			}
			req.Rounds = n
		}
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

	if (req.Profile == "") == (req.Type == "") {
		httperr.Errs(w, errs.NewWarn("exactly one of profile or type is required"))
		return
	}
	if req.Rounds != 0 && (req.Rounds < 1 || req.Rounds > maxSampleRounds) {
		httperr.Errs(w, errs.Warnf("rounds must be in [1, %d]", maxSampleRounds))
		return
	}

	p, err := sh.resolveProfile(req)
	if err != nil {
		httperr.Errs(w, err)
		return
	}

	var em *edgelab.Emitter
	if req.Seed != nil {
		em, err = sh.lab.NewEmitterAdHoc(p, *req.Seed)
	} else if p.Seed != nil {
		em, err = sh.lab.NewEmitterAdHoc(p, *p.Seed)
	} else {
		em, err = sh.lab.NewEmitterAdHoc(p, edgelab.RandSeed())
	}
	if err != nil {
		// 這裡的錯誤來自 lab 尊重錯誤分級
		httperr.Errs(w, errs.Wrap(err, "build emitter err"))
		return
	}

	rep, used, err := em.Run(false)
	if err != nil {
		httperr.Errs(w, errs.Wrap(err, "emit err"))
		return
	}
	resp := SampleResponse{
		Stats:    rep,
		UsedTime: used.Milliseconds(),
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(resp)
}

// resolveProfile 將請求轉成一份可執行剖面。
// 已註冊剖面在 Rounds 覆寫時會複製一份，權重與種子照舊。
func (sh *SampleHandler) resolveProfile(req *SampleRequestBody) (*profile.Profile, error) {
	if req.Profile != "" {
		p, ok := sh.lab.Registry().Get(req.Profile)
		if !ok {
			return nil, errs.Warnf("unknown profile: %q", req.Profile)
		}
		if req.Rounds == 0 || req.Rounds == p.Count {
			if p.Count > maxSampleRounds {
				return nil, errs.Warnf("profile count %d exceeds api limit %d; pass rounds", p.Count, maxSampleRounds)
			}
			return p, nil
		}
		cp, err := profile.New(p.Name, string(p.Kind()), req.Rounds)
		if err != nil {
			return nil, err
		}
		cp.Weights = p.Weights
		cp.Seed = p.Seed
		cp.Note = p.Note
		return cp, nil
	}

	rounds := req.Rounds
	if rounds == 0 {
		rounds = 1000
	}
	return profile.New(fmt.Sprintf("adhoc-%s", req.Type), req.Type, rounds)
}
