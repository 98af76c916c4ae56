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

// Package dev 提供 EdgeLab 的「內部 Dev Panel」HTTP endpoints。
//
// 目的：
//   - 給開發者在開發期快速驗證 PRNG 狀態的 Snapshot / Restore 回放流程。
//   - Snapshot 以 base64 字串在前端顯示，可貼回後端做 Restore。
//
// 注意：
//   - 這不是 production API；它偏向 debug / tooling，行為允許更寬鬆，
//     但仍需維持 deterministic 結論。
//   - 這裡的錯誤處理走 `httperr.Errs`（以 errs.Warn/errs.Fatal 對應 HTTP response）。
package dev

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/zintix-labs/edgelab"
	"github.com/zintix-labs/edgelab/corefmt"
	"github.com/zintix-labs/edgelab/errs"
	"github.com/zintix-labs/edgelab/sdk/core"
	"github.com/zintix-labs/edgelab/server/httperr"
	"github.com/zintix-labs/edgelab/server/netsvr"
	"github.com/zintix-labs/edgelab/server/svrcfg"
)

const maxEchoDraws = 100

// Register 註冊 Dev Panel 的 routes。
//
// Routes：
//   - GET  /dev/state ：以 seed 建一個 source 並回傳其 Snapshot（base64）。
//   - POST /dev/state ：以 Snapshot Restore 一個 source，回放接下來的 raw draws。
func Register(svr netsvr.NetRouter, cfg *svrcfg.SvrCfg) {
	svr.Get("/dev/state", stateGet)
	svr.Post("/dev/state", statePost)
}

func stateGet(w http.ResponseWriter, r *http.Request) {
	seedStr := r.URL.Query().Get("seed")

	var seed uint64
	if seedStr != "" {
		u, err := strconv.ParseUint(seedStr, 10, 64)
		if err != nil {
			httperr.Errs(w, errs.NewWarn("seed must be non-negative integer"))
			return
		}
		seed = u
	} else {
		seed = edgelab.RandSeed()
	}

	src := core.Default().New(seed)
	snap, err := src.Snapshot()
	if err != nil {
		httperr.Errs(w, errs.Wrap(err, "snapshot err"))
		return
	}

	resp := struct {
		Seed uint64 `json:"seed"`
		Snap string `json:"snap"`
	}{Seed: seed, Snap: corefmt.EncodeBase64(snap)}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(resp)
}

func statePost(w http.ResponseWriter, r *http.Request) {
	req := struct {
		Snap  string `json:"snap"`
		Count int    `json:"count"`
	}{}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httperr.Errs(w, errs.NewWarn("invalid json body"))
		return
	}
	if req.Snap == "" {
		httperr.Errs(w, errs.NewWarn("snap is required"))
		return
	}
	if req.Count == 0 {
		req.Count = 5
	}
	if req.Count < 1 || req.Count > maxEchoDraws {
		httperr.Errs(w, errs.Warnf("count must be in [1, %d]", maxEchoDraws))
		return
	}

	raw, err := corefmt.DecodeBase64(req.Snap)
	if err != nil {
		httperr.Errs(w, errs.NewWarn("snap must be base64"))
		return
	}
	src := core.Default().New(0)
	if err := src.Restore(raw); err != nil {
		httperr.Errs(w, errs.Wrap(err, "restore err"))
		return
	}

	draws := make([]string, req.Count)
	for i := range draws {
		draws[i] = fmt.Sprintf("0x%016x", src.Uint64())
	}
	snap, err := src.Snapshot()
	if err != nil {
		httperr.Errs(w, errs.Wrap(err, "snapshot err"))
		return
	}

	resp := struct {
		Draws []string `json:"draws"`
		Snap  string   `json:"snap"`
	}{Draws: draws, Snap: corefmt.EncodeBase64(snap)}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(resp)
}
