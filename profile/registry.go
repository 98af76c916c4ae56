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

package profile

import (
	"fmt"
	"io/fs"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/zintix-labs/edgelab/errs"
)

// Registry 保存載入完成的 profiles，依名稱查找。
// 載入後唯讀，可以被多個 goroutine 併發查詢。
type Registry struct {
	byName map[string]*Profile
	names  []string // 穩定排序後的名稱列表
}

// Load 從一個或多個 fs.FS 載入所有 *.yaml / *.yml profile。
//
// 設定目錄必須是平的（不允許子目錄），一個檔案一個 profile。
// 名稱重複視為載入錯誤，不論重複發生在同一個或不同的 FS。
// 呼叫端永遠注入 fs.FS，本包不讀檔案路徑。
func Load(srcs ...fs.FS) (*Registry, error) {
	if len(srcs) == 0 {
		return nil, errs.NewFatal("no profile fs provided")
	}

	r := &Registry{byName: map[string]*Profile{}}

	for i, src := range srcs {
		if src == nil {
			return nil, errs.Fatalf("profile fs[%d] is nil", i)
		}
		err := fs.WalkDir(src, ".", func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if d.IsDir() {
				if path == "." {
					return nil
				}
				return errs.Fatalf("profile FS must be flat (no subdirectories): %q", path)
			}

			lower := strings.ToLower(path)
			if !strings.HasSuffix(lower, ".yaml") && !strings.HasSuffix(lower, ".yml") {
				return nil
			}

			raw, err := fs.ReadFile(src, path)
			if err != nil {
				return errs.Wrap(err, fmt.Sprintf("read profile %q failed", path))
			}
			p, err := Parse(raw)
			if err != nil {
				return errs.Wrap(err, fmt.Sprintf("parse profile %q failed", path))
			}

			key := strings.ToLower(strings.TrimSpace(p.Name))
			if _, ok := r.byName[key]; ok {
				return errs.Fatalf("duplicate profile name %q (file %q)", p.Name, path)
			}
			r.byName[key] = p
			r.names = append(r.names, key)
			return nil
		})
		if err != nil {
			return nil, err
		}
	}

	sort.Strings(r.names)
	return r, nil
}

// Parse 解析單一 YAML profile、初始化並執行基本檢查後回傳。
func Parse(data []byte) (*Profile, error) {
	p := &Profile{}
	if err := yaml.Unmarshal(data, p); err != nil {
		return nil, errs.Wrap(err, "failed to unmarshall yaml")
	}
	if err := p.init(); err != nil {
		return nil, err
	}
	return p, nil
}

// Get 依名稱查找 profile（大小寫不敏感）。
func (r *Registry) Get(name string) (*Profile, bool) {
	p, ok := r.byName[strings.ToLower(strings.TrimSpace(name))]
	return p, ok
}

// Names 回傳穩定排序後的名稱列表副本。
func (r *Registry) Names() []string {
	if len(r.names) == 0 {
		return nil
	}
	return append([]string(nil), r.names...)
}

// All 依 Names 順序回傳所有 profiles。
func (r *Registry) All() []*Profile {
	out := make([]*Profile, 0, len(r.names))
	for _, n := range r.names {
		out = append(out, r.byName[n])
	}
	return out
}
