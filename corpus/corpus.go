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

// Package corpus 持久化發射出的對抗值序列。
//
// 檔案格式：
//
//	blob frame (uvarint 長度前綴) 包一段 JSON header
//	|| zstd 壓縮的 JSON lines，一行一個值
//
// header 記錄 profile 名稱、型別、種子與來源的 Snapshot（base64），
// 讓同一個 corpus 可以被重播驗證：用記錄的種子重新產生，
// 序列必須 bit-for-bit 一致。
//
// 浮點值以 hex bit pattern 儲存，因為 NaN 與 ±Inf 無法用 JSON 數字表示。
package corpus

import (
	"bufio"
	"encoding/json"
	"io"

	"github.com/klauspost/compress/zstd"

	"github.com/zintix-labs/edgelab/corefmt"
	"github.com/zintix-labs/edgelab/errs"
)

// header 大小上限，防止壞檔導致的超大配置。
const maxHeaderBytes = 1 << 20

// Header 是 corpus 檔案的中繼資料。
type Header struct {
	Profile  string `json:"profile"`
	Type     string `json:"type"`
	Seed     uint64 `json:"seed"`
	Count    int    `json:"count"`
	Snapshot string `json:"snapshot,omitempty"` // 來源快照，base64
}

// Record 是一行記錄。浮點值為 hex bit pattern，整數為十進位字串。
type Record struct {
	V string `json:"v"`
}

// Writer 將記錄寫進 zstd 壓縮串流。
type Writer struct {
	zw   *zstd.Encoder
	enc  *json.Encoder
	n    int
	done bool
}

// NewWriter 先寫入 header blob frame，再開啟壓縮串流。
// 呼叫端負責最後呼叫 Close 沖刷壓縮緩衝。
func NewWriter(w io.Writer, hdr Header) (*Writer, error) {
	payload, err := json.Marshal(hdr)
	if err != nil {
		return nil, errs.Wrap(err, "marshal corpus header failed")
	}
	if err := corefmt.WriteBlobFrame(w, payload); err != nil {
		return nil, errs.Wrap(err, "write corpus header failed")
	}

	zw, err := zstd.NewWriter(w)
	if err != nil {
		return nil, errs.Wrap(err, "open zstd writer failed")
	}
	return &Writer{zw: zw, enc: json.NewEncoder(zw)}, nil
}

// Write 追加一筆記錄。
func (w *Writer) Write(v string) error {
	if w.done {
		return errs.NewWarn("corpus writer already closed")
	}
	if err := w.enc.Encode(Record{V: v}); err != nil {
		return errs.Wrap(err, "encode corpus record failed")
	}
	w.n++
	return nil
}

// Count 回傳已寫入的記錄數。
func (w *Writer) Count() int { return w.n }

// Close 沖刷並關閉壓縮串流。底下的 io.Writer 不會被關。
func (w *Writer) Close() error {
	if w.done {
		return nil
	}
	w.done = true
	if err := w.zw.Close(); err != nil {
		return errs.Wrap(err, "close zstd writer failed")
	}
	return nil
}

// Reader 重播一份 corpus。
type Reader struct {
	hdr Header
	zr  *zstd.Decoder
	sc  *bufio.Scanner
}

// NewReader 讀取 header 並開啟解壓串流。
func NewReader(r io.Reader) (*Reader, error) {
	payload, rest, err := corefmt.ReadBlobFrame(r, maxHeaderBytes)
	if err != nil {
		return nil, errs.Wrap(err, "read corpus header failed")
	}
	var hdr Header
	if err := json.Unmarshal(payload, &hdr); err != nil {
		return nil, errs.Wrap(err, "unmarshal corpus header failed")
	}

	zr, err := zstd.NewReader(rest)
	if err != nil {
		return nil, errs.Wrap(err, "open zstd reader failed")
	}
	return &Reader{hdr: hdr, zr: zr, sc: bufio.NewScanner(zr)}, nil
}

// Header 回傳檔案的中繼資料。
func (r *Reader) Header() Header { return r.hdr }

// Next 回傳下一筆記錄，串流結束回傳 io.EOF。
func (r *Reader) Next() (Record, error) {
	for r.sc.Scan() {
		line := r.sc.Bytes()
		if len(line) == 0 {
			continue
		}
		var rec Record
		if err := json.Unmarshal(line, &rec); err != nil {
			return Record{}, errs.Wrap(err, "unmarshal corpus record failed")
		}
		return rec, nil
	}
	if err := r.sc.Err(); err != nil {
		return Record{}, errs.Wrap(err, "scan corpus stream failed")
	}
	return Record{}, io.EOF
}

// Close 釋放解壓資源。
func (r *Reader) Close() {
	r.zr.Close()
}
