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
	"fmt"
	"io"
	"math"
	"sync"
	"time"

	"github.com/cheggaaa/pb/v3"

	"github.com/zintix-labs/edgelab/corefmt"
	"github.com/zintix-labs/edgelab/corpus"
	"github.com/zintix-labs/edgelab/errs"
	"github.com/zintix-labs/edgelab/profile"
	"github.com/zintix-labs/edgelab/sdk/core"
	"github.com/zintix-labs/edgelab/sdk/gen"
	"github.com/zintix-labs/edgelab/sdk/sampler"
	"github.com/zintix-labs/edgelab/stats"
)

// Emitter 依剖面執行一次發射：產 count 個值、逐一分類統計，
// 可選擇同時落地 corpus。由 Lab 建立。
type Emitter struct {
	prof     *profile.Profile
	cf       core.SourceFactory
	initSeed uint64
}

func newEmitter(p *profile.Profile, cf core.SourceFactory, seed uint64) *Emitter {
	return &Emitter{prof: p, cf: cf, initSeed: seed}
}

// Profile 回傳此 Emitter 綁定的剖面。
func (e *Emitter) Profile() *profile.Profile { return e.prof }

// Seed 回傳此 Emitter 的初始種子。
func (e *Emitter) Seed() uint64 { return e.initSeed }

// Run 單線發射：連續產 count 個值並回傳統計結果與用時。
func (e *Emitter) Run(showpb bool) (*stats.Report, time.Duration, error) {
	g := gen.New(e.cf.New(e.initSeed))
	c := stats.NewCollector(e.prof.Kind())
	draw := e.drawFunc(g)

	bar := pb.StartNew(e.prof.Count)
	if !showpb {
		bar.SetWriter(io.Discard)
	}
	for i := 0; i < e.prof.Count; i++ {
		draw(c, nil)
		bar.Increment()
	}
	used := time.Since(bar.StartTime())
	bar.Finish()

	return c.Report(e.prof.Name, e.initSeed), used, nil
}

// RunMP 平行發射：每個 worker 用 Fork 出來的子串流，各自統計後合併。
// 總量仍是剖面的 count，餘數分給第一個 worker。
//
// 注意：合併後的序列與單線版不是同一條（子串流彼此獨立），
// 但同 seed 同 workers 的結果完全可重現。
func (e *Emitter) RunMP(workers int, showpb bool) (*stats.Report, time.Duration, error) {
	if workers <= 0 {
		return nil, 0, errs.NewWarn("workers must > 0")
	}
	if workers == 1 {
		return e.Run(showpb)
	}

	parent := gen.New(e.cf.New(e.initSeed))
	gens := make([]*gen.Gen, workers)
	colls := make([]*stats.Collector, workers)
	for i := 0; i < workers; i++ {
		gens[i] = parent.Fork()
		colls[i] = stats.NewCollector(e.prof.Kind())
	}

	quota := e.prof.Count / workers
	rem := e.prof.Count % workers

	wg := new(sync.WaitGroup)
	wg.Add(workers)
	bar := pb.StartNew(e.prof.Count)
	if !showpb {
		bar.SetWriter(io.Discard)
	}
	for i := 0; i < workers; i++ {
		go func(i int) {
			defer wg.Done()
			n := quota
			if i == 0 {
				n += rem
			}
			draw := e.drawFunc(gens[i])
			c := colls[i]
			for r := 0; r < n; r++ {
				draw(c, nil)
				bar.Increment()
			}
		}(i)
	}
	wg.Wait()
	used := time.Since(bar.StartTime())
	bar.Finish()

	total := colls[0]
	for _, c := range colls[1:] {
		if err := total.Merge(c); err != nil {
			return nil, 0, err
		}
	}
	return total.Report(e.prof.Name, e.initSeed), used, nil
}

// RunCorpus 單線發射並把每個值落地成 corpus 記錄。
// header 會帶上發射前的來源 Snapshot，讓 corpus 可以被重播驗證。
func (e *Emitter) RunCorpus(out io.Writer, showpb bool) (*stats.Report, time.Duration, error) {
	src := e.cf.New(e.initSeed)
	snap, err := src.Snapshot()
	if err != nil {
		return nil, 0, errs.Wrap(err, "snapshot source failed")
	}

	w, err := corpus.NewWriter(out, corpus.Header{
		Profile:  e.prof.Name,
		Type:     string(e.prof.Kind()),
		Seed:     e.initSeed,
		Count:    e.prof.Count,
		Snapshot: corefmt.EncodeBase64(snap),
	})
	if err != nil {
		return nil, 0, err
	}

	g := gen.New(src)
	c := stats.NewCollector(e.prof.Kind())
	draw := e.drawFunc(g)

	bar := pb.StartNew(e.prof.Count)
	if !showpb {
		bar.SetWriter(io.Discard)
	}
	for i := 0; i < e.prof.Count; i++ {
		if err := draw(c, w); err != nil {
			return nil, 0, err
		}
		bar.Increment()
	}
	used := time.Since(bar.StartTime())
	bar.Finish()

	if err := w.Close(); err != nil {
		return nil, 0, err
	}
	return c.Report(e.prof.Name, e.initSeed), used, nil
}

// drawFn 產一個值、記進 collector，sink 非 nil 時同時落地。
type drawFn func(c *stats.Collector, sink *corpus.Writer) error

// drawFunc 依剖面的型別與權重組出發射函數。
//
// 有自訂權重時用 sampler.Categorical 決定類別（多消耗一次亂數），
// 沒有權重時走 Gen 內建的均勻分派。
func (e *Emitter) drawFunc(g *gen.Gen) drawFn {
	p := e.prof
	switch p.Kind() {
	case profile.F32:
		pick := pickFloat32(g, p)
		return func(c *stats.Collector, sink *corpus.Writer) error {
			v := pick()
			c.RecordFloat32(v)
			if sink != nil {
				return sink.Write(fmt.Sprintf("0x%08x", math.Float32bits(v)))
			}
			return nil
		}
	case profile.F64:
		pick := pickFloat64(g, p)
		return func(c *stats.Collector, sink *corpus.Writer) error {
			v := pick()
			c.RecordFloat64(v)
			if sink != nil {
				return sink.Write(fmt.Sprintf("0x%016x", math.Float64bits(v)))
			}
			return nil
		}
	case profile.U8:
		return uintDraw(g, p, func() uint64 { return uint64(g.Uint8()) },
			func() uint64 { return uint64(g.SpecialUint8()) },
			func() uint64 { return uint64(g.GeneralUint8()) })
	case profile.U16:
		return uintDraw(g, p, func() uint64 { return uint64(g.Uint16()) },
			func() uint64 { return uint64(g.SpecialUint16()) },
			func() uint64 { return uint64(g.GeneralUint16()) })
	case profile.U32:
		return uintDraw(g, p, func() uint64 { return uint64(g.Uint32()) },
			func() uint64 { return uint64(g.SpecialUint32()) },
			func() uint64 { return uint64(g.GeneralUint32()) })
	case profile.U64:
		return uintDraw(g, p, g.Uint64, g.SpecialUint64, g.GeneralUint64)
	case profile.Uint:
		return uintDraw(g, p, func() uint64 { return uint64(g.Uint()) },
			func() uint64 { return uint64(g.SpecialUint()) },
			func() uint64 { return uint64(g.GeneralUint()) })
	case profile.I8:
		return intDraw(g, p, func() int64 { return int64(g.Int8()) },
			func() int64 { return int64(g.SpecialInt8()) },
			func() int64 { return int64(g.GeneralInt8()) })
	case profile.I16:
		return intDraw(g, p, func() int64 { return int64(g.Int16()) },
			func() int64 { return int64(g.SpecialInt16()) },
			func() int64 { return int64(g.GeneralInt16()) })
	case profile.I32:
		return intDraw(g, p, func() int64 { return int64(g.Int32()) },
			func() int64 { return int64(g.SpecialInt32()) },
			func() int64 { return int64(g.GeneralInt32()) })
	case profile.I64:
		return intDraw(g, p, g.Int64, g.SpecialInt64, g.GeneralInt64)
	case profile.Int:
		return intDraw(g, p, func() int64 { return int64(g.Int()) },
			func() int64 { return int64(g.SpecialInt()) },
			func() int64 { return int64(g.GeneralInt()) })
	case profile.U128:
		pick := pick2(g, p, g.Uint128, g.SpecialUint128, g.GeneralUint128)
		return func(c *stats.Collector, sink *corpus.Writer) error {
			v := pick()
			c.RecordU128(v)
			if sink != nil {
				return sink.Write(v.String())
			}
			return nil
		}
	case profile.I128:
		pick := pick2(g, p, g.Int128, g.SpecialInt128, g.GeneralInt128)
		return func(c *stats.Collector, sink *corpus.Writer) error {
			v := pick()
			c.RecordI128(v)
			if sink != nil {
				return sink.Write(v.String())
			}
			return nil
		}
	default:
		panic("edgelab: unknown kind " + string(p.Kind()))
	}
}

func pickFloat32(g *gen.Gen, p *profile.Profile) func() float32 {
	if !p.HasWeights() {
		return g.Float32
	}
	w := p.Weights.FloatWeights()
	cat := sampler.NewCategorical(w[:])
	r := g.Source()
	return func() float32 {
		switch cat.Pick(r) {
		case 0:
			return g.NormalFloat32()
		case 1:
			return g.SubnormalFloat32()
		case 2:
			return g.NaNFloat32()
		default:
			return g.SpecialFloat32()
		}
	}
}

func pickFloat64(g *gen.Gen, p *profile.Profile) func() float64 {
	if !p.HasWeights() {
		return g.Float64
	}
	w := p.Weights.FloatWeights()
	cat := sampler.NewCategorical(w[:])
	r := g.Source()
	return func() float64 {
		switch cat.Pick(r) {
		case 0:
			return g.NormalFloat64()
		case 1:
			return g.SubnormalFloat64()
		case 2:
			return g.NaNFloat64()
		default:
			return g.SpecialFloat64()
		}
	}
}

// pick2 處理 special/general 兩格權重的整數型別。
func pick2[T any](g *gen.Gen, p *profile.Profile, plain, special, general func() T) func() T {
	if !p.HasWeights() {
		return plain
	}
	w := p.Weights.IntWeights()
	cat := sampler.NewCategorical(w[:])
	r := g.Source()
	return func() T {
		if cat.Pick(r) == 0 {
			return special()
		}
		return general()
	}
}

func uintDraw(g *gen.Gen, p *profile.Profile, plain, special, general func() uint64) drawFn {
	pick := pick2(g, p, plain, special, general)
	return func(c *stats.Collector, sink *corpus.Writer) error {
		v := pick()
		c.RecordUint(v)
		if sink != nil {
			return sink.Write(fmt.Sprintf("%d", v))
		}
		return nil
	}
}

func intDraw(g *gen.Gen, p *profile.Profile, plain, special, general func() int64) drawFn {
	pick := pick2(g, p, plain, special, general)
	return func(c *stats.Collector, sink *corpus.Writer) error {
		v := pick()
		c.RecordInt(v)
		if sink != nil {
			return sink.Write(fmt.Sprintf("%d", v))
		}
		return nil
	}
}
