package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/zintix-labs/edgelab"
	"github.com/zintix-labs/edgelab/profile"
	"github.com/zintix-labs/edgelab/profile/builtin"
	"github.com/zintix-labs/edgelab/sdk/core"
	"github.com/zintix-labs/edgelab/stats"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var cfg *config = new(config)

type config struct {
	profile   string
	typ       string
	category  string
	rounds    int
	worker    int
	seed      int64
	out       string
	render    string
	pprofmode string
}

func bindVar() {
	// 綁定 Flag 到本地變數的指標 (&)
	flag.StringVar(&cfg.profile, "profile", "", "registered profile name (see -profile list)")
	flag.StringVar(&cfg.typ, "type", "", "ad-hoc value type: f32 f64 u8..u128 i8..i128 uint int")
	flag.StringVar(&cfg.category, "category", "", "ad-hoc category: value|special|nan|subnormal|normal|general")
	flag.IntVar(&cfg.rounds, "n", 1000000, "rounds for ad-hoc type runs")
	flag.IntVar(&cfg.worker, "workers", 1, "number of workers")
	flag.Int64Var(&cfg.seed, "seed", -1, "int64 seed for random number generator")
	flag.StringVar(&cfg.out, "o", "", "write a zstd corpus to this path")
	flag.StringVar(&cfg.render, "render", "table", "report render: table|json|yaml")
	flag.StringVar(&cfg.pprofmode, "p", "", "pprof: '', cpu, heap, allocs")

	flag.Parse()
}

// 這裡解析並分支要執行的發射器
func executeEmitter() {
	cfg.valid() // 基本檢查

	lab, err := edgelab.New(
		core.Default(),
		edgelab.Profiles(builtin.FS),
	)
	if err != nil {
		log.Fatal(err)
	}

	if cfg.profile == "list" {
		for _, name := range lab.Registry().Names() {
			fmt.Println(name)
		}
		return
	}

	em, err := buildEmitter(lab)
	if err != nil {
		log.Fatal(err)
	}

	// 至此確保可執行
	green := "\033[1;32m"
	reset := "\033[0m"
	p := message.NewPrinter(language.English)
	prof := em.Profile()
	p.Printf("%s[PROFILE:%s] [TYPE:%s] [ROUNDS:%d] [WORKERS:%d] [SEED:%d]%s\n",
		green, prof.Name, prof.Kind(), prof.Count, cfg.worker, em.Seed(), reset)

	var st *stats.Report
	var used time.Duration
	switch {
	case cfg.out != "":
		f, err := os.Create(cfg.out)
		if err != nil {
			log.Fatal(err)
		}
		defer f.Close()
		st, used, err = em.RunCorpus(f, true)
		if err != nil {
			log.Fatal(err)
		}
	case cfg.worker > 1:
		st, used, err = em.RunMP(cfg.worker, true)
		if err != nil {
			log.Fatal(err)
		}
	default:
		st, used, err = em.Run(true)
		if err != nil {
			log.Fatal(err)
		}
	}

	switch cfg.render {
	case "json":
		if err := st.WriteWith(os.Stdout, &stats.JsonReportRender{}); err != nil {
			log.Fatal(err)
		}
	case "yaml":
		if err := st.WriteWith(os.Stdout, &stats.YAMLReportRender{}); err != nil {
			log.Fatal(err)
		}
	default:
		st.StdOut(used)
	}
}

// buildEmitter 依 flags 解析出一個可執行的 Emitter。
// -profile 優先；-type 走臨時剖面，-category 以單一權重格表達。
func buildEmitter(lab *edgelab.Lab) (*edgelab.Emitter, error) {
	if cfg.profile != "" {
		if cfg.seed >= 0 {
			return lab.NewEmitterWithSeed(cfg.profile, uint64(cfg.seed))
		}
		return lab.NewEmitter(cfg.profile)
	}

	p, err := profile.New(fmt.Sprintf("adhoc-%s", cfg.typ), cfg.typ, cfg.rounds)
	if err != nil {
		return nil, err
	}
	if w := categoryWeights(p.Kind(), cfg.category); w != nil {
		p.Weights = w
	}
	if cfg.seed >= 0 {
		return lab.NewEmitterAdHoc(p, uint64(cfg.seed))
	}
	return lab.NewEmitterAdHoc(p, edgelab.RandSeed())
}

// categoryWeights 把單一類別翻成滿權重的 Weights；"" 或 value 表示完整混合分布。
func categoryWeights(k profile.Kind, cat string) *profile.Weights {
	switch cat {
	case "", "value":
		return nil
	case "special":
		return &profile.Weights{Special: 1}
	case "nan":
		mustFloat(k, cat)
		return &profile.Weights{NaN: 1}
	case "subnormal":
		mustFloat(k, cat)
		return &profile.Weights{Subnormal: 1}
	case "normal":
		mustFloat(k, cat)
		return &profile.Weights{Normal: 1}
	case "general":
		if k.IsFloat() {
			log.Fatalf("value err : category %q is not valid for float type %s", cat, k)
		}
		return &profile.Weights{General: 1}
	default:
		log.Fatalf("value err : unknown category %q", cat)
		return nil
	}
}

func mustFloat(k profile.Kind, cat string) {
	if !k.IsFloat() {
		log.Fatalf("value err : category %q is not valid for integer type %s", cat, k)
	}
}

func (cfg *config) valid() {
	p := message.NewPrinter(language.English)

	// 工作協程檢查(併發數)
	if cfg.worker < 1 {
		log.Fatal("value err : workers must > 0")
	}

	// profile 與 type 擇一
	if cfg.profile == "" && cfg.typ == "" {
		log.Fatal("value err : one of -profile or -type is required (use -profile list)")
	}
	if cfg.profile != "" && cfg.typ != "" {
		log.Fatal("value err : -profile and -type are mutually exclusive")
	}

	// 回合數檢查
	if cfg.typ != "" && cfg.rounds < 1 {
		log.Fatal("value err : n must > 0")
	}
	if cfg.rounds > profile.MaxCount {
		p.Printf("too much rounds: %d resized to %d\n", cfg.rounds, profile.MaxCount)
		cfg.rounds = profile.MaxCount
	}

	// corpus 輸出與多工互斥：corpus 需要單一序列
	if cfg.out != "" && cfg.worker > 1 {
		log.Fatal("value err : -o writes a single replayable stream; use workers=1")
	}

	switch cfg.render {
	case "table", "json", "yaml":
	default:
		log.Fatal("value err : render must be table|json|yaml")
	}
}
