package stats

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/mattn/go-runewidth"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var lang language.Tag = language.English

// 信賴區間
type CI struct {
	Lo float64 `json:"Lo"`
	Hi float64 `json:"Hi"`
}

// Report 發射統計報告
//
// 類別比例帶 Clopper-Pearson 95% 信賴區間。這裡的分布是刻意偏斜的
// 對抗性分派，不代表任何真實資料的統計性質。
type Report struct {
	Summary    *SummaryReport `json:"Summary"`
	Categories []CategoryStat `json:"Categories"`
	Specials   []SpecialHit   `json:"Specials"`
	isDone     bool
}

type SummaryReport struct {
	Profile      string `json:"Profile"`
	Type         string `json:"Type"`
	Seed         uint64 `json:"Seed"`
	Rounds       int    `json:"Rounds"`
	Coverage     string `json:"Coverage"` // OR 過的 bit pattern，hex
	CoverageFull bool   `json:"CoverageFull"`
}

// CategoryStat 單一類別的計數與比例
type CategoryStat struct {
	Name  string  `json:"Name"`
	Count int     `json:"Count"`
	Frac  float64 `json:"Frac"`
	CI    CI      `json:"CI"`
}

// SpecialHit 單一枚舉特殊值的命中次數
type SpecialHit struct {
	Name  string `json:"Name"`
	Count int    `json:"Count"`
}

// ============================================================
// ** 公開方法 **
// ============================================================

// Report 將累積計數轉換為最終報告。
//
// 紀錄過程只處理整數計數，比例與信賴區間在這裡一次性計算。
func (c *Collector) Report(profileName string, seed uint64) *Report {
	r := &Report{
		Summary: &SummaryReport{
			Profile:  profileName,
			Type:     string(c.kind),
			Seed:     seed,
			Rounds:   c.rounds,
			Coverage: c.coverageHex(),
		},
	}

	full := c.covLo == widthMask(min(c.width, 64))
	if c.width == 128 {
		full = full && c.covHi == widthMask(64)
	}
	r.Summary.CoverageFull = full

	names := c.catNames()
	r.Categories = make([]CategoryStat, len(names))
	for i, name := range names {
		frac, ci := ProportionCI(c.cats[i], c.rounds, 0.95)
		r.Categories[i] = CategoryStat{Name: name, Count: c.cats[i], Frac: frac, CI: ci}
	}

	sNames := c.specialNames()
	r.Specials = make([]SpecialHit, len(sNames))
	for i, name := range sNames {
		r.Specials[i] = SpecialHit{Name: name, Count: c.specials[i]}
	}

	r.isDone = true
	return r
}

func (c *Collector) coverageHex() string {
	if c.width == 128 {
		return fmt.Sprintf("0x%016x%016x", c.covHi, c.covLo)
	}
	digits := c.width / 4
	return fmt.Sprintf("0x%0*x", digits, c.covLo)
}

func (r *Report) WriteWith(w io.Writer, rep ReportRender) error {
	return rep.Write(w, r)
}

// StdOut 將報告輸出成對齊的表格，ut 為本次發射耗時。
func (r *Report) StdOut(ut time.Duration) {
	formatDuration(ut, r.Summary.Rounds)
	sk, sm := r.fmtBasic()
	str := fmtTable(r.Summary.Profile, sk, sm)
	fmt.Println(str)
}

// ============================================================
// ** 內部方法 **
// ============================================================

func formatDuration(d time.Duration, rounds int) {
	p := message.NewPrinter(lang)
	if d < 0 {
		d = -d
	}
	sec := d.Seconds()
	if sec <= 0 {
		sec = 1e-9
	}
	vps := int(float64(rounds) / sec)
	if sec < 60.0 {
		p.Printf("used: %.2f seconds\nvps : %d values/sec\n", sec, vps)
		return
	}
	s := int(d.Seconds()) % 60
	m := int(d.Minutes()) % 60
	h := int(d.Hours())
	if h == 0 {
		p.Printf("used: %dm %ds\nvps : %d values/sec\n", m, s, vps)
		return
	}
	p.Printf("used: %dh:%dm:%ds\nvps : %d values/sec\n", h, m, s, vps)
}

func (r *Report) fmtBasic() ([]string, map[string]string) {
	p := message.NewPrinter(lang)
	basic := map[string]string{
		"Profile":  r.Summary.Profile,
		"Type":     r.Summary.Type,
		"Seed":     fmt.Sprintf("0x%016x", r.Summary.Seed),
		"Rounds":   p.Sprintf("%d", r.Summary.Rounds),
		"Coverage": r.Summary.Coverage,
		"Full":     fmt.Sprintf("%v", r.Summary.CoverageFull),
	}
	keys := []string{"Profile", "Type", "Seed", "Rounds", "Coverage", "Full"}

	for _, c := range r.Categories {
		k := "% " + c.Name
		basic[k] = p.Sprintf("%.2f %% [%.2f%%,%.2f%%]", 100.0*c.Frac, 100.0*c.CI.Lo, 100.0*c.CI.Hi)
		keys = append(keys, k)
	}
	for _, s := range r.Specials {
		k := "hit " + s.Name
		basic[k] = p.Sprintf("%d", s.Count)
		keys = append(keys, k)
	}
	return keys, basic
}

func fmtTable(title string, keys []string, msg map[string]string) string {
	p := message.NewPrinter(lang)
	maxKeyLen := 0
	maxValLen := 0
	for k, m := range msg {
		if w := runewidth.StringWidth(k); w > maxKeyLen {
			maxKeyLen = w
		}
		if w := runewidth.StringWidth(m); w > maxValLen {
			maxValLen = w
		}
	}
	maxKeyLen += 2
	maxValLen += 2

	divider := "+" + strings.Repeat("-", maxKeyLen) + "+" + strings.Repeat("-", maxValLen) + "+\n"
	top := "+" + strings.Repeat("-", maxKeyLen+1+maxValLen) + "+\n"

	totalInner := maxKeyLen + maxValLen + 1
	titleW := runewidth.StringWidth(title)

	left := (totalInner - titleW) / 2
	right := totalInner - titleW - left

	fmtStr := top
	fmtStr += p.Sprintf("|%s%s%s|\n", blank(left), title, blank(right))
	fmtStr += divider
	for _, k := range keys {
		fmtStr += p.Sprintf("| %s%s | %s%s |\n", k, blank(maxKeyLen-2-runewidth.StringWidth(k)), msg[k], blank(maxValLen-2-runewidth.StringWidth(msg[k])))
	}
	fmtStr += divider

	return fmtStr
}

func blank(w int) string {
	if w < 1 {
		return ""
	}
	return strings.Repeat(" ", w)
}
