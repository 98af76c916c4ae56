package main

import "github.com/zintix-labs/edgelab/sdk/perf"

// makefile runner
func main() {
	bindVar()
	perf.RunPProf(executeEmitter, cfg.pprofmode)
}
