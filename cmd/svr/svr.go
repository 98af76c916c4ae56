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

package main

import (
	"flag"
	"fmt"

	"github.com/zintix-labs/edgelab"
	"github.com/zintix-labs/edgelab/profile/builtin"
	"github.com/zintix-labs/edgelab/sdk/core"
	"github.com/zintix-labs/edgelab/server"
	"github.com/zintix-labs/edgelab/server/logger"
	"github.com/zintix-labs/edgelab/server/netsvr"
	"github.com/zintix-labs/edgelab/server/svrcfg"
)

// This command is intentionally a "lab server" entrypoint for the edgelab repo.
// It enables all developer endpoints by default.
// For production deployments, use a separate scaffold project and run ModeProd.
func main() {
	cfg := new(config)
	flag.StringVar(&cfg.LogMode, "log-mode", "ModeDev", "log mode: ModeDev|ModeProd|ModeSilence")
	flag.StringVar(&cfg.Addr, "addr", "", "listen address, e.g. :5811 (default server address when empty)")

	flag.Parse()

	sCfg, err := cfg.build()
	if err != nil {
		fmt.Println(err)
		return
	}
	if cfg.Addr == "" {
		server.Run(sCfg)
		return
	}
	server.RunWithSvr(sCfg, netsvr.NewChiServer(cfg.Addr))
}

type config struct {
	LogMode string
	Addr    string
}

func (cfg *config) build() (*svrcfg.SvrCfg, error) {
	log, _ := logger.NewAsync(4096, cfg.norm())

	lab, err := edgelab.New(
		core.Default(),
		edgelab.Profiles(builtin.FS),
	)
	if err != nil {
		return nil, err
	}
	return &svrcfg.SvrCfg{
		Log: log,
		Lab: lab,
	}, nil
}

func (cfg *config) norm() logger.LogMode {
	switch cfg.LogMode {
	case "ModeDev":
		return logger.ModeDev
	case "ModeProd":
		return logger.ModeProd
	case "ModeSilence":
		return logger.ModeSilence
	default:
		return logger.ModeDev
	}
}
