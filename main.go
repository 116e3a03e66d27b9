package main

import (
	"context"
	"fmt"
	"os"

	"github.com/cxykevin/bstack/config"
	"github.com/cxykevin/bstack/demo/script"
	"github.com/cxykevin/bstack/library/stack"
	"github.com/cxykevin/bstack/log"
)

func main() {
	config.Load()
	log.Load()
	defer log.Shutdown()
	defer log.SolvePanic()

	if err := run(context.Background()); err != nil {
		log.New("main").Error("%v", err)
		fmt.Fprintln(os.Stderr, err)
		log.Shutdown()
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	cfg := config.GlobalConfig.Stack
	s, err := stack.New(cfg.Capacity, stack.WithSentinel(cfg.Sentinel))
	if err != nil {
		return err
	}
	r := script.NewRunner(s, os.Stdout, cfg.Strict)

	// 环境变量 BSTACK_SCRIPT 优先于配置文件
	path := config.GlobalConfig.ScriptPath
	if v := os.Getenv("BSTACK_SCRIPT"); v != "" {
		path = v
	}
	if path == "" {
		return r.Run(ctx, script.DefaultScript)
	}
	return r.RunFile(ctx, path)
}
