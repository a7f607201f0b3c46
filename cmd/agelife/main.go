package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"time"

	"agelife/internal/app"
	"agelife/internal/control"
	"agelife/internal/core"
	"agelife/internal/frontend"
	_ "agelife/internal/headless"
	_ "agelife/internal/term"

	"github.com/charmbracelet/log"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	if err := cfg.Load(flag.CommandLine); err != nil {
		log.Fatal("load config", "err", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatal("invalid config", "err", err)
	}
	if cfg.PrintConfig {
		if err := cfg.WriteYAML(os.Stdout); err != nil {
			log.Fatal("print config", "err", err)
		}
		return
	}

	logger, closer, err := app.NewLogger(cfg)
	if err != nil {
		log.Fatal("logger", "err", err)
	}
	defer closer.Close()

	factory, err := frontend.Lookup(cfg.Frontend)
	if err != nil {
		log.Fatal("select frontend", "err", err)
	}
	fe, err := factory(cfg.Options(logger, os.Stdout))
	if err != nil {
		log.Fatal("create frontend", "frontend", cfg.Frontend, "err", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	clock := core.NewDeferQueue(time.Now())
	ctl := control.New(clock, core.NewRNG(cfg.Seed), logger)

	logger.Info("starting", "frontend", fe.Name(), "seed", cfg.Seed)
	if err := fe.Run(ctx, ctl, clock); err != nil {
		logger.Error("frontend stopped", "err", err)
		closer.Close()
		os.Exit(1)
	}
}
