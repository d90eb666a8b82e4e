package main

import (
	"context"
	"os"
	"os/signal"

	"hog/config"
	"hog/experiments"

	"github.com/alecthomas/kong"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type CLI struct {
	RunExperiments bool   `short:"r" help:"Runs strategy experiments"`
	Config         string `short:"c" type:"existingfile" help:"YAML experiment plan"`
	Output         string `short:"o" help:"Directory for experiment results (overrides the plan)"`
	Samples        int    `short:"n" help:"Samples per estimate (overrides the plan)"`
	Seed           uint64 `help:"Dice seed, 0 for a random seed (overrides the plan)"`
	Verbose        bool   `short:"v" help:"Log every turn"`
}

func (c *CLI) Run() error {
	if !c.RunExperiments {
		return nil
	}

	cfg, err := config.Load(c.Config)
	if err != nil {
		return err
	}
	if c.Output != "" {
		cfg.OutputDir = c.Output
	}
	if c.Samples > 0 {
		cfg.NumSamples = c.Samples
	}
	if c.Seed > 0 {
		cfg.Seed = c.Seed
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	return experiments.RunExperiments(ctx, cfg)
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("hog"),
		kong.Description("Play Hog"),
		kong.UsageOnError(),
	)

	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if cli.Verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	err := ctx.Run()
	ctx.FatalIfErrorf(err)
}
