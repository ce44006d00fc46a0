// Copyright (c) 2020 The JaxNetwork developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.
package main

import (
	"io"
	"os"

	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	"github.com/urfave/cli/v2"
	"gitlab.com/jaxnet/hashledger/config"
	"gitlab.com/jaxnet/hashledger/corelog"
	"gitlab.com/jaxnet/hashledger/node/metrics"
	"gitlab.com/jaxnet/hashledger/node/mining"
	"gitlab.com/jaxnet/hashledger/utils/report"
)

func main() {
	log := corelog.New(config.LogUnitCMDL, corelog.DefaultLevel, corelog.Config{}.Default())
	ctx, cancel := interruptListener(log)
	defer cancel()

	app := &App{out: os.Stdout}
	if err := app.cliApp().RunContext(ctx, os.Args); err != nil {
		println(err.Error())
		os.Exit(1)
	}
}

// App holds the state shared by all commands.
type App struct {
	config   config.Config
	log      zerolog.Logger
	sealer   *mining.Sealer
	metrics  *metrics.Collectors
	registry *prometheus.Registry
	flags    map[string]cli.Flag
	out      io.Writer
}

func (app *App) cliApp() *cli.App {
	app.flags = getFlags()
	return &cli.App{
		Name:     "hashledger",
		Usage:    "digest, commitment tree and proof-of-work ledger toolkit",
		Flags:    app.InitFlags(),
		Before:   app.InitCfg,
		After:    app.printMetrics,
		Commands: app.getCommands(),
		Writer:   app.out,
		// main reports errors and picks the exit status.
		ExitErrHandler: func(*cli.Context, error) {},
	}
}

func (app *App) getCommands() cli.Commands {
	return []*cli.Command{
		{
			Name:      "hash",
			Usage:     "print the SHA-512 digest of each argument, or of standard input",
			ArgsUsage: "[text...]",
			Flags:     []cli.Flag{app.flags[flagHex]},
			Action:    app.HashCmd,
		},
		{
			Name:   "demo",
			Usage:  "build a small sealed ledger, prove one entry and tamper with it",
			Action: app.DemoCmd,
		},
		{
			Name:  "chain",
			Usage: "build a ledger from payloads and print it",
			Flags: []cli.Flag{
				app.flags[flagEntries],
				app.flags[flagSeal],
				app.flags[flagTamper],
				app.flags[flagFormat],
			},
			Action: app.ChainCmd,
		},
		{
			Name:   "check",
			Usage:  "validate a ledger exported with chain --format csv",
			Flags:  []cli.Flag{app.flags[flagInput]},
			Action: app.CheckCmd,
		},
		{
			Name:  "tree",
			Usage: "build a commitment tree and print its levels",
			Flags: []cli.Flag{
				app.flags[flagItems],
				app.flags[flagFormat],
			},
			Action: app.TreeCmd,
		},
		{
			Name:  "prove",
			Usage: "print the membership proof of one item",
			Flags: []cli.Flag{
				app.flags[flagItems],
				app.flags[flagIndex],
				&cli.StringFlag{
					Name:    flagFormat,
					Aliases: []string{"f"},
					Value:   formatJSON,
					Usage:   "output format {json, table}",
				},
			},
			Action: app.ProveCmd,
		},
		{
			Name:  "verify",
			Usage: "check a JSON proof against a root",
			Flags: []cli.Flag{
				app.flags[flagRoot],
				app.flags[flagProof],
			},
			Action: app.VerifyCmd,
		},
		{
			Name:  "config",
			Usage: "print the effective configuration",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:    flagFormat,
					Aliases: []string{"f"},
					Value:   config.FormatYAML,
					Usage:   "output format {yaml, toml}",
				},
			},
			Action: app.ConfigCmd,
		},
	}
}

func (app *App) InitFlags() []cli.Flag {
	return []cli.Flag{
		app.flags[flagConfig],
		app.flags[flagLogLevel],
		app.flags[flagDifficulty],
		app.flags[flagWorkers],
		app.flags[flagMetrics],
	}
}

// InitCfg loads the configuration, applies the global flags on top of it
// and builds the loggers, metrics and sealer.
func (app *App) InitCfg(c *cli.Context) error {
	app.config = config.Default()
	if path := c.String(flagConfig); path != "" {
		cfg, err := config.Load(path)
		if err != nil {
			return cli.Exit(err, 1)
		}
		app.config = cfg
	}

	if c.IsSet(flagLogLevel) {
		app.config.LogLevel = c.String(flagLogLevel)
	}
	if c.IsSet(flagDifficulty) {
		app.config.Difficulty = c.Uint(flagDifficulty)
	}
	if c.IsSet(flagWorkers) {
		app.config.Workers = c.Int(flagWorkers)
	}
	if err := app.config.Validate(); err != nil {
		return cli.Exit(errors.Wrap(err, "invalid configuration"), 1)
	}

	loggers, err := config.SetupLoggers(&app.config)
	if err != nil {
		return cli.Exit(err, 1)
	}
	app.log = loggers.Cmd

	app.metrics = metrics.NewCollectors()
	app.registry = prometheus.NewRegistry()
	if err := app.metrics.Register(app.registry); err != nil {
		return cli.Exit(err, 1)
	}

	app.sealer = mining.New(mining.Config{
		Workers:    app.config.Workers,
		Difficulty: app.config.Difficulty,
		Metrics:    app.metrics,
	}, loggers.Miner)

	app.log.Debug().Uint("difficulty", app.config.Difficulty).Int("workers", app.config.Workers).
		Bool("seal", app.config.Seal).Msg("Configuration loaded")
	return nil
}

func (app *App) printMetrics(c *cli.Context) error {
	if !c.Bool(flagMetrics) || app.registry == nil {
		return nil
	}
	return report.MetricsTable(app.out, app.registry)
}
