// Copyright (c) 2020 The JaxNetwork developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.
package main

import "github.com/urfave/cli/v2"

const (
	flagConfig     = "config"
	flagDifficulty = "difficulty"
	flagEntries    = "entries"
	flagFormat     = "format"
	flagHex        = "hex"
	flagIndex      = "index"
	flagInput      = "input"
	flagItems      = "items"
	flagLogLevel   = "log-level"
	flagMetrics    = "metrics"
	flagProof      = "proof"
	flagRoot       = "root"
	flagSeal       = "seal"
	flagTamper     = "tamper"
	flagWorkers    = "workers"
)

const (
	formatCSV   = "csv"
	formatDump  = "dump"
	formatJSON  = "json"
	formatTable = "table"
)

func getFlags() map[string]cli.Flag {
	return map[string]cli.Flag{
		flagConfig: &cli.StringFlag{
			Name:    flagConfig,
			Aliases: []string{"c"},
			EnvVars: []string{"HASHLEDGER_CONFIG"},
			Usage:   "path to configuration (.yaml, .yml or .toml)",
		},
		flagLogLevel: &cli.StringFlag{
			Name:    flagLogLevel,
			Aliases: []string{"l"},
			EnvVars: []string{"HASHLEDGER_LOG_LEVEL"},
			Usage:   "logging level for all subsystems {trace, debug, info, warn, error} or <subsystem>=<level>,...; will override value from config file",
		},
		flagDifficulty: &cli.UintFlag{
			Name:    flagDifficulty,
			Aliases: []string{"d"},
			Usage:   "number of leading zero hex digits required from sealed entries; will override value from config file",
		},
		flagWorkers: &cli.IntFlag{
			Name:    flagWorkers,
			Aliases: []string{"w"},
			Usage:   "number of sealing goroutines; will override value from config file",
		},
		flagMetrics: &cli.BoolFlag{
			Name:  flagMetrics,
			Usage: "print collected metrics after the command",
		},
		flagHex: &cli.BoolFlag{
			Name:  flagHex,
			Usage: "arguments are hex-encoded bytes",
		},
		flagEntries: &cli.StringSliceFlag{
			Name:     flagEntries,
			Aliases:  []string{"e"},
			Usage:    "payloads of the entries to append, comma separated",
			Required: true,
		},
		flagSeal: &cli.BoolFlag{
			Name:  flagSeal,
			Usage: "seal appended entries with proof of work; will override value from config file",
		},
		flagTamper: &cli.StringFlag{
			Name:  flagTamper,
			Usage: "overwrite a payload after building the ledger, <index>=<payload>",
		},
		flagFormat: &cli.StringFlag{
			Name:    flagFormat,
			Aliases: []string{"f"},
			Value:   formatTable,
			Usage:   "output format {table, csv, json, dump}",
		},
		flagInput: &cli.StringFlag{
			Name:     flagInput,
			Aliases:  []string{"i"},
			Usage:    "path to a CSV ledger export",
			Required: true,
		},
		flagItems: &cli.StringSliceFlag{
			Name:     flagItems,
			Usage:    "items committed to by the tree, comma separated",
			Required: true,
		},
		flagIndex: &cli.IntFlag{
			Name:     flagIndex,
			Usage:    "position of the item to prove",
			Required: true,
		},
		flagRoot: &cli.StringFlag{
			Name:     flagRoot,
			Aliases:  []string{"r"},
			Usage:    "hex root of the tree",
			Required: true,
		},
		flagProof: &cli.StringFlag{
			Name:     flagProof,
			Aliases:  []string{"p"},
			Usage:    "path to a JSON proof, - reads standard input",
			Required: true,
		},
	}
}
