// Copyright (c) 2013-2017 The btcsuite developers
// Copyright (c) 2017 The Decred developers
// Copyright (c) 2020 The JaxNetwork developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package config

import (
	"sort"
	"strings"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"gitlab.com/jaxnet/hashledger/corelog"
	"gitlab.com/jaxnet/hashledger/node/blockchain"
	"go.uber.org/zap"
)

const (
	LogUnitCHAN = "CHAN"
	LogUnitMINR = "MINR"
	LogUnitCMDL = "CMDL"
)

// subsystems lists every logging subsystem.
var subsystems = map[string]struct{}{
	LogUnitCHAN: {},
	LogUnitMINR: {},
	LogUnitCMDL: {},
}

// Loggers holds the subsystem loggers that are not package globals.
type Loggers struct {
	// Miner is handed to the sealer.
	Miner *zap.Logger
	// Cmd is used by the command line tools.
	Cmd zerolog.Logger
}

// SetupLoggers creates a logger per subsystem according to cfg.LogLevel and
// cfg.Log, and installs the ledger logger.
func SetupLoggers(cfg *Config) (*Loggers, error) {
	levels, err := parseDebugLevels(cfg.LogLevel)
	if err != nil {
		return nil, err
	}

	blockchain.UseLogger(corelog.New(LogUnitCHAN, levels[LogUnitCHAN], cfg.Log))

	return &Loggers{
		Miner: corelog.NewZap(LogUnitMINR, levels[LogUnitMINR], cfg.Log),
		Cmd:   corelog.New(LogUnitCMDL, levels[LogUnitCMDL], cfg.Log),
	}, nil
}

// supportedSubsystems returns a sorted slice of the supported subsystems for
// logging purposes.
func supportedSubsystems() []string {
	units := make([]string, 0, len(subsystems))
	for unit := range subsystems {
		units = append(units, unit)
	}

	sort.Strings(units)
	return units
}

// parseDebugLevels parses the level of every subsystem.  A string without
// delimiters sets the level of all subsystems; otherwise it is a comma
// separated list of <subsystem>=<level> pairs and unnamed subsystems keep
// corelog.DefaultLevel.
func parseDebugLevels(debugLevel string) (map[string]zerolog.Level, error) {
	levels := make(map[string]zerolog.Level, len(subsystems))

	if !strings.Contains(debugLevel, ",") && !strings.Contains(debugLevel, "=") {
		level, err := corelog.ParseLevel(debugLevel)
		if err != nil {
			return nil, errors.Errorf("the specified debug level [%v] is invalid", debugLevel)
		}
		for unit := range subsystems {
			levels[unit] = level
		}
		return levels, nil
	}

	for unit := range subsystems {
		levels[unit] = corelog.DefaultLevel
	}

	for _, pair := range strings.Split(debugLevel, ",") {
		fields := strings.Split(pair, "=")
		if len(fields) != 2 {
			return nil, errors.Errorf("the specified debug level contains an invalid "+
				"subsystem/level pair [%v]", pair)
		}

		unit, levelStr := strings.TrimSpace(fields[0]), strings.TrimSpace(fields[1])
		if _, ok := subsystems[unit]; !ok {
			return nil, errors.Errorf("the specified subsystem [%v] is invalid -- "+
				"supported subsystems %v", unit, supportedSubsystems())
		}

		level, err := corelog.ParseLevel(levelStr)
		if err != nil || levelStr == "" {
			return nil, errors.Errorf("the specified debug level [%v] is invalid", levelStr)
		}
		levels[unit] = level
	}

	return levels, nil
}
