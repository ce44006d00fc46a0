// Copyright (c) 2013-2017 The btcsuite developers
// Copyright (c) 2020 The JaxNetwork developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package config

import (
	"io"
	"io/ioutil"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"
	"gitlab.com/jaxnet/hashledger/corelog"
	"gitlab.com/jaxnet/hashledger/node/blockchain"
	"gitlab.com/jaxnet/hashledger/types/chainhash"
	"gopkg.in/yaml.v3"
)

const (
	DefaultConfigFilename = "hashledger.yaml"
	defaultLogLevel       = "info"
	defaultWorkers        = 1

	// maxWorkers bounds the sealer goroutines.
	maxWorkers = 256

	FormatYAML = "yaml"
	FormatTOML = "toml"
)

// Config is the configuration of the hashledger tools.
type Config struct {
	// Difficulty is the number of leading '0' hex characters required
	// from sealed entries.
	Difficulty uint `yaml:"difficulty" toml:"difficulty"`
	// Workers is the number of sealing goroutines.
	Workers int `yaml:"workers" toml:"workers"`
	// Seal enables proof-of-work sealing of appended entries.
	Seal bool `yaml:"seal" toml:"seal"`
	// LogLevel is either a single level for every subsystem or a list of
	// <subsystem>=<level> pairs, e.g. "CHAN=debug,MINR=info".
	LogLevel string         `yaml:"log_level" toml:"log_level"`
	Log      corelog.Config `yaml:"log" toml:"log"`
}

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{
		Difficulty: blockchain.DefaultDifficulty,
		Workers:    defaultWorkers,
		Seal:       true,
		LogLevel:   defaultLogLevel,
		Log:        corelog.Config{}.Default(),
	}
}

// Load reads the configuration file at path on top of Default.  The decoder
// is chosen by the file extension: .yaml and .yml use YAML, .toml uses TOML.
func Load(path string) (Config, error) {
	cfg := Default()

	format, err := formatOf(path)
	if err != nil {
		return cfg, err
	}

	data, err := ioutil.ReadFile(path)
	if err != nil {
		return cfg, errors.Wrap(err, "can't read config file")
	}

	switch format {
	case FormatYAML:
		err = yaml.Unmarshal(data, &cfg)
	case FormatTOML:
		_, err = toml.Decode(string(data), &cfg)
	}
	if err != nil {
		return cfg, errors.Wrapf(err, "can't parse %s config %s", format, path)
	}

	if err := cfg.Validate(); err != nil {
		return cfg, errors.Wrapf(err, "invalid config %s", path)
	}
	return cfg, nil
}

// Validate checks the ranges of all values.
func (cfg *Config) Validate() error {
	if cfg.Difficulty > chainhash.MaxHashStringSize {
		return errors.Errorf("difficulty %d exceeds the digest length %d",
			cfg.Difficulty, chainhash.MaxHashStringSize)
	}
	if cfg.Workers < 0 || cfg.Workers > maxWorkers {
		return errors.Errorf("workers must be between 0 and %d, got %d", maxWorkers, cfg.Workers)
	}
	if _, err := parseDebugLevels(cfg.LogLevel); err != nil {
		return err
	}
	if cfg.Log.FileLoggingEnabled && cfg.Log.Filename == "" {
		return errors.New("file logging is enabled but no filename is set")
	}
	return nil
}

// Encode writes cfg in the given format.
func (cfg Config) Encode(w io.Writer, format string) error {
	switch format {
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		if err := enc.Encode(cfg); err != nil {
			return errors.Wrap(err, "can't encode yaml config")
		}
		return enc.Close()
	case FormatTOML:
		return errors.Wrap(toml.NewEncoder(w).Encode(cfg), "can't encode toml config")
	default:
		return errors.Errorf("unknown config format %q", format)
	}
}

func formatOf(path string) (string, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".toml":
		return FormatTOML, nil
	default:
		return "", errors.Errorf("unsupported config file extension %q", filepath.Ext(path))
	}
}
