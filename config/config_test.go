// Copyright (c) 2020 The JaxNetwork developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package config

import (
	"bytes"
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gitlab.com/jaxnet/hashledger/corelog"
)

func writeConfig(t *testing.T, name, content string) string {
	dir, err := ioutil.TempDir("", "hashledger")
	require.NoError(t, err)
	t.Cleanup(func() { _ = os.RemoveAll(dir) })

	path := filepath.Join(dir, name)
	require.NoError(t, ioutil.WriteFile(path, []byte(content), 0644))
	return path
}

func TestDefault(t *testing.T) {
	cfg := Default()

	assert.Equal(t, uint(2), cfg.Difficulty)
	assert.Equal(t, 1, cfg.Workers)
	assert.True(t, cfg.Seal)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, corelog.DefaultLogFile, cfg.Log.Filename)
	assert.NoError(t, cfg.Validate())
}

func TestLoad(t *testing.T) {
	tests := []struct {
		name    string
		file    string
		content string
	}{
		{
			name: "yaml",
			file: "hashledger.yaml",
			content: `difficulty: 3
workers: 4
seal: false
log_level: CHAN=debug
log:
  disable_console_log: true
  max_size: 10
`,
		},
		{
			name: "yml",
			file: "hashledger.yml",
			content: `difficulty: 3
workers: 4
seal: false
log_level: CHAN=debug
log:
  disable_console_log: true
  max_size: 10
`,
		},
		{
			name: "toml",
			file: "hashledger.toml",
			content: `difficulty = 3
workers = 4
seal = false
log_level = "CHAN=debug"

[log]
disable_console_log = true
max_size = 10
`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := Load(writeConfig(t, tt.file, tt.content))
			require.NoError(t, err)

			assert.Equal(t, uint(3), cfg.Difficulty)
			assert.Equal(t, 4, cfg.Workers)
			assert.False(t, cfg.Seal)
			assert.Equal(t, "CHAN=debug", cfg.LogLevel)
			assert.True(t, cfg.Log.DisableConsoleLog)
			assert.Equal(t, 10, cfg.Log.MaxSize)

			// Unset values keep their defaults.
			assert.Equal(t, corelog.DefaultLogFile, cfg.Log.Filename)
			assert.Equal(t, 3, cfg.Log.MaxBackups)
		})
	}
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name string
		path func(t *testing.T) string
	}{
		{
			name: "unknown extension",
			path: func(t *testing.T) string { return writeConfig(t, "hashledger.ini", "difficulty=1") },
		},
		{
			name: "missing file",
			path: func(t *testing.T) string { return filepath.Join(os.TempDir(), "no-such-dir", "x.yaml") },
		},
		{
			name: "malformed yaml",
			path: func(t *testing.T) string { return writeConfig(t, "bad.yaml", "difficulty: [1") },
		},
		{
			name: "malformed toml",
			path: func(t *testing.T) string { return writeConfig(t, "bad.toml", "difficulty = ") },
		},
		{
			name: "difficulty too high",
			path: func(t *testing.T) string { return writeConfig(t, "hard.yaml", "difficulty: 129") },
		},
		{
			name: "negative workers",
			path: func(t *testing.T) string { return writeConfig(t, "workers.toml", "workers = -1") },
		},
		{
			name: "bad log level",
			path: func(t *testing.T) string { return writeConfig(t, "level.yaml", "log_level: loud") },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(tt.path(t))
			assert.Error(t, err)
		})
	}
}

func TestEncodeLoad(t *testing.T) {
	cfg := Default()
	cfg.Difficulty = 5
	cfg.Workers = 8
	cfg.Log.LogsAsJson = true

	for _, format := range []string{FormatYAML, FormatTOML} {
		t.Run(format, func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, cfg.Encode(&buf, format))

			loaded, err := Load(writeConfig(t, "out."+format, buf.String()))
			require.NoError(t, err)
			assert.Equal(t, cfg, loaded)
		})
	}

	assert.Error(t, cfg.Encode(&bytes.Buffer{}, "xml"))
}

func TestParseDebugLevels(t *testing.T) {
	tests := []struct {
		name    string
		level   string
		want    map[string]zerolog.Level
		wantErr bool
	}{
		{
			name:  "empty uses default",
			level: "",
			want:  map[string]zerolog.Level{LogUnitCHAN: zerolog.InfoLevel, LogUnitMINR: zerolog.InfoLevel, LogUnitCMDL: zerolog.InfoLevel},
		},
		{
			name:  "global level",
			level: "debug",
			want:  map[string]zerolog.Level{LogUnitCHAN: zerolog.DebugLevel, LogUnitMINR: zerolog.DebugLevel, LogUnitCMDL: zerolog.DebugLevel},
		},
		{
			name:  "per subsystem",
			level: "CHAN=trace,MINR=warn",
			want:  map[string]zerolog.Level{LogUnitCHAN: zerolog.TraceLevel, LogUnitMINR: zerolog.WarnLevel, LogUnitCMDL: zerolog.InfoLevel},
		},
		{name: "invalid level", level: "verbose", wantErr: true},
		{name: "unknown subsystem", level: "PEER=debug", wantErr: true},
		{name: "missing level", level: "CHAN=", wantErr: true},
		{name: "bad pair", level: "CHAN=debug,MINR", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			levels, err := parseDebugLevels(tt.level)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, levels)
		})
	}
}

func TestSetupLoggers(t *testing.T) {
	cfg := Default()
	cfg.Log.DisableConsoleLog = true

	loggers, err := SetupLoggers(&cfg)
	require.NoError(t, err)
	require.NotNil(t, loggers)
	assert.NotNil(t, loggers.Miner)

	cfg.LogLevel = "nope=1"
	_, err = SetupLoggers(&cfg)
	assert.Error(t, err)
}
