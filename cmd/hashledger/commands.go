// Copyright (c) 2020 The JaxNetwork developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.
package main

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
	"gitlab.com/jaxnet/hashledger/node/blockchain"
	"gitlab.com/jaxnet/hashledger/types/chainhash"
	"gitlab.com/jaxnet/hashledger/types/merkle"
	"gitlab.com/jaxnet/hashledger/utils/report"
)

var demoPayloads = []string{
	"Alice pays Bob 10",
	"Bob pays Carol 4",
	"Carol pays Dave 1",
}

func (app *App) HashCmd(c *cli.Context) error {
	if c.NArg() == 0 {
		d := chainhash.New()
		if _, err := io.Copy(d, os.Stdin); err != nil {
			return cli.Exit(errors.Wrap(err, "can't read standard input"), 1)
		}
		fmt.Fprintf(app.out, "%x  -\n", d.Sum(nil))
		return nil
	}

	for _, arg := range c.Args().Slice() {
		data := []byte(arg)
		if c.Bool(flagHex) {
			var err error
			if data, err = hex.DecodeString(arg); err != nil {
				return cli.Exit(errors.Wrapf(err, "invalid hex argument %q", arg), 1)
			}
		}
		fmt.Fprintf(app.out, "%s  %s\n", chainhash.HashHex(data), arg)
	}
	return nil
}

func (app *App) DemoCmd(c *cli.Context) error {
	ledger := blockchain.WithDifficulty(app.config.Difficulty)
	fmt.Fprintf(app.out, "Sealing %d entries with difficulty %d\n", len(demoPayloads), ledger.Difficulty())

	for _, payload := range demoPayloads {
		if _, err := app.sealer.AppendSealed(c.Context, ledger, payload); err != nil {
			return cli.Exit(err, 1)
		}
	}

	report.EntriesTable(app.out, ledger.Entries())
	fmt.Fprintln(app.out, ledger.Stats())
	app.metrics.ObserveStats(ledger.Stats())

	tree := ledger.PayloadTree()
	proof, _ := tree.Proof(1)
	fmt.Fprintf(app.out, "\nPayload root: %s\n", tree.Root)
	report.ProofTable(app.out, proof)
	fmt.Fprintf(app.out, "Proof for entry 1 verifies: %v\n", tree.VerifyProof(proof))

	fmt.Fprintf(app.out, "\nTampering with entry 1...\n")
	ledger.Tamper(1, "Alice pays Bob 1000")
	if err := ledger.Validate(); err != nil {
		fmt.Fprintf(app.out, "Ledger valid: false (%v)\n", err)
	} else {
		fmt.Fprintln(app.out, "Ledger valid: true")
	}
	app.metrics.ObserveStats(ledger.Stats())
	return nil
}

func (app *App) ChainCmd(c *cli.Context) error {
	seal := app.config.Seal
	if c.IsSet(flagSeal) {
		seal = c.Bool(flagSeal)
	}

	ledger := blockchain.WithDifficulty(app.config.Difficulty)
	for _, payload := range c.StringSlice(flagEntries) {
		if !seal {
			ledger.Append(payload, false)
			app.metrics.ObserveAppend(ledger.Len())
			continue
		}
		if _, err := app.sealer.AppendSealed(c.Context, ledger, payload); err != nil {
			return cli.Exit(err, 1)
		}
	}

	if spec := c.String(flagTamper); spec != "" {
		index, payload, err := parseTamper(spec)
		if err != nil {
			return cli.Exit(err, 1)
		}
		if !ledger.Tamper(index, payload) {
			return cli.Exit(errors.Errorf("no entry at index %d", index), 1)
		}
	}

	stats := ledger.Stats()
	app.metrics.ObserveStats(stats)

	switch format := c.String(flagFormat); format {
	case formatTable:
		report.EntriesTable(app.out, ledger.Entries())
		report.StatsTable(app.out, stats)
	case formatCSV:
		if err := report.WriteEntriesCSV(app.out, ledger.Entries()); err != nil {
			return cli.Exit(err, 1)
		}
	case formatJSON:
		out := struct {
			Entries []*blockchain.Entry `json:"entries"`
			Stats   blockchain.Stats    `json:"stats"`
		}{ledger.Entries(), stats}
		if err := report.WriteJSON(app.out, out); err != nil {
			return cli.Exit(err, 1)
		}
	case formatDump:
		report.Dump(app.out, ledger.Entries(), stats)
	default:
		return cli.Exit(errors.Errorf("unknown format %q", format), 1)
	}
	return nil
}

func (app *App) CheckCmd(c *cli.Context) error {
	file, err := os.Open(c.String(flagInput))
	if err != nil {
		return cli.Exit(errors.Wrap(err, "can't open ledger export"), 1)
	}
	defer file.Close()

	entries, err := report.ReadEntriesCSV(file)
	if err != nil {
		return cli.Exit(err, 1)
	}
	ledger, err := blockchain.FromEntries(entries, app.config.Difficulty)
	if err != nil {
		return cli.Exit(err, 1)
	}

	stats := ledger.Stats()
	app.metrics.ObserveStats(stats)
	report.StatsTable(app.out, stats)

	if err := ledger.Validate(); err != nil {
		return cli.Exit(errors.Wrap(err, "ledger is invalid"), 1)
	}
	fmt.Fprintln(app.out, "ledger is valid")
	return nil
}

func (app *App) TreeCmd(c *cli.Context) error {
	tree := merkle.New(c.StringSlice(flagItems))

	switch format := c.String(flagFormat); format {
	case formatTable:
		report.TreeTable(app.out, tree)
	case formatJSON:
		if err := report.WriteJSON(app.out, tree); err != nil {
			return cli.Exit(err, 1)
		}
	case formatDump:
		report.Dump(app.out, tree)
	default:
		return cli.Exit(errors.Errorf("unknown format %q", format), 1)
	}
	return nil
}

func (app *App) ProveCmd(c *cli.Context) error {
	tree := merkle.New(c.StringSlice(flagItems))
	index := c.Int(flagIndex)

	proof, ok := tree.Proof(index)
	if !ok {
		return cli.Exit(errors.Errorf("index %d is out of range [0, %d)", index, tree.LeafCount()), 1)
	}

	switch format := c.String(flagFormat); format {
	case formatJSON:
		if err := report.WriteJSON(app.out, proof); err != nil {
			return cli.Exit(err, 1)
		}
	case formatTable:
		fmt.Fprintf(app.out, "Root: %s\n", tree.Root)
		report.ProofTable(app.out, proof)
	default:
		return cli.Exit(errors.Errorf("unknown format %q", format), 1)
	}
	return nil
}

func (app *App) VerifyCmd(c *cli.Context) error {
	var in io.Reader = os.Stdin
	if path := c.String(flagProof); path != "-" {
		file, err := os.Open(path)
		if err != nil {
			return cli.Exit(errors.Wrap(err, "can't open proof"), 1)
		}
		defer file.Close()
		in = file
	}

	var proof merkle.Proof
	if err := json.NewDecoder(in).Decode(&proof); err != nil {
		return cli.Exit(errors.Wrap(err, "can't decode proof"), 1)
	}

	if !merkle.VerifyProof(c.String(flagRoot), &proof) {
		return cli.Exit(errors.Errorf("proof for leaf %d is invalid", proof.LeafIndex), 1)
	}
	fmt.Fprintf(app.out, "proof for leaf %d is valid\n", proof.LeafIndex)
	return nil
}

func (app *App) ConfigCmd(c *cli.Context) error {
	if err := app.config.Encode(app.out, c.String(flagFormat)); err != nil {
		return cli.Exit(err, 1)
	}
	return nil
}

// parseTamper splits "<index>=<payload>".
func parseTamper(spec string) (int, string, error) {
	parts := strings.SplitN(spec, "=", 2)
	if len(parts) != 2 {
		return 0, "", errors.Errorf("invalid tamper spec %q, expected <index>=<payload>", spec)
	}

	index, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, "", errors.Wrapf(err, "invalid tamper index %q", parts[0])
	}
	return index, parts[1], nil
}
