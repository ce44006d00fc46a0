// Copyright (c) 2020 The JaxNetwork developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package report

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"gitlab.com/jaxnet/hashledger/node/blockchain"
	"gitlab.com/jaxnet/hashledger/types/merkle"
)

// hashWidth is the number of hex characters of a digest shown in tables.
const hashWidth = 16

func newTable(w io.Writer, header ...string) *tablewriter.Table {
	table := tablewriter.NewWriter(w)
	table.SetHeader(header)
	table.SetAutoWrapText(false)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	return table
}

// EntriesTable writes one row per entry.
func EntriesTable(w io.Writer, entries []*blockchain.Entry) {
	rows := make([][]string, 0, len(entries))
	for _, e := range entries {
		valid := "yes"
		if !e.Verify() {
			valid = "FAILED"
		}
		rows = append(rows, []string{
			strconv.FormatUint(e.Index, 10),
			strconv.FormatUint(e.Timestamp, 10),
			e.Payload,
			short(e.PrevHash),
			short(e.Hash),
			strconv.FormatUint(e.Nonce, 10),
			valid,
		})
	}

	table := newTable(w, "Index", "Timestamp", "Payload", "Previous", "Hash", "Nonce", "Hash OK")
	table.AppendBulk(rows)
	table.Render()
}

// StatsTable writes a ledger snapshot as a two column table.
func StatsTable(w io.Writer, stats blockchain.Stats) {
	table := newTable(w, "Property", "Value")
	table.AppendBulk([][]string{
		{"Entries", strconv.Itoa(stats.Count)},
		{"Valid", strconv.FormatBool(stats.IsValid)},
		{"Difficulty", strconv.FormatUint(uint64(stats.Difficulty), 10)},
		{"Genesis", short(stats.GenesisHash)},
		{"Latest", short(stats.LatestHash)},
	})
	table.Render()
}

// TreeTable writes every node of the tree, level by level starting with the
// leaves.  Nodes of the same level are merged into one level cell.
func TreeTable(w io.Writer, tree *merkle.Tree) {
	var rows [][]string
	for level, nodes := range tree.Levels {
		for pos, digest := range nodes {
			rows = append(rows, []string{strconv.Itoa(level), strconv.Itoa(pos), short(digest)})
		}
	}

	table := newTable(w, "Level", "Position", "Digest")
	table.SetAutoMergeCells(true)
	table.SetRowLine(true)
	table.AppendBulk(rows)
	table.SetFooter([]string{"", "Root", short(tree.Root)})
	table.Render()
}

// ProofTable writes the path of a proof from the leaf up.
func ProofTable(w io.Writer, proof *merkle.Proof) {
	rows := make([][]string, 0, len(proof.Path)+1)
	rows = append(rows, []string{"leaf", strconv.Itoa(proof.LeafIndex), short(proof.LeafHash)})
	for i, step := range proof.Path {
		side := "left"
		if step.IsRight {
			side = "right"
		}
		rows = append(rows, []string{strconv.Itoa(i + 1), side, short(step.Hash)})
	}

	table := newTable(w, "Step", "Side", "Digest")
	table.AppendBulk(rows)
	table.Render()
}

func short(h string) string {
	if len(h) > hashWidth {
		return h[:hashWidth] + "..."
	}
	return h
}

// MetricsTable gathers g and writes one row per metric.  Histograms show
// their sample count and sum.
func MetricsTable(w io.Writer, g prometheus.Gatherer) error {
	families, err := g.Gather()
	if err != nil {
		return errors.Wrap(err, "can't gather metrics")
	}

	var rows [][]string
	for _, mf := range families {
		for _, m := range mf.GetMetric() {
			var value string
			switch {
			case m.GetCounter() != nil:
				value = strconv.FormatFloat(m.GetCounter().GetValue(), 'f', -1, 64)
			case m.GetGauge() != nil:
				value = strconv.FormatFloat(m.GetGauge().GetValue(), 'f', -1, 64)
			case m.GetHistogram() != nil:
				h := m.GetHistogram()
				value = fmt.Sprintf("count=%d sum=%.3f", h.GetSampleCount(), h.GetSampleSum())
			default:
				continue
			}
			rows = append(rows, []string{mf.GetName(), strings.ToLower(mf.GetType().String()), value})
		}
	}

	table := newTable(w, "Metric", "Type", "Value")
	table.AppendBulk(rows)
	table.Render()
	return nil
}
