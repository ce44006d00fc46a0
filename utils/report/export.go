// Copyright (c) 2020 The JaxNetwork developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package report

import (
	"encoding/json"
	"io"

	"github.com/davecgh/go-spew/spew"
	"github.com/gocarina/gocsv"
	"github.com/pkg/errors"
	"gitlab.com/jaxnet/hashledger/node/blockchain"
)

var dumpConfig = spew.ConfigState{
	Indent:                  "  ",
	DisablePointerAddresses: true,
	DisableCapacities:       true,
	SortKeys:                true,
}

// WriteEntriesCSV writes the entries with a header row.
func WriteEntriesCSV(w io.Writer, entries []*blockchain.Entry) error {
	return errors.Wrap(gocsv.Marshal(entries, w), "can't write csv")
}

// ReadEntriesCSV reads entries written by WriteEntriesCSV.
func ReadEntriesCSV(r io.Reader) ([]*blockchain.Entry, error) {
	entries := make([]*blockchain.Entry, 0)
	if err := gocsv.Unmarshal(r, &entries); err != nil {
		return nil, errors.Wrap(err, "can't read csv")
	}
	return entries, nil
}

// WriteJSON writes v as indented JSON.
func WriteJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return errors.Wrap(enc.Encode(v), "can't write json")
}

// Dump writes a debug representation of the values.
func Dump(w io.Writer, values ...interface{}) {
	dumpConfig.Fdump(w, values...)
}
