// Copyright (c) 2020 The JaxNetwork developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package blockchain_test

import (
	"fmt"

	"gitlab.com/jaxnet/hashledger/node/blockchain"
)

// This example demonstrates how editing a historical entry is detected.
func ExampleLedger_Tamper() {
	chain := blockchain.New()
	chain.Append("A", false)
	chain.Append("B", false)
	fmt.Println(chain.Len(), chain.IsValid())

	chain.Tamper(1, "X")
	fmt.Println(chain.IsValid())

	// Output:
	// 3 true
	// false
}

// This example demonstrates sealing an entry with proof of work.
func ExampleEntry_Seal() {
	entry := blockchain.NewEntry(1, "payload", "prev")
	entry.Seal(2)
	fmt.Println(entry.Hash[:2], entry.Verify())

	// Output:
	// 00 true
}
