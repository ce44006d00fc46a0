// Copyright (c) 2020 The JaxNetwork developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package blockchain

import (
	"fmt"
)

// Stats is a read-only snapshot of a ledger.
type Stats struct {
	Count       int    `json:"count"`
	IsValid     bool   `json:"is_valid"`
	Difficulty  uint   `json:"difficulty"`
	GenesisHash string `json:"genesis_hash"`
	LatestHash  string `json:"latest_hash"`
}

// Stats returns a snapshot of the ledger.  Validity is computed on the spot.
func (l *Ledger) Stats() Stats {
	return Stats{
		Count:       len(l.entries),
		IsValid:     l.IsValid(),
		Difficulty:  l.difficulty,
		GenesisHash: l.Genesis().Hash,
		LatestHash:  l.Latest().Hash,
	}
}

func (s Stats) String() string {
	valid := "✗"
	if s.IsValid {
		valid = "✓"
	}
	return fmt.Sprintf("Ledger Stats:\n  Entries: %d\n  Valid: %s\n  Difficulty: %d\n  Genesis: %s...\n  Latest: %s...",
		s.Count, valid, s.Difficulty, shortHash(s.GenesisHash), shortHash(s.LatestHash))
}
