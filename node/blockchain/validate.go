// Copyright (c) 2020 The JaxNetwork developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package blockchain

import (
	"github.com/pkg/errors"
)

// Validate walks the ledger from genesis and returns the first violation
// found, or nil.  The checks are, in order: genesis shape and hash, then for
// every following entry its hash, its link to the predecessor and its index.
func (l *Ledger) Validate() error {
	if len(l.entries) == 0 {
		return ErrEmptyChain
	}

	genesis := l.entries[0]
	if genesis.Index != 0 || genesis.PrevHash != GenesisPrevHash {
		log.Debug().Uint64("index", genesis.Index).Str("prev_hash", genesis.PrevHash).
			Msg("Invalid genesis entry")
		return errors.Wrapf(ErrInvalidGenesis, "index %d, previous hash %q",
			genesis.Index, genesis.PrevHash)
	}
	if !genesis.Verify() {
		log.Debug().Msg("Genesis entry hash is invalid")
		return errors.Wrap(ErrHashMismatch, "entry 0")
	}

	for i := 1; i < len(l.entries); i++ {
		if err := checkLink(l.entries[i], l.entries[i-1]); err != nil {
			log.Debug().Int("position", i).Err(err).Msg("Ledger is invalid")
			return err
		}
	}

	return nil
}

// IsValid reports whether Validate finds no violation.
func (l *Ledger) IsValid() bool {
	return l.Validate() == nil
}

// checkLink verifies current on its own and against its predecessor.
func checkLink(current, previous *Entry) error {
	if !current.Verify() {
		return errors.Wrapf(ErrHashMismatch, "entry %d", current.Index)
	}
	if current.PrevHash != previous.Hash {
		return errors.Wrapf(ErrBrokenLink, "entry %d: expected %s, got %s",
			current.Index, shortHash(previous.Hash), shortHash(current.PrevHash))
	}
	if current.Index != previous.Index+1 {
		return errors.Wrapf(ErrIndexGap, "entry %d: expected index %d",
			current.Index, previous.Index+1)
	}
	return nil
}
