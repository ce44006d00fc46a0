// Copyright (c) 2020 The JaxNetwork developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package blockchain

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"gitlab.com/jaxnet/hashledger/types/chainhash"
)

const (
	// GenesisPayload is the payload of the first entry of every ledger.
	GenesisPayload = "Genesis Block"

	// GenesisPrevHash is the sentinel stored as PrevHash of the genesis
	// entry.
	GenesisPrevHash = "0"

	// sealCheckInterval is the number of nonces tried between two checks
	// of the context in SealContext.
	sealCheckInterval = 1 << 12
)

// Entry is a single ledger record.
//
// Hash is derived from the other fields but stored independently: changing
// a field leaves Hash stale until Recompute or Seal is called.
type Entry struct {
	Index     uint64 `json:"index" csv:"index"`
	Timestamp uint64 `json:"timestamp" csv:"timestamp"`
	Payload   string `json:"payload" csv:"payload"`
	PrevHash  string `json:"previous_hash" csv:"previous_hash"`
	Hash      string `json:"hash" csv:"hash"`
	Nonce     uint64 `json:"nonce" csv:"nonce"`
}

// NewEntry creates an entry stamped with the current time and nonce 0.
func NewEntry(index uint64, payload, prevHash string) *Entry {
	e := &Entry{
		Index:     index,
		Timestamp: uint64(time.Now().Unix()),
		Payload:   payload,
		PrevHash:  prevHash,
	}
	e.Recompute()
	return e
}

// Genesis creates the first entry of a ledger.
func Genesis() *Entry {
	return NewEntry(0, GenesisPayload, GenesisPrevHash)
}

// CalcHash returns the hex digest of the entry fields.  The fields are
// concatenated in a fixed order with integers in decimal form:
//
//	HASH( index || timestamp || payload || prevHash || nonce )
func CalcHash(index, timestamp uint64, payload, prevHash string, nonce uint64) string {
	buf := make([]byte, 0, 3*20+len(payload)+len(prevHash))
	buf = strconv.AppendUint(buf, index, 10)
	buf = strconv.AppendUint(buf, timestamp, 10)
	buf = append(buf, payload...)
	buf = append(buf, prevHash...)
	buf = strconv.AppendUint(buf, nonce, 10)

	return chainhash.HashHex(buf)
}

// CalcHash returns the digest of the current field values.
func (e *Entry) CalcHash() string {
	return CalcHash(e.Index, e.Timestamp, e.Payload, e.PrevHash, e.Nonce)
}

// Recompute overwrites Hash with the digest of the current field values.
func (e *Entry) Recompute() {
	e.Hash = e.CalcHash()
}

// Verify reports whether the stored Hash matches the current field values.
func (e *Entry) Verify() bool {
	return e.CalcHash() == e.Hash
}

// MeetsDifficulty reports whether Hash starts with at least difficulty '0'
// hex characters.
func (e *Entry) MeetsDifficulty(difficulty uint) bool {
	return HasLeadingZeros(e.Hash, difficulty)
}

// Seal increments the nonce and recomputes Hash until the hash meets the
// difficulty.  There is no upper bound on the work: the expected number of
// attempts is 16^difficulty and an unreachable target never returns.  Use
// SealContext when the caller needs to stop early.
func (e *Entry) Seal(difficulty uint) {
	for !HasLeadingZeros(e.Hash, difficulty) {
		e.Nonce++
		e.Recompute()
	}

	log.Debug().Uint64("index", e.Index).Uint64("nonce", e.Nonce).
		Str("hash", shortHash(e.Hash)).Msg("Entry sealed")
}

// SealContext works like Seal but returns ctx.Err() once the context is
// done.  On cancellation the entry keeps the last nonce it tried, with a
// consistent Hash that does not meet the difficulty.
func (e *Entry) SealContext(ctx context.Context, difficulty uint) error {
	for attempts := uint64(0); !HasLeadingZeros(e.Hash, difficulty); attempts++ {
		if attempts%sealCheckInterval == 0 {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}
		}

		e.Nonce++
		e.Recompute()
	}

	log.Debug().Uint64("index", e.Index).Uint64("nonce", e.Nonce).
		Str("hash", shortHash(e.Hash)).Msg("Entry sealed")
	return nil
}

// Clone returns a copy of the entry.
func (e *Entry) Clone() *Entry {
	clone := *e
	return &clone
}

func (e *Entry) String() string {
	return fmt.Sprintf("Entry #%d\n Timestamp: %d\n Payload: %s\n Previous hash: %s...\n Hash: %s...\n Nonce: %d",
		e.Index, e.Timestamp, e.Payload, shortHash(e.PrevHash), shortHash(e.Hash), e.Nonce)
}

// HasLeadingZeros reports whether hexHash starts with at least n '0'
// characters.
func HasLeadingZeros(hexHash string, n uint) bool {
	if uint(len(hexHash)) < n {
		return false
	}
	for i := uint(0); i < n; i++ {
		if hexHash[i] != '0' {
			return false
		}
	}
	return true
}

func shortHash(h string) string {
	if len(h) > 16 {
		return h[:16]
	}
	return h
}
