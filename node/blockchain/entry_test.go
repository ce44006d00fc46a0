// Copyright (c) 2020 The JaxNetwork developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package blockchain

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gitlab.com/jaxnet/hashledger/types/chainhash"
)

func TestGenesisEntryCreation(t *testing.T) {
	genesis := Genesis()

	assert.Equal(t, uint64(0), genesis.Index, "genesis entry should have index 0")
	assert.Equal(t, GenesisPrevHash, genesis.PrevHash)
	assert.Equal(t, GenesisPayload, genesis.Payload)
	assert.Equal(t, uint64(0), genesis.Nonce)
	assert.True(t, genesis.Verify(), "genesis hash should be valid")
}

func TestEntryCreation(t *testing.T) {
	before := uint64(time.Now().Unix())
	entry := NewEntry(1, "test data", "previous123")
	after := uint64(time.Now().Unix())

	assert.Equal(t, uint64(1), entry.Index)
	assert.Equal(t, "test data", entry.Payload)
	assert.Equal(t, "previous123", entry.PrevHash)
	assert.True(t, entry.Timestamp >= before && entry.Timestamp <= after)
	assert.True(t, entry.Verify(), "entry hash should be valid")
	assert.Len(t, entry.Hash, chainhash.MaxHashStringSize)
}

func TestCalcHashLayout(t *testing.T) {
	got := CalcHash(1, 12345, "data", "prev", 7)
	assert.Equal(t, chainhash.HashHex([]byte("112345dataprev7")), got)

	assert.Equal(t, got, CalcHash(1, 12345, "data", "prev", 7), "same inputs should produce same hash")
}

func TestHashChangesWithFields(t *testing.T) {
	base := CalcHash(1, 100, "data", "prev", 0)

	tests := []struct {
		name string
		hash string
	}{
		{name: "index", hash: CalcHash(2, 100, "data", "prev", 0)},
		{name: "timestamp", hash: CalcHash(1, 101, "data", "prev", 0)},
		{name: "payload", hash: CalcHash(1, 100, "Data", "prev", 0)},
		{name: "previous hash", hash: CalcHash(1, 100, "data", "prev2", 0)},
		{name: "nonce", hash: CalcHash(1, 100, "data", "prev", 1)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.NotEqual(t, base, tt.hash)
		})
	}
}

func TestEntryVerifyDetectsTampering(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(e *Entry)
	}{
		{name: "payload", mutate: func(e *Entry) { e.Payload = "Tampered" }},
		{name: "index", mutate: func(e *Entry) { e.Index++ }},
		{name: "timestamp", mutate: func(e *Entry) { e.Timestamp-- }},
		{name: "previous hash", mutate: func(e *Entry) { e.PrevHash = "other" }},
		{name: "nonce", mutate: func(e *Entry) { e.Nonce = 42 }},
		{name: "hash", mutate: func(e *Entry) { e.Hash = strings.Repeat("0", 128) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			entry := NewEntry(1, "Test", "prev")
			require.True(t, entry.Verify(), "original hash should be valid")

			tt.mutate(entry)
			assert.False(t, entry.Verify(), "tampered entry should fail verification")

			entry.Recompute()
			assert.True(t, entry.Verify())
		})
	}
}

func TestEntrySeal(t *testing.T) {
	for _, difficulty := range []uint{0, 1, 2, 3} {
		entry := NewEntry(1, "Mine me", "prev")
		entry.Timestamp = 1_600_000_000
		entry.Recompute()
		unsealed := entry.Hash

		entry.Seal(difficulty)

		assert.True(t, entry.MeetsDifficulty(difficulty), "difficulty %d: %s", difficulty, entry.Hash)
		assert.True(t, strings.HasPrefix(entry.Hash, strings.Repeat("0", int(difficulty))))
		assert.True(t, entry.Verify())
		if !HasLeadingZeros(unsealed, difficulty) {
			assert.Greater(t, entry.Nonce, uint64(0), "sealing should increment the nonce")
		} else {
			assert.Equal(t, uint64(0), entry.Nonce)
		}
	}
}

func TestSealContextCancelled(t *testing.T) {
	entry := NewEntry(1, "never", "prev")

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	err := entry.SealContext(ctx, chainhash.MaxHashStringSize)
	assert.Equal(t, context.DeadlineExceeded, err)
	assert.True(t, entry.Verify(), "entry should stay self-consistent")
	assert.Greater(t, entry.Nonce, uint64(0))
}

func TestSealContextMatchesSeal(t *testing.T) {
	a := NewEntry(3, "same", "prev")
	b := a.Clone()

	a.Seal(2)
	require.NoError(t, b.SealContext(context.Background(), 2))

	assert.Equal(t, a.Nonce, b.Nonce)
	assert.Equal(t, a.Hash, b.Hash)
}

func TestHasLeadingZeros(t *testing.T) {
	assert.True(t, HasLeadingZeros("00ab", 0))
	assert.True(t, HasLeadingZeros("00ab", 2))
	assert.False(t, HasLeadingZeros("00ab", 3))
	assert.False(t, HasLeadingZeros("0", 2))
	assert.True(t, HasLeadingZeros("", 0))
}

func TestEntryString(t *testing.T) {
	entry := NewEntry(1, "Display test", "prev")
	display := entry.String()

	assert.Contains(t, display, "Entry #1")
	assert.Contains(t, display, "Display test")
	assert.Contains(t, display, entry.Hash[:16])
}
