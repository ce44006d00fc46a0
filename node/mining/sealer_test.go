// Copyright (c) 2020 The JaxNetwork developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package mining

import (
	"context"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gitlab.com/jaxnet/hashledger/node/blockchain"
	"gitlab.com/jaxnet/hashledger/node/metrics"
	"go.uber.org/zap"
)

func TestSeal(t *testing.T) {
	tests := []struct {
		name    string
		workers int
	}{
		{name: "sequential", workers: 1},
		{name: "unset workers", workers: 0},
		{name: "two workers", workers: 2},
		{name: "eight workers", workers: 8},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sealer := New(Config{Workers: tt.workers, Difficulty: 2}, zap.NewNop())
			entry := blockchain.NewEntry(1, "payload "+tt.name, "prev")

			require.NoError(t, sealer.Seal(context.Background(), entry))
			assert.True(t, entry.MeetsDifficulty(2), entry.Hash)
			assert.True(t, entry.Verify(), "sealed entry should stay self-consistent")
		})
	}
}

func TestSealParallelNonceSpace(t *testing.T) {
	const workers = 4
	sealer := New(Config{Workers: workers, Difficulty: 1}, nil)

	entry := blockchain.NewEntry(1, "nonce space", "prev")
	entry.Nonce = 1000
	entry.Recompute()
	if entry.MeetsDifficulty(1) {
		entry.Nonce++
		entry.Recompute()
	}
	base := entry.Nonce

	require.NoError(t, sealer.Seal(context.Background(), entry))
	assert.Greater(t, entry.Nonce, base, "workers start above the initial nonce")
	assert.True(t, entry.Verify())
}

func TestSealAlreadySealed(t *testing.T) {
	sealer := New(Config{Workers: 4, Difficulty: 0}, nil)
	entry := blockchain.NewEntry(1, "free", "prev")
	hash := entry.Hash

	require.NoError(t, sealer.Seal(context.Background(), entry))
	assert.Equal(t, uint64(0), entry.Nonce)
	assert.Equal(t, hash, entry.Hash)
}

func TestSealCancelled(t *testing.T) {
	t.Run("parallel", func(t *testing.T) {
		sealer := New(Config{Workers: 4, Difficulty: 128}, nil)
		entry := blockchain.NewEntry(1, "never", "prev")
		orig := *entry

		ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
		defer cancel()

		err := sealer.Seal(ctx, entry)
		assert.Equal(t, context.DeadlineExceeded, err)
		assert.Equal(t, orig, *entry, "entry should be untouched")
	})

	t.Run("sequential", func(t *testing.T) {
		sealer := New(Config{Workers: 1, Difficulty: 128}, nil)
		entry := blockchain.NewEntry(1, "never", "prev")

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		err := sealer.Seal(ctx, entry)
		assert.Equal(t, context.Canceled, err)
		assert.True(t, entry.Verify())
	})
}

func TestAppendSealed(t *testing.T) {
	collectors := metrics.NewCollectors()
	sealer := New(Config{Workers: 3, Metrics: collectors}, zap.NewNop())
	ledger := blockchain.WithDifficulty(2)

	for i := 1; i <= 3; i++ {
		entry, err := sealer.AppendSealed(context.Background(), ledger, "payload")
		require.NoError(t, err)
		assert.Equal(t, uint64(i), entry.Index)
		assert.True(t, entry.MeetsDifficulty(2))
	}

	assert.Equal(t, 4, ledger.Len())
	assert.True(t, ledger.IsValid())
	assert.Equal(t, float64(3), testutil.ToFloat64(collectors.EntriesAppended))
	assert.Equal(t, float64(4), testutil.ToFloat64(collectors.ChainLength))
}

func TestAppendSealedCancelled(t *testing.T) {
	collectors := metrics.NewCollectors()
	sealer := New(Config{Workers: 2, Metrics: collectors}, nil)
	ledger := blockchain.WithDifficulty(64)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	entry, err := sealer.AppendSealed(ctx, ledger, "never")
	assert.Nil(t, entry)
	assert.True(t, errors.Is(err, context.Canceled))
	assert.Equal(t, 1, ledger.Len())
	assert.Equal(t, float64(0), testutil.ToFloat64(collectors.EntriesAppended))
}
