// Copyright (c) 2020 The JaxNetwork developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gitlab.com/jaxnet/hashledger/node/blockchain"
)

func TestRegister(t *testing.T) {
	reg := prometheus.NewRegistry()
	c := NewCollectors()

	require.NoError(t, c.Register(reg))
	assert.Error(t, c.Register(reg), "double registration should fail")

	c.ObserveAppend(2)
	families, err := reg.Gather()
	require.NoError(t, err)

	names := make(map[string]bool)
	for _, mf := range families {
		names[mf.GetName()] = true
	}
	assert.True(t, names["hashledger_ledger_entries_appended_total"])
	assert.True(t, names["hashledger_ledger_length"])
	assert.True(t, names["hashledger_sealer_attempts_total"])
}

func TestObserveStats(t *testing.T) {
	c := NewCollectors()
	chain := blockchain.New()
	chain.Append("one", false)

	c.ObserveStats(chain.Stats())
	assert.Equal(t, float64(2), testutil.ToFloat64(c.ChainLength))
	assert.Equal(t, float64(0), testutil.ToFloat64(c.ValidationFailures))

	chain.Tamper(1, "X")
	c.ObserveStats(chain.Stats())
	assert.Equal(t, float64(1), testutil.ToFloat64(c.ValidationFailures))
}

func TestObserveSealAndAppend(t *testing.T) {
	c := NewCollectors()

	c.ObserveSeal(300, 0.5)
	c.ObserveSeal(200, 0.25)
	c.ObserveAppend(5)

	assert.Equal(t, float64(500), testutil.ToFloat64(c.SealAttempts))
	assert.Equal(t, float64(1), testutil.ToFloat64(c.EntriesAppended))
	assert.Equal(t, float64(5), testutil.ToFloat64(c.ChainLength))

	var nilCollectors *Collectors
	assert.NotPanics(t, func() {
		nilCollectors.ObserveSeal(1, 1)
		nilCollectors.ObserveAppend(1)
	})
}
