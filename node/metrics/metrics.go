// Copyright (c) 2020 The JaxNetwork developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package metrics

import (
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"gitlab.com/jaxnet/hashledger/node/blockchain"
)

const namespace = "hashledger"

// Collectors holds the prometheus collectors fed by the ledger and the
// sealer.  The zero value is not usable, build it with NewCollectors.
type Collectors struct {
	EntriesAppended    prometheus.Counter
	SealAttempts       prometheus.Counter
	SealDuration       prometheus.Histogram
	ValidationFailures prometheus.Counter
	ChainLength        prometheus.Gauge
}

// NewCollectors creates unregistered collectors.
func NewCollectors() *Collectors {
	return &Collectors{
		EntriesAppended: prometheus.NewCounter(prometheus.CounterOpts{
			Name: prometheus.BuildFQName(namespace, "ledger", "entries_appended_total"),
			Help: "Number of entries appended to the ledger.",
		}),
		SealAttempts: prometheus.NewCounter(prometheus.CounterOpts{
			Name: prometheus.BuildFQName(namespace, "sealer", "attempts_total"),
			Help: "Number of nonces tried while sealing entries.",
		}),
		SealDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    prometheus.BuildFQName(namespace, "sealer", "duration_seconds"),
			Help:    "Time spent sealing a single entry.",
			Buckets: prometheus.ExponentialBuckets(0.001, 4, 10),
		}),
		ValidationFailures: prometheus.NewCounter(prometheus.CounterOpts{
			Name: prometheus.BuildFQName(namespace, "ledger", "validation_failures_total"),
			Help: "Number of observed ledger snapshots that failed validation.",
		}),
		ChainLength: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: prometheus.BuildFQName(namespace, "ledger", "length"),
			Help: "Number of entries in the ledger, genesis included.",
		}),
	}
}

func (c *Collectors) all() []prometheus.Collector {
	return []prometheus.Collector{
		c.EntriesAppended,
		c.SealAttempts,
		c.SealDuration,
		c.ValidationFailures,
		c.ChainLength,
	}
}

// Register registers every collector with reg.
func (c *Collectors) Register(reg prometheus.Registerer) error {
	for _, collector := range c.all() {
		if err := reg.Register(collector); err != nil {
			return errors.Wrap(err, "can't register metric")
		}
	}
	return nil
}

// ObserveStats records a ledger snapshot.
func (c *Collectors) ObserveStats(stats blockchain.Stats) {
	c.ChainLength.Set(float64(stats.Count))
	if !stats.IsValid {
		c.ValidationFailures.Inc()
	}
}

// ObserveSeal records the outcome of one sealing run.  Safe to call on a nil
// receiver so that callers without metrics need no checks.
func (c *Collectors) ObserveSeal(attempts uint64, seconds float64) {
	if c == nil {
		return
	}
	c.SealAttempts.Add(float64(attempts))
	c.SealDuration.Observe(seconds)
}

// ObserveAppend records one appended entry.
func (c *Collectors) ObserveAppend(length int) {
	if c == nil {
		return
	}
	c.EntriesAppended.Inc()
	c.ChainLength.Set(float64(length))
}
