// Copyright (c) 2020 The JaxNetwork developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package mining

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/pkg/errors"
	"gitlab.com/jaxnet/hashledger/node/blockchain"
	"gitlab.com/jaxnet/hashledger/node/metrics"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// checkInterval is the number of nonces a worker tries between two checks
// of the shared context.
const checkInterval = 1 << 10

// errSolved stops the remaining workers once one of them found a nonce.
var errSolved = errors.New("solution found")

// Config is a descriptor containing the sealer configuration.
type Config struct {
	// Workers is the number of goroutines searching for a nonce.  Values
	// below 2 seal on the calling goroutine.
	Workers int

	// Difficulty is the number of leading '0' hex characters Seal requires.
	Difficulty uint

	// Metrics receives attempt counts and durations.  Optional.
	Metrics *metrics.Collectors
}

// Sealer searches nonces for ledger entries.
type Sealer struct {
	cfg Config
	log *zap.Logger
}

// New returns a sealer.  A nil logger disables logging.
func New(cfg Config, logger *zap.Logger) *Sealer {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Sealer{cfg: cfg, log: logger}
}

// Workers returns the number of goroutines used per seal.
func (s *Sealer) Workers() int {
	if s.cfg.Workers < 1 {
		return 1
	}
	return s.cfg.Workers
}

// Seal searches a nonce that makes the entry hash meet the configured
// difficulty.  It returns ctx.Err() when the context is done first.
func (s *Sealer) Seal(ctx context.Context, entry *blockchain.Entry) error {
	return s.seal(ctx, entry, s.cfg.Difficulty)
}

// AppendSealed builds the entry following the latest entry of ledger, seals
// it with the ledger difficulty and appends it.  The ledger is unchanged when
// sealing is interrupted.
func (s *Sealer) AppendSealed(ctx context.Context, ledger *blockchain.Ledger, payload string) (*blockchain.Entry, error) {
	entry := ledger.NextEntry(payload)
	if err := s.seal(ctx, entry, ledger.Difficulty()); err != nil {
		return nil, errors.Wrapf(err, "sealing entry %d", entry.Index)
	}

	if err := ledger.AppendEntry(entry); err != nil {
		return nil, errors.Wrapf(err, "appending entry %d", entry.Index)
	}

	s.cfg.Metrics.ObserveAppend(ledger.Len())
	return entry, nil
}

func (s *Sealer) seal(ctx context.Context, entry *blockchain.Entry, difficulty uint) error {
	start := time.Now()
	startNonce := entry.Nonce

	var (
		attempts uint64
		err      error
	)
	if s.Workers() == 1 {
		err = entry.SealContext(ctx, difficulty)
		attempts = entry.Nonce - startNonce
	} else {
		attempts, err = s.sealParallel(ctx, entry, difficulty)
	}

	elapsed := time.Since(start)
	s.cfg.Metrics.ObserveSeal(attempts, elapsed.Seconds())

	if err != nil {
		s.log.Info("Sealing interrupted",
			zap.Uint64("index", entry.Index),
			zap.Uint64("attempts", attempts),
			zap.Duration("elapsed", elapsed),
			zap.Error(err))
		return err
	}

	s.log.Debug("Entry sealed",
		zap.Uint64("index", entry.Index),
		zap.Uint64("nonce", entry.Nonce),
		zap.Uint64("attempts", attempts),
		zap.Int("workers", s.Workers()),
		zap.Duration("elapsed", elapsed),
		zap.String("hash", entry.Hash))
	return nil
}

// sealParallel runs the workers and copies the winning nonce and hash into
// entry.  entry is left untouched when the context is done first.
func (s *Sealer) sealParallel(ctx context.Context, entry *blockchain.Entry, difficulty uint) (uint64, error) {
	if entry.MeetsDifficulty(difficulty) {
		return 0, nil
	}

	var attempts uint64
	solutions := make(chan *blockchain.Entry, 1)
	workers := s.Workers()

	g, gctx := errgroup.WithContext(ctx)
	for w := 0; w < workers; w++ {
		candidate := entry.Clone()
		candidate.Nonce += uint64(w) + 1
		step := uint64(workers)

		g.Go(func() error {
			var tried uint64
			defer func() { atomic.AddUint64(&attempts, tried) }()

			for {
				if tried%checkInterval == 0 {
					select {
					case <-gctx.Done():
						return nil
					default:
					}
				}

				candidate.Recompute()
				tried++
				if candidate.MeetsDifficulty(difficulty) {
					select {
					case solutions <- candidate:
					default:
					}
					return errSolved
				}
				candidate.Nonce += step
			}
		})
	}

	if err := g.Wait(); err != nil && err != errSolved {
		return atomic.LoadUint64(&attempts), err
	}

	total := atomic.LoadUint64(&attempts)
	select {
	case winner := <-solutions:
		entry.Nonce = winner.Nonce
		entry.Hash = winner.Hash
		return total, nil
	default:
		return total, ctx.Err()
	}
}
