// Copyright (c) 2020 The JaxNetwork developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package blockchain

import (
	"context"

	"github.com/pkg/errors"
	"gitlab.com/jaxnet/hashledger/types/merkle"
)

// DefaultDifficulty is the difficulty used by New.
const DefaultDifficulty uint = 2

// Ledger is an append-only, hash-linked list of entries.  It always holds
// at least the genesis entry.
type Ledger struct {
	entries    []*Entry
	difficulty uint
}

// New creates a ledger with DefaultDifficulty.
func New() *Ledger {
	return WithDifficulty(DefaultDifficulty)
}

// WithDifficulty creates a ledger whose sealed entries need difficulty
// leading '0' hex characters.
func WithDifficulty(difficulty uint) *Ledger {
	genesis := Genesis()
	log.Debug().Str("hash", shortHash(genesis.Hash)).Uint("difficulty", difficulty).
		Msg("Ledger created")

	return &Ledger{
		entries:    []*Entry{genesis},
		difficulty: difficulty,
	}
}

// FromEntries rebuilds a ledger from entries exported earlier, e.g. by the
// CSV report.  The entries are taken as they are; call Validate to check
// them.
func FromEntries(entries []*Entry, difficulty uint) (*Ledger, error) {
	if len(entries) == 0 {
		return nil, ErrEmptyChain
	}

	l := &Ledger{
		entries:    make([]*Entry, len(entries)),
		difficulty: difficulty,
	}
	copy(l.entries, entries)
	return l, nil
}

// Difficulty returns the number of leading '0' hex characters required from
// sealed entries.
func (l *Ledger) Difficulty() uint {
	return l.difficulty
}

// Len returns the number of entries, genesis included.
func (l *Ledger) Len() int {
	return len(l.entries)
}

// Latest returns the last entry.  A ledger without entries can only be the
// result of a programming error, so Latest panics in that case.
func (l *Ledger) Latest() *Entry {
	if len(l.entries) == 0 {
		panic("blockchain: ledger should never be empty")
	}
	return l.entries[len(l.entries)-1]
}

// Genesis returns the first entry.
func (l *Ledger) Genesis() *Entry {
	if len(l.entries) == 0 {
		panic("blockchain: ledger should never be empty")
	}
	return l.entries[0]
}

// Entry returns the entry at index.  The entry is shared with the ledger:
// writing to its fields is how tampering is simulated.
func (l *Ledger) Entry(index int) (*Entry, bool) {
	if index < 0 || index >= len(l.entries) {
		return nil, false
	}
	return l.entries[index], true
}

// Entries returns the entries in order.  The slice is a copy, the entries
// are not.
func (l *Ledger) Entries() []*Entry {
	out := make([]*Entry, len(l.entries))
	copy(out, l.entries)
	return out
}

// NextEntry builds, without appending, the unsealed entry that would follow
// the latest one.
func (l *Ledger) NextEntry(payload string) *Entry {
	return NewEntry(uint64(len(l.entries)), payload, l.Latest().Hash)
}

// Append adds a new entry carrying payload.  When seal is set the entry is
// sealed with the ledger difficulty first, which blocks until it succeeds.
func (l *Ledger) Append(payload string, seal bool) *Entry {
	entry := l.NextEntry(payload)
	if seal {
		entry.Seal(l.difficulty)
	}

	l.push(entry)
	return entry
}

// AppendContext works like Append but stops sealing when ctx is done.  The
// ledger is left unchanged in that case.
func (l *Ledger) AppendContext(ctx context.Context, payload string, seal bool) (*Entry, error) {
	entry := l.NextEntry(payload)
	if seal {
		if err := entry.SealContext(ctx, l.difficulty); err != nil {
			return nil, errors.Wrapf(err, "sealing entry %d", entry.Index)
		}
	}

	l.push(entry)
	return entry, nil
}

// AppendEntry appends an entry built elsewhere, e.g. sealed by a worker
// pool.  The entry must follow the latest entry and carry a valid hash.
func (l *Ledger) AppendEntry(entry *Entry) error {
	if err := checkLink(entry, l.Latest()); err != nil {
		return err
	}

	l.push(entry)
	return nil
}

func (l *Ledger) push(entry *Entry) {
	l.entries = append(l.entries, entry)
	log.Debug().Uint64("index", entry.Index).Uint64("nonce", entry.Nonce).
		Str("hash", shortHash(entry.Hash)).Msg("Entry appended")
}

// Tamper overwrites the payload of the entry at index without touching its
// hash, then reports the resulting validity.  It returns false when index is
// out of range.  It exists to demonstrate integrity checks; it is not a
// write path.
func (l *Ledger) Tamper(index int, payload string) bool {
	entry, ok := l.Entry(index)
	if !ok {
		return false
	}

	log.Warn().Int("index", index).Msg("Tampering with entry")
	entry.Payload = payload

	log.Info().Bool("valid", l.IsValid()).Msg("Ledger validity after tampering")
	return true
}

// PayloadTree builds a commitment tree over the payloads of all entries, in
// ledger order.
func (l *Ledger) PayloadTree() *merkle.Tree {
	payloads := make([]string, len(l.entries))
	for i, entry := range l.entries {
		payloads[i] = entry.Payload
	}
	return merkle.New(payloads)
}
