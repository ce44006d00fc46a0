// Copyright (c) 2020 The JaxNetwork developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package blockchain

import (
	"github.com/pkg/errors"
)

// Violations reported by Ledger.Validate and Ledger.AppendEntry.  Returned
// errors wrap one of these with the offending entry index; use errors.Is or
// errors.Cause to match them.
var (
	ErrEmptyChain     = errors.New("ledger has no entries")
	ErrInvalidGenesis = errors.New("invalid genesis entry")
	ErrHashMismatch   = errors.New("entry hash does not match its fields")
	ErrBrokenLink     = errors.New("entry does not link to previous entry")
	ErrIndexGap       = errors.New("entry index does not follow previous entry")
)
