// Copyright (c) 2020 The JaxNetwork developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

/*
Package mining seals ledger entries with proof of work.

A Sealer either delegates to Entry.SealContext (one worker) or splits the
nonce space between several goroutines.  With n workers, worker w tries the
nonces base+w+1, base+w+1+n, base+w+1+2n and so on, where base is the nonce
the entry carried when sealing started.  Every worker operates on its own
copy of the entry; the first copy that meets the difficulty wins and its
nonce and hash are written back.  Which worker wins is not deterministic, so
a parallel seal may settle on a larger nonce than a sequential one would.
*/
package mining
