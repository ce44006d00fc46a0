// Copyright (c) 2020 The JaxNetwork developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

/*
Package blockchain implements the hash-linked ledger.

A Ledger is an ordered list of entries.  Every entry commits to its own
fields through a SHA-512 digest and to its predecessor through PrevHash, so
editing any historical entry breaks either its own digest or the link of
its successor.  Entries may optionally be sealed: the nonce is increased
until the digest starts with a required number of '0' hex characters.

Entries are deliberately mutable.  Nothing re-computes an entry's Hash when
a field changes; Verify, Validate and IsValid are the only places where
the stored digest is compared against the fields.  This is what makes
tampering observable:

	chain := blockchain.New()
	chain.Append("A", false)
	chain.Append("B", false)
	chain.Tamper(1, "X") // returns true, chain.IsValid() is now false

A Ledger is not safe for concurrent use.
*/
package blockchain
