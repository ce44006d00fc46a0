// Copyright (c) 2020 The JaxNetwork developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package chainhash provides the digest primitive used by the ledger and the
// commitment tree.
//
// The digest is SHA-512 as defined by FIPS 180-4: a 64-byte Merkle–Damgård
// hash over arbitrary byte sequences.  The package implements the compression
// function directly and exposes it both as a one-shot API (HashB, HashH,
// HashHex) and as a streaming hash.Hash returned by New.
//
// Digests are represented by the Hash type, whose external form is 128
// lowercase hex characters.
package chainhash
