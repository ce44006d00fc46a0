// Copyright (c) 2020 The JaxNetwork developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.
package main

import (
	"fmt"
	"time"

	"gitlab.com/jaxnet/hashledger/node/blockchain"
)

// maxDifficulty is the largest difficulty whose attempt count fits uint64.
const maxDifficulty = 15

func main() {
	hashesPerSec := measureHashRate(time.Second)
	fmt.Printf("Hash speed: %.0f kilohashes/s\n\n", hashesPerSec/1000)

	fmt.Printf("%-10s %-22s %-6s %s\n", "difficulty", "expected attempts", "2^n", "expected time")
	for d := uint(0); d <= maxDifficulty; d++ {
		attempts := ExpectedAttempts(d)
		eta := time.Duration(float64(attempts) / hashesPerSec * float64(time.Second))
		fmt.Printf("%-10d %-22d 2^%-4d %s\n", d, attempts, PowerOfTwo(attempts), eta.Round(time.Millisecond))
	}
}

// ExpectedAttempts returns the mean number of nonces tried before a hash
// starts with d '0' hex digits, 16^d.
func ExpectedAttempts(d uint) uint64 {
	return uint64(1) << (4 * d)
}

// PowerOfTwo returns the exponent of the largest power of two not above n.
func PowerOfTwo(n uint64) uint64 {
	var exponent uint64
	for n > 1 {
		n >>= 1
		exponent++
	}
	return exponent
}

// measureHashRate computes entry hashes for the given duration and returns
// the rate in hashes per second.
func measureHashRate(duration time.Duration) float64 {
	entry := blockchain.NewEntry(1, "difficulty calibration", blockchain.GenesisPrevHash)

	count := 0
	start := time.Now()
	for time.Since(start) < duration {
		entry.Nonce++
		entry.Recompute()
		count++
	}
	return float64(count) / time.Since(start).Seconds()
}
