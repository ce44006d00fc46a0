// Copyright (c) 2020 The JaxNetwork developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package report renders ledgers, commitment trees and proofs as text
// tables, CSV, JSON or debug dumps.
package report
