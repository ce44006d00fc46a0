/*
 * Copyright (c) 2021 The JaxNetwork developers
 * Use of this source code is governed by an ISC
 * license that can be found in the LICENSE file.
 */

package merkle

import (
	"fmt"
)

// ProofElement is one step of a proof path: the sibling digest and whether
// the sibling is the right-hand child.
type ProofElement struct {
	Hash    string `json:"hash"`
	IsRight bool   `json:"is_right"`
}

// Proof is an inclusion proof for a single leaf.  The path is ordered from
// the leaf level up to the level just below the root.
type Proof struct {
	LeafIndex int            `json:"leaf_index"`
	LeafHash  string         `json:"leaf_hash"`
	Path      []ProofElement `json:"path"`
}

// Fold recomputes the root implied by the proof.
func (p *Proof) Fold() string {
	current := p.LeafHash
	for _, element := range p.Path {
		if element.IsRight {
			current = HashMerkleBranches(current, element.Hash)
		} else {
			current = HashMerkleBranches(element.Hash, current)
		}
	}
	return current
}

func (p *Proof) String() string {
	leaf := p.LeafHash
	if len(leaf) > 24 {
		leaf = leaf[:24] + "..."
	}
	return fmt.Sprintf("MerkleProof(leaf_index=%d, leaf_hash=%s, path_len=%d)",
		p.LeafIndex, leaf, len(p.Path))
}

// VerifyProof reports whether proof folds up to root.  It only needs the
// root, so it can be used by a verifier that never saw the tree.
func VerifyProof(root string, proof *Proof) bool {
	if proof == nil {
		return false
	}
	return proof.Fold() == root
}
