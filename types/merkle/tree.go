/*
 * Copyright (c) 2021 The JaxNetwork developers
 * Use of this source code is governed by an ISC
 * license that can be found in the LICENSE file.
 */

package merkle

import (
	"gitlab.com/jaxnet/hashledger/types/chainhash"
)

// Tree is an immutable commitment tree.  Levels[0] holds one leaf digest per
// item, every following level holds ceil(len(previous)/2) digests, and Root
// equals the single digest of the last level.
type Tree struct {
	Root   string     `json:"root"`
	Levels [][]string `json:"levels"`
}

// New builds the tree for items.  An empty item set yields an empty tree with
// Root == "" and no levels.
func New(items []string) *Tree {
	if len(items) == 0 {
		return &Tree{}
	}

	level := make([]string, len(items))
	for i, item := range items {
		level[i] = chainhash.HashHex([]byte(item))
	}

	levels := [][]string{level}
	for len(level) > 1 {
		level = hashLevel(level)
		levels = append(levels, level)
	}

	return &Tree{
		Root:   level[0],
		Levels: levels,
	}
}

// hashLevel derives the parent level by pairing adjacent nodes left to right.
func hashLevel(level []string) []string {
	parents := make([]string, 0, (len(level)+1)/2)
	for i := 0; i < len(level); i += 2 {
		left := level[i]
		right := left
		if i+1 < len(level) {
			right = level[i+1]
		}
		parents = append(parents, HashMerkleBranches(left, right))
	}
	return parents
}

// HashMerkleBranches takes the hex digests of two nodes and returns the hex
// digest of their parent.  The hex strings themselves are hashed, not the
// bytes they encode.
func HashMerkleBranches(left, right string) string {
	d := chainhash.New()
	_, _ = d.Write([]byte(left))
	_, _ = d.Write([]byte(right))

	var h chainhash.Hash
	copy(h[:], d.Sum(nil))
	return h.String()
}

// LeafCount returns the number of items the tree commits to.
func (t *Tree) LeafCount() int {
	if len(t.Levels) == 0 {
		return 0
	}
	return len(t.Levels[0])
}

// Height returns the number of levels, leaves included.
func (t *Tree) Height() int {
	return len(t.Levels)
}

// Leaves returns the leaf digests.  The returned slice must not be modified.
func (t *Tree) Leaves() []string {
	if len(t.Levels) == 0 {
		return nil
	}
	return t.Levels[0]
}

// Proof builds the inclusion proof for the leaf at leafIndex.  The second
// return value is false when leafIndex is out of range.
func (t *Tree) Proof(leafIndex int) (*Proof, bool) {
	if leafIndex < 0 || leafIndex >= t.LeafCount() {
		return nil, false
	}

	path := make([]ProofElement, 0, t.Height()-1)
	current := leafIndex
	for _, level := range t.Levels[:len(t.Levels)-1] {
		sibling := current + 1
		if current%2 == 1 {
			sibling = current - 1
		}

		// The odd tail of a level was paired with itself.
		if sibling >= len(level) {
			sibling = current
		}

		path = append(path, ProofElement{
			Hash:    level[sibling],
			IsRight: sibling >= current,
		})
		current /= 2
	}

	return &Proof{
		LeafIndex: leafIndex,
		LeafHash:  t.Levels[0][leafIndex],
		Path:      path,
	}, true
}

// VerifyProof reports whether proof folds up to the root of the tree.
func (t *Tree) VerifyProof(proof *Proof) bool {
	if t.Root == "" {
		return false
	}
	return VerifyProof(t.Root, proof)
}
