/*
 * Copyright (c) 2021 The JaxNetwork developers
 * Use of this source code is governed by an ISC
 * license that can be found in the LICENSE file.
 */

// Package merkle provides a commitment tree over a fixed, ordered set of
// items together with inclusion proofs.
//
// Leaves are the hex digests of the items.  A parent is the digest of the
// hex TEXT of its left child followed by the hex text of its right child:
//
// 	      parent = HASH( hex(left) || hex(right) )
//
// When a level has an odd number of nodes, the last node is paired with
// itself.
//
// Tree Topology:
//
// For 1 item:
// 	      0: root = leaf1
//
// For 2 items:
//	      1:      root = node12 = leaf1 + leaf2
//	             /       \
//	      0:   leaf1    leaf2
//
// For 3 items:
//	      2:              root = node12 + node33
//	                    /               \
//	      1:       node12              node33
//	              /     \             /      \
//	      0:   leaf1   leaf2       leaf3   (leaf3)
//
// For 5 items:
//	      3:                      root = node1234 + node5555
//	                              /                      \
//	      2:              node1234                      node5555
//	                     /         \                    /       \
//	      1:        node12         node34          node55     (node55)
//	               /     \        /      \        /      \
//	      0:   leaf1   leaf2   leaf3   leaf4   leaf5   (leaf5)
//
// A proof for a leaf lists, bottom-up, the sibling digest at every level
// below the root and whether that sibling sits to the right.  Anyone holding
// only the root can fold the path back up with VerifyProof.
package merkle
