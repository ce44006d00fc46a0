// Copyright (c) 2020 The JaxNetwork developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chainhash

import (
	"encoding/binary"
	"hash"
	"math/bits"
)

const (
	// Size is the size of a digest in bytes.
	Size = HashSize

	// BlockSize is the block size of the compression function in bytes.
	BlockSize = 128

	// lenOffset is where the 128-bit message length starts inside the
	// final padded block.
	lenOffset = BlockSize - 16
)

// initialState holds the first 64 bits of the fractional parts of the square
// roots of the first eight primes.
var initialState = [8]uint64{
	0x6a09e667f3bcc908,
	0xbb67ae8584caa73b,
	0x3c6ef372fe94f82b,
	0xa54ff53a5f1d36f1,
	0x510e527fade682d1,
	0x9b05688c2b3e6c1f,
	0x1f83d9abfb41bd6b,
	0x5be0cd19137e2179,
}

// roundConstants holds the first 64 bits of the fractional parts of the cube
// roots of the first eighty primes.
var roundConstants = [80]uint64{
	0x428a2f98d728ae22, 0x7137449123ef65cd, 0xb5c0fbcfec4d3b2f, 0xe9b5dba58189dbbc,
	0x3956c25bf348b538, 0x59f111f1b605d019, 0x923f82a4af194f9b, 0xab1c5ed5da6d8118,
	0xd807aa98a3030242, 0x12835b0145706fbe, 0x243185be4ee4b28c, 0x550c7dc3d5ffb4e2,
	0x72be5d74f27b896f, 0x80deb1fe3b1696b1, 0x9bdc06a725c71235, 0xc19bf174cf692694,
	0xe49b69c19ef14ad2, 0xefbe4786384f25e3, 0x0fc19dc68b8cd5b5, 0x240ca1cc77ac9c65,
	0x2de92c6f592b0275, 0x4a7484aa6ea6e483, 0x5cb0a9dcbd41fbd4, 0x76f988da831153b5,
	0x983e5152ee66dfab, 0xa831c66d2db43210, 0xb00327c898fb213f, 0xbf597fc7beef0ee4,
	0xc6e00bf33da88fc2, 0xd5a79147930aa725, 0x06ca6351e003826f, 0x142929670a0e6e70,
	0x27b70a8546d22ffc, 0x2e1b21385c26c926, 0x4d2c6dfc5ac42aed, 0x53380d139d95b3df,
	0x650a73548baf63de, 0x766a0abb3c77b2a8, 0x81c2c92e47edaee6, 0x92722c851482353b,
	0xa2bfe8a14cf10364, 0xa81a664bbc423001, 0xc24b8b70d0f89791, 0xc76c51a30654be30,
	0xd192e819d6ef5218, 0xd69906245565a910, 0xf40e35855771202a, 0x106aa07032bbd1b8,
	0x19a4c116b8d2d0c8, 0x1e376c085141ab53, 0x2748774cdf8eeb99, 0x34b0bcb5e19b48a8,
	0x391c0cb3c5c95a63, 0x4ed8aa4ae3418acb, 0x5b9cca4f7763e373, 0x682e6ff3d6b2b8a3,
	0x748f82ee5defb2fc, 0x78a5636f43172f60, 0x84c87814a1f0ab72, 0x8cc702081a6439ec,
	0x90befffa23631e28, 0xa4506cebde82bde9, 0xbef9a3f7b2c67915, 0xc67178f2e372532b,
	0xca273eceea26619c, 0xd186b8c721c0c207, 0xeada7dd6cde0eb1e, 0xf57d4f7fee6ed178,
	0x06f067aa72176fba, 0x0a637dc5a2c898a6, 0x113f9804bef90dae, 0x1b710b35131c471b,
	0x28db77f523047d84, 0x32caab7b40c72493, 0x3c9ebe0a15c9bebc, 0x431d67c49c100d4c,
	0x4cc5d4becb3e42b6, 0x597f299cfc657e2a, 0x5fcb6fab3ad6faec, 0x6c44198c4a475817,
}

// digest is the streaming state of the hash.  It buffers a partial block
// until a full one is available for compression.
type digest struct {
	h   [8]uint64
	x   [BlockSize]byte
	nx  int
	len uint64
}

// New returns a new hash.Hash computing the SHA-512 digest.
func New() hash.Hash {
	d := new(digest)
	d.Reset()
	return d
}

func (d *digest) Reset() {
	d.h = initialState
	d.nx = 0
	d.len = 0
}

func (d *digest) Size() int { return Size }

func (d *digest) BlockSize() int { return BlockSize }

func (d *digest) Write(p []byte) (nn int, err error) {
	nn = len(p)
	d.len += uint64(nn)
	if d.nx > 0 {
		n := copy(d.x[d.nx:], p)
		d.nx += n
		if d.nx == BlockSize {
			compress(&d.h, d.x[:])
			d.nx = 0
		}
		p = p[n:]
	}
	if len(p) >= BlockSize {
		n := len(p) &^ (BlockSize - 1)
		compress(&d.h, p[:n])
		p = p[n:]
	}
	if len(p) > 0 {
		d.nx = copy(d.x[:], p)
	}
	return nn, nil
}

// Sum appends the current digest to in.  The running state is not changed,
// so writes may continue after Sum.
func (d *digest) Sum(in []byte) []byte {
	d0 := *d
	var h Hash
	d0.checkSum(&h)
	return append(in, h[:]...)
}

// checkSum pads the message and writes the final state to out.  The digest
// must not be written to afterwards.
func (d *digest) checkSum(out *Hash) {
	length := d.len

	// Padding: a single 0x80 byte, zeros until the length is 112 mod 128,
	// then the message length in bits as a 128-bit big-endian integer.
	var tmp [BlockSize + 16]byte
	tmp[0] = 0x80
	var t uint64
	if length%BlockSize < lenOffset {
		t = lenOffset - length%BlockSize
	} else {
		t = BlockSize + lenOffset - length%BlockSize
	}

	padding := tmp[:t+16]
	binary.BigEndian.PutUint64(padding[t:], length>>61)
	binary.BigEndian.PutUint64(padding[t+8:], length<<3)
	_, _ = d.Write(padding)

	if d.nx != 0 {
		panic("chainhash: padded message is not block aligned")
	}

	for i, s := range d.h {
		binary.BigEndian.PutUint64(out[i*8:], s)
	}
}

func sigma0(x uint64) uint64 {
	return bits.RotateLeft64(x, -1) ^ bits.RotateLeft64(x, -8) ^ (x >> 7)
}

func sigma1(x uint64) uint64 {
	return bits.RotateLeft64(x, -19) ^ bits.RotateLeft64(x, -61) ^ (x >> 6)
}

func bigSigma0(x uint64) uint64 {
	return bits.RotateLeft64(x, -28) ^ bits.RotateLeft64(x, -34) ^ bits.RotateLeft64(x, -39)
}

func bigSigma1(x uint64) uint64 {
	return bits.RotateLeft64(x, -14) ^ bits.RotateLeft64(x, -18) ^ bits.RotateLeft64(x, -41)
}

func choose(x, y, z uint64) uint64 {
	return (x & y) ^ (^x & z)
}

func majority(x, y, z uint64) uint64 {
	return (x & y) ^ (x & z) ^ (y & z)
}

// compress runs the compression function over every full block of p and
// folds the result into state.  len(p) must be a multiple of BlockSize.
func compress(state *[8]uint64, p []byte) {
	var w [80]uint64
	h0, h1, h2, h3, h4, h5, h6, h7 := state[0], state[1], state[2], state[3],
		state[4], state[5], state[6], state[7]

	for len(p) >= BlockSize {
		for i := 0; i < 16; i++ {
			w[i] = binary.BigEndian.Uint64(p[i*8:])
		}
		for i := 16; i < 80; i++ {
			w[i] = sigma1(w[i-2]) + w[i-7] + sigma0(w[i-15]) + w[i-16]
		}

		a, b, c, d, e, f, g, h := h0, h1, h2, h3, h4, h5, h6, h7

		for i := 0; i < 80; i++ {
			t1 := h + bigSigma1(e) + choose(e, f, g) + roundConstants[i] + w[i]
			t2 := bigSigma0(a) + majority(a, b, c)

			h = g
			g = f
			f = e
			e = d + t1
			d = c
			c = b
			b = a
			a = t1 + t2
		}

		h0 += a
		h1 += b
		h2 += c
		h3 += d
		h4 += e
		h5 += f
		h6 += g
		h7 += h

		p = p[BlockSize:]
	}

	state[0], state[1], state[2], state[3] = h0, h1, h2, h3
	state[4], state[5], state[6], state[7] = h4, h5, h6, h7
}
