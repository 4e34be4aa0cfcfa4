// Package sha1 implements the SHA-1 hash algorithm as defined in RFC 3174,
// along with the fixed-format encoders used by the sha1gen code generator.
//
// SHA-1 is cryptographically broken and should not be used to protect
// anything. It remains useful as a stable content fingerprint, which is the
// only thing sha1gen uses it for.
package sha1

import (
	"encoding/binary"
	"hash"
)

// Size is the size of a SHA-1 checksum in bytes.
const Size = 20

// BlockSize is the block size of SHA-1 in bytes.
const BlockSize = 64

const (
	init0 = 0x67452301
	init1 = 0xEFCDAB89
	init2 = 0x98BADCFE
	init3 = 0x10325476
	init4 = 0xC3D2E1F0
)

// digest represents the partial evaluation of a checksum.
type digest struct {
	h   [5]uint32
	x   [BlockSize]byte
	nx  int
	len uint64
}

func (d *digest) Reset() {
	d.h[0] = init0
	d.h[1] = init1
	d.h[2] = init2
	d.h[3] = init3
	d.h[4] = init4
	d.nx = 0
	d.len = 0
}

// New returns a new hash.Hash computing the SHA-1 checksum.
func New() hash.Hash {
	d := new(digest)
	d.Reset()
	return d
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
			block(d, d.x[:])
			d.nx = 0
		}
		p = p[n:]
	}
	if len(p) >= BlockSize {
		n := len(p) &^ (BlockSize - 1)
		block(d, p[:n])
		p = p[n:]
	}
	if len(p) > 0 {
		d.nx = copy(d.x[:], p)
	}
	return
}

func (d *digest) Sum(in []byte) []byte {
	// Make a copy of d so that callers can keep writing and summing.
	d0 := *d
	sum := d0.checkSum()
	return append(in, sum[:]...)
}

// checkSum appends the padding and length trailer, compresses the final
// block(s), and reads out the big-endian digest.
func (d *digest) checkSum() [Size]byte {
	msgLen := d.len

	// Pad with a 0x80 byte, then zeros, leaving 8 bytes for the bit length.
	// If fewer than 8 trailer bytes remain in the block, pad into one more.
	var tmp [BlockSize + 8]byte
	tmp[0] = 0x80
	var pad uint64
	if rem := msgLen % BlockSize; rem < 56 {
		pad = 56 - rem
	} else {
		pad = BlockSize + 56 - rem
	}
	binary.BigEndian.PutUint64(tmp[pad:], msgLen<<3)
	d.Write(tmp[:pad+8])

	if d.nx != 0 {
		panic("sha1: internal error, padding did not fill final block")
	}

	var sum [Size]byte
	for i, h := range d.h {
		binary.BigEndian.PutUint32(sum[i*4:], h)
	}
	return sum
}

// Sum returns the SHA-1 checksum of data. Every byte sequence, including
// the empty one, is valid input; the result is a pure function of data.
func Sum(data []byte) [Size]byte {
	var d digest
	d.Reset()
	d.Write(data)
	return d.checkSum()
}
