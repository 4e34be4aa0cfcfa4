package sha1

import "math/bits"

// Round constants, one per 20-round range.
const (
	_K0 = 0x5A827999
	_K1 = 0x6ED9EBA1
	_K2 = 0x8F1BBCDC
	_K3 = 0xCA62C1D6
)

// block applies the SHA-1 compression function to one or more 64-byte
// blocks of p. len(p) must be a multiple of BlockSize. All arithmetic is
// uint32 with wraparound, which is exactly Go's native semantics.
func block(d *digest, p []byte) {
	h0, h1, h2, h3, h4 := d.h[0], d.h[1], d.h[2], d.h[3], d.h[4]

	var w [80]uint32
	for len(p) >= BlockSize {
		// Message schedule: sixteen big-endian words expanded to eighty.
		for t := 0; t < 16; t++ {
			j := t * 4
			w[t] = uint32(p[j])<<24 | uint32(p[j+1])<<16 | uint32(p[j+2])<<8 | uint32(p[j+3])
		}
		for t := 16; t < 80; t++ {
			w[t] = bits.RotateLeft32(w[t-3]^w[t-8]^w[t-14]^w[t-16], 1)
		}

		a, b, c, d2, e := h0, h1, h2, h3, h4

		for t := 0; t < 20; t++ {
			f := (b & c) | (^b & d2)
			tmp := bits.RotateLeft32(a, 5) + f + e + _K0 + w[t]
			e, d2, c, b, a = d2, c, bits.RotateLeft32(b, 30), a, tmp
		}
		for t := 20; t < 40; t++ {
			f := b ^ c ^ d2
			tmp := bits.RotateLeft32(a, 5) + f + e + _K1 + w[t]
			e, d2, c, b, a = d2, c, bits.RotateLeft32(b, 30), a, tmp
		}
		for t := 40; t < 60; t++ {
			f := (b & c) | (b & d2) | (c & d2)
			tmp := bits.RotateLeft32(a, 5) + f + e + _K2 + w[t]
			e, d2, c, b, a = d2, c, bits.RotateLeft32(b, 30), a, tmp
		}
		for t := 60; t < 80; t++ {
			f := b ^ c ^ d2
			tmp := bits.RotateLeft32(a, 5) + f + e + _K3 + w[t]
			e, d2, c, b, a = d2, c, bits.RotateLeft32(b, 30), a, tmp
		}

		h0 += a
		h1 += b
		h2 += c
		h3 += d2
		h4 += e

		p = p[BlockSize:]
	}

	d.h[0], d.h[1], d.h[2], d.h[3], d.h[4] = h0, h1, h2, h3, h4
}
