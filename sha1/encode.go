package sha1

import (
	"encoding/base64"
	"encoding/hex"
)

// HexLen is the length of a hex-encoded digest: two characters per byte.
const HexLen = Size * 2

// Base64Len is the length of an unpadded base64 digest: ceil(20*8/6).
const Base64Len = 27

// EncodeHex returns the digest as 40 lowercase hexadecimal characters.
func EncodeHex(sum [Size]byte) string {
	return hex.EncodeToString(sum[:])
}

// EncodeBase64 returns the digest in the standard base64 alphabet with the
// trailing padding characters omitted. 20 bytes do not divide into 3-byte
// groups, so the final group's unused low bits are zero and the output is
// always exactly 27 characters.
func EncodeBase64(sum [Size]byte) string {
	return base64.RawStdEncoding.EncodeToString(sum[:])
}
