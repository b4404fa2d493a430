// Package groth16 implements the pairing-based verifier core: endianness
// reconciliation, proof-blob parsing, public-input construction, the linear
// combinator and the pairing orchestrator. Every type in this package is
// plain data; none of it touches a KV store or a chain context. The keeper
// package wraps this core with the owner-gated registries and persistence.
package groth16

import "crypto/subtle"

// reverse256 returns a new 32-byte array with the byte order of in
// reversed. It is its own inverse: reverse256(reverse256(x)) == x.
func reverse256(in [32]byte) [32]byte {
	var out [32]byte
	for i := 0; i < 32; i++ {
		out[i] = in[31-i]
	}
	return out
}

// zeroExtend128 left-aligns a 16-byte payload into a 32-byte field element,
// zero-filling the remaining 16 bytes. This is the shape every public input
// derived from a split digest takes: payload low, zero high.
func zeroExtend128(payload [16]byte) [32]byte {
	var out [32]byte
	copy(out[0:16], payload[:])
	return out
}

// splitDigest reproduces the Ethereum-style prover's 128-bit split of a
// 256-bit digest. d is the digest as received (big-endian integer value);
// lo and hi are returned in host little-endian, zero-extended to 32 bytes
// via zeroExtend128, ready to be used directly as public inputs.
//
// Equivalently (and this is how it's implemented): lo's payload is d's
// first 16 bytes, hi's payload is d's last 16 bytes, each left-aligned in a
// 32-byte slot with the other 16 bytes zero. The conceptual double
// reversal the design doc describes (reverse the whole digest, slice off a
// 16-byte half, reverse that half back) collapses exactly to this -- do
// not be tempted to "simplify" by reversing only once, that silently
// produces the wrong two field elements (see historical pitfalls).
func splitDigest(d [32]byte) (lo [32]byte, hi [32]byte) {
	var loPayload, hiPayload [16]byte
	copy(loPayload[:], d[0:16])
	copy(hiPayload[:], d[16:32])
	return zeroExtend128(loPayload), zeroExtend128(hiPayload)
}

// constTimeEq compares two 32-byte values in constant time. Used for
// image-id and claim-digest comparisons (the 4-byte selector is compared
// with crypto/subtle directly in ParseProofBlob), where timing side
// channels on a registry lookup are cheap to avoid and costless to get
// right.
func constTimeEq(a, b [32]byte) bool {
	return subtle.ConstantTimeCompare(a[:], b[:]) == 1
}
