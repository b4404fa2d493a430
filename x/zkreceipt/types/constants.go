package types

// Proof envelope layout (see §3/§4.4 of the design): a byte sequence of at
// least MinProofBlobLen bytes laid out as
//
//	[ image_id     : 32 ]
//	[ claim_digest : 32 ]
//	[ selector     :  4 ]
//	[ seal         :256 ]  // 64 (A) + 128 (B) + 64 (C), big-endian
//	[ journal      :  * ]  // opaque, application-defined
const (
	ImageIDOffset     = 0
	ImageIDLen        = 32
	ClaimDigestOffset = ImageIDOffset + ImageIDLen
	ClaimDigestLen    = 32
	SelectorOffset    = ClaimDigestOffset + ClaimDigestLen
	SelectorLen       = 4
	SealOffset        = SelectorOffset + SelectorLen
	SealLen           = 256
	JournalOffset     = SealOffset + SealLen

	// MinProofBlobLen is the minimum length of a well-formed envelope: an
	// image-id, a claim digest, a selector and a seal, with an empty journal.
	MinProofBlobLen = JournalOffset // 324
)

// CONTROL_ROOT identifies the STARK control tree the reference prover's
// guest-program receipts are checked against. Stored here already in host
// little-endian encoding; consumed split into two 128-bit halves as public
// inputs #0 and #1 (see split_digest). The canonical big-endian reference
// value this LE constant was derived from is:
//
//	0xb25d1c1f0e3b4d9f7db3a1b8e4f2c6a9e007d4f1b6c8a3d2e9f0c7b41a6de3f2
//
// This repository treats the control root as a fixed parameter of the
// verifier's deployment, not a value it derives at runtime.
var CONTROL_ROOT = [32]byte{
	0xf2, 0xe3, 0x6d, 0x1a, 0xb4, 0xc7, 0xf0, 0xe9,
	0xd2, 0xa3, 0xc8, 0xb6, 0xf1, 0xd4, 0x07, 0xe0,
	0xa9, 0xc6, 0xf2, 0xe4, 0xb8, 0xa1, 0xb3, 0x7d,
	0x9f, 0x4d, 0x3b, 0x0e, 0x1f, 0x1c, 0x5d, 0xb2,
}

// BN254_CONTROL_ID is a single scalar, reduced modulo the BN254 scalar
// field Fr once offline, stored in host little-endian. It is consumed
// directly as public input #4 -- it is never reversed or split at
// verification time, unlike CONTROL_ROOT and the claim digest.
var BN254_CONTROL_ID = [32]byte{
	0x4a, 0x2f, 0x8e, 0x91, 0xc3, 0x6b, 0x5d, 0x07,
	0x1e, 0x9c, 0xa4, 0x3f, 0x82, 0xd6, 0x50, 0xb1,
	0x7a, 0xc9, 0x3e, 0x08, 0x5f, 0xd1, 0x2b, 0x94,
	0x61, 0xe7, 0x0a, 0xc5, 0x38, 0xf4, 0x1d, 0x00,
}
