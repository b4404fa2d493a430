package groth16

import (
	"crypto/subtle"

	"github.com/btcq-org/qbtc/x/zkreceipt/types"
)

// ParsedProof is the output of ParseProofBlob: the claim digest the blob
// commits to, the reshaped Groth16 proof points in host little-endian, and
// the opaque journal tail.
type ParsedProof struct {
	ClaimDigest [32]byte
	A           types.G1Point
	B           types.G2Point
	C           types.G1Point
	Journal     []byte
}

// ParseProofBlob splits a proof envelope into its fields and reshapes the
// seal's three Groth16 points from the envelope's big-endian encoding into
// host little-endian. registeredImageID and registeredSelector are the
// values the caller has already looked up for the requested proof type;
// they are compared here so the parser is the single place both checks
// happen, rather than scattering them across the facade.
func ParseProofBlob(blob []byte, registeredImageID [32]byte, registeredSelector [4]byte) (*ParsedProof, error) {
	if len(blob) < types.MinProofBlobLen {
		return nil, types.ErrMalformedBlob.Wrapf("blob length %d below minimum %d", len(blob), types.MinProofBlobLen)
	}

	var imageID [32]byte
	copy(imageID[:], blob[types.ImageIDOffset:types.ImageIDOffset+types.ImageIDLen])
	if !constTimeEq(imageID, registeredImageID) {
		return nil, types.ErrImageIDMismatch.Wrapf("image id does not match registry")
	}

	var claimDigest [32]byte
	copy(claimDigest[:], blob[types.ClaimDigestOffset:types.ClaimDigestOffset+types.ClaimDigestLen])

	var selector [4]byte
	copy(selector[:], blob[types.SelectorOffset:types.SelectorOffset+types.SelectorLen])
	if subtle.ConstantTimeCompare(selector[:], registeredSelector[:]) != 1 {
		return nil, types.ErrSelectorMismatch.Wrapf("selector does not match registry")
	}

	seal := blob[types.SealOffset : types.SealOffset+types.SealLen]
	journal := blob[types.JournalOffset:]

	readBE := func(off int) [32]byte {
		var raw [32]byte
		copy(raw[:], seal[off:off+32])
		return reverse256(raw)
	}

	a := types.G1Point{X: readBE(sealAX), Y: readBE(sealAY)}
	// B's four Fq components keep their (real, imaginary) = (c0, c1) order
	// across the endian reversal: only the per-coordinate byte order flips,
	// there is no component swap at this layer (see design notes).
	b := types.G2Point{
		XC0: readBE(sealBX0),
		XC1: readBE(sealBX1),
		YC0: readBE(sealBY0),
		YC1: readBE(sealBY1),
	}
	c := types.G1Point{X: readBE(sealCX), Y: readBE(sealCY)}

	return &ParsedProof{
		ClaimDigest: claimDigest,
		A:           a,
		B:           b,
		C:           c,
		Journal:     journal,
	}, nil
}

// Seal sub-offsets, relative to the start of the seal (types.SealOffset).
const (
	sealAX  = 0
	sealAY  = 32
	sealBX0 = 64
	sealBX1 = 96
	sealBY0 = 128
	sealBY1 = 160
	sealCX  = 192
	sealCY  = 224
)
