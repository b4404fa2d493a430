package groth16

import (
	"testing"

	"github.com/btcq-org/qbtc/x/zkreceipt/types"
	"github.com/stretchr/testify/require"
)

func be32(b byte) [32]byte {
	var out [32]byte
	out[0] = b
	return out
}

// buildBlob assembles a well-formed envelope with fixed, recognizable
// seal bytes so the parse can be checked field-by-field.
func buildBlob(imageID [32]byte, claimDigest [32]byte, selector [4]byte, journal []byte) []byte {
	blob := make([]byte, types.MinProofBlobLen+len(journal))
	copy(blob[types.ImageIDOffset:], imageID[:])
	copy(blob[types.ClaimDigestOffset:], claimDigest[:])
	copy(blob[types.SelectorOffset:], selector[:])

	seal := blob[types.SealOffset : types.SealOffset+types.SealLen]
	fields := [8][32]byte{
		be32(0x10), be32(0x11), // A.x, A.y
		be32(0x20), be32(0x21), be32(0x22), be32(0x23), // B.x_c0, x_c1, y_c0, y_c1
		be32(0x30), be32(0x31), // C.x, C.y
	}
	for i, f := range fields {
		copy(seal[i*32:(i+1)*32], f[:])
	}
	copy(blob[types.JournalOffset:], journal)
	return blob
}

func TestParseProofBlobHappyPath(t *testing.T) {
	imageID := [32]byte{0xaa}
	claimDigest := [32]byte{0xbb}
	selector := [4]byte{0x01, 0x02, 0x03, 0x04}
	journal := []byte("hello-journal")

	blob := buildBlob(imageID, claimDigest, selector, journal)

	parsed, err := ParseProofBlob(blob, imageID, selector)
	require.NoError(t, err)
	require.Equal(t, claimDigest, parsed.ClaimDigest)
	require.Equal(t, journal, parsed.Journal)

	// seal bytes were big-endian 0x10 followed by zeros; reversed to host LE
	// the nonzero byte moves to the end of the 32-byte array.
	require.Equal(t, reverse256(be32(0x10)), parsed.A.X)
	require.Equal(t, reverse256(be32(0x11)), parsed.A.Y)
	require.Equal(t, reverse256(be32(0x20)), parsed.B.XC0)
	require.Equal(t, reverse256(be32(0x21)), parsed.B.XC1)
	require.Equal(t, reverse256(be32(0x22)), parsed.B.YC0)
	require.Equal(t, reverse256(be32(0x23)), parsed.B.YC1)
	require.Equal(t, reverse256(be32(0x30)), parsed.C.X)
	require.Equal(t, reverse256(be32(0x31)), parsed.C.Y)
}

func TestParseProofBlobEmptyJournal(t *testing.T) {
	imageID := [32]byte{0x01}
	selector := [4]byte{0xde, 0xad, 0xbe, 0xef}
	blob := buildBlob(imageID, [32]byte{0x02}, selector, nil)
	require.Len(t, blob, types.MinProofBlobLen)

	parsed, err := ParseProofBlob(blob, imageID, selector)
	require.NoError(t, err)
	require.Empty(t, parsed.Journal)
}

func TestParseProofBlobTooShort(t *testing.T) {
	blob := make([]byte, types.MinProofBlobLen-1)
	_, err := ParseProofBlob(blob, [32]byte{}, [4]byte{})
	require.ErrorIs(t, err, types.ErrMalformedBlob)
}

func TestParseProofBlobImageIDMismatch(t *testing.T) {
	imageID := [32]byte{0x01}
	selector := [4]byte{0x01}
	blob := buildBlob(imageID, [32]byte{}, selector, nil)
	_, err := ParseProofBlob(blob, [32]byte{0x02}, selector)
	require.ErrorIs(t, err, types.ErrImageIDMismatch)
}

func TestParseProofBlobSelectorMismatch(t *testing.T) {
	imageID := [32]byte{0x01}
	selector := [4]byte{0x01, 0x02, 0x03, 0x04}
	blob := buildBlob(imageID, [32]byte{}, selector, nil)
	_, err := ParseProofBlob(blob, imageID, [4]byte{0x00, 0x00, 0x00, 0x00})
	require.ErrorIs(t, err, types.ErrSelectorMismatch)
}
