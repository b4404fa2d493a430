package groth16

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestReverse256Involution(t *testing.T) {
	var in [32]byte
	for i := range in {
		in[i] = byte(i * 7)
	}
	once := reverse256(in)
	twice := reverse256(once)
	require.Equal(t, in, twice)
	require.NotEqual(t, in, once)
}

func TestReverse256Zero(t *testing.T) {
	var in [32]byte
	require.Equal(t, in, reverse256(in))
}

func TestSplitDigestPayloads(t *testing.T) {
	var d [32]byte
	for i := range d {
		d[i] = byte(i + 1)
	}
	lo, hi := splitDigest(d)

	var wantLo, wantHi [32]byte
	copy(wantLo[0:16], d[0:16])
	copy(wantHi[0:16], d[16:32])

	require.Equal(t, wantLo, lo)
	require.Equal(t, wantHi, hi)

	// concatenation of payloads reconstructs the original digest
	var reconstructed [32]byte
	copy(reconstructed[0:16], lo[0:16])
	copy(reconstructed[16:32], hi[0:16])
	require.Equal(t, d, reconstructed)

	// the zero-padded half of each slot is actually zero
	var zero [16]byte
	require.Equal(t, zero[:], lo[16:32])
	require.Equal(t, zero[:], hi[16:32])
}

func TestSplitDigestZero(t *testing.T) {
	var zero [32]byte
	lo, hi := splitDigest(zero)
	require.Equal(t, zero, lo)
	require.Equal(t, zero, hi)
}

func TestConstTimeEq(t *testing.T) {
	var a, b [32]byte
	for i := range a {
		a[i] = byte(i)
		b[i] = byte(i)
	}
	require.True(t, constTimeEq(a, b))
	b[31] ^= 0x01
	require.False(t, constTimeEq(a, b))
}
