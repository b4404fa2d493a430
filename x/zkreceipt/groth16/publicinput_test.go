package groth16

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBuildPublicInputsLayout(t *testing.T) {
	var controlRoot, claimDigest, controlID [32]byte
	for i := range controlRoot {
		controlRoot[i] = byte(i + 1)
	}
	for i := range claimDigest {
		claimDigest[i] = byte(200 + i)
	}
	for i := range controlID {
		controlID[i] = byte(5 * i)
	}

	inputs := BuildPublicInputs(claimDigest, controlRoot, controlID)
	require.Len(t, inputs, 5)

	wantRootLo, wantRootHi := splitDigest(controlRoot)
	wantClaimLo, wantClaimHi := splitDigest(claimDigest)

	require.Equal(t, wantRootLo, inputs[0])
	require.Equal(t, wantRootHi, inputs[1])
	require.Equal(t, wantClaimLo, inputs[2])
	require.Equal(t, wantClaimHi, inputs[3])
	require.Equal(t, controlID, inputs[4])
}

func TestBuildPublicInputsIsPure(t *testing.T) {
	var controlRoot, claimDigest, controlID [32]byte
	controlRoot[0] = 0x42
	claimDigest[0] = 0x24
	controlID[0] = 0x99

	a := BuildPublicInputs(claimDigest, controlRoot, controlID)
	b := BuildPublicInputs(claimDigest, controlRoot, controlID)
	require.Equal(t, a, b)
}
