package groth16

import "github.com/btcq-org/qbtc/x/zkreceipt/types"

// ComputeVKX computes vk_x = IC[0] + sum(IC[i+1] * public[i]) using the
// host's multiexp primitive. ic must have length types.ICLength; public
// must have length types.PublicInputCount. Ordering between the pairs
// passed to the host is not observable (G1 addition is commutative), but
// each scalar must stay paired with the IC entry it was derived from --
// ComputeVKX pairs IC[0] with the scalar 1 rather than special-casing it
// as a bare addition, so the whole combination is one multiexp call.
func ComputeVKX(host HostPrecompiles, ic []types.G1Point, public [types.PublicInputCount][32]byte) (types.G1Point, error) {
	if len(ic) != types.ICLength {
		return types.G1Point{}, types.ErrInvalidVK.Wrapf("IC has length %d, want %d", len(ic), types.ICLength)
	}

	pairs := make([]G1ScalarPair, 0, types.ICLength)
	pairs = append(pairs, G1ScalarPair{Point: ic[0], Scalar: one32()})
	for i, input := range public {
		pairs = append(pairs, G1ScalarPair{Point: ic[i+1], Scalar: input})
	}

	return host.G1MultiExp(pairs)
}

// one32 returns the scalar 1 encoded the way every other field element in
// this package is: little-endian, 32 bytes.
func one32() [32]byte {
	var out [32]byte
	out[0] = 1
	return out
}
