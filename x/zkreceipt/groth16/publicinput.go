package groth16

import "github.com/btcq-org/qbtc/x/zkreceipt/types"

// BuildPublicInputs computes the five field elements the Groth16 circuit
// expects as public inputs, from the claim digest and the two global
// constants. The off-chain prover commits, as public signals, a 128-bit
// split of a big-endian-interpreted 256-bit integer; on the host side each
// half is zero-extended to 32 bytes and read little-endian. splitDigest
// performs exactly that conversion for both CONTROL_ROOT and claimDigest.
// BN254_CONTROL_ID needs no such treatment: it is already a single scalar
// reduced mod Fr and stored in host LE.
func BuildPublicInputs(claimDigest [32]byte, controlRoot [32]byte, bn254ControlID [32]byte) [types.PublicInputCount][32]byte {
	rootLo, rootHi := splitDigest(controlRoot)
	claimLo, claimHi := splitDigest(claimDigest)

	return [types.PublicInputCount][32]byte{
		rootLo,
		rootHi,
		claimLo,
		claimHi,
		bn254ControlID,
	}
}
