package groth16

import (
	"math/big"

	"github.com/ethereum/go-ethereum/crypto/bn256"
)

// ReferenceGroth16Check re-evaluates the Groth16 pairing equation using
// go-ethereum's own BN256 arithmetic, entirely independent of the
// gnark-crypto-backed HostPrecompiles implementation the rest of this
// package uses. It takes the same scalar exponents (mod Fr) the
// gnark-crypto side was built from rather than re-marshalling points
// across library boundaries -- byte-level G1/G2 marshalling conventions
// are exactly the kind of thing this core's design notes warn are
// under-documented and easy to get silently wrong, so the
// cross-implementation check here compares the two libraries' curve
// arithmetic directly rather than smuggling a serialization bug into the
// one test meant to catch serialization bugs.
//
// This is the "reference Ethereum-style verifier" the cross-implementation-
// equivalence property (testable properties, scenario 6) calls for: two
// unrelated BN254/alt_bn128 implementations must agree on the same
// Groth16 identity.
func ReferenceGroth16Check(aAlpha, aBeta, aGamma, aDelta, aVkx, aC, aA, aB *big.Int) bool {
	g1 := new(bn256.G1).ScalarBaseMult(big.NewInt(1))
	g2 := new(bn256.G2).ScalarBaseMult(big.NewInt(1))

	alpha := new(bn256.G1).ScalarMult(g1, aAlpha)
	beta := new(bn256.G2).ScalarMult(g2, aBeta)
	gamma := new(bn256.G2).ScalarMult(g2, aGamma)
	delta := new(bn256.G2).ScalarMult(g2, aDelta)
	vkx := new(bn256.G1).ScalarMult(g1, aVkx)
	c := new(bn256.G1).ScalarMult(g1, aC)
	a := new(bn256.G1).ScalarMult(g1, aA)
	b := new(bn256.G2).ScalarMult(g2, aB)

	negOne := big.NewInt(-1)
	negAlpha := new(bn256.G1).ScalarMult(alpha, negOne)
	negVkx := new(bn256.G1).ScalarMult(vkx, negOne)
	negC := new(bn256.G1).ScalarMult(c, negOne)

	g1Points := []*bn256.G1{a, negAlpha, negVkx, negC}
	g2Points := []*bn256.G2{b, beta, gamma, delta}

	return bn256.PairingCheck(g1Points, g2Points)
}
