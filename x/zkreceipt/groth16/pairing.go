package groth16

import "github.com/btcq-org/qbtc/x/zkreceipt/types"

// CheckPairing evaluates the Groth16 verification equation
//
//	e(A, B) . e(-alpha, beta) . e(-vk_x, gamma) . e(-C, delta) = 1
//
// by negating the three G1 operands and submitting the four pairs to the
// host's pairing-check primitive in the exact order the design requires.
// Swapping the gamma and delta pairs is a known silent bug: the check
// still compiles and runs, it just always returns false with no other
// signal, so the order below is deliberate and must not be "simplified".
func CheckPairing(host HostPrecompiles, vk types.VerifyingKey, a types.G1Point, b types.G2Point, c types.G1Point, vkX types.G1Point) (bool, error) {
	negAlpha, err := host.G1Negate(vk.Alpha)
	if err != nil {
		return false, err
	}
	negVKX, err := host.G1Negate(vkX)
	if err != nil {
		return false, err
	}
	negC, err := host.G1Negate(c)
	if err != nil {
		return false, err
	}

	pairs := []PairingPair{
		{G1: a, G2: b},
		{G1: negAlpha, G2: vk.Beta},
		{G1: negVKX, G2: vk.Gamma},
		{G1: negC, G2: vk.Delta},
	}

	return host.PairingCheck(pairs)
}
