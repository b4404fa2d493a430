package types

// FieldElement is a 32-byte value interpreted by the host precompile as an
// unsigned integer in little-endian byte order, strictly less than the
// field modulus. Every VK constant, parsed proof coordinate, and public
// input stored or passed to the host is held in this encoding; values taken
// from an Ethereum-style source are big-endian and must be reversed before
// they ever reach this type.
type FieldElement [32]byte

// G1Point is an ordered pair (x, y) of Fq elements, 64 bytes total.
type G1Point struct {
	X FieldElement
	Y FieldElement
}

// G2Point is an ordered pair of Fq2 elements ((x_c0, x_c1), (y_c0, y_c1)),
// 128 bytes total. c0 is always the real component, c1 the imaginary one;
// a source that publishes (imaginary, real) needs its components swapped
// before it is stored here, in addition to the usual endian reversal.
type G2Point struct {
	XC0 FieldElement
	XC1 FieldElement
	YC0 FieldElement
	YC1 FieldElement
}

// PublicInputCount is the number of public inputs the reference prover's
// STARK-to-Groth16 wrapping commits to. A future prover revision changing
// this count requires both a new IC length and a new public-input builder;
// it is not something this module auto-detects.
const PublicInputCount = 5

// ICLength is the required length of VerifyingKey.IC: one more than the
// public-input count, since IC[0] seeds the linear combination.
const ICLength = PublicInputCount + 1

// VerifyingKey is the Groth16 verifying key: (alpha, beta, gamma, delta, IC).
type VerifyingKey struct {
	Alpha G1Point
	Beta  G2Point
	Gamma G2Point
	Delta G2Point
	IC    []G1Point
}

// ImageID is the 32-byte content address of the guest program whose STARK
// trace the Groth16 proof attests to.
type ImageID [32]byte

// StatsCounters aggregates verification outcomes for one proof type.
type StatsCounters struct {
	Total     uint64
	Succeeded uint64
	Failed    uint64
}

// VerificationRecord is the optional, consumer-facing summary of a single
// verification. The core returns it by value; persisting it is a decision
// left to whatever contract calls Verify/VerifyAndExtract.
type VerificationRecord struct {
	ProofType    ProofType
	ClaimDigest  [32]byte
	Succeeded    bool
	JournalBytes []byte
}
