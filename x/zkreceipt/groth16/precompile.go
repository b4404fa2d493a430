package groth16

import (
	"math/big"

	sdkerrors "cosmossdk.io/errors"
	"github.com/btcq-org/qbtc/x/zkreceipt/types"
	"github.com/consensys/gnark-crypto/ecc"
	"github.com/consensys/gnark-crypto/ecc/bn254"
	"github.com/consensys/gnark-crypto/ecc/bn254/fp"
	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
)

// G1ScalarPair is one (point, scalar) operand of a multi-scalar
// multiplication, the shape §6.2 describes the host's multiexp precompile
// taking.
type G1ScalarPair struct {
	Point  types.G1Point
	Scalar [32]byte
}

// PairingPair is one (G1, G2) operand of a pairing check.
type PairingPair struct {
	G1 types.G1Point
	G2 types.G2Point
}

// HostPrecompiles is the capability set §6.2 says any host implementing
// this core must expose: G1 multiexp, G1 negation, and a BN254 pairing
// check. Modeling it as an interface means a different host binding can be
// substituted (a real chain's syscalls, a test double that short-circuits)
// without the combinator or pairing orchestrator ever knowing.
type HostPrecompiles interface {
	G1MultiExp(pairs []G1ScalarPair) (types.G1Point, error)
	G1Negate(p types.G1Point) (types.G1Point, error)
	PairingCheck(pairs []PairingPair) (bool, error)
}

// gnarkPrecompiles implements HostPrecompiles on top of gnark-crypto's
// BN254 group and pairing arithmetic. Every field element crossing this
// boundary is validated for canonicity against the announced modulus
// before being handed to gnark-crypto -- the library itself would reduce
// an out-of-range value silently, which is exactly the kind of
// silent-failure behavior this verifier is not allowed to have.
type gnarkPrecompiles struct{}

// NewGnarkPrecompiles returns the default HostPrecompiles implementation.
func NewGnarkPrecompiles() HostPrecompiles {
	return gnarkPrecompiles{}
}

func beToBigInt(be [32]byte) *big.Int {
	return new(big.Int).SetBytes(be[:])
}

func leToCanonicalBigInt(le [32]byte, modulus *big.Int, errKind *sdkerrors.Error) (*big.Int, error) {
	be := reverse256(le)
	v := beToBigInt(be)
	if v.Cmp(modulus) >= 0 {
		return nil, errKind.Wrapf("field element is not strictly less than the modulus")
	}
	return v, nil
}

func fpFromLE(le [32]byte) (fp.Element, error) {
	v, err := leToCanonicalBigInt(le, fp.Modulus(), types.ErrInvalidG1Input)
	if err != nil {
		return fp.Element{}, err
	}
	var e fp.Element
	e.SetBigInt(v)
	return e, nil
}

func frFromLE(le [32]byte) (fr.Element, error) {
	v, err := leToCanonicalBigInt(le, fr.Modulus(), types.ErrInvalidG1Input)
	if err != nil {
		return fr.Element{}, err
	}
	var e fr.Element
	e.SetBigInt(v)
	return e, nil
}

func feToLE(e fp.Element) [32]byte {
	var bi big.Int
	e.BigInt(&bi)
	var be [32]byte
	bi.FillBytes(be[:])
	return reverse256(be)
}

func g1FromPoint(p types.G1Point) (bn254.G1Affine, error) {
	x, err := fpFromLE(p.X)
	if err != nil {
		return bn254.G1Affine{}, err
	}
	y, err := fpFromLE(p.Y)
	if err != nil {
		return bn254.G1Affine{}, err
	}
	affine := bn254.G1Affine{X: x, Y: y}
	if !affine.IsOnCurve() {
		return bn254.G1Affine{}, types.ErrInvalidG1Input.Wrapf("point is not on the BN254 G1 curve")
	}
	return affine, nil
}

func pointFromG1(a bn254.G1Affine) types.G1Point {
	return types.G1Point{X: feToLE(a.X), Y: feToLE(a.Y)}
}

func g2FromPoint(p types.G2Point) (bn254.G2Affine, error) {
	xc0, err := fpFromLE(p.XC0)
	if err != nil {
		return bn254.G2Affine{}, err
	}
	xc1, err := fpFromLE(p.XC1)
	if err != nil {
		return bn254.G2Affine{}, err
	}
	yc0, err := fpFromLE(p.YC0)
	if err != nil {
		return bn254.G2Affine{}, err
	}
	yc1, err := fpFromLE(p.YC1)
	if err != nil {
		return bn254.G2Affine{}, err
	}
	affine := bn254.G2Affine{
		X: bn254.E2{A0: xc0, A1: xc1},
		Y: bn254.E2{A0: yc0, A1: yc1},
	}
	if !affine.IsOnCurve() || !affine.IsInSubGroup() {
		return bn254.G2Affine{}, types.ErrInvalidG2Input.Wrapf("point is not a valid BN254 G2 element")
	}
	return affine, nil
}

func g2ToPoint(a bn254.G2Affine) types.G2Point {
	return types.G2Point{
		XC0: feToLE(a.X.A0),
		XC1: feToLE(a.X.A1),
		YC0: feToLE(a.Y.A0),
		YC1: feToLE(a.Y.A1),
	}
}

func (gnarkPrecompiles) G1MultiExp(pairs []G1ScalarPair) (types.G1Point, error) {
	points := make([]bn254.G1Affine, len(pairs))
	scalars := make([]fr.Element, len(pairs))
	for i, pair := range pairs {
		affine, err := g1FromPoint(pair.Point)
		if err != nil {
			return types.G1Point{}, err
		}
		scalar, err := frFromLE(pair.Scalar)
		if err != nil {
			return types.G1Point{}, err
		}
		points[i] = affine
		scalars[i] = scalar
	}

	var acc bn254.G1Affine
	if _, err := acc.MultiExp(points, scalars, ecc.MultiExpConfig{}); err != nil {
		return types.G1Point{}, types.ErrInvalidG1Input.Wrapf("multiexp failed: %s", err)
	}
	return pointFromG1(acc), nil
}

func (gnarkPrecompiles) G1Negate(p types.G1Point) (types.G1Point, error) {
	affine, err := g1FromPoint(p)
	if err != nil {
		return types.G1Point{}, err
	}
	var neg bn254.G1Affine
	neg.Neg(&affine)
	return pointFromG1(neg), nil
}

func (gnarkPrecompiles) PairingCheck(pairs []PairingPair) (bool, error) {
	g1s := make([]bn254.G1Affine, len(pairs))
	g2s := make([]bn254.G2Affine, len(pairs))
	for i, pair := range pairs {
		g1, err := g1FromPoint(pair.G1)
		if err != nil {
			return false, err
		}
		g2, err := g2FromPoint(pair.G2)
		if err != nil {
			return false, err
		}
		g1s[i] = g1
		g2s[i] = g2
	}
	ok, err := bn254.PairingCheck(g1s, g2s)
	if err != nil {
		return false, types.ErrInvalidG2Input.Wrapf("pairing check failed: %s", err)
	}
	return ok, nil
}
