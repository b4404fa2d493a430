package groth16

import "github.com/btcq-org/qbtc/x/zkreceipt/types"

// VerifiedProof is the success value of Verifier.Verify: the raw
// journal bytes from a blob whose pairing equation held.
type VerifiedProof struct {
	Journal []byte
}

// Verifier ties the registries' outputs, the parser, the public-input
// builder, the combinator and the pairing orchestrator together into
// Verify; typed journal decoding (VerifyAndExtract) is layered on top by
// the keeper. It holds no mutable state of its own;
// every registry lookup happens before Verify is called, by the keeper.
type Verifier struct {
	Host    HostPrecompiles
	DevMode bool
}

// NewVerifier returns a Verifier backed by the default gnark-crypto host
// binding, with the development-mode short-circuit off.
func NewVerifier() *Verifier {
	return &Verifier{Host: NewGnarkPrecompiles()}
}

// Verify checks proofBlob against vk, the registered image-id/selector for
// its proof type, the two global constants, and the externally-supplied
// claimDigest. claimDigest is the claim the caller expects this proof to
// be about (typically already known from an indexed receipt); it is
// compared against the blob's own embedded claim-digest field so a proof
// for the wrong claim is rejected even if every other check would pass.
//
// Verify performs no registry I/O and mutates nothing; callers (the
// keeper) are responsible for looking up vk/imageID/selector first.
func (v *Verifier) Verify(
	vk types.VerifyingKey,
	registeredImageID [32]byte,
	registeredSelector [4]byte,
	controlRoot [32]byte,
	bn254ControlID [32]byte,
	claimDigest [32]byte,
	proofBlob []byte,
) (*VerifiedProof, error) {
	parsed, err := ParseProofBlob(proofBlob, registeredImageID, registeredSelector)
	if err != nil {
		return nil, err
	}
	if !constTimeEq(parsed.ClaimDigest, claimDigest) {
		return nil, types.ErrMalformedBlob.Wrapf("blob's embedded claim digest does not match the claim digest supplied to verify")
	}

	if v.DevMode {
		return &VerifiedProof{Journal: parsed.Journal}, nil
	}

	if err := types.ValidateVerifyingKey(vk); err != nil {
		return nil, types.ErrInvalidVK.Wrap(err.Error())
	}

	publicInputs := BuildPublicInputs(claimDigest, controlRoot, bn254ControlID)

	vkX, err := ComputeVKX(v.Host, vk.IC, publicInputs)
	if err != nil {
		return nil, err
	}

	ok, err := CheckPairing(v.Host, vk, parsed.A, parsed.B, parsed.C, vkX)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, types.ErrProofInvalid
	}

	return &VerifiedProof{Journal: parsed.Journal}, nil
}

// CheckVerifyingKeyCanonical validates every coordinate of vk against the
// host's announced field moduli and curve-membership rules, by actually
// attempting to load each point through the same path verification uses --
// the "no-op scalar multiplication by 1" the design calls for is really
// just "construct the point the way the precompile backend does, and let
// it reject non-canonical input", so that is exactly what this does.
// Registries call this eagerly at registration time so a bad VK fails
// loudly at registration rather than silently at first use.
func (v *Verifier) CheckVerifyingKeyCanonical(vk types.VerifyingKey) error {
	if _, err := g1FromPoint(vk.Alpha); err != nil {
		return err
	}
	if _, err := g2FromPoint(vk.Beta); err != nil {
		return err
	}
	if _, err := g2FromPoint(vk.Gamma); err != nil {
		return err
	}
	if _, err := g2FromPoint(vk.Delta); err != nil {
		return err
	}
	for i, ic := range vk.IC {
		if _, err := g1FromPoint(ic); err != nil {
			return types.ErrInvalidG1Input.Wrapf("IC[%d]: %s", i, err)
		}
	}
	return nil
}
