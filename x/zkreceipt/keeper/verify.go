package keeper

import (
	"context"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/btcq-org/qbtc/x/zkreceipt/types"
)

// Verify looks up the VK and image-id registered for tag, then delegates
// the cryptographic check to the groth16 package. It never logs proof
// material -- only the tag, the outcome, and the error kind on failure --
// matching the policy that no partial journals or stack traces ever reach
// the caller or the log.
func (k Keeper) Verify(ctx context.Context, tag types.ProofType, claimDigest [32]byte, proofBlob []byte) (*types.VerificationRecord, error) {
	sdkCtx := sdk.UnwrapSDKContext(ctx)

	vk, err := k.GetVerifyingKey(ctx, tag)
	if err != nil {
		return nil, err
	}
	imageID, err := k.GetImageID(ctx, tag)
	if err != nil {
		return nil, err
	}
	selector, err := k.GetSelector(ctx, tag)
	if err != nil {
		return nil, err
	}

	result, verr := k.Verifier.Verify(vk, imageID, selector, k.ControlRoot, k.BN254ControlID, claimDigest, proofBlob)

	k.bumpStats(ctx, tag, verr == nil)

	if verr != nil {
		sdkCtx.Logger().Debug("zkreceipt verification rejected", "proof_type", tag.String(), "error_kind", verr.Error())
		return nil, verr
	}

	sdkCtx.Logger().Info("zkreceipt verification succeeded", "proof_type", tag.String())

	return &types.VerificationRecord{
		ProofType:    tag,
		ClaimDigest:  claimDigest,
		Succeeded:    true,
		JournalBytes: result.Journal,
	}, nil
}

// VerifyAndExtract is Verify plus typed journal decoding for the five
// known layouts §6.4 names. Decoding only happens after a successful
// cryptographic check -- the journal is never trusted before that point.
func (k Keeper) VerifyAndExtract(ctx context.Context, tag types.ProofType, claimDigest [32]byte, proofBlob []byte) (*types.VerificationRecord, any, error) {
	record, err := k.Verify(ctx, tag, claimDigest, proofBlob)
	if err != nil {
		return nil, nil, err
	}

	decoded, err := types.DecodeJournal(tag, record.JournalBytes)
	if err != nil {
		return record, nil, err
	}

	return record, decoded, nil
}
