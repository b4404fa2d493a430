package keeper

import (
	"context"
	"errors"

	"cosmossdk.io/collections"

	"github.com/btcq-org/qbtc/x/zkreceipt/types"
)

// RegisterVerifyingKey installs or overwrites the VK for tag. Only the
// registered owner may call this. Validation happens eagerly, at
// registration time: first the structural IC-length check, then
// CheckVerifyingKeyCanonical, which runs every coordinate through the same
// gnark-crypto point construction and group-membership test verification
// uses (rather than re-implementing field arithmetic by hand), so a bad VK
// is rejected here rather than at first use.
func (k Keeper) RegisterVerifyingKey(ctx context.Context, authority string, tag types.ProofType, vk types.VerifyingKey) error {
	if err := k.requireOwner(ctx, authority); err != nil {
		return err
	}
	if err := types.ValidateVerifyingKey(vk); err != nil {
		return types.ErrInvalidVK.Wrap(err.Error())
	}
	if err := k.Verifier.CheckVerifyingKeyCanonical(vk); err != nil {
		return err
	}
	return k.VerifyingKeys.Set(ctx, int32(tag), vk)
}

// GetVerifyingKey returns the VK registered for tag, or ErrNotConfigured.
func (k Keeper) GetVerifyingKey(ctx context.Context, tag types.ProofType) (types.VerifyingKey, error) {
	vk, err := k.VerifyingKeys.Get(ctx, int32(tag))
	if err != nil {
		if errors.Is(err, collections.ErrNotFound) {
			return types.VerifyingKey{}, types.ErrNotConfigured.Wrapf("no verifying key registered for proof type %s", tag)
		}
		return types.VerifyingKey{}, err
	}
	return vk, nil
}
