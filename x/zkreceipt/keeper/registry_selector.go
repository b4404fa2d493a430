package keeper

import (
	"context"
	"errors"

	"cosmossdk.io/collections"

	"github.com/btcq-org/qbtc/x/zkreceipt/types"
)

// RegisterSelector installs or overwrites the registered 4-byte selector
// for tag. Owner-only. The canonical v3 prover's selector is fixed at
// deployment time (typically via genesis); this entry point exists so a
// future prover revision can register an additional selector alongside a
// new VK without redeploying the module.
func (k Keeper) RegisterSelector(ctx context.Context, authority string, tag types.ProofType, selector [4]byte) error {
	if err := k.requireOwner(ctx, authority); err != nil {
		return err
	}
	return k.Selectors.Set(ctx, int32(tag), selector[:])
}

// GetSelector returns the selector registered for tag, or ErrNotConfigured.
func (k Keeper) GetSelector(ctx context.Context, tag types.ProofType) ([4]byte, error) {
	raw, err := k.Selectors.Get(ctx, int32(tag))
	if err != nil {
		if errors.Is(err, collections.ErrNotFound) {
			return [4]byte{}, types.ErrNotConfigured.Wrapf("no selector registered for proof type %s", tag)
		}
		return [4]byte{}, err
	}
	var selector [4]byte
	copy(selector[:], raw)
	return selector, nil
}
