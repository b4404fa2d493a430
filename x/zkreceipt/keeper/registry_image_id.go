package keeper

import (
	"context"
	"errors"

	"cosmossdk.io/collections"

	"github.com/btcq-org/qbtc/x/zkreceipt/types"
)

// RegisterImageID installs or overwrites the image-id for tag. Owner-only.
// Image-ids are content addresses of the guest program and change whenever
// the program is recompiled, unlike the VK, which is universal to the
// proving system and typically stable across guest revisions.
func (k Keeper) RegisterImageID(ctx context.Context, authority string, tag types.ProofType, imageID types.ImageID) error {
	if err := k.requireOwner(ctx, authority); err != nil {
		return err
	}
	return k.ImageIDs.Set(ctx, int32(tag), imageID)
}

// GetImageID returns the image-id registered for tag, or ErrNotConfigured.
func (k Keeper) GetImageID(ctx context.Context, tag types.ProofType) (types.ImageID, error) {
	id, err := k.ImageIDs.Get(ctx, int32(tag))
	if err != nil {
		if errors.Is(err, collections.ErrNotFound) {
			return types.ImageID{}, types.ErrNotConfigured.Wrapf("no image id registered for proof type %s", tag)
		}
		return types.ImageID{}, err
	}
	return id, nil
}
