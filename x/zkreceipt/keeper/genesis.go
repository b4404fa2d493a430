package keeper

import (
	"context"
	"fmt"

	"github.com/btcq-org/qbtc/x/zkreceipt/types"
)

// InitGenesis populates the registries from gs. It does not go through the
// owner-gated setters -- there is no owner yet to check against during
// genesis import -- mirroring the teacher's own genesis.go, which writes
// collections directly rather than routing through msgServer handlers.
func (k Keeper) InitGenesis(ctx context.Context, gs types.GenesisState) error {
	if gs.Owner != "" {
		if err := k.SetInitialOwner(ctx, gs.Owner); err != nil {
			return fmt.Errorf("set initial owner: %w", err)
		}
	}

	for _, entry := range gs.VerifyingKeys {
		if err := types.ValidateVerifyingKey(entry.VK); err != nil {
			return fmt.Errorf("verifying key for tag %s: %w", entry.Tag, err)
		}
		if err := k.Verifier.CheckVerifyingKeyCanonical(entry.VK); err != nil {
			return fmt.Errorf("verifying key for tag %s: %w", entry.Tag, err)
		}
		if err := k.VerifyingKeys.Set(ctx, int32(entry.Tag), entry.VK); err != nil {
			return fmt.Errorf("store verifying key for tag %s: %w", entry.Tag, err)
		}
	}

	for _, entry := range gs.ImageIDs {
		if err := k.ImageIDs.Set(ctx, int32(entry.Tag), entry.ImageID); err != nil {
			return fmt.Errorf("store image id for tag %s: %w", entry.Tag, err)
		}
	}

	for _, entry := range gs.Selectors {
		if err := k.Selectors.Set(ctx, int32(entry.Tag), entry.Selector[:]); err != nil {
			return fmt.Errorf("store selector for tag %s: %w", entry.Tag, err)
		}
	}

	return nil
}

// ExportGenesis walks every registry and reassembles a GenesisState, the
// same "walk the collections maps" pattern the teacher's ExportGenesis
// uses.
func (k Keeper) ExportGenesis(ctx context.Context) (*types.GenesisState, error) {
	owner, err := k.GetOwner(ctx)
	if err != nil {
		return nil, err
	}

	gs := &types.GenesisState{Owner: owner}

	if err := k.VerifyingKeys.Walk(ctx, nil, func(tag int32, vk types.VerifyingKey) (bool, error) {
		gs.VerifyingKeys = append(gs.VerifyingKeys, types.GenesisVK{Tag: types.ProofType(tag), VK: vk})
		return false, nil
	}); err != nil {
		return nil, fmt.Errorf("walk verifying keys: %w", err)
	}

	if err := k.ImageIDs.Walk(ctx, nil, func(tag int32, imageID types.ImageID) (bool, error) {
		gs.ImageIDs = append(gs.ImageIDs, types.GenesisImageID{Tag: types.ProofType(tag), ImageID: imageID})
		return false, nil
	}); err != nil {
		return nil, fmt.Errorf("walk image ids: %w", err)
	}

	if err := k.Selectors.Walk(ctx, nil, func(tag int32, raw []byte) (bool, error) {
		var selector [4]byte
		copy(selector[:], raw)
		gs.Selectors = append(gs.Selectors, types.GenesisSelector{Tag: types.ProofType(tag), Selector: selector})
		return false, nil
	}); err != nil {
		return nil, fmt.Errorf("walk selectors: %w", err)
	}

	return gs, nil
}
