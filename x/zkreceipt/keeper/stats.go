package keeper

import (
	"context"
	"errors"

	"cosmossdk.io/collections"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/btcq-org/qbtc/x/zkreceipt/types"
)

// GetStats returns the verification counters for tag, zero-valued if no
// verification has been attempted for it yet.
func (k Keeper) GetStats(ctx context.Context, tag types.ProofType) (types.StatsCounters, error) {
	stats, err := k.Stats.Get(ctx, int32(tag))
	if err != nil {
		if errors.Is(err, collections.ErrNotFound) {
			return types.StatsCounters{}, nil
		}
		return types.StatsCounters{}, err
	}
	return stats, nil
}

// bumpStats increments Total and either Succeeded or Failed for tag. It
// never returns an error to the caller: a failure to persist a counter is
// not a reason to fail a verification that otherwise completed, so any
// store error here is only logged.
func (k Keeper) bumpStats(ctx context.Context, tag types.ProofType, succeeded bool) {
	stats, err := k.GetStats(ctx, tag)
	if err != nil {
		sdk.UnwrapSDKContext(ctx).Logger().Error("failed to read zkreceipt stats", "proof_type", tag.String(), "error", err)
		return
	}
	stats.Total++
	if succeeded {
		stats.Succeeded++
	} else {
		stats.Failed++
	}
	if err := k.Stats.Set(ctx, int32(tag), stats); err != nil {
		sdk.UnwrapSDKContext(ctx).Logger().Error("failed to write zkreceipt stats", "proof_type", tag.String(), "error", err)
	}
}
