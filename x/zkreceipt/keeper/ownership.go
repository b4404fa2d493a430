package keeper

import (
	"context"

	"github.com/btcq-org/qbtc/x/zkreceipt/types"
)

// TransferOwnership reassigns the owner principal. Only the current owner
// may call this; there is no separate "governance" bypass the way the
// teacher's authority field has, since this module has exactly one
// administrative principal, not a staking/gov-gated one.
func (k Keeper) TransferOwnership(ctx context.Context, authority string, newOwner string) error {
	if err := k.requireOwner(ctx, authority); err != nil {
		return err
	}
	if newOwner == "" {
		return types.ErrUnauthorized.Wrapf("new owner cannot be empty")
	}
	return k.Owner.Set(ctx, newOwner)
}

// SetInitialOwner sets the owner principal unconditionally. It is not part
// of the administrative surface §6.3 describes -- it exists only for
// genesis import, where there is by definition no prior owner to check
// against. Any call after genesis should go through TransferOwnership
// instead.
func (k Keeper) SetInitialOwner(ctx context.Context, owner string) error {
	return k.Owner.Set(ctx, owner)
}
