package keeper

import (
	"context"
	"errors"

	"cosmossdk.io/collections"
	corestore "cosmossdk.io/core/store"

	"github.com/btcq-org/qbtc/x/zkreceipt/groth16"
	"github.com/btcq-org/qbtc/x/zkreceipt/types"
)

// Keeper owns the three owner-gated registries (VK, image-id, selector), the owner
// principal, and per-tag verification statistics. Every other computation
// -- parsing, public-input construction, linear combination, pairing -- is
// delegated to the pure groth16 package; the keeper's job is purely the
// registry lookups and storage bookkeeping around it, the same split the
// teacher keeps between its keeper package and its zk package.
type Keeper struct {
	storeService corestore.KVStoreService

	// ControlRoot and BN254ControlID are the two global constants baked
	// into this deployment. They are fields rather than package-level
	// globals so tests can substitute alternate constants without import
	// aliasing tricks, but production callers should always pass
	// types.CONTROL_ROOT and types.BN254_CONTROL_ID.
	ControlRoot    [32]byte
	BN254ControlID [32]byte

	Verifier *groth16.Verifier

	Schema collections.Schema

	VerifyingKeys collections.Map[int32, types.VerifyingKey]
	ImageIDs      collections.Map[int32, types.ImageID]
	Selectors     collections.Map[int32, []byte]
	Owner         collections.Item[string]
	Stats         collections.Map[int32, types.StatsCounters]
}

// NewKeeper builds a Keeper backed by storeService, with the production
// gnark-crypto host precompile binding and the development-mode
// short-circuit disabled. The genesis owner, if any, must be set
// separately via InitGenesis.
func NewKeeper(storeService corestore.KVStoreService) Keeper {
	sb := collections.NewSchemaBuilder(storeService)

	k := Keeper{
		storeService:   storeService,
		ControlRoot:    types.CONTROL_ROOT,
		BN254ControlID: types.BN254_CONTROL_ID,
		Verifier:       groth16.NewVerifier(),
		VerifyingKeys: collections.NewMap(
			sb, types.VerifyingKeyPrefix, "verifying_keys",
			collections.Int32Key, types.NewJSONValueCodec[types.VerifyingKey]("VerifyingKey"),
		),
		ImageIDs: collections.NewMap(
			sb, types.ImageIDPrefix, "image_ids",
			collections.Int32Key, types.NewJSONValueCodec[types.ImageID]("ImageID"),
		),
		Selectors: collections.NewMap(
			sb, types.SelectorPrefix, "selectors",
			collections.Int32Key, collections.BytesValue,
		),
		Owner: collections.NewItem(
			sb, types.OwnerPrefix, "owner", collections.StringValue,
		),
		Stats: collections.NewMap(
			sb, types.StatsPrefix, "stats",
			collections.Int32Key, types.NewJSONValueCodec[types.StatsCounters]("StatsCounters"),
		),
	}

	schema, err := sb.Build()
	if err != nil {
		panic(err)
	}
	k.Schema = schema

	return k
}

// GetOwner returns the current owner principal, or "" if none has been set
// yet (every administrative call is rejected until one is).
func (k Keeper) GetOwner(ctx context.Context) (string, error) {
	owner, err := k.Owner.Get(ctx)
	if err != nil {
		if errors.Is(err, collections.ErrNotFound) {
			return "", nil
		}
		return "", err
	}
	return owner, nil
}

func (k Keeper) requireOwner(ctx context.Context, authority string) error {
	owner, err := k.GetOwner(ctx)
	if err != nil {
		return err
	}
	if owner == "" || authority != owner {
		return types.ErrUnauthorized.Wrapf("%q is not the registered owner", authority)
	}
	return nil
}
