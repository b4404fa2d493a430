package types

import "cosmossdk.io/collections"

const (
	// ModuleName defines the module name.
	ModuleName = "zkreceipt"

	// StoreKey defines the primary module store key.
	StoreKey = ModuleName
)

var (
	// VerifyingKeyPrefix is the collection prefix for the tag -> VK registry.
	VerifyingKeyPrefix = collections.NewPrefix(1)

	// ImageIDPrefix is the collection prefix for the tag -> image-id registry.
	ImageIDPrefix = collections.NewPrefix(2)

	// OwnerPrefix is the collection prefix for the single owner item.
	OwnerPrefix = collections.NewPrefix(3)

	// StatsPrefix is the collection prefix for the per-tag verification counters.
	StatsPrefix = collections.NewPrefix(4)

	// SelectorPrefix is the collection prefix for the tag -> registered
	// 4-byte selector table (§6.1's "registered-selector table").
	SelectorPrefix = collections.NewPrefix(5)
)
