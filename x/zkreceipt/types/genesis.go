package types

import "fmt"

// GenesisVK is one entry of GenesisState.VerifyingKeys.
type GenesisVK struct {
	Tag ProofType
	VK  VerifyingKey
}

// GenesisImageID is one entry of GenesisState.ImageIDs.
type GenesisImageID struct {
	Tag     ProofType
	ImageID ImageID
}

// GenesisSelector is one entry of GenesisState.Selectors. The selector is
// fixed at deployment time (typically via genesis, per §6.1), so a chain
// configuring a proof type from height zero needs all three of VK, image-id
// and selector importable at genesis, not just the first two.
type GenesisSelector struct {
	Tag      ProofType
	Selector [4]byte
}

// GenesisState is the full exported/imported state of the module.
type GenesisState struct {
	Owner         string
	VerifyingKeys []GenesisVK
	ImageIDs      []GenesisImageID
	Selectors     []GenesisSelector
}

// DefaultGenesis returns an empty genesis state: no owner, no registrations.
// A chain that wants this module usable from height zero must set Owner and
// register at least one VK/image-id pair via governance or an upgrade
// handler; an empty owner disables every administrative call, including
// keeper.Keeper.TransferOwnership, until one is set with
// keeper.Keeper.SetInitialOwner.
func DefaultGenesis() *GenesisState {
	return &GenesisState{}
}

// Validate performs basic, storage-independent genesis validation.
func (gs GenesisState) Validate() error {
	seenVK := make(map[ProofType]bool)
	for _, entry := range gs.VerifyingKeys {
		if seenVK[entry.Tag] {
			return fmt.Errorf("duplicate verifying key entry for tag %s", entry.Tag)
		}
		seenVK[entry.Tag] = true
		if err := ValidateVerifyingKey(entry.VK); err != nil {
			return fmt.Errorf("invalid verifying key for tag %s: %w", entry.Tag, err)
		}
	}

	seenImageID := make(map[ProofType]bool)
	for _, entry := range gs.ImageIDs {
		if seenImageID[entry.Tag] {
			return fmt.Errorf("duplicate image id entry for tag %s", entry.Tag)
		}
		seenImageID[entry.Tag] = true
	}

	seenSelector := make(map[ProofType]bool)
	for _, entry := range gs.Selectors {
		if seenSelector[entry.Tag] {
			return fmt.Errorf("duplicate selector entry for tag %s", entry.Tag)
		}
		seenSelector[entry.Tag] = true
	}

	return nil
}

// ValidateVerifyingKey checks the structural invariant §3 requires of every
// registered VK: the IC vector's length must equal the public-input count
// plus one. It does not check field-element canonicity or curve
// membership; that is groth16.Verifier.CheckVerifyingKeyCanonical's job,
// which the keeper runs at registration and genesis import.
func ValidateVerifyingKey(vk VerifyingKey) error {
	if len(vk.IC) != ICLength {
		return fmt.Errorf("IC has length %d, want %d", len(vk.IC), ICLength)
	}
	return nil
}
