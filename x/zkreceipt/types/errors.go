package types

import "cosmossdk.io/errors"

// Error kinds. The policy is that none of these are ever swallowed or
// "repaired" locally -- every failure is surfaced to the caller as one of
// these tagged variants, never a panic or a bare wrapped string.
var (
	ErrNotConfigured    = errors.Register(ModuleName, 2, "proof type not configured")
	ErrMalformedBlob    = errors.Register(ModuleName, 3, "malformed proof blob")
	ErrSelectorMismatch = errors.Register(ModuleName, 4, "selector mismatch")
	ErrImageIDMismatch  = errors.Register(ModuleName, 5, "image id mismatch")
	ErrInvalidG1Input   = errors.Register(ModuleName, 6, "invalid G1 input")
	ErrInvalidG2Input   = errors.Register(ModuleName, 7, "invalid G2 input")
	ErrProofInvalid     = errors.Register(ModuleName, 8, "proof invalid")
	ErrUnauthorized     = errors.Register(ModuleName, 9, "unauthorized")
	ErrInvalidVK        = errors.Register(ModuleName, 10, "invalid verifying key")
	ErrInvalidProofType = errors.Register(ModuleName, 11, "invalid proof type")
	ErrInvalidJournal   = errors.Register(ModuleName, 12, "journal does not match the requested proof type's layout")
)
