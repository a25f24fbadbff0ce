package types

import (
	errorsmod "cosmossdk.io/errors"
)

// errors
var (
	ErrInvalidTokenTransfer = errorsmod.Register(ModuleName, 2, "invalid token transferred")
	ErrUnauthorized         = errorsmod.Register(ModuleName, 3, "unauthorized")
	ErrInvalidAmount        = errorsmod.Register(ModuleName, 4, "invalid amount to claim")
	ErrOwnerNotSet          = errorsmod.Register(ModuleName, 5, "owner is not set")
	ErrOwnerAlreadySet      = errorsmod.Register(ModuleName, 6, "owner is already set")
	ErrAmountOverflow       = errorsmod.Register(ModuleName, 7, "amount overflows fee computation")
	ErrInsufficientBalance  = errorsmod.Register(ModuleName, 8, "debit exceeds ledger balance")
	ErrInvalidGenesis       = errorsmod.Register(ModuleName, 9, "invalid genesis state")
	ErrInvalidConfig        = errorsmod.Register(ModuleName, 10, "invalid module config")
)
