package types

import (
	sdk "github.com/cosmos/cosmos-sdk/types"
	authtypes "github.com/cosmos/cosmos-sdk/x/auth/types"
)

// constants
const (
	// module name
	ModuleName = "fundsplit"

	// StoreKey to be used when creating the KVStore
	StoreKey = ModuleName
)

// ModuleAddress is the account that holds every deposit until it is withdrawn
var ModuleAddress sdk.AccAddress

func init() {
	ModuleAddress = authtypes.NewModuleAddress(ModuleName)
}

// prefix bytes for the fundsplit persistent store
const (
	prefixOwner = iota + 1
	prefixBalance
	prefixTotalDeposited
	prefixTotalWithdrawn
)

// KVStore key prefixes
var (
	OwnerKey          = []byte{prefixOwner}
	BalancePrefix     = []byte{prefixBalance}
	TotalDepositedKey = []byte{prefixTotalDeposited}
	TotalWithdrawnKey = []byte{prefixTotalWithdrawn}
)

// BalanceKey returns the key of an account within the BalancePrefix store.
func BalanceKey(addr sdk.AccAddress) []byte {
	return addr.Bytes()
}
