package keeper

import (
	"fmt"

	"github.com/xpladev/fundsplit/x/fundsplit/types"

	"cosmossdk.io/core/address"
	"cosmossdk.io/log"
	storetypes "cosmossdk.io/store/types"

	"github.com/cosmos/cosmos-sdk/codec"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

// Keeper owns the fundsplit ledger and the owner record.
type Keeper struct {
	cdc          codec.BinaryCodec
	storeKey     storetypes.StoreKey
	addressCodec address.Codec
	config       types.Config
}

// NewKeeper returns a new instance of the fundsplit keeper. It panics if the
// config is invalid.
func NewKeeper(
	cdc codec.BinaryCodec,
	storeKey storetypes.StoreKey,
	addressCodec address.Codec,
	config types.Config,
) Keeper {
	if err := config.Validate(); err != nil {
		panic(fmt.Errorf("fundsplit keeper: %w", err))
	}

	return Keeper{
		cdc:          cdc,
		storeKey:     storeKey,
		addressCodec: addressCodec,
		config:       config,
	}
}

// Logger returns a module-specific logger.
func (k Keeper) Logger(ctx sdk.Context) log.Logger {
	return ctx.Logger().With(log.ModuleKey, "x/"+types.ModuleName)
}

// Config returns the configuration the keeper was built with.
func (k Keeper) Config() types.Config {
	return k.config
}

// parseAddress validates an account identifier and returns its bytes.
func (k Keeper) parseAddress(addr string) (sdk.AccAddress, error) {
	bz, err := k.addressCodec.StringToBytes(addr)
	if err != nil {
		return nil, err
	}
	return sdk.AccAddress(bz), nil
}

// formatAddress is the inverse of parseAddress.
func (k Keeper) formatAddress(addr sdk.AccAddress) string {
	s, err := k.addressCodec.BytesToString(addr)
	if err != nil {
		// stored keys were produced by the same codec
		panic(err)
	}
	return s
}
