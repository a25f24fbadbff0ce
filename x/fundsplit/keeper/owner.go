package keeper

import (
	"github.com/xpladev/fundsplit/x/fundsplit/types"

	errorsmod "cosmossdk.io/errors"

	sdk "github.com/cosmos/cosmos-sdk/types"
)

// Instantiate records the owner that collects the protocol fee. The owner can
// be set only once.
func (k Keeper) Instantiate(ctx sdk.Context, owner string) error {
	addr, err := k.parseAddress(owner)
	if err != nil {
		return err
	}

	if k.HasOwner(ctx) {
		return errorsmod.Wrapf(types.ErrOwnerAlreadySet, "cannot replace owner with %s", owner)
	}

	ctx.KVStore(k.storeKey).Set(types.OwnerKey, addr.Bytes())
	ctx.EventManager().EmitEvent(types.NewInstantiateEvent(owner))
	k.Logger(ctx).Info("fundsplit instantiated", "owner", owner, "denom", k.config.Denom)
	return nil
}

// HasOwner returns true once Instantiate succeeded.
func (k Keeper) HasOwner(ctx sdk.Context) bool {
	return ctx.KVStore(k.storeKey).Has(types.OwnerKey)
}

// GetOwner returns the owner address.
func (k Keeper) GetOwner(ctx sdk.Context) (sdk.AccAddress, error) {
	bz := ctx.KVStore(k.storeKey).Get(types.OwnerKey)
	if len(bz) == 0 {
		return nil, types.ErrOwnerNotSet
	}
	return sdk.AccAddress(bz), nil
}
