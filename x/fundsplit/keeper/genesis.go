package keeper

import (
	"fmt"

	"github.com/xpladev/fundsplit/x/fundsplit/types"

	sdk "github.com/cosmos/cosmos-sdk/types"
)

// InitGenesis sets the owner, loads the ledger and restores the deposit and
// withdrawal totals.
func (k Keeper) InitGenesis(ctx sdk.Context, data types.GenesisState) {
	if err := data.Validate(k.addressCodec, k.config.Denom); err != nil {
		panic(fmt.Errorf("failed to validate %s genesis state: %w", types.ModuleName, err))
	}

	if err := k.Instantiate(ctx, data.Owner); err != nil {
		panic(err)
	}

	deposited, withdrawn, err := data.Totals()
	if err != nil {
		panic(err)
	}

	for _, b := range data.Balances {
		addr, err := k.parseAddress(b.Address)
		if err != nil {
			panic(err)
		}
		k.setBalance(ctx, addr, b.Balance.Amount)
	}
	k.setCounter(ctx, types.TotalDepositedKey, deposited)
	k.setCounter(ctx, types.TotalWithdrawnKey, withdrawn)
}

// ExportGenesis returns the owner, the current ledger and its totals.
func (k Keeper) ExportGenesis(ctx sdk.Context) *types.GenesisState {
	owner, err := k.GetOwner(ctx)
	if err != nil {
		panic(err)
	}

	gs := types.NewGenesisState(k.formatAddress(owner), k.GetAllBalances(ctx))
	gs.TotalDeposited = k.GetTotalDeposited(ctx)
	gs.TotalWithdrawn = k.GetTotalWithdrawn(ctx)
	return gs
}
