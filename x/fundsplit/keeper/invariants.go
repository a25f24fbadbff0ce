package keeper

import (
	"fmt"

	"github.com/xpladev/fundsplit/x/fundsplit/types"

	sdk "github.com/cosmos/cosmos-sdk/types"
)

// RegisterInvariants registers the fundsplit module invariants. bankKeeper may
// be nil when the ledger runs without a bank module.
func RegisterInvariants(ir sdk.InvariantRegistry, k Keeper, bankKeeper types.BankKeeper) {
	ir.RegisterRoute(types.ModuleName, "nonzero-balances", NonZeroBalancesInvariant(k))
	ir.RegisterRoute(types.ModuleName, "conservation", ConservationInvariant(k))
	if bankKeeper != nil {
		ir.RegisterRoute(types.ModuleName, "module-account", ModuleAccountInvariant(k, bankKeeper))
	}
}

// AllInvariants runs all invariants of the fundsplit module.
func AllInvariants(k Keeper, bankKeeper types.BankKeeper) sdk.Invariant {
	invariants := []sdk.Invariant{
		NonZeroBalancesInvariant(k),
		ConservationInvariant(k),
	}
	if bankKeeper != nil {
		invariants = append(invariants, ModuleAccountInvariant(k, bankKeeper))
	}

	return func(ctx sdk.Context) (string, bool) {
		for _, inv := range invariants {
			if res, stop := inv(ctx); stop {
				return res, stop
			}
		}
		return "", false
	}
}

// NonZeroBalancesInvariant checks that every stored entry is positive and in
// the configured denom.
func NonZeroBalancesInvariant(k Keeper) sdk.Invariant {
	return func(ctx sdk.Context) (string, bool) {
		var (
			msg    string
			broken int
		)

		k.IterateBalances(ctx, func(addr sdk.AccAddress, balance sdk.Coin) bool {
			if !balance.IsPositive() || balance.Denom != k.config.Denom {
				broken++
				msg += fmt.Sprintf("\t%s has invalid balance %s\n", addr, balance)
			}
			return false
		})

		return sdk.FormatInvariant(
			types.ModuleName, "nonzero-balances",
			fmt.Sprintf("amount of invalid balances found %d\n%s", broken, msg),
		), broken != 0
	}
}

// ConservationInvariant checks that the ledger holds exactly what was
// deposited minus what was withdrawn.
func ConservationInvariant(k Keeper) sdk.Invariant {
	return func(ctx sdk.Context) (string, bool) {
		total := k.GetTotalBalance(ctx).Amount
		expected := k.GetTotalDeposited(ctx).Sub(k.GetTotalWithdrawn(ctx))

		return sdk.FormatInvariant(
			types.ModuleName, "conservation",
			fmt.Sprintf("\tsum of balances: %s\n\tdeposited - withdrawn: %s\n", total, expected),
		), !total.Equal(expected)
	}
}

// ModuleAccountInvariant checks that the module account holds at least the
// ledger total.
func ModuleAccountInvariant(k Keeper, bankKeeper types.BankKeeper) sdk.Invariant {
	return func(ctx sdk.Context) (string, bool) {
		total := k.GetTotalBalance(ctx)
		held := bankKeeper.GetBalance(ctx, types.ModuleAddress, k.config.Denom)

		return sdk.FormatInvariant(
			types.ModuleName, "module-account",
			fmt.Sprintf("\tsum of balances: %s\n\tmodule account balance: %s\n", total, held),
		), held.Amount.LT(total.Amount)
	}
}
