package keeper

import (
	"github.com/xpladev/fundsplit/x/fundsplit/types"

	errorsmod "cosmossdk.io/errors"

	sdk "github.com/cosmos/cosmos-sdk/types"
	banktypes "github.com/cosmos/cosmos-sdk/x/bank/types"
)

// Withdraw debits the ledger balance of sender and returns the transfer
// instruction paying it out from the module account. The caller is
// responsible for executing the instruction.
//
// An account without an entry is Unauthorized. This includes accounts that
// already withdrew everything, since a drained entry is deleted. An exact
// amount must be positive: zero is rejected with ErrInvalidAmount because a
// zero-amount bank send is invalid.
func (k Keeper) Withdraw(ctx sdk.Context, sender string, amount types.WithdrawAmount) (*banktypes.MsgSend, error) {
	addr, err := k.parseAddress(sender)
	if err != nil {
		return nil, err
	}

	balance, found := k.GetBalance(ctx, addr)
	if !found {
		return nil, errorsmod.Wrapf(types.ErrUnauthorized, "%s has no balance", sender)
	}

	var payout sdk.Coin
	switch amt := amount.(type) {
	case nil, types.WithdrawAll:
		payout = balance
	case types.WithdrawExact:
		if amt.Coin.Denom != k.config.Denom {
			return nil, errorsmod.Wrapf(
				types.ErrInvalidTokenTransfer, "expected %s, got %s", k.config.Denom, amt.Coin.Denom,
			)
		}
		if amt.Coin.Amount.IsNil() || !amt.Coin.Amount.IsPositive() {
			return nil, errorsmod.Wrapf(types.ErrInvalidAmount, "non-positive amount %s", amt.Coin)
		}
		if amt.Coin.Amount.GT(balance.Amount) {
			return nil, errorsmod.Wrapf(
				types.ErrInvalidAmount, "requested %s, balance is %s", amt.Coin, balance,
			)
		}
		payout = amt.Coin
	default:
		return nil, errorsmod.Wrapf(types.ErrInvalidAmount, "unknown withdraw amount %T", amount)
	}

	withdrawn, err := k.nextCounter(ctx, types.TotalWithdrawnKey, payout.Amount)
	if err != nil {
		return nil, err
	}
	if err := k.debit(ctx, addr, payout.Amount); err != nil {
		return nil, err
	}
	k.setCounter(ctx, types.TotalWithdrawnKey, withdrawn)

	coins := sdk.NewCoins(payout)
	ctx.EventManager().EmitEvent(types.NewWithdrawEvent(sender, coins))
	k.Logger(ctx).Debug("withdraw", "to", sender, "amount", payout.String())

	return &banktypes.MsgSend{
		FromAddress: k.formatAddress(types.ModuleAddress),
		ToAddress:   sender,
		Amount:      coins,
	}, nil
}
