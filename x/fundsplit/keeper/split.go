package keeper

import (
	"github.com/xpladev/fundsplit/x/fundsplit/types"

	errorsmod "cosmossdk.io/errors"

	sdk "github.com/cosmos/cosmos-sdk/types"
)

// Split attributes a deposit between the owner and two recipients. The
// deposit must be exactly one coin of the configured denom. Every check runs
// before the first ledger write, so a rejected split leaves the store as it
// was.
//
// The coins stay with the module account; Split only re-attributes them.
func (k Keeper) Split(ctx sdk.Context, funds sdk.Coins, user1, user2 string) (types.SplitAmounts, error) {
	if len(funds) != 1 {
		return types.SplitAmounts{}, errorsmod.Wrapf(
			types.ErrInvalidTokenTransfer, "expected exactly one coin, got %d", len(funds),
		)
	}

	deposit := funds[0]
	if deposit.Denom != k.config.Denom {
		return types.SplitAmounts{}, errorsmod.Wrapf(
			types.ErrInvalidTokenTransfer, "expected %s, got %s", k.config.Denom, deposit.Denom,
		)
	}
	if err := deposit.Validate(); err != nil {
		return types.SplitAmounts{}, errorsmod.Wrap(types.ErrInvalidTokenTransfer, err.Error())
	}

	addr1, err := k.parseAddress(user1)
	if err != nil {
		return types.SplitAmounts{}, err
	}
	addr2, err := k.parseAddress(user2)
	if err != nil {
		return types.SplitAmounts{}, err
	}

	owner, err := k.GetOwner(ctx)
	if err != nil {
		return types.SplitAmounts{}, err
	}

	amounts, err := types.ComputeSplit(deposit.Amount)
	if err != nil {
		return types.SplitAmounts{}, err
	}

	if err := k.applyCredits(
		ctx, types.TotalDepositedKey, amounts.Deposit,
		ledgerCredit{owner, amounts.Fee},
		ledgerCredit{addr1, amounts.Share1},
		ledgerCredit{addr2, amounts.Share2},
	); err != nil {
		return types.SplitAmounts{}, err
	}

	ctx.EventManager().EmitEvent(types.NewSplitEvent(user1, user2, amounts))
	k.Logger(ctx).Debug(
		"deposit split",
		"deposit", deposit.String(),
		"fee", amounts.Fee.String(),
		"user1", user1,
		"user2", user2,
	)

	return amounts, nil
}
