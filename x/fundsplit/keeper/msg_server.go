package keeper

import (
	"context"

	"github.com/hashicorp/go-metrics"

	"github.com/xpladev/fundsplit/x/fundsplit/types"

	errorsmod "cosmossdk.io/errors"

	sdk "github.com/cosmos/cosmos-sdk/types"
	errortypes "github.com/cosmos/cosmos-sdk/types/errors"
)

var _ types.MsgServer = msgServer{}

type msgServer struct {
	Keeper
	bankKeeper types.BankKeeper
}

// NewMsgServerImpl returns the dispatcher for fundsplit messages. It moves
// the coins through bankKeeper around the ledger updates of the keeper.
func NewMsgServerImpl(keeper Keeper, bankKeeper types.BankKeeper) types.MsgServer {
	return &msgServer{Keeper: keeper, bankKeeper: bankKeeper}
}

// Split escrows the deposit into the module account and attributes it.
func (s msgServer) Split(goCtx context.Context, msg *types.MsgSplit) (*types.MsgSplitResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}

	sender, err := s.parseAddress(msg.Sender)
	if err != nil {
		return nil, errorsmod.Wrapf(errortypes.ErrInvalidAddress, "sender %s: %s", msg.Sender, err)
	}

	ctx := sdk.UnwrapSDKContext(goCtx)
	cacheCtx, writeCache := ctx.CacheContext()

	amounts, err := s.Keeper.Split(cacheCtx, msg.Funds, msg.User1, msg.User2)
	if err != nil {
		return nil, err
	}

	if err := s.bankKeeper.SendCoinsFromAccountToModule(cacheCtx, sender, types.ModuleName, msg.Funds); err != nil {
		return nil, errorsmod.Wrap(err, "failed to escrow deposit")
	}

	writeCache()

	defer func() {
		metrics.IncrCounterWithLabels(
			[]string{types.ModuleName, "split"},
			1,
			[]metrics.Label{{Name: "denom", Value: s.config.Denom}},
		)
	}()

	return &types.MsgSplitResponse{Amounts: amounts}, nil
}

// Withdraw debits the sender balance and pays it out from the module account.
func (s msgServer) Withdraw(goCtx context.Context, msg *types.MsgWithdraw) (*types.MsgWithdrawResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}

	ctx := sdk.UnwrapSDKContext(goCtx)
	cacheCtx, writeCache := ctx.CacheContext()

	transfer, err := s.Keeper.Withdraw(cacheCtx, msg.Sender, msg.Amount)
	if err != nil {
		return nil, err
	}

	recipient, err := s.parseAddress(transfer.ToAddress)
	if err != nil {
		return nil, err
	}

	if err := s.bankKeeper.SendCoinsFromModuleToAccount(cacheCtx, types.ModuleName, recipient, transfer.Amount); err != nil {
		return nil, errorsmod.Wrap(err, "failed to pay out withdrawal")
	}

	writeCache()

	defer func() {
		metrics.IncrCounterWithLabels(
			[]string{types.ModuleName, "withdraw"},
			1,
			[]metrics.Label{{Name: "denom", Value: s.config.Denom}},
		)
	}()

	return &types.MsgWithdrawResponse{Transfer: transfer}, nil
}
