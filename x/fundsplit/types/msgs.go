package types

import (
	errorsmod "cosmossdk.io/errors"

	sdk "github.com/cosmos/cosmos-sdk/types"
	errortypes "github.com/cosmos/cosmos-sdk/types/errors"
	banktypes "github.com/cosmos/cosmos-sdk/x/bank/types"
)

// MsgSplit attributes the attached Funds between the owner, User1 and User2.
type MsgSplit struct {
	Sender string    `json:"sender"`
	User1  string    `json:"user1"`
	User2  string    `json:"user2"`
	Funds  sdk.Coins `json:"funds"`
}

// MsgSplitResponse acknowledges a split. No transfer is produced.
type MsgSplitResponse struct {
	Amounts SplitAmounts `json:"amounts"`
}

// MsgWithdraw pays out part or all of the Sender ledger balance.
type MsgWithdraw struct {
	Sender string         `json:"sender"`
	Amount WithdrawAmount `json:"-"`
}

// MsgWithdrawResponse carries the single transfer instruction of a withdrawal.
type MsgWithdrawResponse struct {
	Transfer *banktypes.MsgSend `json:"transfer"`
}

// NewMsgSplit returns a MsgSplit with the given deposit.
func NewMsgSplit(sender, user1, user2 string, funds sdk.Coins) *MsgSplit {
	return &MsgSplit{Sender: sender, User1: user1, User2: user2, Funds: funds}
}

// NewMsgWithdraw returns a MsgWithdraw. A nil amount withdraws everything.
func NewMsgWithdraw(sender string, amount WithdrawAmount) *MsgWithdraw {
	if amount == nil {
		amount = WithdrawAll{}
	}
	return &MsgWithdraw{Sender: sender, Amount: amount}
}

// ValidateBasic performs the stateless checks of a MsgSplit
func (m MsgSplit) ValidateBasic() error {
	if m.Sender == "" {
		return errorsmod.Wrap(errortypes.ErrInvalidAddress, "empty sender")
	}
	if len(m.Funds) != 1 {
		return errorsmod.Wrapf(ErrInvalidTokenTransfer, "expected exactly one coin, got %d", len(m.Funds))
	}
	if m.User1 == "" || m.User2 == "" {
		return errorsmod.Wrap(errortypes.ErrInvalidAddress, "empty recipient")
	}
	return nil
}

// ValidateBasic performs the stateless checks of a MsgWithdraw
func (m MsgWithdraw) ValidateBasic() error {
	if m.Sender == "" {
		return errorsmod.Wrap(errortypes.ErrInvalidAddress, "empty sender")
	}
	if m.Amount == nil {
		return errorsmod.Wrap(ErrInvalidAmount, "missing withdraw amount")
	}
	return nil
}
