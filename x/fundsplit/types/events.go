package types

import (
	sdk "github.com/cosmos/cosmos-sdk/types"
	banktypes "github.com/cosmos/cosmos-sdk/x/bank/types"
)

// Event types for fundsplit operations
const (
	EventTypeInstantiate = "fundsplit_instantiate"
	EventTypeSplit       = "fundsplit_split"
	EventTypeWithdraw    = "fundsplit_withdraw"
)

// Attribute keys
const (
	AttributeKeyMethod = "method"
	AttributeKeyAction = "action"
	AttributeKeyOwner  = "owner"
	AttributeKeyTo     = "to"
	AttributeKeyUser1  = "user1"
	AttributeKeyUser2  = "user2"
	AttributeKeyFee    = "fee"
	AttributeKeyShare1 = "share1"
	AttributeKeyShare2 = "share2"
	AttributeKeyAmount = sdk.AttributeKeyAmount

	AttributeValueInstantiate = "instantiate"
	AttributeValueSplit       = "try_split"
	AttributeValueWithdraw    = "withdraw"
)

// NewInstantiateEvent creates the event emitted when the owner is recorded
func NewInstantiateEvent(owner string) sdk.Event {
	return sdk.NewEvent(
		EventTypeInstantiate,
		sdk.NewAttribute(AttributeKeyMethod, AttributeValueInstantiate),
		sdk.NewAttribute(AttributeKeyOwner, owner),
	)
}

// NewSplitEvent creates the event emitted after a deposit is attributed
func NewSplitEvent(user1, user2 string, amounts SplitAmounts) sdk.Event {
	return sdk.NewEvent(
		EventTypeSplit,
		sdk.NewAttribute(AttributeKeyMethod, AttributeValueSplit),
		sdk.NewAttribute(AttributeKeyUser1, user1),
		sdk.NewAttribute(AttributeKeyUser2, user2),
		sdk.NewAttribute(AttributeKeyFee, amounts.Fee.String()),
		sdk.NewAttribute(AttributeKeyShare1, amounts.Share1.String()),
		sdk.NewAttribute(AttributeKeyShare2, amounts.Share2.String()),
	)
}

// NewWithdrawEvent creates the event emitted for every payout instruction
func NewWithdrawEvent(to string, amount sdk.Coins) sdk.Event {
	return sdk.NewEvent(
		EventTypeWithdraw,
		sdk.NewAttribute(AttributeKeyAction, AttributeValueWithdraw),
		sdk.NewAttribute(AttributeKeyTo, to),
		sdk.NewAttribute(banktypes.AttributeKeyRecipient, to),
		sdk.NewAttribute(AttributeKeyAmount, amount.String()),
	)
}
