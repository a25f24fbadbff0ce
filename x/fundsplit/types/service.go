package types

import (
	"context"
)

// MsgServer is the server API for the fundsplit state transitions.
type MsgServer interface {
	// Split attributes a deposit between the owner and two recipients.
	Split(context.Context, *MsgSplit) (*MsgSplitResponse, error)
	// Withdraw pays out part or all of the sender ledger balance.
	Withdraw(context.Context, *MsgWithdraw) (*MsgWithdrawResponse, error)
}

// QueryServer is the server API for the fundsplit read-only queries.
type QueryServer interface {
	Balance(context.Context, *QueryBalanceRequest) (*QueryBalanceResponse, error)
	Owner(context.Context, *QueryOwnerRequest) (*QueryOwnerResponse, error)
	Balances(context.Context, *QueryBalancesRequest) (*QueryBalancesResponse, error)
	Totals(context.Context, *QueryTotalsRequest) (*QueryTotalsResponse, error)
}
