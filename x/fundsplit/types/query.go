package types

import (
	sdkmath "cosmossdk.io/math"

	sdk "github.com/cosmos/cosmos-sdk/types"
)

// QueryBalanceRequest is the request type for the Query/Balance method.
type QueryBalanceRequest struct {
	User string `json:"user"`
}

// QueryBalanceResponse is the response type for the Query/Balance method.
type QueryBalanceResponse struct {
	Balance sdk.Coin `json:"balance"`
}

// QueryOwnerRequest is the request type for the Query/Owner method.
type QueryOwnerRequest struct{}

// QueryOwnerResponse is the response type for the Query/Owner method.
type QueryOwnerResponse struct {
	Owner string `json:"owner"`
}

// QueryBalancesRequest is the request type for the Query/Balances method.
type QueryBalancesRequest struct{}

// QueryBalancesResponse lists every ledger entry.
type QueryBalancesResponse struct {
	Balances []GenesisBalance `json:"balances"`
	Total    sdk.Coin         `json:"total"`
}

// QueryTotalsRequest is the request type for the Query/Totals method.
type QueryTotalsRequest struct{}

// QueryTotalsResponse returns the cumulative deposit and withdrawal counters.
type QueryTotalsResponse struct {
	Deposited sdkmath.Int `json:"deposited"`
	Withdrawn sdkmath.Int `json:"withdrawn"`
}
