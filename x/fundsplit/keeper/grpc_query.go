package keeper

import (
	"context"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/xpladev/fundsplit/x/fundsplit/types"

	sdk "github.com/cosmos/cosmos-sdk/types"
)

var _ types.QueryServer = Querier{}

// Querier serves the read-only projections of the ledger.
type Querier struct {
	Keeper
}

// NewQuerier returns a Querier backed by k.
func NewQuerier(k Keeper) Querier {
	return Querier{Keeper: k}
}

// Balance returns the ledger balance of a user, or a zero coin if the user has
// no entry
func (q Querier) Balance(c context.Context, req *types.QueryBalanceRequest) (*types.QueryBalanceResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "empty request")
	}

	addr, err := q.parseAddress(req.User)
	if err != nil {
		return nil, status.Errorf(codes.InvalidArgument, "invalid address %s: %s", req.User, err)
	}

	ctx := sdk.UnwrapSDKContext(c)
	return &types.QueryBalanceResponse{Balance: q.Keeper.Balance(ctx, addr)}, nil
}

// Owner returns the account that collects the protocol fee
func (q Querier) Owner(c context.Context, req *types.QueryOwnerRequest) (*types.QueryOwnerResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "empty request")
	}

	ctx := sdk.UnwrapSDKContext(c)
	owner, err := q.GetOwner(ctx)
	if err != nil {
		return nil, status.Error(codes.NotFound, err.Error())
	}

	return &types.QueryOwnerResponse{Owner: q.formatAddress(owner)}, nil
}

// Balances returns every ledger entry and their sum
func (q Querier) Balances(c context.Context, req *types.QueryBalancesRequest) (*types.QueryBalancesResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "empty request")
	}

	ctx := sdk.UnwrapSDKContext(c)
	return &types.QueryBalancesResponse{
		Balances: q.GetAllBalances(ctx),
		Total:    q.GetTotalBalance(ctx),
	}, nil
}

// Totals returns the cumulative deposited and withdrawn amounts
func (q Querier) Totals(c context.Context, req *types.QueryTotalsRequest) (*types.QueryTotalsResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "empty request")
	}

	ctx := sdk.UnwrapSDKContext(c)
	return &types.QueryTotalsResponse{
		Deposited: q.GetTotalDeposited(ctx),
		Withdrawn: q.GetTotalWithdrawn(ctx),
	}, nil
}
