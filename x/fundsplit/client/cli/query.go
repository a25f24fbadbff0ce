package cli

import (
	"github.com/spf13/cobra"

	"github.com/xpladev/fundsplit/x/fundsplit/keeper"
	"github.com/xpladev/fundsplit/x/fundsplit/types"

	"github.com/cosmos/cosmos-sdk/client"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

// GetQueryCmd returns the parent command for all fundsplit CLI query commands
func GetQueryCmd(open SessionOpener) *cobra.Command {
	cmd := &cobra.Command{
		Use:                        "query",
		Aliases:                    []string{"q"},
		Short:                      "Querying commands for the fundsplit ledger",
		DisableFlagParsing:         true,
		SuggestionsMinimumDistance: 2,
		RunE:                       client.ValidateCmd,
	}

	cmd.AddCommand(
		GetBalanceCmd(open),
		GetOwnerCmd(open),
		GetBalancesCmd(open),
		GetTotalsCmd(open),
	)
	return cmd
}

// GetBalanceCmd queries the balance of a user
func GetBalanceCmd(open SessionOpener) *cobra.Command {
	return &cobra.Command{
		Use:   "balance USER",
		Short: "Gets the ledger balance of a user",
		Long:  "Gets the ledger balance of a user, zero if the user has no entry",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return query(cmd, open, func(ctx sdk.Context, k keeper.Keeper) (interface{}, error) {
				return keeper.NewQuerier(k).Balance(ctx, &types.QueryBalanceRequest{User: args[0]})
			})
		},
	}
}

// GetOwnerCmd queries the fee owner
func GetOwnerCmd(open SessionOpener) *cobra.Command {
	return &cobra.Command{
		Use:   "owner",
		Short: "Gets the owner collecting the fee",
		Long:  "Gets the owner collecting the fee",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return query(cmd, open, func(ctx sdk.Context, k keeper.Keeper) (interface{}, error) {
				return keeper.NewQuerier(k).Owner(ctx, &types.QueryOwnerRequest{})
			})
		},
	}
}

// GetBalancesCmd lists every ledger entry
func GetBalancesCmd(open SessionOpener) *cobra.Command {
	return &cobra.Command{
		Use:   "balances",
		Short: "Lists every ledger entry",
		Long:  "Lists every ledger entry and their sum",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return query(cmd, open, func(ctx sdk.Context, k keeper.Keeper) (interface{}, error) {
				return keeper.NewQuerier(k).Balances(ctx, &types.QueryBalancesRequest{})
			})
		},
	}
}

// GetTotalsCmd queries the cumulative deposits and withdrawals
func GetTotalsCmd(open SessionOpener) *cobra.Command {
	return &cobra.Command{
		Use:   "totals",
		Short: "Gets the cumulative deposited and withdrawn amounts",
		Long:  "Gets the cumulative deposited and withdrawn amounts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return query(cmd, open, func(ctx sdk.Context, k keeper.Keeper) (interface{}, error) {
				return keeper.NewQuerier(k).Totals(ctx, &types.QueryTotalsRequest{})
			})
		},
	}
}
