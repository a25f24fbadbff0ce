package cli

import (
	"github.com/spf13/cobra"

	"github.com/xpladev/fundsplit/x/fundsplit/keeper"
	"github.com/xpladev/fundsplit/x/fundsplit/types"

	"github.com/cosmos/cosmos-sdk/client"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

// GetTxCmd returns the parent command for all fundsplit state transitions
func GetTxCmd(open SessionOpener) *cobra.Command {
	cmd := &cobra.Command{
		Use:                        "tx",
		Short:                      "fundsplit ledger transactions",
		DisableFlagParsing:         true,
		SuggestionsMinimumDistance: 2,
		RunE:                       client.ValidateCmd,
	}

	cmd.AddCommand(
		NewSplitCmd(open),
		NewWithdrawCmd(open),
	)
	return cmd
}

// NewSplitCmd splits a deposit between the owner and two users
func NewSplitCmd(open SessionOpener) *cobra.Command {
	return &cobra.Command{
		Use:   "split USER1 USER2 DEPOSIT",
		Short: "Split a deposit between two users after the owner fee",
		Long:  "Split a single-coin deposit (e.g. 1000usei): 2% goes to the owner, the rest is split evenly between USER1 and USER2",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			funds, err := sdk.ParseCoinsNormalized(args[2])
			if err != nil {
				return err
			}

			return execute(cmd, open, func(ctx sdk.Context, k keeper.Keeper) (interface{}, error) {
				amounts, err := k.Split(ctx, funds, args[0], args[1])
				if err != nil {
					return nil, err
				}
				return map[string]string{
					"deposit": amounts.Deposit.String(),
					"fee":     amounts.Fee.String(),
					"share1":  amounts.Share1.String(),
					"share2":  amounts.Share2.String(),
				}, nil
			})
		},
	}
}

// NewWithdrawCmd withdraws part or all of a ledger balance
func NewWithdrawCmd(open SessionOpener) *cobra.Command {
	return &cobra.Command{
		Use:   "withdraw SENDER [AMOUNT]",
		Short: "Withdraw AMOUNT (or everything) from the SENDER balance",
		Long:  "Withdraw AMOUNT (e.g. 400usei) from the SENDER balance. Without AMOUNT, or with \"all\", the whole balance is withdrawn. Prints the resulting transfer instruction.",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			var raw string
			if len(args) == 2 {
				raw = args[1]
			}
			amount, err := types.ParseWithdrawAmount(raw)
			if err != nil {
				return err
			}

			return execute(cmd, open, func(ctx sdk.Context, k keeper.Keeper) (interface{}, error) {
				transfer, err := k.Withdraw(ctx, args[0], amount)
				if err != nil {
					return nil, err
				}
				return types.MsgWithdrawResponse{Transfer: transfer}, nil
			})
		},
	}
}
