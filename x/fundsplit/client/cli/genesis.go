package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/xpladev/fundsplit/x/fundsplit/keeper"

	sdk "github.com/cosmos/cosmos-sdk/types"
)

// GetInitCmd records the owner of a fresh ledger
func GetInitCmd(open SessionOpener) *cobra.Command {
	return &cobra.Command{
		Use:   "init OWNER",
		Short: "Initialize the ledger with the account collecting the fee",
		Long:  "Initialize the ledger with the account collecting the fee. The owner cannot be changed afterwards.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return execute(cmd, open, func(ctx sdk.Context, k keeper.Keeper) (interface{}, error) {
				if err := k.Instantiate(ctx, args[0]); err != nil {
					return nil, err
				}
				return map[string]string{"owner": args[0], "denom": k.Config().Denom}, nil
			})
		},
	}
}

// GetExportCmd prints the ledger as a genesis state
func GetExportCmd(open SessionOpener) *cobra.Command {
	return &cobra.Command{
		Use:   "export",
		Short: "Export the owner and every ledger entry",
		Long:  "Export the owner and every ledger entry",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return query(cmd, open, func(ctx sdk.Context, k keeper.Keeper) (interface{}, error) {
				if !k.HasOwner(ctx) {
					return nil, fmt.Errorf("ledger is not initialized")
				}
				return k.ExportGenesis(ctx), nil
			})
		},
	}
}

// GetCheckInvariantsCmd verifies the ledger invariants
func GetCheckInvariantsCmd(open SessionOpener) *cobra.Command {
	return &cobra.Command{
		Use:   "check-invariants",
		Short: "Verify that the ledger conserves value and stores no empty entries",
		Long:  "Verify that the ledger conserves value and stores no empty entries",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			session, err := open(cmd)
			if err != nil {
				return err
			}
			defer session.Close()

			if err := session.CheckInvariants(); err != nil {
				return err
			}
			return printOutput(cmd, map[string]string{"invariants": "ok"})
		},
	}
}
