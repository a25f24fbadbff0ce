package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"sigs.k8s.io/yaml"

	"github.com/xpladev/fundsplit/x/fundsplit/keeper"

	sdk "github.com/cosmos/cosmos-sdk/types"
)

// Session is one state transition against the ledger.
type Session interface {
	Context() sdk.Context
	Keeper() keeper.Keeper
	CheckInvariants() error
	Commit() error
	Close() error
}

// SessionOpener opens a Session configured from the command flags.
type SessionOpener func(cmd *cobra.Command) (Session, error)

// execute runs fn in a session and commits it if fn succeeds.
func execute(cmd *cobra.Command, open SessionOpener, fn func(ctx sdk.Context, k keeper.Keeper) (interface{}, error)) error {
	session, err := open(cmd)
	if err != nil {
		return err
	}
	defer session.Close()

	res, err := fn(session.Context(), session.Keeper())
	if err != nil {
		return err
	}
	if err := session.Commit(); err != nil {
		return err
	}
	return printOutput(cmd, res)
}

// query runs fn in a session that is never committed.
func query(cmd *cobra.Command, open SessionOpener, fn func(ctx sdk.Context, k keeper.Keeper) (interface{}, error)) error {
	session, err := open(cmd)
	if err != nil {
		return err
	}
	defer session.Close()

	res, err := fn(session.Context(), session.Keeper())
	if err != nil {
		return err
	}
	return printOutput(cmd, res)
}

func printOutput(cmd *cobra.Command, res interface{}) error {
	if res == nil {
		return nil
	}
	out, err := yaml.Marshal(res)
	if err != nil {
		return err
	}
	_, err = fmt.Fprint(cmd.OutOrStdout(), string(out))
	return err
}
