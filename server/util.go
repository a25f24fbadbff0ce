package server

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/xpladev/fundsplit/x/fundsplit/client/cli"

	"cosmossdk.io/log"

	"github.com/cosmos/cosmos-sdk/version"
)

// AddCommands adds the ledger commands to rootCmd.
func AddCommands(rootCmd *cobra.Command) {
	AddConfigFlags(rootCmd)

	rootCmd.AddCommand(
		cli.GetTxCmd(OpenSession),
		cli.GetQueryCmd(OpenSession),
		cli.GetInitCmd(OpenSession),
		cli.GetExportCmd(OpenSession),
		cli.GetCheckInvariantsCmd(OpenSession),
		version.NewVersionCommand(),
	)
}

// OpenSession resolves the configuration of cmd and opens the node.
func OpenSession(cmd *cobra.Command) (cli.Session, error) {
	cfg, err := ReadConfig(cmd)
	if err != nil {
		return nil, err
	}

	logger, err := NewLogger(cfg)
	if err != nil {
		return nil, err
	}

	node, err := OpenNode(cfg, logger)
	if err != nil {
		return nil, err
	}
	return node, nil
}

// NewLogger returns the node logger writing to stderr.
func NewLogger(cfg Config) (log.Logger, error) {
	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, err
	}
	return log.NewLogger(os.Stderr, log.LevelOption(level)), nil
}
