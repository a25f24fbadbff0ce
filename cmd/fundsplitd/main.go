package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/xpladev/fundsplit/server"
)

func main() {
	rootCmd := &cobra.Command{
		Use:           "fundsplitd",
		Short:         "Local fundsplit settlement ledger",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	server.AddCommands(rootCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
