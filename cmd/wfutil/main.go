package main

import (
	"os"

	"github.com/spf13/cobra"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "wfutil",
		Short: "Structural editing for world script files",
	}

	rootCmd.AddCommand(newParseCmd())
	rootCmd.AddCommand(newGetCmd())
	rootCmd.AddCommand(newSetCmd())
	rootCmd.AddCommand(newAddCmd())
	rootCmd.AddCommand(newRmCmd())
	rootCmd.AddCommand(newImportsCmd())
	rootCmd.AddCommand(newUnionCmd())
	rootCmd.AddCommand(newNewCmd())
	rootCmd.AddCommand(newDeleteCmd())
	rootCmd.AddCommand(newLSPCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
