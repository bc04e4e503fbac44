package main

import (
	"github.com/Belafon/WFUtilities-sub000/content"
	"github.com/spf13/cobra"
)

func newLSPCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "lsp",
		Short: "Start the Language Server Protocol server",
		RunE: func(cmd *cobra.Command, args []string) error {
			server := content.NewLSPServer("0.1.0")
			return server.RunStdio()
		},
	}
}
