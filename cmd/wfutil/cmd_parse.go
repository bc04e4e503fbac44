package main

import (
	"fmt"
	"os"

	"github.com/Belafon/WFUtilities-sub000/script/parser"
	"github.com/spf13/cobra"
)

func newParseCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "parse <file>",
		Short: "Parse a script file and dump its group tree",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			filename := args[0]
			data, err := os.ReadFile(filename)
			if err != nil {
				return fmt.Errorf("read %s: %w", filename, err)
			}
			root := parser.Parse(data, parser.WithFile(filename))
			fmt.Print(root.String())
			return nil
		},
	}
}
