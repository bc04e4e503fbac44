package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newUnionCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "union",
		Short: "Edit the members of a union type declaration",
	}
	cmd.AddCommand(newUnionAddCmd())
	cmd.AddCommand(newUnionRmCmd())
	return cmd
}

func newUnionAddCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "add <file> <type> <member>",
		Short: "Append a member to a union type",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			filename, typeName, member := args[0], args[1], args[2]

			e, err := loadEditor(filename)
			if err != nil {
				return err
			}
			tb, ok := e.FindType(typeName)
			if !ok {
				return fmt.Errorf("type %s not found in %s", typeName, filename)
			}
			added, err := tb.AddUnionMember(member)
			if err != nil {
				return err
			}
			if !added {
				return nil
			}
			return writeResult(filename, e)
		},
	}
}

func newUnionRmCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rm <file> <type> <member>",
		Short: "Remove a member from a union type",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			filename, typeName, member := args[0], args[1], args[2]

			e, err := loadEditor(filename)
			if err != nil {
				return err
			}
			tb, ok := e.FindType(typeName)
			if !ok {
				return fmt.Errorf("type %s not found in %s", typeName, filename)
			}
			removed, err := tb.RemoveUnionMember(member)
			if err != nil {
				return err
			}
			if !removed {
				return fmt.Errorf("member %q not found in union %s", member, typeName)
			}
			return writeResult(filename, e)
		},
	}
}
