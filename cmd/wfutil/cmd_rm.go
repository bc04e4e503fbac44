package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

func newRmCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rm",
		Short: "Remove a property or array item",
	}
	cmd.AddCommand(newRmPropCmd())
	cmd.AddCommand(newRmItemCmd())
	return cmd
}

func newRmPropCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "prop <file> <object> <name>",
		Short: "Remove a property from an object declaration",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			filename, objectName, name := args[0], args[1], args[2]

			e, err := loadEditor(filename)
			if err != nil {
				return err
			}
			obj, ok := e.FindObject(objectName)
			if !ok {
				return fmt.Errorf("object %s not found in %s", objectName, filename)
			}
			if !obj.RemoveProperty(name) {
				return fmt.Errorf("property %q not found in %s", name, objectName)
			}

			return writeResult(filename, e)
		},
	}
}

func newRmItemCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "item <file> <array> <index>",
		Short: "Remove an item from an array declaration",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			filename, arrayName := args[0], args[1]
			index, err := strconv.Atoi(args[2])
			if err != nil {
				return fmt.Errorf("invalid index %q", args[2])
			}

			e, err := loadEditor(filename)
			if err != nil {
				return err
			}
			arr, ok := e.FindArray(arrayName)
			if !ok {
				return fmt.Errorf("array %s not found in %s", arrayName, filename)
			}
			if err := arr.RemoveItemAt(index); err != nil {
				return err
			}

			return writeResult(filename, e)
		},
	}
}
