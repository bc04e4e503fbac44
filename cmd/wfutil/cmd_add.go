package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newAddCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a property or array item",
	}
	cmd.AddCommand(newAddPropCmd())
	cmd.AddCommand(newAddItemCmd())
	return cmd
}

func newAddPropCmd() *cobra.Command {
	var at int
	var after string

	cmd := &cobra.Command{
		Use:   "prop <file> <object> <name> <value>",
		Short: "Add a property to an object declaration",
		Args:  cobra.ExactArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			filename, objectName, name, value := args[0], args[1], args[2], args[3]

			e, err := loadEditor(filename)
			if err != nil {
				return err
			}
			obj, ok := e.FindObject(objectName)
			if !ok {
				return fmt.Errorf("object %s not found in %s", objectName, filename)
			}

			switch {
			case after != "":
				if err := obj.AddPropertyAfter(after, name, value); err != nil {
					return err
				}
			case cmd.Flags().Changed("at"):
				if err := obj.AddPropertyAt(at, name, value); err != nil {
					return err
				}
			default:
				added, err := obj.AddPropertyIfMissing(name, value)
				if err != nil {
					return err
				}
				if !added {
					return fmt.Errorf("property %q already exists in %s", name, objectName)
				}
			}

			return writeResult(filename, e)
		},
	}

	cmd.Flags().IntVar(&at, "at", 0, "insert at this position")
	cmd.Flags().StringVar(&after, "after", "", "insert after this property")
	return cmd
}

func newAddItemCmd() *cobra.Command {
	var at int

	cmd := &cobra.Command{
		Use:   "item <file> <array> <value>",
		Short: "Append an item to an array declaration",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			filename, arrayName, value := args[0], args[1], args[2]

			e, err := loadEditor(filename)
			if err != nil {
				return err
			}
			arr, ok := e.FindArray(arrayName)
			if !ok {
				return fmt.Errorf("array %s not found in %s", arrayName, filename)
			}

			if cmd.Flags().Changed("at") {
				if err := arr.InsertItemAt(at, value); err != nil {
					return err
				}
			} else {
				if err := arr.AddItem(value); err != nil {
					return err
				}
			}

			return writeResult(filename, e)
		},
	}

	cmd.Flags().IntVar(&at, "at", 0, "insert at this position")
	return cmd
}
