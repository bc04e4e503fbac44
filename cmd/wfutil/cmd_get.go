package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <file> <object> <path>",
		Short: "Print the value at a nested path of an object declaration",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			filename, objectName, path := args[0], args[1], args[2]

			e, err := loadEditor(filename)
			if err != nil {
				return err
			}
			obj, ok := e.FindObject(objectName)
			if !ok {
				return fmt.Errorf("object %s not found in %s", objectName, filename)
			}
			value, found, err := obj.FindNested(path)
			if err != nil {
				return err
			}
			if !found {
				return fmt.Errorf("path %q not found in %s", path, objectName)
			}
			fmt.Println(value.Text())
			return nil
		},
	}
}
