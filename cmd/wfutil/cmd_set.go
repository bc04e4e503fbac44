package main

import (
	"fmt"

	"github.com/Belafon/WFUtilities-sub000/script"
	"github.com/spf13/cobra"
)

func newSetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "set <file> <object> <path> <value>",
		Short: "Set the value at a nested path of an object declaration",
		Long: `Set the value at a nested path of an object declaration.

A single-name path creates the property when it is missing; deeper paths
replace an existing value and fail when the path does not resolve.`,
		Args: cobra.ExactArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			filename, objectName, path, value := args[0], args[1], args[2], args[3]

			segments, err := script.ParsePath(path)
			if err != nil {
				return err
			}
			e, err := loadEditor(filename)
			if err != nil {
				return err
			}
			obj, ok := e.FindObject(objectName)
			if !ok {
				return fmt.Errorf("object %s not found in %s", objectName, filename)
			}

			if len(segments) == 1 && !segments[0].IsIndex {
				if err := obj.SetProperty(segments[0].Name, value); err != nil {
					return err
				}
			} else {
				target, found, err := obj.FindNested(path)
				if err != nil {
					return err
				}
				if !found {
					return fmt.Errorf("path %q not found in %s", path, objectName)
				}
				target.Replace(value)
			}

			return writeResult(filename, e)
		},
	}
}
