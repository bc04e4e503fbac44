package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func newImportsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "imports",
		Short: "Inspect and edit import statements",
	}
	cmd.AddCommand(newImportsListCmd())
	cmd.AddCommand(newImportsAddCmd())
	cmd.AddCommand(newImportsRmCmd())
	cmd.AddCommand(newImportsOrganizeCmd())
	return cmd
}

func newImportsListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list <file>",
		Short: "List the import statements of a file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := loadEditor(args[0])
			if err != nil {
				return err
			}
			for _, st := range e.Imports().List() {
				var parts []string
				if st.Default != "" {
					parts = append(parts, "default "+st.Default)
				}
				if st.Namespace != "" {
					parts = append(parts, "namespace "+st.Namespace)
				}
				if len(st.Named) > 0 {
					parts = append(parts, strings.Join(st.Named, ", "))
				}
				if len(parts) == 0 {
					parts = append(parts, "side effect")
				}
				fmt.Printf("%s\t%s\n", st.Source, strings.Join(parts, "; "))
			}
			return nil
		},
	}
}

func newImportsAddCmd() *cobra.Command {
	var asDefault bool
	var namespace string

	cmd := &cobra.Command{
		Use:   "add <file> <source> [name...]",
		Short: "Add names to an import, merging with an existing statement",
		Long: `Add names to an import, merging with an existing statement.

Without names the import is added for its side effect only. With --default
the single name becomes the default import; --as binds a namespace import.`,
		Args: cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			filename, source := args[0], args[1]
			names := args[2:]

			e, err := loadEditor(filename)
			if err != nil {
				return err
			}
			im := e.Imports()

			switch {
			case namespace != "":
				if _, err := im.AddNamespace(source, namespace); err != nil {
					return err
				}
			case asDefault:
				if len(names) != 1 {
					return fmt.Errorf("--default takes exactly one name")
				}
				if _, err := im.AddDefault(source, names[0]); err != nil {
					return err
				}
			case len(names) == 0:
				if _, err := im.AddSideEffect(source); err != nil {
					return err
				}
			default:
				for _, name := range names {
					if _, err := im.AddNamed(source, name); err != nil {
						return err
					}
				}
			}

			return writeResult(filename, e)
		},
	}

	cmd.Flags().BoolVar(&asDefault, "default", false, "bind the name as the default import")
	cmd.Flags().StringVar(&namespace, "as", "", "bind a namespace import under this name")
	return cmd
}

func newImportsRmCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rm <file> <source> [name...]",
		Short: "Remove an import statement or named specifiers from it",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			filename, source := args[0], args[1]
			names := args[2:]

			e, err := loadEditor(filename)
			if err != nil {
				return err
			}
			im := e.Imports()

			if len(names) == 0 {
				if !im.Remove(source) {
					return fmt.Errorf("no import of %q in %s", source, filename)
				}
			} else {
				for _, name := range names {
					if !im.RemoveNamed(source, name) {
						return fmt.Errorf("name %q is not imported from %q", name, source)
					}
				}
			}

			return writeResult(filename, e)
		},
	}
}

func newImportsOrganizeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "organize <file>",
		Short: "Sort and group the leading import block",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			filename := args[0]

			e, err := loadEditor(filename)
			if err != nil {
				return err
			}
			if !e.Imports().Organize() {
				return nil
			}
			return writeResult(filename, e)
		},
	}
}
