package main

import (
	"github.com/Belafon/WFUtilities-sub000/content"
	"github.com/Belafon/WFUtilities-sub000/fsys"
	"github.com/spf13/cobra"
)

func newDeleteCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delete",
		Short: "Delete world content",
	}
	cmd.AddCommand(newDeleteEventCmd())
	return cmd
}

func newDeleteEventCmd() *cobra.Command {
	var root string

	cmd := &cobra.Command{
		Use:   "event <name>",
		Short: "Delete an event file and unregister it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc := content.NewService(fsys.NewDiskFS(), printNotifier{}, root)
			return svc.DeleteEvent(args[0])
		},
	}

	cmd.Flags().StringVar(&root, "root", ".", "world content root directory")
	return cmd
}
