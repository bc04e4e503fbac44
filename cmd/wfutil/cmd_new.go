package main

import (
	"github.com/Belafon/WFUtilities-sub000/content"
	"github.com/Belafon/WFUtilities-sub000/fsys"
	"github.com/spf13/cobra"
)

func newNewCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "new",
		Short: "Create new world content",
	}
	cmd.AddCommand(newNewEventCmd())
	return cmd
}

func newNewEventCmd() *cobra.Command {
	var title string
	var root string

	cmd := &cobra.Command{
		Use:   "event <name>",
		Short: "Create an event file and register it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc := content.NewService(fsys.NewDiskFS(), printNotifier{}, root)
			return svc.CreateEvent(args[0], title)
		},
	}

	cmd.Flags().StringVar(&title, "title", "", "display title for the event")
	cmd.Flags().StringVar(&root, "root", ".", "world content root directory")
	return cmd
}
