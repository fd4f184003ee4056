package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

// newListCommand creates the list subcommand that prints the grouped task
// list to stdout
func newListCommand(root *RootCommand) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "Print all tasks grouped by category",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			repo, tasks, listing, err := root.openServices()
			if err != nil {
				return err
			}
			defer repo.Close()

			ctx, cancel := context.WithTimeout(context.Background(), root.getAppTimeout())
			defer cancel()

			all, err := tasks.ListAll(ctx)
			if err != nil {
				return err
			}

			// Chunking exists for the transport; stdout gets the full text
			out := cmd.OutOrStdout()
			for _, chunk := range listing.RenderList(all) {
				fmt.Fprint(out, chunk)
			}
			fmt.Fprintln(out)
			return nil
		},
	}
}
