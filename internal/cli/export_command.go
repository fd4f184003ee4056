package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// newExportCommand creates the export subcommand that writes the CSV
// artifact to stdout or a file
func newExportCommand(root *RootCommand) *cobra.Command {
	var outputPath string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export all tasks as CSV",
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

			if len(all) == 0 {
				fmt.Fprintln(cmd.ErrOrStderr(), "The task list is empty. Nothing to export.")
				return nil
			}

			data, err := listing.RenderCSV(all)
			if err != nil {
				return err
			}

			if outputPath == "" {
				_, err = cmd.OutOrStdout().Write(data)
				return err
			}
			return os.WriteFile(outputPath, data, 0644)
		},
	}

	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "Write the CSV to a file instead of stdout")
	return cmd
}
