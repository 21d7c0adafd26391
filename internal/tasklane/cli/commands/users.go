package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func UsersCmd(load Loader) *cobra.Command {
	return &cobra.Command{
		Use:   "users",
		Short: "List users that can be assigned",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := load()
			if err != nil {
				return err
			}
			for _, u := range app.Provider.ListUsers() {
				fmt.Fprintf(cmd.OutOrStdout(), "%s\tstatic/%s\n", u.Name, u.Image)
			}
			return nil
		},
	}
}
