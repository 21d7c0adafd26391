package commands

import (
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"github.com/mistakeknot/tasklane/internal/tasklane/present"
	"github.com/mistakeknot/tasklane/internal/tasklane/tasks"
	"github.com/spf13/cobra"
)

func ListCmd(load Loader) *cobra.Command {
	var utc bool
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List tasks",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := load()
			if err != nil {
				return err
			}
			loc := time.Local
			if utc {
				loc = time.UTC
			}
			return writeTaskTable(cmd.OutOrStdout(), app.Board.Tasks(), loc)
		},
	}
	cmd.Flags().BoolVar(&utc, "utc", false, "Print due dates in UTC")
	return cmd
}

func writeTaskTable(w io.Writer, all []tasks.Task, loc *time.Location) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tPRIORITY\tNAME\tDUE\tSTATUS")
	for _, t := range all {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\n",
			t.ID,
			present.PriorityLabel(t.Priority),
			t.Name,
			present.FormatDate(t.DueDate, loc),
			present.StatusLabel(t.Status),
		)
	}
	return tw.Flush()
}
