package commands

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/mistakeknot/tasklane/internal/tasklane/present"
	"github.com/mistakeknot/tasklane/internal/tasklane/tasks"
	"github.com/spf13/cobra"
)

func ShowCmd(load Loader) *cobra.Command {
	var utc bool
	cmd := &cobra.Command{
		Use:   "show <id>",
		Short: "Show one task",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseUint(args[0], 10, 32)
			if err != nil {
				return fmt.Errorf("invalid task id %q", args[0])
			}
			app, err := load()
			if err != nil {
				return err
			}
			app.Board.SelectTask(uint32(id))
			task, err := app.Board.Detail()
			if errors.Is(err, tasks.ErrNotFound) {
				return fmt.Errorf("task %d not found: %w", id, err)
			}
			if err != nil {
				return err
			}
			loc := time.Local
			if utc {
				loc = time.UTC
			}
			writeTask(cmd.OutOrStdout(), task, loc)
			return nil
		},
	}
	cmd.Flags().BoolVar(&utc, "utc", false, "Print the due date in UTC")
	return cmd
}

func writeTask(w io.Writer, t tasks.Task, loc *time.Location) {
	fmt.Fprintf(w, "#%d %s\n", t.ID, t.Name)
	fmt.Fprintf(w, "Priority: %s\n", present.PriorityLabel(t.Priority))
	fmt.Fprintf(w, "Status:   %s\n", present.StatusLabel(t.Status))
	fmt.Fprintf(w, "Due Date: %s\n", present.FormatDate(t.DueDate, loc))
	if t.Description != "" {
		fmt.Fprintf(w, "\n%s\n", strings.TrimSpace(t.Description))
	}
	names := make([]string, len(t.AssignedTo))
	for i, u := range t.AssignedTo {
		names[i] = u.Name
	}
	if len(names) == 0 {
		names = []string{"nobody"}
	}
	fmt.Fprintf(w, "\nAssigned: %s\n", strings.Join(names, ", "))
	if len(t.Comments) > 0 {
		fmt.Fprintln(w, "\nComments:")
		for _, c := range t.Comments {
			fmt.Fprintf(w, "  %s: %s\n", c.User, c.Message)
		}
	}
}
