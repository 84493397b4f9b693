package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
)

func newStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show index and working tree status",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := openRepo(".")
			if err != nil {
				return err
			}

			branch, err := r.Head()
			if err != nil {
				return err
			}
			headCommit, err := r.BranchCommit(branch)
			if err != nil {
				return err
			}

			st, err := r.Status()
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if headCommit == "" {
				fmt.Fprintf(out, "on %s (no commits yet)\n", branch)
			} else {
				fmt.Fprintf(out, "on %s\n", branch)
			}

			printSection(out, "changes to be committed", st.ToBeCommitted)
			printSection(out, "changes not staged for commit", st.NotStaged)
			printSection(out, "untracked files", st.Untracked)
			printSection(out, "deleted", st.Deleted)

			return nil
		},
	}
}

func printSection(out io.Writer, title string, paths []string) {
	if len(paths) == 0 {
		return
	}
	fmt.Fprintln(out)
	fmt.Fprintf(out, "%s:\n", title)
	for _, p := range paths {
		fmt.Fprintf(out, "  %s\n", p)
	}
}
