package main

import (
	"errors"
	"fmt"

	"pygit/pkg/config"
	"pygit/pkg/repo"

	"github.com/spf13/cobra"
)

func newCommitCmd() *cobra.Command {
	var message string
	var author string

	cmd := &cobra.Command{
		Use:   "commit",
		Short: "Record the staged changes to the repository",
		RunE: func(cmd *cobra.Command, args []string) error {
			if message == "" {
				return fmt.Errorf("commit message is required (-m)")
			}

			r, err := openRepo(".")
			if err != nil {
				return err
			}

			cfg, err := config.Load(r.GitDir)
			if err != nil {
				return err
			}
			identity := cfg.Author(config.DefaultAuthor)
			if author != "" {
				identity = author
			}

			h, err := r.Commit(message, identity)
			if err != nil {
				if errors.Is(err, repo.ErrNothingToCommit) {
					fmt.Fprintln(cmd.OutOrStdout(), "nothing to commit")
					return nil
				}
				return err
			}

			branch, err := r.Head()
			if err != nil {
				return err
			}

			short := string(h)
			if len(short) > 8 {
				short = short[:8]
			}

			fmt.Fprintf(cmd.OutOrStdout(), "[%s %s] %s\n", branch, short, message)
			return nil
		},
	}

	cmd.Flags().StringVarP(&message, "message", "m", "", "commit message")
	cmd.Flags().StringVar(&author, "author", "", "override the commit identity (default: config or "+config.DefaultAuthor+")")

	return cmd
}
