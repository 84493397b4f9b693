package main

import (
	"fmt"
	"os"
	"path/filepath"

	"pygit/pkg/config"
	"pygit/pkg/repo"

	"github.com/spf13/cobra"
)

func newInitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init [path]",
		Short: "Create an empty pygit repository",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := "."
			if len(args) > 0 {
				path = args[0]
			}

			abs, err := filepath.Abs(path)
			if err != nil {
				return fmt.Errorf("resolve path: %w", err)
			}
			if err := os.MkdirAll(abs, 0o755); err != nil {
				return fmt.Errorf("create directory: %w", err)
			}

			r, created, err := repo.Init(abs, config.DefaultBranch)
			if err != nil {
				return err
			}
			r = attachLogger(r)
			if !created {
				fmt.Fprintf(cmd.OutOrStdout(), "repository already exists in %s\n", r.GitDir+string(filepath.Separator))
				return nil
			}

			fmt.Fprintf(cmd.OutOrStdout(), "initialized empty pygit repository in %s\n", r.GitDir+string(filepath.Separator))
			return nil
		},
	}
}
