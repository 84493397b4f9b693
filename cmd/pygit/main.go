package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"pygit/pkg/logging"
	"pygit/pkg/repo"
)

// verbose toggles debug-level tracing of object writes, ref updates, and
// checkout file operations via the -v/--verbose root flag.
var verbose bool

func main() {
	root := &cobra.Command{
		Use:   "pygit",
		Short: "A minimal, local-only version control engine",
	}
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "emit debug-level traces")

	root.AddCommand(newVersionCmd())
	root.AddCommand(newInitCmd())
	root.AddCommand(newAddCmd())
	root.AddCommand(newStatusCmd())
	root.AddCommand(newCommitCmd())
	root.AddCommand(newLogCmd())
	root.AddCommand(newBranchCmd())
	root.AddCommand(newCheckoutCmd())

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println("pygit 0.1.0-dev")
		},
	}
}

// openRepo opens the repository rooted at path and attaches a logger when
// -v/--verbose was passed; otherwise operations log nowhere.
func openRepo(path string) (*repo.Repo, error) {
	r, err := repo.Open(path)
	if err != nil {
		return nil, err
	}
	return attachLogger(r), nil
}

func attachLogger(r *repo.Repo) *repo.Repo {
	if !verbose {
		return r
	}
	l, err := logging.New("debug")
	if err != nil {
		return r
	}
	return r.WithLogger(l)
}
