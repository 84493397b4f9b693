// Package repo implements the high-level pygit commands (init, add, commit,
// checkout, branch, log, status) on top of the content-addressed object
// store in pkg/object.
package repo

import (
	"pygit/pkg/logging"
	"pygit/pkg/object"
)

// metaDirName is the repository metadata directory's name.
const metaDirName = ".git"

// Repo represents an opened pygit repository.
type Repo struct {
	RootDir string        // working directory root
	GitDir  string        // .git/ directory
	Store   *object.Store // content-addressed object store

	log *logging.Logger
}

// WithLogger attaches a structured logger; operations emit debug-level
// traces through it (object writes, ref updates, checkout file ops). A
// repo opened without calling this logs nowhere.
func (r *Repo) WithLogger(l *logging.Logger) *Repo {
	r.log = l
	return r
}

func (r *Repo) logger() *logging.Logger {
	if r.log == nil {
		return logging.Discard()
	}
	return r.log
}
