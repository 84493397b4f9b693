// Package config resolves repository-local settings layered above the
// core object/index/tree/commit engine: the default author identity and
// default branch name. It is a thin, optional convenience layer -- the
// CLI's own hardcoded defaults apply when no config file is present.
package config

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// DefaultAuthor is used when neither a config file nor a --author flag
// supplies an identity.
const DefaultAuthor = "PyGit user <user@pygit.com>"

// DefaultBranch is the branch `init` creates HEAD to point at.
const DefaultBranch = "master"

// DefaultLogCount is how many entries `log` prints when -n is omitted.
const DefaultLogCount = 10

// User holds identity settings.
type User struct {
	Name  string `toml:"name"`
	Email string `toml:"email"`
}

// Init holds settings that apply at repository creation time.
type Init struct {
	DefaultBranch string `toml:"defaultBranch"`
}

// Config is the parsed form of <repo>/.git/config.toml.
type Config struct {
	User User `toml:"user"`
	Init Init `toml:"init"`
}

// fileName is the config file's path relative to the .git directory.
const fileName = "config.toml"

// Load reads <gitDir>/config.toml. A missing file is not an error: it
// yields a zero-value Config so callers can fall back to their own
// defaults.
func Load(gitDir string) (*Config, error) {
	path := filepath.Join(gitDir, fileName)
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &Config{}, nil
		}
		return nil, err
	}

	var cfg Config
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Author returns the identity string to stamp on a commit: the config
// file's user, if set, otherwise fallback.
func (c *Config) Author(fallback string) string {
	if c == nil || c.User.Name == "" {
		return fallback
	}
	if c.User.Email == "" {
		return c.User.Name
	}
	return c.User.Name + " <" + c.User.Email + ">"
}

// Branch returns the default initial branch name: the config file's
// init.defaultBranch, if set, otherwise fallback.
func (c *Config) Branch(fallback string) string {
	if c == nil || c.Init.DefaultBranch == "" {
		return fallback
	}
	return c.Init.DefaultBranch
}
