// Package vcs refreshes tags in the Syncthing source checkout. build.go
// derives the version it stamps into the binary from the latest tag.
package vcs

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"

	"github.com/go-git/go-git/v5"

	"github.com/syncthing-android/nativebuild/pkg/core"
)

// DefaultRemote is the remote tags are fetched from
const DefaultRemote = "origin"

// GitFetcher runs "git -C <dir> fetch --tags" through a core.Runner.
type GitFetcher struct {
	Runner core.Runner
	Git    string   // git executable, "git" if empty
	Env    []string // subprocess environment, nil for the current one
}

// FetchTags implements core.TagFetcher.
func (f *GitFetcher) FetchTags(ctx context.Context, dir string) error {
	bin := f.Git
	if bin == "" {
		bin = "git"
	}
	return f.Runner.Run(ctx, core.Command{
		Args: []string{bin, "-C", dir, "fetch", "--tags"},
		Env:  f.Env,
	})
}

// GoGitFetcher fetches tags in-process, for hosts without a git binary.
type GoGitFetcher struct {
	Remote   string    // remote name, DefaultRemote if empty
	Progress io.Writer // sideband progress, nil to discard
	Logger   *log.Logger
}

// FetchTags implements core.TagFetcher.
func (f *GoGitFetcher) FetchTags(ctx context.Context, dir string) error {
	remote := f.Remote
	if remote == "" {
		remote = DefaultRemote
	}

	repo, err := git.PlainOpen(dir)
	if err != nil {
		return fmt.Errorf("opening repository %s: %w", dir, err)
	}

	if f.Logger != nil {
		f.Logger.Printf("fetching tags from %s in %s", remote, dir)
	}

	err = repo.FetchContext(ctx, &git.FetchOptions{
		RemoteName: remote,
		Tags:       git.AllTags,
		Progress:   f.Progress,
	})
	if errors.Is(err, git.NoErrAlreadyUpToDate) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("git fetch %s failed: %w", remote, err)
	}
	return nil
}

// New returns the fetcher named by kind (core.FetcherGit or core.FetcherGoGit).
func New(kind string, runner core.Runner, gitBinary string, env []string, logger *log.Logger) (core.TagFetcher, error) {
	switch kind {
	case "", core.FetcherGit:
		return &GitFetcher{Runner: runner, Git: gitBinary, Env: env}, nil
	case core.FetcherGoGit:
		return &GoGitFetcher{Logger: logger}, nil
	default:
		return nil, fmt.Errorf("unsupported fetcher: %s", kind)
	}
}
