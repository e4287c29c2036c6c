// Package git reads repository information for generated-sample metadata.
//
// This is a Tier 1 (Leaf) package: it imports only stdlib and go-git.
// The channel resolver deliberately does not use it — the porcelain status
// subprocess is part of the tool's contract — but metadata enrichment with
// the HEAD commit is best served by reading the repository directly.
package git

import (
	"errors"
	"fmt"

	gogit "github.com/go-git/go-git/v6"
	"github.com/go-git/go-git/v6/plumbing"
)

// ErrNotRepository is returned when the path is not inside a git repository.
var ErrNotRepository = errors.New("not a git repository")

// Repo wraps an opened repository.
type Repo struct {
	repo *gogit.Repository
}

// Info describes the repository state at HEAD.
type Info struct {
	Commit string
	Branch string // empty for detached HEAD
}

// Open opens the git repository containing path, walking up the directory
// tree to find the repository root.
func Open(path string) (*Repo, error) {
	repo, err := gogit.PlainOpenWithOptions(path, &gogit.PlainOpenOptions{
		DetectDotGit: true,
	})
	if err != nil {
		if errors.Is(err, gogit.ErrRepositoryNotExists) {
			return nil, fmt.Errorf("%w: %s", ErrNotRepository, path)
		}
		return nil, fmt.Errorf("opening repository at %s: %w", path, err)
	}
	return &Repo{repo: repo}, nil
}

// HeadInfo returns the HEAD commit hash and, unless detached, the branch.
func (r *Repo) HeadInfo() (*Info, error) {
	head, err := r.repo.Head()
	if err != nil {
		return nil, fmt.Errorf("getting HEAD: %w", err)
	}
	info := &Info{Commit: head.Hash().String()}
	if head.Name() != plumbing.HEAD {
		info.Branch = head.Name().Short()
	}
	return info, nil
}
