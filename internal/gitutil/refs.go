// Package gitutil reads refs from local Git repositories so that pushes can
// be replayed without a webhook.
package gitutil

import (
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"strings"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"

	"github.com/sevigo/stashbot/internal/core"
)

// Client handles interacting with Git repositories.
type Client struct {
	Logger *slog.Logger
}

// NewClient returns a new Client instance.
func NewClient(logger *slog.Logger) *Client {
	if logger == nil {
		logger = slog.Default()
	}
	return &Client{Logger: logger}
}

// Open opens a Git repository at a given path.
func (c *Client) Open(path string) (*git.Repository, error) {
	repo, err := git.PlainOpen(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open repository at %s: %w", path, err)
	}
	return repo, nil
}

// RefChanges describes the current tips of the given refs as if they had just
// been pushed. Short names are looked up under refs/heads/ and then
// refs/tags/. Without names every local branch is returned, sorted by name.
func (c *Client) RefChanges(path string, names []string) ([]core.RefChange, error) {
	repo, err := c.Open(path)
	if err != nil {
		return nil, err
	}

	if len(names) == 0 {
		return c.branchChanges(repo)
	}

	changes := make([]core.RefChange, 0, len(names))
	for _, name := range names {
		ref, err := resolveRef(repo, name)
		if err != nil {
			return nil, err
		}
		hash, err := commitHash(repo, ref)
		if err != nil {
			return nil, err
		}
		changes = append(changes, core.RefChange{RefID: ref.Name().String(), ToHash: hash})
	}
	return changes, nil
}

func (c *Client) branchChanges(repo *git.Repository) ([]core.RefChange, error) {
	iter, err := repo.Branches()
	if err != nil {
		return nil, fmt.Errorf("failed to list branches: %w", err)
	}
	defer iter.Close()

	var changes []core.RefChange
	err = iter.ForEach(func(ref *plumbing.Reference) error {
		changes = append(changes, core.RefChange{RefID: ref.Name().String(), ToHash: ref.Hash().String()})
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to read branches: %w", err)
	}
	sort.Slice(changes, func(i, j int) bool { return changes[i].RefID < changes[j].RefID })
	c.Logger.Debug("read local branches", "count", len(changes))
	return changes, nil
}

func resolveRef(repo *git.Repository, name string) (*plumbing.Reference, error) {
	candidates := []string{name}
	if !strings.HasPrefix(name, "refs/") {
		candidates = []string{"refs/heads/" + name, "refs/tags/" + name}
	}
	for _, candidate := range candidates {
		ref, err := repo.Reference(plumbing.ReferenceName(candidate), true)
		if err == nil {
			return ref, nil
		}
		if !errors.Is(err, plumbing.ErrReferenceNotFound) {
			return nil, fmt.Errorf("failed to resolve %s: %w", candidate, err)
		}
	}
	return nil, fmt.Errorf("ref %q not found", name)
}

// commitHash peels annotated tags down to the commit they point at.
func commitHash(repo *git.Repository, ref *plumbing.Reference) (string, error) {
	tag, err := repo.TagObject(ref.Hash())
	switch {
	case err == nil:
		commit, err := tag.Commit()
		if err != nil {
			return "", fmt.Errorf("tag %s does not point at a commit: %w", ref.Name(), err)
		}
		return commit.Hash.String(), nil
	case errors.Is(err, plumbing.ErrObjectNotFound):
		return ref.Hash().String(), nil
	default:
		return "", fmt.Errorf("failed to read %s: %w", ref.Name(), err)
	}
}
