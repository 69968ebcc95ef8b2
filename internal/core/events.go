// Package core defines the essential interfaces and data structures that form the
// backbone of the application. These components are designed to be abstract,
// allowing for flexible and decoupled implementations of the application's logic.
package core

import (
	"fmt"
	"strings"

	"github.com/google/go-github/v73/github"
)

// zeroHash is the commit id the host reports as the new value of a deleted ref.
const zeroHash = "0000000000000000000000000000000000000000"

// Repository is the internal view of a repository on the source host.
type Repository struct {
	ID       int64
	Owner    string
	Name     string
	FullName string
	HTMLURL  string
}

func (r *Repository) String() string {
	if r.FullName != "" {
		return r.FullName
	}
	return fmt.Sprintf("%s/%s", r.Owner, r.Name)
}

// PullRequest is the subset of a pull request the reporter needs.
type PullRequest struct {
	Number  int
	Title   string
	HTMLURL string
	HeadSHA string
	BaseRef string
}

// RefChange describes one updated branch or tag in a push.
type RefChange struct {
	RefID    string
	FromHash string
	ToHash   string
}

// IsDelete reports whether the ref was removed by the push.
func (c RefChange) IsDelete() bool {
	return c.ToHash == "" || c.ToHash == zeroHash
}

// PushEvent is a repository together with the refs a push updated.
type PushEvent struct {
	Repository     *Repository
	RefChanges     []RefChange
	InstallationID int64
}

// EventFromPush transforms a raw GitHub PushEvent into the application's
// internal PushEvent. GitHub delivers one event per updated ref, so the result
// always carries a single ref change.
func EventFromPush(event *github.PushEvent) (*PushEvent, error) {
	repo := event.GetRepo()
	if repo == nil || repo.GetID() == 0 || repo.GetName() == "" {
		return nil, fmt.Errorf("repository information is missing from the event")
	}

	owner := repo.GetOwner().GetLogin()
	if owner == "" {
		owner = repo.GetOwner().GetName()
	}
	if owner == "" {
		owner, _, _ = strings.Cut(repo.GetFullName(), "/")
	}
	if owner == "" {
		return nil, fmt.Errorf("repository owner is missing from the event")
	}

	if event.GetRef() == "" {
		return nil, fmt.Errorf("ref is missing from the event")
	}

	return &PushEvent{
		Repository: &Repository{
			ID:       repo.GetID(),
			Owner:    owner,
			Name:     repo.GetName(),
			FullName: repo.GetFullName(),
			HTMLURL:  repo.GetHTMLURL(),
		},
		RefChanges: []RefChange{{
			RefID:    event.GetRef(),
			FromHash: event.GetBefore(),
			ToHash:   event.GetAfter(),
		}},
		InstallationID: event.GetInstallation().GetID(),
	}, nil
}
