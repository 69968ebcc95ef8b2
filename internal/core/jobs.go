// Package core defines the essential interfaces and data structures that form the
// backbone of the application. These components are designed to be abstract,
// allowing for flexible and decoupled implementations of the application's logic.
package core

import (
	"context"
)

// JobDispatcher defines the contract for a system that can accept and queue
// push events for asynchronous processing. This interface decouples the
// event source (e.g., a webhook handler) from the job execution mechanism.
//
//go:generate mockgen -destination=../../mocks/mock_dispatcher.go -package=mocks . JobDispatcher
type JobDispatcher interface {
	// Dispatch accepts a PushEvent and queues it for processing.
	// It returns an error if the job cannot be queued, for example, if the
	// queue is full, providing a mechanism for backpressure.
	Dispatch(ctx context.Context, event *PushEvent) error
}

// Job represents a single, executable unit of work that can be processed by the
// application's job dispatcher. Each job is triggered by a PushEvent.
type Job interface {
	// Run executes the job's logic. It returns an error only when the event
	// could not be processed at all.
	Run(ctx context.Context, event *PushEvent) error
}

// BuildTrigger starts a build on the CI server. The caller does not wait for
// the build; an error only means the request was not accepted.
//
//go:generate mockgen -destination=../../mocks/mock_build_trigger.go -package=mocks . BuildTrigger
type BuildTrigger interface {
	TriggerBuild(ctx context.Context, repo *Repository, kind BuildKind, commitHash string) error
}

// CommitStatus is a build result attached to a commit on the source host.
type CommitStatus struct {
	Key         string
	Name        string
	State       BuildOutcome
	URL         string
	BuildNumber int64
}

// SourceHost is the part of the source-control host the application talks to.
//
//go:generate mockgen -destination=../../mocks/mock_source_host.go -package=mocks . SourceHost
type SourceHost interface {
	GetRepositoryByID(ctx context.Context, id int64) (*Repository, error)
	GetPullRequest(ctx context.Context, repo *Repository, number int) (*PullRequest, error)
	SetCommitStatus(ctx context.Context, repo *Repository, commitHash string, status *CommitStatus) error
	AddPullRequestComment(ctx context.Context, repo *Repository, number int, text string) error
}
