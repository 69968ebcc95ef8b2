package github

import (
	"fmt"

	"github.com/google/go-github/v73/github"

	"github.com/sevigo/stashbot/internal/core"
)

// maxDescriptionLength is GitHub's limit for commit status descriptions.
const maxDescriptionLength = 140

// StatusState maps a build outcome onto a GitHub commit status state.
func StatusState(o core.BuildOutcome) string {
	switch o {
	case core.OutcomeSuccessful:
		return "success"
	case core.OutcomeInProgress:
		return "pending"
	default:
		return "failure"
	}
}

func describe(status *core.CommitStatus) string {
	var verb string
	switch status.State {
	case core.OutcomeSuccessful:
		verb = "succeeded"
	case core.OutcomeInProgress:
		verb = "is running"
	default:
		verb = "failed"
	}
	desc := fmt.Sprintf("%s build #%d %s", status.Name, status.BuildNumber, verb)
	if len(desc) > maxDescriptionLength {
		desc = desc[:maxDescriptionLength]
	}
	return desc
}

func toRepoStatus(status *core.CommitStatus) *github.RepoStatus {
	rs := &github.RepoStatus{
		State:       github.Ptr(StatusState(status.State)),
		Context:     github.Ptr(status.Key),
		Description: github.Ptr(describe(status)),
	}
	if status.URL != "" {
		rs.TargetURL = github.Ptr(status.URL)
	}
	return rs
}
