package core

import (
	"fmt"
	"regexp"
	"strings"
)

// BuildKind selects which branch rule matched a ref and which Jenkins job is run.
type BuildKind string

const (
	// BuildVerification runs the checks for a commit without merging it.
	BuildVerification BuildKind = "VERIFICATION"
	// BuildPublish runs a build intended to merge or publish a commit.
	BuildPublish BuildKind = "PUBLISH"
)

// BuildKinds lists every build kind in a stable order.
var BuildKinds = []BuildKind{BuildVerification, BuildPublish}

// ParseBuildKind converts a path or flag token into a BuildKind.
func ParseBuildKind(s string) (BuildKind, error) {
	switch BuildKind(strings.ToUpper(strings.TrimSpace(s))) {
	case BuildVerification:
		return BuildVerification, nil
	case BuildPublish:
		return BuildPublish, nil
	default:
		return "", fmt.Errorf("unknown build kind %q", s)
	}
}

func (k BuildKind) String() string {
	return string(k)
}

var labelRegexp = regexp.MustCompile("[^a-z0-9_-]+")

// LabelFor derives the per-repository name of a build kind. It is used both as
// the commit status key and as the Jenkins job name, so it must stay stable.
func (k BuildKind) LabelFor(repo *Repository) string {
	label := strings.ToLower(fmt.Sprintf("%s_%s_%s", repo.Owner, repo.Name, k))
	return labelRegexp.ReplaceAllString(label, "-")
}

// BuildOutcome mirrors the states accepted by the host's commit status API.
type BuildOutcome string

const (
	OutcomeSuccessful BuildOutcome = "SUCCESSFUL"
	OutcomeInProgress BuildOutcome = "IN_PROGRESS"
	OutcomeFailed     BuildOutcome = "FAILED"
)

// BuildOutcomes lists every outcome in a stable order.
var BuildOutcomes = []BuildOutcome{OutcomeSuccessful, OutcomeInProgress, OutcomeFailed}

// ParseBuildOutcome converts a path token into a BuildOutcome.
// "INPROGRESS" is accepted for Jenkins scripts written against Stash.
func ParseBuildOutcome(s string) (BuildOutcome, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case string(OutcomeSuccessful):
		return OutcomeSuccessful, nil
	case string(OutcomeInProgress), "INPROGRESS":
		return OutcomeInProgress, nil
	case string(OutcomeFailed):
		return OutcomeFailed, nil
	default:
		return "", fmt.Errorf("unknown build outcome %q", s)
	}
}

func (o BuildOutcome) String() string {
	return string(o)
}

// Marker is the token placed in pull request comments so that readers and
// bots can tell outcomes apart without parsing the prose.
func (o BuildOutcome) Marker() string {
	return "==" + string(o) + "=="
}
