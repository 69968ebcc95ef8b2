package core

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

var commitHashRegexp = regexp.MustCompile(`^[0-9a-fA-F]{4,64}$`)

// BuildNotification is a decoded build-completion callback from Jenkins.
type BuildNotification struct {
	RepoID        int64
	Kind          BuildKind
	Outcome       BuildOutcome
	BuildNumber   int64
	BuildHead     string
	MergeHead     string
	PullRequestID int64
}

// HasMergeTarget reports whether the build tested a pull request merge
// preview, in which case the pull request gets a comment as well.
func (n *BuildNotification) HasMergeTarget() bool {
	return n.MergeHead != "" && n.PullRequestID > 0
}

// Path renders the notification in the callback path layout.
func (n *BuildNotification) Path() string {
	pr := ""
	if n.PullRequestID > 0 {
		pr = strconv.FormatInt(n.PullRequestID, 10)
	}
	return fmt.Sprintf("/%d/%s/%s/%d/%s/%s/%s",
		n.RepoID, n.Kind, n.Outcome, n.BuildNumber, n.BuildHead, n.MergeHead, pr)
}

// ParseNotificationPath decodes a callback path of the form
//
//	/REPO_ID/KIND/OUTCOME/BUILD_NUMBER/BUILD_HEAD[/MERGE_HEAD[/PULL_REQUEST_ID]]
//
// The two trailing segments may be empty or missing. Segments holding only
// whitespace count as empty.
func ParseNotificationPath(path string) (*BuildNotification, error) {
	parts := strings.Split(strings.TrimPrefix(path, "/"), "/")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	if len(parts) < 5 {
		return nil, fmt.Errorf("%w: expected at least 5 path segments, got %d", ErrInvalidNotification, len(parts))
	}
	for _, extra := range parts[min(len(parts), 7):] {
		if extra != "" {
			return nil, fmt.Errorf("%w: unexpected trailing segment %q", ErrInvalidNotification, extra)
		}
	}

	repoID, err := strconv.ParseInt(parts[0], 10, 64)
	if err != nil || repoID <= 0 {
		return nil, fmt.Errorf("%w: bad repository id %q", ErrInvalidNotification, parts[0])
	}
	kind, err := ParseBuildKind(parts[1])
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidNotification, err)
	}
	outcome, err := ParseBuildOutcome(parts[2])
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidNotification, err)
	}
	buildNumber, err := strconv.ParseInt(parts[3], 10, 64)
	if err != nil || buildNumber < 0 {
		return nil, fmt.Errorf("%w: bad build number %q", ErrInvalidNotification, parts[3])
	}
	if !commitHashRegexp.MatchString(parts[4]) {
		return nil, fmt.Errorf("%w: bad build head %q", ErrInvalidNotification, parts[4])
	}

	n := &BuildNotification{
		RepoID:      repoID,
		Kind:        kind,
		Outcome:     outcome,
		BuildNumber: buildNumber,
		BuildHead:   parts[4],
	}

	if len(parts) > 5 && parts[5] != "" {
		if !commitHashRegexp.MatchString(parts[5]) {
			return nil, fmt.Errorf("%w: bad merge head %q", ErrInvalidNotification, parts[5])
		}
		n.MergeHead = parts[5]
	}
	if len(parts) > 6 && parts[6] != "" {
		prID, err := strconv.ParseInt(parts[6], 10, 64)
		if err != nil || prID <= 0 {
			return nil, fmt.Errorf("%w: bad pull request id %q", ErrInvalidNotification, parts[6])
		}
		n.PullRequestID = prID
	}
	return n, nil
}
