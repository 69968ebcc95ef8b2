package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testHead      = "38356e8abe0e97648dd1007278ecc02c3bf3d2cb"
	testMergeHead = "cac9954e06013073c1bf9e17b2c1c919095817dc"
)

func TestParseNotificationPath(t *testing.T) {
	tests := []struct {
		name    string
		path    string
		want    *BuildNotification
		wantErr bool
	}{
		{
			name: "commit only with empty trailing segments",
			path: "/1/VERIFICATION/SUCCESSFUL/12345/" + testHead + "//",
			want: &BuildNotification{RepoID: 1, Kind: BuildVerification, Outcome: OutcomeSuccessful, BuildNumber: 12345, BuildHead: testHead},
		},
		{
			name: "whitespace segments count as empty",
			path: "/1/VERIFICATION/SUCCESSFUL/12345/" + testHead + "/ /",
			want: &BuildNotification{RepoID: 1, Kind: BuildVerification, Outcome: OutcomeSuccessful, BuildNumber: 12345, BuildHead: testHead},
		},
		{
			name: "trailing segments omitted",
			path: "/1/PUBLISH/INPROGRESS/7/" + testHead,
			want: &BuildNotification{RepoID: 1, Kind: BuildPublish, Outcome: OutcomeInProgress, BuildNumber: 7, BuildHead: testHead},
		},
		{
			name: "merge build",
			path: "/1/VERIFICATION/FAILED/12345/" + testHead + "/" + testMergeHead + "/1234",
			want: &BuildNotification{
				RepoID: 1, Kind: BuildVerification, Outcome: OutcomeFailed, BuildNumber: 12345,
				BuildHead: testHead, MergeHead: testMergeHead, PullRequestID: 1234,
			},
		},
		{name: "too short", path: "/1/VERIFICATION/SUCCESSFUL/12345", wantErr: true},
		{name: "bad repo id", path: "/x/VERIFICATION/SUCCESSFUL/12345/" + testHead, wantErr: true},
		{name: "bad kind", path: "/1/DEPLOY/SUCCESSFUL/12345/" + testHead, wantErr: true},
		{name: "bad outcome", path: "/1/VERIFICATION/ABORTED/12345/" + testHead, wantErr: true},
		{name: "bad build number", path: "/1/VERIFICATION/SUCCESSFUL/abc/" + testHead, wantErr: true},
		{name: "non hex head", path: "/1/VERIFICATION/SUCCESSFUL/1/not-a-sha", wantErr: true},
		{name: "bad pull request id", path: "/1/VERIFICATION/SUCCESSFUL/1/" + testHead + "/" + testMergeHead + "/-3", wantErr: true},
		{name: "extra segment", path: "/1/VERIFICATION/SUCCESSFUL/1/" + testHead + "/" + testMergeHead + "/3/extra", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseNotificationPath(tt.path)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidNotification)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNotificationPathRoundTrip(t *testing.T) {
	n := &BuildNotification{
		RepoID: 9, Kind: BuildPublish, Outcome: OutcomeSuccessful, BuildNumber: 3,
		BuildHead: testHead, MergeHead: testMergeHead, PullRequestID: 12,
	}
	got, err := ParseNotificationPath(n.Path())
	require.NoError(t, err)
	assert.Equal(t, n, got)
	assert.True(t, got.HasMergeTarget())
}

func TestHasMergeTargetNeedsBothParts(t *testing.T) {
	assert.False(t, (&BuildNotification{MergeHead: testMergeHead}).HasMergeTarget())
	assert.False(t, (&BuildNotification{PullRequestID: 4}).HasMergeTarget())
}
