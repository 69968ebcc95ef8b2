package jobs

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/sevigo/stashbot/internal/core"
	"github.com/sevigo/stashbot/internal/logger"
	"github.com/sevigo/stashbot/mocks"
)

var testRepo = &core.Repository{ID: 1, Owner: "projectKey", Name: "slug", FullName: "projectKey/slug"}

func repoConfig(enabled bool, publish, verify string) *core.RepoConfig {
	rc := core.DefaultRepoConfig(testRepo.ID)
	rc.CIEnabled = enabled
	rc.PublishBranchRegex = publish
	rc.VerifyBranchRegex = verify
	return rc
}

func push(changes ...core.RefChange) *core.PushEvent {
	return &core.PushEvent{Repository: testRepo, RefChanges: changes}
}

func TestDispatch_PublishWinsOverVerify(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := mocks.NewMockConfigStore(ctrl)
	trigger := mocks.NewMockBuildTrigger(ctrl)

	store.EXPECT().GetRepoConfig(gomock.Any(), testRepo.ID).Return(repoConfig(true, "refs/heads/master", ".*"), nil)
	trigger.EXPECT().TriggerBuild(gomock.Any(), testRepo, core.BuildPublish, "abc123").Return(nil).Times(1)

	job := NewBuildTriggerJob(store, trigger, logger.Discard())
	result, err := job.Dispatch(context.Background(), push(core.RefChange{RefID: "refs/heads/master", ToHash: "abc123"}))
	require.NoError(t, err)

	require.Len(t, result.Triggered, 1)
	assert.Equal(t, core.BuildPublish, result.Triggered[0].Kind)
	assert.Empty(t, result.Failed)
}

func TestDispatch_VerifyOnlyMatch(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := mocks.NewMockConfigStore(ctrl)
	trigger := mocks.NewMockBuildTrigger(ctrl)

	store.EXPECT().GetRepoConfig(gomock.Any(), testRepo.ID).Return(repoConfig(true, "refs/heads/master", "refs/heads/feature/.*"), nil)
	trigger.EXPECT().TriggerBuild(gomock.Any(), testRepo, core.BuildVerification, "def456").Return(nil).Times(1)

	job := NewBuildTriggerJob(store, trigger, logger.Discard())
	err := job.Run(context.Background(), push(core.RefChange{RefID: "refs/heads/feature/x", ToHash: "def456"}))
	require.NoError(t, err)
}

func TestDispatch_CIDisabled(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := mocks.NewMockConfigStore(ctrl)
	trigger := mocks.NewMockBuildTrigger(ctrl)

	store.EXPECT().GetRepoConfig(gomock.Any(), testRepo.ID).Return(repoConfig(false, ".*", ".*"), nil)
	trigger.EXPECT().TriggerBuild(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	job := NewBuildTriggerJob(store, trigger, logger.Discard())
	result, err := job.Dispatch(context.Background(), push(
		core.RefChange{RefID: "refs/heads/master", ToHash: "abc123"},
		core.RefChange{RefID: "refs/heads/dev", ToHash: "def456"},
	))
	require.NoError(t, err)
	assert.Empty(t, result.Triggered)
}

func TestDispatch_ConfigLookupFailureTriggersNothing(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := mocks.NewMockConfigStore(ctrl)
	trigger := mocks.NewMockBuildTrigger(ctrl)

	boom := errors.New("database unavailable")
	store.EXPECT().GetRepoConfig(gomock.Any(), testRepo.ID).Return(nil, boom)
	trigger.EXPECT().TriggerBuild(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	job := NewBuildTriggerJob(store, trigger, logger.Discard())
	err := job.Run(context.Background(), push(core.RefChange{RefID: "refs/heads/master", ToHash: "abc123"}))
	assert.ErrorIs(t, err, boom)
}

func TestDispatch_EmptyAndInvalidRegexNeverMatch(t *testing.T) {
	tests := []struct {
		name    string
		publish string
		verify  string
	}{
		{name: "both empty", publish: "", verify: ""},
		{name: "invalid publish, empty verify", publish: "refs/heads/(", verify: ""},
		{name: "both invalid", publish: "[", verify: "*"},
		{name: "unbalanced publish valid once anchored", publish: "refs/heads/x)|(.*", verify: ""},
		{name: "unbalanced verify valid once anchored", publish: "", verify: "refs/heads/x)|(.*"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			store := mocks.NewMockConfigStore(ctrl)
			trigger := mocks.NewMockBuildTrigger(ctrl)

			store.EXPECT().GetRepoConfig(gomock.Any(), testRepo.ID).Return(repoConfig(true, tt.publish, tt.verify), nil)
			trigger.EXPECT().TriggerBuild(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

			job := NewBuildTriggerJob(store, trigger, logger.Discard())
			result, err := job.Dispatch(context.Background(), push(
				core.RefChange{RefID: "refs/heads/master", ToHash: "abc123"},
				core.RefChange{RefID: "refs/tags/v9", ToHash: "abc125"},
				core.RefChange{RefID: "", ToHash: "abc124"},
			))
			require.NoError(t, err)
			assert.Empty(t, result.Triggered)
		})
	}
}

func TestDispatch_RegexMustMatchWholeRef(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := mocks.NewMockConfigStore(ctrl)
	trigger := mocks.NewMockBuildTrigger(ctrl)

	store.EXPECT().GetRepoConfig(gomock.Any(), testRepo.ID).Return(repoConfig(true, "refs/heads/master", "refs/heads/dev"), nil)
	trigger.EXPECT().TriggerBuild(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	job := NewBuildTriggerJob(store, trigger, logger.Discard())
	result, err := job.Dispatch(context.Background(), push(
		core.RefChange{RefID: "refs/heads/master-old", ToHash: "abc123"},
		core.RefChange{RefID: "refs/heads/development", ToHash: "abc124"},
	))
	require.NoError(t, err)
	assert.Empty(t, result.Triggered)
}

func TestDispatch_TriggerFailureIsIsolated(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := mocks.NewMockConfigStore(ctrl)
	trigger := mocks.NewMockBuildTrigger(ctrl)

	store.EXPECT().GetRepoConfig(gomock.Any(), testRepo.ID).Return(repoConfig(true, "refs/heads/master", "refs/heads/.*"), nil)
	trigger.EXPECT().TriggerBuild(gomock.Any(), testRepo, core.BuildPublish, "aaa111").Return(errors.New("jenkins down"))
	trigger.EXPECT().TriggerBuild(gomock.Any(), testRepo, core.BuildVerification, "bbb222").Return(nil)
	trigger.EXPECT().TriggerBuild(gomock.Any(), testRepo, core.BuildVerification, "ccc333").Return(nil)

	job := NewBuildTriggerJob(store, trigger, logger.Discard())
	result, err := job.Dispatch(context.Background(), push(
		core.RefChange{RefID: "refs/heads/master", ToHash: "aaa111"},
		core.RefChange{RefID: "refs/heads/a", ToHash: "bbb222"},
		core.RefChange{RefID: "refs/tags/v1", ToHash: "ddd444"},
		core.RefChange{RefID: "refs/heads/b", ToHash: "ccc333"},
	))
	require.NoError(t, err)

	require.Len(t, result.Failed, 1)
	assert.Equal(t, "refs/heads/master", result.Failed[0].RefID)
	require.Len(t, result.Triggered, 2)
	assert.Equal(t, "refs/heads/a", result.Triggered[0].RefID)
	assert.Equal(t, "refs/heads/b", result.Triggered[1].RefID)
}

func TestDispatch_TriggerPanicIsIsolated(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := mocks.NewMockConfigStore(ctrl)
	trigger := mocks.NewMockBuildTrigger(ctrl)

	store.EXPECT().GetRepoConfig(gomock.Any(), testRepo.ID).Return(repoConfig(true, "", "refs/heads/.*"), nil)
	trigger.EXPECT().TriggerBuild(gomock.Any(), testRepo, core.BuildVerification, "aaa111").
		DoAndReturn(func(context.Context, *core.Repository, core.BuildKind, string) error {
			panic("nil server")
		})
	trigger.EXPECT().TriggerBuild(gomock.Any(), testRepo, core.BuildVerification, "bbb222").Return(nil)

	job := NewBuildTriggerJob(store, trigger, logger.Discard())
	var result *DispatchResult
	require.NotPanics(t, func() {
		var err error
		result, err = job.Dispatch(context.Background(), push(
			core.RefChange{RefID: "refs/heads/a", ToHash: "aaa111"},
			core.RefChange{RefID: "refs/heads/b", ToHash: "bbb222"},
		))
		require.NoError(t, err)
	})

	require.Len(t, result.Failed, 1)
	assert.Equal(t, "refs/heads/a", result.Failed[0].RefID)
	assert.ErrorContains(t, result.Failed[0].Err, "nil server")
	require.Len(t, result.Triggered, 1)
	assert.Equal(t, "refs/heads/b", result.Triggered[0].RefID)
}

func TestDispatchResult_JSONCarriesErrorText(t *testing.T) {
	result := &DispatchResult{
		Triggered: []Trigger{{RefID: "refs/heads/a", Kind: core.BuildVerification, Commit: "aaa111"}},
		Failed:    []Trigger{{RefID: "refs/heads/master", Kind: core.BuildPublish, Commit: "bbb222", Err: errors.New("jenkins down")}},
	}

	data, err := json.Marshal(result)
	require.NoError(t, err)

	assert.JSONEq(t, `{
		"triggered": [{"ref_id": "refs/heads/a", "kind": "VERIFICATION", "commit": "aaa111"}],
		"failed": [{"ref_id": "refs/heads/master", "kind": "PUBLISH", "commit": "bbb222", "error": "jenkins down"}]
	}`, string(data))
}

func TestDispatch_SkipsDeletedRefs(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := mocks.NewMockConfigStore(ctrl)
	trigger := mocks.NewMockBuildTrigger(ctrl)

	store.EXPECT().GetRepoConfig(gomock.Any(), testRepo.ID).Return(repoConfig(true, "", ".*"), nil)
	trigger.EXPECT().TriggerBuild(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	job := NewBuildTriggerJob(store, trigger, logger.Discard())
	result, err := job.Dispatch(context.Background(), push(
		core.RefChange{RefID: "refs/heads/gone", FromHash: "abc123", ToHash: "0000000000000000000000000000000000000000"},
	))
	require.NoError(t, err)
	assert.Empty(t, result.Triggered)
}

func TestDispatch_EmptyPush(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := mocks.NewMockConfigStore(ctrl)
	trigger := mocks.NewMockBuildTrigger(ctrl)

	store.EXPECT().GetRepoConfig(gomock.Any(), testRepo.ID).Return(repoConfig(true, ".*", ".*"), nil)

	job := NewBuildTriggerJob(store, trigger, logger.Discard())
	result, err := job.Dispatch(context.Background(), push())
	require.NoError(t, err)
	assert.Empty(t, result.Triggered)
	assert.Empty(t, result.Failed)
}
