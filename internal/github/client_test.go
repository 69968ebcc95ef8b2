package github

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/google/go-github/v73/github"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sevigo/stashbot/internal/core"
	"github.com/sevigo/stashbot/internal/logger"
)

var testRepo = &core.Repository{ID: 42, Owner: "acme", Name: "widgets", FullName: "acme/widgets"}

func newTestClient(t *testing.T, mux *http.ServeMux) *Client {
	t.Helper()
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)

	client := github.NewClient(nil)
	base, err := url.Parse(srv.URL + "/")
	require.NoError(t, err)
	client.BaseURL = base
	return NewGitHubClient(client, logger.Discard())
}

func TestGetRepositoryByID(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /repositories/42", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"id":42,"name":"widgets","full_name":"acme/widgets","owner":{"login":"acme"}}`))
	})
	g := newTestClient(t, mux)

	repo, err := g.GetRepositoryByID(context.Background(), 42)
	require.NoError(t, err)
	assert.Equal(t, testRepo, repo)

	_, err = g.GetRepositoryByID(context.Background(), 7)
	assert.ErrorIs(t, err, core.ErrNotFound)
}

func TestGetPullRequest(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /repos/acme/widgets/pulls/12", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"number":12,"title":"Add sprockets","head":{"sha":"abc123"},"base":{"ref":"main"}}`))
	})
	g := newTestClient(t, mux)

	pr, err := g.GetPullRequest(context.Background(), testRepo, 12)
	require.NoError(t, err)
	assert.Equal(t, 12, pr.Number)
	assert.Equal(t, "abc123", pr.HeadSHA)
	assert.Equal(t, "main", pr.BaseRef)

	_, err = g.GetPullRequest(context.Background(), testRepo, 13)
	assert.ErrorIs(t, err, core.ErrNotFound)
}

func TestSetCommitStatus(t *testing.T) {
	var body map[string]string
	mux := http.NewServeMux()
	mux.HandleFunc("POST /repos/acme/widgets/statuses/abc123", func(w http.ResponseWriter, r *http.Request) {
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{}`))
	})
	g := newTestClient(t, mux)

	err := g.SetCommitStatus(context.Background(), testRepo, "abc123", &core.CommitStatus{
		Key:         "acme_widgets_verification",
		Name:        "VERIFICATION",
		State:       core.OutcomeInProgress,
		URL:         "https://jenkins.example.com/job/acme_widgets_verification/3/",
		BuildNumber: 3,
	})
	require.NoError(t, err)

	assert.Equal(t, "pending", body["state"])
	assert.Equal(t, "acme_widgets_verification", body["context"])
	assert.Equal(t, "VERIFICATION build #3 is running", body["description"])
	assert.Equal(t, "https://jenkins.example.com/job/acme_widgets_verification/3/", body["target_url"])
}

func TestSetCommitStatus_ServerError(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /repos/acme/widgets/statuses/abc123", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})
	g := newTestClient(t, mux)

	err := g.SetCommitStatus(context.Background(), testRepo, "abc123", &core.CommitStatus{State: core.OutcomeFailed})
	require.Error(t, err)
	assert.NotErrorIs(t, err, core.ErrNotFound)
}

func TestAddPullRequestComment(t *testing.T) {
	var body map[string]string
	mux := http.NewServeMux()
	mux.HandleFunc("POST /repos/acme/widgets/issues/12/comments", func(w http.ResponseWriter, r *http.Request) {
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{}`))
	})
	g := newTestClient(t, mux)

	require.NoError(t, g.AddPullRequestComment(context.Background(), testRepo, 12, "==FAILED=="))
	assert.Equal(t, "==FAILED==", body["body"])
}

func TestStatusState(t *testing.T) {
	assert.Equal(t, "success", StatusState(core.OutcomeSuccessful))
	assert.Equal(t, "pending", StatusState(core.OutcomeInProgress))
	assert.Equal(t, "failure", StatusState(core.OutcomeFailed))
}
