package handler

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/sevigo/stashbot/internal/core"
	"github.com/sevigo/stashbot/internal/jobs"
	"github.com/sevigo/stashbot/internal/logger"
	"github.com/sevigo/stashbot/mocks"
)

const webhookSecret = "s3cret"

const pushPayload = `{
  "ref": "refs/heads/master",
  "before": "1111111111111111111111111111111111111111",
  "after": "abc1230000000000000000000000000000000000",
  "repository": {
    "id": 1,
    "name": "repo",
    "full_name": "project/repo",
    "owner": {"login": "project"}
  },
  "installation": {"id": 77}
}`

func signedRequest(event, body, secret string) *http.Request {
	req := httptest.NewRequest(http.MethodPost, "/api/v1/webhook/github", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-GitHub-Event", event)
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(body))
	req.Header.Set("X-Hub-Signature-256", "sha256="+hex.EncodeToString(mac.Sum(nil)))
	return req
}

func TestWebhook_PushIsDispatched(t *testing.T) {
	dispatcher := mocks.NewMockJobDispatcher(gomock.NewController(t))
	h := NewWebhookHandler(webhookSecret, dispatcher, logger.Discard())

	var got *core.PushEvent
	dispatcher.EXPECT().Dispatch(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, e *core.PushEvent) error {
			got = e
			return nil
		})

	rec := httptest.NewRecorder()
	h.Handle(rec, signedRequest("push", pushPayload, webhookSecret))

	assert.Equal(t, http.StatusAccepted, rec.Code)
	if assert.NotNil(t, got) {
		assert.Equal(t, int64(1), got.Repository.ID)
		assert.Equal(t, "project", got.Repository.Owner)
		assert.Equal(t, int64(77), got.InstallationID)
		assert.Equal(t, []core.RefChange{{
			RefID:    "refs/heads/master",
			FromHash: "1111111111111111111111111111111111111111",
			ToHash:   "abc1230000000000000000000000000000000000",
		}}, got.RefChanges)
	}
}

func TestWebhook_BadSignature(t *testing.T) {
	dispatcher := mocks.NewMockJobDispatcher(gomock.NewController(t))
	dispatcher.EXPECT().Dispatch(gomock.Any(), gomock.Any()).Times(0)
	h := NewWebhookHandler(webhookSecret, dispatcher, logger.Discard())

	rec := httptest.NewRecorder()
	h.Handle(rec, signedRequest("push", pushPayload, "wrong"))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestWebhook_QueueFull(t *testing.T) {
	dispatcher := mocks.NewMockJobDispatcher(gomock.NewController(t))
	dispatcher.EXPECT().Dispatch(gomock.Any(), gomock.Any()).Return(jobs.ErrQueueFull)
	h := NewWebhookHandler(webhookSecret, dispatcher, logger.Discard())

	rec := httptest.NewRecorder()
	h.Handle(rec, signedRequest("push", pushPayload, webhookSecret))

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestWebhook_PingAndUnhandledEvents(t *testing.T) {
	dispatcher := mocks.NewMockJobDispatcher(gomock.NewController(t))
	dispatcher.EXPECT().Dispatch(gomock.Any(), gomock.Any()).Times(0)
	h := NewWebhookHandler(webhookSecret, dispatcher, logger.Discard())

	rec := httptest.NewRecorder()
	h.Handle(rec, signedRequest("ping", `{"zen":"Keep it simple.","hook_id":5}`, webhookSecret))
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = httptest.NewRecorder()
	h.Handle(rec, signedRequest("star", `{"action":"created"}`, webhookSecret))
	assert.Equal(t, http.StatusOK, rec.Code)
}
