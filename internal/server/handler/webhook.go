// Package handler provides the HTTP handlers for GitHub webhooks and Jenkins
// build callbacks.
package handler

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/google/go-github/v73/github"

	"github.com/sevigo/stashbot/internal/core"
	"github.com/sevigo/stashbot/internal/jobs"
)

// WebhookHandler processes incoming webhooks from GitHub.
type WebhookHandler struct {
	secret     []byte
	dispatcher core.JobDispatcher
	logger     *slog.Logger
}

// NewWebhookHandler creates a webhook handler that verifies payloads with secret.
func NewWebhookHandler(secret string, dispatcher core.JobDispatcher, logger *slog.Logger) *WebhookHandler {
	return &WebhookHandler{
		secret:     []byte(secret),
		dispatcher: dispatcher,
		logger:     logger,
	}
}

// Handle processes GitHub webhook requests.
func (h *WebhookHandler) Handle(w http.ResponseWriter, r *http.Request) {
	payload, err := github.ValidatePayload(r, h.secret)
	if err != nil {
		h.logger.Error("invalid webhook payload signature", "error", err)
		http.Error(w, "Invalid signature", http.StatusUnauthorized)
		return
	}

	event, err := github.ParseWebHook(github.WebHookType(r), payload)
	if err != nil {
		h.logger.Error("could not parse webhook", "error", err)
		http.Error(w, "Could not parse webhook", http.StatusBadRequest)
		return
	}

	switch e := event.(type) {
	case *github.PushEvent:
		h.handlePush(w, r, e)
	case *github.PingEvent:
		h.logger.Info("received webhook ping", "hook_id", e.GetHookID())
		_, _ = fmt.Fprint(w, "pong")
	default:
		h.logger.Debug("ignoring unhandled webhook event type", "type", github.WebHookType(r))
		_, _ = fmt.Fprint(w, "Event type not handled")
	}
}

func (h *WebhookHandler) handlePush(w http.ResponseWriter, r *http.Request, event *github.PushEvent) {
	push, err := core.EventFromPush(event)
	if err != nil {
		h.logger.Warn("ignoring push", "reason", err.Error(), "repo", event.GetRepo().GetFullName())
		http.Error(w, "Push ignored", http.StatusBadRequest)
		return
	}

	if err := h.dispatcher.Dispatch(r.Context(), push); err != nil {
		h.logger.Error("failed to dispatch push", "error", err, "repo", push.Repository.String())
		status := http.StatusInternalServerError
		if errors.Is(err, jobs.ErrQueueFull) {
			status = http.StatusServiceUnavailable
		}
		http.Error(w, "Failed to queue push", status)
		return
	}

	h.logger.Info("push queued", "repo", push.Repository.String(), "refs", len(push.RefChanges))
	w.WriteHeader(http.StatusAccepted)
	_, _ = fmt.Fprint(w, "Push accepted")
}
