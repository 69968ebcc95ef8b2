package handler

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/sevigo/stashbot/internal/core"
	"github.com/sevigo/stashbot/internal/reporting"
)

// StatusUpdated is the body returned once a build callback was applied.
const StatusUpdated = "Status Updated"

// BuildReporter applies a decoded build callback.
type BuildReporter interface {
	Report(ctx context.Context, n *core.BuildNotification) error
}

// ReportHandler receives Jenkins build-completion callbacks. The notification
// is encoded in the path below the route's wildcard.
type ReportHandler struct {
	reporter BuildReporter
	logger   *slog.Logger
}

// NewReportHandler creates a ReportHandler.
func NewReportHandler(reporter BuildReporter, logger *slog.Logger) *ReportHandler {
	return &ReportHandler{reporter: reporter, logger: logger}
}

// Handle decodes the callback path and reports the outcome.
func (h *ReportHandler) Handle(w http.ResponseWriter, r *http.Request) {
	path := chi.URLParam(r, "*")
	n, err := core.ParseNotificationPath(path)
	if err != nil {
		h.logger.Warn("rejecting build callback", "path", path, "error", err)
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := h.reporter.Report(r.Context(), n); err != nil {
		status := statusFor(err)
		h.logger.Error("failed to report build",
			"repo_id", n.RepoID,
			"kind", n.Kind,
			"build", n.BuildNumber,
			"status", status,
			"error", err,
		)
		http.Error(w, err.Error(), status)
		return
	}

	_, _ = fmt.Fprint(w, StatusUpdated)
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, core.ErrInvalidNotification):
		return http.StatusBadRequest
	case errors.Is(err, reporting.ErrUnknownRepository), errors.Is(err, reporting.ErrUnknownPullRequest):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
