package handler

import (
	"net/http"
	"strconv"

	"github.com/ChanitaIvanova/pastry-tasting-platform/internal/model"
	"github.com/ChanitaIvanova/pastry-tasting-platform/internal/repository"
	"github.com/ChanitaIvanova/pastry-tasting-platform/internal/service"
	"github.com/ChanitaIvanova/pastry-tasting-platform/internal/transport/rest/middleware"
)

// ActivityHandler handles activity log endpoints
type ActivityHandler struct {
	activitySvc *service.ActivityService
}

// NewActivityHandler creates a new activity handler
func NewActivityHandler(activitySvc *service.ActivityService) *ActivityHandler {
	return &ActivityHandler{activitySvc: activitySvc}
}

// List handles GET /v1/activity-logs (admin)
func (h *ActivityHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filter := repository.ActivityFilter{
		UserID:     q.Get("userId"),
		Action:     model.ActivityAction(q.Get("action")),
		EntityType: model.EntityType(q.Get("entityType")),
		Page:       parseInt64(q.Get("page"), 1),
		Limit:      parseInt64(q.Get("limit"), 20),
	}

	logs, total, err := h.activitySvc.List(r.Context(), filter)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeActivityPage(w, logs, total, filter.Page, filter.Limit)
}

// ListMine handles GET /v1/activity-logs/my-activities
func (h *ActivityHandler) ListMine(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	page := parseInt64(q.Get("page"), 1)
	limit := parseInt64(q.Get("limit"), 20)

	logs, total, err := h.activitySvc.ListForUser(r.Context(), middleware.GetUserID(r.Context()), page, limit)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeActivityPage(w, logs, total, page, limit)
}

func writeActivityPage(w http.ResponseWriter, logs []*model.ActivityLog, total, page, limit int64) {
	pages := total / limit
	if total%limit != 0 {
		pages++
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"logs":        logs,
		"total":       total,
		"pages":       pages,
		"currentPage": page,
	})
}

func parseInt64(s string, def int64) int64 {
	if s == "" {
		return def
	}
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil || v < 1 {
		return def
	}
	return v
}
