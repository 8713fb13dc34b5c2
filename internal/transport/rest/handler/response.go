package handler

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/ChanitaIvanova/pastry-tasting-platform/internal/model"
	"github.com/ChanitaIvanova/pastry-tasting-platform/internal/service"
	"github.com/ChanitaIvanova/pastry-tasting-platform/internal/transport/rest/middleware"
)

// ResponseHandler handles response lifecycle and statistics endpoints
type ResponseHandler struct {
	responseSvc *service.ResponseService
	statsSvc    *service.StatisticsService
}

// NewResponseHandler creates a new response handler
func NewResponseHandler(responseSvc *service.ResponseService, statsSvc *service.StatisticsService) *ResponseHandler {
	return &ResponseHandler{
		responseSvc: responseSvc,
		statsSvc:    statsSvc,
	}
}

// SaveResponseRequest is the request body for draft and submit saves
type SaveResponseRequest struct {
	Answers     []model.Answer              `json:"answers"`
	Comparative model.ComparativeEvaluation `json:"comparativeEvaluation"`
	AsDraft     bool                        `json:"asDraft"`
}

// Submit handles POST /v1/questionnaires/{id}/responses — a first-time
// save; conflicts with an already submitted response
func (h *ResponseHandler) Submit(w http.ResponseWriter, r *http.Request) {
	questionnaireID := mux.Vars(r)["id"]

	var req SaveResponseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	payload := model.ResponsePayload{Answers: req.Answers, Comparative: req.Comparative}
	resp, err := h.responseSvc.Create(r.Context(), questionnaireID, middleware.GetUserID(r.Context()), payload, req.AsDraft)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, resp)
}

// Save handles PUT /v1/questionnaires/{id}/response — create-or-update
// of the caller's own response
func (h *ResponseHandler) Save(w http.ResponseWriter, r *http.Request) {
	questionnaireID := mux.Vars(r)["id"]

	var req SaveResponseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	payload := model.ResponsePayload{Answers: req.Answers, Comparative: req.Comparative}
	resp, err := h.responseSvc.Save(r.Context(), questionnaireID, middleware.GetUserID(r.Context()), payload, req.AsDraft)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

// GetMine handles GET /v1/questionnaires/{id}/response — the caller's
// own response, 404 when none exists yet
func (h *ResponseHandler) GetMine(w http.ResponseWriter, r *http.Request) {
	questionnaireID := mux.Vars(r)["id"]

	resp, err := h.responseSvc.LoadForEdit(r.Context(), questionnaireID, middleware.GetUserID(r.Context()))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	if resp == nil {
		writeError(w, http.StatusNotFound, "no response yet")
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

// ListMine handles GET /v1/responses/mine — all of the caller's
// responses across questionnaires
func (h *ResponseHandler) ListMine(w http.ResponseWriter, r *http.Request) {
	responses, err := h.responseSvc.GetMine(r.Context(), middleware.GetUserID(r.Context()))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"responses": responses})
}

// ListSubmitted handles GET /v1/questionnaires/{id}/responses (admin)
func (h *ResponseHandler) ListSubmitted(w http.ResponseWriter, r *http.Request) {
	questionnaireID := mux.Vars(r)["id"]

	responses, err := h.responseSvc.GetSubmitted(r.Context(), questionnaireID)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"responses": responses})
}

// Statistics handles GET /v1/questionnaires/{id}/statistics (admin)
func (h *ResponseHandler) Statistics(w http.ResponseWriter, r *http.Request) {
	questionnaireID := mux.Vars(r)["id"]

	stats, err := h.statsSvc.GetStatistics(r.Context(), questionnaireID, middleware.GetUserID(r.Context()))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, stats)
}
