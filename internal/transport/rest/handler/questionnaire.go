package handler

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/ChanitaIvanova/pastry-tasting-platform/internal/model"
	"github.com/ChanitaIvanova/pastry-tasting-platform/internal/service"
	"github.com/ChanitaIvanova/pastry-tasting-platform/internal/transport/rest/middleware"
)

// QuestionnaireHandler handles questionnaire endpoints
type QuestionnaireHandler struct {
	questionnaireSvc *service.QuestionnaireService
}

// NewQuestionnaireHandler creates a new questionnaire handler
func NewQuestionnaireHandler(questionnaireSvc *service.QuestionnaireService) *QuestionnaireHandler {
	return &QuestionnaireHandler{questionnaireSvc: questionnaireSvc}
}

// QuestionnaireRequest is the request body for create and update
type QuestionnaireRequest struct {
	Title    string            `json:"title"`
	Brands   []model.Brand     `json:"brands"`
	Criteria []model.Criterion `json:"criteria"`
}

// Create handles POST /v1/questionnaires
func (h *QuestionnaireHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req QuestionnaireRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	q := &model.Questionnaire{
		Title:    req.Title,
		Brands:   req.Brands,
		Criteria: req.Criteria,
	}

	if _, err := h.questionnaireSvc.Create(r.Context(), q, middleware.GetUserID(r.Context())); err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, q)
}

// List handles GET /v1/questionnaires
func (h *QuestionnaireHandler) List(w http.ResponseWriter, r *http.Request) {
	questionnaires, err := h.questionnaireSvc.List(r.Context(), middleware.GetRole(r.Context()))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"questionnaires": questionnaires})
}

// Get handles GET /v1/questionnaires/{id}
func (h *QuestionnaireHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	q, err := h.questionnaireSvc.Get(r.Context(), id, middleware.GetRole(r.Context()))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, q)
}

// Update handles PUT /v1/questionnaires/{id}
func (h *QuestionnaireHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	var req QuestionnaireRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	q := &model.Questionnaire{
		ID:       id,
		Title:    req.Title,
		Brands:   req.Brands,
		Criteria: req.Criteria,
	}

	updated, err := h.questionnaireSvc.Update(r.Context(), q, middleware.GetUserID(r.Context()))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

// Close handles PATCH /v1/questionnaires/{id}/close
func (h *QuestionnaireHandler) Close(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	q, err := h.questionnaireSvc.Close(r.Context(), id, middleware.GetUserID(r.Context()))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, q)
}
