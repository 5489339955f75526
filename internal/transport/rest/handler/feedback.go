package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/Oliverknowledge/Signal-Backend/internal/model"
	"github.com/Oliverknowledge/Signal-Backend/internal/service"
	"github.com/Oliverknowledge/Signal-Backend/internal/transport/rest/middleware"
)

// FeedbackHandler handles feedback and recall grade endpoints
type FeedbackHandler struct {
	feedbackSvc *service.FeedbackService
}

// NewFeedbackHandler creates a new feedback handler
func NewFeedbackHandler(feedbackSvc *service.FeedbackService) *FeedbackHandler {
	return &FeedbackHandler{feedbackSvc: feedbackSvc}
}

// Submit handles POST /v1/feedback
func (h *FeedbackHandler) Submit(w http.ResponseWriter, r *http.Request) {
	clientID := middleware.GetClientID(r.Context())

	var fb model.Feedback
	if err := json.NewDecoder(r.Body).Decode(&fb); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := h.feedbackSvc.RecordFeedback(r.Context(), clientID, &fb); err != nil {
		if errors.Is(err, service.ErrInvalidFeedback) {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusCreated, map[string]string{"status": "recorded", "id": fb.ID})
}

// Grade handles POST /v1/recall/grade
func (h *FeedbackHandler) Grade(w http.ResponseWriter, r *http.Request) {
	clientID := middleware.GetClientID(r.Context())

	var grade model.RecallGrade
	if err := json.NewDecoder(r.Body).Decode(&grade); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := h.feedbackSvc.RecordGrade(r.Context(), clientID, &grade); err != nil {
		if errors.Is(err, service.ErrInvalidFeedback) {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusCreated, map[string]string{"status": "recorded", "id": grade.ID})
}

// List handles GET /v1/feedback
func (h *FeedbackHandler) List(w http.ResponseWriter, r *http.Request) {
	clientID := middleware.GetClientID(r.Context())

	out, err := h.feedbackSvc.ListFeedback(r.Context(), clientID, parseLimit(r))
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, out)
}

// ListGrades handles GET /v1/recall/grades
func (h *FeedbackHandler) ListGrades(w http.ResponseWriter, r *http.Request) {
	clientID := middleware.GetClientID(r.Context())

	out, err := h.feedbackSvc.ListGrades(r.Context(), clientID, parseLimit(r))
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, out)
}

func parseLimit(r *http.Request) int64 {
	limit, _ := strconv.ParseInt(r.URL.Query().Get("limit"), 10, 64)
	return limit
}
