package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/Oliverknowledge/Signal-Backend/internal/model"
	"github.com/Oliverknowledge/Signal-Backend/internal/service"
)

// AnalyzeHandler handles the content analysis endpoints
type AnalyzeHandler struct {
	analyzerSvc *service.AnalyzerService
}

// NewAnalyzeHandler creates a new analyze handler
func NewAnalyzeHandler(analyzerSvc *service.AnalyzerService) *AnalyzeHandler {
	return &AnalyzeHandler{analyzerSvc: analyzerSvc}
}

// Analyze handles POST /v1/analyze
func (h *AnalyzeHandler) Analyze(w http.ResponseWriter, r *http.Request) {
	var req model.AnalyzeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if strings.TrimSpace(req.URL) == "" || strings.TrimSpace(req.Goal) == "" {
		writeError(w, http.StatusBadRequest, "url and goal are required")
		return
	}

	resp, err := h.analyzerSvc.Analyze(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrContentFetch):
			writeError(w, http.StatusUnprocessableEntity, err.Error())
		case errors.Is(err, service.ErrModelCall):
			writeError(w, http.StatusBadGateway, err.Error())
		default:
			writeError(w, http.StatusInternalServerError, err.Error())
		}
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

// Relay handles POST /v1/telemetry/decision, the legacy relay for decisions
// asserted by a caller rather than computed here
func (h *AnalyzeHandler) Relay(w http.ResponseWriter, r *http.Request) {
	var req model.RelayRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	record := h.analyzerSvc.Relay(&req)
	writeJSON(w, http.StatusAccepted, record)
}
