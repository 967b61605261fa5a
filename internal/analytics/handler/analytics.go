package handler

import (
	"encoding/json"
	"net/http"

	"github.com/julienschmidt/httprouter"

	"beautybar/internal/analytics/service"
	authhandler "beautybar/internal/auth/handler"
	httputil "beautybar/pkg/http"
	"beautybar/pkg/logger"
	"beautybar/pkg/model"
)

type AnalyticsHandler struct {
	service service.AnalyticsService
	log     *logger.Logger
}

func NewAnalyticsHandler(service service.AnalyticsService, log *logger.Logger) *AnalyticsHandler {
	return &AnalyticsHandler{
		service: service,
		log:     log,
	}
}

func (h *AnalyticsHandler) Track(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var event model.AnalyticsEvent
	if err := json.NewDecoder(r.Body).Decode(&event); err != nil {
		if writeErr := httputil.WriteJSON(w, http.StatusBadRequest, httputil.ErrorResponse{
			Error: "Invalid request body",
		}); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "Track", "error", writeErr)
		}
		return
	}

	if err := h.service.Track(r.Context(), &event); err != nil {
		if writeErr := httputil.WriteError(w, err); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "Track", "error", writeErr)
		}
		return
	}

	if err := httputil.WriteJSON(w, http.StatusOK, map[string]string{"status": "tracked"}); err != nil {
		h.log.Error("failed to write response", "handler", "Track", "error", err)
	}
}

func (h *AnalyticsHandler) Summary(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	summary, err := h.service.Summarize(r.Context())
	if err != nil {
		if writeErr := httputil.WriteError(w, err); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "Summary", "error", writeErr)
		}
		return
	}

	if err := httputil.WriteSuccess(w, summary); err != nil {
		h.log.Error("failed to write response", "handler", "Summary", "error", err)
	}
}

// RegisterRoutes wires the analytics endpoints: tracking is public, the
// summary is admin-only.
func (h *AnalyticsHandler) RegisterRoutes(router *httprouter.Router, protect authhandler.Middleware) {
	router.POST("/api/analytics/track", h.Track)
	router.GET("/api/analytics/summary", protect(h.Summary))
}
