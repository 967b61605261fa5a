package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"

	authhandler "beautybar/internal/auth/handler"
	"beautybar/internal/seed/service"
	httputil "beautybar/pkg/http"
	"beautybar/pkg/logger"
)

type SeedHandler struct {
	service service.SeedService
	log     *logger.Logger
}

func NewSeedHandler(service service.SeedService, log *logger.Logger) *SeedHandler {
	return &SeedHandler{
		service: service,
		log:     log,
	}
}

func (h *SeedHandler) Seed(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	message, err := h.service.Seed(r.Context())
	if err != nil {
		if writeErr := httputil.WriteError(w, err); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "Seed", "error", writeErr)
		}
		return
	}

	if err := httputil.WriteMessage(w, message); err != nil {
		h.log.Error("failed to write response", "handler", "Seed", "error", err)
	}
}

func (h *SeedHandler) RegisterRoutes(router *httprouter.Router, protect authhandler.Middleware) {
	router.POST("/api/seed", protect(h.Seed))
}
