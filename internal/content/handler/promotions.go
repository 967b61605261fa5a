package handler

import (
	"encoding/json"
	"net/http"

	"github.com/julienschmidt/httprouter"

	authhandler "beautybar/internal/auth/handler"
	"beautybar/internal/content/service"
	httputil "beautybar/pkg/http"
	"beautybar/pkg/logger"
	"beautybar/pkg/model"
)

type PromotionHandler struct {
	service service.PromotionService
	log     *logger.Logger
}

func NewPromotionHandler(service service.PromotionService, log *logger.Logger) *PromotionHandler {
	return &PromotionHandler{
		service: service,
		log:     log,
	}
}

func (h *PromotionHandler) GetAll(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	promotions, err := h.service.GetAll(r.Context())
	if err != nil {
		if writeErr := httputil.WriteError(w, err); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "GetAll", "error", writeErr)
		}
		return
	}

	if err := httputil.WriteSuccess(w, promotions); err != nil {
		h.log.Error("failed to write response", "handler", "GetAll", "error", err)
	}
}

// GetActive writes the single running promotion, or a JSON null when no
// promotion is active.
func (h *PromotionHandler) GetActive(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	promotion, err := h.service.GetActive(r.Context())
	if err != nil {
		if writeErr := httputil.WriteError(w, err); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "GetActive", "error", writeErr)
		}
		return
	}

	if err := httputil.WriteSuccess(w, promotion); err != nil {
		h.log.Error("failed to write response", "handler", "GetActive", "error", err)
	}
}

func (h *PromotionHandler) Create(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var upsert model.PromotionUpsert
	if err := json.NewDecoder(r.Body).Decode(&upsert); err != nil {
		h.writeBadRequest(w, "Create")
		return
	}

	created, err := h.service.Create(r.Context(), &upsert)
	if err != nil {
		if writeErr := httputil.WriteError(w, err); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "Create", "error", writeErr)
		}
		return
	}

	if err := httputil.WriteSuccess(w, created); err != nil {
		h.log.Error("failed to write response", "handler", "Create", "error", err)
	}
}

func (h *PromotionHandler) Update(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	id := ps.ByName("id")

	var upsert model.PromotionUpsert
	if err := json.NewDecoder(r.Body).Decode(&upsert); err != nil {
		h.writeBadRequest(w, "Update")
		return
	}

	updated, err := h.service.Update(r.Context(), id, &upsert)
	if err != nil {
		if writeErr := httputil.WriteError(w, err); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "Update", "error", writeErr)
		}
		return
	}

	if err := httputil.WriteSuccess(w, updated); err != nil {
		h.log.Error("failed to write response", "handler", "Update", "error", err)
	}
}

func (h *PromotionHandler) Delete(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	if err := h.service.Delete(r.Context(), ps.ByName("id")); err != nil {
		if writeErr := httputil.WriteError(w, err); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "Delete", "error", writeErr)
		}
		return
	}

	if err := httputil.WriteMessage(w, "Promotion deleted successfully"); err != nil {
		h.log.Error("failed to write response", "handler", "Delete", "error", err)
	}
}

func (h *PromotionHandler) writeBadRequest(w http.ResponseWriter, handlerName string) {
	if err := httputil.WriteJSON(w, http.StatusBadRequest, httputil.ErrorResponse{
		Error: "Invalid request body",
	}); err != nil {
		h.log.Error("failed to write error response", "handler", handlerName, "error", err)
	}
}

// RegisterRoutes wires the promotion endpoints. The active listing is
// registered before the parameterized routes so the public site can poll
// it without auth.
func (h *PromotionHandler) RegisterRoutes(router *httprouter.Router, protect authhandler.Middleware) {
	router.GET("/api/promotions", h.GetAll)
	router.GET("/api/promotions/active", h.GetActive)
	router.POST("/api/promotions", protect(h.Create))
	router.PUT("/api/promotions/:id", protect(h.Update))
	router.DELETE("/api/promotions/:id", protect(h.Delete))
}
