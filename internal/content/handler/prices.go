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

type PriceHandler struct {
	service service.PriceService
	log     *logger.Logger
}

func NewPriceHandler(service service.PriceService, log *logger.Logger) *PriceHandler {
	return &PriceHandler{
		service: service,
		log:     log,
	}
}

func (h *PriceHandler) GetAll(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	serviceType := r.URL.Query().Get("service_type")

	prices, err := h.service.GetAll(r.Context(), serviceType)
	if err != nil {
		if writeErr := httputil.WriteError(w, err); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "GetAll", "error", writeErr)
		}
		return
	}

	if err := httputil.WriteSuccess(w, prices); err != nil {
		h.log.Error("failed to write response", "handler", "GetAll", "error", err)
	}
}

func (h *PriceHandler) Create(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var price model.PriceCategory
	if err := json.NewDecoder(r.Body).Decode(&price); err != nil {
		h.writeBadRequest(w, "Create")
		return
	}

	created, err := h.service.Create(r.Context(), &price)
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

func (h *PriceHandler) Update(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	id := ps.ByName("id")

	var price model.PriceCategory
	if err := json.NewDecoder(r.Body).Decode(&price); err != nil {
		h.writeBadRequest(w, "Update")
		return
	}

	updated, err := h.service.Update(r.Context(), id, &price)
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

func (h *PriceHandler) Delete(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	if err := h.service.Delete(r.Context(), ps.ByName("id")); err != nil {
		if writeErr := httputil.WriteError(w, err); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "Delete", "error", writeErr)
		}
		return
	}

	if err := httputil.WriteMessage(w, "Price category deleted successfully"); err != nil {
		h.log.Error("failed to write response", "handler", "Delete", "error", err)
	}
}

func (h *PriceHandler) writeBadRequest(w http.ResponseWriter, handlerName string) {
	if err := httputil.WriteJSON(w, http.StatusBadRequest, httputil.ErrorResponse{
		Error: "Invalid request body",
	}); err != nil {
		h.log.Error("failed to write error response", "handler", handlerName, "error", err)
	}
}

func (h *PriceHandler) RegisterRoutes(router *httprouter.Router, protect authhandler.Middleware) {
	router.GET("/api/prices", h.GetAll)
	router.POST("/api/prices", protect(h.Create))
	router.PUT("/api/prices/:id", protect(h.Update))
	router.DELETE("/api/prices/:id", protect(h.Delete))
}
