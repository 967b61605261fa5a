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

type TestimonialHandler struct {
	service service.TestimonialService
	log     *logger.Logger
}

func NewTestimonialHandler(service service.TestimonialService, log *logger.Logger) *TestimonialHandler {
	return &TestimonialHandler{
		service: service,
		log:     log,
	}
}

func (h *TestimonialHandler) GetAll(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	testimonials, err := h.service.GetAll(r.Context())
	if err != nil {
		if writeErr := httputil.WriteError(w, err); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "GetAll", "error", writeErr)
		}
		return
	}

	if err := httputil.WriteSuccess(w, testimonials); err != nil {
		h.log.Error("failed to write response", "handler", "GetAll", "error", err)
	}
}

func (h *TestimonialHandler) Create(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var testimonial model.Testimonial
	if err := json.NewDecoder(r.Body).Decode(&testimonial); err != nil {
		h.writeBadRequest(w, "Create")
		return
	}

	created, err := h.service.Create(r.Context(), &testimonial)
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

func (h *TestimonialHandler) Update(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	id := ps.ByName("id")

	var testimonial model.Testimonial
	if err := json.NewDecoder(r.Body).Decode(&testimonial); err != nil {
		h.writeBadRequest(w, "Update")
		return
	}

	updated, err := h.service.Update(r.Context(), id, &testimonial)
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

func (h *TestimonialHandler) Delete(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	if err := h.service.Delete(r.Context(), ps.ByName("id")); err != nil {
		if writeErr := httputil.WriteError(w, err); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "Delete", "error", writeErr)
		}
		return
	}

	if err := httputil.WriteMessage(w, "Testimonial deleted successfully"); err != nil {
		h.log.Error("failed to write response", "handler", "Delete", "error", err)
	}
}

func (h *TestimonialHandler) writeBadRequest(w http.ResponseWriter, handlerName string) {
	if err := httputil.WriteJSON(w, http.StatusBadRequest, httputil.ErrorResponse{
		Error: "Invalid request body",
	}); err != nil {
		h.log.Error("failed to write error response", "handler", handlerName, "error", err)
	}
}

func (h *TestimonialHandler) RegisterRoutes(router *httprouter.Router, protect authhandler.Middleware) {
	router.GET("/api/testimonials", h.GetAll)
	router.POST("/api/testimonials", protect(h.Create))
	router.PUT("/api/testimonials/:id", protect(h.Update))
	router.DELETE("/api/testimonials/:id", protect(h.Delete))
}
