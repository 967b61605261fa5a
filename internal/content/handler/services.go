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

type ServiceHandler struct {
	catalog service.ServiceCatalog
	log     *logger.Logger
}

func NewServiceHandler(catalog service.ServiceCatalog, log *logger.Logger) *ServiceHandler {
	return &ServiceHandler{
		catalog: catalog,
		log:     log,
	}
}

func (h *ServiceHandler) GetAll(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	services, err := h.catalog.GetAll(r.Context())
	if err != nil {
		if writeErr := httputil.WriteError(w, err); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "GetAll", "error", writeErr)
		}
		return
	}

	if err := httputil.WriteSuccess(w, services); err != nil {
		h.log.Error("failed to write response", "handler", "GetAll", "error", err)
	}
}

func (h *ServiceHandler) Create(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var svc model.Service
	if err := json.NewDecoder(r.Body).Decode(&svc); err != nil {
		h.writeBadRequest(w, "Create")
		return
	}

	created, err := h.catalog.Create(r.Context(), &svc)
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

func (h *ServiceHandler) Update(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	id := ps.ByName("id")

	var update model.ServiceUpdate
	if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
		h.writeBadRequest(w, "Update")
		return
	}

	updated, err := h.catalog.Update(r.Context(), id, &update)
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

func (h *ServiceHandler) Delete(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	if err := h.catalog.Delete(r.Context(), ps.ByName("id")); err != nil {
		if writeErr := httputil.WriteError(w, err); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "Delete", "error", writeErr)
		}
		return
	}

	if err := httputil.WriteMessage(w, "Service deleted successfully"); err != nil {
		h.log.Error("failed to write response", "handler", "Delete", "error", err)
	}
}

func (h *ServiceHandler) writeBadRequest(w http.ResponseWriter, handlerName string) {
	if err := httputil.WriteJSON(w, http.StatusBadRequest, httputil.ErrorResponse{
		Error: "Invalid request body",
	}); err != nil {
		h.log.Error("failed to write error response", "handler", handlerName, "error", err)
	}
}

// RegisterRoutes wires the service catalog endpoints: reads are public,
// writes require authentication.
func (h *ServiceHandler) RegisterRoutes(router *httprouter.Router, protect authhandler.Middleware) {
	router.GET("/api/services", h.GetAll)
	router.POST("/api/services", protect(h.Create))
	router.PUT("/api/services/:id", protect(h.Update))
	router.DELETE("/api/services/:id", protect(h.Delete))
}
