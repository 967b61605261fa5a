package handler

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/julienschmidt/httprouter"

	authhandler "beautybar/internal/auth/handler"
	"beautybar/internal/content/service"
	httputil "beautybar/pkg/http"
	"beautybar/pkg/logger"
	"beautybar/pkg/model"
)

// maxUploadMemory bounds the in-memory portion of multipart parsing;
// larger parts spill to temp files.
const maxUploadMemory = 10 << 20

type GalleryHandler struct {
	service service.GalleryService
	log     *logger.Logger
}

func NewGalleryHandler(service service.GalleryService, log *logger.Logger) *GalleryHandler {
	return &GalleryHandler{
		service: service,
		log:     log,
	}
}

func (h *GalleryHandler) GetAll(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	images, err := h.service.GetAll(r.Context())
	if err != nil {
		if writeErr := httputil.WriteError(w, err); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "GetAll", "error", writeErr)
		}
		return
	}

	if err := httputil.WriteSuccess(w, images); err != nil {
		h.log.Error("failed to write response", "handler", "GetAll", "error", err)
	}
}

func (h *GalleryHandler) Create(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var image model.GalleryImage
	if err := json.NewDecoder(r.Body).Decode(&image); err != nil {
		h.writeBadRequest(w, "Create", "Invalid request body")
		return
	}

	created, err := h.service.Create(r.Context(), &image)
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

// Upload accepts a multipart form with a "file" part and stores the
// image as a base64 data URL.
func (h *GalleryHandler) Upload(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	if err := r.ParseMultipartForm(maxUploadMemory); err != nil {
		h.writeBadRequest(w, "Upload", "Invalid multipart form")
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		h.writeBadRequest(w, "Upload", "Missing file upload")
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		h.writeBadRequest(w, "Upload", "Failed to read file upload")
		return
	}

	image, err := h.service.Upload(r.Context(), header.Filename, header.Header.Get("Content-Type"), data)
	if err != nil {
		if writeErr := httputil.WriteError(w, err); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "Upload", "error", writeErr)
		}
		return
	}

	if err := httputil.WriteSuccess(w, image); err != nil {
		h.log.Error("failed to write response", "handler", "Upload", "error", err)
	}
}

func (h *GalleryHandler) Update(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	id := ps.ByName("id")

	var image model.GalleryImage
	if err := json.NewDecoder(r.Body).Decode(&image); err != nil {
		h.writeBadRequest(w, "Update", "Invalid request body")
		return
	}

	updated, err := h.service.Update(r.Context(), id, &image)
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

func (h *GalleryHandler) Delete(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	if err := h.service.Delete(r.Context(), ps.ByName("id")); err != nil {
		if writeErr := httputil.WriteError(w, err); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "Delete", "error", writeErr)
		}
		return
	}

	if err := httputil.WriteMessage(w, "Gallery image deleted successfully"); err != nil {
		h.log.Error("failed to write response", "handler", "Delete", "error", err)
	}
}

func (h *GalleryHandler) writeBadRequest(w http.ResponseWriter, handlerName, message string) {
	if err := httputil.WriteJSON(w, http.StatusBadRequest, httputil.ErrorResponse{
		Error: message,
	}); err != nil {
		h.log.Error("failed to write error response", "handler", handlerName, "error", err)
	}
}

func (h *GalleryHandler) RegisterRoutes(router *httprouter.Router, protect authhandler.Middleware) {
	router.GET("/api/gallery", h.GetAll)
	router.POST("/api/gallery", protect(h.Create))
	router.POST("/api/gallery/upload", protect(h.Upload))
	router.PUT("/api/gallery/:id", protect(h.Update))
	router.DELETE("/api/gallery/:id", protect(h.Delete))
}
