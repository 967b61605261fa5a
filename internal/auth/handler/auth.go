package handler

import (
	"encoding/json"
	"net/http"

	"github.com/julienschmidt/httprouter"

	"beautybar/internal/auth/service"
	apperrors "beautybar/pkg/errors"
	httputil "beautybar/pkg/http"
	"beautybar/pkg/logger"
	"beautybar/pkg/middleware"
	"beautybar/pkg/model"
)

type AuthHandler struct {
	service service.AuthService
	limiter *middleware.IPRateLimiter
	log     *logger.Logger
}

func NewAuthHandler(service service.AuthService, limiter *middleware.IPRateLimiter, log *logger.Logger) *AuthHandler {
	return &AuthHandler{
		service: service,
		limiter: limiter,
		log:     log,
	}
}

func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var req model.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeBadRequest(w, "Register")
		return
	}

	resp, err := h.service.Register(r.Context(), &req)
	if err != nil {
		h.writeError(w, "Register", err)
		return
	}

	if err := httputil.WriteSuccess(w, resp); err != nil {
		h.log.Error("failed to write response", "handler", "Register", "error", err)
	}
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var req model.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeBadRequest(w, "Login")
		return
	}

	resp, err := h.service.Login(r.Context(), &req)
	if err != nil {
		h.writeError(w, "Login", err)
		return
	}

	if err := httputil.WriteSuccess(w, resp); err != nil {
		h.log.Error("failed to write response", "handler", "Login", "error", err)
	}
}

func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	user := UserFromContext(r.Context())
	if user == nil {
		h.writeError(w, "Me", apperrors.Unauthorized("Authentication required"))
		return
	}

	if err := httputil.WriteSuccess(w, user.Public()); err != nil {
		h.log.Error("failed to write response", "handler", "Me", "error", err)
	}
}

func (h *AuthHandler) ForgotPassword(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var req model.ForgotPasswordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeBadRequest(w, "ForgotPassword")
		return
	}

	result, err := h.service.ForgotPassword(r.Context(), &req)
	if err != nil {
		h.writeError(w, "ForgotPassword", err)
		return
	}

	if err := httputil.WriteSuccess(w, result); err != nil {
		h.log.Error("failed to write response", "handler", "ForgotPassword", "error", err)
	}
}

func (h *AuthHandler) ResetPassword(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var req model.ResetPasswordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeBadRequest(w, "ResetPassword")
		return
	}

	if err := h.service.ResetPassword(r.Context(), &req); err != nil {
		h.writeError(w, "ResetPassword", err)
		return
	}

	if err := httputil.WriteMessage(w, "Password reset successfully"); err != nil {
		h.log.Error("failed to write response", "handler", "ResetPassword", "error", err)
	}
}

func (h *AuthHandler) writeBadRequest(w http.ResponseWriter, handlerName string) {
	if err := httputil.WriteJSON(w, http.StatusBadRequest, httputil.ErrorResponse{
		Error: "Invalid request body",
	}); err != nil {
		h.log.Error("failed to write error response", "handler", handlerName, "error", err)
	}
}

func (h *AuthHandler) writeError(w http.ResponseWriter, handlerName string, err error) {
	if writeErr := httputil.WriteError(w, err); writeErr != nil {
		h.log.Error("failed to write error response", "handler", handlerName, "error", writeErr)
	}
}

// RegisterRoutes wires the auth endpoints. Only forgot-password is rate
// limited; everything else relies on credentials alone.
func (h *AuthHandler) RegisterRoutes(router *httprouter.Router, protect Middleware) {
	router.POST("/api/auth/register", h.Register)
	router.POST("/api/auth/login", h.Login)
	router.GET("/api/auth/me", protect(h.Me))
	router.POST("/api/auth/forgot-password", middleware.RateLimit(h.limiter, h.ForgotPassword))
	router.POST("/api/auth/reset-password", h.ResetPassword)
}
