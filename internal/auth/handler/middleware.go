package handler

import (
	"context"
	"net/http"
	"strings"

	"github.com/julienschmidt/httprouter"

	"beautybar/internal/auth/service"
	apperrors "beautybar/pkg/errors"
	httputil "beautybar/pkg/http"
	"beautybar/pkg/logger"
	"beautybar/pkg/model"
)

type userKeyType struct{}

var userContextKey userKeyType

// Middleware wraps a route handler with a cross-cutting concern.
type Middleware func(httprouter.Handle) httprouter.Handle

// RequireAuth guards a route behind bearer-token authentication and places
// the resolved user in the request context.
func RequireAuth(svc service.AuthService, log *logger.Logger) Middleware {
	return func(next httprouter.Handle) httprouter.Handle {
		return func(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
			header := r.Header.Get("Authorization")
			if header == "" {
				writeAuthError(w, log, apperrors.Unauthorized("Authorization header required"))
				return
			}

			rawToken := header
			if len(header) > 7 && strings.EqualFold(header[:7], "Bearer ") {
				rawToken = header[7:]
			}

			user, err := svc.Authenticate(r.Context(), rawToken)
			if err != nil {
				writeAuthError(w, log, err)
				return
			}

			ctx := context.WithValue(r.Context(), userContextKey, user)
			next(w, r.WithContext(ctx), ps)
		}
	}
}

func writeAuthError(w http.ResponseWriter, log *logger.Logger, err error) {
	if writeErr := httputil.WriteError(w, err); writeErr != nil {
		log.Error("failed to write error response", "middleware", "RequireAuth", "error", writeErr)
	}
}

// UserFromContext returns the authenticated user stored by RequireAuth,
// or nil on unprotected routes.
func UserFromContext(ctx context.Context) *model.User {
	if user, ok := ctx.Value(userContextKey).(*model.User); ok {
		return user
	}
	return nil
}
