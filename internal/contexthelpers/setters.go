package contexthelpers

import (
	"context"
	"net/http"

	"github.com/carewell/eldercare/internal/models"
)

func SetCurrentPath(r *http.Request, currentPath string) *http.Request {
	ctx := r.Context()
	ctx = context.WithValue(ctx, currentPathContextKey, currentPath)
	return r.WithContext(ctx)
}

func SetCurrentRole(r *http.Request, role models.Role) *http.Request {
	ctx := r.Context()
	ctx = context.WithValue(ctx, currentRoleContextKey, role)
	return r.WithContext(ctx)
}

func SetCSRFToken(r *http.Request, csrfToken string) *http.Request {
	ctx := r.Context()
	ctx = context.WithValue(ctx, csrfTokenContextKey, csrfToken)
	return r.WithContext(ctx)
}

func SetCSPNonce(r *http.Request, cspNonce string) *http.Request {
	ctx := r.Context()
	ctx = context.WithValue(ctx, cspNonceContextKey, cspNonce)
	return r.WithContext(ctx)
}
