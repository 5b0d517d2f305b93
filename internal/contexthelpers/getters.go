package contexthelpers

import (
	"context"

	"github.com/carewell/eldercare/internal/models"
)

func CurrentPath(ctx context.Context) string {
	currentPath, ok := ctx.Value(currentPathContextKey).(string)
	if !ok {
		return ""
	}

	return currentPath
}

func CurrentRole(ctx context.Context) models.Role {
	role, ok := ctx.Value(currentRoleContextKey).(models.Role)
	if !ok {
		return models.RoleNone
	}

	return role
}

func CSRFToken(ctx context.Context) string {
	csrfToken, ok := ctx.Value(csrfTokenContextKey).(string)
	if !ok {
		return ""
	}

	return csrfToken
}

func CSPNonce(ctx context.Context) string {
	cspNonce, ok := ctx.Value(cspNonceContextKey).(string)
	if !ok {
		return ""
	}

	return cspNonce
}
