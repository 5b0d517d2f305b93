package contexthelpers

type contextKey string

const currentPathContextKey = contextKey("currentPath")
const currentRoleContextKey = contextKey("currentRole")
const csrfTokenContextKey = contextKey("csrfToken")
const cspNonceContextKey = contextKey("cspNonce")
