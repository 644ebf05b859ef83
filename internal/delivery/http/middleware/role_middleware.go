package middleware

import (
	"net/http"

	"diagnolab/internal/domain/entity"
	"diagnolab/pkg/response"
)

// RequireRole creates a middleware that checks if the user has any of the required roles
// Role is read from context (set by AuthMiddleware from JWT claims)
func RequireRole(allowedRoleIDs ...int) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			// Get role ID from context (set by AuthMiddleware)
			roleID, ok := GetRoleIDFromContext(r.Context())
			if !ok {
				response.Unauthorized(w, "Role information not found")
				return
			}

			// Check if user's role is in allowed roles
			allowed := false
			for _, allowedRoleID := range allowedRoleIDs {
				if roleID == allowedRoleID {
					allowed = true
					break
				}
			}

			if !allowed {
				response.Forbidden(w, "You don't have permission to access this resource")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// RequireAdmin is a convenience middleware for admin-only endpoints
func RequireAdmin(next http.Handler) http.Handler {
	return RequireRole(entity.RoleIDAdmin)(next)
}

// RequirePatient is a convenience middleware for patient-only endpoints
func RequirePatient(next http.Handler) http.Handler {
	return RequireRole(entity.RoleIDPatient)(next)
}

// RequireApprovedVendor gates vendor endpoints. A pending or rejected
// vendor authenticates fine but may not reach the dashboard.
func RequireApprovedVendor(next http.Handler) http.Handler {
	return RequireRole(entity.RoleIDVendor)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		status, ok := GetApprovalStatusFromContext(r.Context())
		if !ok || status != string(entity.ApprovalStatusApproved) {
			response.Forbidden(w, "Vendor account is not approved")
			return
		}
		next.ServeHTTP(w, r)
	}))
}

// RequireAdminOrVendor is a convenience middleware for shared catalog endpoints
func RequireAdminOrVendor(next http.Handler) http.Handler {
	return RequireRole(entity.RoleIDAdmin, entity.RoleIDVendor)(next)
}
