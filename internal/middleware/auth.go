package middleware

import (
	"encoding/json"
	"net/http"

	"github.com/quickbite/order-api/internal/config"
)

// RequireRole gates a route by authenticated role. The API key arrives in
// the "api_key" header and maps to a role via configuration; a missing or
// unknown key is 401, a key whose role is not in allowed is 403.
func RequireRole(cfg config.AuthConfig, allowed ...string) func(next http.Handler) http.Handler {
	allowedSet := make(map[string]bool, len(allowed))
	for _, role := range allowed {
		allowedSet[role] = true
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			apiKey := r.Header.Get("api_key")

			if apiKey == "" {
				deny(w, http.StatusUnauthorized, "Unauthorized - Please login")
				return
			}

			role, ok := cfg.KeyRoles[apiKey]
			if !ok {
				deny(w, http.StatusUnauthorized, "Unauthorized - Please login")
				return
			}

			if len(allowedSet) > 0 && !allowedSet[role] {
				deny(w, http.StatusForbidden, "Forbidden - Insufficient permissions")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func deny(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": message})
}
