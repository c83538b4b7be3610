package middleware

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/ad-tools/revenue-console/pkg/models/api"
	"github.com/ad-tools/revenue-console/pkg/models/domain"
	"github.com/ad-tools/revenue-console/pkg/services/auth"
	"github.com/rs/zerolog"
)

// RequireAdmin resolves the caller's identity once per request and only
// lets admins through: 401 without a valid session, 403 for any other role.
func RequireAdmin(verifier auth.Verifier) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			ctx := req.Context()
			logger := zerolog.Ctx(ctx)

			token := bearerToken(req)
			if token == "" {
				writeError(w, http.StatusUnauthorized, "Authentication required")
				return
			}

			identity, err := verifier.Identify(ctx, token)
			if err != nil {
				logger.Error().Err(err).Msg("identity lookup failed")
				writeError(w, http.StatusInternalServerError, "Internal server error")
				return
			}
			if identity == nil {
				writeError(w, http.StatusUnauthorized, "Authentication required")
				return
			}
			if identity.Role != domain.RoleAdmin {
				writeError(w, http.StatusForbidden, "Admin access required")
				return
			}

			next.ServeHTTP(w, req.WithContext(auth.WithIdentity(ctx, identity)))
		})
	}
}

func bearerToken(req *http.Request) string {
	header := req.Header.Get("Authorization")
	const prefix = "Bearer "
	if !strings.HasPrefix(header, prefix) {
		return ""
	}
	return strings.TrimSpace(header[len(prefix):])
}

func writeError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(api.Error{Error: message})
}
