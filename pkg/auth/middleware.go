// Package auth resolves the wallet identity an HTTP request acts as.
package auth

import (
	"net/http"
	"strings"

	"go.uber.org/zap"

	apperrors "github.com/chainsafe/fabric-notary-gateway/pkg/app/errors"
	apphttp "github.com/chainsafe/fabric-notary-gateway/pkg/app/http"
)

// UserIDHeader carries the wallet identity when no token validator is configured.
const UserIDHeader = "X-User-ID"

// Middleware stores the caller's wallet identity in the request context.
// With a configured validator the identity comes from a bearer token, otherwise from
// the X-User-ID header. Requests without an identity are rejected with 401.
func Middleware(validator *JWTValidator, logger *zap.Logger) func(http.Handler) http.Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id, err := resolve(r, validator)
			if err != nil {
				logger.Debug("Request rejected", zap.String("path", r.URL.Path), zap.Error(err))
				apphttp.DefaultErrorHandler(w, err)
				return
			}
			next.ServeHTTP(w, r.WithContext(WithIdentity(r.Context(), id)))
		})
	}
}

func resolve(r *http.Request, validator *JWTValidator) (string, error) {
	if !validator.IsConfigured() {
		id := r.Header.Get(UserIDHeader)
		if id == "" {
			return "", apperrors.UnAuthorizedError(nil, "missing "+UserIDHeader+" header")
		}
		return id, nil
	}

	token, ok := strings.CutPrefix(r.Header.Get("Authorization"), "Bearer ")
	if !ok || token == "" {
		return "", apperrors.UnAuthorizedError(nil, "missing bearer token")
	}
	id, err := validator.ValidateToken(r.Context(), token)
	if err != nil {
		return "", apperrors.UnAuthorizedError(err, "invalid bearer token")
	}
	return id, nil
}
