package auth

import (
	"context"
	"net/http"
	"strings"

	"go.uber.org/zap"

	apperrors "github.com/chainsafe/canton-identity/pkg/app/errors"
	apphttp "github.com/chainsafe/canton-identity/pkg/app/http"
)

// TokenValidator resolves a bearer token to its subject. *JWTValidator implements it.
type TokenValidator interface {
	Subject(ctx context.Context, token string) (string, error)
}

// Middleware rejects requests without a valid bearer token with 401 and
// stores the token subject in the request context.
func Middleware(validator TokenValidator, logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token, ok := bearerToken(r)
			if !ok {
				apphttp.DefaultErrorHandler(w, apperrors.UnAuthorizedError(nil, "missing bearer token"))
				return
			}

			sub, err := validator.Subject(r.Context(), token)
			if err != nil {
				logger.Debug("rejected bearer token", zap.Error(err))
				apphttp.DefaultErrorHandler(w, apperrors.UnAuthorizedError(err, "invalid bearer token"))
				return
			}

			next.ServeHTTP(w, r.WithContext(WithSubject(r.Context(), sub)))
		})
	}
}

func bearerToken(r *http.Request) (string, bool) {
	header := r.Header.Get("Authorization")
	scheme, token, ok := strings.Cut(header, " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}
	token = strings.TrimSpace(token)
	return token, token != ""
}
