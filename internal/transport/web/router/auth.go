package router

import (
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/auth0/go-jwt-middleware/v2/jwks"
	"github.com/auth0/go-jwt-middleware/v2/validator"
	"github.com/google/uuid"

	"github.com/narravia/content-recommendations/internal/domain"
)

// AuthResult represents the result of a successful authentication.
type AuthResult struct {
	UserID uuid.UUID
	Method domain.AuthMethod
}

// AuthValidator attempts to validate authentication from a request.
// Returns nil, nil if this validator doesn't apply (wrong auth type).
// Returns AuthResult, nil on success.
// Returns nil, error if validation was attempted but failed.
type AuthValidator func(r *http.Request) (*AuthResult, error)

// NewAuthMiddleware creates a middleware that validates requests using multiple authentication methods.
func NewAuthMiddleware(validators []AuthValidator) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			for _, validate := range validators {
				result, err := validate(r)
				if result == nil && err == nil {
					continue // This validator doesn't apply
				}

				if err != nil {
					logger := domain.LoggerFromContext(r.Context())
					logger.WarnContext(r.Context(), "authentication failed", "error", err)
					w.Header().Set("Content-Type", "application/json")
					w.WriteHeader(http.StatusUnauthorized)
					_, _ = fmt.Fprintf(w, `{"message":"%s"}`, err.Error())
					return
				}

				ctx := domain.ContextWithUserID(r.Context(), result.UserID)
				ctx = domain.ContextWithAuthMethod(ctx, result.Method)
				next.ServeHTTP(w, r.WithContext(ctx))
				return
			}

			// No validator matched - continue without auth (for public endpoints)
			next.ServeHTTP(w, r)
		})
	}
}

// NewAuth0Validator creates a validator for Auth0 JWT tokens.
// Platform tokens carry the user's UUID as the JWT subject.
func NewAuth0Validator(auth0Domain, auth0Audience string) (AuthValidator, error) {
	issuerURL, err := url.Parse("https://" + auth0Domain + "/")
	if err != nil {
		return nil, fmt.Errorf("failed to parse the issuer url: %w", err)
	}

	provider := jwks.NewCachingProvider(issuerURL, 5*time.Minute)
	jwtValidator, err := validator.New(
		provider.KeyFunc,
		validator.RS256,
		issuerURL.String(),
		[]string{auth0Audience},
		validator.WithAllowedClockSkew(time.Minute),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create JWT validator: %w", err)
	}

	return func(r *http.Request) (*AuthResult, error) {
		authHeader := r.Header.Get("Authorization")
		if !strings.HasPrefix(authHeader, "Bearer auth0|") {
			return nil, nil
		}

		token, err := jwtValidator.ValidateToken(r.Context(), authHeader[len("Bearer auth0|"):])
		if err != nil {
			return nil, fmt.Errorf("invalid JWT token")
		}

		claims := token.(*validator.ValidatedClaims)
		userID, err := uuid.Parse(claims.RegisteredClaims.Subject)
		if err != nil {
			return nil, fmt.Errorf("JWT subject is not a valid user ID")
		}

		return &AuthResult{
			UserID: userID,
			Method: domain.AuthMethodAuth0,
		}, nil
	}, nil
}
