package domain

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
)

type contextKey string

const loggerContextKey contextKey = "logger"

func ContextWithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, loggerContextKey, logger)
}

func LoggerFromContext(ctx context.Context) *slog.Logger {
	logger := ctx.Value(loggerContextKey)
	if logger == nil {
		logger = slog.Default()
	}

	return logger.(*slog.Logger)
}

const userContextKey contextKey = "user"

func ContextWithUserID(ctx context.Context, userID uuid.UUID) context.Context {
	return context.WithValue(ctx, userContextKey, userID)
}

// UserIDFromContext returns the authenticated user's ID, or uuid.Nil when the
// request carried no valid credentials.
func UserIDFromContext(ctx context.Context) uuid.UUID {
	userID := ctx.Value(userContextKey)
	if userID == nil {
		return uuid.Nil
	}
	return userID.(uuid.UUID)
}

type AuthMethod string

const AuthMethodAuth0 AuthMethod = "auth0"

const authMethodContextKey contextKey = "auth_method"

func ContextWithAuthMethod(ctx context.Context, method AuthMethod) context.Context {
	return context.WithValue(ctx, authMethodContextKey, method)
}

func AuthMethodFromContext(ctx context.Context) AuthMethod {
	method := ctx.Value(authMethodContextKey)
	if method == nil {
		method = AuthMethod("")
	}
	return method.(AuthMethod)
}
