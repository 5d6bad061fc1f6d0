package middleware

import (
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/atelier-ai/atelier-server/internal/logger"
	"github.com/atelier-ai/atelier-server/internal/model"
)

// TokenParser resolves user ID from bearer tokens.
type TokenParser interface {
	ParseAccessToken(token string) (uuid.UUID, error)
}

// Authenticate validates bearer tokens and injects user ID into context.
type Authenticate struct {
	tokenParser    TokenParser
	contextManager model.ContextManager
	logger         *logger.Logger
}

// NewAuthenticate creates a new Authenticate middleware instance.
func NewAuthenticate(tokenParser TokenParser, contextManager model.ContextManager, logger *logger.Logger) *Authenticate {
	return &Authenticate{tokenParser: tokenParser, contextManager: contextManager, logger: logger}
}

// Handle parses the Authorization header, validates the token and calls next
// with the user ID set on the request context.
func (m *Authenticate) Handle(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			ErrorResponse(w, http.StatusUnauthorized, "missing authorization token")
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader || tokenString == "" {
			ErrorResponse(w, http.StatusUnauthorized, "invalid authorization header")
			return
		}

		userID, err := m.tokenParser.ParseAccessToken(tokenString)
		if err != nil || userID == uuid.Nil {
			m.logger.Debug("Authenticate middleware: token rejected",
				"path", r.URL.Path)
			ErrorResponse(w, http.StatusUnauthorized, "invalid authorization token")
			return
		}

		next(w, r.WithContext(m.contextManager.SetUserIDToContext(r.Context(), userID)))
	}
}
