package middleware

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/pricewatch/pricewatch-server/internal/logger"
	"github.com/pricewatch/pricewatch-server/internal/model"
)

// TokenService resolves the user email from bearer tokens.
type TokenService interface {
	ParseToken(tokenString string) (string, error)
}

// Authenticate validates bearer tokens and injects the user email into
// the request context.
type Authenticate struct {
	tokenService   TokenService
	contextManager model.ContextManager
	logger         *logger.Logger
}

// NewAuthenticate creates a new Authenticate middleware instance.
func NewAuthenticate(tokenService TokenService, contextManager model.ContextManager, logger *logger.Logger) *Authenticate {
	return &Authenticate{tokenService: tokenService, contextManager: contextManager, logger: logger}
}

// Handle parses the Authorization header, validates the token and passes
// the request on with the user email set in its context. A missing token
// is rejected with 401, a token that fails validation with 403.
func (m *Authenticate) Handle(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")
		if header == "" {
			writeMessage(w, http.StatusUnauthorized, "Authorization token is required.")
			return
		}

		tokenString := strings.TrimPrefix(header, "Bearer ")

		email, err := m.tokenService.ParseToken(tokenString)
		if err != nil {
			m.logger.Debug("Authenticate middleware: token rejected",
				"path", r.URL.Path,
				"error", err.Error())
			writeMessage(w, http.StatusForbidden, "Invalid or expired token.")
			return
		}

		ctx := m.contextManager.SetUserEmailToContext(r.Context(), email)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func writeMessage(w http.ResponseWriter, statusCode int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(map[string]string{"message": message})
}
