package context

import "context"

type contextKey string

// userEmailKey is the context key holding the authenticated user's email.
const userEmailKey contextKey = "user_email"

// Manager stores and retrieves the authenticated user's email on the
// request context.
type Manager struct{}

// NewManager creates a new context manager instance.
func NewManager() *Manager {
	return &Manager{}
}

func (m *Manager) SetUserEmailToContext(ctx context.Context, email string) context.Context {
	return context.WithValue(ctx, userEmailKey, email)
}

func (m *Manager) GetUserEmailFromContext(ctx context.Context) (string, bool) {
	email, ok := ctx.Value(userEmailKey).(string)
	if !ok || email == "" {
		return "", false
	}
	return email, true
}
