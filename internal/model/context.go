package model

import "context"

type ContextManager interface {
	SetUserEmailToContext(ctx context.Context, email string) context.Context
	GetUserEmailFromContext(ctx context.Context) (string, bool)
}
