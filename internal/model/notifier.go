package model

import "context"

// Notifier registers a phone number for outbound SMS notifications.
// Registration is best-effort: callers may log a failure and move on.
type Notifier interface {
	RegisterPhoneNumber(ctx context.Context, phoneNumber string) error
}
