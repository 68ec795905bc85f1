// Package notification provides the no-op notifier used when outbound SMS
// registration is disabled.
package notification

import (
	"context"

	"github.com/pricewatch/pricewatch-server/internal/model"
)

var _ model.Notifier = (*Noop)(nil)

type Noop struct{}

func NewNoop() *Noop {
	return &Noop{}
}

func (n *Noop) RegisterPhoneNumber(ctx context.Context, phoneNumber string) error {
	return nil
}
