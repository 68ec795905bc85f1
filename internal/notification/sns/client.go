// Package sns registers phone numbers as verified SMS sandbox destinations
// so the price-alert pipeline can text them later.
package sns

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sns"

	"github.com/pricewatch/pricewatch-server/internal/model"
)

// snsAPI is the subset of the SNS client used here. *sns.Client satisfies
// it; tests inject fakes.
type snsAPI interface {
	CreateSMSSandboxPhoneNumber(ctx context.Context, params *sns.CreateSMSSandboxPhoneNumberInput, optFns ...func(*sns.Options)) (*sns.CreateSMSSandboxPhoneNumberOutput, error)
}

var _ model.Notifier = (*Client)(nil)

type Client struct {
	api snsAPI
}

// NewClient creates a notifier over an SNS API.
func NewClient(api snsAPI) *Client {
	return &Client{
		api: api,
	}
}

// RegisterPhoneNumber adds phoneNumber to the verified sandbox destinations.
func (c *Client) RegisterPhoneNumber(ctx context.Context, phoneNumber string) error {
	_, err := c.api.CreateSMSSandboxPhoneNumber(ctx, &sns.CreateSMSSandboxPhoneNumberInput{
		PhoneNumber: aws.String(phoneNumber),
	})
	if err != nil {
		return fmt.Errorf("failed to register sandbox phone number: %w", err)
	}

	return nil
}
