// Package dynamo implements the key-value storage backend on a single
// DynamoDB table. Users and products share the table and are distinguished
// by a composite key: the partition key carries the owning user's email
// (USER#<email>) and the sort key carries the record kind (INFO for the
// user record, PRODUCT#<id> for products). Ownership isolation holds by
// construction: every request binds the owner into the partition key.
package dynamo

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
)

// dynamoAPI is the subset of the DynamoDB client used by the repositories.
// *dynamodb.Client satisfies it; tests inject fakes.
type dynamoAPI interface {
	GetItem(ctx context.Context, params *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error)
	PutItem(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
	Query(ctx context.Context, params *dynamodb.QueryInput, optFns ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error)
	DeleteItem(ctx context.Context, params *dynamodb.DeleteItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.DeleteItemOutput, error)
	UpdateItem(ctx context.Context, params *dynamodb.UpdateItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.UpdateItemOutput, error)
}

// Client holds the shared DynamoDB client and table name for both
// repositories.
type Client struct {
	api   dynamoAPI
	table string
}

// NewClient creates a storage client over a DynamoDB API and table name.
func NewClient(api dynamoAPI, table string) *Client {
	return &Client{
		api:   api,
		table: table,
	}
}

const (
	userKeyPrefix    = "USER#"
	productKeyPrefix = "PRODUCT#"
	userSortKey      = "INFO"
)

func userPK(email string) string {
	return userKeyPrefix + email
}

func productSK(productID string) string {
	return productKeyPrefix + productID
}
