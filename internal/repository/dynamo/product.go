package dynamo

import (
	"context"
	"errors"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"github.com/pricewatch/pricewatch-server/internal/model"
)

var _ model.ProductStore = (*ProductRepository)(nil)

type ProductRepository struct {
	client *Client
}

func NewProductRepository(client *Client) *ProductRepository {
	return &ProductRepository{
		client: client,
	}
}

type productItem struct {
	PK            string `dynamodbav:"PK"`
	SK            string `dynamodbav:"SK"`
	ProductID     string `dynamodbav:"productId"`
	Name          string `dynamodbav:"name"`
	URL           string `dynamodbav:"url"`
	Vendor        string `dynamodbav:"vendor"`
	Price         string `dynamodbav:"price"`
	PreviousPrice string `dynamodbav:"previousPrice"`
}

func productKey(owner, productID string) map[string]types.AttributeValue {
	return map[string]types.AttributeValue{
		"PK": &types.AttributeValueMemberS{Value: userPK(owner)},
		"SK": &types.AttributeValueMemberS{Value: productSK(productID)},
	}
}

func (r *ProductRepository) Create(ctx context.Context, product model.Product) (model.Product, error) {
	item, err := attributevalue.MarshalMap(productItem{
		PK:            userPK(product.Owner),
		SK:            productSK(product.ID),
		ProductID:     product.ID,
		Name:          product.Name,
		URL:           product.URL,
		Vendor:        product.Vendor,
		Price:         product.Price,
		PreviousPrice: product.PreviousPrice,
	})
	if err != nil {
		return model.Product{}, fmt.Errorf("failed to marshal product item: %w", err)
	}

	_, err = r.client.api.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.client.table),
		Item:      item,
	})
	if err != nil {
		return model.Product{}, fmt.Errorf("failed to create product: %w", err)
	}

	return product, nil
}

// GetByOwner queries the owner's partition for product sort keys. Scan order
// is the engine's natural key order; callers must not rely on it.
func (r *ProductRepository) GetByOwner(ctx context.Context, owner string) ([]model.Product, error) {
	out, err := r.client.api.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.client.table),
		KeyConditionExpression: aws.String("PK = :pk AND begins_with(SK, :sk)"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":pk": &types.AttributeValueMemberS{Value: userPK(owner)},
			":sk": &types.AttributeValueMemberS{Value: productKeyPrefix},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to query products by owner: %w", err)
	}

	items := make([]productItem, 0, len(out.Items))
	if err := attributevalue.UnmarshalListOfMaps(out.Items, &items); err != nil {
		return nil, fmt.Errorf("failed to unmarshal product items: %w", err)
	}

	products := make([]model.Product, 0, len(items))
	for _, item := range items {
		products = append(products, model.Product{
			Owner:         owner,
			ID:            item.ProductID,
			Name:          item.Name,
			URL:           item.URL,
			Vendor:        item.Vendor,
			Price:         item.Price,
			PreviousPrice: item.PreviousPrice,
		})
	}

	return products, nil
}

// Delete removes the product at {owner, id}. DynamoDB deletes are
// idempotent; an absent key is not an error.
func (r *ProductRepository) Delete(ctx context.Context, owner string, productID string) error {
	_, err := r.client.api.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.client.table),
		Key:       productKey(owner, productID),
	})
	if err != nil {
		return fmt.Errorf("failed to delete product: %w", err)
	}

	return nil
}

// UpdatePrice moves the current price into previousPrice and sets the new
// price in a single update. Attribute reads in the update expression see the
// pre-update item, so the swap is atomic. The existence condition keeps the
// update from materializing a phantom item for an unknown key.
func (r *ProductRepository) UpdatePrice(ctx context.Context, owner string, productID string, newPrice string) error {
	_, err := r.client.api.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:           aws.String(r.client.table),
		Key:                 productKey(owner, productID),
		UpdateExpression:    aws.String("SET previousPrice = price, price = :newPrice"),
		ConditionExpression: aws.String("attribute_exists(SK)"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":newPrice": &types.AttributeValueMemberS{Value: newPrice},
		},
	})
	if err != nil {
		var conditionFailed *types.ConditionalCheckFailedException
		if errors.As(err, &conditionFailed) {
			return model.ErrNotFound
		}
		return fmt.Errorf("failed to update product price: %w", err)
	}

	return nil
}
