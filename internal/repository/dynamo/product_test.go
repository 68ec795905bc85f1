package dynamo

import (
	"context"
	"testing"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pricewatch/pricewatch-server/internal/model"
)

func TestProductRepository_Create(t *testing.T) {
	api := &fakeAPI{
		putItem: func(params *dynamodb.PutItemInput) (*dynamodb.PutItemOutput, error) {
			assert.Equal(t, "UserProducts", *params.TableName)
			assert.Equal(t, &types.AttributeValueMemberS{Value: "USER#a@b.com"}, params.Item["PK"])
			assert.Equal(t, &types.AttributeValueMemberS{Value: "PRODUCT#0123456789abcdef0123456789abcdef"}, params.Item["SK"])
			assert.Equal(t, &types.AttributeValueMemberS{Value: "9.99"}, params.Item["price"])
			return &dynamodb.PutItemOutput{}, nil
		},
	}
	repo := NewProductRepository(NewClient(api, "UserProducts"))

	product := model.Product{
		Owner:         "a@b.com",
		ID:            "0123456789abcdef0123456789abcdef",
		Name:          "Widget",
		URL:           "http://x",
		Vendor:        "V",
		Price:         "9.99",
		PreviousPrice: "12.99",
	}
	saved, err := repo.Create(context.Background(), product)
	require.NoError(t, err)
	assert.Equal(t, product, saved)
}

func TestProductRepository_GetByOwner(t *testing.T) {
	stored, err := attributevalue.MarshalMap(productItem{
		PK:            "USER#a@b.com",
		SK:            "PRODUCT#abc",
		ProductID:     "abc",
		Name:          "Widget",
		URL:           "http://x",
		Vendor:        "V",
		Price:         "9.99",
		PreviousPrice: "12.99",
	})
	require.NoError(t, err)

	api := &fakeAPI{
		query: func(params *dynamodb.QueryInput) (*dynamodb.QueryOutput, error) {
			// the owner is bound into the partition key; products of other
			// users are unreachable by construction
			assert.Equal(t, "PK = :pk AND begins_with(SK, :sk)", *params.KeyConditionExpression)
			assert.Equal(t, &types.AttributeValueMemberS{Value: "USER#a@b.com"}, params.ExpressionAttributeValues[":pk"])
			assert.Equal(t, &types.AttributeValueMemberS{Value: "PRODUCT#"}, params.ExpressionAttributeValues[":sk"])
			return &dynamodb.QueryOutput{Items: []map[string]types.AttributeValue{stored}}, nil
		},
	}
	repo := NewProductRepository(NewClient(api, "UserProducts"))

	products, err := repo.GetByOwner(context.Background(), "a@b.com")
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, model.Product{
		Owner:         "a@b.com",
		ID:            "abc",
		Name:          "Widget",
		URL:           "http://x",
		Vendor:        "V",
		Price:         "9.99",
		PreviousPrice: "12.99",
	}, products[0])
}

func TestProductRepository_GetByOwner_Empty(t *testing.T) {
	api := &fakeAPI{
		query: func(params *dynamodb.QueryInput) (*dynamodb.QueryOutput, error) {
			return &dynamodb.QueryOutput{}, nil
		},
	}
	repo := NewProductRepository(NewClient(api, "UserProducts"))

	products, err := repo.GetByOwner(context.Background(), "b@b.com")
	require.NoError(t, err)
	assert.Empty(t, products)
}

func TestProductRepository_Delete(t *testing.T) {
	var deletedKey map[string]types.AttributeValue
	api := &fakeAPI{
		deleteItem: func(params *dynamodb.DeleteItemInput) (*dynamodb.DeleteItemOutput, error) {
			deletedKey = params.Key
			return &dynamodb.DeleteItemOutput{}, nil
		},
	}
	repo := NewProductRepository(NewClient(api, "UserProducts"))

	err := repo.Delete(context.Background(), "a@b.com", "abc")
	require.NoError(t, err)
	assert.Equal(t, &types.AttributeValueMemberS{Value: "USER#a@b.com"}, deletedKey["PK"])
	assert.Equal(t, &types.AttributeValueMemberS{Value: "PRODUCT#abc"}, deletedKey["SK"])
}

func TestProductRepository_UpdatePrice(t *testing.T) {
	api := &fakeAPI{
		updateItem: func(params *dynamodb.UpdateItemInput) (*dynamodb.UpdateItemOutput, error) {
			assert.Equal(t, "SET previousPrice = price, price = :newPrice", *params.UpdateExpression)
			assert.Equal(t, "attribute_exists(SK)", *params.ConditionExpression)
			assert.Equal(t, &types.AttributeValueMemberS{Value: "USER#a@b.com"}, params.Key["PK"])
			assert.Equal(t, &types.AttributeValueMemberS{Value: "PRODUCT#abc"}, params.Key["SK"])
			assert.Equal(t, &types.AttributeValueMemberS{Value: "7.49"}, params.ExpressionAttributeValues[":newPrice"])
			return &dynamodb.UpdateItemOutput{}, nil
		},
	}
	repo := NewProductRepository(NewClient(api, "UserProducts"))

	require.NoError(t, repo.UpdatePrice(context.Background(), "a@b.com", "abc", "7.49"))
}

func TestProductRepository_UpdatePrice_NotFound(t *testing.T) {
	api := &fakeAPI{
		updateItem: func(params *dynamodb.UpdateItemInput) (*dynamodb.UpdateItemOutput, error) {
			return nil, &types.ConditionalCheckFailedException{}
		},
	}
	repo := NewProductRepository(NewClient(api, "UserProducts"))

	err := repo.UpdatePrice(context.Background(), "a@b.com", "missing", "7.49")
	require.ErrorIs(t, err, model.ErrNotFound)
}
