package dynamo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"github.com/pricewatch/pricewatch-server/internal/model"
)

var _ model.UserStore = (*UserRepository)(nil)

type UserRepository struct {
	client *Client
}

func NewUserRepository(client *Client) *UserRepository {
	return &UserRepository{
		client: client,
	}
}

type userItem struct {
	PK             string    `dynamodbav:"PK"`
	SK             string    `dynamodbav:"SK"`
	Email          string    `dynamodbav:"email"`
	HashedPassword string    `dynamodbav:"hashedPassword"`
	PhoneNumber    string    `dynamodbav:"phoneNumber"`
	CreatedAt      time.Time `dynamodbav:"createdAt"`
}

func userKey(email string) map[string]types.AttributeValue {
	return map[string]types.AttributeValue{
		"PK": &types.AttributeValueMemberS{Value: userPK(email)},
		"SK": &types.AttributeValueMemberS{Value: userSortKey},
	}
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (model.User, error) {
	out, err := r.client.api.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.client.table),
		Key:       userKey(email),
	})
	if err != nil {
		return model.User{}, fmt.Errorf("failed to get user by email: %w", err)
	}
	if len(out.Item) == 0 {
		return model.User{}, model.ErrNotFound
	}

	var item userItem
	if err := attributevalue.UnmarshalMap(out.Item, &item); err != nil {
		return model.User{}, fmt.Errorf("failed to unmarshal user item: %w", err)
	}

	return model.User{
		Email:        item.Email,
		PasswordHash: item.HashedPassword,
		PhoneNumber:  item.PhoneNumber,
		CreatedAt:    item.CreatedAt,
	}, nil
}

// Create writes the user record with a conditional put so that two
// concurrent registrations of the same email cannot both succeed.
func (r *UserRepository) Create(ctx context.Context, user model.User) (model.User, error) {
	item, err := attributevalue.MarshalMap(userItem{
		PK:             userPK(user.Email),
		SK:             userSortKey,
		Email:          user.Email,
		HashedPassword: user.PasswordHash,
		PhoneNumber:    user.PhoneNumber,
		CreatedAt:      user.CreatedAt,
	})
	if err != nil {
		return model.User{}, fmt.Errorf("failed to marshal user item: %w", err)
	}

	_, err = r.client.api.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.client.table),
		Item:                item,
		ConditionExpression: aws.String("attribute_not_exists(PK)"),
	})
	if err != nil {
		var conditionFailed *types.ConditionalCheckFailedException
		if errors.As(err, &conditionFailed) {
			return model.User{}, model.ErrAlreadyExists
		}
		return model.User{}, fmt.Errorf("failed to create user: %w", err)
	}

	return user, nil
}
