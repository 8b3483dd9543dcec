package storage

import (
	"context"
	"errors"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/simantaparida/featurevote/logging"
)

type SessionStorage interface {
	Get(ctx context.Context, id string) (*Session, error)
	Put(ctx context.Context, session *Session) error
	UpdateStatus(ctx context.Context, id string, status string) error
}

type DynamoSessionStorage struct {
	Client    *dynamodb.Client
	TableName string
	Timeout   time.Duration
}

func (s *DynamoSessionStorage) Get(ctx context.Context, id string) (*Session, error) {
	ctx, cancel := withCallTimeout(ctx, s.Timeout)
	defer cancel()

	key, err := attributevalue.MarshalMap(map[string]string{"PK": id})
	if err != nil {
		logging.Log.Errorf("SESSION: failed to marshal key: %v", err)
		return nil, err
	}

	out, err := s.Client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: &s.TableName,
		Key:       key,
	})
	if err != nil {
		logging.Log.Errorf("SESSION: GET storage failed: %v", err)
		return nil, err
	}
	if out.Item == nil {
		return nil, ErrNotFound
	}

	var session *Session
	if err := attributevalue.UnmarshalMap(out.Item, &session); err != nil {
		logging.Log.Errorf("SESSION: failed to unmarshal result: %v", err)
		return nil, err
	}
	return session, nil
}

func (s *DynamoSessionStorage) Put(ctx context.Context, session *Session) error {
	ctx, cancel := withCallTimeout(ctx, s.Timeout)
	defer cancel()

	if session.CreatedAt.IsZero() {
		session.CreatedAt = time.Now().UTC()
	}
	item, err := attributevalue.MarshalMap(session)
	if err != nil {
		logging.Log.Errorf("SESSION: failed to marshal session: %v", err)
		return err
	}

	_, err = s.Client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           &s.TableName,
		Item:                item,
		ConditionExpression: aws.String("attribute_not_exists(PK)"),
	})
	if err != nil {
		logging.Log.Errorf("SESSION: PUT storage failed: %v", err)
		return err
	}
	return nil
}

func (s *DynamoSessionStorage) UpdateStatus(ctx context.Context, id string, status string) error {
	ctx, cancel := withCallTimeout(ctx, s.Timeout)
	defer cancel()

	input := &dynamodb.UpdateItemInput{
		TableName: aws.String(s.TableName),
		Key: map[string]types.AttributeValue{
			"PK": &types.AttributeValueMemberS{Value: id},
		},
		UpdateExpression:          aws.String("SET #S = :val"),
		ExpressionAttributeNames:  map[string]string{"#S": "Status"},
		ExpressionAttributeValues: map[string]types.AttributeValue{":val": &types.AttributeValueMemberS{Value: status}},
		ConditionExpression:       aws.String("attribute_exists(PK)"),
	}
	_, err := s.Client.UpdateItem(ctx, input)
	if err != nil {
		var conditionFailed *types.ConditionalCheckFailedException
		if errors.As(err, &conditionFailed) {
			return ErrNotFound
		}
		logging.Log.Errorf("SESSION: status update failed: %v", err)
		return err
	}
	return nil
}
