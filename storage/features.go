package storage

import (
	"context"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/simantaparida/featurevote/logging"
)

type FeatureStorage interface {
	ListBySession(ctx context.Context, sessionID string) ([]*Feature, error)
	Put(ctx context.Context, feature *Feature) error
}

type DynamoFeatureStorage struct {
	Client    *dynamodb.Client
	TableName string
	Timeout   time.Duration
}

func (s *DynamoFeatureStorage) ListBySession(ctx context.Context, sessionID string) ([]*Feature, error) {
	ctx, cancel := withCallTimeout(ctx, s.Timeout)
	defer cancel()

	out, err := s.Client.Query(ctx, &dynamodb.QueryInput{
		TableName:              &s.TableName,
		KeyConditionExpression: aws.String("PK = :sid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":sid": &types.AttributeValueMemberS{Value: sessionID},
		},
	})
	if err != nil {
		logging.Log.Errorf("FEATURE: failed to query features by session: %v", err)
		return nil, err
	}

	var features []*Feature
	if err := attributevalue.UnmarshalListOfMaps(out.Items, &features); err != nil {
		logging.Log.Errorf("FEATURE: failed to unmarshal features for session %s: %v", sessionID, err)
		return nil, err
	}
	return features, nil
}

func (s *DynamoFeatureStorage) Put(ctx context.Context, feature *Feature) error {
	ctx, cancel := withCallTimeout(ctx, s.Timeout)
	defer cancel()

	if feature.CreatedAt.IsZero() {
		feature.CreatedAt = time.Now().UTC()
	}
	item, err := attributevalue.MarshalMap(feature)
	if err != nil {
		logging.Log.Errorf("FEATURE: failed to marshal feature: %v", err)
		return err
	}

	_, err = s.Client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           &s.TableName,
		Item:                item,
		ConditionExpression: aws.String("attribute_not_exists(PK) AND attribute_not_exists(SK)"),
	})
	if err != nil {
		logging.Log.Errorf("FEATURE: PUT storage failed: %v", err)
		return err
	}
	return nil
}
