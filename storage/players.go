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

type PlayerStorage interface {
	// Get is scoped to a session: a player id that exists under a
	// different session resolves to ErrNotFound.
	Get(ctx context.Context, sessionID, playerID string) (*Player, error)
	ListBySession(ctx context.Context, sessionID string) ([]*Player, error)
	Put(ctx context.Context, player *Player) error
}

type DynamoPlayerStorage struct {
	Client    *dynamodb.Client
	TableName string
	Timeout   time.Duration
}

func (s *DynamoPlayerStorage) Get(ctx context.Context, sessionID, playerID string) (*Player, error) {
	ctx, cancel := withCallTimeout(ctx, s.Timeout)
	defer cancel()

	key, err := attributevalue.MarshalMap(map[string]string{"PK": sessionID, "SK": playerID})
	if err != nil {
		logging.Log.Errorf("PLAYER: failed to marshal key: %v", err)
		return nil, err
	}

	out, err := s.Client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: &s.TableName,
		Key:       key,
	})
	if err != nil {
		logging.Log.Errorf("PLAYER: GET storage failed: %v", err)
		return nil, err
	}
	if out.Item == nil {
		return nil, ErrNotFound
	}

	var player *Player
	if err := attributevalue.UnmarshalMap(out.Item, &player); err != nil {
		logging.Log.Errorf("PLAYER: failed to unmarshal result: %v", err)
		return nil, err
	}
	return player, nil
}

func (s *DynamoPlayerStorage) ListBySession(ctx context.Context, sessionID string) ([]*Player, error) {
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
		logging.Log.Errorf("PLAYER: failed to query players by session: %v", err)
		return nil, err
	}

	var players []*Player
	if err := attributevalue.UnmarshalListOfMaps(out.Items, &players); err != nil {
		logging.Log.Errorf("PLAYER: failed to unmarshal players for session %s: %v", sessionID, err)
		return nil, err
	}
	return players, nil
}

func (s *DynamoPlayerStorage) Put(ctx context.Context, player *Player) error {
	ctx, cancel := withCallTimeout(ctx, s.Timeout)
	defer cancel()

	if player.CreatedAt.IsZero() {
		player.CreatedAt = time.Now().UTC()
	}
	item, err := attributevalue.MarshalMap(player)
	if err != nil {
		logging.Log.Errorf("PLAYER: failed to marshal player: %v", err)
		return err
	}

	_, err = s.Client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           &s.TableName,
		Item:                item,
		ConditionExpression: aws.String("attribute_not_exists(PK) AND attribute_not_exists(SK)"),
	})
	if err != nil {
		logging.Log.Errorf("PLAYER: PUT storage failed: %v", err)
		return err
	}
	return nil
}
