package storage

import (
	"context"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/simantaparida/featurevote/logging"
)

type VoteStorage interface {
	// DeleteByPlayer removes every vote one player holds in a session
	// and nothing else.
	DeleteByPlayer(ctx context.Context, sessionID, playerID string) error
	// PutBatch writes a set of votes as one batch. There is no
	// multi-statement transaction here; callers own the
	// delete-then-insert ordering.
	PutBatch(ctx context.Context, votes []*Vote) error
	ListBySession(ctx context.Context, sessionID string) ([]*Vote, error)
	// ListVotedPlayers returns the distinct player ids holding at
	// least one vote in the session.
	ListVotedPlayers(ctx context.Context, sessionID string) ([]string, error)
}

const batchWriteLimit = 25

type DynamoVoteStorage struct {
	Client    *dynamodb.Client
	TableName string
	Timeout   time.Duration
}

func (s *DynamoVoteStorage) DeleteByPlayer(ctx context.Context, sessionID, playerID string) error {
	ctx, cancel := withCallTimeout(ctx, s.Timeout)
	defer cancel()

	var lastEvaluatedKey map[string]types.AttributeValue

	for {
		out, err := s.Client.Query(ctx, &dynamodb.QueryInput{
			TableName:              &s.TableName,
			KeyConditionExpression: aws.String("PK = :sid AND begins_with(SK, :prefix)"),
			ExpressionAttributeValues: map[string]types.AttributeValue{
				":sid":    &types.AttributeValueMemberS{Value: sessionID},
				":prefix": &types.AttributeValueMemberS{Value: VotePlayerPrefix(playerID)},
			},
			ProjectionExpression: aws.String("PK, SK"),
			ExclusiveStartKey:    lastEvaluatedKey,
		})
		if err != nil {
			logging.Log.Errorf("VOTE: query for delete failed: %v", err)
			return err
		}

		var writeRequests []types.WriteRequest
		for _, item := range out.Items {
			writeRequests = append(writeRequests, types.WriteRequest{
				DeleteRequest: &types.DeleteRequest{
					Key: map[string]types.AttributeValue{
						"PK": item["PK"],
						"SK": item["SK"],
					},
				},
			})
		}

		if err := s.writeBatches(ctx, writeRequests); err != nil {
			logging.Log.Errorf("VOTE: batch delete failed: %v", err)
			return err
		}

		if out.LastEvaluatedKey == nil {
			break
		}
		lastEvaluatedKey = out.LastEvaluatedKey
	}
	return nil
}

func (s *DynamoVoteStorage) PutBatch(ctx context.Context, votes []*Vote) error {
	ctx, cancel := withCallTimeout(ctx, s.Timeout)
	defer cancel()

	writeRequests := make([]types.WriteRequest, 0, len(votes))
	for _, vote := range votes {
		if vote.SortKey == "" {
			vote.SortKey = VoteSortKey(vote.PlayerID, vote.FeatureID)
		}
		if vote.CreatedAt.IsZero() {
			vote.CreatedAt = time.Now().UTC()
		}
		item, err := attributevalue.MarshalMap(vote)
		if err != nil {
			logging.Log.Errorf("VOTE: failed to marshal vote: %v", err)
			return err
		}
		writeRequests = append(writeRequests, types.WriteRequest{
			PutRequest: &types.PutRequest{Item: item},
		})
	}

	if err := s.writeBatches(ctx, writeRequests); err != nil {
		logging.Log.Errorf("VOTE: batch put failed: %v", err)
		return err
	}
	return nil
}

// writeBatches flushes write requests in chunks of the Dynamo batch
// limit, retrying unprocessed items a few times before giving up.
func (s *DynamoVoteStorage) writeBatches(ctx context.Context, writeRequests []types.WriteRequest) error {
	for i := 0; i < len(writeRequests); i += batchWriteLimit {
		end := i + batchWriteLimit
		if end > len(writeRequests) {
			end = len(writeRequests)
		}

		pending := writeRequests[i:end]
		for attempt := 0; attempt < 3 && len(pending) > 0; attempt++ {
			out, err := s.Client.BatchWriteItem(ctx, &dynamodb.BatchWriteItemInput{
				RequestItems: map[string][]types.WriteRequest{
					s.TableName: pending,
				},
			})
			if err != nil {
				return err
			}
			pending = out.UnprocessedItems[s.TableName]
		}
		if len(pending) > 0 {
			return fmt.Errorf("%d write requests left unprocessed after retries", len(pending))
		}
	}
	return nil
}

func (s *DynamoVoteStorage) ListBySession(ctx context.Context, sessionID string) ([]*Vote, error) {
	ctx, cancel := withCallTimeout(ctx, s.Timeout)
	defer cancel()

	var votes []*Vote
	var lastEvaluatedKey map[string]types.AttributeValue

	for {
		out, err := s.Client.Query(ctx, &dynamodb.QueryInput{
			TableName:              &s.TableName,
			KeyConditionExpression: aws.String("PK = :sid"),
			ExpressionAttributeValues: map[string]types.AttributeValue{
				":sid": &types.AttributeValueMemberS{Value: sessionID},
			},
			ExclusiveStartKey: lastEvaluatedKey,
		})
		if err != nil {
			logging.Log.Errorf("VOTE: failed to query votes by session: %v", err)
			return nil, err
		}

		var page []*Vote
		if err := attributevalue.UnmarshalListOfMaps(out.Items, &page); err != nil {
			logging.Log.Errorf("VOTE: failed to unmarshal votes for session %s: %v", sessionID, err)
			return nil, err
		}
		votes = append(votes, page...)

		if out.LastEvaluatedKey == nil {
			break
		}
		lastEvaluatedKey = out.LastEvaluatedKey
	}
	return votes, nil
}

func (s *DynamoVoteStorage) ListVotedPlayers(ctx context.Context, sessionID string) ([]string, error) {
	votes, err := s.ListBySession(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]struct{}, len(votes))
	players := make([]string, 0, len(votes))
	for _, vote := range votes {
		if _, ok := seen[vote.PlayerID]; ok {
			continue
		}
		seen[vote.PlayerID] = struct{}{}
		players = append(players, vote.PlayerID)
	}
	return players, nil
}
