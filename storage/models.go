package storage

import (
	"fmt"
	"strings"
	"time"
)

type Session struct {
	ID        string    `dynamodbav:"PK" json:"id"`
	Title     string    `dynamodbav:"Title" json:"title"`
	Status    string    `dynamodbav:"Status" json:"status"`
	CreatedAt time.Time `dynamodbav:"CreatedAt" json:"createdAt"`
}

type Player struct {
	SessionID string    `dynamodbav:"PK" json:"sessionId"`
	ID        string    `dynamodbav:"SK" json:"id"`
	Name      string    `dynamodbav:"Name" json:"name"`
	Ready     bool      `dynamodbav:"Ready" json:"ready"`
	CreatedAt time.Time `dynamodbav:"CreatedAt" json:"createdAt"`
}

type Feature struct {
	SessionID   string    `dynamodbav:"PK" json:"sessionId"`
	ID          string    `dynamodbav:"SK" json:"id"`
	Title       string    `dynamodbav:"Title" json:"title"`
	Description string    `dynamodbav:"Description" json:"description"`
	CreatedAt   time.Time `dynamodbav:"CreatedAt" json:"createdAt"`
}

type Vote struct {
	SessionID string    `dynamodbav:"PK" json:"sessionId"`
	SortKey   string    `dynamodbav:"SK" json:"-"` // player#<playerId>#feature#<featureId>
	PlayerID  string    `dynamodbav:"PlayerID" json:"playerId"`
	FeatureID string    `dynamodbav:"FeatureID" json:"featureId"`
	Points    int       `dynamodbav:"Points" json:"points"`
	Note      *string   `dynamodbav:"Note" json:"note,omitempty"`
	CreatedAt time.Time `dynamodbav:"CreatedAt" json:"createdAt"`
}

// VoteSortKey builds the composite range key, unique per
// (player, feature) within a session.
func VoteSortKey(playerID, featureID string) string {
	return fmt.Sprintf("player#%s#feature#%s", playerID, featureID)
}

// VotePlayerPrefix is the range-key prefix covering every vote of one
// player, used for per-player deletion scope.
func VotePlayerPrefix(playerID string) string {
	return fmt.Sprintf("player#%s#feature#", playerID)
}

func voteKeyMatchesPlayer(sortKey, playerID string) bool {
	return strings.HasPrefix(sortKey, VotePlayerPrefix(playerID))
}
