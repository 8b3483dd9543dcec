package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateVotes(t *testing.T) {
	tests := []struct {
		name  string
		votes []VoteEntry
		want  string
	}{
		{name: "empty submission is valid", votes: nil, want: ""},
		{name: "exact budget is valid", votes: []VoteEntry{{FeatureID: "a", Points: 60}, {FeatureID: "b", Points: 40}}, want: ""},
		{name: "partial allocation is valid", votes: []VoteEntry{{FeatureID: "a", Points: 10}}, want: ""},
		{name: "zero points are valid", votes: []VoteEntry{{FeatureID: "a", Points: 0}}, want: ""},
		{name: "over budget", votes: []VoteEntry{{FeatureID: "a", Points: 70}, {FeatureID: "b", Points: 40}}, want: "Total points exceed 100"},
		{name: "negative points", votes: []VoteEntry{{FeatureID: "a", Points: -1}}, want: "Points must be non-negative"},
		{name: "negative before budget check", votes: []VoteEntry{{FeatureID: "a", Points: -1}, {FeatureID: "b", Points: 200}}, want: "Points must be non-negative"},
		{name: "duplicate feature", votes: []VoteEntry{{FeatureID: "a", Points: 10}, {FeatureID: "a", Points: 10}}, want: "Duplicate feature in votes"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ValidateVotes(tt.votes))
		})
	}
}
