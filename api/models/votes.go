package models

type VoteEntry struct {
	FeatureID string `json:"featureId"`
	Points    int    `json:"points"`
	Note      string `json:"note,omitempty"`
}

type SubmitVotesRequest struct {
	PlayerID string      `json:"playerId"`
	Votes    []VoteEntry `json:"votes"`
}

type SubmitVotesResponse struct {
	Success bool `json:"success"`
}

type FeatureResult struct {
	FeatureID   string  `json:"featureId"`
	Title       string  `json:"title"`
	TotalPoints int     `json:"totalPoints"`
	Backers     int     `json:"backers"`
	Support     float64 `json:"support"`
	Rank        int     `json:"rank"`
}

type SessionResultsResponse struct {
	SessionID string          `json:"sessionId"`
	Status    string          `json:"status"`
	Players   int             `json:"players"`
	Results   []FeatureResult `json:"results"`
}
