package models

// ValidateVotes checks the shape and budget of a submission before
// anything touches storage. It returns the user-facing message for
// the first violation, or an empty string when the entries are valid.
// An empty slice is valid: it means "clear my votes".
func ValidateVotes(votes []VoteEntry) string {
	seen := make(map[string]struct{}, len(votes))
	total := 0
	for _, v := range votes {
		if v.Points < 0 {
			return "Points must be non-negative"
		}
		if _, dup := seen[v.FeatureID]; dup {
			return "Duplicate feature in votes"
		}
		seen[v.FeatureID] = struct{}{}
		total += v.Points
	}
	if total > PointBudget {
		return "Total points exceed 100"
	}
	return ""
}
