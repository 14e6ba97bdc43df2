package models

// SwipeAction is a decision against the current candidate.
type SwipeAction string

const (
	ActionLike      SwipeAction = "like"
	ActionPass      SwipeAction = "pass"
	ActionSuperLike SwipeAction = "super_like"
)

// Valid reports whether the action is one the backend accepts.
func (a SwipeAction) Valid() bool {
	switch a {
	case ActionLike, ActionPass, ActionSuperLike:
		return true
	}
	return false
}

// Candidate is one scored entry of the swipe deck.
type Candidate struct {
	Profile    Profile `json:"profile"`
	MatchScore float64 `json:"match_score"`
	DistanceKm float64 `json:"distance_km"`
}

// SwipeRequest is the body of POST /matches/swipe.
type SwipeRequest struct {
	TargetUserID string      `json:"target_user_id"`
	Action       SwipeAction `json:"action"`
}

// SwipeResult is the synchronous outcome of a decision. MatchID is set
// only when Matched is true.
type SwipeResult struct {
	Action  SwipeAction `json:"action"`
	Matched bool        `json:"matched"`
	MatchID string      `json:"match_id"`
}
