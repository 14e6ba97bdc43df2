package models

// UserAnalytics is the response of GET /analytics/my-stats.
type UserAnalytics struct {
	TotalInteractions int     `json:"total_interactions"`
	GoalProgress      float64 `json:"goal_progress"`
	Views             int     `json:"views"`
	LikesSent         int     `json:"likes_sent"`
	Passes            int     `json:"passes"`
	Matches           int     `json:"matches"`
	ProfileViews      int     `json:"profile_views"`
	LikesReceived     int     `json:"likes_received"`
	MatchRate         float64 `json:"match_rate"`
}

// WaitlistStats is the response of GET /waitlist/stats.
type WaitlistStats struct {
	TotalSignups   int `json:"total_signups"`
	FemaleSignups  int `json:"female_signups"`
	MaleSignups    int `json:"male_signups"`
	TotalReferrals int `json:"total_referrals"`
	ActiveUsers    int `json:"active_users"`
}

// WaitlistJoinRequest is the body of POST /waitlist/join.
type WaitlistJoinRequest struct {
	Email      string `json:"email"`
	Gender     string `json:"gender,omitempty"`
	ReferredBy string `json:"referred_by,omitempty"`
}

// WaitlistPosition is the response of POST /waitlist/join.
type WaitlistPosition struct {
	Email             string `json:"email"`
	ReferralCode      string `json:"referral_code"`
	Boosts            int    `json:"boosts"`
	VerifiedReferrals int    `json:"verified_referrals"`
	PositionInLine    int    `json:"position_in_line"`
	IsVIP             bool   `json:"is_vip"`
}
