package models

// Location is the coarse geo block embedded in a profile.
type Location struct {
	City         string  `json:"city"`
	Neighborhood string  `json:"neighborhood"`
	Lat          float64 `json:"lat"`
	Lng          float64 `json:"lng"`
}

// Profile is a user profile as returned by the backend.
type Profile struct {
	ID         string   `json:"id"`
	UserID     string   `json:"user_id"`
	Bio        string   `json:"bio"`
	Age        int      `json:"age"`
	Interests  []string `json:"interests"`
	Photos     []string `json:"photos"`
	Location   Location `json:"location"`
	LookingFor string   `json:"looking_for"`
	IsVerified bool     `json:"is_verified"`
}

// ProfileCreateRequest is the body of POST /profile/create.
type ProfileCreateRequest struct {
	Bio          string   `json:"bio"`
	Age          int      `json:"age"`
	Interests    []string `json:"interests"`
	LookingFor   string   `json:"looking_for"`
	Neighborhood string   `json:"neighborhood"`
}

// ProfileUpdateRequest is the body of PUT /profile/update.
// Nil fields are omitted and left unchanged server-side.
type ProfileUpdateRequest struct {
	Bio          *string   `json:"bio,omitempty"`
	Interests    *[]string `json:"interests,omitempty"`
	LookingFor   *string   `json:"looking_for,omitempty"`
	Neighborhood *string   `json:"neighborhood,omitempty"`
}
