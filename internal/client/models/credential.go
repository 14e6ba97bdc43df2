// Package models defines the data shapes exchanged with the dating-app
// backend and kept by the client engine. Field tags follow the REST
// contract verbatim; conversion happens at the client boundary.
package models

// Credential is the authenticated identity held for the session: an opaque
// bearer token plus the user summary the backend returned with it. Exactly
// one credential is active per process; the session store is its only writer.
type Credential struct {
	AccessToken string `json:"-"`
	UserID      string `json:"user_id"`
	Email       string `json:"email"`
}

// TokenResponse is the wire shape of /auth/login and /auth/signup.
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	UserID      string `json:"user_id"`
	Email       string `json:"email"`
}

// Credential converts a token response into the credential installed by the
// session store.
func (t TokenResponse) Credential() Credential {
	return Credential{AccessToken: t.AccessToken, UserID: t.UserID, Email: t.Email}
}

// SignupRequest is the body of POST /auth/signup.
type SignupRequest struct {
	Email       string `json:"email"`
	Password    string `json:"password"`
	FullName    string `json:"full_name"`
	Gender      string `json:"gender"`
	DateOfBirth string `json:"date_of_birth"` // YYYY-MM-DD
}

// LoginRequest is the body of POST /auth/login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}
