// Package client implements the API client of the dating-app backend:
// a single HTTP client shared process-wide that owns the current bearer
// credential, attaches it to every outbound request, and normalizes
// transport failures into a uniform error shape.
package client

import (
	"context"

	"github.com/IrtizaAhmed131198/dating-app/internal/client/models"
)

// Client is the full REST surface consumed by the engine and the view layer.
//
// Contract:
//   - Every method issues exactly one request; no retries, no backoff.
//   - Failures come back as *APIError (possibly wrapping a sentinel from
//     internal/common); callers match with errors.Is / errors.As.
//   - SetToken/ClearToken mutate the attached credential. Only the session
//     store may call them.
//
// All methods must honor context cancellation/timeouts.
type Client interface {
	Health(ctx context.Context) error

	Login(ctx context.Context, email, password string) (models.Credential, error)
	Signup(ctx context.Context, req models.SignupRequest) (models.Credential, error)

	CreateProfile(ctx context.Context, req models.ProfileCreateRequest) error
	GetMyProfile(ctx context.Context) (models.Profile, error)
	UpdateProfile(ctx context.Context, req models.ProfileUpdateRequest) error

	PotentialMatches(ctx context.Context, limit int) ([]models.Candidate, error)
	Swipe(ctx context.Context, req models.SwipeRequest) (models.SwipeResult, error)
	MyMatches(ctx context.Context) ([]models.MatchSummary, error)

	Messages(ctx context.Context, matchID string) ([]models.Message, error)
	SendMessage(ctx context.Context, receiverID, content string) (models.SendMessageResponse, error)

	WaitlistStats(ctx context.Context) (models.WaitlistStats, error)
	JoinWaitlist(ctx context.Context, req models.WaitlistJoinRequest) (models.WaitlistPosition, error)
	MyStats(ctx context.Context) (models.UserAnalytics, error)

	SetToken(token string)
	ClearToken()
}
