package services

import (
	"context"
	"sync"

	"github.com/IrtizaAhmed131198/dating-app/internal/client/models"
)

// fakeClient implements client.Client for unit tests of the services.
// Last* fields capture arguments for assertions; *Calls fields count
// invocations.
type fakeClient struct {
	mu sync.Mutex

	Token       string
	TokenSets   int
	TokenClears int

	HealthErr error

	LoginCred models.Credential
	LoginErr  error
	LastLogin models.LoginRequest

	SignupCred models.Credential
	SignupErr  error
	LastSignup models.SignupRequest

	Deck           []models.Candidate
	DeckErr        error
	PotentialCalls int
	LastLimit      int

	SwipeQueue []models.SwipeResult
	SwipeErr   error
	SwipeCalls int
	LastSwipe  models.SwipeRequest

	Msgs          []models.Message
	MessagesErr   error
	MessagesCalls int

	SendErr          error
	SendCalls        int
	LastSendReceiver string
	LastSendContent  string
	// OnSend lets a test echo the sent message into Msgs before the
	// follow-up refresh, simulating the server.
	OnSend func(receiverID, content string)
}

func (f *fakeClient) Health(ctx context.Context) error { return f.HealthErr }

func (f *fakeClient) Login(ctx context.Context, email, password string) (models.Credential, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.LastLogin = models.LoginRequest{Email: email, Password: password}
	if f.LoginErr != nil {
		return models.Credential{}, f.LoginErr
	}
	return f.LoginCred, nil
}

func (f *fakeClient) Signup(ctx context.Context, req models.SignupRequest) (models.Credential, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.LastSignup = req
	if f.SignupErr != nil {
		return models.Credential{}, f.SignupErr
	}
	return f.SignupCred, nil
}

func (f *fakeClient) CreateProfile(ctx context.Context, req models.ProfileCreateRequest) error {
	return nil
}

func (f *fakeClient) GetMyProfile(ctx context.Context) (models.Profile, error) {
	return models.Profile{}, nil
}

func (f *fakeClient) UpdateProfile(ctx context.Context, req models.ProfileUpdateRequest) error {
	return nil
}

func (f *fakeClient) PotentialMatches(ctx context.Context, limit int) ([]models.Candidate, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.PotentialCalls++
	f.LastLimit = limit
	if f.DeckErr != nil {
		return nil, f.DeckErr
	}
	return append([]models.Candidate(nil), f.Deck...), nil
}

func (f *fakeClient) Swipe(ctx context.Context, req models.SwipeRequest) (models.SwipeResult, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.SwipeCalls++
	f.LastSwipe = req
	if f.SwipeErr != nil {
		return models.SwipeResult{}, f.SwipeErr
	}
	if len(f.SwipeQueue) > 0 {
		result := f.SwipeQueue[0]
		f.SwipeQueue = f.SwipeQueue[1:]
		return result, nil
	}
	return models.SwipeResult{Action: req.Action}, nil
}

func (f *fakeClient) MyMatches(ctx context.Context) ([]models.MatchSummary, error) {
	return nil, nil
}

func (f *fakeClient) Messages(ctx context.Context, matchID string) ([]models.Message, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.MessagesCalls++
	if f.MessagesErr != nil {
		return nil, f.MessagesErr
	}
	return append([]models.Message(nil), f.Msgs...), nil
}

func (f *fakeClient) SendMessage(ctx context.Context, receiverID, content string) (models.SendMessageResponse, error) {
	f.mu.Lock()
	f.SendCalls++
	f.LastSendReceiver = receiverID
	f.LastSendContent = content
	err := f.SendErr
	onSend := f.OnSend
	f.mu.Unlock()
	if err != nil {
		return models.SendMessageResponse{}, err
	}
	if onSend != nil {
		onSend(receiverID, content)
	}
	return models.SendMessageResponse{MessageID: "m-new"}, nil
}

func (f *fakeClient) WaitlistStats(ctx context.Context) (models.WaitlistStats, error) {
	return models.WaitlistStats{}, nil
}

func (f *fakeClient) JoinWaitlist(ctx context.Context, req models.WaitlistJoinRequest) (models.WaitlistPosition, error) {
	return models.WaitlistPosition{}, nil
}

func (f *fakeClient) MyStats(ctx context.Context) (models.UserAnalytics, error) {
	return models.UserAnalytics{}, nil
}

func (f *fakeClient) SetToken(token string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.Token = token
	f.TokenSets++
}

func (f *fakeClient) ClearToken() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.Token = ""
	f.TokenClears++
}

func (f *fakeClient) setMessages(msgs []models.Message) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.Msgs = msgs
}

func (f *fakeClient) appendMessage(m models.Message) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.Msgs = append(f.Msgs, m)
}

func (f *fakeClient) messagesCalls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.MessagesCalls
}

func (f *fakeClient) swipeCalls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.SwipeCalls
}
