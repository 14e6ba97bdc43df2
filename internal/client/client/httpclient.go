package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/IrtizaAhmed131198/dating-app/internal/client/models"
	"github.com/IrtizaAhmed131198/dating-app/internal/common"
	"github.com/IrtizaAhmed131198/dating-app/internal/logging"
)

const defaultRequestTimeout = 15 * time.Second

// HTTPClient is the concrete Client talking JSON over HTTP. One instance is
// shared by the whole process; the bearer token behind the mutex is written
// only by the session store and read on every request.
type HTTPClient struct {
	baseURL string
	httpc   *http.Client
	logger  logging.Logger

	mu    sync.RWMutex
	token string
}

// NewHTTPClient builds a client for the given base URL (including the /api
// prefix). A zero timeout falls back to the transport default.
func NewHTTPClient(baseURL string, timeout time.Duration, logger logging.Logger) *HTTPClient {
	if timeout <= 0 {
		timeout = defaultRequestTimeout
	}
	return &HTTPClient{
		baseURL: baseURL,
		httpc:   &http.Client{Timeout: timeout},
		logger:  logger.With("component", "api"),
	}
}

// SetToken installs the bearer token attached to subsequent requests.
func (c *HTTPClient) SetToken(token string) {
	c.mu.Lock()
	c.token = token
	c.mu.Unlock()
}

// ClearToken detaches the bearer token; subsequent requests go out
// unauthenticated.
func (c *HTTPClient) ClearToken() {
	c.SetToken("")
}

func (c *HTTPClient) currentToken() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.token
}

// detailPayload is the FastAPI error envelope: {"detail": "..."}.
type detailPayload struct {
	Detail string `json:"detail"`
}

// do issues one request and decodes the response into out (when non-nil).
// Every failure is normalized into *APIError; logging here never alters the
// returned error.
func (c *HTTPClient) do(ctx context.Context, method, path string, body any, out any) error {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request %s %s: %w", method, path, err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("build request %s %s: %w", method, path, err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("X-Request-ID", uuid.NewString())
	if token := c.currentToken(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpc.Do(req)
	if err != nil {
		apiErr := &APIError{Detail: common.ErrUnavailable.Error()}
		c.logger.Warn(ctx, "request failed", "method", method, "path", path, "error", err)
		return apiErr
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		c.logger.Warn(ctx, "read response", "method", method, "path", path, "error", err)
		return &APIError{Detail: common.ErrUnavailable.Error()}
	}

	if resp.StatusCode >= 400 {
		apiErr := &APIError{StatusCode: resp.StatusCode}
		var payload detailPayload
		if err := json.Unmarshal(data, &payload); err == nil {
			apiErr.Detail = payload.Detail
		}
		c.logger.Warn(ctx, "request rejected",
			"method", method, "path", path, "status", resp.StatusCode, "detail", apiErr.Detail)
		return apiErr
	}

	if out != nil {
		if err := json.Unmarshal(data, out); err != nil {
			return fmt.Errorf("decode response %s %s: %w", method, path, err)
		}
	}
	return nil
}

func (c *HTTPClient) Health(ctx context.Context) error {
	return c.do(ctx, http.MethodGet, "/health", nil, nil)
}

func (c *HTTPClient) Login(ctx context.Context, email, password string) (models.Credential, error) {
	var resp models.TokenResponse
	req := models.LoginRequest{Email: email, Password: password}
	if err := c.do(ctx, http.MethodPost, "/auth/login", req, &resp); err != nil {
		return models.Credential{}, err
	}
	return resp.Credential(), nil
}

func (c *HTTPClient) Signup(ctx context.Context, req models.SignupRequest) (models.Credential, error) {
	var resp models.TokenResponse
	if err := c.do(ctx, http.MethodPost, "/auth/signup", req, &resp); err != nil {
		return models.Credential{}, err
	}
	return resp.Credential(), nil
}

func (c *HTTPClient) CreateProfile(ctx context.Context, req models.ProfileCreateRequest) error {
	return c.do(ctx, http.MethodPost, "/profile/create", req, nil)
}

func (c *HTTPClient) GetMyProfile(ctx context.Context) (models.Profile, error) {
	var profile models.Profile
	if err := c.do(ctx, http.MethodGet, "/profile/me", nil, &profile); err != nil {
		return models.Profile{}, markProfileRequired(err)
	}
	return profile, nil
}

func (c *HTTPClient) UpdateProfile(ctx context.Context, req models.ProfileUpdateRequest) error {
	return c.do(ctx, http.MethodPut, "/profile/update", req, nil)
}

func (c *HTTPClient) PotentialMatches(ctx context.Context, limit int) ([]models.Candidate, error) {
	path := "/matches/potential?limit=" + url.QueryEscape(strconv.Itoa(limit))
	var deck []models.Candidate
	if err := c.do(ctx, http.MethodGet, path, nil, &deck); err != nil {
		return nil, markProfileRequired(err)
	}
	return deck, nil
}

func (c *HTTPClient) Swipe(ctx context.Context, req models.SwipeRequest) (models.SwipeResult, error) {
	var result models.SwipeResult
	if err := c.do(ctx, http.MethodPost, "/matches/swipe", req, &result); err != nil {
		return models.SwipeResult{}, err
	}
	return result, nil
}

func (c *HTTPClient) MyMatches(ctx context.Context) ([]models.MatchSummary, error) {
	var matches []models.MatchSummary
	if err := c.do(ctx, http.MethodGet, "/matches/my-matches", nil, &matches); err != nil {
		return nil, err
	}
	return matches, nil
}

func (c *HTTPClient) Messages(ctx context.Context, matchID string) ([]models.Message, error) {
	var messages []models.Message
	if err := c.do(ctx, http.MethodGet, "/messages/"+url.PathEscape(matchID), nil, &messages); err != nil {
		return nil, err
	}
	return messages, nil
}

func (c *HTTPClient) SendMessage(ctx context.Context, receiverID, content string) (models.SendMessageResponse, error) {
	var resp models.SendMessageResponse
	req := models.SendMessageRequest{ReceiverID: receiverID, Content: content}
	if err := c.do(ctx, http.MethodPost, "/messages/send", req, &resp); err != nil {
		return models.SendMessageResponse{}, err
	}
	return resp, nil
}

func (c *HTTPClient) WaitlistStats(ctx context.Context) (models.WaitlistStats, error) {
	var stats models.WaitlistStats
	if err := c.do(ctx, http.MethodGet, "/waitlist/stats", nil, &stats); err != nil {
		return models.WaitlistStats{}, err
	}
	return stats, nil
}

func (c *HTTPClient) JoinWaitlist(ctx context.Context, req models.WaitlistJoinRequest) (models.WaitlistPosition, error) {
	var pos models.WaitlistPosition
	if err := c.do(ctx, http.MethodPost, "/waitlist/join", req, &pos); err != nil {
		return models.WaitlistPosition{}, err
	}
	return pos, nil
}

func (c *HTTPClient) MyStats(ctx context.Context) (models.UserAnalytics, error) {
	var stats models.UserAnalytics
	if err := c.do(ctx, http.MethodGet, "/analytics/my-stats", nil, &stats); err != nil {
		return models.UserAnalytics{}, err
	}
	return stats, nil
}

// markProfileRequired rewraps a 404 from the profile-gated endpoints so
// callers can tell "create a profile first" apart from a generic failure.
func markProfileRequired(err error) error {
	var apiErr *APIError
	if errors.As(err, &apiErr) && apiErr.StatusCode == 404 {
		return fmt.Errorf("%s: %w", apiErr.Error(), common.ErrProfileRequired)
	}
	return err
}
