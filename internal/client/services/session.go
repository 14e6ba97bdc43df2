// Package services contains the application services of the client engine:
// the session store, the swipe-deck engine and the conversation sync loop.
// This file defines the session store: login, signup, logout and restoring
// a persisted credential at startup.
package services

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/IrtizaAhmed131198/dating-app/internal/bus"
	"github.com/IrtizaAhmed131198/dating-app/internal/client/client"
	"github.com/IrtizaAhmed131198/dating-app/internal/client/models"
	"github.com/IrtizaAhmed131198/dating-app/internal/client/repositories/messages"
	"github.com/IrtizaAhmed131198/dating-app/internal/client/repositories/metadata"
	"github.com/IrtizaAhmed131198/dating-app/internal/common"
	"github.com/IrtizaAhmed131198/dating-app/internal/dbx"
	"github.com/IrtizaAhmed131198/dating-app/internal/logging"
)

// SessionService owns the authenticated identity for the process lifetime.
//
// Contract:
//   - Restore: load a previously persisted credential, install it if still
//     usable. Never fails; flips the loading flag false exactly once.
//   - Login/Signup: authenticate against the server; on success install and
//     persist the credential and attach it to the API client. On failure the
//     prior state is untouched.
//   - Logout: clear active and persisted credential. Cannot fail.
//   - The session service is the only writer of the API client's token.
type SessionService interface {
	Restore(ctx context.Context)
	Login(ctx context.Context, email, password string) error
	Signup(ctx context.Context, req models.SignupRequest) error
	Logout(ctx context.Context)
	IsAuthenticated() bool
	Current() (models.Credential, bool)
	Loading() bool
}

type sessionService struct {
	client   client.Client
	db       *sql.DB
	messages messages.Repository
	bus      bus.MessageBus
	logger   logging.Logger

	mu      sync.RWMutex
	current *models.Credential
	loading bool
}

// NewSessionService constructs a SessionService bound to the given API
// client, local DB and event bus.
func NewSessionService(c client.Client, db *sql.DB, msgs messages.Repository, b bus.MessageBus, logger logging.Logger) SessionService {
	return &sessionService{
		client:   c,
		db:       db,
		messages: msgs,
		bus:      b,
		logger:   logger.With("component", "session"),
		loading:  true,
	}
}

func (s *sessionService) metadataRepo() metadata.Repository {
	return metadata.NewSQLiteRepository(s.db)
}

// Restore loads the persisted credential and installs it as active unless
// its token has already expired. All failures are logged only: an
// unreadable or stale credential simply leaves the session unauthenticated.
func (s *sessionService) Restore(ctx context.Context) {
	defer s.finishLoading()

	repo := s.metadataRepo()

	token, err := repo.Get(ctx, common.MetaKeyAuthToken)
	if err != nil {
		s.logger.Warn(ctx, "restore: read token", "error", err)
		return
	}
	if len(token) == 0 {
		return
	}

	userData, err := repo.Get(ctx, common.MetaKeyUser)
	if err != nil || len(userData) == 0 {
		s.logger.Warn(ctx, "restore: read user summary", "error", err)
		return
	}

	var cred models.Credential
	if err := json.Unmarshal(userData, &cred); err != nil {
		s.logger.Warn(ctx, "restore: decode user summary", "error", err)
		return
	}
	cred.AccessToken = string(token)

	if tokenExpired(cred.AccessToken, time.Now()) {
		s.logger.Info(ctx, "restore: persisted token expired, discarding")
		s.clearPersisted(ctx)
		return
	}

	s.install(cred)
	s.logger.Info(ctx, "session restored", "user_id", cred.UserID)
}

// Login authenticates and installs the returned credential. On failure the
// returned error carries the server's detail message when one was provided.
func (s *sessionService) Login(ctx context.Context, email, password string) error {
	cred, err := s.client.Login(ctx, email, password)
	if err != nil {
		return fmt.Errorf("login: %w", err)
	}

	if err := s.persist(ctx, cred); err != nil {
		s.logger.Warn(ctx, "persist credential", "error", err)
	}
	s.install(cred)
	return nil
}

// Signup creates an account and installs the returned credential.
func (s *sessionService) Signup(ctx context.Context, req models.SignupRequest) error {
	cred, err := s.client.Signup(ctx, req)
	if err != nil {
		return fmt.Errorf("signup: %w", err)
	}

	if err := s.persist(ctx, cred); err != nil {
		s.logger.Warn(ctx, "persist credential", "error", err)
	}
	s.install(cred)
	return nil
}

// Logout clears the active credential, its persisted copy and the local
// message cache. Repository errors are logged only.
func (s *sessionService) Logout(ctx context.Context) {
	s.mu.Lock()
	s.current = nil
	s.mu.Unlock()

	s.client.ClearToken()
	s.clearPersisted(ctx)
	if err := s.messages.Clear(ctx); err != nil {
		s.logger.Warn(ctx, "clear message cache", "error", err)
	}

	s.bus.Publish(bus.TopicSession, bus.SessionEvent{Authenticated: false})
	s.logger.Info(ctx, "logged out")
}

func (s *sessionService) IsAuthenticated() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current != nil
}

func (s *sessionService) Current() (models.Credential, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.current == nil {
		return models.Credential{}, false
	}
	return *s.current, true
}

func (s *sessionService) Loading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loading
}

func (s *sessionService) finishLoading() {
	s.mu.Lock()
	s.loading = false
	s.mu.Unlock()
}

// install makes cred the active credential and attaches its token to the
// API client.
func (s *sessionService) install(cred models.Credential) {
	s.mu.Lock()
	s.current = &cred
	s.mu.Unlock()

	s.client.SetToken(cred.AccessToken)
	s.bus.Publish(bus.TopicSession, bus.SessionEvent{
		Authenticated: true,
		UserID:        cred.UserID,
		Email:         cred.Email,
	})
}

// persist writes both fixed keys in a single transaction so a restart never
// observes a token without its user summary.
func (s *sessionService) persist(ctx context.Context, cred models.Credential) error {
	summary, err := json.Marshal(cred)
	if err != nil {
		return fmt.Errorf("encode user summary: %w", err)
	}

	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := metadata.NewSQLiteRepository(tx)
		if err := repo.Set(ctx, common.MetaKeyAuthToken, []byte(cred.AccessToken)); err != nil {
			return err
		}
		return repo.Set(ctx, common.MetaKeyUser, summary)
	})
}

func (s *sessionService) clearPersisted(ctx context.Context) {
	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := metadata.NewSQLiteRepository(tx)
		if err := repo.Delete(ctx, common.MetaKeyAuthToken); err != nil {
			return err
		}
		return repo.Delete(ctx, common.MetaKeyUser)
	})
	if err != nil {
		s.logger.Warn(ctx, "clear persisted credential", "error", err)
	}
}

// tokenExpired reports whether token is a JWT whose exp claim lies before
// now. Claims are read without signature verification: the client has no
// key and only uses exp as a hint to skip installing a token the server
// would reject anyway. Opaque or malformed tokens are treated as live.
func tokenExpired(token string, now time.Time) bool {
	claims := jwt.MapClaims{}
	parser := jwt.NewParser(jwt.WithoutClaimsValidation())
	if _, _, err := parser.ParseUnverified(token, claims); err != nil {
		return false
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return false
	}
	return exp.Before(now)
}
