package services

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/IrtizaAhmed131198/dating-app/internal/bus"
	"github.com/IrtizaAhmed131198/dating-app/internal/client/client"
	"github.com/IrtizaAhmed131198/dating-app/internal/client/models"
	"github.com/IrtizaAhmed131198/dating-app/internal/client/repositories/messages"
	"github.com/IrtizaAhmed131198/dating-app/internal/common"
	"github.com/IrtizaAhmed131198/dating-app/internal/logging"
)

const defaultPollInterval = 3 * time.Second

// ConversationSync keeps the local message list of one conversation
// consistent with the server under a fixed polling cadence. Each refresh
// replaces the whole cached list with the server's ordered copy; a refresh
// racing a send-triggered refresh resolves last-write-wins, which is safe
// because both are the same idempotent read.
type ConversationSync struct {
	client   client.Client
	repo     messages.Repository
	bus      bus.MessageBus
	logger   logging.Logger
	matchID  string
	selfID   string
	interval time.Duration

	mu   sync.RWMutex
	msgs []models.Message

	startOnce sync.Once
	cancel    context.CancelFunc
	done      chan struct{}
}

// NewConversationSync builds a sync loop for one match id. selfID is the
// authenticated user's id, used to derive the correspondent. A non-positive
// interval falls back to the 3 second default.
func NewConversationSync(c client.Client, repo messages.Repository, b bus.MessageBus, logger logging.Logger, matchID, selfID string, interval time.Duration) *ConversationSync {
	if interval <= 0 {
		interval = defaultPollInterval
	}
	return &ConversationSync{
		client:   c,
		repo:     repo,
		bus:      b,
		logger:   logger.With("component", "chat", "match_id", matchID),
		matchID:  matchID,
		selfID:   selfID,
		interval: interval,
		done:     make(chan struct{}),
	}
}

// Start warms the cache from local storage, performs an immediate fetch and
// then refetches on every tick until Stop is called or ctx is cancelled.
// Start is idempotent; only the first call has effect.
func (s *ConversationSync) Start(ctx context.Context) {
	s.startOnce.Do(func() {
		ctx, s.cancel = context.WithCancel(ctx)

		s.warmCache(ctx)

		go func() {
			defer close(s.done)

			if err := s.Refresh(ctx); err != nil {
				s.logger.Warn(ctx, "initial fetch", "error", err)
			}

			ticker := time.NewTicker(s.interval)
			defer ticker.Stop()

			for {
				select {
				case <-ctx.Done():
					return
				case <-ticker.C:
					if err := s.Refresh(ctx); err != nil {
						s.logger.Warn(ctx, "poll fetch", "error", err)
					}
				}
			}
		}()
	})
}

// Stop cancels the polling loop and waits until it has exited, so no fetch
// fires after Stop returns. Safe to call more than once, but only after
// Start.
func (s *ConversationSync) Stop() {
	if s.cancel == nil {
		return
	}
	s.cancel()
	<-s.done
}

// Refresh fetches the conversation and replaces the cached list with the
// server's ordered copy. The snapshot is also persisted locally; a
// persistence failure is logged but does not fail the refresh.
func (s *ConversationSync) Refresh(ctx context.Context) error {
	msgs, err := s.client.Messages(ctx, s.matchID)
	if err != nil {
		return fmt.Errorf("fetch messages: %w", err)
	}

	s.mu.Lock()
	s.msgs = msgs
	s.mu.Unlock()

	if err := s.repo.Replace(ctx, s.matchID, msgs); err != nil {
		s.logger.Warn(ctx, "persist message cache", "error", err)
	}

	s.bus.Publish(bus.TopicChat, bus.ChatEvent{MatchID: s.matchID, Count: len(msgs)})
	return nil
}

// Send posts content to the correspondent and triggers an immediate
// re-fetch so the cache reflects server-assigned ordering. There is no
// optimistic local append. With an empty cache the correspondent cannot be
// derived and Send fails with common.ErrNoRecipient before any network
// call.
func (s *ConversationSync) Send(ctx context.Context, content string) error {
	receiverID, ok := s.Correspondent()
	if !ok {
		return common.ErrNoRecipient
	}

	if _, err := s.client.SendMessage(ctx, receiverID, content); err != nil {
		return fmt.Errorf("send message: %w", err)
	}

	if err := s.Refresh(ctx); err != nil {
		s.logger.Warn(ctx, "refresh after send", "error", err)
	}
	return nil
}

// Messages returns a copy of the cached ordered message list.
func (s *ConversationSync) Messages() []models.Message {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Message, len(s.msgs))
	copy(out, s.msgs)
	return out
}

// Correspondent derives the other participant from the first cached
// message. ok is false while the cache is empty.
func (s *ConversationSync) Correspondent() (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if len(s.msgs) == 0 {
		return "", false
	}
	return s.msgs[0].Correspondent(s.selfID), true
}

// warmCache seeds the in-memory list from the persisted snapshot so the
// view has history before the first fetch resolves. Log-only on failure.
func (s *ConversationSync) warmCache(ctx context.Context) {
	cached, err := s.repo.List(ctx, s.matchID)
	if err != nil {
		s.logger.Warn(ctx, "load message cache", "error", err)
		return
	}
	if len(cached) == 0 {
		return
	}

	s.mu.Lock()
	s.msgs = cached
	s.mu.Unlock()

	s.bus.Publish(bus.TopicChat, bus.ChatEvent{MatchID: s.matchID, Count: len(cached)})
}
