package services

import (
	"context"
	"fmt"
	"sync"

	"github.com/IrtizaAhmed131198/dating-app/internal/bus"
	"github.com/IrtizaAhmed131198/dating-app/internal/client/client"
	"github.com/IrtizaAhmed131198/dating-app/internal/client/models"
	"github.com/IrtizaAhmed131198/dating-app/internal/common"
	"github.com/IrtizaAhmed131198/dating-app/internal/logging"
)

// DeckState enumerates the swipe-deck state machine:
// Idle → Loading → Ready(cursor) → Exhausted.
type DeckState int

const (
	DeckIdle DeckState = iota
	DeckLoading
	DeckReady
	DeckExhausted
)

func (s DeckState) String() string {
	switch s {
	case DeckIdle:
		return "idle"
	case DeckLoading:
		return "loading"
	case DeckReady:
		return "ready"
	case DeckExhausted:
		return "exhausted"
	}
	return "unknown"
}

// DeckService consumes a finite candidate deck exactly once per fetch.
// The deck is immutable after fetch; only the cursor advances, and it
// never decreases and never wraps.
type DeckService struct {
	client client.Client
	bus    bus.MessageBus
	logger logging.Logger
	limit  int

	mu       sync.Mutex
	state    DeckState
	deck     []models.Candidate
	cursor   int
	deciding bool
}

// NewDeckService constructs an idle deck engine requesting up to limit
// candidates per fetch.
func NewDeckService(c client.Client, b bus.MessageBus, logger logging.Logger, limit int) *DeckService {
	return &DeckService{
		client: c,
		bus:    b,
		logger: logger.With("component", "deck"),
		limit:  limit,
	}
}

// State returns the current machine state.
func (d *DeckService) State() DeckState {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.state
}

// Cursor returns the index of the current candidate.
func (d *DeckService) Cursor() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.cursor
}

// Remaining returns how many candidates are left to decide on.
func (d *DeckService) Remaining() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.state != DeckReady {
		return 0
	}
	return len(d.deck) - d.cursor
}

// Current returns the candidate at the cursor. ok is false unless the
// engine is Ready.
func (d *DeckService) Current() (models.Candidate, bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.state != DeckReady || d.cursor >= len(d.deck) {
		return models.Candidate{}, false
	}
	return d.deck[d.cursor], true
}

// LoadDeck fetches a fresh deck. Valid from Idle, and from Exhausted as the
// explicit re-fetch (which discards deck and cursor history). An empty
// result transitions straight to Exhausted. A "profile not created" failure
// surfaces as common.ErrProfileRequired; any failure leaves the engine Idle
// so the caller may retry.
func (d *DeckService) LoadDeck(ctx context.Context) error {
	d.mu.Lock()
	switch d.state {
	case DeckLoading:
		d.mu.Unlock()
		return common.ErrDeckBusy
	case DeckReady:
		d.mu.Unlock()
		return common.ErrDeckLoaded
	}
	d.state = DeckLoading
	d.deck = nil
	d.cursor = 0
	d.mu.Unlock()

	deck, err := d.client.PotentialMatches(ctx, d.limit)

	d.mu.Lock()
	defer d.mu.Unlock()
	if err != nil {
		d.state = DeckIdle
		return fmt.Errorf("load deck: %w", err)
	}

	d.deck = deck
	if len(deck) == 0 {
		d.state = DeckExhausted
	} else {
		d.state = DeckReady
	}
	d.logger.Info(ctx, "deck loaded", "size", len(deck))
	return nil
}

// Decide sends a swipe for the current candidate. On success it reports the
// match outcome and unconditionally advances the cursor; on failure the
// cursor stays put and the same candidate remains current. The send is
// at-most-once per invocation: a user retry after a failure resends the
// same decision, which the backend treats as its own concern.
func (d *DeckService) Decide(ctx context.Context, action models.SwipeAction) (models.SwipeResult, error) {
	if !action.Valid() {
		return models.SwipeResult{}, common.ErrInvalidSwipeAction
	}

	d.mu.Lock()
	if d.state == DeckExhausted {
		d.mu.Unlock()
		return models.SwipeResult{}, common.ErrDeckExhausted
	}
	if d.state != DeckReady || d.cursor >= len(d.deck) {
		d.mu.Unlock()
		return models.SwipeResult{}, common.ErrDeckNotReady
	}
	if d.deciding {
		d.mu.Unlock()
		return models.SwipeResult{}, common.ErrDecisionInFlight
	}
	candidate := d.deck[d.cursor]
	d.deciding = true
	d.mu.Unlock()

	result, err := d.client.Swipe(ctx, models.SwipeRequest{
		TargetUserID: candidate.Profile.UserID,
		Action:       action,
	})

	d.mu.Lock()
	d.deciding = false
	if err != nil {
		d.mu.Unlock()
		return models.SwipeResult{}, fmt.Errorf("swipe: %w", err)
	}

	d.cursor++
	if d.cursor >= len(d.deck) {
		d.state = DeckExhausted
	}
	d.mu.Unlock()

	if result.Matched {
		d.bus.Publish(bus.TopicMatch, bus.MatchEvent{
			MatchID:      result.MatchID,
			TargetUserID: candidate.Profile.UserID,
		})
	}
	d.logger.Debug(ctx, "decision recorded",
		"target", candidate.Profile.UserID, "action", string(action), "matched", result.Matched)
	return result, nil
}
