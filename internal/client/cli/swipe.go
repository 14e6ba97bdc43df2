package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/IrtizaAhmed131198/dating-app/internal/client/models"
	"github.com/IrtizaAhmed131198/dating-app/internal/client/services"
	"github.com/IrtizaAhmed131198/dating-app/internal/common"
)

// Swipe loads a deck when needed and walks it one decision at a time.
// A failed decision keeps the same candidate current so the user may try
// again.
func (a *App) Swipe(ctx context.Context) error {
	if a.deck.State() == services.DeckIdle || a.deck.State() == services.DeckExhausted {
		if err := a.deck.LoadDeck(ctx); err != nil {
			if errors.Is(err, common.ErrProfileRequired) {
				printlnFn("You need a profile before swiping. Use 'createprofile'.")
				return nil
			}
			return err
		}
	}

	for {
		candidate, ok := a.deck.Current()
		if !ok {
			printlnFn("No more candidates. Run 'swipe' again later for a fresh deck.")
			return nil
		}

		a.printCandidate(candidate)

		input, err := getSimpleText(a.reader, "(l)ike, (p)ass, (s)uper like, (q)uit", os.Stdout)
		if err != nil {
			return err
		}

		var action models.SwipeAction
		switch strings.ToLower(input) {
		case "l", "like":
			action = models.ActionLike
		case "p", "pass":
			action = models.ActionPass
		case "s", "super", "super_like":
			action = models.ActionSuperLike
		case "q", "quit":
			return nil
		default:
			printlnFn("Unknown choice")
			continue
		}

		result, err := a.deck.Decide(ctx, action)
		if err != nil {
			printlnFn("Decision failed, same candidate stays current:", err.Error())
			continue
		}
		if result.Matched {
			printlnFn(fmt.Sprintf("It's a match! (match id %s) Use 'chat' to say hi.", result.MatchID))
		}
	}
}

func (a *App) printCandidate(c models.Candidate) {
	printlnFn(fmt.Sprintf("--- %s, %d - %s (%s)", c.Profile.Bio, c.Profile.Age,
		c.Profile.Location.Neighborhood, c.Profile.LookingFor))
	printlnFn(fmt.Sprintf("    score %.0f, %.1f km away, interests: %s",
		c.MatchScore, c.DistanceKm, strings.Join(c.Profile.Interests, ", ")))
}
