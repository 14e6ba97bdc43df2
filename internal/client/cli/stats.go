package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/IrtizaAhmed131198/dating-app/internal/client/models"
)

// MyStats prints the authenticated user's interaction analytics.
func (a *App) MyStats(ctx context.Context) error {
	stats, err := a.api.MyStats(ctx)
	if err != nil {
		return err
	}

	printlnFn(fmt.Sprintf("Interactions: %d (goal %.0f%%)", stats.TotalInteractions, stats.GoalProgress))
	printlnFn(fmt.Sprintf("Likes sent: %d, passes: %d, matches: %d", stats.LikesSent, stats.Passes, stats.Matches))
	printlnFn(fmt.Sprintf("Profile views: %d, likes received: %d, match rate: %.1f%%",
		stats.ProfileViews, stats.LikesReceived, stats.MatchRate))
	return nil
}

// WaitlistStats prints the public waitlist counters.
func (a *App) WaitlistStats(ctx context.Context) error {
	stats, err := a.api.WaitlistStats(ctx)
	if err != nil {
		return err
	}

	printlnFn(fmt.Sprintf("Waitlist: %d signups (%d female, %d male), %d referrals, %d active",
		stats.TotalSignups, stats.FemaleSignups, stats.MaleSignups, stats.TotalReferrals, stats.ActiveUsers))
	return nil
}

// JoinWaitlist signs an email up for the waitlist.
func (a *App) JoinWaitlist(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}
	gender, err := getSimpleText(a.reader, "Gender (optional)", os.Stdout)
	if err != nil {
		return err
	}
	referredBy, err := getSimpleText(a.reader, "Referral code (optional)", os.Stdout)
	if err != nil {
		return err
	}

	pos, err := a.api.JoinWaitlist(ctx, models.WaitlistJoinRequest{
		Email:      email,
		Gender:     gender,
		ReferredBy: referredBy,
	})
	if err != nil {
		return err
	}

	printlnFn(fmt.Sprintf("You are #%d in line. Your referral code: %s", pos.PositionInLine, pos.ReferralCode))
	if pos.IsVIP {
		printlnFn("VIP access granted.")
	}
	return nil
}
