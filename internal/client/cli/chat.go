package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/IrtizaAhmed131198/dating-app/internal/bus"
	"github.com/IrtizaAhmed131198/dating-app/internal/client/models"
	"github.com/IrtizaAhmed131198/dating-app/internal/client/services"
	"github.com/IrtizaAhmed131198/dating-app/internal/common"
)

// Matches prints the match list with indexes usable by 'chat <n>'.
func (a *App) Matches(ctx context.Context) error {
	matches, err := a.api.MyMatches(ctx)
	if err != nil {
		return err
	}
	if len(matches) == 0 {
		printlnFn("No matches yet. Keep swiping!")
		return nil
	}
	for i, m := range matches {
		printlnFn(fmt.Sprintf("%d) %s, %d - matched %s", i+1, m.Profile.Bio, m.Profile.Age, m.MatchedAt))
	}
	return nil
}

// Chat opens the conversation of the n-th match and keeps it synchronized
// until the user leaves with /q. New messages arriving through the polling
// loop are printed as chat events come in on the bus.
func (a *App) Chat(ctx context.Context, args []string) error {
	cred, ok := a.session.Current()
	if !ok {
		return common.ErrNotAuthenticated
	}

	matches, err := a.api.MyMatches(ctx)
	if err != nil {
		return err
	}
	if len(matches) == 0 {
		printlnFn("No matches to chat with yet.")
		return nil
	}

	idx := 1
	if len(args) > 0 {
		idx, err = strconv.Atoi(args[0])
		if err != nil || idx < 1 || idx > len(matches) {
			return fmt.Errorf("pick a match between 1 and %d", len(matches))
		}
	}
	match := matches[idx-1]

	sync := services.NewConversationSync(a.api, a.repos.Messages, a.bus, a.logger,
		match.MatchID, cred.UserID, a.config.ChatPollInterval)

	sub := a.bus.Subscribe(bus.TopicChat)
	defer a.bus.Unsubscribe(sub, bus.TopicChat)

	chatCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	sync.Start(chatCtx)
	defer sync.Stop()

	go a.renderOnEvents(chatCtx, sub, sync, cred.UserID, match.MatchID)

	printlnFn("Chatting. Type a message and press enter, or /q to leave.")
	for {
		line, err := a.reader.ReadString('\n')
		if err != nil {
			return nil
		}
		text := strings.TrimSpace(line)
		if text == "" {
			continue
		}
		if text == "/q" || text == "/quit" {
			return nil
		}

		if err := sync.Send(ctx, text); err != nil {
			if errors.Is(err, common.ErrNoRecipient) {
				printlnFn("Cannot send yet: no messages to infer the recipient from.")
				continue
			}
			printlnFn("Send failed:", err.Error())
		}
	}
}

// renderOnEvents reprints the conversation whenever its cached list
// changes. It exits when the chat context is torn down.
func (a *App) renderOnEvents(ctx context.Context, sub bus.Subscription, sync *services.ConversationSync, selfID, matchID string) {
	var lastCount int
	for {
		select {
		case <-ctx.Done():
			return
		case raw, ok := <-sub:
			if !ok {
				return
			}
			ev, ok := raw.(bus.ChatEvent)
			if !ok || ev.MatchID != matchID || ev.Count == lastCount {
				continue
			}
			lastCount = ev.Count
			a.printConversation(sync.Messages(), selfID)
		}
	}
}

func (a *App) printConversation(msgs []models.Message, selfID string) {
	if len(msgs) == 0 {
		printlnFn("No messages yet. Start the conversation!")
		return
	}
	for _, m := range msgs {
		who := "them"
		if m.SenderID == selfID {
			who = "me"
		}
		printlnFn(fmt.Sprintf("[%s] %s", who, m.Content))
	}
	_, _ = fmt.Fprint(os.Stdout, "> ")
}
