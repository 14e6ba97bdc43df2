package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/IrtizaAhmed131198/dating-app/internal/client/models"
	"github.com/IrtizaAhmed131198/dating-app/internal/client/repositories/messages"
	"github.com/IrtizaAhmed131198/dating-app/internal/common"
)

func message(id, sender, receiver, content string) models.Message {
	return models.Message{
		ID: id, MatchID: "match-1",
		SenderID: sender, ReceiverID: receiver,
		Content: content, SentAt: "2024-01-01T00:00:00Z",
	}
}

func newChat(t *testing.T, fc *fakeClient, selfID string, interval time.Duration) *ConversationSync {
	t.Helper()
	repo := messages.NewSQLiteRepository(setupDB(t))
	return NewConversationSync(fc, repo, testBus(t), testLogger(), "match-1", selfID, interval)
}

func TestChatRefreshReplacesCache(t *testing.T) {
	ctx := context.Background()
	fc := &fakeClient{Msgs: []models.Message{
		message("m1", "them", "me", "hi"),
		message("m2", "me", "them", "hey"),
	}}
	sync := newChat(t, fc, "me", time.Hour)

	require.NoError(t, sync.Refresh(ctx))
	require.Len(t, sync.Messages(), 2)

	// The next refresh fully replaces the list, server order wins.
	fc.setMessages([]models.Message{message("m2", "me", "them", "hey")})
	require.NoError(t, sync.Refresh(ctx))

	got := sync.Messages()
	require.Len(t, got, 1)
	require.Equal(t, "m2", got[0].ID)
}

func TestChatCorrespondentDerivation(t *testing.T) {
	ctx := context.Background()

	// Authenticated user sent the first message: correspondent is the receiver.
	fc := &fakeClient{Msgs: []models.Message{message("m1", "me", "them", "hi")}}
	sync := newChat(t, fc, "me", time.Hour)
	require.NoError(t, sync.Refresh(ctx))

	other, ok := sync.Correspondent()
	require.True(t, ok)
	require.Equal(t, "them", other)

	// And vice versa.
	fc2 := &fakeClient{Msgs: []models.Message{message("m1", "them", "me", "hi")}}
	sync2 := newChat(t, fc2, "me", time.Hour)
	require.NoError(t, sync2.Refresh(ctx))

	other, ok = sync2.Correspondent()
	require.True(t, ok)
	require.Equal(t, "them", other)
}

func TestChatSendWithEmptyCacheFailsBeforeNetwork(t *testing.T) {
	ctx := context.Background()
	fc := &fakeClient{}
	sync := newChat(t, fc, "me", time.Hour)

	_, ok := sync.Correspondent()
	require.False(t, ok)

	err := sync.Send(ctx, "hi")
	require.ErrorIs(t, err, common.ErrNoRecipient)
	require.Zero(t, fc.SendCalls)
	require.Zero(t, fc.messagesCalls())
}

func TestChatSendTriggersImmediateRefetch(t *testing.T) {
	ctx := context.Background()
	fc := &fakeClient{Msgs: []models.Message{message("m1", "them", "me", "hi")}}
	fc.OnSend = func(receiverID, content string) {
		fc.appendMessage(message("m2", "me", receiverID, content))
	}
	sync := newChat(t, fc, "me", time.Hour)
	require.NoError(t, sync.Refresh(ctx))

	require.NoError(t, sync.Send(ctx, "hello there"))
	require.Equal(t, 1, fc.SendCalls)
	require.Equal(t, "them", fc.LastSendReceiver)

	got := sync.Messages()
	require.Len(t, got, 2)
	require.Equal(t, "hello there", got[1].Content)
}

func TestChatPollingFetchesAndStops(t *testing.T) {
	ctx := context.Background()
	fc := &fakeClient{Msgs: []models.Message{message("m1", "them", "me", "hi")}}
	sync := newChat(t, fc, "me", 10*time.Millisecond)

	sync.Start(ctx)

	require.Eventually(t, func() bool {
		return fc.messagesCalls() >= 3
	}, 2*time.Second, 5*time.Millisecond)

	sync.Stop()
	calls := fc.messagesCalls()

	// No fetch fires after deactivation.
	time.Sleep(50 * time.Millisecond)
	require.Equal(t, calls, fc.messagesCalls())
}

func TestChatWarmCacheFromRepository(t *testing.T) {
	ctx := context.Background()
	db := setupDB(t)
	repo := messages.NewSQLiteRepository(db)
	require.NoError(t, repo.Replace(ctx, "match-1", []models.Message{
		message("m1", "them", "me", "cached hello"),
	}))

	// The first fetch will fail; the view still has the cached history.
	fc := &fakeClient{MessagesErr: common.ErrUnavailable}
	sync := NewConversationSync(fc, repo, testBus(t), testLogger(), "match-1", "me", time.Hour)

	sync.Start(ctx)
	defer sync.Stop()

	require.Eventually(t, func() bool {
		return fc.messagesCalls() >= 1
	}, 2*time.Second, 5*time.Millisecond)

	got := sync.Messages()
	require.Len(t, got, 1)
	require.Equal(t, "cached hello", got[0].Content)

	other, ok := sync.Correspondent()
	require.True(t, ok)
	require.Equal(t, "them", other)
}

func TestChatStartIsIdempotent(t *testing.T) {
	ctx := context.Background()
	fc := &fakeClient{}
	sync := newChat(t, fc, "me", time.Hour)

	sync.Start(ctx)
	sync.Start(ctx)
	sync.Stop()
	sync.Stop()
}
