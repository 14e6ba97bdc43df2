// Package bus provides the in-process event bus the view layer subscribes to.
// Engine services publish session, match and chat events; subscribers receive
// them on buffered channels and must unsubscribe when done.
package bus

import (
	"context"
	"reflect"

	"github.com/cskr/pubsub"

	"github.com/IrtizaAhmed131198/dating-app/internal/logging"
)

const (
	// TopicSession carries SessionEvent values (login, logout, restore).
	TopicSession = "session"
	// TopicMatch carries MatchEvent values published on a mutual like.
	TopicMatch = "match"
	// TopicChat carries ChatEvent values after each conversation refresh.
	TopicChat = "chat"
)

// SessionEvent reports a change of the authenticated identity.
type SessionEvent struct {
	Authenticated bool
	UserID        string
	Email         string
}

// MatchEvent is the transient notification of a server-confirmed match.
type MatchEvent struct {
	MatchID      string
	TargetUserID string
}

// ChatEvent signals that the cached message list of a conversation changed.
type ChatEvent struct {
	MatchID string
	Count   int
}

type Subscription chan any

type MessageBus interface {
	Publish(topic string, msg any)
	Subscribe(topic string) Subscription
	Unsubscribe(ch Subscription, topics ...string)
	Close()
}

type PubSubBus struct {
	ps     *pubsub.PubSub
	logger logging.Logger
}

func New(logger logging.Logger) *PubSubBus {
	return &PubSubBus{
		ps:     pubsub.New(128),
		logger: logger,
	}
}

func (b *PubSubBus) Publish(topic string, msg any) {
	b.logger.Debug(context.Background(), "publish", "topic", topic, "payload_type", payloadType(msg))
	b.ps.Pub(msg, topic)
}

func (b *PubSubBus) Subscribe(topic string) Subscription {
	ch := b.ps.Sub(topic)
	b.logger.Debug(context.Background(), "subscribe", "topic", topic)
	return ch
}

func (b *PubSubBus) Unsubscribe(ch Subscription, topics ...string) {
	if len(topics) == 0 {
		b.ps.Unsub(ch)
		return
	}
	b.ps.Unsub(ch, topics...)
}

func (b *PubSubBus) Close() {
	b.ps.Shutdown()
}

func payloadType(v any) string {
	if v == nil {
		return "<nil>"
	}
	return reflect.TypeOf(v).String()
}
