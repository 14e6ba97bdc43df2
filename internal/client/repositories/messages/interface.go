// Package messages persists the last fetched message list per conversation
// so the chat view has history before the first poll resolves.
package messages

import (
	"context"

	"github.com/IrtizaAhmed131198/dating-app/internal/client/models"
)

type Repository interface {
	// Replace atomically swaps the cached snapshot for matchID with msgs,
	// preserving the server-returned order.
	Replace(ctx context.Context, matchID string, msgs []models.Message) error
	// List returns the cached snapshot for matchID in stored order.
	// An unknown matchID yields an empty list.
	List(ctx context.Context, matchID string) ([]models.Message, error)
	// Clear drops all cached conversations (used on logout).
	Clear(ctx context.Context) error
}
