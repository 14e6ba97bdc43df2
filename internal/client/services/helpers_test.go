package services

import (
	"database/sql"
	"fmt"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/IrtizaAhmed131198/dating-app/internal/bus"
	"github.com/IrtizaAhmed131198/dating-app/internal/logging"

	_ "modernc.org/sqlite"
)

var dbSeq atomic.Int64

// setupDB opens a fresh in-memory sqlite database with the client schema.
func setupDB(t *testing.T) *sql.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:svc%d?mode=memory&cache=shared", dbSeq.Add(1))
	db, err := sql.Open("sqlite", dsn)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	_, err = db.Exec(`
CREATE TABLE metadata (
  key   TEXT PRIMARY KEY,
  value BLOB NOT NULL
);
CREATE TABLE messages (
  id          TEXT NOT NULL,
  match_id    TEXT NOT NULL,
  position    INTEGER NOT NULL,
  sender_id   TEXT NOT NULL,
  receiver_id TEXT NOT NULL,
  content     TEXT NOT NULL,
  sent_at     TEXT NOT NULL,
  PRIMARY KEY (match_id, position)
);
`)
	require.NoError(t, err)
	return db
}

func testLogger() logging.Logger {
	return logging.NewDefault("error")
}

func testBus(t *testing.T) bus.MessageBus {
	t.Helper()
	b := bus.New(testLogger())
	t.Cleanup(b.Close)
	return b
}
