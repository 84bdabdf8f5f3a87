package askpod

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStorage(t *testing.T) *SQLiteStorage {
	t.Helper()
	storage, err := NewSQLiteStorage(filepath.Join(t.TempDir(), "askpod.db"))
	require.NoError(t, err)
	t.Cleanup(func() { storage.Close() })
	return storage
}

func TestSQLiteStorageRoundTrip(t *testing.T) {
	storage := newTestStorage(t)
	ctx := context.Background()

	run := &RunRecord{
		ID:           uuid.NewString(),
		SessionID:    "session-1",
		Question:     "What is 2 + 2?",
		Answer:       "4",
		ToolNames:    "add,multiply",
		InputTokens:  50,
		OutputTokens: 13,
		CreatedAt:    time.Now(),
	}
	require.NoError(t, storage.SaveRun(ctx, run))

	runs, err := storage.Runs(ctx, 10, 0)
	require.NoError(t, err)
	require.Len(t, runs, 1)
	assert.Equal(t, run.ID, runs[0].ID)
	assert.Equal(t, "What is 2 + 2?", runs[0].Question)
	assert.Equal(t, "4", runs[0].Answer)
	assert.Equal(t, "add,multiply", runs[0].ToolNames)
	assert.Equal(t, int64(50), runs[0].InputTokens)
	assert.Equal(t, int64(13), runs[0].OutputTokens)
}

func TestSQLiteStorageRunsNewestFirst(t *testing.T) {
	storage := newTestStorage(t)
	ctx := context.Background()

	older := &RunRecord{ID: uuid.NewString(), SessionID: "s", Question: "first", CreatedAt: time.Now().Add(-time.Hour)}
	newer := &RunRecord{ID: uuid.NewString(), SessionID: "s", Question: "second", CreatedAt: time.Now()}
	require.NoError(t, storage.SaveRun(ctx, older))
	require.NoError(t, storage.SaveRun(ctx, newer))

	runs, err := storage.Runs(ctx, 10, 0)
	require.NoError(t, err)
	require.Len(t, runs, 2)
	assert.Equal(t, "second", runs[0].Question)
	assert.Equal(t, "first", runs[1].Question)
}

func TestSQLiteStorageEmpty(t *testing.T) {
	storage := newTestStorage(t)

	runs, err := storage.Runs(context.Background(), 10, 0)
	require.NoError(t, err)
	assert.Empty(t, runs)
}
