package storage

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/neujobscan/backend/models"
)

func testScan(id, userID string, ts time.Time) *models.ATSResponse {
	return &models.ATSResponse{
		ScanID:    id,
		UserID:    userID,
		Timestamp: ts,
	}
}

func TestMemoryStore_SaveAndGetScan(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	scan := testScan("scan-1", "user-1", time.Now())
	require.NoError(t, store.SaveScan(ctx, scan))

	got, err := store.GetScan(ctx, "scan-1")
	require.NoError(t, err)
	assert.Equal(t, "scan-1", got.ScanID)
	assert.Equal(t, "user-1", got.UserID)
}

func TestMemoryStore_GetScanNotFound(t *testing.T) {
	store := NewMemoryStore()
	_, err := store.GetScan(context.Background(), "nope")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryStore_SaveScanDuplicate(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	scan := testScan("scan-1", "user-1", time.Now())
	require.NoError(t, store.SaveScan(ctx, scan))
	assert.ErrorIs(t, store.SaveScan(ctx, scan), ErrAlreadyExists)
}

func TestMemoryStore_HistoryNewestFirst(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()
	base := time.Now()

	require.NoError(t, store.SaveScan(ctx, testScan("old", "u", base.Add(-2*time.Hour))))
	require.NoError(t, store.SaveScan(ctx, testScan("new", "u", base)))
	require.NoError(t, store.SaveScan(ctx, testScan("mid", "u", base.Add(-time.Hour))))
	require.NoError(t, store.SaveScan(ctx, testScan("other", "someone-else", base)))

	history, err := store.GetScanHistory(ctx, "u", 0)
	require.NoError(t, err)
	require.Len(t, history, 3)
	assert.Equal(t, "new", history[0].ScanID)
	assert.Equal(t, "mid", history[1].ScanID)
	assert.Equal(t, "old", history[2].ScanID)
}

func TestMemoryStore_HistoryLimit(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()
	base := time.Now()

	for i := 0; i < 5; i++ {
		scan := testScan(fmt.Sprintf("scan-%d", i), "u", base.Add(time.Duration(i)*time.Minute))
		require.NoError(t, store.SaveScan(ctx, scan))
	}

	history, err := store.GetScanHistory(ctx, "u", 2)
	require.NoError(t, err)
	require.Len(t, history, 2)
	assert.Equal(t, "scan-4", history[0].ScanID)

	all, err := store.GetScanHistory(ctx, "u", -1)
	require.NoError(t, err)
	assert.Len(t, all, 5, "non-positive limit means unlimited")
}

func TestMemoryStore_ReturnsCopies(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	require.NoError(t, store.SaveScan(ctx, testScan("scan-1", "user-1", time.Now())))

	got, err := store.GetScan(ctx, "scan-1")
	require.NoError(t, err)
	got.UserID = "tampered"

	again, err := store.GetScan(ctx, "scan-1")
	require.NoError(t, err)
	assert.Equal(t, "user-1", again.UserID)
}

func TestMemoryStore_ConcurrentSaves(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			scan := testScan(fmt.Sprintf("scan-%d", n), "u", time.Now())
			assert.NoError(t, store.SaveScan(ctx, scan))
		}(i)
	}
	wg.Wait()

	history, err := store.GetScanHistory(ctx, "u", 0)
	require.NoError(t, err)
	assert.Len(t, history, 50)
}

func TestMemoryStore_UserLifecycle(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	user := &models.User{Email: "jane@example.com", Name: "Jane", Password: "hashed"}
	require.NoError(t, store.CreateUser(ctx, user))

	got, err := store.GetUserByEmail(ctx, "jane@example.com")
	require.NoError(t, err)
	assert.Equal(t, "Jane", got.Name)
	assert.Equal(t, "free", got.Plan, "plan defaults to free")
	assert.False(t, got.CreatedAt.IsZero())

	assert.ErrorIs(t, store.CreateUser(ctx, &models.User{Email: "jane@example.com"}), ErrAlreadyExists)

	require.NoError(t, store.UpdateUser(ctx, "jane@example.com", map[string]interface{}{
		"plan": "pro",
		"name": "Jane S",
	}))
	got, err = store.GetUserByEmail(ctx, "jane@example.com")
	require.NoError(t, err)
	assert.Equal(t, "pro", got.Plan)
	assert.Equal(t, "Jane S", got.Name)

	require.NoError(t, store.DeleteUser(ctx, "jane@example.com"))
	_, err = store.GetUserByEmail(ctx, "jane@example.com")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryStore_UpdateUserNotFound(t *testing.T) {
	store := NewMemoryStore()
	err := store.UpdateUser(context.Background(), "ghost@example.com", map[string]interface{}{"plan": "pro"})
	assert.ErrorIs(t, err, ErrNotFound)
}
