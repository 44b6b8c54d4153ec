package chatbot

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tatvax/edubot/internal/language"
)

func newRedisHistory(t *testing.T, limit int) *RedisHistory {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return NewRedisHistory(client, limit)
}

func sampleEntry(i int) Entry {
	return Entry{
		ID:               fmt.Sprintf("entry-%d", i),
		Timestamp:        time.Date(2026, 1, 1, 12, 0, i, 0, time.UTC),
		UserMessage:      fmt.Sprintf("question %d", i),
		BotResponse:      fmt.Sprintf("answer %d", i),
		DetectedLanguage: language.Hindi,
		ResponseLanguage: language.Hindi,
		Intent:           ModeSubjects,
		Subject:          "mathematics",
		Mode:             "text",
	}
}

func testHistory(t *testing.T, h History) {
	ctx := context.Background()

	count, err := h.Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, count)

	for i := 0; i < 5; i++ {
		require.NoError(t, h.Append(ctx, sampleEntry(i)))
	}

	count, err = h.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 5, count)

	recent, err := h.Recent(ctx, 2)
	require.NoError(t, err)
	require.Len(t, recent, 2)
	assert.Equal(t, "entry-4", recent[0].ID, "newest entry comes first")
	assert.Equal(t, "entry-3", recent[1].ID)
	assert.Equal(t, language.Hindi, recent[0].DetectedLanguage)

	require.NoError(t, h.Clear(ctx))
	count, err = h.Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestRedisHistory(t *testing.T) {
	testHistory(t, newRedisHistory(t, 250))
}

func TestMemoryHistory(t *testing.T) {
	testHistory(t, NewMemoryHistory(250))
}

func TestRedisHistoryTrimsAtLimit(t *testing.T) {
	h := newRedisHistory(t, 3)
	ctx := context.Background()

	for i := 0; i < 10; i++ {
		require.NoError(t, h.Append(ctx, sampleEntry(i)))
	}

	count, err := h.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, count)

	recent, err := h.Recent(ctx, 10)
	require.NoError(t, err)
	require.Len(t, recent, 3)
	assert.Equal(t, "entry-9", recent[0].ID)
}

func TestMemoryHistoryTrimsAtLimit(t *testing.T) {
	h := NewMemoryHistory(3)
	ctx := context.Background()

	for i := 0; i < 10; i++ {
		require.NoError(t, h.Append(ctx, sampleEntry(i)))
	}

	count, err := h.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, count)

	recent, err := h.Recent(ctx, 0)
	require.NoError(t, err)
	require.Len(t, recent, 3)
	assert.Equal(t, "entry-9", recent[0].ID)
	assert.Equal(t, "entry-7", recent[2].ID)
}
