package chatbot

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"

	"github.com/tatvax/edubot/internal/language"
)

const historyKey = "edubot:conversation:log"

const historyTTL = 24 * time.Hour

// Entry is one exchange in the conversation log.
type Entry struct {
	ID               string        `json:"id"`
	Timestamp        time.Time     `json:"timestamp"`
	UserMessage      string        `json:"user_message"`
	BotResponse      string        `json:"bot_response"`
	DetectedLanguage language.Code `json:"detected_language"`
	ResponseLanguage language.Code `json:"response_language"`
	Intent           string        `json:"intent"`
	Subject          string        `json:"subject"`
	Mode             string        `json:"mode"`
	AudioFile        string        `json:"audio_file,omitempty"`
}

// History stores the conversation log, newest first.
type History interface {
	Append(ctx context.Context, entry Entry) error
	Recent(ctx context.Context, n int) ([]Entry, error)
	Count(ctx context.Context) (int, error)
	Clear(ctx context.Context) error
}

// RedisHistory keeps the log in a capped Redis list so it survives restarts.
type RedisHistory struct {
	client *redis.Client
	limit  int
	tracer trace.Tracer
}

func NewRedisHistory(client *redis.Client, limit int) *RedisHistory {
	if client == nil {
		panic("chatbot: redis client cannot be nil")
	}
	if limit <= 0 {
		limit = 250
	}
	return &RedisHistory{
		client: client,
		limit:  limit,
		tracer: otel.Tracer("edubot.internal.chatbot.history"),
	}
}

func (h *RedisHistory) Append(ctx context.Context, entry Entry) error {
	ctx, span := h.tracer.Start(ctx, "chatbot.history_append")
	defer span.End()

	data, err := json.Marshal(entry)
	if err != nil {
		span.RecordError(err)
		return fmt.Errorf("chatbot: failed to marshal history entry: %w", err)
	}

	pipe := h.client.TxPipeline()
	pipe.LPush(ctx, historyKey, data)
	pipe.LTrim(ctx, historyKey, 0, int64(h.limit-1))
	pipe.Expire(ctx, historyKey, historyTTL)
	if _, err := pipe.Exec(ctx); err != nil {
		span.RecordError(err)
		return fmt.Errorf("chatbot: failed to persist history entry: %w", err)
	}
	return nil
}

func (h *RedisHistory) Recent(ctx context.Context, n int) ([]Entry, error) {
	ctx, span := h.tracer.Start(ctx, "chatbot.history_recent")
	defer span.End()

	if n <= 0 || n > h.limit {
		n = h.limit
	}
	raw, err := h.client.LRange(ctx, historyKey, 0, int64(n-1)).Result()
	if err != nil {
		span.RecordError(err)
		return nil, fmt.Errorf("chatbot: failed to load history: %w", err)
	}

	entries := make([]Entry, 0, len(raw))
	for _, item := range raw {
		var entry Entry
		if err := json.Unmarshal([]byte(item), &entry); err != nil {
			span.RecordError(err)
			return nil, fmt.Errorf("chatbot: failed to decode history entry: %w", err)
		}
		entries = append(entries, entry)
	}
	return entries, nil
}

func (h *RedisHistory) Count(ctx context.Context) (int, error) {
	count, err := h.client.LLen(ctx, historyKey).Result()
	if err != nil {
		return 0, fmt.Errorf("chatbot: failed to count history: %w", err)
	}
	return int(count), nil
}

func (h *RedisHistory) Clear(ctx context.Context) error {
	if err := h.client.Del(ctx, historyKey).Err(); err != nil {
		return fmt.Errorf("chatbot: failed to clear history: %w", err)
	}
	return nil
}

// MemoryHistory is the in-process fallback when Redis is not configured.
type MemoryHistory struct {
	mu      sync.Mutex
	entries []Entry
	limit   int
}

func NewMemoryHistory(limit int) *MemoryHistory {
	if limit <= 0 {
		limit = 250
	}
	return &MemoryHistory{limit: limit}
}

func (h *MemoryHistory) Append(ctx context.Context, entry Entry) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.entries = append([]Entry{entry}, h.entries...)
	if len(h.entries) > h.limit {
		h.entries = h.entries[:h.limit]
	}
	return nil
}

func (h *MemoryHistory) Recent(ctx context.Context, n int) ([]Entry, error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if n <= 0 || n > len(h.entries) {
		n = len(h.entries)
	}
	out := make([]Entry, n)
	copy(out, h.entries[:n])
	return out, nil
}

func (h *MemoryHistory) Count(ctx context.Context) (int, error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.entries), nil
}

func (h *MemoryHistory) Clear(ctx context.Context) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.entries = nil
	return nil
}
