package consultant

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
)

// RedisHistoryStore persists session transcripts as TTL'd JSON blobs.
type RedisHistoryStore struct {
	redis  *redis.Client
	ttl    time.Duration
	tracer trace.Tracer
}

// NewRedisHistoryStore creates a Redis-backed history store. Sessions
// expire after ttl of inactivity.
func NewRedisHistoryStore(client *redis.Client, ttl time.Duration) *RedisHistoryStore {
	if client == nil {
		panic("consultant: redis client cannot be nil")
	}
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &RedisHistoryStore{
		redis:  client,
		ttl:    ttl,
		tracer: otel.Tracer("salon.internal.consultant.history"),
	}
}

// Load returns the stored transcript for the session, or an empty slice
// when the session is unknown or expired.
func (s *RedisHistoryStore) Load(ctx context.Context, sessionID string) ([]Message, error) {
	ctx, span := s.tracer.Start(ctx, "consultant.load_history")
	defer span.End()

	data, err := s.redis.Get(ctx, sessionKey(sessionID)).Bytes()
	if err != nil {
		if err == redis.Nil {
			return []Message{}, nil
		}
		span.RecordError(err)
		return nil, fmt.Errorf("consultant: failed to load history: %w", err)
	}

	var history []Message
	if err := json.Unmarshal(data, &history); err != nil {
		span.RecordError(err)
		return nil, fmt.Errorf("consultant: failed to decode history: %w", err)
	}
	return history, nil
}

// Save replaces the stored transcript and refreshes its TTL.
func (s *RedisHistoryStore) Save(ctx context.Context, sessionID string, history []Message) error {
	ctx, span := s.tracer.Start(ctx, "consultant.save_history")
	defer span.End()

	data, err := json.Marshal(history)
	if err != nil {
		span.RecordError(err)
		return fmt.Errorf("consultant: failed to marshal history: %w", err)
	}
	if err := s.redis.Set(ctx, sessionKey(sessionID), data, s.ttl).Err(); err != nil {
		span.RecordError(err)
		return fmt.Errorf("consultant: failed to persist history: %w", err)
	}
	return nil
}

func sessionKey(id string) string {
	return fmt.Sprintf("consultation:%s", id)
}
