// Package session resolves checkout sessions stored in Redis.
package session

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/DanielPopoola/giftcard-connector/internal/application"
	"github.com/DanielPopoola/giftcard-connector/internal/config"
	"github.com/redis/go-redis/v9"
)

const (
	fieldCartID           = "cart_id"
	fieldPaymentInterface = "payment_interface"
)

// NewClient creates a Redis client and verifies the connection.
func NewClient(ctx context.Context, cfg *config.RedisConfig) (redis.UniversalClient, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to ping redis: %w", err)
	}

	return client, nil
}

// Store reads sessions kept as hashes under <prefix><session id>.
type Store struct {
	client redis.UniversalClient
	prefix string
	logger *slog.Logger
}

func NewStore(client redis.UniversalClient, prefix string, logger *slog.Logger) *Store {
	return &Store{client: client, prefix: prefix, logger: logger}
}

func (s *Store) key(sessionID string) string {
	return s.prefix + sessionID
}

// GetSession returns the session or an Unauthorized error when it is unknown
// or carries no cart.
func (s *Store) GetSession(ctx context.Context, sessionID string) (*application.Session, error) {
	if sessionID == "" {
		return nil, application.NewUnauthorizedError("session id is required")
	}

	fields, err := s.client.HGetAll(ctx, s.key(sessionID)).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to load session: %w", err)
	}

	cartID := fields[fieldCartID]
	if cartID == "" {
		s.logger.Debug("unknown session", "session_id", sessionID)
		return nil, application.NewUnauthorizedError("session is unknown or expired")
	}

	return &application.Session{
		ID:               sessionID,
		CartID:           cartID,
		PaymentInterface: fields[fieldPaymentInterface],
	}, nil
}

// SaveSession stores a session with the given TTL. A zero TTL keeps it until deleted.
func (s *Store) SaveSession(ctx context.Context, session *application.Session, ttl time.Duration) error {
	if session == nil || session.ID == "" || session.CartID == "" {
		return errors.New("session id and cart id are required")
	}

	key := s.key(session.ID)
	values := map[string]any{fieldCartID: session.CartID}
	if session.PaymentInterface != "" {
		values[fieldPaymentInterface] = session.PaymentInterface
	}

	_, err := s.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Del(ctx, key)
		pipe.HSet(ctx, key, values)
		if ttl > 0 {
			pipe.Expire(ctx, key, ttl)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to save session: %w", err)
	}
	return nil
}

// Ping is the Redis health check.
func (s *Store) Ping(ctx context.Context) (map[string]any, error) {
	start := time.Now()
	if err := s.client.Ping(ctx).Err(); err != nil {
		return nil, err
	}
	return map[string]any{"latencyMs": time.Since(start).Milliseconds()}, nil
}
